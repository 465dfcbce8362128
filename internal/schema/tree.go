package schema

import (
	"encoding/json"

	"github.com/google/uuid"
)

// SourceEncodingUTF16 is the string encoding of the dump producer. Text
// offsets in the dump (word boundaries, character offsets) index UTF-16 code
// units, and consumers of the fixture need to know that.
const SourceEncodingUTF16 = "utf16"

// treeNamespace is the fixed namespace under which tree identities are
// derived. It never changes; changing it would re-id every fixture.
var treeNamespace = uuid.MustParse("6a529f27-3bc6-4609-80a6-370f5fd07030")

// TreeID derives the tree's identity from the output file name alone, as a
// version-5 (name-based, SHA-1) UUID. The same name always yields the same
// id, so regenerating a fixture does not churn its tree identity.
func TreeID(outputName string) string {
	return uuid.NewSHA1(treeNamespace, []byte(outputName)).String()
}

// Tree is the per-tree metadata of a TreeUpdate.
type Tree struct {
	ID                   string `json:"id"`
	SourceStringEncoding string `json:"sourceStringEncoding"`
}

// TreeUpdate is the whole output document: the flat pre-order node list, the
// tree metadata, and the root node's id.
type TreeUpdate struct {
	Nodes []*Node `json:"nodes"`
	Tree  Tree    `json:"tree"`
	Root  NodeID  `json:"root"`
}

// Encode renders the update as indented JSON for human-diffable fixtures.
func (u *TreeUpdate) Encode() ([]byte, error) {
	return json.MarshalIndent(u, "", "  ")
}

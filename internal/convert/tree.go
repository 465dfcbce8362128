package convert

import (
	"github.com/agentic-research/axdump/internal/schema"
)

// Assemble converts a whole dump tree into a TreeUpdate. outputName seeds the
// tree's deterministic identity; by convention it is the destination file
// name, so regenerating a fixture keeps its tree id stable regardless of the
// tree's content.
func Assemble(root map[string]any, outputName string) (*schema.TreeUpdate, error) {
	rootID, err := nodeID(root)
	if err != nil {
		return nil, err
	}
	c := &converter{rootID: rootID}
	if _, err := c.convertNode(root); err != nil {
		return nil, err
	}
	return &schema.TreeUpdate{
		Nodes: c.nodes,
		Tree: schema.Tree{
			ID:                   schema.TreeID(outputName),
			SourceStringEncoding: schema.SourceEncodingUTF16,
		},
		Root: rootID,
	}, nil
}

package schema

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// NodeID identifies a node within one tree. Ids are assigned by the producer
// of the dump and preserved verbatim by conversion; they are never renumbered.
type NodeID int64

// Node is one output tree node. Fields serialize in insertion order, so the
// converter's fixed rule order shows up unchanged in the emitted fixture and
// regenerated files diff cleanly.
type Node struct {
	fields *orderedmap.OrderedMap[string, any]
}

// NewNode starts a node with the two fields every node has.
func NewNode(id NodeID, role string) *Node {
	n := &Node{fields: orderedmap.New[string, any]()}
	n.Set("id", int64(id))
	n.Set("role", role)
	return n
}

// Set adds a field. Keys are set at most once per node.
func (n *Node) Set(key string, value any) {
	n.fields.Set(key, value)
}

// Get returns a field value and whether it is present.
func (n *Node) Get(key string) (any, bool) {
	return n.fields.Get(key)
}

// Len returns the number of fields set on the node.
func (n *Node) Len() int {
	return n.fields.Len()
}

// ID returns the node's identity.
func (n *Node) ID() NodeID {
	v, _ := n.fields.Get("id")
	id, _ := v.(int64)
	return NodeID(id)
}

// MarshalJSON emits the fields as an object in insertion order.
func (n *Node) MarshalJSON() ([]byte, error) {
	return n.fields.MarshalJSON()
}

// Bounds is a node's bounding box. OffsetContainer names the node the rect is
// relative to; it is omitted when the coordinates are relative to the root.
type Bounds struct {
	Rect            Rect `json:"rect"`
	OffsetContainer any  `json:"offsetContainer,omitempty"`
}

// Rect carries the four geometry values exactly as they appear in the dump.
type Rect struct {
	Left   any `json:"left"`
	Top    any `json:"top"`
	Width  any `json:"width"`
	Height any `json:"height"`
}

// Span is one start/end pair zipped from the dump's parallel word arrays.
type Span struct {
	Start any `json:"start"`
	End   any `json:"end"`
}

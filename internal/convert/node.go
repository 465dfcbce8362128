// Package convert translates one accessibility-tree dump into the normalized
// output schema: a flat pre-order node list plus tree metadata.
package convert

import (
	"fmt"
	"strings"

	"github.com/agentic-research/axdump/internal/schema"
)

// converter walks one dump tree depth-first, translating each node and
// appending it to nodes. The accumulator lives here rather than in package
// state; one converter serves exactly one Assemble call. The root id is
// captured before recursion starts so every node can suppress a redundant
// offset-container reference to the root.
type converter struct {
	rootID schema.NodeID
	nodes  []*schema.Node
}

// convertNode translates one dump node, appends it to the flat list, then
// recurses into its children. Appending the parent before descending is what
// makes the flat list pre-order; there is no separate sort.
func (c *converter) convertNode(src map[string]any) (*schema.Node, error) {
	id, err := nodeID(src)
	if err != nil {
		return nil, err
	}
	role, ok := src["internalRole"].(string)
	if !ok {
		return nil, fmt.Errorf("%w: node %d has no internalRole", ErrMissingField, id)
	}

	node := schema.NewNode(id, translateRole(role))
	c.nodes = append(c.nodes, node)

	bounds, err := c.bounds(src, id)
	if err != nil {
		return nil, err
	}
	node.Set("bounds", bounds)

	if v, ok := src["actions"]; ok {
		s, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("%w: node %d actions is %T, want string", ErrCoercion, id, v)
		}
		node.Set("actions", strings.Split(s, ","))
	}

	for _, rule := range passthroughRules {
		if v, ok := src[rule.from]; ok {
			node.Set(rule.to, v)
		}
	}
	for _, rule := range flagRules {
		if v, ok := src[rule.from]; ok && truthy(v) {
			node.Set(rule.to, v)
		}
	}
	for _, rule := range intRules {
		v, ok := src[rule.from]
		if !ok {
			continue
		}
		n, err := toInt(v)
		if err != nil {
			return nil, fmt.Errorf("node %d %s: %w", id, rule.from, err)
		}
		node.Set(rule.to, n)
	}
	for _, rule := range colorRules {
		v, ok := src[rule.from]
		if !ok {
			continue
		}
		n, err := toColor(v)
		if err != nil {
			return nil, fmt.Errorf("node %d %s: %w", id, rule.from, err)
		}
		node.Set(rule.to, n)
	}

	if err := c.derived(src, node, id); err != nil {
		return nil, err
	}

	if raw, ok := src["children"]; ok {
		children, ok := raw.([]any)
		if !ok {
			return nil, fmt.Errorf("%w: node %d children is %T, want array", ErrCoercion, id, raw)
		}
		if len(children) > 0 {
			ids := make([]schema.NodeID, 0, len(children))
			for i, rawChild := range children {
				childSrc, ok := rawChild.(map[string]any)
				if !ok {
					return nil, fmt.Errorf("%w: node %d child %d is %T, want object", ErrCoercion, id, i, rawChild)
				}
				child, err := c.convertNode(childSrc)
				if err != nil {
					return nil, err
				}
				ids = append(ids, child.ID())
			}
			node.Set("children", ids)
		}
	}

	return node, nil
}

// bounds builds the mandatory bounding box. The offset container is only
// stated when it is a node other than the root; the root is the implicit
// container for everything else.
func (c *converter) bounds(src map[string]any, id schema.NodeID) (schema.Bounds, error) {
	var b schema.Bounds
	for _, g := range []struct {
		key string
		dst *any
	}{
		{"boundsX", &b.Rect.Left},
		{"boundsY", &b.Rect.Top},
		{"boundsWidth", &b.Rect.Width},
		{"boundsHeight", &b.Rect.Height},
	} {
		v, ok := src[g.key]
		if !ok {
			return b, fmt.Errorf("%w: node %d has no %s", ErrMissingField, id, g.key)
		}
		*g.dst = v
	}
	if v, ok := src["boundsOffsetContainerId"]; ok && truthy(v) && !looseEqual(v, int64(c.rootID)) {
		b.OffsetContainer = v
	}
	return b, nil
}

// derived applies the rules that synthesize output fields from one or more
// dump fields instead of renaming a single key.
func (c *converter) derived(src map[string]any, node *schema.Node, id schema.NodeID) error {
	// Two dump flags collapse into one tri-state: expanded wins over
	// collapsed, neither truthy means no field at all.
	if truthy(src["expanded"]) {
		node.Set("expanded", true)
	} else if truthy(src["collapsed"]) {
		node.Set("expanded", false)
	}

	// First truthy axis wins; a node never carries both.
	for _, axis := range []string{"horizontal", "vertical"} {
		if truthy(src[axis]) {
			node.Set("orientation", axis)
			break
		}
	}

	if v, ok := src["invalidState"]; ok {
		if v == "other" {
			detail, ok := src["ariaInvalidValue"]
			if !ok {
				return fmt.Errorf("%w: node %d invalidState is \"other\" without ariaInvalidValue", ErrMissingField, id)
			}
			node.Set("invalidState", map[string]any{"other": detail})
		} else {
			node.Set("invalidState", v)
		}
	}

	// The restriction value itself ("readonly", "disabled", ...) becomes the
	// output key.
	if v, ok := src["restriction"]; ok {
		key, ok := v.(string)
		if !ok {
			return fmt.Errorf("%w: node %d restriction is %T, want string", ErrCoercion, id, v)
		}
		node.Set(key, true)
	}

	if v, ok := src["textStyle"]; ok {
		style, err := toInt(v)
		if err != nil {
			return fmt.Errorf("node %d textStyle: %w", id, err)
		}
		if style&2 != 0 {
			node.Set("bold", true)
		}
		if style&4 != 0 {
			node.Set("italic", true)
		}
	}

	if v, ok := src["wordStarts"]; ok {
		starts, ok := v.([]any)
		if !ok {
			return fmt.Errorf("%w: node %d wordStarts is %T, want array", ErrCoercion, id, v)
		}
		rawEnds, ok := src["wordEnds"]
		if !ok {
			return fmt.Errorf("%w: node %d has wordStarts but no wordEnds", ErrMissingField, id)
		}
		ends, ok := rawEnds.([]any)
		if !ok {
			return fmt.Errorf("%w: node %d wordEnds is %T, want array", ErrCoercion, id, rawEnds)
		}
		if len(starts) != len(ends) {
			return fmt.Errorf("%w: node %d has %d wordStarts but %d wordEnds", ErrLengthMismatch, id, len(starts), len(ends))
		}
		words := make([]schema.Span, len(starts))
		for i := range starts {
			words[i] = schema.Span{Start: starts[i], End: ends[i]}
		}
		node.Set("words", words)
	}

	return nil
}

// nodeID extracts the mandatory integer identity of a dump node.
func nodeID(src map[string]any) (schema.NodeID, error) {
	v, ok := src["id"]
	if !ok {
		return 0, fmt.Errorf("%w: node has no id", ErrMissingField)
	}
	id, ok := v.(int64)
	if !ok {
		return 0, fmt.Errorf("%w: node id %v is %T, want integer", ErrCoercion, v, v)
	}
	return schema.NodeID(id), nil
}

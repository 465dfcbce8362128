package schema

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTreeIDDeterministic(t *testing.T) {
	a := TreeID("buttons.json")
	b := TreeID("buttons.json")
	assert.Equal(t, a, b)
	assert.Equal(t, "b9fdd8be-2a2b-5a82-b8af-b172ae27f02e", a)

	assert.NotEqual(t, a, TreeID("other.json"))
}

func TestTreeIDIsVersion5(t *testing.T) {
	id, err := uuid.Parse(TreeID("anything"))
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(5), id.Version())
	assert.Equal(t, uuid.RFC4122, id.Variant())
}

func TestNodeFieldOrder(t *testing.T) {
	n := NewNode(7, "button")
	n.Set("bounds", Bounds{Rect: Rect{Left: int64(0), Top: int64(0), Width: int64(1), Height: int64(2)}})
	n.Set("name", "OK")
	n.Set("zeta", int64(1))
	n.Set("alpha", int64(2))

	data, err := json.Marshal(n)
	require.NoError(t, err)
	// Insertion order, not alphabetical.
	assert.Equal(t,
		`{"id":7,"role":"button","bounds":{"rect":{"left":0,"top":0,"width":1,"height":2}},"name":"OK","zeta":1,"alpha":2}`,
		string(data))
}

func TestBoundsOmitsEmptyOffsetContainer(t *testing.T) {
	data, err := json.Marshal(Bounds{Rect: Rect{Left: int64(1), Top: int64(2), Width: int64(3), Height: int64(4)}})
	require.NoError(t, err)
	assert.NotContains(t, string(data), "offsetContainer")

	data, err = json.Marshal(Bounds{
		Rect:            Rect{Left: int64(1), Top: int64(2), Width: int64(3), Height: int64(4)},
		OffsetContainer: int64(9),
	})
	require.NoError(t, err)
	assert.Contains(t, string(data), `"offsetContainer":9`)
}

func TestTreeUpdateEncode(t *testing.T) {
	u := &TreeUpdate{
		Nodes: []*Node{NewNode(1, "button")},
		Tree: Tree{
			ID:                   TreeID("buttons.json"),
			SourceStringEncoding: SourceEncodingUTF16,
		},
		Root: 1,
	}
	u.Nodes[0].Set("bounds", Bounds{Rect: Rect{Left: int64(0), Top: int64(0), Width: int64(10), Height: int64(20)}})

	data, err := u.Encode()
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"nodes": [
			{"id": 1, "role": "button", "bounds": {"rect": {"left": 0, "top": 0, "width": 10, "height": 20}}}
		],
		"tree": {"id": "b9fdd8be-2a2b-5a82-b8af-b172ae27f02e", "sourceStringEncoding": "utf16"},
		"root": 1
	}`, string(data))

	// Two-space indentation and top-level field order for diffable fixtures.
	s := string(data)
	assert.Contains(t, s, "\n  \"nodes\"")
	assert.Less(t, strings.Index(s, `"nodes"`), strings.Index(s, `"tree"`))
	assert.Less(t, strings.Index(s, `"tree"`), strings.Index(s, `"root"`))
}

package convert

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTranslateRole(t *testing.T) {
	assert.Equal(t, "popupButton", translateRole("popUpButton"))
	assert.Equal(t, "button", translateRole("button"))
	assert.Equal(t, "genericContainer", translateRole("genericContainer"))
}

// Every dump attribute belongs to exactly one table; a duplicate would make
// the second rule's gating silently unreachable.
func TestRuleSourceKeysAreUnique(t *testing.T) {
	seen := make(map[string]string)
	tables := map[string][]attrRule{
		"passthrough": passthroughRules,
		"flag":        flagRules,
		"int":         intRules,
		"color":       colorRules,
	}
	for name, rules := range tables {
		for _, r := range rules {
			prev, dup := seen[r.from]
			assert.False(t, dup, "key %q in both %s and %s", r.from, prev, name)
			seen[r.from] = name
		}
	}
}

func TestRuleRenames(t *testing.T) {
	find := func(rules []attrRule, from string) string {
		for _, r := range rules {
			if r.from == from {
				return r.to
			}
		}
		return ""
	}

	assert.Equal(t, "cssDisplay", find(passthroughRules, "display"))
	assert.Equal(t, "customRole", find(passthroughRules, "role"))
	assert.Equal(t, "textAlign", find(passthroughRules, "text-align"))
	assert.Equal(t, "hasPopup", find(passthroughRules, "haspopup"))
	assert.Equal(t, "childTree", find(passthroughRules, "childTreeId"))
	assert.Equal(t, "strikethrough", find(passthroughRules, "textStrikethroughStyle"))
	assert.Equal(t, "labelledBy", find(passthroughRules, "labelledbyIds"))

	assert.Equal(t, "activeDescendant", find(intRules, "activedescendantId"))
	assert.Equal(t, "tableRowHeader", find(intRules, "tableRowHeaderId"))
	assert.Equal(t, "previousFocus", find(intRules, "previousFocusId"))

	assert.Equal(t, "foregroundColor", find(colorRules, "color"))
	assert.Equal(t, "colorValue", find(colorRules, "colorValue"))
}

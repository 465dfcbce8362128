package dump

import (
	"fmt"

	"github.com/ohler55/ojg/oj"
)

// Parse decodes repaired dump bytes into generic values (map[string]any,
// []any, int64, float64, string, bool, nil). The root of a dump is always a
// single node object.
func Parse(data []byte) (map[string]any, error) {
	v, err := oj.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("structural parse: %w", err)
	}
	root, ok := v.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("structural parse: document root is %T, want object", v)
	}
	return root, nil
}

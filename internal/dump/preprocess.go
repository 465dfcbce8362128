// Package dump reads the raw accessibility-tree dump: it repairs the
// producer's byte-level escaping defect and decodes the result into generic
// document values.
package dump

import (
	"errors"
	"fmt"
)

// ErrMalformedEscape reports a percent sign not followed by two uppercase hex
// digits.
var ErrMalformedEscape = errors.New("malformed percent escape")

// Repair replaces every %XX escape (two uppercase hex digits) with the byte
// it encodes, scanning left to right. The Chromium-side JSON serializer emits
// these in place of certain raw bytes, so they must be decoded before the
// document is parsed. All other bytes pass through unchanged.
func Repair(raw []byte) ([]byte, error) {
	out := make([]byte, 0, len(raw))
	for i := 0; i < len(raw); i++ {
		c := raw[i]
		if c != '%' {
			out = append(out, c)
			continue
		}
		if i+2 >= len(raw) {
			return nil, fmt.Errorf("%w at offset %d: truncated %q", ErrMalformedEscape, i, raw[i:])
		}
		hi, ok1 := unhex(raw[i+1])
		lo, ok2 := unhex(raw[i+2])
		if !ok1 || !ok2 {
			return nil, fmt.Errorf("%w at offset %d: %q", ErrMalformedEscape, i, raw[i:i+3])
		}
		out = append(out, hi<<4|lo)
		i += 2
	}
	return out, nil
}

// unhex decodes one uppercase hex digit. The producer only emits uppercase.
func unhex(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

package convert

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTruthy(t *testing.T) {
	falsy := []any{nil, false, "", int64(0), float64(0), []any{}, map[string]any{}}
	for _, v := range falsy {
		assert.False(t, truthy(v), "%#v should be falsy", v)
	}

	truth := []any{true, "x", int64(1), int64(-1), 0.5, []any{int64(1)}, map[string]any{"k": 1}}
	for _, v := range truth {
		assert.True(t, truthy(v), "%#v should be truthy", v)
	}
}

func TestToInt(t *testing.T) {
	cases := []struct {
		in   any
		want int64
	}{
		{int64(42), 42},
		{float64(5.9), 5},
		{float64(-5.9), -5},
		{"5", 5},
		{" 7 ", 7},
		{"-3", -3},
	}
	for _, tc := range cases {
		got, err := toInt(tc.in)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got)
	}

	for _, in := range []any{"abc", "5.5", "", true, nil, []any{}} {
		_, err := toInt(in)
		require.ErrorIs(t, err, ErrCoercion, "%#v", in)
	}
}

func TestToColor(t *testing.T) {
	got, err := toColor("FF0000")
	require.NoError(t, err)
	assert.Equal(t, int64(16711680), got)

	got, err = toColor("ffffff")
	require.NoError(t, err)
	assert.Equal(t, int64(16777215), got)

	got, err = toColor("0")
	require.NoError(t, err)
	assert.Equal(t, int64(0), got)

	// The parse is literal: a leading "#" is not stripped. This mirrors the
	// producer-side contract until the dump format says otherwise.
	_, err = toColor("#FF0000")
	require.ErrorIs(t, err, ErrCoercion)

	_, err = toColor(int64(255))
	require.ErrorIs(t, err, ErrCoercion)
}

func TestLooseEqual(t *testing.T) {
	assert.True(t, looseEqual(int64(1), 1))
	assert.True(t, looseEqual(float64(1), 1))
	assert.False(t, looseEqual(int64(2), 1))
	assert.False(t, looseEqual("1", 1))
	assert.False(t, looseEqual(true, 1))
	assert.False(t, looseEqual(nil, 0))
}

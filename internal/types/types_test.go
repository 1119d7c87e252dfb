package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStringPtr(t *testing.T) {
	a, b := StringPtr("a"), StringPtr("a")
	assert.Equal(t, "a", *a)
	assert.NotSame(t, a, b)
}

func TestFirstNonEmpty(t *testing.T) {
	tests := []struct {
		name     string
		values   []string
		expected string
	}{
		{name: "first wins", values: []string{"a", "b"}, expected: "a"},
		{name: "skips empty", values: []string{"", "b"}, expected: "b"},
		{name: "skips whitespace", values: []string{"  ", "c"}, expected: "c"},
		{name: "all empty", values: []string{"", ""}, expected: ""},
		{name: "none", values: nil, expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FirstNonEmpty(tt.values...))
		})
	}
}

func TestMapString(t *testing.T) {
	m := map[string]interface{}{
		"s":    "text",
		"n":    float64(42),
		"b":    true,
		"null": nil,
		"obj":  map[string]interface{}{"k": "v"},
	}

	assert.Equal(t, "text", MapString(m, "s"))
	assert.Equal(t, "42", MapString(m, "n"))
	assert.Equal(t, "true", MapString(m, "b"))
	assert.Equal(t, "", MapString(m, "null"))
	assert.Equal(t, "", MapString(m, "obj"))
	assert.Equal(t, "", MapString(m, "missing"))
	assert.Equal(t, "", MapString(nil, "s"))
}

func TestMapObject(t *testing.T) {
	m := map[string]interface{}{"obj": map[string]interface{}{"k": "v"}, "s": "x"}

	assert.Equal(t, "v", MapObject(m, "obj")["k"])
	assert.Nil(t, MapObject(m, "s"))
	assert.Nil(t, MapObject(nil, "obj"))
}

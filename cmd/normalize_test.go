package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeSpaces(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"  A   B  ", "A B"},
		{"A B", "A B"},
		{"", ""},
		{"   ", ""},
		{"PS3545  .I345", "PS3545 .I345"},
	}

	for _, test := range tests {
		assert.Equal(t, test.expected, normalizeSpaces(test.input))
	}
}

func TestNormalizeSpacesIdempotent(t *testing.T) {
	once := normalizeSpaces("  A   B  ")
	assert.Equal(t, once, normalizeSpaces(once))
}

func TestNormalizeCallNumberComponents(t *testing.T) {
	item := map[string]interface{}{
		"effectiveCallNumberComponents": map[string]interface{}{
			"callNumber": "  PS3545   .I345  ",
			"prefix":     " ovsz ",
		},
	}

	prefix, suffix := normalizeCallNumberComponents(item)

	assert.Equal(t, "ovsz", prefix)
	assert.Equal(t, "", suffix)

	comps, ok := item["effectiveCallNumberComponents"].(map[string]interface{})
	require.True(t, ok)

	assert.Equal(t, "PS3545 .I345", comps["callNumber"])
	assert.Equal(t, "ovsz", comps["prefix"])

	_, hasSuffix := comps["suffix"]
	assert.False(t, hasSuffix)
}

func TestNormalizeCallNumberComponentsAbsent(t *testing.T) {
	item := map[string]interface{}{"barcode": "123"}

	prefix, suffix := normalizeCallNumberComponents(item)

	assert.Equal(t, "", prefix)
	assert.Equal(t, "", suffix)
}

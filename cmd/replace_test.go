package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeRuleFile(t *testing.T, contents string) string {
	path := filepath.Join(t.TempDir(), "prefix-suffix.csv")

	err := os.WriteFile(path, []byte(contents), 0644)
	require.NoError(t, err)

	return path
}

func TestLoadReplacementRules(t *testing.T) {
	path := writeRuleFile(t, "field,string,replacement\nprefix,ovsz,Oversize\nsuffix,suppl,Supplement\nprefix,ref,Reference\n")

	rules, err := loadReplacementRules(path)
	require.NoError(t, err)

	require.Len(t, rules, 3)

	// table order preserved
	assert.Equal(t, replacementRule{field: "prefix", pattern: "ovsz", replacement: "Oversize"}, rules[0])
	assert.Equal(t, replacementRule{field: "suffix", pattern: "suppl", replacement: "Supplement"}, rules[1])
	assert.Equal(t, replacementRule{field: "prefix", pattern: "ref", replacement: "Reference"}, rules[2])
}

func TestLoadReplacementRulesMissingColumn(t *testing.T) {
	path := writeRuleFile(t, "field,pattern,replacement\nprefix,ovsz,Oversize\n")

	_, err := loadReplacementRules(path)
	assert.Error(t, err)
}

func TestLoadReplacementRulesMissingFile(t *testing.T) {
	_, err := loadReplacementRules(filepath.Join(t.TempDir(), "nope.csv"))
	assert.Error(t, err)
}

func TestFieldReplacerWholeStringCaseInsensitive(t *testing.T) {
	rules := []replacementRule{
		{field: "prefix", pattern: "abc", replacement: "XYZ"},
	}

	replacer, err := newFieldReplacer(rules, "prefix")
	require.NoError(t, err)

	assert.Equal(t, "XYZ", replacer.apply("abc"))
	assert.Equal(t, "XYZ", replacer.apply("ABC"))
	assert.Equal(t, "XYZ", replacer.apply("aBc"))

	// substrings never match
	assert.Equal(t, "zABCz", replacer.apply("zABCz"))
}

func TestFieldReplacerSequential(t *testing.T) {
	rules := []replacementRule{
		{field: "suffix", pattern: "a", replacement: "b"},
		{field: "suffix", pattern: "b", replacement: "c"},
	}

	replacer, err := newFieldReplacer(rules, "suffix")
	require.NoError(t, err)

	// each substitution operates on the result of the previous one
	assert.Equal(t, "c", replacer.apply("a"))
	assert.Equal(t, "c", replacer.apply("b"))
}

func TestFieldReplacerFieldSubset(t *testing.T) {
	rules := []replacementRule{
		{field: "prefix", pattern: "ovsz", replacement: "Oversize"},
		{field: "suffix", pattern: "ovsz", replacement: "Outsized"},
	}

	replacer, err := newFieldReplacer(rules, "prefix")
	require.NoError(t, err)

	require.Len(t, replacer.rules, 1)
	assert.Equal(t, "Oversize", replacer.apply("ovsz"))
}

func TestFieldReplacerEmptySubset(t *testing.T) {
	replacer, err := newFieldReplacer(nil, "prefix")
	require.NoError(t, err)

	assert.Equal(t, "anything", replacer.apply("anything"))
}

func TestFieldReplacerBadPattern(t *testing.T) {
	rules := []replacementRule{
		{field: "prefix", pattern: "(", replacement: "X"},
	}

	_, err := newFieldReplacer(rules, "prefix")
	assert.Error(t, err)
}

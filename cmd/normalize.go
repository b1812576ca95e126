package main

import (
	"regexp"
	"strings"
)

var spaceRuns = regexp.MustCompile(` +`)

// collapse runs of spaces to a single space and strip leading/trailing
// whitespace. idempotent.
func normalizeSpaces(s string) string {
	return strings.TrimSpace(spaceRuns.ReplaceAllString(s, " "))
}

// normalizeCallNumberComponents cleans up the callNumber, prefix and suffix
// of the item's effective call number components, writing the cleaned values
// back into the item record. absent or empty components pass through
// untouched. returns the (possibly empty) prefix and suffix for the
// replacement step.
func normalizeCallNumberComponents(item map[string]interface{}) (prefix string, suffix string) {
	comps, ok := item["effectiveCallNumberComponents"].(map[string]interface{})
	if ok == false {
		return "", ""
	}

	for _, name := range []string{"callNumber", "prefix", "suffix"} {
		val, ok := comps[name].(string)
		if ok == false || val == "" {
			continue
		}

		comps[name] = normalizeSpaces(val)
	}

	prefix, _ = comps["prefix"].(string)
	suffix, _ = comps["suffix"].(string)

	return prefix, suffix
}

package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"regexp"
)

// replacement rules rewrite site-specific call number prefixes/suffixes
// (e.g. shelving codes) to the vocabulary spine label clients expect.
// the table is managed as a CSV in this repo and is read fresh on every
// request so edits take effect without a restart.

type replacementRule struct {
	field       string // "prefix" or "suffix"
	pattern     string // whole-string match, case-insensitive
	replacement string
}

// loadReplacementRules reads the rule table, preserving row order.
// expected columns: field,string,replacement
func loadReplacementRules(path string) ([]replacementRule, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open rule file: %s", err.Error())
	}

	defer f.Close()

	reader := csv.NewReader(f)

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read rule file header: %s", err.Error())
	}

	cols := make(map[string]int)
	for idx, name := range header {
		cols[name] = idx
	}

	for _, required := range []string{"field", "string", "replacement"} {
		if _, ok := cols[required]; ok == false {
			return nil, fmt.Errorf("rule file missing column: [%s]", required)
		}
	}

	var rules []replacementRule

	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read rule file row: %s", err.Error())
		}

		rules = append(rules, replacementRule{
			field:       row[cols["field"]],
			pattern:     row[cols["string"]],
			replacement: row[cols["replacement"]],
		})
	}

	return rules, nil
}

type compiledRule struct {
	re          *regexp.Regexp
	replacement string
}

type fieldReplacer struct {
	rules []compiledRule
}

// newFieldReplacer compiles the subset of rules for the given field, in table
// order. each pattern is anchored and case-insensitive so that only
// whole-string matches rewrite, never substrings.
func newFieldReplacer(rules []replacementRule, field string) (*fieldReplacer, error) {
	r := fieldReplacer{}

	for _, rule := range rules {
		if rule.field != field {
			continue
		}

		re, err := regexp.Compile(fmt.Sprintf(`(?i)^%s$`, rule.pattern))
		if err != nil {
			return nil, fmt.Errorf("bad %s rule pattern [%s]: %s", field, rule.pattern, err.Error())
		}

		r.rules = append(r.rules, compiledRule{re: re, replacement: rule.replacement})
	}

	return &r, nil
}

// apply runs every rule in order, each substitution operating on the result
// of the previous one. overlapping rules are not deduplicated.
func (r *fieldReplacer) apply(s string) string {
	for _, rule := range r.rules {
		s = rule.re.ReplaceAllString(s, rule.replacement)
	}

	return s
}

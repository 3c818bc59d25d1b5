// Package names decides whether a compound name is a low-quality
// placeholder and which of several candidate names a record keeps.
//
// Low-quality names are vendor catalog codes, database accessions, purity
// specifications, structural identifiers and similar strings. They are
// detected by a flat table of rules (see rules.yaml). A name is low quality
// if any rule matches, so the order of rules does not matter.
package names

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

var casRe = regexp.MustCompile(`^[0-9]+-[0-9]+-[0-9]+$`)

// Curator classifies names using a rule table.
type Curator struct {
	rules      Rules
	exact      map[string]struct{}
	prefixCI   []string
	containsCI []string
	regexes    []*regexp.Regexp
}

// New creates a Curator from a rule table. Regular expressions that do not
// compile are ignored; use ParseRules to validate a table beforehand.
func New(rules Rules) *Curator {
	res := Curator{
		rules:      rules,
		exact:      make(map[string]struct{}, len(rules.Exact)),
		prefixCI:   lowerAll(rules.PrefixCI),
		containsCI: lowerAll(rules.ContainsCI),
	}
	for _, v := range rules.Exact {
		res.exact[v] = struct{}{}
	}
	for _, v := range rules.Regex {
		re, err := regexp.Compile(v)
		if err != nil {
			continue
		}
		res.regexes = append(res.regexes, re)
	}
	return &res
}

// NewDefault creates a Curator with the embedded rule table.
func NewDefault() *Curator {
	return New(DefaultRules())
}

// Rules returns the rule table of the curator.
func (c *Curator) Rules() Rules {
	return c.rules
}

// Normalize converts a name to NFC and trims surrounding spaces.
func Normalize(name string) string {
	return strings.TrimSpace(norm.NFC.String(name))
}

// Len returns the number of characters of a normalized name.
func Len(name string) int {
	return utf8.RuneCountInString(Normalize(name))
}

// IsCAS reports whether a string looks like a CAS registry number.
func IsCAS(s string) bool {
	return casRe.MatchString(Normalize(s))
}

// IsLowQuality reports whether a name is a placeholder rather than a
// usable display name. Empty names are low quality.
func (c *Curator) IsLowQuality(name string) bool {
	_, ok := c.Match(name)
	return ok
}

// Match returns the first rule that classifies the name as low quality.
func (c *Curator) Match(name string) (Rule, bool) {
	name = Normalize(name)
	if name == "" {
		return Rule{Kind: KindEmpty}, true
	}
	if utf8.RuneCountInString(name) < c.rules.MinLength {
		return Rule{Kind: KindMinLength}, true
	}
	if _, ok := c.exact[name]; ok {
		return Rule{Kind: KindExact, Pattern: name}, true
	}
	for _, v := range c.rules.Prefix {
		if strings.HasPrefix(name, v) {
			return Rule{Kind: KindPrefix, Pattern: v}, true
		}
	}
	for _, v := range c.rules.Suffix {
		if strings.HasSuffix(name, v) {
			return Rule{Kind: KindSuffix, Pattern: v}, true
		}
	}
	for _, v := range c.rules.Contains {
		if strings.Contains(name, v) {
			return Rule{Kind: KindContains, Pattern: v}, true
		}
	}

	lower := strings.ToLower(name)
	for i, v := range c.prefixCI {
		if strings.HasPrefix(lower, v) {
			return Rule{Kind: KindPrefixCI, Pattern: c.rules.PrefixCI[i]}, true
		}
	}
	for i, v := range c.containsCI {
		if strings.Contains(lower, v) {
			return Rule{Kind: KindContainsCI, Pattern: c.rules.ContainsCI[i]}, true
		}
	}

	for _, re := range c.regexes {
		if re.MatchString(name) {
			return Rule{Kind: KindRegex, Pattern: re.String()}, true
		}
	}
	return Rule{}, false
}

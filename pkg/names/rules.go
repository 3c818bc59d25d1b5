package names

import (
	_ "embed"
	"fmt"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

// RulesYAML is the default rule table.
//
//go:embed rules.yaml
var RulesYAML string

// Rules is the declarative table of low-quality name patterns.
type Rules struct {
	MinLength  int      `yaml:"min_length"`
	Exact      []string `yaml:"exact"`
	Prefix     []string `yaml:"prefix"`
	PrefixCI   []string `yaml:"prefix_ci"`
	Suffix     []string `yaml:"suffix"`
	Contains   []string `yaml:"contains"`
	ContainsCI []string `yaml:"contains_ci"`
	Regex      []string `yaml:"regex"`
}

// Kind names a type of rule.
type Kind string

const (
	KindEmpty      Kind = "empty"
	KindMinLength  Kind = "min_length"
	KindExact      Kind = "exact"
	KindPrefix     Kind = "prefix"
	KindPrefixCI   Kind = "prefix_ci"
	KindSuffix     Kind = "suffix"
	KindContains   Kind = "contains"
	KindContainsCI Kind = "contains_ci"
	KindRegex      Kind = "regex"
)

// Rule is one (kind, pattern) pair of the table.
type Rule struct {
	Kind    Kind
	Pattern string
}

func (r Rule) String() string {
	if r.Pattern == "" {
		return string(r.Kind)
	}
	return fmt.Sprintf("%s: %q", r.Kind, r.Pattern)
}

// ParseRules reads a rule table from YAML.
func ParseRules(data []byte) (Rules, error) {
	var res Rules
	if err := yaml.Unmarshal(data, &res); err != nil {
		return res, fmt.Errorf("cannot parse rules: %w", err)
	}
	if res.MinLength < 0 {
		return res, fmt.Errorf("min_length cannot be negative: %d", res.MinLength)
	}
	for _, v := range res.Regex {
		if _, err := regexp.Compile(v); err != nil {
			return res, fmt.Errorf("bad regex %q: %w", v, err)
		}
	}
	return res, nil
}

// DefaultRules returns the embedded rule table.
func DefaultRules() Rules {
	res, err := ParseRules([]byte(RulesYAML))
	if err != nil {
		panic(err)
	}
	return res
}

// Len returns the number of pattern rules in the table.
func (r Rules) Len() int {
	return len(r.Exact) + len(r.Prefix) + len(r.PrefixCI) + len(r.Suffix) +
		len(r.Contains) + len(r.ContainsCI) + len(r.Regex)
}

func lowerAll(ss []string) []string {
	res := make([]string, len(ss))
	for i := range ss {
		res[i] = strings.ToLower(ss[i])
	}
	return res
}

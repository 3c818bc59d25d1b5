package sources

import (
	"fmt"
	"maps"
	"net/url"
	"slices"
	"strings"
)

// Validate checks the configuration for errors and fills in source names.
func (c *SourcesConfig) Validate() error {
	if len(c.Sources) == 0 {
		return fmt.Errorf("no sources specified in configuration")
	}

	for _, name := range slices.Sorted(maps.Keys(c.Sources)) {
		src := c.Sources[name]
		src.Name = name
		warnings, err := src.Validate()
		if err != nil {
			return fmt.Errorf("source %s: %w", name, err)
		}
		c.Sources[name] = src
		c.Warnings = append(c.Warnings, warnings...)
	}
	return nil
}

// Get returns the source with the given name.
func (c *SourcesConfig) Get(name string) (Source, bool) {
	res, ok := c.Sources[name]
	if ok {
		res.Name = name
	}
	return res, ok
}

// Validate checks one source. Unknown sources and missing files are errors,
// vendors without tags produce warnings.
func (s *Source) Validate() ([]ValidationWarning, error) {
	var warnings []ValidationWarning
	req, ok := requiredFiles[s.Name]
	if !ok {
		return nil, fmt.Errorf("unknown source '%s', known sources: %s",
			s.Name, strings.Join(slices.Sorted(maps.Keys(requiredFiles)), ", "))
	}

	for _, key := range req {
		if strings.TrimSpace(s.Files[key]) == "" {
			return nil, fmt.Errorf("file '%s' is required", key)
		}
	}

	if !IsVendor(s.Name) {
		return warnings, nil
	}

	if s.DatabaseTag == "" {
		warnings = append(warnings, ValidationWarning{
			Source:     s.Name,
			Field:      "database_tag",
			Message:    "database_tag is empty, found_in_databases will not change",
			Suggestion: fmt.Sprintf("Set 'database_tag', for example '%s'", s.Name),
		})
	}

	if s.XRefTag == "" {
		warnings = append(warnings, ValidationWarning{
			Source:     s.Name,
			Field:      "xref_tag",
			Message:    "xref_tag is empty, cross-references will not be added",
			Suggestion: "Set 'xref_tag' to one of the known cross-reference sources",
		})
	}

	if s.XRefURL != "" && !IsValidURL(s.XRefURL) {
		warnings = append(warnings, ValidationWarning{
			Source:     s.Name,
			Field:      "xref_url",
			Message:    fmt.Sprintf("'%s' is not an http(s) URL", s.XRefURL),
			Suggestion: "Use a link prefix that becomes an entry page when an id is appended",
		})
		s.XRefURL = ""
	}

	if s.NameTrustLevel < 0 {
		return nil, fmt.Errorf("name_trust_level cannot be negative")
	}
	return warnings, nil
}

// IsValidURL checks if a string is a valid URL.
func IsValidURL(str string) bool {
	u, err := url.Parse(str)
	return err == nil && (u.Scheme == "http" || u.Scheme == "https")
}

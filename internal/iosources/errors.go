package iosources

import (
	"fmt"
	"strings"

	"github.com/gnames/gn"
	"github.com/gnames/npdb/pkg/errcode"
	"github.com/gnames/npdb/pkg/sources"
)

// SourcesConfigError creates an error for when sources.yaml
// cannot be loaded.
func SourcesConfigError(path string, err error) error {
	msg := `Cannot load sources configuration

<em>Configuration file:</em> %s

<em>Possible causes:</em>
  - File does not exist
  - Invalid YAML format
  - Unknown source or missing file location

<em>How to fix:</em>
  1. Check if file exists: <em>ls -l %s</em>
  2. Validate YAML syntax
  3. Remove the file to get a fresh template on the next run`

	vars := []any{path, path}

	return &gn.Error{
		Code: errcode.SourcesConfigError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("failed to load sources config: %w", err),
	}
}

// SourcesUnknownError is returned when a pass needs a source that is not
// in sources.yaml.
func SourcesUnknownError(name string) error {
	msg := `Source <em>%s</em> is not configured in sources.yaml

<em>Known sources:</em> %s`

	known := append([]string{}, sources.VendorOrder...)
	known = append(known, sources.IUPAC, sources.Classification)
	vars := []any{name, strings.Join(known, ", ")}

	return &gn.Error{
		Code: errcode.SourcesUnknownError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("source %s is not configured", name),
	}
}

// RulesParseError is returned when rules.yaml cannot be used.
func RulesParseError(path string, err error) error {
	msg := `Cannot load name rules from <em>%s</em>

Remove the file to restore default rules on the next run.`

	return &gn.Error{
		Code: errcode.RulesParseError,
		Msg:  msg,
		Vars: []any{path},
		Err:  fmt.Errorf("failed to load rules %s: %w", path, err),
	}
}

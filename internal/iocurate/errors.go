package iocurate

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/npdb/pkg/errcode"
)

// CancelledError creates an error for when a pass is cancelled.
// The last processed accession id can be used to resume the pass.
func CancelledError(pass, last string, err error) error {
	msg := "Pass <em>%s</em> was cancelled"
	vars := []any{pass}
	if last != "" {
		msg += ", resume with <em>--after %s</em>"
		vars = append(vars, last)
	}

	return &gn.Error{
		Code: errcode.CurateCancelledError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("pass %s cancelled: %w", pass, err),
	}
}

// UnknownPassError creates an error for a collection pass that does not
// exist.
func UnknownPassError(pass string) error {
	msg := `Unknown pass <em>%s</em>

Known passes: xrefs, taxids, annotate, taxa`

	return &gn.Error{
		Code: errcode.CurateUnknownPassError,
		Msg:  msg,
		Vars: []any{pass},
		Err:  fmt.Errorf("unknown pass %s", pass),
	}
}

// NotVendorError creates an error for a source that cannot be merged by
// the curate command.
func NotVendorError(source string) error {
	msg := `Source <em>%s</em> is not a vendor

Vendors: knapsack, chebi, cmaup, pubchem`

	return &gn.Error{
		Code: errcode.SourcesUnknownError,
		Msg:  msg,
		Vars: []any{source},
		Err:  fmt.Errorf("not a vendor: %s", source),
	}
}

package iovendor

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/npdb/pkg/errcode"
)

// ParseError describes a row that has fewer columns than its format
// needs. Such rows are skipped.
type ParseError struct {
	File string
	Line int
	Want int
	Got  int
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s:%d: want at least %d columns, got %d",
		e.File, e.Line, e.Want, e.Got)
}

func ReadFileError(path string, err error) error {
	msg := "Cannot read vendor file <em>%s</em>"
	return &gn.Error{
		Code: errcode.CurateReadFileError,
		Msg:  msg,
		Vars: []any{path},
		Err:  fmt.Errorf("cannot read %s: %w", path, err),
	}
}

func AllRowsFailedError(path string, num int) error {
	msg := `None of <em>%d</em> rows of <em>%s</em> could be parsed

Check that the file matches the layout described in sources.yaml.`
	return &gn.Error{
		Code: errcode.CurateAllRowsFailedError,
		Msg:  msg,
		Vars: []any{num, path},
		Err:  fmt.Errorf("all %d rows of %s are malformed", num, path),
	}
}

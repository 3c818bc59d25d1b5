package iofetch

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/npdb/pkg/errcode"
)

func FileMissingError(location, path string) error {
	msg := `Vendor file <em>%s</em> does not exist

<em>How to fix:</em>
  1. Download the vendor export to <em>%s</em>
  2. Or change its location in ~/.config/npdb/sources.yaml`

	return &gn.Error{
		Code: errcode.SourcesFileMissingError,
		Msg:  msg,
		Vars: []any{location, path},
		Err:  fmt.Errorf("file %s does not exist", path),
	}
}

func FetchError(location string, err error) error {
	msg := "Cannot download <em>%s</em>"
	return &gn.Error{
		Code: errcode.SourcesFetchError,
		Msg:  msg,
		Vars: []any{location},
		Err:  fmt.Errorf("cannot fetch %s: %w", location, err),
	}
}

package iometrics

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/npdb/pkg/errcode"
)

func PushError(url string, err error) error {
	msg := "Cannot push metrics to <em>%s</em>"
	return &gn.Error{
		Code: errcode.MetricsPushError,
		Msg:  msg,
		Vars: []any{url},
		Err:  fmt.Errorf("push metrics: %w", err),
	}
}

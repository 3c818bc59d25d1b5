package ioclassify

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/gnames/npdb/pkg/errcode"
)

// RequestError is returned when a request to the classification service
// cannot be made or the service answers with an error status.
func RequestError(url string, err error) error {
	msg := "Classification service request to <em>%s</em> failed"
	vars := []any{url}
	return &gn.Error{
		Code: errcode.ClassifierRequestError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: %w", caller(), err),
	}
}

// StatusError is returned when a query ends with an unexpected status.
func StatusError(queryID int, status string) error {
	msg := "Classification query <em>%d</em> ended with status <em>%s</em>"
	vars := []any{queryID, status}
	return &gn.Error{
		Code: errcode.ClassifierStatusError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: query %d: %s", caller(), queryID, status),
	}
}

// DecodeError is returned when a service response is not valid JSON.
func DecodeError(url string, err error) error {
	msg := "Cannot decode classification service response from <em>%s</em>"
	vars := []any{url}
	return &gn.Error{
		Code: errcode.ClassifierDecodeError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: %w", caller(), err),
	}
}

// TimeoutError is returned when a query is not done in time.
func TimeoutError(queryID int, timeoutSec int) error {
	msg := "Classification query <em>%d</em> is not done after <em>%d</em> seconds"
	vars := []any{queryID, timeoutSec}
	return &gn.Error{
		Code: errcode.ClassifierTimeoutError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: query %d timed out after %ds",
			caller(), queryID, timeoutSec),
	}
}

// CacheError is returned when the classification cache cannot be used.
func CacheError(path string, err error) error {
	msg := "Cannot use classification cache <em>%s</em>"
	vars := []any{path}
	return &gn.Error{
		Code: errcode.ClassifierCacheError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: %w", caller(), err),
	}
}

func caller() string {
	pc, _, _, _ := runtime.Caller(2)
	fn := runtime.FuncForPC(pc)
	if fn == nil {
		return "unknown"
	}
	return fn.Name()
}

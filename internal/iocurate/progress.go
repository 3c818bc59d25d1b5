package iocurate

import (
	"github.com/cheggaaa/pb/v3"
)

// counterTmpl shows processed items and speed. Passes do not know the
// number of rows or records in advance.
const counterTmpl pb.ProgressBarTemplate = `{{string . "prefix"}} {{counters . }} {{speed . "%s/s"}} {{etime . }}`

// newProgressBar creates a progress counter with consistent settings.
func newProgressBar(prefix string) *pb.ProgressBar {
	bar := counterTmpl.Start(0)
	bar.Set("prefix", prefix)
	bar.Set(pb.CleanOnFinish, true)
	return bar
}

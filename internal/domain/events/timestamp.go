package events

import (
	"fmt"
	"time"
)

// FormatTimestamp renders t in the legacy "YYYY-M-D H:M:S" shape used by the
// channels table, with no zero padding ("2024-3-5 9:2:1"). Existing rows
// store this exact form, so it has to stay byte-compatible.
func FormatTimestamp(t time.Time) string {
	return fmt.Sprintf("%d-%d-%d %d:%d:%d",
		t.Year(), int(t.Month()), t.Day(),
		t.Hour(), t.Minute(), t.Second())
}

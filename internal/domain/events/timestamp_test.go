package events

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestFormatTimestampNoPadding(t *testing.T) {
	ts := time.Date(2024, time.March, 5, 9, 2, 1, 0, time.UTC)
	require.Equal(t, "2024-3-5 9:2:1", FormatTimestamp(ts))
}

func TestFormatTimestampDoubleDigits(t *testing.T) {
	ts := time.Date(2024, time.November, 28, 23, 59, 40, 0, time.UTC)
	require.Equal(t, "2024-11-28 23:59:40", FormatTimestamp(ts))
}

func TestFormatTimestampMidnight(t *testing.T) {
	ts := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
	require.Equal(t, "2025-1-1 0:0:0", FormatTimestamp(ts))
}

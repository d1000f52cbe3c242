package notify

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatDateTimeUTC(t *testing.T) {
	ts := time.Date(2023, time.October, 15, 14, 30, 0, 0, time.UTC)

	parts := FormatDateTime(ts, "UTC")

	assert.Equal(t, "Oct 15, 2023, 2:30 PM", parts.DateTime)
	assert.Equal(t, "Sun, 10/15/2023", parts.DateDay)
	assert.Equal(t, "Oct 15, 2023", parts.DateOnly)
	assert.Equal(t, "2:30 PM", parts.TimeOnly)
}

func TestFormatDateTimeTargetZone(t *testing.T) {
	ts := time.Date(2023, time.October, 15, 14, 30, 0, 0, time.UTC)

	// 14:30 UTC is 20:00 in Asia/Calcutta (+05:30)
	parts := FormatDateTime(ts, "Asia/Calcutta")

	assert.Equal(t, "8:00 PM", parts.TimeOnly)
	assert.Equal(t, "Oct 15, 2023", parts.DateOnly)
}

func TestFormatDateTimeDefaultsToConfiguredZone(t *testing.T) {
	ts := time.Date(2023, time.October, 15, 14, 30, 0, 0, time.UTC)

	assert.Equal(t, FormatDateTime(ts, DefaultTimezone), FormatDateTime(ts, ""))
}

func TestFormatDateTimeUnknownZoneFallsBack(t *testing.T) {
	ts := time.Date(2023, time.October, 15, 14, 30, 0, 0, time.UTC)

	parts := FormatDateTime(ts, "Not/AZone")

	assert.Equal(t, "2:30 PM", parts.TimeOnly)
}

func TestFormatDateTimeIsDeterministic(t *testing.T) {
	ts := time.Date(2024, time.January, 15, 10, 0, 0, 0, time.UTC)

	first := FormatDateTime(ts, "Asia/Calcutta")
	second := FormatDateTime(ts, "Asia/Calcutta")

	assert.Equal(t, first, second)
}

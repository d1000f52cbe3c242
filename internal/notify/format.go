package notify

import (
	"time"
)

// DefaultTimezone is the display zone used when none is configured.
const DefaultTimezone = "Asia/Calcutta"

// Display layouts for appointment date/time strings. These are stable output
// formats, not parse formats.
const (
	layoutDateTime = "Jan 2, 2006, 3:04 PM" // combined long date+time
	layoutDateDay  = "Mon, 01/02/2006"      // weekday + date
	layoutDateOnly = "Jan 2, 2006"
	layoutTimeOnly = "3:04 PM"
)

// DateTimeParts holds the formatted renderings of a single timestamp.
type DateTimeParts struct {
	DateTime string
	DateDay  string
	DateOnly string
	TimeOnly string
}

// FormatDateTime renders a timestamp in the given IANA timezone. An empty or
// unknown timezone falls back to the default display zone, and failing that
// to UTC, so formatting is always deterministic for a given input.
func FormatDateTime(t time.Time, timezone string) DateTimeParts {
	if timezone == "" {
		timezone = DefaultTimezone
	}
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		loc = time.UTC
	}
	local := t.In(loc)

	return DateTimeParts{
		DateTime: local.Format(layoutDateTime),
		DateDay:  local.Format(layoutDateDay),
		DateOnly: local.Format(layoutDateOnly),
		TimeOnly: local.Format(layoutTimeOnly),
	}
}

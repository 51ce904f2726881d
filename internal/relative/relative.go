// Package relative turns instants into short human phrases such as
// "yesterday at 3:00 PM" or "3 hours ago".
package relative

import (
	"time"

	"github.com/dustin/go-humanize"
)

const (
	clockLayout = "3:04 PM"
	dateLayout  = "01/02/2006"
)

// Format describes date relative to base, in calendar days as seen in loc.
//
//	more than 6 days ago   01/02/2006
//	2 to 6 days ago        last Monday at 3:04 PM
//	1 day ago              yesterday at 3:04 PM
//	same day               today at 3:04 PM
//	1 day ahead            tomorrow at 3:04 PM
//	2 to 6 days ahead      Monday at 3:04 PM
//	7 days ahead or more   01/02/2006
//
// A nil loc means UTC.
func Format(date, base time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.UTC
	}
	date = date.In(loc)
	base = base.In(loc)

	clock := date.Format(clockLayout)

	switch diff := calendarDays(date, base); {
	case diff < -6:
		return date.Format(dateLayout)
	case diff < -1:
		return "last " + date.Weekday().String() + " at " + clock
	case diff < 0:
		return "yesterday at " + clock
	case diff < 1:
		return "today at " + clock
	case diff < 2:
		return "tomorrow at " + clock
	case diff < 7:
		return date.Weekday().String() + " at " + clock
	default:
		return date.Format(dateLayout)
	}
}

// calendarDays counts midnights between base and date in their own location.
// Both must already be in the same location.
func calendarDays(date, base time.Time) int {
	dy, dm, dd := date.Date()
	by, bm, bd := base.Date()
	// Compare wall dates in UTC so DST shifts cannot produce 23h or 25h days.
	d := time.Date(dy, dm, dd, 0, 0, 0, 0, time.UTC)
	b := time.Date(by, bm, bd, 0, 0, 0, 0, time.UTC)
	return int(d.Sub(b).Hours() / 24)
}

// Ago renders t relative to now, e.g. "3 hours ago" or "2 days from now".
func Ago(t, now time.Time) string {
	return humanize.RelTime(t, now, "ago", "from now")
}

// Parse reads an upstream timestamp. Anything that is not RFC 3339 is
// reported as missing.
func Parse(ts string) (time.Time, bool) {
	if ts == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(time.RFC3339Nano, ts)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// FormatString parses ts and formats it relative to base.
// ok is false when ts is missing or unparseable.
func FormatString(ts string, base time.Time, loc *time.Location) (string, bool) {
	t, ok := Parse(ts)
	if !ok {
		return "", false
	}
	return Format(t, base, loc), true
}

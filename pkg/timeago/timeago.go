package timeago

import (
	"fmt"
	"time"
)

// Thresholds in elapsed whole seconds.
const (
	minute = 60
	hour   = 3600
	day    = 86400
	week   = 604800
)

// Format returns a short relative label for ts measured against now.
// Anything a week old or older falls back to an absolute date.
// Negative elapsed time (clock skew) is not special-cased.
func Format(ts, now time.Time) string {
	s := int64(now.Sub(ts).Seconds())

	switch {
	case s < minute:
		return "Just now"
	case s < hour:
		return fmt.Sprintf("%dm ago", s/minute)
	case s < day:
		return fmt.Sprintf("%dh ago", s/hour)
	case s < week:
		return fmt.Sprintf("%dd ago", s/day)
	default:
		return ts.Format("Jan 2, 2006")
	}
}

// FormatNow is Format against the current instant.
func FormatNow(ts time.Time) string {
	return Format(ts, time.Now())
}

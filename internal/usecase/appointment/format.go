package appointment

import (
	"fmt"
	"time"
)

// formatLongDate renders "Monday 2nd of March 2025 09:00 AM", the
// phrasing used in default titles and notification messages.
func formatLongDate(t time.Time) string {
	return fmt.Sprintf(
		"%s %s of %s %s",
		t.Weekday().String(),
		ordinal(t.Day()),
		t.Format("January 2006"),
		t.Format("03:04 PM"),
	)
}

func formatClock(t time.Time) string {
	return t.Format("03:04 PM")
}

func ordinal(day int) string {
	suffix := "th"
	switch day % 100 {
	case 11, 12, 13:
	default:
		switch day % 10 {
		case 1:
			suffix = "st"
		case 2:
			suffix = "nd"
		case 3:
			suffix = "rd"
		}
	}
	return fmt.Sprintf("%d%s", day, suffix)
}

package utils

import "time"

// FormatDay renders the calendar day a meal was logged on.
func FormatDay(t time.Time) string {
	return t.Format("2006-01-02")
}

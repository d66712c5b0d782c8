package util

import "time"

const longDateLayout = "02 January 2006"

// FormatLongDate renders t as "19 October 2026".
func FormatLongDate(t time.Time) string {
	return t.Format(longDateLayout)
}

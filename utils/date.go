package utils

import "time"

const dateLayout = "2006-01-02"

// ParseDate parses a YYYY-MM-DD calendar date into a UTC midnight time.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(dateLayout, s)
}

// FormatDate renders a time as its YYYY-MM-DD calendar date.
func FormatDate(t time.Time) string {
	return t.Format(dateLayout)
}

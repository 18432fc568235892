package util

import (
	"time"
)

// DateFormat is the YYYY-MM-DD layout every trip boundary date is given in.
const DateFormat = "2006-01-02"

// ParseDate parses a date string in YYYY-MM-DD format.
func ParseDate(dateStr string) (time.Time, error) {
	return time.Parse(DateFormat, dateStr)
}

// FormatDate formats a time.Time as YYYY-MM-DD.
func FormatDate(date time.Time) string {
	return date.Format(DateFormat)
}

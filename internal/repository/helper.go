package repository

import (
	"fmt"
	"time"
)

// timeFormats are the layouts ParseTime accepts: plain dates, RFC3339
// written by our inserts, and the "YYYY-MM-DD HH:MM:SS" form sqlite
// produces for CURRENT_TIMESTAMP column defaults.
var timeFormats = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02 15:04:05",
}

// ParseTime parses a date or datetime string from a sqlite column.
func ParseTime(str string) (time.Time, error) {
	for _, layout := range timeFormats {
		if parsed, err := time.Parse(layout, str); err == nil {
			return parsed.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("failed to parse date %q", str)
}

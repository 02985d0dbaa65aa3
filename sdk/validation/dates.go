package validation

import (
	"fmt"
	"strings"
	"time"
)

// flexibleDateFormats lists the layouts accepted for user supplied dates,
// most specific first. Day-first European layouts are not accepted since
// they are ambiguous with the month-first ones.
var flexibleDateFormats = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05", // ISO without zone, read as UTC
	"2006-01-02 15:04:05",
	time.DateOnly,
	"2006/01/02",
	"01/02/2006",
	"01-02-2006",
}

// ParseFlexibleDate tries to parse a date string using multiple common formats.
// Values without a zone are interpreted as UTC.
func ParseFlexibleDate(dateStr string) (time.Time, error) {
	dateStr = strings.TrimSpace(dateStr)
	for _, format := range flexibleDateFormats {
		if t, err := time.Parse(format, dateStr); err == nil {
			return t.UTC(), nil
		}
	}

	return time.Time{}, fmt.Errorf("unable to parse date: %q", dateStr)
}

package shared

import (
	"strings"
	"time"
)

// ParseDate accepts RFC3339 or the plain YYYY-MM-DD the CSV
// interfaces and query strings use. Empty input parses to the zero
// time; callers that require a date check IsZero.
func ParseDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, nil
	}
	if parsed, err := time.Parse(time.RFC3339, value); err == nil {
		return parsed, nil
	}
	return time.Parse("2006-01-02", value)
}

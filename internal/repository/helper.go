package repository

import (
	"fmt"
	"time"
)

// ParseTime parses a date string in "2006-01-02", SQLite datetime, or
// RFC3339 format. Kept local to this package to avoid cross-layer imports.
func ParseTime(str string) (time.Time, error) {
	layouts := []string{"2006-01-02", "2006-01-02 15:04:05", time.RFC3339}

	for _, layout := range layouts {
		if parsed, err := time.Parse(layout, str); err == nil {
			return parsed.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("failed to parse date %q", str)
}

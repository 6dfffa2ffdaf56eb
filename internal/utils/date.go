package utils

import (
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

// Today returns the current calendar date as yyyy-mm-dd.
func Today() string {
	return time.Now().Format(dateLayout)
}

// ParseDate converts a yyyy-mm-dd formatted string into a time.Time.
func ParseDate(dateStr string) (time.Time, error) {
	t, err := time.Parse(dateLayout, dateStr)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected yyyy-mm-dd", dateStr)
	}
	return t, nil
}

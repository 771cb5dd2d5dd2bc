package helpers

import (
	"time"
)

// ParseDay parses a YYYY-MM-DD value and returns the bounds of that day.
func ParseDay(value string) (from, to time.Time, err error) {
	day, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return day, day.Add(24*time.Hour - time.Second), nil
}

package utils

import (
	"fmt"
	"strings"
	"time"
)

// Constants
const (
	DATE_LAYOUT = "2006-01-02"
)

// TruncateDate drops the time of day, keeping the calendar date in UTC
func TruncateDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DayBefore returns the calendar date preceding t
func DayBefore(t time.Time) time.Time {
	return TruncateDate(t).AddDate(0, 0, -1)
}

// ParseDate accepts either YYYY-MM-DD or an RFC3339 timestamp and returns the calendar date
func ParseDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, fmt.Errorf("date is empty")
	}

	if t, err := time.Parse(DATE_LAYOUT, value); err == nil {
		return t, nil
	}

	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: expected %s or RFC3339", value, DATE_LAYOUT)
	}
	return TruncateDate(t), nil
}

// FormatDate renders t as YYYY-MM-DD
func FormatDate(t time.Time) string {
	return t.Format(DATE_LAYOUT)
}

// FormatDatePtr renders an optional date, nil stays nil
func FormatDatePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := FormatDate(*t)
	return &s
}

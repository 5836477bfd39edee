package entity

import (
	"strings"
	"time"
)

// RetiredDutyTitle marks the terminal duty of a career
const RetiredDutyTitle = "RETIRED"

// AstronautDuty is one assignment in a person's career timeline.
// DutyEndDate is nil while the duty is the person's current one.
type AstronautDuty struct {
	ID            uint
	PersonID      uint
	Rank          string
	DutyTitle     string
	DutyStartDate time.Time
	DutyEndDate   *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// IsOpen reports whether the duty has no end date yet
func (d *AstronautDuty) IsOpen() bool {
	return d.DutyEndDate == nil
}

// IsRetirementTitle matches the retirement title case-insensitively
func IsRetirementTitle(title string) bool {
	return strings.EqualFold(strings.TrimSpace(title), RetiredDutyTitle)
}

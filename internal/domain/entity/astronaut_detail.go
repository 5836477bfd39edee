package entity

import "time"

// AstronautDetail is the per-person projection of the duty timeline:
// the current title and rank plus career boundaries.
type AstronautDetail struct {
	ID               uint
	PersonID         uint
	CurrentDutyTitle string
	CurrentRank      string
	CareerStartDate  time.Time
	CareerEndDate    *time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// IsRetired reports whether the career has ended
func (d *AstronautDetail) IsRetired() bool {
	return d.CareerEndDate != nil
}

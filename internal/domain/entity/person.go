package entity

import "time"

// Person is a tracked individual, unique by name
type Person struct {
	ID        uint
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

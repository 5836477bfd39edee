package repository

import (
	"context"
	"time"

	"stargate-service/internal/domain/entity"
)

// AstronautDutyRepository defines the interface for duty timeline operations
type AstronautDutyRepository interface {
	GetByID(ctx context.Context, id uint) (*entity.AstronautDuty, error)
	// FindLatestOpen returns the open duty with the latest start date, or ErrNotFound
	FindLatestOpen(ctx context.Context, personID uint) (*entity.AstronautDuty, error)
	// FindByTitleAndStart returns the person's duty with exactly this title and start date, or ErrNotFound
	FindByTitleAndStart(ctx context.Context, personID uint, dutyTitle string, startDate time.Time) (*entity.AstronautDuty, error)
	// ListByPerson returns all duties of a person ordered by start date ascending
	ListByPerson(ctx context.Context, personID uint) ([]*entity.AstronautDuty, error)
	// MinStartDate returns the earliest start date among the person's duties, nil when there are none
	MinStartDate(ctx context.Context, personID uint) (*time.Time, error)
	Create(ctx context.Context, duty *entity.AstronautDuty) error
	Update(ctx context.Context, duty *entity.AstronautDuty) error
}

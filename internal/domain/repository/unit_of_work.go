package repository

import (
	"context"

	"stargate-service/internal/domain/entity"
)

//go:generate mockgen -source=astronaut_duty_repository.go -destination=mocks/astronaut_duty_repository_mock.go -package=mocks
//go:generate mockgen -source=astronaut_detail_repository.go -destination=mocks/astronaut_detail_repository_mock.go -package=mocks

// Repositories groups the stores visible inside one unit of work
type Repositories struct {
	Persons PersonRepository
	Duties  AstronautDutyRepository
	Details AstronautDetailRepository
}

// ChangeSet collects staged writes. Nothing is written until the
// owning UnitOfWork commits.
type ChangeSet struct {
	dutyUpdates []*entity.AstronautDuty
	dutyInserts []*entity.AstronautDuty
	details     []*entity.AstronautDetail
}

// UpdateDuty stages an update of an existing duty
func (c *ChangeSet) UpdateDuty(duty *entity.AstronautDuty) {
	c.dutyUpdates = appendOnce(c.dutyUpdates, duty)
}

// InsertDuty stages a new duty; its ID is assigned on commit
func (c *ChangeSet) InsertDuty(duty *entity.AstronautDuty) {
	c.dutyInserts = appendOnce(c.dutyInserts, duty)
}

// SaveDetail stages a detail; ID 0 means insert, anything else update
func (c *ChangeSet) SaveDetail(detail *entity.AstronautDetail) {
	for _, d := range c.details {
		if d == detail {
			return
		}
	}
	c.details = append(c.details, detail)
}

func (c *ChangeSet) DutyUpdates() []*entity.AstronautDuty { return c.dutyUpdates }
func (c *ChangeSet) DutyInserts() []*entity.AstronautDuty { return c.dutyInserts }
func (c *ChangeSet) Details() []*entity.AstronautDetail   { return c.details }

// Empty reports whether nothing has been staged
func (c *ChangeSet) Empty() bool {
	return len(c.dutyUpdates) == 0 && len(c.dutyInserts) == 0 && len(c.details) == 0
}

func appendOnce(list []*entity.AstronautDuty, duty *entity.AstronautDuty) []*entity.AstronautDuty {
	for _, d := range list {
		if d == duty {
			return list
		}
	}
	return append(list, duty)
}

// UnitOfWork runs fn inside one transaction. fn reads through repos and
// stages writes on cs. When fn returns nil and ctx is still live, the staged
// writes are applied in order (duty updates, duty inserts, details) and
// committed together; otherwise everything is rolled back.
type UnitOfWork interface {
	Run(ctx context.Context, fn func(ctx context.Context, repos Repositories, cs *ChangeSet) error) error
}

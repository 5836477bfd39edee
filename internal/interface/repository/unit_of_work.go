package repository

import (
	"context"
	"fmt"

	"stargate-service/internal/domain/repository"

	"gorm.io/gorm"
)

// GormUnitOfWork implements repository.UnitOfWork on a gorm transaction
type GormUnitOfWork struct {
	db *gorm.DB
}

// NewGormUnitOfWork creates a unit of work bound to db
func NewGormUnitOfWork(db *gorm.DB) repository.UnitOfWork {
	return &GormUnitOfWork{
		db: db,
	}
}

// NewGormRepositories builds the repository set over db, which may be a transaction
func NewGormRepositories(db *gorm.DB) repository.Repositories {
	return repository.Repositories{
		Persons: NewGormPersonRepository(db),
		Duties:  NewGormAstronautDutyRepository(db),
		Details: NewGormAstronautDetailRepository(db),
	}
}

// Run executes fn in a transaction and commits the staged change set
func (u *GormUnitOfWork) Run(ctx context.Context, fn func(ctx context.Context, repos repository.Repositories, cs *repository.ChangeSet) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var fnErr error
	err := u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repos := NewGormRepositories(tx)
		cs := &repository.ChangeSet{}

		if fnErr = fn(ctx, repos, cs); fnErr != nil {
			return fnErr
		}

		// A cancelled request must not commit
		if err := ctx.Err(); err != nil {
			return err
		}

		return apply(ctx, repos, cs)
	})

	if fnErr != nil {
		return fnErr
	}
	return translateError(err)
}

// apply closes previous duties before inserting new open ones so the
// one-open-duty index is never violated mid-transaction.
func apply(ctx context.Context, repos repository.Repositories, cs *repository.ChangeSet) error {
	for _, duty := range cs.DutyUpdates() {
		if err := repos.Duties.Update(ctx, duty); err != nil {
			return fmt.Errorf("failed to update duty %d: %w", duty.ID, err)
		}
	}

	for _, duty := range cs.DutyInserts() {
		if err := repos.Duties.Create(ctx, duty); err != nil {
			return fmt.Errorf("failed to insert duty: %w", err)
		}
	}

	for _, detail := range cs.Details() {
		var err error
		if detail.ID == 0 {
			err = repos.Details.Create(ctx, detail)
		} else {
			err = repos.Details.Update(ctx, detail)
		}
		if err != nil {
			return fmt.Errorf("failed to save astronaut detail for person %d: %w", detail.PersonID, err)
		}
	}

	return nil
}

package usecase

import (
	"context"
	"fmt"
	"time"
)

// SeedDemoData registers the demo crew on an empty database. It goes
// through the regular workflow so the seeded timeline obeys the same rules.
func SeedDemoData(ctx context.Context, people *PersonService, workflow *DutyWorkflow) error {
	count, err := people.CountPeople(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	john, err := people.RegisterPerson(ctx, "John Doe")
	if err != nil {
		return fmt.Errorf("failed to seed John Doe: %w", err)
	}
	if _, err := people.RegisterPerson(ctx, "Jane Doe"); err != nil {
		return fmt.Errorf("failed to seed Jane Doe: %w", err)
	}

	_, err = workflow.CreateDuty(ctx, CreateDutyRequest{
		Name:          john.Name,
		Rank:          "1LT",
		DutyTitle:     "Commander",
		DutyStartDate: time.Now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("failed to seed duty for %s: %w", john.Name, err)
	}

	return nil
}

package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"stargate-service/internal/domain/entity"
	"stargate-service/internal/domain/repository"
	"stargate-service/pkg/apperror"
	"stargate-service/pkg/utils"
)

// DutyRules applies the duty lifecycle rules to one person's timeline.
// It reads through its repositories and stages every write on the
// ChangeSet it is given; it never writes to the store itself.
type DutyRules struct {
	duties  repository.AstronautDutyRepository
	details repository.AstronautDetailRepository
}

// NewDutyRules creates a rules engine over the given repositories
func NewDutyRules(
	duties repository.AstronautDutyRepository,
	details repository.AstronautDetailRepository,
) *DutyRules {
	return &DutyRules{
		duties:  duties,
		details: details,
	}
}

// GetLatestOpenDuty returns the person's open duty with the latest start date, or nil
func (r *DutyRules) GetLatestOpenDuty(ctx context.Context, personID uint) (*entity.AstronautDuty, error) {
	duty, err := r.duties.FindLatestOpen(ctx, personID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load open duty for person %d: %w", personID, err)
	}
	return duty, nil
}

// CloseOpenDuty ends the person's open duty the day before newStartDate.
// It returns nil when the person has no open duty. The new duty must start
// strictly after the open one started.
func (r *DutyRules) CloseOpenDuty(ctx context.Context, cs *repository.ChangeSet, personID uint, newStartDate time.Time) (*entity.AstronautDuty, error) {
	open, err := r.GetLatestOpenDuty(ctx, personID)
	if err != nil || open == nil {
		return nil, err
	}

	start := utils.TruncateDate(newStartDate)
	if !open.DutyStartDate.Before(start) {
		return nil, apperror.Newf(apperror.KindInvalidOrdering,
			"Duty start date %s must be after the start date of the current duty (%s)",
			utils.FormatDate(start), utils.FormatDate(open.DutyStartDate))
	}

	end := utils.DayBefore(start)
	open.DutyEndDate = &end
	cs.UpdateDuty(open)

	return open, nil
}

// UpsertDetail creates the person's detail on their first duty, or refreshes
// the current title and rank and recomputes the career start date.
func (r *DutyRules) UpsertDetail(ctx context.Context, cs *repository.ChangeSet, person *entity.Person, dutyTitle, rank string, dutyStartDate time.Time) (*entity.AstronautDetail, error) {
	if err := validatePerson(person); err != nil {
		return nil, err
	}
	if err := requireNotBlank(dutyTitle, "dutyTitle"); err != nil {
		return nil, err
	}
	if err := requireNotBlank(rank, "rank"); err != nil {
		return nil, err
	}

	start := utils.TruncateDate(dutyStartDate)

	detail, err := r.details.GetByPersonID(ctx, person.ID)
	if errors.Is(err, repository.ErrNotFound) {
		detail = &entity.AstronautDetail{
			PersonID:         person.ID,
			CurrentDutyTitle: dutyTitle,
			CurrentRank:      rank,
			CareerStartDate:  start,
		}
		cs.SaveDetail(detail)
		return detail, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load astronaut detail for person %d: %w", person.ID, err)
	}

	// The staged duty is not in the store yet, so it joins the minimum explicitly
	careerStart := start
	earliest, err := r.duties.MinStartDate(ctx, person.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to compute career start for person %d: %w", person.ID, err)
	}
	if earliest != nil && earliest.Before(careerStart) {
		careerStart = *earliest
	}

	detail.CurrentDutyTitle = dutyTitle
	detail.CurrentRank = rank
	detail.CareerStartDate = careerStart
	detail.CareerEndDate = nil
	cs.SaveDetail(detail)

	return detail, nil
}

// Retire moves the person into the terminal RETIRED state: the detail's career
// ends the day before dutyStartDate, the open duty is closed and a new open
// RETIRED duty is staged and returned.
func (r *DutyRules) Retire(ctx context.Context, cs *repository.ChangeSet, person *entity.Person, dutyStartDate time.Time, rank string) (*entity.AstronautDuty, error) {
	if err := validatePerson(person); err != nil {
		return nil, err
	}
	if err := requireNotBlank(rank, "rank"); err != nil {
		return nil, err
	}

	detail, err := r.details.GetByPersonID(ctx, person.ID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, apperror.New(apperror.KindNotFound, "No active astronaut duty found to retire")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load astronaut detail for person %d: %w", person.ID, err)
	}

	start := utils.TruncateDate(dutyStartDate)
	careerEnd := utils.DayBefore(start)

	detail.CurrentDutyTitle = entity.RetiredDutyTitle
	detail.CurrentRank = rank
	detail.CareerEndDate = &careerEnd
	cs.SaveDetail(detail)

	if _, err := r.CloseOpenDuty(ctx, cs, person.ID, start); err != nil {
		return nil, err
	}

	retired := &entity.AstronautDuty{
		PersonID:      person.ID,
		Rank:          rank,
		DutyTitle:     entity.RetiredDutyTitle,
		DutyStartDate: start,
	}
	cs.InsertDuty(retired)

	return retired, nil
}

func validatePerson(person *entity.Person) error {
	if person == nil {
		return apperror.New(apperror.KindInvalidArgument, "person is required")
	}
	if person.ID == 0 {
		return apperror.New(apperror.KindInvalidArgument, "Person Id must be greater than zero")
	}
	return nil
}

func requireNotBlank(value, field string) error {
	if strings.TrimSpace(value) == "" {
		return apperror.Newf(apperror.KindInvalidArgument, "'%s' cannot be empty", field)
	}
	return nil
}

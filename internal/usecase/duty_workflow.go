package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"stargate-service/internal/domain/entity"
	"stargate-service/internal/domain/repository"
	"stargate-service/pkg/apperror"
	"stargate-service/pkg/logger"
	"stargate-service/pkg/metrics"
	"stargate-service/pkg/utils"
	"stargate-service/pkg/validator"
)

const submissionHistoryLimit = 50

// DutyOutcome is the branch a create-duty request takes
type DutyOutcome int

const (
	OutcomeRegularAssignment DutyOutcome = iota
	OutcomeRetirement
)

func (o DutyOutcome) String() string {
	if o == OutcomeRetirement {
		return "retirement"
	}
	return "regular_assignment"
}

// ClassifyDuty picks the outcome by a case-insensitive match on the title
func ClassifyDuty(dutyTitle string) DutyOutcome {
	if entity.IsRetirementTitle(dutyTitle) {
		return OutcomeRetirement
	}
	return OutcomeRegularAssignment
}

// CreateDutyRequest is a new duty assignment for a person identified by name
type CreateDutyRequest struct {
	Name          string    `json:"name" validate:"notblank"`
	Rank          string    `json:"rank" validate:"notblank"`
	DutyTitle     string    `json:"dutyTitle" validate:"notblank"`
	DutyStartDate time.Time `json:"dutyStartDate"`
}

// CreateDutyResult carries the new duty id; ID is nil on the retirement path
type CreateDutyResult struct {
	ID      *uint
	Outcome DutyOutcome
}

// DutyWorkflow orchestrates duty creation: validate, look up, apply the
// rules engine and commit everything as one unit of work.
type DutyWorkflow struct {
	persons     repository.PersonRepository
	duties      repository.AstronautDutyRepository
	uow         repository.UnitOfWork
	submissions repository.SubmissionRepository
	validator   *validator.Validator
	metrics     *metrics.Metrics
	logger      logger.Logger
}

// NewDutyWorkflow creates a new duty workflow
func NewDutyWorkflow(
	persons repository.PersonRepository,
	duties repository.AstronautDutyRepository,
	uow repository.UnitOfWork,
	submissions repository.SubmissionRepository,
	validator *validator.Validator,
	metrics *metrics.Metrics,
	logger logger.Logger,
) *DutyWorkflow {
	return &DutyWorkflow{
		persons:     persons,
		duties:      duties,
		uow:         uow,
		submissions: submissions,
		validator:   validator,
		metrics:     metrics,
		logger:      logger,
	}
}

// ValidateAndCheckDuplicate runs the pre-conditions of CreateDuty without mutating anything
func (w *DutyWorkflow) ValidateAndCheckDuplicate(ctx context.Context, req CreateDutyRequest) (*entity.Person, error) {
	if err := w.validator.Validate(req); err != nil {
		return nil, apperror.Wrap(err, apperror.KindInvalidArgument, "Name, Rank, and DutyTitle are required")
	}
	if req.DutyStartDate.IsZero() {
		return nil, apperror.New(apperror.KindInvalidArgument, "DutyStartDate is required")
	}

	person, err := w.persons.GetByName(ctx, req.Name)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, apperror.New(apperror.KindNotFound, "Person not found")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up person: %w", err)
	}

	// Retirement duties are always stored under the canonical title
	title := req.DutyTitle
	if ClassifyDuty(title) == OutcomeRetirement {
		title = entity.RetiredDutyTitle
	}

	_, err = w.duties.FindByTitleAndStart(ctx, person.ID, title, req.DutyStartDate)
	if err == nil {
		return nil, apperror.New(apperror.KindConflict, "A duty with the same title and start date already exists")
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("failed to check for duplicate duty: %w", err)
	}

	return person, nil
}

// CreateDuty assigns a new duty, or retires the person when the title is RETIRED
func (w *DutyWorkflow) CreateDuty(ctx context.Context, req CreateDutyRequest) (*CreateDutyResult, error) {
	receivedAt := time.Now()

	result, err := w.createDuty(ctx, req)

	if w.metrics != nil {
		w.metrics.ProcessingTime.Observe(time.Since(receivedAt).Seconds())
	}
	w.recordSubmission(ctx, req, result, err, receivedAt)

	if err != nil {
		kind := apperror.KindOf(err)
		w.metrics.ObserveError("create_duty", string(kind))
		if kind == apperror.KindInternal {
			w.logger.Error("Failed to create astronaut duty", "name", req.Name, "error", err)
		} else {
			w.logger.Warn("Astronaut duty rejected", "name", req.Name, "kind", kind, "reason", apperror.MessageOf(err))
		}
		return nil, err
	}

	if w.metrics != nil {
		if result.Outcome == OutcomeRetirement {
			w.metrics.Retirements.Inc()
		} else {
			w.metrics.DutiesAssigned.Inc()
		}
	}

	w.logger.Info("Astronaut duty created",
		"name", req.Name,
		"dutyTitle", req.DutyTitle,
		"outcome", result.Outcome.String(),
		"dutyId", result.ID)

	return result, nil
}

func (w *DutyWorkflow) createDuty(ctx context.Context, req CreateDutyRequest) (*CreateDutyResult, error) {
	if _, err := w.ValidateAndCheckDuplicate(ctx, req); err != nil {
		return nil, err
	}

	start := utils.TruncateDate(req.DutyStartDate)
	result := &CreateDutyResult{Outcome: ClassifyDuty(req.DutyTitle)}
	var newDuty *entity.AstronautDuty

	err := w.uow.Run(ctx, func(ctx context.Context, repos repository.Repositories, cs *repository.ChangeSet) error {
		person, err := repos.Persons.GetByName(ctx, req.Name)
		if errors.Is(err, repository.ErrNotFound) {
			return apperror.New(apperror.KindNotFound, "Person not found")
		}
		if err != nil {
			return fmt.Errorf("failed to look up person: %w", err)
		}

		rules := NewDutyRules(repos.Duties, repos.Details)

		switch result.Outcome {
		case OutcomeRetirement:
			_, err := rules.Retire(ctx, cs, person, start, req.Rank)
			return err

		default:
			if _, err := rules.CloseOpenDuty(ctx, cs, person.ID, start); err != nil {
				return err
			}

			newDuty = &entity.AstronautDuty{
				PersonID:      person.ID,
				Rank:          req.Rank,
				DutyTitle:     req.DutyTitle,
				DutyStartDate: start,
			}
			cs.InsertDuty(newDuty)

			_, err := rules.UpsertDetail(ctx, cs, person, req.DutyTitle, req.Rank, start)
			return err
		}
	})
	if err != nil {
		return nil, translateCommitError(err)
	}

	if newDuty != nil {
		id := newDuty.ID
		result.ID = &id
	}
	return result, nil
}

// RecordRejection logs a create-duty attempt the transport layer refused
// before it could be turned into a CreateDutyRequest, such as an
// unparseable start date.
func (w *DutyWorkflow) RecordRejection(ctx context.Context, req CreateDutyRequest, err error) {
	receivedAt := time.Now()
	w.metrics.ObserveError("create_duty", string(apperror.KindOf(err)))
	w.recordSubmission(ctx, req, nil, err, receivedAt)
}

// ListSubmissions returns the person's latest duty submissions, newest first
func (w *DutyWorkflow) ListSubmissions(ctx context.Context, name string) ([]*entity.DutySubmission, error) {
	if err := requireNotBlank(name, "name"); err != nil {
		return nil, err
	}

	submissions, err := w.submissions.FindByPersonName(ctx, name, submissionHistoryLimit)
	if err != nil {
		return nil, apperror.Wrap(err, apperror.KindInternal, "failed to load duty submissions")
	}
	return submissions, nil
}

// recordSubmission never fails the request; the log is best effort
func (w *DutyWorkflow) recordSubmission(ctx context.Context, req CreateDutyRequest, result *CreateDutyResult, err error, receivedAt time.Time) {
	if w.submissions == nil {
		return
	}

	submission := &entity.DutySubmission{
		PersonName:    req.Name,
		Rank:          req.Rank,
		DutyTitle:     req.DutyTitle,
		DutyStartDate: utils.TruncateDate(req.DutyStartDate),
		Status:        entity.SubmissionCompleted,
		ReceivedAt:    receivedAt,
		ProcessedAt:   time.Now(),
	}

	switch {
	case err == nil:
		submission.DutyID = result.ID
	case apperror.KindOf(err) == apperror.KindInternal:
		// The log is served to clients; the cause stays in the process log
		submission.Status = entity.SubmissionFailed
		submission.ErrorKind = string(apperror.KindInternal)
		submission.ErrorDetail = apperror.MessageOf(err)
	default:
		submission.Status = entity.SubmissionRejected
		submission.ErrorKind = string(apperror.KindOf(err))
		submission.ErrorDetail = apperror.MessageOf(err)
	}

	// The request context may already be cancelled; the log entry should still land
	logCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
	defer cancel()

	if saveErr := w.submissions.Save(logCtx, submission); saveErr != nil {
		w.logger.Warn("Failed to record duty submission", "name", req.Name, "error", saveErr)
	}
}

// translateCommitError maps store failures at commit time onto apperror kinds
func translateCommitError(err error) error {
	var appErr *apperror.Error
	if errors.As(err, &appErr) {
		return err
	}
	if errors.Is(err, repository.ErrDuplicate) {
		return apperror.Wrap(err, apperror.KindConflict, "Duty conflicts with a concurrent change for this person")
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return apperror.Wrap(err, apperror.KindInternal, "request cancelled before commit")
	}
	return apperror.Wrap(err, apperror.KindInternal, "failed to create astronaut duty")
}

package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"stargate-service/internal/domain/entity"
	"stargate-service/internal/domain/repository"
	"stargate-service/pkg/apperror"
	"stargate-service/pkg/logger"
	"stargate-service/pkg/metrics"
)

// PersonAstronaut is a person with their current detail projection, if any
type PersonAstronaut struct {
	Person *entity.Person
	Detail *entity.AstronautDetail
}

// PersonDuties is a person with their detail and duties in chronological order
type PersonDuties struct {
	Person *entity.Person
	Detail *entity.AstronautDetail
	Duties []*entity.AstronautDuty
}

// PersonService serves the person queries and registration
type PersonService struct {
	persons repository.PersonRepository
	duties  repository.AstronautDutyRepository
	details repository.AstronautDetailRepository
	metrics *metrics.Metrics
	logger  logger.Logger
}

// NewPersonService creates a new person service
func NewPersonService(
	persons repository.PersonRepository,
	duties repository.AstronautDutyRepository,
	details repository.AstronautDetailRepository,
	metrics *metrics.Metrics,
	logger logger.Logger,
) *PersonService {
	return &PersonService{
		persons: persons,
		duties:  duties,
		details: details,
		metrics: metrics,
		logger:  logger,
	}
}

// GetPersonByName returns the person and their detail; Detail is nil before the first duty
func (s *PersonService) GetPersonByName(ctx context.Context, name string) (*PersonAstronaut, error) {
	person, err := s.lookup(ctx, name)
	if err != nil {
		return nil, err
	}

	detail, err := s.details.GetByPersonID(ctx, person.ID)
	if errors.Is(err, repository.ErrNotFound) {
		return &PersonAstronaut{Person: person}, nil
	}
	if err != nil {
		return nil, apperror.Wrap(err, apperror.KindInternal, "failed to load astronaut detail")
	}

	return &PersonAstronaut{Person: person, Detail: detail}, nil
}

// GetDutiesByPersonName returns the person's duties ordered by start date.
// A person without duties yields an empty list.
func (s *PersonService) GetDutiesByPersonName(ctx context.Context, name string) (*PersonDuties, error) {
	astronaut, err := s.GetPersonByName(ctx, name)
	if err != nil {
		return nil, err
	}

	duties, err := s.duties.ListByPerson(ctx, astronaut.Person.ID)
	if err != nil {
		return nil, apperror.Wrap(err, apperror.KindInternal, "failed to load astronaut duties")
	}

	return &PersonDuties{
		Person: astronaut.Person,
		Detail: astronaut.Detail,
		Duties: duties,
	}, nil
}

// GetAllPeople returns every person joined with their detail
func (s *PersonService) GetAllPeople(ctx context.Context) ([]*PersonAstronaut, error) {
	people, err := s.persons.List(ctx)
	if err != nil {
		return nil, apperror.Wrap(err, apperror.KindInternal, "failed to list people")
	}

	details, err := s.details.List(ctx)
	if err != nil {
		return nil, apperror.Wrap(err, apperror.KindInternal, "failed to list astronaut details")
	}

	byPerson := make(map[uint]*entity.AstronautDetail, len(details))
	for _, d := range details {
		byPerson[d.PersonID] = d
	}

	result := make([]*PersonAstronaut, 0, len(people))
	for _, p := range people {
		result = append(result, &PersonAstronaut{Person: p, Detail: byPerson[p.ID]})
	}
	return result, nil
}

// RegisterPerson creates a person with a unique name
func (s *PersonService) RegisterPerson(ctx context.Context, name string) (*entity.Person, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperror.New(apperror.KindInvalidArgument, "Name is required")
	}

	person := &entity.Person{Name: name}
	if err := s.persons.Create(ctx, person); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			s.metrics.ObserveError("register_person", string(apperror.KindConflict))
			return nil, apperror.Newf(apperror.KindConflict, "Person %q already exists", name)
		}
		s.metrics.ObserveError("register_person", string(apperror.KindInternal))
		s.logger.Error("Failed to register person", "name", name, "error", err)
		return nil, apperror.Wrap(err, apperror.KindInternal, "failed to register person")
	}

	if s.metrics != nil {
		s.metrics.PeopleRegistered.Inc()
	}
	s.logger.Info("Person registered", "name", name, "personId", person.ID)

	return person, nil
}

// RenamePerson changes a person's name; the new name must be unused
func (s *PersonService) RenamePerson(ctx context.Context, currentName, newName string) (*entity.Person, error) {
	newName = strings.TrimSpace(newName)
	if newName == "" {
		return nil, apperror.New(apperror.KindInvalidArgument, "Name is required")
	}

	person, err := s.lookup(ctx, currentName)
	if err != nil {
		return nil, err
	}
	if person.Name == newName {
		return person, nil
	}

	person.Name = newName
	if err := s.persons.Update(ctx, person); err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicate):
			return nil, apperror.Newf(apperror.KindConflict, "Person %q already exists", newName)
		case errors.Is(err, repository.ErrNotFound):
			return nil, apperror.New(apperror.KindNotFound, "Person not found")
		}
		s.logger.Error("Failed to rename person", "name", currentName, "error", err)
		return nil, apperror.Wrap(err, apperror.KindInternal, "failed to rename person")
	}

	s.logger.Info("Person renamed", "from", currentName, "to", newName, "personId", person.ID)
	return person, nil
}

// CountPeople returns the number of registered people
func (s *PersonService) CountPeople(ctx context.Context) (int64, error) {
	count, err := s.persons.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count people: %w", err)
	}
	return count, nil
}

func (s *PersonService) lookup(ctx context.Context, name string) (*entity.Person, error) {
	if err := requireNotBlank(name, "name"); err != nil {
		return nil, err
	}

	person, err := s.persons.GetByName(ctx, name)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, apperror.New(apperror.KindNotFound, "Person not found")
	}
	if err != nil {
		return nil, apperror.Wrap(err, apperror.KindInternal, "failed to look up person")
	}
	return person, nil
}

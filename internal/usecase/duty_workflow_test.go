package usecase_test

import (
	"context"
	"testing"
	"time"

	"stargate-service/internal/domain/entity"
	"stargate-service/internal/domain/repository"
	gormRepo "stargate-service/internal/interface/repository"
	"stargate-service/internal/testutil"
	"stargate-service/internal/usecase"
	"stargate-service/pkg/apperror"
	"stargate-service/pkg/logger"
	"stargate-service/pkg/metrics"
	"stargate-service/pkg/validator"

	"github.com/prometheus/client_golang/prometheus"
	promtestutil "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

type DutyWorkflowSuite struct {
	suite.Suite
	ctx         context.Context
	db          *gorm.DB
	repos       repository.Repositories
	submissions repository.SubmissionRepository
	metrics     *metrics.Metrics
	people      *usecase.PersonService
	workflow    *usecase.DutyWorkflow
}

func TestDutyWorkflowSuite(t *testing.T) {
	suite.Run(t, new(DutyWorkflowSuite))
}

func (s *DutyWorkflowSuite) SetupTest() {
	s.ctx = context.Background()
	s.db = testutil.NewTestDB(s.T())
	s.repos = gormRepo.NewGormRepositories(s.db)
	s.submissions = gormRepo.NewInMemorySubmissionRepository()
	s.metrics = metrics.NewMetrics("test", prometheus.NewRegistry())

	log := logger.NewNopLogger()
	s.people = usecase.NewPersonService(s.repos.Persons, s.repos.Duties, s.repos.Details, s.metrics, log)
	s.workflow = usecase.NewDutyWorkflow(
		s.repos.Persons,
		s.repos.Duties,
		gormRepo.NewGormUnitOfWork(s.db),
		s.submissions,
		validator.New(),
		s.metrics,
		log,
	)
}

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func (s *DutyWorkflowSuite) register(name string) *entity.Person {
	person, err := s.people.RegisterPerson(s.ctx, name)
	s.Require().NoError(err)
	return person
}

func (s *DutyWorkflowSuite) createDuty(name, rank, title, start string) (*usecase.CreateDutyResult, error) {
	return s.workflow.CreateDuty(s.ctx, usecase.CreateDutyRequest{
		Name:          name,
		Rank:          rank,
		DutyTitle:     title,
		DutyStartDate: day(start),
	})
}

func (s *DutyWorkflowSuite) duties(personID uint) []*entity.AstronautDuty {
	duties, err := s.repos.Duties.ListByPerson(s.ctx, personID)
	s.Require().NoError(err)
	return duties
}

func (s *DutyWorkflowSuite) detail(personID uint) *entity.AstronautDetail {
	detail, err := s.repos.Details.GetByPersonID(s.ctx, personID)
	s.Require().NoError(err)
	return detail
}

func (s *DutyWorkflowSuite) assertSingleOpenDuty(personID uint) {
	open := 0
	for _, d := range s.duties(personID) {
		if d.IsOpen() {
			open++
		}
	}
	s.Equal(1, open, "person %d must hold exactly one open duty", personID)
}

func (s *DutyWorkflowSuite) TestFirstDutyCreatesDetail() {
	john := s.register("John Doe")

	result, err := s.createDuty("John Doe", "1LT", "Commander", "2023-01-01")
	s.Require().NoError(err)
	s.Require().NotNil(result.ID)
	s.Equal(usecase.OutcomeRegularAssignment, result.Outcome)

	duties := s.duties(john.ID)
	s.Require().Len(duties, 1)
	s.Equal(*result.ID, duties[0].ID)
	s.True(duties[0].IsOpen())

	detail := s.detail(john.ID)
	s.Equal("Commander", detail.CurrentDutyTitle)
	s.Equal("1LT", detail.CurrentRank)
	s.Equal(day("2023-01-01"), detail.CareerStartDate)
	s.Nil(detail.CareerEndDate)
}

func (s *DutyWorkflowSuite) TestCareerTimeline() {
	john := s.register("John Doe")

	_, err := s.createDuty("John Doe", "1LT", "Commander", "2023-01-01")
	s.Require().NoError(err)

	pilot, err := s.createDuty("John Doe", "Captain", "Pilot", "2023-06-01")
	s.Require().NoError(err)
	s.Require().NotNil(pilot.ID)

	duties := s.duties(john.ID)
	s.Require().Len(duties, 2)
	s.Equal("Commander", duties[0].DutyTitle)
	s.Require().NotNil(duties[0].DutyEndDate)
	s.Equal(day("2023-05-31"), *duties[0].DutyEndDate)
	s.Equal("Pilot", duties[1].DutyTitle)
	s.True(duties[1].IsOpen())
	s.assertSingleOpenDuty(john.ID)

	detail := s.detail(john.ID)
	s.Equal("Pilot", detail.CurrentDutyTitle)
	s.Equal("Captain", detail.CurrentRank)
	s.Equal(day("2023-01-01"), detail.CareerStartDate)

	retired, err := s.createDuty("John Doe", "Captain", "RETIRED", "2024-01-01")
	s.Require().NoError(err)
	s.Nil(retired.ID)
	s.Equal(usecase.OutcomeRetirement, retired.Outcome)

	duties = s.duties(john.ID)
	s.Require().Len(duties, 3)
	s.Require().NotNil(duties[1].DutyEndDate)
	s.Equal(day("2023-12-31"), *duties[1].DutyEndDate)
	s.Equal(entity.RetiredDutyTitle, duties[2].DutyTitle)
	s.True(duties[2].IsOpen())
	s.assertSingleOpenDuty(john.ID)

	detail = s.detail(john.ID)
	s.Equal(entity.RetiredDutyTitle, detail.CurrentDutyTitle)
	s.Require().NotNil(detail.CareerEndDate)
	s.Equal(day("2023-12-31"), *detail.CareerEndDate)
	s.Equal(day("2023-01-01"), detail.CareerStartDate)

	s.Equal(2.0, promtestutil.ToFloat64(s.metrics.DutiesAssigned))
	s.Equal(1.0, promtestutil.ToFloat64(s.metrics.Retirements))
}

func (s *DutyWorkflowSuite) TestLowercaseRetiredIsRetirement() {
	john := s.register("John Doe")
	_, err := s.createDuty("John Doe", "1LT", "Commander", "2023-01-01")
	s.Require().NoError(err)

	result, err := s.createDuty("John Doe", "1LT", "retired", "2023-02-01")
	s.Require().NoError(err)
	s.Equal(usecase.OutcomeRetirement, result.Outcome)

	duties := s.duties(john.ID)
	s.Require().Len(duties, 2)
	s.Equal(entity.RetiredDutyTitle, duties[1].DutyTitle)
}

func (s *DutyWorkflowSuite) TestDuplicateSubmissionConflicts() {
	john := s.register("John Doe")
	_, err := s.createDuty("John Doe", "1LT", "Commander", "2023-01-01")
	s.Require().NoError(err)
	_, err = s.createDuty("John Doe", "Captain", "Pilot", "2023-06-01")
	s.Require().NoError(err)

	_, err = s.createDuty("John Doe", "Captain", "Pilot", "2023-06-01")
	s.True(apperror.Is(err, apperror.KindConflict), "got %v", err)
	s.Len(s.duties(john.ID), 2)
}

func (s *DutyWorkflowSuite) TestDuplicateCheckIsPerPerson() {
	s.register("John Doe")
	jane := s.register("Jane Doe")

	_, err := s.createDuty("John Doe", "1LT", "Pilot", "2023-06-01")
	s.Require().NoError(err)

	_, err = s.createDuty("Jane Doe", "1LT", "Pilot", "2023-06-01")
	s.Require().NoError(err)
	s.Len(s.duties(jane.ID), 1)
}

func (s *DutyWorkflowSuite) TestOutOfOrderStartLeavesStoreUntouched() {
	john := s.register("John Doe")
	_, err := s.createDuty("John Doe", "Captain", "Pilot", "2023-06-01")
	s.Require().NoError(err)

	before := s.duties(john.ID)
	detailBefore := s.detail(john.ID)

	for _, start := range []string{"2023-06-01", "2023-01-01"} {
		_, err = s.createDuty("John Doe", "Major", "Engineer", start)
		s.True(apperror.Is(err, apperror.KindInvalidOrdering), "start %s: got %v", start, err)
	}

	after := s.duties(john.ID)
	s.Require().Len(after, len(before))
	s.Nil(after[0].DutyEndDate)

	detailAfter := s.detail(john.ID)
	s.Equal(detailBefore.CurrentDutyTitle, detailAfter.CurrentDutyTitle)
	s.Equal(detailBefore.CareerStartDate, detailAfter.CareerStartDate)
}

func (s *DutyWorkflowSuite) TestRetireWithoutDetail() {
	jane := s.register("Jane Doe")

	_, err := s.createDuty("Jane Doe", "Captain", "RETIRED", "2024-01-01")
	s.True(apperror.Is(err, apperror.KindNotFound), "got %v", err)
	s.Empty(s.duties(jane.ID))

	_, err = s.repos.Details.GetByPersonID(s.ctx, jane.ID)
	s.ErrorIs(err, repository.ErrNotFound)
}

func (s *DutyWorkflowSuite) TestValidation() {
	s.register("John Doe")

	tests := []struct {
		name string
		req  usecase.CreateDutyRequest
		kind apperror.Kind
	}{
		{"blank name", usecase.CreateDutyRequest{Name: " ", Rank: "1LT", DutyTitle: "Pilot", DutyStartDate: day("2023-01-01")}, apperror.KindInvalidArgument},
		{"blank rank", usecase.CreateDutyRequest{Name: "John Doe", DutyTitle: "Pilot", DutyStartDate: day("2023-01-01")}, apperror.KindInvalidArgument},
		{"blank title", usecase.CreateDutyRequest{Name: "John Doe", Rank: "1LT", DutyStartDate: day("2023-01-01")}, apperror.KindInvalidArgument},
		{"missing date", usecase.CreateDutyRequest{Name: "John Doe", Rank: "1LT", DutyTitle: "Pilot"}, apperror.KindInvalidArgument},
		{"unknown person", usecase.CreateDutyRequest{Name: "Nobody", Rank: "1LT", DutyTitle: "Pilot", DutyStartDate: day("2023-01-01")}, apperror.KindNotFound},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			_, err := s.workflow.CreateDuty(s.ctx, tt.req)
			s.Equal(tt.kind, apperror.KindOf(err))
		})
	}
}

func (s *DutyWorkflowSuite) TestCancelledContextCommitsNothing() {
	john := s.register("John Doe")

	ctx, cancel := context.WithCancel(s.ctx)
	cancel()

	_, err := s.workflow.CreateDuty(ctx, usecase.CreateDutyRequest{
		Name:          "John Doe",
		Rank:          "1LT",
		DutyTitle:     "Commander",
		DutyStartDate: day("2023-01-01"),
	})
	s.Error(err)
	s.Empty(s.duties(john.ID))
}

func (s *DutyWorkflowSuite) TestSubmissionsAreRecorded() {
	s.register("John Doe")

	_, err := s.createDuty("John Doe", "1LT", "Commander", "2023-01-01")
	s.Require().NoError(err)
	_, err = s.createDuty("John Doe", "1LT", "Commander", "2023-01-01")
	s.Require().Error(err)

	submissions, err := s.workflow.ListSubmissions(s.ctx, "John Doe")
	s.Require().NoError(err)
	s.Require().Len(submissions, 2)

	s.Equal(entity.SubmissionRejected, submissions[0].Status)
	s.Equal(string(apperror.KindConflict), submissions[0].ErrorKind)
	s.Equal(entity.SubmissionCompleted, submissions[1].Status)
	s.NotNil(submissions[1].DutyID)
}

func (s *DutyWorkflowSuite) TestFailedSubmissionHidesCause() {
	s.register("John Doe")

	sqlDB, err := s.db.DB()
	s.Require().NoError(err)
	s.Require().NoError(sqlDB.Close())

	_, err = s.createDuty("John Doe", "1LT", "Commander", "2023-01-01")
	s.Require().Error(err)
	s.Equal(apperror.KindInternal, apperror.KindOf(err))

	submissions, err := s.workflow.ListSubmissions(s.ctx, "John Doe")
	s.Require().NoError(err)
	s.Require().Len(submissions, 1)

	failed := submissions[0]
	s.Equal(entity.SubmissionFailed, failed.Status)
	s.Equal(string(apperror.KindInternal), failed.ErrorKind)
	s.Equal("internal error", failed.ErrorDetail)
	s.NotContains(failed.ErrorDetail, "sql")
	s.NotContains(failed.ErrorDetail, "closed")
}

func (s *DutyWorkflowSuite) TestRecordRejection() {
	cause := apperror.New(apperror.KindInvalidArgument, "DutyStartDate must be YYYY-MM-DD or RFC3339.")
	s.workflow.RecordRejection(s.ctx, usecase.CreateDutyRequest{Name: "John Doe", Rank: "1LT", DutyTitle: "Pilot"}, cause)

	submissions, err := s.workflow.ListSubmissions(s.ctx, "John Doe")
	s.Require().NoError(err)
	s.Require().Len(submissions, 1)

	s.Equal(entity.SubmissionRejected, submissions[0].Status)
	s.Equal(string(apperror.KindInvalidArgument), submissions[0].ErrorKind)
	s.Equal(cause.Message, submissions[0].ErrorDetail)
	s.Nil(submissions[0].DutyID)
	s.Equal(1.0, promtestutil.ToFloat64(s.metrics.ErrorsCount.WithLabelValues("create_duty", "invalid_argument")))
}

func TestSeedDemoData(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewTestDB(t)
	repos := gormRepo.NewGormRepositories(db)
	log := logger.NewNopLogger()

	people := usecase.NewPersonService(repos.Persons, repos.Duties, repos.Details, nil, log)
	workflow := usecase.NewDutyWorkflow(
		repos.Persons,
		repos.Duties,
		gormRepo.NewGormUnitOfWork(db),
		gormRepo.NewInMemorySubmissionRepository(),
		validator.New(),
		nil,
		log,
	)

	require.NoError(t, usecase.SeedDemoData(ctx, people, workflow))
	// A second run is a no-op
	require.NoError(t, usecase.SeedDemoData(ctx, people, workflow))

	all, err := people.GetAllPeople(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)

	john, err := people.GetPersonByName(ctx, "John Doe")
	require.NoError(t, err)
	require.NotNil(t, john.Detail)
	require.Equal(t, "Commander", john.Detail.CurrentDutyTitle)
	require.Equal(t, "1LT", john.Detail.CurrentRank)

	jane, err := people.GetPersonByName(ctx, "Jane Doe")
	require.NoError(t, err)
	require.Nil(t, jane.Detail)
}

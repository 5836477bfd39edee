package repository

import (
	"context"
	"sort"
	"strconv"
	"sync"
	"time"

	"stargate-service/internal/domain/entity"
	"stargate-service/internal/domain/repository"
)

// InMemorySubmissionRepository keeps the submission log in process memory.
// Used when MongoDB is not configured and in tests.
type InMemorySubmissionRepository struct {
	mu          sync.RWMutex
	submissions []entity.DutySubmission
	nextID      int
}

// NewInMemorySubmissionRepository creates an empty in-memory submission log
func NewInMemorySubmissionRepository() repository.SubmissionRepository {
	return &InMemorySubmissionRepository{}
}

// Save appends a copy of the submission
func (r *InMemorySubmissionRepository) Save(_ context.Context, submission *entity.DutySubmission) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	if submission.ID == "" {
		submission.ID = strconv.Itoa(r.nextID)
	}
	if submission.ProcessedAt.IsZero() {
		submission.ProcessedAt = time.Now()
	}

	r.submissions = append(r.submissions, *submission)
	return nil
}

// FindByPersonName returns copies of the person's latest submissions, newest first
func (r *InMemorySubmissionRepository) FindByPersonName(_ context.Context, personName string, limit int) ([]*entity.DutySubmission, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matches := make([]*entity.DutySubmission, 0)
	for i := len(r.submissions) - 1; i >= 0; i-- {
		if r.submissions[i].PersonName == personName {
			s := r.submissions[i]
			matches = append(matches, &s)
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].ReceivedAt.After(matches[j].ReceivedAt)
	})

	if limit > 0 && len(matches) > limit {
		matches = matches[:limit]
	}
	return matches, nil
}

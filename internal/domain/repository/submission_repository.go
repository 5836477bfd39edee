package repository

import (
	"context"

	"stargate-service/internal/domain/entity"
)

// SubmissionRepository defines the interface for the duty submission log
type SubmissionRepository interface {
	Save(ctx context.Context, submission *entity.DutySubmission) error
	// FindByPersonName returns the most recent submissions first
	FindByPersonName(ctx context.Context, personName string, limit int) ([]*entity.DutySubmission, error)
}

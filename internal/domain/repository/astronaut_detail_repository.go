package repository

import (
	"context"

	"stargate-service/internal/domain/entity"
)

// AstronautDetailRepository defines the interface for the current-state projection
type AstronautDetailRepository interface {
	GetByPersonID(ctx context.Context, personID uint) (*entity.AstronautDetail, error)
	List(ctx context.Context) ([]*entity.AstronautDetail, error)
	Create(ctx context.Context, detail *entity.AstronautDetail) error
	Update(ctx context.Context, detail *entity.AstronautDetail) error
}

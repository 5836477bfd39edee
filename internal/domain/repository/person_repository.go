package repository

import (
	"context"

	"stargate-service/internal/domain/entity"
)

// PersonRepository defines the interface for person operations
type PersonRepository interface {
	Create(ctx context.Context, person *entity.Person) error
	Update(ctx context.Context, person *entity.Person) error
	GetByID(ctx context.Context, id uint) (*entity.Person, error)
	GetByName(ctx context.Context, name string) (*entity.Person, error)
	List(ctx context.Context) ([]*entity.Person, error)
	Count(ctx context.Context) (int64, error)
}

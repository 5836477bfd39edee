package repository

import (
	"context"
	"time"

	"stargate-service/internal/domain/entity"
	"stargate-service/internal/domain/repository"

	"gorm.io/gorm"
)

// GormPersonRepository implements the PersonRepository interface
type GormPersonRepository struct {
	db *gorm.DB
}

// NewGormPersonRepository creates a new GORM person repository
func NewGormPersonRepository(db *gorm.DB) repository.PersonRepository {
	return &GormPersonRepository{
		db: db,
	}
}

// People GORM model for database mapping
type People struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"column:name;not null;uniqueIndex"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName overrides the default table name
func (People) TableName() string {
	return "people"
}

func (p People) toEntity() *entity.Person {
	return &entity.Person{
		ID:        p.ID,
		Name:      p.Name,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

// Create inserts a new person; a taken name yields repository.ErrDuplicate
func (r *GormPersonRepository) Create(ctx context.Context, person *entity.Person) error {
	model := People{
		Name: person.Name,
	}

	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		return translateError(err)
	}

	// Update the entity with the generated ID
	person.ID = model.ID
	person.CreatedAt = model.CreatedAt
	person.UpdatedAt = model.UpdatedAt

	return nil
}

// Update renames a person
func (r *GormPersonRepository) Update(ctx context.Context, person *entity.Person) error {
	now := time.Now()
	result := r.db.WithContext(ctx).
		Model(&People{ID: person.ID}).
		Updates(map[string]interface{}{
			"name":       person.Name,
			"updated_at": now,
		})

	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return repository.ErrNotFound
	}

	person.UpdatedAt = now
	return nil
}

// GetByID finds a person by primary key
func (r *GormPersonRepository) GetByID(ctx context.Context, id uint) (*entity.Person, error) {
	var person People
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&person)

	if result.Error != nil {
		return nil, translateError(result.Error)
	}

	return person.toEntity(), nil
}

// GetByName finds a person by exact name
func (r *GormPersonRepository) GetByName(ctx context.Context, name string) (*entity.Person, error) {
	var person People
	result := r.db.WithContext(ctx).Where("name = ?", name).First(&person)

	if result.Error != nil {
		return nil, translateError(result.Error)
	}

	return person.toEntity(), nil
}

// List returns every person ordered by id
func (r *GormPersonRepository) List(ctx context.Context) ([]*entity.Person, error) {
	var people []People
	result := r.db.WithContext(ctx).Order("id ASC").Find(&people)

	if result.Error != nil {
		return nil, result.Error
	}

	// Convert to domain entities
	entities := make([]*entity.Person, 0, len(people))
	for _, p := range people {
		entities = append(entities, p.toEntity())
	}

	return entities, nil
}

// Count returns the number of people
func (r *GormPersonRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&People{}).Count(&count).Error
	return count, err
}

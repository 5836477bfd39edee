package repository

import (
	"context"
	"errors"
	"time"

	"stargate-service/internal/domain/entity"
	"stargate-service/internal/domain/repository"
	"stargate-service/pkg/utils"

	"gorm.io/gorm"
)

// GormAstronautDutyRepository implements the AstronautDutyRepository interface
type GormAstronautDutyRepository struct {
	db *gorm.DB
}

// NewGormAstronautDutyRepository creates a new GORM astronaut duty repository
func NewGormAstronautDutyRepository(db *gorm.DB) repository.AstronautDutyRepository {
	return &GormAstronautDutyRepository{
		db: db,
	}
}

// AstronautDuties GORM model for database mapping
type AstronautDuties struct {
	ID            uint       `gorm:"primaryKey"`
	PersonID      uint       `gorm:"column:person_id;not null;index"`
	Rank          string     `gorm:"column:rank;not null"`
	DutyTitle     string     `gorm:"column:duty_title;not null"`
	DutyStartDate time.Time  `gorm:"column:duty_start_date;type:date;not null"`
	DutyEndDate   *time.Time `gorm:"column:duty_end_date;type:date"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName overrides the default table name
func (AstronautDuties) TableName() string {
	return "astronaut_duties"
}

func (d AstronautDuties) toEntity() *entity.AstronautDuty {
	duty := &entity.AstronautDuty{
		ID:            d.ID,
		PersonID:      d.PersonID,
		Rank:          d.Rank,
		DutyTitle:     d.DutyTitle,
		DutyStartDate: utils.TruncateDate(d.DutyStartDate),
		CreatedAt:     d.CreatedAt,
		UpdatedAt:     d.UpdatedAt,
	}
	if d.DutyEndDate != nil {
		end := utils.TruncateDate(*d.DutyEndDate)
		duty.DutyEndDate = &end
	}
	return duty
}

// GetByID finds a duty by primary key
func (r *GormAstronautDutyRepository) GetByID(ctx context.Context, id uint) (*entity.AstronautDuty, error) {
	var duty AstronautDuties
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&duty)

	if result.Error != nil {
		return nil, translateError(result.Error)
	}

	return duty.toEntity(), nil
}

// FindLatestOpen finds the person's open duty with the latest start date
func (r *GormAstronautDutyRepository) FindLatestOpen(ctx context.Context, personID uint) (*entity.AstronautDuty, error) {
	var duty AstronautDuties
	result := r.db.WithContext(ctx).
		Where("person_id = ?", personID).
		Where("duty_end_date IS NULL").
		Order("duty_start_date DESC").
		First(&duty)

	if result.Error != nil {
		return nil, translateError(result.Error)
	}

	return duty.toEntity(), nil
}

// FindByTitleAndStart finds the person's duty with the given title and start date
func (r *GormAstronautDutyRepository) FindByTitleAndStart(ctx context.Context, personID uint, dutyTitle string, startDate time.Time) (*entity.AstronautDuty, error) {
	var duty AstronautDuties
	result := r.db.WithContext(ctx).
		Where("person_id = ?", personID).
		Where("duty_title = ?", dutyTitle).
		Where("duty_start_date = ?", utils.TruncateDate(startDate)).
		First(&duty)

	if result.Error != nil {
		return nil, translateError(result.Error)
	}

	return duty.toEntity(), nil
}

// ListByPerson returns the person's duties in chronological order
func (r *GormAstronautDutyRepository) ListByPerson(ctx context.Context, personID uint) ([]*entity.AstronautDuty, error) {
	var duties []AstronautDuties
	result := r.db.WithContext(ctx).
		Where("person_id = ?", personID).
		Order("duty_start_date ASC").
		Order("id ASC").
		Find(&duties)

	if result.Error != nil {
		return nil, result.Error
	}

	entities := make([]*entity.AstronautDuty, 0, len(duties))
	for _, d := range duties {
		entities = append(entities, d.toEntity())
	}

	return entities, nil
}

// MinStartDate returns the earliest duty start date for the person.
// An ordered single-row query is used instead of MIN() so the driver
// decodes a typed date column on every dialect.
func (r *GormAstronautDutyRepository) MinStartDate(ctx context.Context, personID uint) (*time.Time, error) {
	var duty AstronautDuties
	err := r.db.WithContext(ctx).
		Select("duty_start_date").
		Where("person_id = ?", personID).
		Order("duty_start_date ASC").
		First(&duty).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	start := utils.TruncateDate(duty.DutyStartDate)
	return &start, nil
}

// Create inserts a new duty
func (r *GormAstronautDutyRepository) Create(ctx context.Context, duty *entity.AstronautDuty) error {
	model := AstronautDuties{
		PersonID:      duty.PersonID,
		Rank:          duty.Rank,
		DutyTitle:     duty.DutyTitle,
		DutyStartDate: utils.TruncateDate(duty.DutyStartDate),
		DutyEndDate:   duty.DutyEndDate,
	}

	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		return translateError(err)
	}

	duty.ID = model.ID
	duty.CreatedAt = model.CreatedAt
	duty.UpdatedAt = model.UpdatedAt

	return nil
}

// Update writes every mutable column of an existing duty, including a nil end date
func (r *GormAstronautDutyRepository) Update(ctx context.Context, duty *entity.AstronautDuty) error {
	now := time.Now()
	result := r.db.WithContext(ctx).
		Model(&AstronautDuties{ID: duty.ID}).
		Updates(map[string]interface{}{
			"rank":            duty.Rank,
			"duty_title":      duty.DutyTitle,
			"duty_start_date": utils.TruncateDate(duty.DutyStartDate),
			"duty_end_date":   duty.DutyEndDate,
			"updated_at":      now,
		})

	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return repository.ErrNotFound
	}

	duty.UpdatedAt = now
	return nil
}

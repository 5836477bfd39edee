package repository

import (
	"context"
	"time"

	"stargate-service/internal/domain/entity"
	"stargate-service/internal/domain/repository"
	"stargate-service/pkg/utils"

	"gorm.io/gorm"
)

// GormAstronautDetailRepository implements the AstronautDetailRepository interface
type GormAstronautDetailRepository struct {
	db *gorm.DB
}

// NewGormAstronautDetailRepository creates a new GORM astronaut detail repository
func NewGormAstronautDetailRepository(db *gorm.DB) repository.AstronautDetailRepository {
	return &GormAstronautDetailRepository{
		db: db,
	}
}

// AstronautDetails GORM model for database mapping
type AstronautDetails struct {
	ID               uint       `gorm:"primaryKey"`
	PersonID         uint       `gorm:"column:person_id;not null;uniqueIndex"`
	CurrentRank      string     `gorm:"column:current_rank;not null"`
	CurrentDutyTitle string     `gorm:"column:current_duty_title;not null"`
	CareerStartDate  time.Time  `gorm:"column:career_start_date;type:date;not null"`
	CareerEndDate    *time.Time `gorm:"column:career_end_date;type:date"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// TableName overrides the default table name
func (AstronautDetails) TableName() string {
	return "astronaut_details"
}

func (d AstronautDetails) toEntity() *entity.AstronautDetail {
	detail := &entity.AstronautDetail{
		ID:               d.ID,
		PersonID:         d.PersonID,
		CurrentRank:      d.CurrentRank,
		CurrentDutyTitle: d.CurrentDutyTitle,
		CareerStartDate:  utils.TruncateDate(d.CareerStartDate),
		CreatedAt:        d.CreatedAt,
		UpdatedAt:        d.UpdatedAt,
	}
	if d.CareerEndDate != nil {
		end := utils.TruncateDate(*d.CareerEndDate)
		detail.CareerEndDate = &end
	}
	return detail
}

// GetByPersonID finds the detail owned by a person
func (r *GormAstronautDetailRepository) GetByPersonID(ctx context.Context, personID uint) (*entity.AstronautDetail, error) {
	var detail AstronautDetails
	result := r.db.WithContext(ctx).Where("person_id = ?", personID).First(&detail)

	if result.Error != nil {
		return nil, translateError(result.Error)
	}

	return detail.toEntity(), nil
}

// List returns every detail
func (r *GormAstronautDetailRepository) List(ctx context.Context) ([]*entity.AstronautDetail, error) {
	var details []AstronautDetails
	result := r.db.WithContext(ctx).Order("person_id ASC").Find(&details)

	if result.Error != nil {
		return nil, result.Error
	}

	entities := make([]*entity.AstronautDetail, 0, len(details))
	for _, d := range details {
		entities = append(entities, d.toEntity())
	}

	return entities, nil
}

// Create inserts a detail; a second detail for the same person yields repository.ErrDuplicate
func (r *GormAstronautDetailRepository) Create(ctx context.Context, detail *entity.AstronautDetail) error {
	model := AstronautDetails{
		PersonID:         detail.PersonID,
		CurrentRank:      detail.CurrentRank,
		CurrentDutyTitle: detail.CurrentDutyTitle,
		CareerStartDate:  utils.TruncateDate(detail.CareerStartDate),
		CareerEndDate:    detail.CareerEndDate,
	}

	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		return translateError(err)
	}

	detail.ID = model.ID
	detail.CreatedAt = model.CreatedAt
	detail.UpdatedAt = model.UpdatedAt

	return nil
}

// Update writes the projection columns, including a cleared career end date
func (r *GormAstronautDetailRepository) Update(ctx context.Context, detail *entity.AstronautDetail) error {
	now := time.Now()
	result := r.db.WithContext(ctx).
		Model(&AstronautDetails{ID: detail.ID}).
		Updates(map[string]interface{}{
			"current_rank":       detail.CurrentRank,
			"current_duty_title": detail.CurrentDutyTitle,
			"career_start_date":  utils.TruncateDate(detail.CareerStartDate),
			"career_end_date":    detail.CareerEndDate,
			"updated_at":         now,
		})

	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return repository.ErrNotFound
	}

	detail.UpdatedAt = now
	return nil
}

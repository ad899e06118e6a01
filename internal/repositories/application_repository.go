package repositories

import (
	"context"

	"github.com/mroshb/edu_admissions/internal/models"
	"github.com/mroshb/edu_admissions/pkg/errors"
	"gorm.io/gorm"
)

type ApplicationRepository struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) *ApplicationRepository {
	return &ApplicationRepository{db: db}
}

// ApplicationFilter selects a page of applications. Page is 1-based.
type ApplicationFilter struct {
	UniversityID     uint
	SpecializationID uint
	Page             int
	Limit            int
}

// Create stores a submitted application
func (r *ApplicationRepository) Create(ctx context.Context, app *models.Application) error {
	result := r.db.WithContext(ctx).Omit("University", "Specialization").Create(app)
	if result.Error != nil {
		return errors.Wrap(result.Error, errors.ErrCodeInternalError, "failed to create application")
	}
	return nil
}

// Count returns the number of stored applications
func (r *ApplicationRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&models.Application{}).Count(&total).Error; err != nil {
		return 0, errors.Wrap(err, errors.ErrCodeInternalError, "failed to count applications")
	}
	return total, nil
}

// List returns one page of applications, newest first, and the total count
func (r *ApplicationRepository) List(ctx context.Context, filter ApplicationFilter) ([]models.Application, int64, error) {
	filtered := func(db *gorm.DB) *gorm.DB {
		if filter.UniversityID != 0 {
			db = db.Where("university_id = ?", filter.UniversityID)
		}
		if filter.SpecializationID != 0 {
			db = db.Where("specialization_id = ?", filter.SpecializationID)
		}
		return db
	}

	var total int64
	if err := r.db.WithContext(ctx).Model(&models.Application{}).Scopes(filtered).Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, errors.ErrCodeInternalError, "failed to count applications")
	}

	page, limit := filter.Page, filter.Limit
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}

	var apps []models.Application
	err := r.db.WithContext(ctx).
		Scopes(filtered).
		Preload("University", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "slug", "name_en", "name_ar", "type", "university_type", "images")
		}).
		Preload("Specialization").
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&apps).Error
	if err != nil {
		return nil, 0, errors.Wrap(err, errors.ErrCodeInternalError, "failed to list applications")
	}

	return apps, total, nil
}

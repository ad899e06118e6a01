package repositories

import (
	"context"

	"github.com/mroshb/edu_admissions/internal/models"
	"github.com/mroshb/edu_admissions/pkg/errors"
	"gorm.io/gorm"
)

type UniversityRepository struct {
	db *gorm.DB
}

func NewUniversityRepository(db *gorm.DB) *UniversityRepository {
	return &UniversityRepository{db: db}
}

// UniversityFilter narrows List results. Zero values mean no filter.
type UniversityFilter struct {
	Type           string
	UniversityType string
	PublishedOnly  bool
}

// Create creates a new university
func (r *UniversityRepository) Create(ctx context.Context, university *models.University) error {
	result := r.db.WithContext(ctx).Omit("Specializations").Create(university)
	if result.Error != nil {
		return errors.Wrap(result.Error, errors.ErrCodeInternalError, "failed to create university")
	}
	return nil
}

// Update saves every column of an existing university
func (r *UniversityRepository) Update(ctx context.Context, university *models.University) error {
	result := r.db.WithContext(ctx).Omit("Specializations").Save(university)
	if result.Error != nil {
		return errors.Wrap(result.Error, errors.ErrCodeInternalError, "failed to update university")
	}
	return nil
}

// Delete removes a university; its specializations cascade
func (r *UniversityRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.University{}, id)
	if result.Error != nil {
		return errors.Wrap(result.Error, errors.ErrCodeInternalError, "failed to delete university")
	}
	if result.RowsAffected == 0 {
		return errors.New(errors.ErrCodeNotFound, "university not found")
	}
	return nil
}

// GetByID retrieves a university by ID
func (r *UniversityRepository) GetByID(ctx context.Context, id uint) (*models.University, error) {
	var university models.University
	result := r.db.WithContext(ctx).First(&university, id)

	if result.Error == gorm.ErrRecordNotFound {
		return nil, errors.New(errors.ErrCodeNotFound, "university not found")
	}
	if result.Error != nil {
		return nil, errors.Wrap(result.Error, errors.ErrCodeInternalError, "failed to get university")
	}

	return &university, nil
}

// GetBySlug retrieves a university with its specializations
func (r *UniversityRepository) GetBySlug(ctx context.Context, slug string) (*models.University, error) {
	var university models.University
	result := r.db.WithContext(ctx).
		Preload("Specializations", func(db *gorm.DB) *gorm.DB {
			return db.Order("specializations.id ASC")
		}).
		Where("slug = ?", slug).
		First(&university)

	if result.Error == gorm.ErrRecordNotFound {
		return nil, errors.New(errors.ErrCodeNotFound, "university not found")
	}
	if result.Error != nil {
		return nil, errors.Wrap(result.Error, errors.ErrCodeInternalError, "failed to get university")
	}

	return &university, nil
}

// SlugExists reports whether another university already uses slug
func (r *UniversityRepository) SlugExists(ctx context.Context, slug string, excludeID uint) (bool, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&models.University{}).Where("slug = ?", slug)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}

	if err := query.Count(&count).Error; err != nil {
		return false, errors.Wrap(err, errors.ErrCodeInternalError, "failed to check slug")
	}
	return count > 0, nil
}

// List returns universities newest first, with their specializations
func (r *UniversityRepository) List(ctx context.Context, filter UniversityFilter) ([]models.University, error) {
	var universities []models.University
	query := r.db.WithContext(ctx).
		Model(&models.University{}).
		Preload("Specializations", func(db *gorm.DB) *gorm.DB {
			return db.Order("specializations.id ASC")
		})

	if filter.Type != "" {
		query = query.Where("type = ?", filter.Type)
	}
	if filter.UniversityType != "" {
		query = query.Where("university_type = ?", filter.UniversityType)
	}
	if filter.PublishedOnly {
		query = query.Where("is_published = ?", true)
	}

	if err := query.Order("created_at DESC").Find(&universities).Error; err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeInternalError, "failed to list universities")
	}
	return universities, nil
}

// CountByType returns the number of universities per institution type
func (r *UniversityRepository) CountByType(ctx context.Context) (map[string]int64, error) {
	var rows []struct {
		Type  string
		Count int64
	}

	err := r.db.WithContext(ctx).
		Model(&models.University{}).
		Select("type, COUNT(*) AS count").
		Group("type").
		Scan(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeInternalError, "failed to count universities")
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.Type] = row.Count
	}
	return counts, nil
}

package repositories

import (
	"context"

	"github.com/mroshb/edu_admissions/internal/models"
	"github.com/mroshb/edu_admissions/pkg/errors"
	"gorm.io/gorm"
)

type SpecializationRepository struct {
	db *gorm.DB
}

func NewSpecializationRepository(db *gorm.DB) *SpecializationRepository {
	return &SpecializationRepository{db: db}
}

// Create creates a single specialization
func (r *SpecializationRepository) Create(ctx context.Context, spec *models.Specialization) error {
	if err := r.ensureUniversity(r.db.WithContext(ctx), spec.UniversityID); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Create(spec)
	if result.Error != nil {
		return errors.Wrap(result.Error, errors.ErrCodeInternalError, "failed to create specialization")
	}
	return nil
}

// Update saves every column of an existing specialization
func (r *SpecializationRepository) Update(ctx context.Context, spec *models.Specialization) error {
	result := r.db.WithContext(ctx).Save(spec)
	if result.Error != nil {
		return errors.Wrap(result.Error, errors.ErrCodeInternalError, "failed to update specialization")
	}
	return nil
}

// Delete removes a specialization
func (r *SpecializationRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.Specialization{}, id)
	if result.Error != nil {
		return errors.Wrap(result.Error, errors.ErrCodeInternalError, "failed to delete specialization")
	}
	if result.RowsAffected == 0 {
		return errors.New(errors.ErrCodeNotFound, "specialization not found")
	}
	return nil
}

// GetByID retrieves a specialization by ID
func (r *SpecializationRepository) GetByID(ctx context.Context, id uint) (*models.Specialization, error) {
	var spec models.Specialization
	result := r.db.WithContext(ctx).First(&spec, id)

	if result.Error == gorm.ErrRecordNotFound {
		return nil, errors.New(errors.ErrCodeNotFound, "specialization not found")
	}
	if result.Error != nil {
		return nil, errors.Wrap(result.Error, errors.ErrCodeInternalError, "failed to get specialization")
	}

	return &spec, nil
}

// ListByUniversity returns a university's specializations in insertion order
func (r *SpecializationRepository) ListByUniversity(ctx context.Context, universityID uint) ([]models.Specialization, error) {
	var specs []models.Specialization
	err := r.db.WithContext(ctx).
		Where("university_id = ?", universityID).
		Order("id ASC").
		Find(&specs).Error
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeInternalError, "failed to list specializations")
	}
	return specs, nil
}

// BulkCreate inserts all specializations for a university in one transaction.
// Either every row is stored or none is.
func (r *SpecializationRepository) BulkCreate(ctx context.Context, universityID uint, specs []models.Specialization) ([]models.Specialization, error) {
	if len(specs) == 0 {
		return []models.Specialization{}, nil
	}

	rows := make([]models.Specialization, len(specs))
	for i, spec := range specs {
		spec.ID = 0
		spec.UniversityID = universityID
		rows[i] = spec
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := r.ensureUniversity(tx, universityID); err != nil {
			return err
		}
		if err := tx.Create(&rows).Error; err != nil {
			return errors.Wrap(err, errors.ErrCodeInternalError, "failed to create specializations")
		}
		return nil
	})
	if err != nil {
		if _, ok := errors.As(err); ok {
			return nil, err
		}
		return nil, errors.Wrap(err, errors.ErrCodeInternalError, "failed to create specializations")
	}

	return rows, nil
}

func (r *SpecializationRepository) ensureUniversity(tx *gorm.DB, universityID uint) error {
	var count int64
	if err := tx.Model(&models.University{}).Where("id = ?", universityID).Count(&count).Error; err != nil {
		return errors.Wrap(err, errors.ErrCodeInternalError, "failed to check university")
	}
	if count == 0 {
		return errors.New(errors.ErrCodeNotFound, "university not found")
	}
	return nil
}

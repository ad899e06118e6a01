package services

import (
	"context"
	"strings"

	"github.com/mroshb/edu_admissions/internal/models"
	"github.com/mroshb/edu_admissions/internal/repositories"
	"github.com/mroshb/edu_admissions/internal/security"
	"github.com/mroshb/edu_admissions/pkg/errors"
	"github.com/mroshb/edu_admissions/pkg/logger"
)

type UniversityStore interface {
	Create(ctx context.Context, university *models.University) error
	Update(ctx context.Context, university *models.University) error
	Delete(ctx context.Context, id uint) error
	GetByID(ctx context.Context, id uint) (*models.University, error)
	GetBySlug(ctx context.Context, slug string) (*models.University, error)
	SlugExists(ctx context.Context, slug string, excludeID uint) (bool, error)
	List(ctx context.Context, filter repositories.UniversityFilter) ([]models.University, error)
}

type UniversityService struct {
	repo UniversityStore
}

func NewUniversityService(repo UniversityStore) *UniversityService {
	return &UniversityService{repo: repo}
}

// UniversityInput carries the editable fields of a university
type UniversityInput struct {
	Slug           string
	Type           string
	UniversityType *string
	NameEN         string
	NameAR         string
	ShortEN        string
	ShortAR        string
	ContentEN      string
	ContentAR      string
	Images         []string
	VideoURL       string
	IsPublished    *bool
}

func (s *UniversityService) Create(ctx context.Context, input UniversityInput) (*models.University, error) {
	input.Slug = normalizeSlug(input.Slug)
	if err := validateUniversity(input); err != nil {
		return nil, err
	}

	exists, err := s.repo.SlugExists(ctx, input.Slug, 0)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, errors.New(errors.ErrCodeAlreadyExists, "slug already exists")
	}

	university := &models.University{IsPublished: true}
	applyUniversityInput(university, input)

	if err := s.repo.Create(ctx, university); err != nil {
		return nil, err
	}

	logger.Info("University created", "id", university.ID, "slug", university.Slug)
	return university, nil
}

func (s *UniversityService) Update(ctx context.Context, id uint, input UniversityInput) (*models.University, error) {
	input.Slug = normalizeSlug(input.Slug)
	if err := validateUniversity(input); err != nil {
		return nil, err
	}

	university, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Slug != university.Slug {
		exists, err := s.repo.SlugExists(ctx, input.Slug, id)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, errors.New(errors.ErrCodeAlreadyExists, "slug already exists")
		}
	}

	applyUniversityInput(university, input)
	if err := s.repo.Update(ctx, university); err != nil {
		return nil, err
	}
	return university, nil
}

func (s *UniversityService) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	logger.Info("University deleted", "id", id)
	return nil
}

func (s *UniversityService) List(ctx context.Context, filter repositories.UniversityFilter) ([]models.University, error) {
	return s.repo.List(ctx, filter)
}

// GetBySlug returns a university with its specializations. Unpublished
// universities are hidden unless includeUnpublished is set.
func (s *UniversityService) GetBySlug(ctx context.Context, slug string, includeUnpublished bool) (*models.University, error) {
	university, err := s.repo.GetBySlug(ctx, normalizeSlug(slug))
	if err != nil {
		return nil, err
	}
	if !university.IsPublished && !includeUnpublished {
		return nil, errors.New(errors.ErrCodeNotFound, "university not found")
	}
	return university, nil
}

func validateUniversity(input UniversityInput) error {
	if input.Slug == "" {
		return errors.New(errors.ErrCodeValidation, "Slug is required")
	}
	if input.Type != models.InstitutionTypeUniversity && input.Type != models.InstitutionTypeInstitute {
		return errors.New(errors.ErrCodeValidation, "Invalid institution type")
	}
	if input.UniversityType != nil && *input.UniversityType != "" && !models.IsValidUniversityType(*input.UniversityType) {
		return errors.New(errors.ErrCodeValidation, "Invalid university type")
	}
	if strings.TrimSpace(input.NameEN) == "" || strings.TrimSpace(input.NameAR) == "" {
		return errors.New(errors.ErrCodeValidation, "English and Arabic names are required")
	}
	return nil
}

func applyUniversityInput(u *models.University, input UniversityInput) {
	u.Slug = input.Slug
	u.Type = input.Type
	u.UniversityType = nil
	if input.Type == models.InstitutionTypeUniversity && input.UniversityType != nil && *input.UniversityType != "" {
		universityType := *input.UniversityType
		u.UniversityType = &universityType
	}

	u.NameEN = security.SanitizeHTML(input.NameEN)
	u.NameAR = security.SanitizeHTML(input.NameAR)
	u.ShortEN = security.SanitizeHTML(input.ShortEN)
	u.ShortAR = security.SanitizeHTML(input.ShortAR)
	u.ContentEN = security.SanitizeRichText(input.ContentEN)
	u.ContentAR = security.SanitizeRichText(input.ContentAR)
	u.VideoURL = strings.TrimSpace(input.VideoURL)

	u.ImageURLs = make([]string, 0, len(input.Images))
	for _, image := range input.Images {
		if image = strings.TrimSpace(image); image != "" {
			u.ImageURLs = append(u.ImageURLs, image)
		}
	}

	if input.IsPublished != nil {
		u.IsPublished = *input.IsPublished
	}
}

func normalizeSlug(slug string) string {
	return strings.ToLower(strings.TrimSpace(slug))
}

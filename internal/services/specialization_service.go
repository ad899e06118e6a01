package services

import (
	"context"
	"io"
	"strings"

	"github.com/mroshb/edu_admissions/internal/ingest"
	"github.com/mroshb/edu_admissions/internal/metrics"
	"github.com/mroshb/edu_admissions/internal/models"
	"github.com/mroshb/edu_admissions/pkg/errors"
	"github.com/mroshb/edu_admissions/pkg/logger"
)

type SpecializationStore interface {
	Create(ctx context.Context, spec *models.Specialization) error
	Update(ctx context.Context, spec *models.Specialization) error
	Delete(ctx context.Context, id uint) error
	GetByID(ctx context.Context, id uint) (*models.Specialization, error)
	BulkCreate(ctx context.Context, universityID uint, specs []models.Specialization) ([]models.Specialization, error)
	ListByUniversity(ctx context.Context, universityID uint) ([]models.Specialization, error)
}

type SpecializationService struct {
	repo    SpecializationStore
	metrics *metrics.Metrics
}

func NewSpecializationService(repo SpecializationStore, m *metrics.Metrics) *SpecializationService {
	return &SpecializationService{
		repo:    repo,
		metrics: m,
	}
}

// BulkResult is the outcome of a paste or import
type BulkResult struct {
	Created []models.Specialization `json:"created"`
	Skipped int                     `json:"skipped"`
}

// FieldError names a draft that failed validation and what it lacks
type FieldError struct {
	Index   int      `json:"index"`
	Missing []string `json:"missing"`
}

// PreviewBulk parses text without storing anything
func (s *SpecializationService) PreviewBulk(text string) ingest.Report {
	return ingest.ParseBulkReport(text)
}

// AddFromText parses pasted rows and stores every eligible draft in one batch.
// Incomplete drafts are skipped. Nothing is stored when no draft is eligible.
func (s *SpecializationService) AddFromText(ctx context.Context, universityID uint, text string) (*BulkResult, error) {
	drafts := ingest.ParseBulk(text)
	eligible := ingest.FilterEligible(drafts)
	skipped := len(drafts) - len(eligible)

	s.metrics.ObserveIngest(len(drafts), len(eligible), skipped)

	result := &BulkResult{Created: []models.Specialization{}, Skipped: skipped}
	if len(eligible) == 0 {
		logger.Info("No eligible specializations to add", "university_id", universityID, "lines", len(drafts))
		return result, nil
	}

	created, err := s.repo.BulkCreate(ctx, universityID, toSpecializations(eligible))
	if err != nil {
		return nil, err
	}

	logger.Info("Specializations added", "university_id", universityID, "created", len(created), "skipped", skipped)
	result.Created = created
	return result, nil
}

// AddDrafts stores already structured drafts. Every draft must be complete.
func (s *SpecializationService) AddDrafts(ctx context.Context, universityID uint, drafts []ingest.Draft) ([]models.Specialization, error) {
	if len(drafts) == 0 {
		return nil, errors.New(errors.ErrCodeValidation, "Body must be a non-empty array")
	}

	cleaned := make([]ingest.Draft, len(drafts))
	var problems []FieldError
	for i, d := range drafts {
		cleaned[i] = trimDraft(d)
		if missing := missingFields(cleaned[i]); len(missing) > 0 {
			problems = append(problems, FieldError{Index: i, Missing: missing})
		}
	}
	if len(problems) > 0 {
		return nil, errors.New(errors.ErrCodeValidation, "Invalid input data").WithDetails(problems)
	}

	return s.repo.BulkCreate(ctx, universityID, toSpecializations(cleaned))
}

// ImportWorkbook reads an xlsx upload and adds its rows like pasted text
func (s *SpecializationService) ImportWorkbook(ctx context.Context, universityID uint, r io.Reader) (*BulkResult, error) {
	text, err := ingest.WorkbookText(r)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeValidation, "Invalid spreadsheet file")
	}
	return s.AddFromText(ctx, universityID, text)
}

// Create stores a single specialization as entered
func (s *SpecializationService) Create(ctx context.Context, universityID uint, input ingest.Draft) (*models.Specialization, error) {
	input = trimDraft(input)
	if missing := missingFields(input); len(missing) > 0 {
		return nil, errors.New(errors.ErrCodeValidation, "Invalid input data").WithDetails(missing)
	}

	spec := &models.Specialization{
		UniversityID: universityID,
		NameEN:       input.NameEN,
		NameAR:       input.NameAR,
		Duration:     input.Duration,
		Tuition:      input.Tuition,
	}
	if err := s.repo.Create(ctx, spec); err != nil {
		return nil, err
	}
	return spec, nil
}

func (s *SpecializationService) Update(ctx context.Context, id uint, input ingest.Draft) (*models.Specialization, error) {
	input = trimDraft(input)
	if missing := missingFields(input); len(missing) > 0 {
		return nil, errors.New(errors.ErrCodeValidation, "Invalid input data").WithDetails(missing)
	}

	spec, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	spec.NameEN = input.NameEN
	spec.NameAR = input.NameAR
	spec.Duration = input.Duration
	spec.Tuition = input.Tuition

	if err := s.repo.Update(ctx, spec); err != nil {
		return nil, err
	}
	return spec, nil
}

func (s *SpecializationService) Delete(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}

func (s *SpecializationService) ListByUniversity(ctx context.Context, universityID uint) ([]models.Specialization, error) {
	specs, err := s.repo.ListByUniversity(ctx, universityID)
	if err != nil {
		return nil, err
	}
	if specs == nil {
		specs = []models.Specialization{}
	}
	return specs, nil
}

func toSpecializations(drafts []ingest.Draft) []models.Specialization {
	specs := make([]models.Specialization, len(drafts))
	for i, d := range drafts {
		specs[i] = models.Specialization{
			NameEN:   d.NameEN,
			NameAR:   d.NameAR,
			Duration: d.Duration,
			Tuition:  d.Tuition,
		}
	}
	return specs
}

func trimDraft(d ingest.Draft) ingest.Draft {
	return ingest.Draft{
		NameEN:   strings.TrimSpace(d.NameEN),
		NameAR:   strings.TrimSpace(d.NameAR),
		Duration: strings.TrimSpace(d.Duration),
		Tuition:  strings.TrimSpace(d.Tuition),
	}
}

// missingFields also requires the English name, which parsed drafts may lack
func missingFields(d ingest.Draft) []string {
	var missing []string
	if d.NameEN == "" {
		missing = append(missing, "name_en")
	}
	return append(missing, d.MissingFields()...)
}

package services

import (
	"context"

	"github.com/mroshb/edu_admissions/internal/metrics"
	"github.com/mroshb/edu_admissions/internal/models"
	"github.com/mroshb/edu_admissions/internal/notify"
	"github.com/mroshb/edu_admissions/internal/repositories"
	"github.com/mroshb/edu_admissions/internal/security"
	"github.com/mroshb/edu_admissions/pkg/errors"
	"github.com/mroshb/edu_admissions/pkg/logger"
)

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

type ApplicationStore interface {
	Create(ctx context.Context, app *models.Application) error
	List(ctx context.Context, filter repositories.ApplicationFilter) ([]models.Application, int64, error)
}

type UniversityFinder interface {
	GetByID(ctx context.Context, id uint) (*models.University, error)
}

type SpecializationFinder interface {
	GetByID(ctx context.Context, id uint) (*models.Specialization, error)
}

type ApplicationService struct {
	repo            ApplicationStore
	universities    UniversityFinder
	specializations SpecializationFinder
	notifier        notify.Notifier
	metrics         *metrics.Metrics
}

func NewApplicationService(
	repo ApplicationStore,
	universities UniversityFinder,
	specializations SpecializationFinder,
	notifier notify.Notifier,
	m *metrics.Metrics,
) *ApplicationService {
	if notifier == nil {
		notifier = notify.NopNotifier{}
	}
	return &ApplicationService{
		repo:            repo,
		universities:    universities,
		specializations: specializations,
		notifier:        notifier,
		metrics:         m,
	}
}

// ApplicationInput is a student's submission
type ApplicationInput struct {
	UniversityID     uint
	SpecializationID *uint
	StudentName      string
	Email            string
	Phone            string
	Nationality      string
	Residence        string
}

// ApplicationPage is one page of applications with pagination metadata
type ApplicationPage struct {
	Applications []models.Application `json:"applications"`
	Pagination   Pagination           `json:"pagination"`
}

type Pagination struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
	Pages int64 `json:"pages"`
}

// Submit stores an application. Staff are notified on a best-effort basis.
func (s *ApplicationService) Submit(ctx context.Context, input ApplicationInput) (*models.Application, error) {
	university, err := s.universities.GetByID(ctx, input.UniversityID)
	if err != nil {
		s.metrics.ObserveApplication(metrics.StatusRejected)
		return nil, err
	}

	var specialization *models.Specialization
	if input.SpecializationID != nil {
		specialization, err = s.specializations.GetByID(ctx, *input.SpecializationID)
		if err != nil {
			s.metrics.ObserveApplication(metrics.StatusRejected)
			return nil, err
		}
		if specialization.UniversityID != university.ID {
			s.metrics.ObserveApplication(metrics.StatusRejected)
			return nil, errors.New(errors.ErrCodeNotFound, "specialization not found")
		}
	}

	app := &models.Application{
		UniversityID:     university.ID,
		SpecializationID: input.SpecializationID,
		StudentName:      security.SanitizeHTML(input.StudentName),
		Email:            security.SanitizeHTML(input.Email),
		Phone:            security.SanitizeHTML(input.Phone),
		Nationality:      security.SanitizeHTML(input.Nationality),
		Residence:        security.SanitizeHTML(input.Residence),
	}

	if err := s.repo.Create(ctx, app); err != nil {
		return nil, err
	}
	s.metrics.ObserveApplication(metrics.StatusCreated)

	if err := s.notifier.ApplicationSubmitted(ctx, app, university, specialization); err != nil {
		logger.Warn("Failed to notify staff about application", "application_id", app.ID, "error", err)
	}

	logger.Info("Application submitted", "application_id", app.ID, "reference", app.ReferenceCode, "university_id", app.UniversityID)
	return app, nil
}

// RecordRateLimited counts a submission refused by the rate limiter
func (s *ApplicationService) RecordRateLimited() {
	s.metrics.ObserveApplication(metrics.StatusRateLimited)
}

// List returns one page of applications, newest first
func (s *ApplicationService) List(ctx context.Context, filter repositories.ApplicationFilter) (*ApplicationPage, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = DefaultPageSize
	}
	if filter.Limit > MaxPageSize {
		filter.Limit = MaxPageSize
	}

	apps, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	if apps == nil {
		apps = []models.Application{}
	}

	return &ApplicationPage{
		Applications: apps,
		Pagination: Pagination{
			Page:  filter.Page,
			Limit: filter.Limit,
			Total: total,
			Pages: (total + int64(filter.Limit) - 1) / int64(filter.Limit),
		},
	}, nil
}

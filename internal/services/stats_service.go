package services

import (
	"context"

	"github.com/mroshb/edu_admissions/pkg/logger"
)

type UniversityCounter interface {
	CountByType(ctx context.Context) (map[string]int64, error)
}

type ApplicationCounter interface {
	Count(ctx context.Context) (int64, error)
}

// StatsService summarises the catalogue for the admin dashboard
type StatsService struct {
	universities UniversityCounter
	applications ApplicationCounter
}

func NewStatsService(universities UniversityCounter, applications ApplicationCounter) *StatsService {
	return &StatsService{universities: universities, applications: applications}
}

type Stats struct {
	Universities int64 `json:"universities"`
	Institutes   int64 `json:"institutes"`
	Applications int64 `json:"applications"`
}

func (s *StatsService) Summary(ctx context.Context, adminID uint) (*Stats, error) {
	byType, err := s.universities.CountByType(ctx)
	if err != nil {
		return nil, err
	}

	applications, err := s.applications.Count(ctx)
	if err != nil {
		return nil, err
	}

	logger.Info("Admin viewed stats", "admin_id", adminID)
	return &Stats{
		Universities: byType["university"],
		Institutes:   byType["institute"],
		Applications: applications,
	}, nil
}

package handlers

import (
	"net/http"

	"github.com/mroshb/edu_admissions/internal/config"
	"github.com/mroshb/edu_admissions/internal/middleware"
	"github.com/mroshb/edu_admissions/internal/services"
)

type HandlerManager struct {
	Config          *config.Config
	Universities    *services.UniversityService
	Specializations *services.SpecializationService
	Applications    *services.ApplicationService
	Auth            *services.AuthService
	Stats           *services.StatsService
	Admins          middleware.AdminLookup
	Limiter         *middleware.RateLimiter
	MetricsHandler  http.Handler
}

func NewHandlerManager(
	cfg *config.Config,
	universities *services.UniversityService,
	specializations *services.SpecializationService,
	applications *services.ApplicationService,
	auth *services.AuthService,
	stats *services.StatsService,
	admins middleware.AdminLookup,
	limiter *middleware.RateLimiter,
	metricsHandler http.Handler,
) *HandlerManager {
	return &HandlerManager{
		Config:          cfg,
		Universities:    universities,
		Specializations: specializations,
		Applications:    applications,
		Auth:            auth,
		Stats:           stats,
		Admins:          admins,
		Limiter:         limiter,
		MetricsHandler:  metricsHandler,
	}
}

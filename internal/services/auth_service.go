package services

import (
	"context"
	"strings"
	"time"

	"github.com/mroshb/edu_admissions/internal/models"
	"github.com/mroshb/edu_admissions/internal/security"
	"github.com/mroshb/edu_admissions/pkg/errors"
	"github.com/mroshb/edu_admissions/pkg/logger"
)

type AdminStore interface {
	GetByEmail(ctx context.Context, email string) (*models.AdminUser, error)
}

type AuthService struct {
	admins     AdminStore
	secret     string
	sessionTTL time.Duration
}

func NewAuthService(admins AdminStore, secret string, sessionTTL time.Duration) *AuthService {
	return &AuthService{
		admins:     admins,
		secret:     secret,
		sessionTTL: sessionTTL,
	}
}

// Session is a signed admin session token
type Session struct {
	Token     string
	ExpiresAt time.Time
	Admin     *models.AdminUser
}

// Login checks the credentials and issues a session token. Unknown emails
// and wrong passwords fail with the same error.
func (s *AuthService) Login(ctx context.Context, email, password string) (*Session, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	admin, err := s.admins.GetByEmail(ctx, email)
	if err != nil {
		if errors.CodeOf(err) == errors.ErrCodeNotFound {
			logger.Warn("Login attempt for unknown admin", "email", email)
			return nil, invalidCredentials()
		}
		return nil, err
	}

	if !security.VerifyPassword(admin.HashedPassword, password) {
		logger.Warn("Login attempt with wrong password", "admin_id", admin.ID)
		return nil, invalidCredentials()
	}

	token, err := security.GenerateJWT(admin.ID, admin.Email, s.secret, s.sessionTTL)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeInternalError, "failed to sign session")
	}

	logger.Info("Admin logged in", "admin_id", admin.ID)
	return &Session{
		Token:     token,
		ExpiresAt: time.Now().Add(s.sessionTTL),
		Admin:     admin,
	}, nil
}

func (s *AuthService) SessionTTL() time.Duration {
	return s.sessionTTL
}

func invalidCredentials() *errors.AppError {
	return errors.New(errors.ErrCodeUnauthorized, "Invalid credentials")
}

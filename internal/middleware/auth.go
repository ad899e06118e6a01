package middleware

import (
	"context"
	"net/http"

	"github.com/mroshb/edu_admissions/internal/models"
	"github.com/mroshb/edu_admissions/internal/security"
	"github.com/mroshb/edu_admissions/pkg/logger"
)

// SessionCookieName holds the signed admin session token.
const SessionCookieName = "admin-session"

type contextKey string

const adminKey contextKey = "admin"

// AdminLookup resolves the admin a session token belongs to.
type AdminLookup interface {
	GetByID(ctx context.Context, id uint) (*models.AdminUser, error)
}

// RequireAdmin rejects requests without a valid admin session cookie.
func RequireAdmin(secret string, admins AdminLookup) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(SessionCookieName)
			if err != nil || cookie.Value == "" {
				writeError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}

			claims, err := security.ValidateJWT(cookie.Value, secret)
			if err != nil {
				logger.Debug("Rejected admin session", "error", err)
				writeError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}

			admin, err := admins.GetByID(r.Context(), claims.AdminID)
			if err != nil || admin == nil {
				writeError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}

			ctx := context.WithValue(r.Context(), adminKey, admin)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// AdminFromContext returns the authenticated admin if present.
func AdminFromContext(ctx context.Context) (*models.AdminUser, bool) {
	admin, ok := ctx.Value(adminKey).(*models.AdminUser)
	return admin, ok
}

package handlers

import (
	"net/http"

	"github.com/mroshb/edu_admissions/internal/middleware"
)

// CurrentAdmin returns the admin behind the session cookie
func (h *HandlerManager) CurrentAdmin(w http.ResponseWriter, r *http.Request) {
	admin, ok := middleware.AdminFromContext(r.Context())
	if !ok {
		writeMessage(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"user": map[string]interface{}{
			"id":    admin.ID,
			"email": admin.Email,
			"name":  admin.Name,
		},
	})
}

// AdminStats shows catalogue and application counts
func (h *HandlerManager) AdminStats(w http.ResponseWriter, r *http.Request) {
	admin, _ := middleware.AdminFromContext(r.Context())
	var adminID uint
	if admin != nil {
		adminID = admin.ID
	}

	stats, err := h.Stats.Summary(r.Context(), adminID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

func (h *HandlerManager) ListSpecializations(w http.ResponseWriter, r *http.Request) {
	universityID, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	specs, err := h.Specializations.ListByUniversity(r.Context(), universityID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, specs)
}

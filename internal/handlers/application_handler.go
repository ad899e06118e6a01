package handlers

import (
	"net/http"

	"github.com/mroshb/edu_admissions/internal/repositories"
	"github.com/mroshb/edu_admissions/internal/services"
)

func (h *HandlerManager) SubmitApplication(w http.ResponseWriter, r *http.Request) {
	var req applicationRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid input data")
		return
	}
	if details := validationDetails(req); details != nil {
		writeInvalidInput(w, details)
		return
	}

	app, err := h.Applications.Submit(r.Context(), req.input())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, app)
}

// ListApplications supports ?page=&limit=&universityId=&specializationId=
func (h *HandlerManager) ListApplications(w http.ResponseWriter, r *http.Request) {
	filter := repositories.ApplicationFilter{
		UniversityID:     queryUint(r, "universityId"),
		SpecializationID: queryUint(r, "specializationId"),
		Page:             queryInt(r, "page", 1),
		Limit:            queryInt(r, "limit", services.DefaultPageSize),
	}

	page, err := h.Applications.List(r.Context(), filter)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, page)
}

package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/mroshb/edu_admissions/internal/models"
	"github.com/mroshb/edu_admissions/internal/repositories"
)

// ListUniversities returns published universities, optionally filtered by
// ?type= and ?universityType=
func (h *HandlerManager) ListUniversities(w http.ResponseWriter, r *http.Request) {
	h.listUniversities(w, r, true)
}

func (h *HandlerManager) ListAllUniversities(w http.ResponseWriter, r *http.Request) {
	h.listUniversities(w, r, false)
}

func (h *HandlerManager) listUniversities(w http.ResponseWriter, r *http.Request, publishedOnly bool) {
	filter := repositories.UniversityFilter{
		Type:           r.URL.Query().Get("type"),
		UniversityType: r.URL.Query().Get("universityType"),
		PublishedOnly:  publishedOnly,
	}

	universities, err := h.Universities.List(r.Context(), filter)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if universities == nil {
		universities = []models.University{}
	}
	writeJSON(w, http.StatusOK, universities)
}

func (h *HandlerManager) GetUniversity(w http.ResponseWriter, r *http.Request) {
	university, err := h.Universities.GetBySlug(r.Context(), chi.URLParam(r, "slug"), false)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, university)
}

func (h *HandlerManager) GetUniversityForAdmin(w http.ResponseWriter, r *http.Request) {
	university, err := h.Universities.GetBySlug(r.Context(), chi.URLParam(r, "slug"), true)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, university)
}

func (h *HandlerManager) CreateUniversity(w http.ResponseWriter, r *http.Request) {
	var req universityRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid input data")
		return
	}
	if details := validationDetails(req); details != nil {
		writeInvalidInput(w, details)
		return
	}

	university, err := h.Universities.Create(r.Context(), req.input())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, university)
}

func (h *HandlerManager) UpdateUniversity(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req universityRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid input data")
		return
	}
	if details := validationDetails(req); details != nil {
		writeInvalidInput(w, details)
		return
	}

	university, err := h.Universities.Update(r.Context(), id, req.input())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, university)
}

func (h *HandlerManager) DeleteUniversity(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err := h.Universities.Delete(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/mroshb/edu_admissions/internal/ingest"
	"github.com/mroshb/edu_admissions/internal/models"
	"github.com/mroshb/edu_admissions/internal/security"
)

var workbookTypes = []string{".xlsx"}

func (h *HandlerManager) CreateSpecialization(w http.ResponseWriter, r *http.Request) {
	universityID, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req specializationRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid input data")
		return
	}
	if details := validationDetails(req); details != nil {
		writeInvalidInput(w, details)
		return
	}

	spec, err := h.Specializations.Create(r.Context(), universityID, req.draft())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, spec)
}

// BulkCreateSpecializations stores a JSON array of complete specializations.
// One invalid item rejects the whole batch.
func (h *HandlerManager) BulkCreateSpecializations(w http.ResponseWriter, r *http.Request) {
	universityID, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	var items []json.RawMessage
	if err := decodeJSON(w, r, &items); err != nil || len(items) == 0 {
		writeMessage(w, http.StatusBadRequest, "Body must be a non-empty array")
		return
	}

	drafts := make([]ingest.Draft, len(items))
	details := make(map[string]string)
	for i, item := range items {
		var req specializationRequest
		if err := json.Unmarshal(item, &req); err != nil {
			details[fmt.Sprintf("[%d]", i)] = "must be an object"
			continue
		}
		for field, message := range validationDetails(req) {
			details[fmt.Sprintf("[%d].%s", i, field)] = message
		}
		drafts[i] = req.draft()
	}
	if len(details) > 0 {
		writeInvalidInput(w, details)
		return
	}

	created, err := h.Specializations.AddDrafts(r.Context(), universityID, drafts)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// ParseSpecializations previews pasted text without storing it
func (h *HandlerManager) ParseSpecializations(w http.ResponseWriter, r *http.Request) {
	if _, err := pathID(r, "id"); err != nil {
		writeError(w, r, err)
		return
	}

	var req textRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid input data")
		return
	}

	writeJSON(w, http.StatusOK, h.Specializations.PreviewBulk(req.Text))
}

// PasteSpecializations parses pasted text and stores the eligible rows
func (h *HandlerManager) PasteSpecializations(w http.ResponseWriter, r *http.Request) {
	universityID, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req textRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid input data")
		return
	}

	result, err := h.Specializations.AddFromText(r.Context(), universityID, req.Text)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeBulkResult(w, result.Created, result.Skipped)
}

// ImportSpecializations reads an uploaded .xlsx file from the "file" field
func (h *HandlerManager) ImportSpecializations(w http.ResponseWriter, r *http.Request) {
	universityID, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	maxSize := h.Config.UploadMaxSize
	r.Body = http.MaxBytesReader(w, r.Body, maxSize+maxJSONBody)
	if err := r.ParseMultipartForm(maxSize); err != nil {
		writeMessage(w, http.StatusBadRequest, "File is too large or the form is invalid")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "File is required")
		return
	}
	defer file.Close()

	if !security.ValidateFileType(header.Filename, workbookTypes) {
		writeMessage(w, http.StatusBadRequest, "Only .xlsx files are supported")
		return
	}
	if !security.ValidateFileSize(header.Size, maxSize) {
		writeMessage(w, http.StatusBadRequest, "File is empty or too large")
		return
	}

	result, err := h.Specializations.ImportWorkbook(r.Context(), universityID, file)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeBulkResult(w, result.Created, result.Skipped)
}

func (h *HandlerManager) UpdateSpecialization(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req specializationRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid input data")
		return
	}
	if details := validationDetails(req); details != nil {
		writeInvalidInput(w, details)
		return
	}

	spec, err := h.Specializations.Update(r.Context(), id, req.draft())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, spec)
}

func (h *HandlerManager) DeleteSpecialization(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err := h.Specializations.Delete(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// writeBulkResult answers 201 when rows were stored and 200 when none were eligible
func writeBulkResult(w http.ResponseWriter, created []models.Specialization, skipped int) {
	status := http.StatusCreated
	if len(created) == 0 {
		status = http.StatusOK
	}
	writeJSON(w, status, map[string]interface{}{
		"created": created,
		"skipped": skipped,
	})
}

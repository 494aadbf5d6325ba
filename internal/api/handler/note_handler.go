package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/mainakmishra/equinox/internal/api/validation"
	"github.com/mainakmishra/equinox/internal/domain"
	"github.com/mainakmishra/equinox/internal/service"
	"github.com/mainakmishra/equinox/pkg/problem"
)

type NoteHandler struct {
	service service.NoteService
}

func NewNoteHandler(service service.NoteService) *NoteHandler {
	return &NoteHandler{service: service}
}

// Create handles POST /v1/users/{userId}/notes
// @Summary Create a note
// @Tags notes
// @Accept json
// @Produce json
// @Param userId path string true "User UUID" format(uuid)
// @Param request body domain.CreateNoteRequest true "Note content"
// @Success 201 {object} domain.NoteResponse
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem
// @Failure 500 {object} problem.Problem
// @Router /users/{userId}/notes [post]
func (h *NoteHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}

	var req domain.CreateNoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	note, err := h.service.Create(r.Context(), userID, &req, domain.NoteSourceUser)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("User not found").Write(w)
			return
		}
		problem.InternalError("Failed to create note").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(note.ToResponse())
}

// List handles GET /v1/users/{userId}/notes
// @Summary List notes
// @Description Cursor-paginated notes, newest first
// @Tags notes
// @Produce json
// @Param userId path string true "User UUID" format(uuid)
// @Param limit query integer false "Results per page (1-100)" default(20)
// @Param cursor query string false "Cursor from previous response's next_cursor"
// @Success 200 {object} domain.NoteListResponse
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem
// @Failure 500 {object} problem.Problem
// @Router /users/{userId}/notes [get]
func (h *NoteHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}

	filter := domain.NoteFilter{
		Cursor: r.URL.Query().Get("cursor"),
	}
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil || limit < 1 {
			problem.ValidationError("Invalid query parameters", []problem.FieldError{{
				Field:   "limit",
				Message: "must be a positive integer",
			}}).Write(w)
			return
		}
		filter.Limit = limit
	}

	page, err := h.service.List(r.Context(), userID, filter)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("User not found").Write(w)
			return
		}
		problem.InternalError("Failed to list notes").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(page)
}

// Update handles PATCH /v1/users/{userId}/notes/{noteId}
// @Summary Update a note
// @Tags notes
// @Accept json
// @Produce json
// @Param userId path string true "User UUID" format(uuid)
// @Param noteId path string true "Note UUID" format(uuid)
// @Param request body domain.UpdateNoteRequest true "Fields to update"
// @Success 200 {object} domain.NoteResponse
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem
// @Failure 500 {object} problem.Problem
// @Router /users/{userId}/notes/{noteId} [patch]
func (h *NoteHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}
	noteID, err := uuid.Parse(chi.URLParam(r, "noteId"))
	if err != nil {
		problem.BadRequest("Invalid note ID format").Write(w)
		return
	}

	var req domain.UpdateNoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	note, err := h.service.Update(r.Context(), userID, noteID, &req)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("Note not found").Write(w)
			return
		}
		problem.InternalError("Failed to update note").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(note.ToResponse())
}

// Delete handles DELETE /v1/users/{userId}/notes/{noteId}
// @Summary Delete a note
// @Tags notes
// @Param userId path string true "User UUID" format(uuid)
// @Param noteId path string true "Note UUID" format(uuid)
// @Success 204 "Note deleted"
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem
// @Failure 500 {object} problem.Problem
// @Router /users/{userId}/notes/{noteId} [delete]
func (h *NoteHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}
	noteID, err := uuid.Parse(chi.URLParam(r, "noteId"))
	if err != nil {
		problem.BadRequest("Invalid note ID format").Write(w)
		return
	}

	if err := h.service.Delete(r.Context(), userID, noteID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("Note not found").Write(w)
			return
		}
		problem.InternalError("Failed to delete note").Write(w)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/mainakmishra/equinox/internal/api/validation"
	"github.com/mainakmishra/equinox/internal/domain"
	"github.com/mainakmishra/equinox/internal/service"
	"github.com/mainakmishra/equinox/pkg/problem"
)

type TodoHandler struct {
	service service.TodoService
}

func NewTodoHandler(service service.TodoService) *TodoHandler {
	return &TodoHandler{service: service}
}

// Create handles POST /v1/users/{userId}/todos
// @Summary Create a todo
// @Tags todos
// @Accept json
// @Produce json
// @Param userId path string true "User UUID" format(uuid)
// @Param request body domain.CreateTodoRequest true "Todo content"
// @Success 201 {object} domain.TodoResponse
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem
// @Failure 500 {object} problem.Problem
// @Router /users/{userId}/todos [post]
func (h *TodoHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}

	var req domain.CreateTodoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	todo, err := h.service.Create(r.Context(), userID, &req)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("User not found").Write(w)
			return
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			problem.BadRequest("Invalid due date").Write(w)
			return
		}
		problem.InternalError("Failed to create todo").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(todo.ToResponse())
}

// List handles GET /v1/users/{userId}/todos
// @Summary List todos
// @Description Open todos by default; pass include_completed=true for all
// @Tags todos
// @Produce json
// @Param userId path string true "User UUID" format(uuid)
// @Param include_completed query boolean false "Include completed todos" default(false)
// @Success 200 {array} domain.TodoResponse
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem
// @Failure 500 {object} problem.Problem
// @Router /users/{userId}/todos [get]
func (h *TodoHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}

	includeCompleted := r.URL.Query().Get("include_completed") == "true"

	todos, err := h.service.List(r.Context(), userID, includeCompleted)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("User not found").Write(w)
			return
		}
		problem.InternalError("Failed to list todos").Write(w)
		return
	}

	responses := make([]domain.TodoResponse, len(todos))
	for i := range todos {
		responses[i] = todos[i].ToResponse()
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(responses)
}

// Update handles PATCH /v1/users/{userId}/todos/{todoId}
// @Summary Update a todo
// @Description Change the text or completion state
// @Tags todos
// @Accept json
// @Produce json
// @Param userId path string true "User UUID" format(uuid)
// @Param todoId path string true "Todo UUID" format(uuid)
// @Param request body domain.UpdateTodoRequest true "Fields to update"
// @Success 200 {object} domain.TodoResponse
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem
// @Failure 500 {object} problem.Problem
// @Router /users/{userId}/todos/{todoId} [patch]
func (h *TodoHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}
	todoID, err := uuid.Parse(chi.URLParam(r, "todoId"))
	if err != nil {
		problem.BadRequest("Invalid todo ID format").Write(w)
		return
	}

	var req domain.UpdateTodoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	todo, err := h.service.Update(r.Context(), userID, todoID, &req)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("Todo not found").Write(w)
			return
		}
		problem.InternalError("Failed to update todo").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(todo.ToResponse())
}

// Delete handles DELETE /v1/users/{userId}/todos/{todoId}
// @Summary Delete a todo
// @Tags todos
// @Param userId path string true "User UUID" format(uuid)
// @Param todoId path string true "Todo UUID" format(uuid)
// @Success 204 "Todo deleted"
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem
// @Failure 500 {object} problem.Problem
// @Router /users/{userId}/todos/{todoId} [delete]
func (h *TodoHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}
	todoID, err := uuid.Parse(chi.URLParam(r, "todoId"))
	if err != nil {
		problem.BadRequest("Invalid todo ID format").Write(w)
		return
	}

	if err := h.service.Delete(r.Context(), userID, todoID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("Todo not found").Write(w)
			return
		}
		problem.InternalError("Failed to delete todo").Write(w)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

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

type HealthLogHandler struct {
	service service.HealthService
}

func NewHealthLogHandler(service service.HealthService) *HealthLogHandler {
	return &HealthLogHandler{service: service}
}

// Create handles POST /v1/users/{userId}/health-logs
// @Summary Log a day's health data
// @Description Record sleep, energy, stress, mood, and activity for a date. Logging the same date twice updates the entry. Readiness and sleep debt are computed on write.
// @Tags health-logs
// @Accept json
// @Produce json
// @Param userId path string true "User UUID" format(uuid)
// @Param request body domain.CreateHealthLogRequest true "Health check-in data"
// @Success 201 {object} domain.HealthLogResponse "New log created"
// @Success 200 {object} domain.HealthLogResponse "Existing log updated"
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem
// @Failure 500 {object} problem.Problem
// @Router /users/{userId}/health-logs [post]
func (h *HealthLogHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}

	var req domain.CreateHealthLogRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	log, created, err := h.service.Log(r.Context(), userID, &req)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("User not found").Write(w)
			return
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			problem.BadRequest("Invalid health log data").Write(w)
			return
		}
		problem.InternalError("Failed to save health log").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if created {
		w.WriteHeader(http.StatusCreated)
	} else {
		w.WriteHeader(http.StatusOK)
	}
	json.NewEncoder(w).Encode(log.ToResponse())
}

// Today handles GET /v1/users/{userId}/health-logs/today
// @Summary Get today's health log
// @Tags health-logs
// @Produce json
// @Param userId path string true "User UUID" format(uuid)
// @Success 200 {object} domain.HealthLogResponse
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem
// @Failure 500 {object} problem.Problem
// @Router /users/{userId}/health-logs/today [get]
func (h *HealthLogHandler) Today(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}

	log, err := h.service.Today(r.Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("No health log for today").Write(w)
			return
		}
		problem.InternalError("Failed to get health log").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(log.ToResponse())
}

// History handles GET /v1/users/{userId}/health-logs
// @Summary Get health log history
// @Description Fetch recent health logs, newest first
// @Tags health-logs
// @Produce json
// @Param userId path string true "User UUID" format(uuid)
// @Param days query integer false "Number of days" default(30) minimum(1) maximum(365)
// @Success 200 {array} domain.HealthLogResponse
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem
// @Failure 500 {object} problem.Problem
// @Router /users/{userId}/health-logs [get]
func (h *HealthLogHandler) History(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}

	days, fieldErrors := parseDaysParam(r)
	if fieldErrors != nil {
		problem.ValidationError("Invalid query parameters", fieldErrors).Write(w)
		return
	}

	logs, err := h.service.History(r.Context(), userID, days)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("User not found").Write(w)
			return
		}
		problem.InternalError("Failed to get history").Write(w)
		return
	}

	responses := make([]domain.HealthLogResponse, len(logs))
	for i := range logs {
		responses[i] = logs[i].ToResponse()
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(responses)
}

// Readiness handles GET /v1/users/{userId}/readiness
// @Summary Get today's readiness
// @Description Readiness score with zone, factor breakdown, and suggestions. Requires a health log for today.
// @Tags wellness
// @Produce json
// @Param userId path string true "User UUID" format(uuid)
// @Success 200 {object} domain.ReadinessResponse
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem
// @Failure 500 {object} problem.Problem
// @Router /users/{userId}/readiness [get]
func (h *HealthLogHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}

	resp, err := h.service.Readiness(r.Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("No health log for today").Write(w)
			return
		}
		problem.InternalError("Failed to compute readiness").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

// SleepDebt handles GET /v1/users/{userId}/sleep-debt
// @Summary Get accumulated sleep debt
// @Description Sleep debt over the last two weeks with recovery guidance
// @Tags wellness
// @Produce json
// @Param userId path string true "User UUID" format(uuid)
// @Success 200 {object} domain.SleepDebtResponse
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem
// @Failure 500 {object} problem.Problem
// @Router /users/{userId}/sleep-debt [get]
func (h *HealthLogHandler) SleepDebt(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}

	resp, err := h.service.SleepDebt(r.Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("User not found").Write(w)
			return
		}
		problem.InternalError("Failed to compute sleep debt").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

// Trends handles GET /v1/users/{userId}/trends
// @Summary Get metric trends
// @Description Direction of readiness, sleep, energy, and stress over recent days
// @Tags wellness
// @Produce json
// @Param userId path string true "User UUID" format(uuid)
// @Param days query integer false "Window size in days" default(7) minimum(1) maximum(365)
// @Success 200 {object} domain.TrendsResponse
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem
// @Failure 500 {object} problem.Problem
// @Router /users/{userId}/trends [get]
func (h *HealthLogHandler) Trends(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}

	days, fieldErrors := parseDaysParam(r)
	if fieldErrors != nil {
		problem.ValidationError("Invalid query parameters", fieldErrors).Write(w)
		return
	}

	resp, err := h.service.Trends(r.Context(), userID, days)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("User not found").Write(w)
			return
		}
		problem.InternalError("Failed to compute trends").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

// Streak handles GET /v1/users/{userId}/streak
// @Summary Get logging streak
// @Description Consecutive-day logging streak ending today
// @Tags wellness
// @Produce json
// @Param userId path string true "User UUID" format(uuid)
// @Success 200 {object} domain.StreakResponse
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem
// @Failure 500 {object} problem.Problem
// @Router /users/{userId}/streak [get]
func (h *HealthLogHandler) Streak(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}

	resp, err := h.service.Streak(r.Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("User not found").Write(w)
			return
		}
		problem.InternalError("Failed to compute streak").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

func parseDaysParam(r *http.Request) (int, []problem.FieldError) {
	daysStr := r.URL.Query().Get("days")
	if daysStr == "" {
		return 0, nil
	}

	days, err := strconv.Atoi(daysStr)
	if err != nil || days < 1 {
		return 0, []problem.FieldError{{
			Field:   "days",
			Message: "must be a positive integer",
		}}
	}
	return days, nil
}

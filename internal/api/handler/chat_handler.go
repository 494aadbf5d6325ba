package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/mainakmishra/equinox/internal/api/validation"
	"github.com/mainakmishra/equinox/internal/domain"
	"github.com/mainakmishra/equinox/internal/llm"
	"github.com/mainakmishra/equinox/internal/service"
	"github.com/mainakmishra/equinox/pkg/problem"
)

// ChatRouter dispatches a message to the right agent. Satisfied by agent.Supervisor.
type ChatRouter interface {
	Route(ctx context.Context, userID uuid.UUID, message, requested string) (string, string, error)
}

type ChatHandler struct {
	supervisor ChatRouter
	briefing   service.BriefingService
}

func NewChatHandler(supervisor ChatRouter, briefing service.BriefingService) *ChatHandler {
	return &ChatHandler{
		supervisor: supervisor,
		briefing:   briefing,
	}
}

// Chat handles POST /v1/users/{userId}/chat
// @Summary Chat with an assistant
// @Description Send a message; the supervisor routes it to the wellness or productivity agent unless an agent is requested explicitly
// @Tags chat
// @Accept json
// @Produce json
// @Param userId path string true "User UUID" format(uuid)
// @Param request body domain.ChatRequest true "Chat message"
// @Success 200 {object} domain.ChatResponse
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem
// @Failure 500 {object} problem.Problem
// @Failure 503 {object} problem.Problem "LLM not configured"
// @Router /users/{userId}/chat [post]
func (h *ChatHandler) Chat(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}

	var req domain.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	reply, agentName, err := h.supervisor.Route(r.Context(), userID, req.Message, req.Agent)
	if err != nil {
		if errors.Is(err, llm.ErrLLMUnavailable) {
			problem.ServiceUnavailable("Chat is not configured").Write(w)
			return
		}
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("User not found").Write(w)
			return
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			problem.BadRequest("Unknown agent").Write(w)
			return
		}
		problem.InternalError("Failed to process message").Write(w)
		return
	}

	threadID := req.ThreadID
	if threadID == "" {
		threadID = uuid.NewString()
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(domain.ChatResponse{
		Reply:    reply,
		Agent:    agentName,
		ThreadID: threadID,
	})
}

// Briefing handles POST /v1/users/{userId}/briefing
// @Summary Generate a morning briefing
// @Description Sleep score, unread emails, and tasks due today with a narrative summary. Pass send_email=true to mail it to the user.
// @Tags chat
// @Produce json
// @Param userId path string true "User UUID" format(uuid)
// @Param send_email query boolean false "Also email the briefing" default(false)
// @Success 200 {object} domain.BriefingResponse
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem
// @Failure 500 {object} problem.Problem
// @Router /users/{userId}/briefing [post]
func (h *ChatHandler) Briefing(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}

	sendEmail := r.URL.Query().Get("send_email") == "true"

	resp, err := h.briefing.Generate(r.Context(), userID, sendEmail)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("User not found").Write(w)
			return
		}
		problem.InternalError("Failed to generate briefing").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

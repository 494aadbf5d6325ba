package agent

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/mainakmishra/equinox/internal/domain"
	"github.com/mainakmishra/equinox/internal/llm"
)

var wellnessKeywords = []string{
	"sleep", "tired", "energy", "stress", "mood", "readiness",
	"workout", "exercise", "recover", "health", "streak", "debt",
}

var productivityKeywords = []string{
	"todo", "task", "note", "email", "gmail", "remind",
	"schedule", "meeting", "inbox", "list",
}

// Supervisor picks an agent for each incoming message.
type Supervisor struct {
	client *llm.Client
	agents map[string]*Agent
}

func NewSupervisor(client *llm.Client, agents ...*Agent) *Supervisor {
	byName := make(map[string]*Agent, len(agents))
	for _, a := range agents {
		byName[a.Name()] = a
	}
	return &Supervisor{
		client: client,
		agents: byName,
	}
}

// Route answers the message with the right agent. An explicit requested agent
// name skips classification; otherwise the model classifies the message, with
// keyword matching as the fallback when the model is unavailable or unclear.
func (s *Supervisor) Route(ctx context.Context, userID uuid.UUID, message, requested string) (string, string, error) {
	name := requested
	if name == "" {
		name = s.classify(ctx, message)
	}

	a, ok := s.agents[name]
	if !ok {
		return "", "", domain.ErrInvalidInput
	}

	reply, err := a.Run(ctx, userID, message)
	if err != nil {
		return "", "", err
	}
	return reply, a.Name(), nil
}

func (s *Supervisor) classify(ctx context.Context, message string) string {
	answer, err := s.client.Complete(ctx, supervisorSystemPrompt, message)
	if err == nil {
		switch strings.TrimSpace(strings.ToLower(answer)) {
		case domain.AgentWellness:
			return domain.AgentWellness
		case domain.AgentProductivity:
			return domain.AgentProductivity
		}
	}

	return classifyByKeywords(message)
}

// classifyByKeywords counts topic keyword hits in the message. Ties and
// keyword-free messages go to the wellness agent.
func classifyByKeywords(message string) string {
	lower := strings.ToLower(message)

	wellnessHits := 0
	for _, kw := range wellnessKeywords {
		if strings.Contains(lower, kw) {
			wellnessHits++
		}
	}

	productivityHits := 0
	for _, kw := range productivityKeywords {
		if strings.Contains(lower, kw) {
			productivityHits++
		}
	}

	if productivityHits > wellnessHits {
		return domain.AgentProductivity
	}
	return domain.AgentWellness
}

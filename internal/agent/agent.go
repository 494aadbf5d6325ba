// Package agent implements the chat assistants: tool-calling agents over the
// LLM client plus a supervisor that routes each message to the right one.
package agent

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/openai/openai-go/v3"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/mainakmishra/equinox/internal/llm"
)

// maxToolIterations bounds the tool-call loop so a misbehaving model cannot
// spin forever.
const maxToolIterations = 5

// Agent is a single tool-calling assistant with a fixed persona.
type Agent struct {
	name         string
	client       *llm.Client
	systemPrompt string
	tools        []Tool
	toolsByName  map[string]Tool
}

// New creates an agent. The tool list may be empty for a pure chat persona.
func New(name string, client *llm.Client, systemPrompt string, tools []Tool) *Agent {
	byName := make(map[string]Tool, len(tools))
	for _, t := range tools {
		byName[t.Name] = t
	}

	return &Agent{
		name:         name,
		client:       client,
		systemPrompt: systemPrompt,
		tools:        tools,
		toolsByName:  byName,
	}
}

// Name returns the agent identifier used in routing and responses.
func (a *Agent) Name() string {
	return a.name
}

// Run answers one user message, executing tool calls until the model produces
// a final text reply or the iteration budget runs out.
func (a *Agent) Run(ctx context.Context, userID uuid.UUID, message string) (string, error) {
	if a.client == nil {
		return "", llm.ErrLLMUnavailable
	}

	tracer := otel.Tracer("equinox-api/agent")
	ctx, span := tracer.Start(ctx, "Agent.Run",
		trace.WithAttributes(
			attribute.String("agent.name", a.name),
			attribute.String("user.id", userID.String()),
			attribute.String("langfuse.observation.input", message),
		),
	)
	defer span.End()

	params := openai.ChatCompletionNewParams{
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(a.systemPrompt),
			openai.UserMessage(message),
		},
	}
	for _, t := range a.tools {
		params.Tools = append(params.Tools, t.toParam())
	}

	for i := 0; i < maxToolIterations; i++ {
		resp, err := a.client.Chat(ctx, params)
		if err != nil {
			return "", err
		}

		msg := resp.Choices[0].Message
		if len(msg.ToolCalls) == 0 {
			span.SetAttributes(
				attribute.String("langfuse.observation.output", msg.Content),
				attribute.Int("agent.tool_iterations", i),
			)
			return msg.Content, nil
		}

		params.Messages = append(params.Messages, msg.ToParam())
		for _, call := range msg.ToolCalls {
			result := a.executeTool(ctx, userID, call.Function.Name, json.RawMessage(call.Function.Arguments))
			params.Messages = append(params.Messages, openai.ToolMessage(result, call.ID))
		}
	}

	return "", fmt.Errorf("%w: tool iteration limit reached", llm.ErrLLMResponse)
}

func (a *Agent) executeTool(ctx context.Context, userID uuid.UUID, name string, args json.RawMessage) string {
	tool, ok := a.toolsByName[name]
	if !ok {
		return fmt.Sprintf("error: unknown tool %q", name)
	}

	result, err := tool.Run(ctx, userID, args)
	if err != nil {
		// Feed the failure back to the model so it can recover or apologize
		return fmt.Sprintf("error: %v", err)
	}
	return result
}

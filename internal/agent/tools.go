package agent

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/openai/openai-go/v3"
)

// ToolFunc executes a tool call on behalf of a user. It returns the result as
// a string to feed back into the conversation; execution errors are reported
// to the model as text rather than aborting the run.
type ToolFunc func(ctx context.Context, userID uuid.UUID, args json.RawMessage) (string, error)

// Tool pairs a function-calling schema with its implementation.
type Tool struct {
	Name        string
	Description string
	Parameters  map[string]any
	Run         ToolFunc
}

// toParam converts the tool into the wire format for chat completions.
func (t Tool) toParam() openai.ChatCompletionToolUnionParam {
	params := t.Parameters
	if params == nil {
		params = map[string]any{
			"type":       "object",
			"properties": map[string]any{},
		}
	}

	return openai.ChatCompletionFunctionTool(openai.FunctionDefinitionParam{
		Name:        t.Name,
		Description: openai.String(t.Description),
		Parameters:  openai.FunctionParameters(params),
	})
}

// objectSchema builds a JSON schema for an object with the given properties.
func objectSchema(properties map[string]any, required ...string) map[string]any {
	schema := map[string]any{
		"type":       "object",
		"properties": properties,
	}
	if len(required) > 0 {
		schema["required"] = required
	}
	return schema
}

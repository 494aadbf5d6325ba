package agent

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/mainakmishra/equinox/internal/domain"
	"github.com/mainakmishra/equinox/internal/google"
	"github.com/mainakmishra/equinox/internal/service"
)

// ProductivityTools exposes notes, todos, and the Google integration to the
// productivity agent. googleSvc may be nil when the integration is disabled;
// its tools then report the account as not linked.
func ProductivityTools(notes service.NoteService, todos service.TodoService, googleSvc *google.Service) []Tool {
	tools := []Tool{
		{
			Name:        "create_note",
			Description: "Save a note for the user.",
			Parameters: objectSchema(map[string]any{
				"title":   map[string]any{"type": "string"},
				"content": map[string]any{"type": "string"},
			}, "title"),
			Run: func(ctx context.Context, userID uuid.UUID, args json.RawMessage) (string, error) {
				var in struct {
					Title   string `json:"title"`
					Content string `json:"content"`
				}
				if err := json.Unmarshal(args, &in); err != nil || in.Title == "" {
					return "", domain.ErrInvalidInput
				}

				note, err := notes.Create(ctx, userID, &domain.CreateNoteRequest{
					Title:   in.Title,
					Content: in.Content,
				}, domain.NoteSourceAgent)
				if err != nil {
					return "", err
				}
				return marshalResult(note.ToResponse())
			},
		},
		{
			Name:        "list_notes",
			Description: "List the user's most recent notes.",
			Run: func(ctx context.Context, userID uuid.UUID, _ json.RawMessage) (string, error) {
				page, err := notes.List(ctx, userID, domain.NoteFilter{Limit: 10})
				if err != nil {
					return "", err
				}
				return marshalResult(page.Data)
			},
		},
		{
			Name:        "create_todo",
			Description: "Add a todo item, optionally with a YYYY-MM-DD due date.",
			Parameters: objectSchema(map[string]any{
				"text":     map[string]any{"type": "string"},
				"due_date": map[string]any{"type": "string", "description": "Due date as YYYY-MM-DD"},
			}, "text"),
			Run: func(ctx context.Context, userID uuid.UUID, args json.RawMessage) (string, error) {
				var in struct {
					Text    string  `json:"text"`
					DueDate *string `json:"due_date"`
				}
				if err := json.Unmarshal(args, &in); err != nil || in.Text == "" {
					return "", domain.ErrInvalidInput
				}

				todo, err := todos.Create(ctx, userID, &domain.CreateTodoRequest{
					Text:    in.Text,
					DueDate: in.DueDate,
				})
				if err != nil {
					return "", err
				}
				return marshalResult(todo.ToResponse())
			},
		},
		{
			Name:        "list_todos",
			Description: "List the user's open todos.",
			Run: func(ctx context.Context, userID uuid.UUID, _ json.RawMessage) (string, error) {
				items, err := todos.List(ctx, userID, false)
				if err != nil {
					return "", err
				}
				responses := make([]domain.TodoResponse, len(items))
				for i := range items {
					responses[i] = items[i].ToResponse()
				}
				return marshalResult(responses)
			},
		},
		{
			Name:        "complete_todo",
			Description: "Mark a todo as completed by its id.",
			Parameters: objectSchema(map[string]any{
				"todo_id": map[string]any{"type": "string", "description": "UUID of the todo"},
			}, "todo_id"),
			Run: func(ctx context.Context, userID uuid.UUID, args json.RawMessage) (string, error) {
				var in struct {
					TodoID string `json:"todo_id"`
				}
				if err := json.Unmarshal(args, &in); err != nil {
					return "", domain.ErrInvalidInput
				}
				todoID, err := uuid.Parse(in.TodoID)
				if err != nil {
					return "", domain.ErrInvalidInput
				}

				completed := true
				todo, err := todos.Update(ctx, userID, todoID, &domain.UpdateTodoRequest{Completed: &completed})
				if err != nil {
					return "", err
				}
				return marshalResult(todo.ToResponse())
			},
		},
	}

	tools = append(tools,
		Tool{
			Name:        "check_emails",
			Description: "Check the user's recent Gmail inbox, optionally with a Gmail search query.",
			Parameters: objectSchema(map[string]any{
				"query": map[string]any{"type": "string", "description": "Gmail search query, e.g. is:unread"},
			}),
			Run: func(ctx context.Context, userID uuid.UUID, args json.RawMessage) (string, error) {
				if googleSvc == nil {
					return "", domain.ErrGoogleNotLinked
				}
				var in struct {
					Query string `json:"query"`
				}
				_ = json.Unmarshal(args, &in)

				emails, err := googleSvc.ListRecentEmails(ctx, userID, in.Query, 10)
				if err != nil {
					return "", err
				}
				return marshalResult(emails)
			},
		},
		Tool{
			Name:        "send_email",
			Description: "Send a plain-text email from the user's Gmail account.",
			Parameters: objectSchema(map[string]any{
				"to":      map[string]any{"type": "string"},
				"subject": map[string]any{"type": "string"},
				"body":    map[string]any{"type": "string"},
			}, "to", "subject", "body"),
			Run: func(ctx context.Context, userID uuid.UUID, args json.RawMessage) (string, error) {
				if googleSvc == nil {
					return "", domain.ErrGoogleNotLinked
				}
				var in struct {
					To      string `json:"to"`
					Subject string `json:"subject"`
					Body    string `json:"body"`
				}
				if err := json.Unmarshal(args, &in); err != nil || in.To == "" {
					return "", domain.ErrInvalidInput
				}

				if err := googleSvc.SendEmail(ctx, userID, in.To, in.Subject, in.Body); err != nil {
					return "", err
				}
				return `{"sent":true}`, nil
			},
		},
		Tool{
			Name:        "list_google_tasks",
			Description: "List the user's incomplete Google Tasks due by end of today.",
			Run: func(ctx context.Context, userID uuid.UUID, _ json.RawMessage) (string, error) {
				if googleSvc == nil {
					return "", domain.ErrGoogleNotLinked
				}
				endOfDay := time.Now().UTC().Truncate(24 * time.Hour).Add(24*time.Hour - time.Second)
				tasks, err := googleSvc.ListTasksDueBy(ctx, userID, endOfDay)
				if err != nil {
					return "", err
				}
				return marshalResult(tasks)
			},
		},
		Tool{
			Name:        "create_google_task",
			Description: "Add a task to the user's Google Tasks default list.",
			Parameters: objectSchema(map[string]any{
				"title":    map[string]any{"type": "string"},
				"notes":    map[string]any{"type": "string"},
				"due_date": map[string]any{"type": "string", "description": "Due date as YYYY-MM-DD"},
			}, "title"),
			Run: func(ctx context.Context, userID uuid.UUID, args json.RawMessage) (string, error) {
				if googleSvc == nil {
					return "", domain.ErrGoogleNotLinked
				}
				var in struct {
					Title   string `json:"title"`
					Notes   string `json:"notes"`
					DueDate string `json:"due_date"`
				}
				if err := json.Unmarshal(args, &in); err != nil || in.Title == "" {
					return "", domain.ErrInvalidInput
				}

				var due time.Time
				if in.DueDate != "" {
					parsed, err := time.Parse("2006-01-02", in.DueDate)
					if err != nil {
						return "", domain.ErrInvalidInput
					}
					due = parsed
				}

				task, err := googleSvc.CreateTask(ctx, userID, in.Title, in.Notes, due)
				if err != nil {
					return "", err
				}
				return marshalResult(task)
			},
		},
	)

	return tools
}

package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/mainakmishra/equinox/internal/domain"
	"github.com/mainakmishra/equinox/internal/llm"
)

func newChatRequest(t *testing.T, method, target, userID, body string) *http.Request {
	t.Helper()

	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}

	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("userId", userID)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestChatHandler_Chat(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name           string
		body           string
		router         *MockChatRouter
		wantStatusCode int
		wantAgent      string
	}{
		{
			name: "routed to wellness",
			body: `{"message": "How did I sleep this week?"}`,
			router: &MockChatRouter{
				routeFunc: func(ctx context.Context, id uuid.UUID, message, requested string) (string, string, error) {
					return "You averaged 7.2 hours.", domain.AgentWellness, nil
				},
			},
			wantStatusCode: http.StatusOK,
			wantAgent:      domain.AgentWellness,
		},
		{
			name: "explicit agent honored",
			body: `{"message": "Add milk to my list", "agent": "productivity"}`,
			router: &MockChatRouter{
				routeFunc: func(ctx context.Context, id uuid.UUID, message, requested string) (string, string, error) {
					if requested != domain.AgentProductivity {
						t.Errorf("Route() requested = %q, want %q", requested, domain.AgentProductivity)
					}
					return "Added.", domain.AgentProductivity, nil
				},
			},
			wantStatusCode: http.StatusOK,
			wantAgent:      domain.AgentProductivity,
		},
		{
			name:           "missing message",
			body:           `{}`,
			router:         &MockChatRouter{},
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name:           "unknown agent rejected by validation",
			body:           `{"message": "hi", "agent": "astrology"}`,
			router:         &MockChatRouter{},
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name: "LLM not configured",
			body: `{"message": "hi"}`,
			router: &MockChatRouter{
				routeFunc: func(ctx context.Context, id uuid.UUID, message, requested string) (string, string, error) {
					return "", "", llm.ErrLLMUnavailable
				},
			},
			wantStatusCode: http.StatusServiceUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewChatHandler(tt.router, &MockBriefingService{})

			req := newChatRequest(t, http.MethodPost, "/v1/users/"+userID.String()+"/chat", userID.String(), tt.body)
			rec := httptest.NewRecorder()

			handler.Chat(rec, req)

			if rec.Code != tt.wantStatusCode {
				t.Errorf("Chat() status = %d, want %d, body: %s", rec.Code, tt.wantStatusCode, rec.Body.String())
			}

			if tt.wantStatusCode == http.StatusOK {
				var response domain.ChatResponse
				if err := json.NewDecoder(rec.Body).Decode(&response); err != nil {
					t.Fatalf("Failed to decode response: %v", err)
				}
				if response.Agent != tt.wantAgent {
					t.Errorf("Chat() agent = %q, want %q", response.Agent, tt.wantAgent)
				}
				if response.ThreadID == "" {
					t.Error("Chat() expected a thread_id in the response")
				}
			}
		})
	}
}

func TestChatHandler_ChatKeepsThreadID(t *testing.T) {
	userID := uuid.New()
	handler := NewChatHandler(&MockChatRouter{}, &MockBriefingService{})

	req := newChatRequest(t, http.MethodPost, "/v1/users/"+userID.String()+"/chat", userID.String(),
		`{"message": "hi", "thread_id": "thread-42"}`)
	rec := httptest.NewRecorder()

	handler.Chat(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Chat() status = %d, want %d, body: %s", rec.Code, http.StatusOK, rec.Body.String())
	}

	var response domain.ChatResponse
	if err := json.NewDecoder(rec.Body).Decode(&response); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if response.ThreadID != "thread-42" {
		t.Errorf("Chat() thread_id = %q, want %q", response.ThreadID, "thread-42")
	}
}

func TestChatHandler_Briefing(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name          string
		query         string
		wantSendEmail bool
	}{
		{name: "plain briefing", query: "", wantSendEmail: false},
		{name: "emailed briefing", query: "?send_email=true", wantSendEmail: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			briefing := &MockBriefingService{
				generateFunc: func(ctx context.Context, id uuid.UUID, sendEmail bool) (*domain.BriefingResponse, error) {
					if sendEmail != tt.wantSendEmail {
						t.Errorf("Generate() sendEmail = %v, want %v", sendEmail, tt.wantSendEmail)
					}
					return &domain.BriefingResponse{
						Greeting:   "Good morning",
						SleepScore: 90,
						Summary:    "Sleep score 90/100. 2 unread emails, 1 task due today.",
						EmailSent:  sendEmail,
					}, nil
				},
			}
			handler := NewChatHandler(&MockChatRouter{}, briefing)

			req := newChatRequest(t, http.MethodPost, "/v1/users/"+userID.String()+"/briefing"+tt.query, userID.String(), "")
			rec := httptest.NewRecorder()

			handler.Briefing(rec, req)

			if rec.Code != http.StatusOK {
				t.Fatalf("Briefing() status = %d, want %d, body: %s", rec.Code, http.StatusOK, rec.Body.String())
			}

			var response domain.BriefingResponse
			if err := json.NewDecoder(rec.Body).Decode(&response); err != nil {
				t.Fatalf("Failed to decode response: %v", err)
			}
			if response.SleepScore != 90 {
				t.Errorf("Briefing() sleep_score = %d, want 90", response.SleepScore)
			}
		})
	}
}

func TestChatHandler_BriefingUnknownUser(t *testing.T) {
	handler := NewChatHandler(&MockChatRouter{}, &MockBriefingService{
		generateFunc: func(ctx context.Context, id uuid.UUID, sendEmail bool) (*domain.BriefingResponse, error) {
			return nil, domain.ErrNotFound
		},
	})

	userID := uuid.New()
	req := newChatRequest(t, http.MethodPost, "/v1/users/"+userID.String()+"/briefing", userID.String(), "")
	rec := httptest.NewRecorder()

	handler.Briefing(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("Briefing() status = %d, want %d, body: %s", rec.Code, http.StatusNotFound, rec.Body.String())
	}
}

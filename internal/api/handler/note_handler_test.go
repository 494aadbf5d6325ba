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
)

func newNoteRequest(t *testing.T, method, target, userID, noteID, body string) *http.Request {
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
	if noteID != "" {
		rctx.URLParams.Add("noteId", noteID)
	}
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestNoteHandler_Create(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name           string
		body           string
		mockService    *MockNoteService
		wantStatusCode int
	}{
		{
			name: "valid note",
			body: `{"title": "Meeting notes", "content": "Discussed the Q3 roadmap"}`,
			mockService: &MockNoteService{
				createFunc: func(ctx context.Context, id uuid.UUID, req *domain.CreateNoteRequest, source string) (*domain.Note, error) {
					if source != domain.NoteSourceUser {
						t.Errorf("Create() source = %q, want %q", source, domain.NoteSourceUser)
					}
					return &domain.Note{ID: uuid.New(), UserID: id, Title: req.Title, Content: req.Content, Source: source}, nil
				},
			},
			wantStatusCode: http.StatusCreated,
		},
		{
			name:           "missing title",
			body:           `{"content": "orphaned content"}`,
			mockService:    &MockNoteService{},
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name:           "invalid JSON",
			body:           `{invalid}`,
			mockService:    &MockNoteService{},
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name: "unknown user",
			body: `{"title": "Meeting notes"}`,
			mockService: &MockNoteService{
				createFunc: func(ctx context.Context, id uuid.UUID, req *domain.CreateNoteRequest, source string) (*domain.Note, error) {
					return nil, domain.ErrNotFound
				},
			},
			wantStatusCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewNoteHandler(tt.mockService)

			req := newNoteRequest(t, http.MethodPost, "/v1/users/"+userID.String()+"/notes", userID.String(), "", tt.body)
			rec := httptest.NewRecorder()

			handler.Create(rec, req)

			if rec.Code != tt.wantStatusCode {
				t.Errorf("Create() status = %d, want %d, body: %s", rec.Code, tt.wantStatusCode, rec.Body.String())
			}
		})
	}
}

func TestNoteHandler_List(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name           string
		query          string
		mockService    *MockNoteService
		wantStatusCode int
	}{
		{
			name:  "passes limit and cursor through",
			query: "?limit=5&cursor=abc123",
			mockService: &MockNoteService{
				listFunc: func(ctx context.Context, id uuid.UUID, filter domain.NoteFilter) (*domain.NoteListResponse, error) {
					if filter.Limit != 5 {
						t.Errorf("List() limit = %d, want 5", filter.Limit)
					}
					if filter.Cursor != "abc123" {
						t.Errorf("List() cursor = %q, want %q", filter.Cursor, "abc123")
					}
					return &domain.NoteListResponse{Data: []domain.NoteResponse{}}, nil
				},
			},
			wantStatusCode: http.StatusOK,
		},
		{
			name:           "default filter",
			query:          "",
			mockService:    &MockNoteService{},
			wantStatusCode: http.StatusOK,
		},
		{
			name:           "non-numeric limit",
			query:          "?limit=lots",
			mockService:    &MockNoteService{},
			wantStatusCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewNoteHandler(tt.mockService)

			req := newNoteRequest(t, http.MethodGet, "/v1/users/"+userID.String()+"/notes"+tt.query, userID.String(), "", "")
			rec := httptest.NewRecorder()

			handler.List(rec, req)

			if rec.Code != tt.wantStatusCode {
				t.Errorf("List() status = %d, want %d, body: %s", rec.Code, tt.wantStatusCode, rec.Body.String())
			}

			if tt.wantStatusCode == http.StatusOK {
				var response domain.NoteListResponse
				if err := json.NewDecoder(rec.Body).Decode(&response); err != nil {
					t.Errorf("Failed to decode response: %v", err)
				}
			}
		})
	}
}

func TestNoteHandler_Update(t *testing.T) {
	userID := uuid.New()
	noteID := uuid.New()

	tests := []struct {
		name           string
		noteID         string
		body           string
		mockService    *MockNoteService
		wantStatusCode int
	}{
		{
			name:   "update title",
			noteID: noteID.String(),
			body:   `{"title": "Renamed"}`,
			mockService: &MockNoteService{
				updateFunc: func(ctx context.Context, uid, nid uuid.UUID, req *domain.UpdateNoteRequest) (*domain.Note, error) {
					return &domain.Note{ID: nid, UserID: uid, Title: *req.Title}, nil
				},
			},
			wantStatusCode: http.StatusOK,
		},
		{
			name:           "note not found",
			noteID:         uuid.New().String(),
			body:           `{"title": "Renamed"}`,
			mockService:    &MockNoteService{},
			wantStatusCode: http.StatusNotFound,
		},
		{
			name:           "invalid note ID",
			noteID:         "not-a-uuid",
			body:           `{"title": "Renamed"}`,
			mockService:    &MockNoteService{},
			wantStatusCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewNoteHandler(tt.mockService)

			req := newNoteRequest(t, http.MethodPatch, "/v1/users/"+userID.String()+"/notes/"+tt.noteID, userID.String(), tt.noteID, tt.body)
			rec := httptest.NewRecorder()

			handler.Update(rec, req)

			if rec.Code != tt.wantStatusCode {
				t.Errorf("Update() status = %d, want %d, body: %s", rec.Code, tt.wantStatusCode, rec.Body.String())
			}
		})
	}
}

func TestNoteHandler_Delete(t *testing.T) {
	userID := uuid.New()
	noteID := uuid.New()

	tests := []struct {
		name           string
		mockService    *MockNoteService
		wantStatusCode int
	}{
		{
			name: "deleted",
			mockService: &MockNoteService{
				deleteFunc: func(ctx context.Context, uid, nid uuid.UUID) error { return nil },
			},
			wantStatusCode: http.StatusNoContent,
		},
		{
			name:           "note not found",
			mockService:    &MockNoteService{},
			wantStatusCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewNoteHandler(tt.mockService)

			req := newNoteRequest(t, http.MethodDelete, "/v1/users/"+userID.String()+"/notes/"+noteID.String(), userID.String(), noteID.String(), "")
			rec := httptest.NewRecorder()

			handler.Delete(rec, req)

			if rec.Code != tt.wantStatusCode {
				t.Errorf("Delete() status = %d, want %d, body: %s", rec.Code, tt.wantStatusCode, rec.Body.String())
			}
		})
	}
}

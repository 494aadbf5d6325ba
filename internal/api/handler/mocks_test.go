package handler

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/mainakmishra/equinox/internal/domain"
)

// MockHealthService is a mock implementation of HealthService
type MockHealthService struct {
	logFunc       func(ctx context.Context, userID uuid.UUID, req *domain.CreateHealthLogRequest) (*domain.HealthLog, bool, error)
	todayFunc     func(ctx context.Context, userID uuid.UUID) (*domain.HealthLog, error)
	historyFunc   func(ctx context.Context, userID uuid.UUID, days int) ([]domain.HealthLog, error)
	readinessFunc func(ctx context.Context, userID uuid.UUID) (*domain.ReadinessResponse, error)
	sleepDebtFunc func(ctx context.Context, userID uuid.UUID) (*domain.SleepDebtResponse, error)
	trendsFunc    func(ctx context.Context, userID uuid.UUID, days int) (*domain.TrendsResponse, error)
	streakFunc    func(ctx context.Context, userID uuid.UUID) (*domain.StreakResponse, error)
}

func (m *MockHealthService) Log(ctx context.Context, userID uuid.UUID, req *domain.CreateHealthLogRequest) (*domain.HealthLog, bool, error) {
	if m.logFunc != nil {
		return m.logFunc(ctx, userID, req)
	}
	return &domain.HealthLog{
		ID:           uuid.New(),
		UserID:       userID,
		Date:         time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC),
		SleepHours:   req.SleepHours,
		SleepQuality: req.SleepQuality,
		EnergyLevel:  req.EnergyLevel,
		StressLevel:  req.StressLevel,
		MoodScore:    req.MoodScore,
		Source:       "manual",
		CreatedAt:    time.Now(),
	}, true, nil
}

func (m *MockHealthService) Today(ctx context.Context, userID uuid.UUID) (*domain.HealthLog, error) {
	if m.todayFunc != nil {
		return m.todayFunc(ctx, userID)
	}
	return nil, domain.ErrNotFound
}

func (m *MockHealthService) History(ctx context.Context, userID uuid.UUID, days int) ([]domain.HealthLog, error) {
	if m.historyFunc != nil {
		return m.historyFunc(ctx, userID, days)
	}
	return []domain.HealthLog{}, nil
}

func (m *MockHealthService) Readiness(ctx context.Context, userID uuid.UUID) (*domain.ReadinessResponse, error) {
	if m.readinessFunc != nil {
		return m.readinessFunc(ctx, userID)
	}
	return nil, domain.ErrNotFound
}

func (m *MockHealthService) SleepDebt(ctx context.Context, userID uuid.UUID) (*domain.SleepDebtResponse, error) {
	if m.sleepDebtFunc != nil {
		return m.sleepDebtFunc(ctx, userID)
	}
	return &domain.SleepDebtResponse{}, nil
}

func (m *MockHealthService) Trends(ctx context.Context, userID uuid.UUID, days int) (*domain.TrendsResponse, error) {
	if m.trendsFunc != nil {
		return m.trendsFunc(ctx, userID, days)
	}
	return &domain.TrendsResponse{Days: days}, nil
}

func (m *MockHealthService) Streak(ctx context.Context, userID uuid.UUID) (*domain.StreakResponse, error) {
	if m.streakFunc != nil {
		return m.streakFunc(ctx, userID)
	}
	return &domain.StreakResponse{}, nil
}

// MockNoteService is a mock implementation of NoteService
type MockNoteService struct {
	createFunc func(ctx context.Context, userID uuid.UUID, req *domain.CreateNoteRequest, source string) (*domain.Note, error)
	getFunc    func(ctx context.Context, userID, noteID uuid.UUID) (*domain.Note, error)
	listFunc   func(ctx context.Context, userID uuid.UUID, filter domain.NoteFilter) (*domain.NoteListResponse, error)
	updateFunc func(ctx context.Context, userID, noteID uuid.UUID, req *domain.UpdateNoteRequest) (*domain.Note, error)
	deleteFunc func(ctx context.Context, userID, noteID uuid.UUID) error
}

func (m *MockNoteService) Create(ctx context.Context, userID uuid.UUID, req *domain.CreateNoteRequest, source string) (*domain.Note, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, userID, req, source)
	}
	return &domain.Note{
		ID:        uuid.New(),
		UserID:    userID,
		Title:     req.Title,
		Content:   req.Content,
		Source:    source,
		CreatedAt: time.Now(),
	}, nil
}

func (m *MockNoteService) Get(ctx context.Context, userID, noteID uuid.UUID) (*domain.Note, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, userID, noteID)
	}
	return nil, domain.ErrNotFound
}

func (m *MockNoteService) List(ctx context.Context, userID uuid.UUID, filter domain.NoteFilter) (*domain.NoteListResponse, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, userID, filter)
	}
	return &domain.NoteListResponse{
		Data:       []domain.NoteResponse{},
		Pagination: domain.PaginationResponse{HasMore: false},
	}, nil
}

func (m *MockNoteService) Update(ctx context.Context, userID, noteID uuid.UUID, req *domain.UpdateNoteRequest) (*domain.Note, error) {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, userID, noteID, req)
	}
	return nil, domain.ErrNotFound
}

func (m *MockNoteService) Delete(ctx context.Context, userID, noteID uuid.UUID) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, userID, noteID)
	}
	return domain.ErrNotFound
}

// MockTodoService is a mock implementation of TodoService
type MockTodoService struct {
	createFunc func(ctx context.Context, userID uuid.UUID, req *domain.CreateTodoRequest) (*domain.Todo, error)
	listFunc   func(ctx context.Context, userID uuid.UUID, includeCompleted bool) ([]domain.Todo, error)
	updateFunc func(ctx context.Context, userID, todoID uuid.UUID, req *domain.UpdateTodoRequest) (*domain.Todo, error)
	deleteFunc func(ctx context.Context, userID, todoID uuid.UUID) error
}

func (m *MockTodoService) Create(ctx context.Context, userID uuid.UUID, req *domain.CreateTodoRequest) (*domain.Todo, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, userID, req)
	}
	return &domain.Todo{
		ID:        uuid.New(),
		UserID:    userID,
		Text:      req.Text,
		CreatedAt: time.Now(),
	}, nil
}

func (m *MockTodoService) List(ctx context.Context, userID uuid.UUID, includeCompleted bool) ([]domain.Todo, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, userID, includeCompleted)
	}
	return []domain.Todo{}, nil
}

func (m *MockTodoService) Update(ctx context.Context, userID, todoID uuid.UUID, req *domain.UpdateTodoRequest) (*domain.Todo, error) {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, userID, todoID, req)
	}
	return nil, domain.ErrNotFound
}

func (m *MockTodoService) Delete(ctx context.Context, userID, todoID uuid.UUID) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, userID, todoID)
	}
	return domain.ErrNotFound
}

// MockChatRouter is a mock implementation of ChatRouter
type MockChatRouter struct {
	routeFunc func(ctx context.Context, userID uuid.UUID, message, requested string) (string, string, error)
}

func (m *MockChatRouter) Route(ctx context.Context, userID uuid.UUID, message, requested string) (string, string, error) {
	if m.routeFunc != nil {
		return m.routeFunc(ctx, userID, message, requested)
	}
	return "hello", domain.AgentWellness, nil
}

// MockBriefingService is a mock implementation of BriefingService
type MockBriefingService struct {
	generateFunc func(ctx context.Context, userID uuid.UUID, sendEmail bool) (*domain.BriefingResponse, error)
}

func (m *MockBriefingService) Generate(ctx context.Context, userID uuid.UUID, sendEmail bool) (*domain.BriefingResponse, error) {
	if m.generateFunc != nil {
		return m.generateFunc(ctx, userID, sendEmail)
	}
	return &domain.BriefingResponse{Greeting: "Good morning", SleepScore: 90}, nil
}

func (m *MockBriefingService) RunScheduled(ctx context.Context) {}

package service

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/mainakmishra/equinox/internal/domain"
)

// MockHealthLogRepository is a mock implementation of HealthLogRepository
type MockHealthLogRepository struct {
	logs map[uuid.UUID]*domain.HealthLog
	err  error
}

func NewMockHealthLogRepository() *MockHealthLogRepository {
	return &MockHealthLogRepository{
		logs: make(map[uuid.UUID]*domain.HealthLog),
	}
}

func (m *MockHealthLogRepository) Save(ctx context.Context, log *domain.HealthLog) error {
	if m.err != nil {
		return m.err
	}
	if log.ID == uuid.Nil {
		log.ID = uuid.New()
		log.CreatedAt = time.Now()
	}
	saved := *log
	m.logs[log.ID] = &saved
	return nil
}

func (m *MockHealthLogRepository) GetByUserAndDate(ctx context.Context, userID uuid.UUID, date time.Time) (*domain.HealthLog, error) {
	if m.err != nil {
		return nil, m.err
	}
	for _, log := range m.logs {
		if log.UserID == userID && log.Date.Format("2006-01-02") == date.Format("2006-01-02") {
			found := *log
			return &found, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *MockHealthLogRepository) ListRecent(ctx context.Context, userID uuid.UUID, limit int) ([]domain.HealthLog, error) {
	if m.err != nil {
		return nil, m.err
	}
	var result []domain.HealthLog
	for _, log := range m.logs {
		if log.UserID == userID {
			result = append(result, *log)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Date.After(result[j].Date)
	})
	if limit > 0 && len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

func (m *MockHealthLogRepository) ListDates(ctx context.Context, userID uuid.UUID) ([]time.Time, error) {
	if m.err != nil {
		return nil, m.err
	}
	logs, err := m.ListRecent(ctx, userID, 0)
	if err != nil {
		return nil, err
	}
	dates := make([]time.Time, len(logs))
	for i, log := range logs {
		dates[i] = log.Date
	}
	return dates, nil
}

// MockUserRepository is a mock implementation of UserRepository
type MockUserRepository struct {
	users map[uuid.UUID]*domain.User
	err   error
}

func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{
		users: make(map[uuid.UUID]*domain.User),
	}
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	if m.err != nil {
		return m.err
	}
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	m.users[user.ID] = user
	return nil
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	user, ok := m.users[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return user, nil
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	for _, user := range m.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *MockUserRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	_, ok := m.users[id]
	return ok, nil
}

func (m *MockUserRepository) SetError(err error) {
	m.err = err
}

// MockProfileRepository is a mock implementation of ProfileRepository
type MockProfileRepository struct {
	profiles map[uuid.UUID]*domain.UserProfile
	err      error
}

func NewMockProfileRepository() *MockProfileRepository {
	return &MockProfileRepository{
		profiles: make(map[uuid.UUID]*domain.UserProfile),
	}
}

func (m *MockProfileRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.UserProfile, error) {
	if m.err != nil {
		return nil, m.err
	}
	profile, ok := m.profiles[userID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return profile, nil
}

func (m *MockProfileRepository) Save(ctx context.Context, profile *domain.UserProfile) error {
	if m.err != nil {
		return m.err
	}
	if profile.ID == uuid.Nil {
		profile.ID = uuid.New()
	}
	m.profiles[profile.UserID] = profile
	return nil
}

// MockNoteRepository is a mock implementation of NoteRepository
type MockNoteRepository struct {
	notes map[uuid.UUID]*domain.Note
	err   error
}

func NewMockNoteRepository() *MockNoteRepository {
	return &MockNoteRepository{
		notes: make(map[uuid.UUID]*domain.Note),
	}
}

func (m *MockNoteRepository) Create(ctx context.Context, note *domain.Note) error {
	if m.err != nil {
		return m.err
	}
	if note.ID == uuid.Nil {
		note.ID = uuid.New()
	}
	note.CreatedAt = time.Now()
	m.notes[note.ID] = note
	return nil
}

func (m *MockNoteRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Note, error) {
	if m.err != nil {
		return nil, m.err
	}
	note, ok := m.notes[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return note, nil
}

func (m *MockNoteRepository) List(ctx context.Context, userID uuid.UUID, filter domain.NoteFilter) ([]domain.Note, error) {
	if m.err != nil {
		return nil, m.err
	}
	var result []domain.Note
	for _, note := range m.notes {
		if note.UserID == userID {
			result = append(result, *note)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}

func (m *MockNoteRepository) Update(ctx context.Context, note *domain.Note) error {
	if m.err != nil {
		return m.err
	}
	m.notes[note.ID] = note
	return nil
}

func (m *MockNoteRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if m.err != nil {
		return m.err
	}
	if _, ok := m.notes[id]; !ok {
		return domain.ErrNotFound
	}
	delete(m.notes, id)
	return nil
}

// MockTodoRepository is a mock implementation of TodoRepository
type MockTodoRepository struct {
	todos map[uuid.UUID]*domain.Todo
	err   error
}

func NewMockTodoRepository() *MockTodoRepository {
	return &MockTodoRepository{
		todos: make(map[uuid.UUID]*domain.Todo),
	}
}

func (m *MockTodoRepository) Create(ctx context.Context, todo *domain.Todo) error {
	if m.err != nil {
		return m.err
	}
	if todo.ID == uuid.Nil {
		todo.ID = uuid.New()
	}
	m.todos[todo.ID] = todo
	return nil
}

func (m *MockTodoRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Todo, error) {
	if m.err != nil {
		return nil, m.err
	}
	todo, ok := m.todos[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return todo, nil
}

func (m *MockTodoRepository) List(ctx context.Context, userID uuid.UUID, includeCompleted bool) ([]domain.Todo, error) {
	if m.err != nil {
		return nil, m.err
	}
	var result []domain.Todo
	for _, todo := range m.todos {
		if todo.UserID != userID {
			continue
		}
		if !includeCompleted && todo.Completed {
			continue
		}
		result = append(result, *todo)
	}
	return result, nil
}

func (m *MockTodoRepository) Update(ctx context.Context, todo *domain.Todo) error {
	if m.err != nil {
		return m.err
	}
	m.todos[todo.ID] = todo
	return nil
}

func (m *MockTodoRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if m.err != nil {
		return m.err
	}
	if _, ok := m.todos[id]; !ok {
		return domain.ErrNotFound
	}
	delete(m.todos, id)
	return nil
}

// Helper functions
func strPtr(s string) *string {
	return &s
}

func intPtr(i int) *int {
	return &i
}

package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/mainakmishra/equinox/internal/domain"
	"github.com/mainakmishra/equinox/internal/repository"
)

type TodoService interface {
	Create(ctx context.Context, userID uuid.UUID, req *domain.CreateTodoRequest) (*domain.Todo, error)
	List(ctx context.Context, userID uuid.UUID, includeCompleted bool) ([]domain.Todo, error)
	Update(ctx context.Context, userID, todoID uuid.UUID, req *domain.UpdateTodoRequest) (*domain.Todo, error)
	Delete(ctx context.Context, userID, todoID uuid.UUID) error
}

type todoService struct {
	repo     repository.TodoRepository
	userRepo repository.UserRepository
}

func NewTodoService(repo repository.TodoRepository, userRepo repository.UserRepository) TodoService {
	return &todoService{
		repo:     repo,
		userRepo: userRepo,
	}
}

func (s *todoService) Create(ctx context.Context, userID uuid.UUID, req *domain.CreateTodoRequest) (*domain.Todo, error) {
	exists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrNotFound
	}

	todo := &domain.Todo{
		ID:     uuid.New(),
		UserID: userID,
		Text:   req.Text,
	}

	if req.DueDate != nil && *req.DueDate != "" {
		due, err := time.Parse("2006-01-02", *req.DueDate)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		todo.DueDate = &due
	}

	if err := s.repo.Create(ctx, todo); err != nil {
		return nil, err
	}

	return todo, nil
}

func (s *todoService) List(ctx context.Context, userID uuid.UUID, includeCompleted bool) ([]domain.Todo, error) {
	exists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrNotFound
	}

	return s.repo.List(ctx, userID, includeCompleted)
}

func (s *todoService) Update(ctx context.Context, userID, todoID uuid.UUID, req *domain.UpdateTodoRequest) (*domain.Todo, error) {
	todo, err := s.repo.GetByID(ctx, todoID)
	if err != nil {
		return nil, err
	}
	if todo.UserID != userID {
		return nil, domain.ErrNotFound
	}

	if req.Text != nil {
		todo.Text = *req.Text
	}
	if req.Completed != nil {
		todo.Completed = *req.Completed
	}

	if err := s.repo.Update(ctx, todo); err != nil {
		return nil, err
	}

	return todo, nil
}

func (s *todoService) Delete(ctx context.Context, userID, todoID uuid.UUID) error {
	todo, err := s.repo.GetByID(ctx, todoID)
	if err != nil {
		return err
	}
	if todo.UserID != userID {
		return domain.ErrNotFound
	}
	return s.repo.Delete(ctx, todoID)
}

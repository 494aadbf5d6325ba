package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/mainakmishra/equinox/internal/domain"
	"github.com/mainakmishra/equinox/internal/repository"
	"github.com/mainakmishra/equinox/pkg/pagination"
)

type NoteService interface {
	Create(ctx context.Context, userID uuid.UUID, req *domain.CreateNoteRequest, source string) (*domain.Note, error)
	Get(ctx context.Context, userID, noteID uuid.UUID) (*domain.Note, error)
	List(ctx context.Context, userID uuid.UUID, filter domain.NoteFilter) (*domain.NoteListResponse, error)
	Update(ctx context.Context, userID, noteID uuid.UUID, req *domain.UpdateNoteRequest) (*domain.Note, error)
	Delete(ctx context.Context, userID, noteID uuid.UUID) error
}

type noteService struct {
	repo     repository.NoteRepository
	userRepo repository.UserRepository
}

func NewNoteService(repo repository.NoteRepository, userRepo repository.UserRepository) NoteService {
	return &noteService{
		repo:     repo,
		userRepo: userRepo,
	}
}

func (s *noteService) Create(ctx context.Context, userID uuid.UUID, req *domain.CreateNoteRequest, source string) (*domain.Note, error) {
	exists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrNotFound
	}

	if source == "" {
		source = domain.NoteSourceUser
	}

	note := &domain.Note{
		ID:      uuid.New(),
		UserID:  userID,
		Title:   req.Title,
		Content: req.Content,
		Source:  source,
	}

	if err := s.repo.Create(ctx, note); err != nil {
		return nil, err
	}

	return note, nil
}

func (s *noteService) Get(ctx context.Context, userID, noteID uuid.UUID) (*domain.Note, error) {
	note, err := s.repo.GetByID(ctx, noteID)
	if err != nil {
		return nil, err
	}
	if note.UserID != userID {
		return nil, domain.ErrNotFound
	}
	return note, nil
}

func (s *noteService) List(ctx context.Context, userID uuid.UUID, filter domain.NoteFilter) (*domain.NoteListResponse, error) {
	exists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrNotFound
	}

	notes, err := s.repo.List(ctx, userID, filter)
	if err != nil {
		return nil, err
	}

	limit := pagination.NormalizeLimit(filter.Limit)
	hasMore := len(notes) > limit
	if hasMore {
		notes = notes[:limit]
	}

	response := &domain.NoteListResponse{
		Data: make([]domain.NoteResponse, len(notes)),
		Pagination: domain.PaginationResponse{
			HasMore: hasMore,
		},
	}
	for i, note := range notes {
		response.Data[i] = note.ToResponse()
	}

	if hasMore && len(notes) > 0 {
		last := notes[len(notes)-1]
		cursor := &pagination.Cursor{
			ID:        last.ID,
			CreatedAt: last.CreatedAt,
		}
		response.Pagination.NextCursor = cursor.Encode()
	}

	return response, nil
}

func (s *noteService) Update(ctx context.Context, userID, noteID uuid.UUID, req *domain.UpdateNoteRequest) (*domain.Note, error) {
	note, err := s.Get(ctx, userID, noteID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		note.Title = *req.Title
	}
	if req.Content != nil {
		note.Content = *req.Content
	}

	if err := s.repo.Update(ctx, note); err != nil {
		return nil, err
	}

	return note, nil
}

func (s *noteService) Delete(ctx context.Context, userID, noteID uuid.UUID) error {
	if _, err := s.Get(ctx, userID, noteID); err != nil {
		return err
	}
	return s.repo.Delete(ctx, noteID)
}

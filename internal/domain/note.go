package domain

import (
	"time"

	"github.com/google/uuid"
)

// Note sources.
const (
	NoteSourceUser  = "user"
	NoteSourceAgent = "ai_agent"
)

type Note struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID  uuid.UUID `gorm:"type:uuid;not null;index:idx_notes_user_created" json:"user_id"`
	Title   string    `gorm:"type:text;not null;default:''" json:"title"`
	Content string    `gorm:"type:text;not null;default:''" json:"content"`
	Source  string    `gorm:"type:text;not null;default:'user'" json:"source"`

	CreatedAt time.Time `gorm:"autoCreateTime;index:idx_notes_user_created,sort:desc" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Note) TableName() string {
	return "notes"
}

// CreateNoteRequest is the request body for creating a note.
type CreateNoteRequest struct {
	Title   string `json:"title" validate:"required,max=255"`
	Content string `json:"content" validate:"max=20000"`
}

// UpdateNoteRequest is the request body for patching a note.
type UpdateNoteRequest struct {
	Title   *string `json:"title,omitempty" validate:"omitempty,max=255"`
	Content *string `json:"content,omitempty" validate:"omitempty,max=20000"`
}

// NoteResponse is the response body for note endpoints.
type NoteResponse struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Source    string    `json:"source"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (n *Note) ToResponse() NoteResponse {
	return NoteResponse{
		ID:        n.ID,
		Title:     n.Title,
		Content:   n.Content,
		Source:    n.Source,
		CreatedAt: n.CreatedAt,
		UpdatedAt: n.UpdatedAt,
	}
}

// NoteListResponse is a cursor-paginated page of notes.
type NoteListResponse struct {
	Data       []NoteResponse     `json:"data"`
	Pagination PaginationResponse `json:"pagination"`
}

// PaginationResponse contains cursor pagination metadata.
type PaginationResponse struct {
	NextCursor string `json:"next_cursor,omitempty"`
	HasMore    bool   `json:"has_more"`
}

// NoteFilter contains filter parameters for listing notes.
type NoteFilter struct {
	Limit  int
	Cursor string
}

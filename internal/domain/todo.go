package domain

import (
	"time"

	"github.com/google/uuid"
)

type Todo struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID    uuid.UUID  `gorm:"type:uuid;not null;index" json:"user_id"`
	Text      string     `gorm:"type:text;not null" json:"text"`
	Completed bool       `gorm:"not null;default:false" json:"completed"`
	DueDate   *time.Time `gorm:"type:date" json:"due_date,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Todo) TableName() string {
	return "todos"
}

// CreateTodoRequest is the request body for creating a todo.
type CreateTodoRequest struct {
	Text    string  `json:"text" validate:"required,max=1000"`
	DueDate *string `json:"due_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
}

// UpdateTodoRequest is the request body for patching a todo.
type UpdateTodoRequest struct {
	Text      *string `json:"text,omitempty" validate:"omitempty,max=1000"`
	Completed *bool   `json:"completed,omitempty"`
}

// TodoResponse is the response body for todo endpoints.
type TodoResponse struct {
	ID        uuid.UUID `json:"id"`
	Text      string    `json:"text"`
	Completed bool      `json:"completed"`
	DueDate   *string   `json:"due_date,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func (t *Todo) ToResponse() TodoResponse {
	resp := TodoResponse{
		ID:        t.ID,
		Text:      t.Text,
		Completed: t.Completed,
		CreatedAt: t.CreatedAt,
	}
	if t.DueDate != nil {
		due := t.DueDate.Format("2006-01-02")
		resp.DueDate = &due
	}
	return resp
}

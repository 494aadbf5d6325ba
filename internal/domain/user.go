package domain

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Email     string    `gorm:"type:text;uniqueIndex;not null" json:"email"`
	Name      string    `gorm:"type:text;not null" json:"name"`
	AvatarURL string    `gorm:"type:text" json:"avatar_url,omitempty"`

	// Gamification counters, awarded by callers outside this service.
	WellnessXP    int `gorm:"not null;default:0" json:"wellness_xp"`
	WellnessLevel int `gorm:"not null;default:1" json:"wellness_level"`

	Timezone  string    `gorm:"type:varchar(64);not null;default:'UTC'" json:"timezone"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	Profile *UserProfile `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (User) TableName() string {
	return "users"
}

// UserProfile holds per-user preferences, including the learned optimal sleep
// target the analytics core divides by.
type UserProfile struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`

	OptimalSleepHours float64 `gorm:"type:decimal(3,1);not null;default:8.0" json:"optimal_sleep_hours"`

	FitnessLevel    string `gorm:"type:text;not null;default:'beginner'" json:"fitness_level"`
	FitnessGoal     string `gorm:"type:text;not null;default:'general_fitness'" json:"fitness_goal"`
	MotivationStyle string `gorm:"type:text;not null;default:'balanced'" json:"motivation_style"`

	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (UserProfile) TableName() string {
	return "user_profiles"
}

// CreateUserRequest is the request body for creating a user.
type CreateUserRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Name     string `json:"name" validate:"required,max=255"`
	Timezone string `json:"timezone" validate:"omitempty,timezone"`
}

// UpdateProfileRequest is the request body for updating profile preferences.
type UpdateProfileRequest struct {
	OptimalSleepHours *float64 `json:"optimal_sleep_hours,omitempty" validate:"omitempty,gt=0,lte=14"`
	FitnessLevel      *string  `json:"fitness_level,omitempty" validate:"omitempty,oneof=beginner intermediate advanced"`
	FitnessGoal       *string  `json:"fitness_goal,omitempty" validate:"omitempty,max=64"`
	MotivationStyle   *string  `json:"motivation_style,omitempty" validate:"omitempty,oneof=tough_love gentle balanced"`
}

// UserResponse is the response body for user endpoints.
type UserResponse struct {
	ID            uuid.UUID `json:"id"`
	Email         string    `json:"email"`
	Name          string    `json:"name"`
	AvatarURL     string    `json:"avatar_url,omitempty"`
	WellnessXP    int       `json:"wellness_xp"`
	WellnessLevel int       `json:"wellness_level"`
	Timezone      string    `json:"timezone"`
	CreatedAt     time.Time `json:"created_at"`
}

func (u *User) ToResponse() UserResponse {
	return UserResponse{
		ID:            u.ID,
		Email:         u.Email,
		Name:          u.Name,
		AvatarURL:     u.AvatarURL,
		WellnessXP:    u.WellnessXP,
		WellnessLevel: u.WellnessLevel,
		Timezone:      u.Timezone,
		CreatedAt:     u.CreatedAt,
	}
}

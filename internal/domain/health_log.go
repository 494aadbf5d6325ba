package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/mainakmishra/equinox/internal/wellness"
)

// HealthLog is one day's health check-in. One row per user per calendar date;
// the unique index is what lets the analytics core assume duplicate-free
// history windows.
type HealthLog struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_health_logs_user_date;index:idx_health_logs_user_date" json:"user_id"`
	Date   time.Time `gorm:"type:date;not null;uniqueIndex:uq_health_logs_user_date;index:idx_health_logs_user_date,sort:desc" json:"date"`

	// Sleep
	SleepHours         float64 `gorm:"type:decimal(4,2);not null" json:"sleep_hours"`
	SleepQuality       int     `gorm:"type:smallint;not null" json:"sleep_quality"`
	SleepInterruptions int     `gorm:"type:smallint;not null;default:0" json:"sleep_interruptions"`

	// Energy and mental state, 1-10 ratings
	EnergyLevel int `gorm:"type:smallint;not null" json:"energy_level"`
	StressLevel int `gorm:"type:smallint;not null" json:"stress_level"`
	MoodScore   int `gorm:"type:smallint;not null" json:"mood_score"`

	// Activity
	ActivityMinutes int `gorm:"not null;default:0" json:"activity_minutes"`
	Steps           int `gorm:"not null;default:0" json:"steps"`

	// Nutrition
	WaterGlasses int `gorm:"type:smallint;not null;default:0" json:"water_glasses"`
	CaffeineCups int `gorm:"type:smallint;not null;default:0" json:"caffeine_cups"`

	// Derived by the analytics core at write time
	ReadinessScore *int     `gorm:"type:smallint" json:"readiness_score,omitempty"`
	SleepDebtHours *float64 `gorm:"type:decimal(5,2)" json:"sleep_debt_hours,omitempty"`

	Notes     string    `gorm:"type:text" json:"notes,omitempty"`
	Source    string    `gorm:"type:text;not null;default:'manual'" json:"source"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (HealthLog) TableName() string {
	return "health_logs"
}

// CreateHealthLogRequest is the request body for logging a day's health data.
// Posting twice for the same date updates the existing row.
type CreateHealthLogRequest struct {
	// Calendar date in YYYY-MM-DD, defaults to today when omitted
	Date *string `json:"date,omitempty" validate:"omitempty,datetime=2006-01-02"`

	SleepHours   float64 `json:"sleep_hours" validate:"min=0,max=24"`
	SleepQuality int     `json:"sleep_quality" validate:"required,min=1,max=10"`
	EnergyLevel  int     `json:"energy_level" validate:"required,min=1,max=10"`
	StressLevel  int     `json:"stress_level" validate:"required,min=1,max=10"`
	MoodScore    int     `json:"mood_score" validate:"required,min=1,max=10"`

	SleepInterruptions *int `json:"sleep_interruptions,omitempty" validate:"omitempty,min=0"`
	ActivityMinutes    *int `json:"activity_minutes,omitempty" validate:"omitempty,min=0"`
	Steps              *int `json:"steps,omitempty" validate:"omitempty,min=0"`
	WaterGlasses       *int `json:"water_glasses,omitempty" validate:"omitempty,min=0"`
	CaffeineCups       *int `json:"caffeine_cups,omitempty" validate:"omitempty,min=0"`

	Notes string `json:"notes,omitempty" validate:"omitempty,max=2000"`
}

// HealthLogResponse is the response body for health log endpoints.
type HealthLogResponse struct {
	ID     uuid.UUID `json:"id"`
	UserID uuid.UUID `json:"user_id"`
	Date   string    `json:"date"`

	SleepHours         float64 `json:"sleep_hours"`
	SleepQuality       int     `json:"sleep_quality"`
	SleepInterruptions int     `json:"sleep_interruptions"`

	EnergyLevel int `json:"energy_level"`
	StressLevel int `json:"stress_level"`
	MoodScore   int `json:"mood_score"`

	ActivityMinutes int `json:"activity_minutes"`
	Steps           int `json:"steps"`
	WaterGlasses    int `json:"water_glasses"`
	CaffeineCups    int `json:"caffeine_cups"`

	ReadinessScore *int     `json:"readiness_score,omitempty"`
	SleepDebtHours *float64 `json:"sleep_debt_hours,omitempty"`

	Notes     string    `json:"notes,omitempty"`
	Source    string    `json:"source"`
	CreatedAt time.Time `json:"created_at"`
}

func (h *HealthLog) ToResponse() HealthLogResponse {
	return HealthLogResponse{
		ID:                 h.ID,
		UserID:             h.UserID,
		Date:               h.Date.Format("2006-01-02"),
		SleepHours:         h.SleepHours,
		SleepQuality:       h.SleepQuality,
		SleepInterruptions: h.SleepInterruptions,
		EnergyLevel:        h.EnergyLevel,
		StressLevel:        h.StressLevel,
		MoodScore:          h.MoodScore,
		ActivityMinutes:    h.ActivityMinutes,
		Steps:              h.Steps,
		WaterGlasses:       h.WaterGlasses,
		CaffeineCups:       h.CaffeineCups,
		ReadinessScore:     h.ReadinessScore,
		SleepDebtHours:     h.SleepDebtHours,
		Notes:              h.Notes,
		Source:             h.Source,
		CreatedAt:          h.CreatedAt,
	}
}

// ReadinessResponse pairs the computed score with zone guidance.
type ReadinessResponse struct {
	Score       int                       `json:"score"`
	Zone        wellness.Zone             `json:"zone"`
	Factors     wellness.ReadinessFactors `json:"factors"`
	Summary     string                    `json:"summary"`
	Suggestions []string                  `json:"suggestions"`
}

// SleepDebtResponse is the accumulated debt plus tiered tips.
type SleepDebtResponse struct {
	wellness.SleepDebtResult
	Tips []string `json:"tips"`
}

// TrendsResponse is the trend table for a history window.
type TrendsResponse = wellness.TrendResult

// StreakResponse is the logging streak for a user.
type StreakResponse = wellness.StreakResult

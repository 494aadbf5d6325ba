package agent

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/mainakmishra/equinox/internal/domain"
	"github.com/mainakmishra/equinox/internal/service"
	"github.com/mainakmishra/equinox/internal/wellness"
)

// WellnessTools exposes the analytics core to the wellness agent.
func WellnessTools(health service.HealthService) []Tool {
	return []Tool{
		{
			Name:        "get_readiness",
			Description: "Get today's readiness score with its zone, per-factor breakdown, and suggestions. Requires a health log for today.",
			Run: func(ctx context.Context, userID uuid.UUID, _ json.RawMessage) (string, error) {
				resp, err := health.Readiness(ctx, userID)
				if err != nil {
					if err == domain.ErrNotFound {
						return "no health log for today yet; ask the user to log their day first", nil
					}
					return "", err
				}
				return marshalResult(resp)
			},
		},
		{
			Name:        "get_sleep_debt",
			Description: "Get accumulated sleep debt over the last two weeks with recovery tips.",
			Run: func(ctx context.Context, userID uuid.UUID, _ json.RawMessage) (string, error) {
				resp, err := health.SleepDebt(ctx, userID)
				if err != nil {
					return "", err
				}
				return marshalResult(resp)
			},
		},
		{
			Name:        "get_trends",
			Description: "Analyze how readiness, sleep, energy, and stress have moved over recent days.",
			Parameters: objectSchema(map[string]any{
				"days": map[string]any{
					"type":        "integer",
					"description": "Window size in days, default 7",
				},
			}),
			Run: func(ctx context.Context, userID uuid.UUID, args json.RawMessage) (string, error) {
				var in struct {
					Days int `json:"days"`
				}
				_ = json.Unmarshal(args, &in)

				resp, err := health.Trends(ctx, userID, in.Days)
				if err != nil {
					return "", err
				}
				return marshalResult(resp)
			},
		},
		{
			Name:        "get_streak",
			Description: "Get the user's consecutive-day logging streak.",
			Run: func(ctx context.Context, userID uuid.UUID, _ json.RawMessage) (string, error) {
				resp, err := health.Streak(ctx, userID)
				if err != nil {
					return "", err
				}
				return marshalResult(resp)
			},
		},
		{
			Name:        "log_health",
			Description: "Record today's health check-in on the user's behalf. All ratings are 1-10.",
			Parameters: objectSchema(map[string]any{
				"sleep_hours":      map[string]any{"type": "number", "description": "Hours slept last night"},
				"sleep_quality":    map[string]any{"type": "integer"},
				"energy_level":     map[string]any{"type": "integer"},
				"stress_level":     map[string]any{"type": "integer"},
				"mood_score":       map[string]any{"type": "integer"},
				"activity_minutes": map[string]any{"type": "integer", "description": "Minutes of physical activity"},
			}, "sleep_hours", "sleep_quality", "energy_level", "stress_level", "mood_score"),
			Run: func(ctx context.Context, userID uuid.UUID, args json.RawMessage) (string, error) {
				var in struct {
					SleepHours      float64 `json:"sleep_hours"`
					SleepQuality    int     `json:"sleep_quality"`
					EnergyLevel     int     `json:"energy_level"`
					StressLevel     int     `json:"stress_level"`
					MoodScore       int     `json:"mood_score"`
					ActivityMinutes *int    `json:"activity_minutes"`
				}
				if err := json.Unmarshal(args, &in); err != nil {
					return "", domain.ErrInvalidInput
				}

				req := &domain.CreateHealthLogRequest{
					SleepHours:      in.SleepHours,
					SleepQuality:    in.SleepQuality,
					EnergyLevel:     in.EnergyLevel,
					StressLevel:     in.StressLevel,
					MoodScore:       in.MoodScore,
					ActivityMinutes: in.ActivityMinutes,
				}
				log, created, err := health.Log(ctx, userID, req)
				if err != nil {
					return "", err
				}

				result := map[string]any{
					"created":         created,
					"date":            log.Date.Format("2006-01-02"),
					"readiness_score": log.ReadinessScore,
				}
				return marshalResult(result)
			},
		},
		{
			Name:        "get_activity_suggestion",
			Description: "Suggest how to shape workouts, work, and mindset around today's readiness zone.",
			Run: func(ctx context.Context, userID uuid.UUID, _ json.RawMessage) (string, error) {
				resp, err := health.Readiness(ctx, userID)
				if err != nil {
					if err == domain.ErrNotFound {
						return "no health log for today yet; ask the user to log their day first", nil
					}
					return "", err
				}

				plan := wellness.ActivitySuggestion(resp.Zone)
				result := map[string]any{
					"zone":    resp.Zone,
					"score":   resp.Score,
					"workout": plan.Workout,
					"work":    plan.Work,
					"mindset": plan.Mindset,
				}
				return marshalResult(result)
			},
		},
	}
}

func marshalResult(v any) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("marshal tool result: %w", err)
	}
	return string(data), nil
}

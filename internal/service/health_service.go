package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/mainakmishra/equinox/internal/domain"
	"github.com/mainakmishra/equinox/internal/repository"
	"github.com/mainakmishra/equinox/internal/wellness"
)

const (
	// DefaultHistoryDays is the default window for history queries.
	DefaultHistoryDays = 30

	// MaxHistoryDays caps how far back history queries reach.
	MaxHistoryDays = 365
)

// HealthService owns daily check-ins and the derived wellness analytics.
type HealthService interface {
	// Log records a day's health data. Logging the same date twice updates
	// the existing entry. Returns (log, created, error).
	Log(ctx context.Context, userID uuid.UUID, req *domain.CreateHealthLogRequest) (*domain.HealthLog, bool, error)
	// Today returns the log for the current UTC date.
	Today(ctx context.Context, userID uuid.UUID) (*domain.HealthLog, error)
	// History returns up to days of logs, newest first.
	History(ctx context.Context, userID uuid.UUID, days int) ([]domain.HealthLog, error)
	// Readiness computes the readiness breakdown from today's log.
	Readiness(ctx context.Context, userID uuid.UUID) (*domain.ReadinessResponse, error)
	// SleepDebt computes accumulated sleep debt over the recent window.
	SleepDebt(ctx context.Context, userID uuid.UUID) (*domain.SleepDebtResponse, error)
	// Trends analyzes metric direction over the given window.
	Trends(ctx context.Context, userID uuid.UUID, days int) (*domain.TrendsResponse, error)
	// Streak reports the consecutive-day logging streak.
	Streak(ctx context.Context, userID uuid.UUID) (*domain.StreakResponse, error)
}

type healthService struct {
	repo        repository.HealthLogRepository
	userRepo    repository.UserRepository
	profileRepo repository.ProfileRepository
	now         func() time.Time
}

func NewHealthService(repo repository.HealthLogRepository, userRepo repository.UserRepository, profileRepo repository.ProfileRepository) HealthService {
	return &healthService{
		repo:        repo,
		userRepo:    userRepo,
		profileRepo: profileRepo,
		now:         time.Now,
	}
}

func (s *healthService) Log(ctx context.Context, userID uuid.UUID, req *domain.CreateHealthLogRequest) (*domain.HealthLog, bool, error) {
	tracer := otel.Tracer("equinox-api/wellness")
	ctx, span := tracer.Start(ctx, "HealthService.Log",
		trace.WithAttributes(attribute.String("user.id", userID.String())),
	)
	defer span.End()

	exists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		return nil, false, err
	}
	if !exists {
		return nil, false, domain.ErrNotFound
	}

	date, err := s.resolveDate(req.Date)
	if err != nil {
		return nil, false, domain.ErrInvalidInput
	}
	span.SetAttributes(attribute.String("log.date", date.Format("2006-01-02")))

	// Attach input payload for Langfuse
	if inputJSON, err := json.Marshal(req); err == nil {
		span.SetAttributes(attribute.String("langfuse.observation.input", string(inputJSON)))
	}

	log, created, err := s.upsertLog(ctx, userID, date, req)
	if err != nil {
		return nil, false, err
	}

	optimal := s.optimalSleep(ctx, userID)

	// Streak as of the logged date, counting this entry
	dates, err := s.repo.ListDates(ctx, userID)
	if err != nil {
		return nil, false, err
	}
	if !containsDay(dates, date) {
		dates = append(dates, date)
	}
	streak := wellness.StreakStatus(dates, date)

	readiness, err := wellness.CalculateReadiness(wellness.ReadinessInput{
		SleepHours:      log.SleepHours,
		SleepQuality:    log.SleepQuality,
		EnergyLevel:     log.EnergyLevel,
		StressLevel:     log.StressLevel,
		ActivityMinutes: log.ActivityMinutes,
		OptimalSleep:    optimal,
		StreakDays:      streak.Streak,
	})
	if err != nil {
		return nil, false, err
	}
	log.ReadinessScore = &readiness.Score

	history, err := s.sleepHistory(ctx, userID, log)
	if err != nil {
		return nil, false, err
	}
	debt, err := wellness.CalculateSleepDebt(history, optimal, wellness.DefaultLookbackDays)
	if err != nil {
		return nil, false, err
	}
	log.SleepDebtHours = &debt.DebtHours

	if err := s.repo.Save(ctx, log); err != nil {
		return nil, false, err
	}

	outputPayload := map[string]any{
		"readiness_score":  readiness.Score,
		"zone":             readiness.Zone,
		"sleep_debt_hours": debt.DebtHours,
		"streak":           streak.Streak,
		"created":          created,
	}
	if outputJSON, err := json.Marshal(outputPayload); err == nil {
		span.SetAttributes(attribute.String("langfuse.observation.output", string(outputJSON)))
	}

	return log, created, nil
}

func (s *healthService) Today(ctx context.Context, userID uuid.UUID) (*domain.HealthLog, error) {
	exists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrNotFound
	}

	return s.repo.GetByUserAndDate(ctx, userID, dateOnly(s.now().UTC()))
}

func (s *healthService) History(ctx context.Context, userID uuid.UUID, days int) ([]domain.HealthLog, error) {
	exists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrNotFound
	}

	if days <= 0 {
		days = DefaultHistoryDays
	}
	if days > MaxHistoryDays {
		days = MaxHistoryDays
	}

	return s.repo.ListRecent(ctx, userID, days)
}

func (s *healthService) Readiness(ctx context.Context, userID uuid.UUID) (*domain.ReadinessResponse, error) {
	tracer := otel.Tracer("equinox-api/wellness")
	ctx, span := tracer.Start(ctx, "HealthService.Readiness",
		trace.WithAttributes(attribute.String("user.id", userID.String())),
	)
	defer span.End()

	log, err := s.Today(ctx, userID)
	if err != nil {
		return nil, err
	}

	dates, err := s.repo.ListDates(ctx, userID)
	if err != nil {
		return nil, err
	}
	streak := wellness.StreakStatus(dates, log.Date)

	result, err := wellness.CalculateReadiness(wellness.ReadinessInput{
		SleepHours:      log.SleepHours,
		SleepQuality:    log.SleepQuality,
		EnergyLevel:     log.EnergyLevel,
		StressLevel:     log.StressLevel,
		ActivityMinutes: log.ActivityMinutes,
		OptimalSleep:    s.optimalSleep(ctx, userID),
		StreakDays:      streak.Streak,
	})
	if err != nil {
		return nil, err
	}

	guidance := wellness.ZoneRecommendations(result.Zone)
	resp := &domain.ReadinessResponse{
		Score:       result.Score,
		Zone:        result.Zone,
		Factors:     result.Factors,
		Summary:     guidance.Summary,
		Suggestions: guidance.Suggestions,
	}

	if outputJSON, err := json.Marshal(resp); err == nil {
		span.SetAttributes(attribute.String("langfuse.observation.output", string(outputJSON)))
	}

	return resp, nil
}

func (s *healthService) SleepDebt(ctx context.Context, userID uuid.UUID) (*domain.SleepDebtResponse, error) {
	exists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrNotFound
	}

	logs, err := s.repo.ListRecent(ctx, userID, wellness.DefaultLookbackDays)
	if err != nil {
		return nil, err
	}

	history := make([]wellness.SleepDay, len(logs))
	for i, log := range logs {
		history[i] = wellness.SleepDay{Date: log.Date, SleepHours: log.SleepHours}
	}

	result, err := wellness.CalculateSleepDebt(history, s.optimalSleep(ctx, userID), wellness.DefaultLookbackDays)
	if err != nil {
		return nil, err
	}

	return &domain.SleepDebtResponse{
		SleepDebtResult: result,
		Tips:            wellness.SleepRecommendations(result.DebtHours),
	}, nil
}

func (s *healthService) Trends(ctx context.Context, userID uuid.UUID, days int) (*domain.TrendsResponse, error) {
	exists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrNotFound
	}

	if days <= 0 {
		days = wellness.DefaultTrendDays
	}

	logs, err := s.repo.ListRecent(ctx, userID, days)
	if err != nil {
		return nil, err
	}

	entries := make([]wellness.TrendLogEntry, len(logs))
	for i, log := range logs {
		entry := wellness.TrendLogEntry{
			Date:        log.Date,
			SleepHours:  floatPtr(log.SleepHours),
			EnergyLevel: floatPtr(float64(log.EnergyLevel)),
			StressLevel: floatPtr(float64(log.StressLevel)),
		}
		if log.ReadinessScore != nil {
			entry.ReadinessScore = floatPtr(float64(*log.ReadinessScore))
		}
		entries[i] = entry
	}

	result := wellness.AnalyzeTrends(entries, days)
	return &result, nil
}

func (s *healthService) Streak(ctx context.Context, userID uuid.UUID) (*domain.StreakResponse, error) {
	exists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrNotFound
	}

	dates, err := s.repo.ListDates(ctx, userID)
	if err != nil {
		return nil, err
	}

	result := wellness.StreakStatus(dates, dateOnly(s.now().UTC()))
	return &result, nil
}

// upsertLog loads or builds the log row for the date and applies the request.
func (s *healthService) upsertLog(ctx context.Context, userID uuid.UUID, date time.Time, req *domain.CreateHealthLogRequest) (*domain.HealthLog, bool, error) {
	log, err := s.repo.GetByUserAndDate(ctx, userID, date)
	created := false
	if err != nil {
		if err != domain.ErrNotFound {
			return nil, false, err
		}
		log = &domain.HealthLog{UserID: userID, Date: date, Source: "manual"}
		created = true
	}

	log.SleepHours = req.SleepHours
	log.SleepQuality = req.SleepQuality
	log.EnergyLevel = req.EnergyLevel
	log.StressLevel = req.StressLevel
	log.MoodScore = req.MoodScore

	if req.SleepInterruptions != nil {
		log.SleepInterruptions = *req.SleepInterruptions
	}
	if req.ActivityMinutes != nil {
		log.ActivityMinutes = *req.ActivityMinutes
	}
	if req.Steps != nil {
		log.Steps = *req.Steps
	}
	if req.WaterGlasses != nil {
		log.WaterGlasses = *req.WaterGlasses
	}
	if req.CaffeineCups != nil {
		log.CaffeineCups = *req.CaffeineCups
	}
	if req.Notes != "" {
		log.Notes = req.Notes
	}

	return log, created, nil
}

// sleepHistory builds the sleep debt input from recent logs, substituting the
// in-flight entry for its date so an update is reflected before it is saved.
func (s *healthService) sleepHistory(ctx context.Context, userID uuid.UUID, current *domain.HealthLog) ([]wellness.SleepDay, error) {
	logs, err := s.repo.ListRecent(ctx, userID, wellness.DefaultLookbackDays)
	if err != nil {
		return nil, err
	}

	history := make([]wellness.SleepDay, 0, len(logs)+1)
	seen := false
	for _, log := range logs {
		if sameCalendarDay(log.Date, current.Date) {
			history = append(history, wellness.SleepDay{Date: current.Date, SleepHours: current.SleepHours})
			seen = true
			continue
		}
		history = append(history, wellness.SleepDay{Date: log.Date, SleepHours: log.SleepHours})
	}
	if !seen {
		history = append(history, wellness.SleepDay{Date: current.Date, SleepHours: current.SleepHours})
	}

	return history, nil
}

func (s *healthService) optimalSleep(ctx context.Context, userID uuid.UUID) float64 {
	profile, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil || profile.OptimalSleepHours <= 0 {
		return wellness.DefaultOptimalSleep
	}
	return profile.OptimalSleepHours
}

func (s *healthService) resolveDate(raw *string) (time.Time, error) {
	if raw == nil || *raw == "" {
		return dateOnly(s.now().UTC()), nil
	}
	return time.Parse("2006-01-02", *raw)
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func sameCalendarDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

func containsDay(dates []time.Time, day time.Time) bool {
	for _, d := range dates {
		if sameCalendarDay(d, day) {
			return true
		}
	}
	return false
}

func floatPtr(v float64) *float64 {
	return &v
}

package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/mainakmishra/equinox/internal/domain"
	"github.com/mainakmishra/equinox/internal/google"
	"github.com/mainakmishra/equinox/internal/llm"
	"github.com/mainakmishra/equinox/internal/repository"
)

const briefingSystemPrompt = `You write a short morning briefing for a wellness assistant user.

You receive JSON with their sleep score, unread email count, and tasks due today. Write 2-3 encouraging sentences summarizing the day ahead. No medical advice. No markdown.`

// BriefingService assembles the morning briefing from sleep data and the
// user's Google account.
type BriefingService interface {
	// Generate builds the briefing for one user. sendEmail controls whether
	// the summary is also mailed to the user's address.
	Generate(ctx context.Context, userID uuid.UUID, sendEmail bool) (*domain.BriefingResponse, error)
	// RunScheduled generates briefings for every Google-linked user.
	RunScheduled(ctx context.Context)
}

type briefingService struct {
	healthRepo repository.HealthLogRepository
	userRepo   repository.UserRepository
	googleSvc  *google.Service
	client     *llm.Client
	now        func() time.Time
}

func NewBriefingService(healthRepo repository.HealthLogRepository, userRepo repository.UserRepository, googleSvc *google.Service, client *llm.Client) BriefingService {
	return &briefingService{
		healthRepo: healthRepo,
		userRepo:   userRepo,
		googleSvc:  googleSvc,
		client:     client,
		now:        time.Now,
	}
}

func (s *briefingService) Generate(ctx context.Context, userID uuid.UUID, sendEmail bool) (*domain.BriefingResponse, error) {
	tracer := otel.Tracer("equinox-api/briefing")
	ctx, span := tracer.Start(ctx, "BriefingService.Generate",
		trace.WithAttributes(attribute.String("user.id", userID.String())),
	)
	defer span.End()

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	briefing := &domain.BriefingResponse{
		Greeting: greeting(s.now().UTC(), user.Name),
	}

	// Sleep score from last night's log, 0 when nothing is logged yet
	logs, err := s.healthRepo.ListRecent(ctx, userID, 1)
	if err != nil {
		return nil, err
	}
	if len(logs) > 0 {
		briefing.SleepScore = sleepScore(logs[0].SleepHours)
	}

	// Google-backed sections degrade to zero counts when not linked
	if s.googleSvc.Linked(ctx, userID) {
		if unread, err := s.googleSvc.UnreadCount(ctx, userID); err == nil {
			briefing.CriticalEmails = unread
		}

		endOfDay := endOfDayUTC(s.now())
		if tasks, err := s.googleSvc.ListTasksDueBy(ctx, userID, endOfDay); err == nil {
			briefing.TasksToday = len(tasks)
			briefing.ScheduleUpdated = true
		}
	}

	briefing.Summary = s.summarize(ctx, briefing)

	if sendEmail && s.googleSvc.Linked(ctx, userID) {
		subject := "Your morning briefing"
		if err := s.googleSvc.SendEmail(ctx, userID, user.Email, subject, briefing.Summary); err == nil {
			briefing.EmailSent = true
		} else {
			log.Printf("[briefing] send email for %s failed: %v", userID, err)
		}
	}

	if outputJSON, err := json.Marshal(briefing); err == nil {
		span.SetAttributes(attribute.String("langfuse.observation.output", string(outputJSON)))
	}

	return briefing, nil
}

func (s *briefingService) RunScheduled(ctx context.Context) {
	userIDs, err := s.googleSvc.LinkedUserIDs(ctx)
	if err != nil {
		log.Printf("[briefing] listing linked users failed: %v", err)
		return
	}

	for _, userID := range userIDs {
		if _, err := s.Generate(ctx, userID, true); err != nil {
			log.Printf("[briefing] scheduled briefing for %s failed: %v", userID, err)
		}
	}
}

// summarize asks the LLM for a narrative summary, falling back to a plain
// template when the client is not configured.
func (s *briefingService) summarize(ctx context.Context, b *domain.BriefingResponse) string {
	if s.client != nil {
		payload, err := json.Marshal(map[string]any{
			"sleep_score":   b.SleepScore,
			"unread_emails": b.CriticalEmails,
			"tasks_today":   b.TasksToday,
		})
		if err == nil {
			if summary, err := s.client.Complete(ctx, briefingSystemPrompt, string(payload)); err == nil {
				return summary
			}
		}
	}

	return fmt.Sprintf("Sleep score %d/100. %d unread emails, %d tasks due today.",
		b.SleepScore, b.CriticalEmails, b.TasksToday)
}

// sleepScore maps hours slept to a 0-100 score, saturating at 100.
func sleepScore(sleepHours float64) int {
	score := int(sleepHours * 12)
	if score > 100 {
		return 100
	}
	if score < 0 {
		return 0
	}
	return score
}

func greeting(now time.Time, name string) string {
	var daypart string
	switch {
	case now.Hour() < 12:
		daypart = "Good morning"
	case now.Hour() < 18:
		daypart = "Good afternoon"
	default:
		daypart = "Good evening"
	}
	if name == "" {
		return daypart + "!"
	}
	return fmt.Sprintf("%s, %s!", daypart, name)
}

func endOfDayUTC(now time.Time) time.Time {
	t := now.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 0, time.UTC)
}

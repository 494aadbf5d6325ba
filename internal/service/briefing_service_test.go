package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/mainakmishra/equinox/internal/domain"
)

func newTestBriefingService() (*briefingService, *MockHealthLogRepository, *MockUserRepository) {
	healthRepo := NewMockHealthLogRepository()
	userRepo := NewMockUserRepository()
	// nil google service and nil LLM client exercise the degraded paths
	svc := &briefingService{
		healthRepo: healthRepo,
		userRepo:   userRepo,
		now:        func() time.Time { return testNow },
	}
	return svc, healthRepo, userRepo
}

func TestBriefingGenerate(t *testing.T) {
	svc, healthRepo, userRepo := newTestBriefingService()

	user := &domain.User{ID: uuid.New(), Email: "amara@example.com", Name: "Amara"}
	if err := userRepo.Create(context.Background(), user); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if err := healthRepo.Save(context.Background(), &domain.HealthLog{
		ID:         uuid.New(),
		UserID:     user.ID,
		Date:       testNow.AddDate(0, 0, -1),
		SleepHours: 7.5,
	}); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	briefing, err := svc.Generate(context.Background(), user.ID, false)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	if briefing.SleepScore != 90 {
		t.Errorf("Generate() sleep_score = %d, want 90 (7.5h * 12)", briefing.SleepScore)
	}
	if !strings.HasPrefix(briefing.Greeting, "Good morning") {
		t.Errorf("Generate() greeting = %q, want morning greeting at %s", briefing.Greeting, testNow)
	}
	if !strings.Contains(briefing.Greeting, "Amara") {
		t.Errorf("Generate() greeting = %q, want user's name", briefing.Greeting)
	}
	// Without an LLM client the summary comes from the template
	if !strings.Contains(briefing.Summary, "Sleep score 90/100") {
		t.Errorf("Generate() summary = %q, want template fallback", briefing.Summary)
	}
	if briefing.EmailSent {
		t.Error("Generate() email_sent = true without a linked Google account")
	}
}

func TestBriefingSleepScoreSaturates(t *testing.T) {
	svc, healthRepo, userRepo := newTestBriefingService()

	user := &domain.User{ID: uuid.New(), Email: "amara@example.com", Name: "Amara"}
	if err := userRepo.Create(context.Background(), user); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if err := healthRepo.Save(context.Background(), &domain.HealthLog{
		ID:         uuid.New(),
		UserID:     user.ID,
		Date:       testNow,
		SleepHours: 10,
	}); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	briefing, err := svc.Generate(context.Background(), user.ID, false)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if briefing.SleepScore != 100 {
		t.Errorf("Generate() sleep_score = %d, want 100", briefing.SleepScore)
	}
}

func TestBriefingNoLogsYet(t *testing.T) {
	svc, _, userRepo := newTestBriefingService()

	user := &domain.User{ID: uuid.New(), Email: "amara@example.com", Name: "Amara"}
	if err := userRepo.Create(context.Background(), user); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	briefing, err := svc.Generate(context.Background(), user.ID, false)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if briefing.SleepScore != 0 {
		t.Errorf("Generate() sleep_score = %d, want 0 with no logs", briefing.SleepScore)
	}
}

func TestBriefingUnknownUser(t *testing.T) {
	svc, _, _ := newTestBriefingService()

	if _, err := svc.Generate(context.Background(), uuid.New(), false); err != domain.ErrNotFound {
		t.Errorf("Generate() error = %v, want %v", err, domain.ErrNotFound)
	}
}

func TestSleepScore(t *testing.T) {
	tests := []struct {
		name  string
		hours float64
		want  int
	}{
		{name: "typical night", hours: 7.5, want: 90},
		{name: "saturates at 100", hours: 9, want: 100},
		{name: "no sleep", hours: 0, want: 0},
		{name: "short night", hours: 4, want: 48},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := sleepScore(tt.hours); got != tt.want {
				t.Errorf("sleepScore(%v) = %d, want %d", tt.hours, got, tt.want)
			}
		})
	}
}

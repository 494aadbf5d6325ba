package seed

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mainakmishra/equinox/internal/domain"
	"github.com/mainakmishra/equinox/internal/repository"
	"github.com/mainakmishra/equinox/internal/service"
	"github.com/mainakmishra/equinox/internal/wellness"
)

const seededDays = 14

// Run seeds the database with sample users, profiles, and two weeks of health
// logs. Safe to call multiple times.
func Run(db *gorm.DB) error {
	users := []domain.User{
		{ID: uuid.MustParse("11111111-1111-1111-1111-111111111111"), Email: "amara@example.com", Name: "Amara", Timezone: "Europe/Amsterdam"},
		{ID: uuid.MustParse("22222222-2222-2222-2222-222222222222"), Email: "jordan@example.com", Name: "Jordan", Timezone: "America/New_York"},
		{ID: uuid.MustParse("33333333-3333-3333-3333-333333333333"), Email: "yuki@example.com", Name: "Yuki", Timezone: "Asia/Tokyo"},
	}

	for _, user := range users {
		if err := db.Where("id = ?", user.ID).FirstOrCreate(&user).Error; err != nil {
			return fmt.Errorf("failed to create user %s: %w", user.ID, err)
		}
		profile := domain.UserProfile{
			UserID:            user.ID,
			OptimalSleepHours: wellness.DefaultOptimalSleep,
			FitnessLevel:      "beginner",
			FitnessGoal:       "general_fitness",
			MotivationStyle:   "balanced",
		}
		if err := db.Where("user_id = ?", user.ID).FirstOrCreate(&profile).Error; err != nil {
			return fmt.Errorf("failed to create profile for %s: %w", user.ID, err)
		}
	}

	// Log through the service so readiness and sleep debt get computed the
	// same way the API computes them.
	healthSvc := service.NewHealthService(
		repository.NewHealthLogRepository(db),
		repository.NewUserRepository(db),
		repository.NewProfileRepository(db),
	)

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	for _, user := range users {
		if err := seedHealthLogsForUser(healthSvc, user, rng); err != nil {
			return err
		}
	}

	log.Println("Seed completed")
	return nil
}

func seedHealthLogsForUser(healthSvc service.HealthService, user domain.User, rng *rand.Rand) error {
	ctx := context.Background()
	now := time.Now().UTC()

	for i := seededDays - 1; i >= 0; i-- {
		date := now.AddDate(0, 0, -i).Format("2006-01-02")
		activity := 15 + rng.Intn(60)
		req := domain.CreateHealthLogRequest{
			Date:            &date,
			SleepHours:      6 + rng.Float64()*3,
			SleepQuality:    5 + rng.Intn(6),
			EnergyLevel:     4 + rng.Intn(7),
			StressLevel:     1 + rng.Intn(7),
			MoodScore:       4 + rng.Intn(7),
			ActivityMinutes: &activity,
		}
		if _, _, err := healthSvc.Log(ctx, user.ID, &req); err != nil {
			return fmt.Errorf("failed to log %s for user %s: %w", date, user.ID, err)
		}
	}
	return nil
}

package wellness

import (
	"testing"
	"time"
)

var streakToday = time.Date(2024, 3, 20, 15, 30, 0, 0, time.UTC)

func daysAgo(n int) time.Time {
	return streakToday.AddDate(0, 0, -n)
}

func TestStreakStatus_Empty(t *testing.T) {
	result := StreakStatus(nil, streakToday)
	if result.Streak != 0 {
		t.Errorf("streak = %d, want 0", result.Streak)
	}
	if result.Message != "start logging to build a streak" {
		t.Errorf("message = %q", result.Message)
	}
}

func TestStreakStatus_OnlyZeroDates(t *testing.T) {
	result := StreakStatus([]time.Time{{}, {}}, streakToday)
	if result.Streak != 0 {
		t.Errorf("streak = %d, want 0", result.Streak)
	}
	if result.Message != "no logs found" {
		t.Errorf("message = %q", result.Message)
	}
}

func TestStreakStatus_MissingTodayCapsAtZero(t *testing.T) {
	// Yesterday and the day before are logged, but without today the walk
	// never starts.
	result := StreakStatus([]time.Time{daysAgo(1), daysAgo(2)}, streakToday)
	if result.Streak != 0 {
		t.Errorf("streak = %d, want 0 when today is unlogged", result.Streak)
	}
	if result.Message != "no current streak" {
		t.Errorf("message = %q", result.Message)
	}
}

func TestStreakStatus_Counting(t *testing.T) {
	tests := []struct {
		name        string
		dates       []time.Time
		wantStreak  int
		wantMessage string
	}{
		{
			name:        "today only",
			dates:       []time.Time{daysAgo(0)},
			wantStreak:  1,
			wantMessage: "logged today, building momentum",
		},
		{
			// Two-day streaks fall through to the default tier; the message
			// ladder jumps from 1 straight to 3.
			name:        "two days",
			dates:       []time.Time{daysAgo(0), daysAgo(1)},
			wantStreak:  2,
			wantMessage: "no current streak",
		},
		{
			name:        "three days",
			dates:       []time.Time{daysAgo(0), daysAgo(1), daysAgo(2)},
			wantStreak:  3,
			wantMessage: "3 days in a row, keep it up",
		},
		{
			name:        "week",
			dates:       []time.Time{daysAgo(0), daysAgo(1), daysAgo(2), daysAgo(3), daysAgo(4), daysAgo(5), daysAgo(6)},
			wantStreak:  7,
			wantMessage: "great 7-day streak going",
		},
		{
			name:        "gap stops the walk",
			dates:       []time.Time{daysAgo(0), daysAgo(1), daysAgo(3), daysAgo(4)},
			wantStreak:  2,
			wantMessage: "no current streak",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := StreakStatus(tt.dates, streakToday)
			if result.Streak != tt.wantStreak {
				t.Errorf("streak = %d, want %d", result.Streak, tt.wantStreak)
			}
			if result.Message != tt.wantMessage {
				t.Errorf("message = %q, want %q", result.Message, tt.wantMessage)
			}
		})
	}
}

func TestStreakStatus_MonthStreak(t *testing.T) {
	dates := make([]time.Time, 30)
	for i := range dates {
		dates[i] = daysAgo(i)
	}

	result := StreakStatus(dates, streakToday)
	if result.Streak != 30 {
		t.Errorf("streak = %d, want 30", result.Streak)
	}
	if result.Message != "amazing 30-day streak!" {
		t.Errorf("message = %q", result.Message)
	}
}

func TestStreakStatus_UnsortedInputNotMutated(t *testing.T) {
	dates := []time.Time{daysAgo(2), daysAgo(0), daysAgo(1)}

	result := StreakStatus(dates, streakToday)
	if result.Streak != 3 {
		t.Errorf("streak = %d, want 3 regardless of input order", result.Streak)
	}

	if !dates[0].Equal(daysAgo(2)) || !dates[1].Equal(daysAgo(0)) || !dates[2].Equal(daysAgo(1)) {
		t.Error("input slice was reordered")
	}
}

func TestStreakStatus_TimeOfDayIrrelevant(t *testing.T) {
	// Comparison is calendar-day, not instant.
	morning := time.Date(2024, 3, 20, 6, 0, 0, 0, time.UTC)
	result := StreakStatus([]time.Time{morning}, streakToday)
	if result.Streak != 1 {
		t.Errorf("streak = %d, want 1", result.Streak)
	}
}

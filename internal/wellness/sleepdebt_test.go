package wellness

import (
	"errors"
	"testing"
	"time"
)

func day(offset int) time.Time {
	base := time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC)
	return base.AddDate(0, 0, offset)
}

func nights(hours ...float64) []SleepDay {
	result := make([]SleepDay, len(hours))
	for i, h := range hours {
		// index 0 is the most recent night
		result[i] = SleepDay{Date: day(-i), SleepHours: h}
	}
	return result
}

func TestCalculateSleepDebt_EmptyHistoryIsUnknown(t *testing.T) {
	result, err := CalculateSleepDebt(nil, 8.0, 14)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Status != SleepDebtUnknown {
		t.Errorf("status = %q, want %q", result.Status, SleepDebtUnknown)
	}
	if result.DebtHours != 0 || result.DaysAnalyzed != 0 || result.RecoveryDays != 0 {
		t.Errorf("empty history result = %+v, want all zeros", result)
	}
	if result.Message != "no sleep data available" {
		t.Errorf("message = %q", result.Message)
	}
}

func TestCalculateSleepDebt_AllOptimalIsRestedNotUnknown(t *testing.T) {
	result, err := CalculateSleepDebt(nights(8, 8, 8, 8, 8), 8.0, 14)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Status != SleepDebtRested {
		t.Errorf("status = %q, want %q (must not be conflated with unknown)", result.Status, SleepDebtRested)
	}
	if result.DebtHours != 0 {
		t.Errorf("debt = %.1f, want 0", result.DebtHours)
	}
	if result.DaysAnalyzed != 5 {
		t.Errorf("days analyzed = %d, want 5", result.DaysAnalyzed)
	}
	if result.Message != "you're well rested" {
		t.Errorf("message = %q", result.Message)
	}
}

func TestCalculateSleepDebt_Accumulation(t *testing.T) {
	tests := []struct {
		name       string
		history    []SleepDay
		wantDebt   float64
		wantStatus SleepDebtStatus
	}{
		{
			name:       "one hour short per night",
			history:    nights(7, 7, 7, 7, 7, 7, 7),
			wantDebt:   7.0,
			wantStatus: SleepDebtModerate,
		},
		{
			name:       "single short night is mild",
			history:    nights(6, 8, 8),
			wantDebt:   2.0,
			wantStatus: SleepDebtMild,
		},
		{
			name: "oversleep recovery capped at one hour per night",
			// 6h adds 2h debt; 12h repays only 1h despite 4h extra
			history:    nights(12, 6),
			wantDebt:   1.0,
			wantStatus: SleepDebtMild,
		},
		{
			name: "running total not clamped per night",
			// the two most recent 10h nights bank -2 before the older 6h
			// night adds +2; per-night clamping would report 2 instead
			history: []SleepDay{
				{Date: day(0), SleepHours: 10},
				{Date: day(-1), SleepHours: 10},
				{Date: day(-2), SleepHours: 6},
			},
			wantDebt:   0.0,
			wantStatus: SleepDebtRested,
		},
		{
			name:       "severe debt capped at 40",
			history:    nights(0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0), // 14 * 8 = 112
			wantDebt:   40.0,
			wantStatus: SleepDebtSevere,
		},
		{
			name:       "significant band includes recovery estimate",
			history:    nights(4, 4, 4, 4, 8), // 4 * 4 = 16
			wantDebt:   16.0,
			wantStatus: SleepDebtSignificant,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := CalculateSleepDebt(tt.history, 8.0, 14)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if result.DebtHours != tt.wantDebt {
				t.Errorf("debt = %.1f, want %.1f", result.DebtHours, tt.wantDebt)
			}
			if result.Status != tt.wantStatus {
				t.Errorf("status = %q, want %q", result.Status, tt.wantStatus)
			}
		})
	}
}

func TestCalculateSleepDebt_StatusBoundaries(t *testing.T) {
	tests := []struct {
		history    []SleepDay
		wantStatus SleepDebtStatus
	}{
		{nights(3.1), SleepDebtMild},              // 4.9h debt
		{nights(3), SleepDebtModerate},            // exactly 5h
		{nights(0.5, 0.5), SleepDebtSignificant},  // exactly 15h
		{nights(0, 0, 0, 7), SleepDebtSevere},     // exactly 25h
	}

	for _, tt := range tests {
		result, err := CalculateSleepDebt(tt.history, 8.0, 14)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.Status != tt.wantStatus {
			t.Errorf("debt %.1f: status = %q, want %q", result.DebtHours, result.Status, tt.wantStatus)
		}
	}
}

func TestCalculateSleepDebt_LookbackWindow(t *testing.T) {
	// 16 nights, the two oldest are catastrophic but fall outside the window.
	history := nights(7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 0, 0)

	result, err := CalculateSleepDebt(history, 8.0, 14)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.DaysAnalyzed != 14 {
		t.Errorf("days analyzed = %d, want 14", result.DaysAnalyzed)
	}
	if result.DebtHours != 14.0 {
		t.Errorf("debt = %.1f, want 14.0 (old nights must be excluded)", result.DebtHours)
	}
}

func TestCalculateSleepDebt_RecoveryDaysTruncates(t *testing.T) {
	// 3.5h debt -> 3 recovery days
	result, err := CalculateSleepDebt(nights(4.5), 8.0, 14)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.RecoveryDays != 3 {
		t.Errorf("recovery days = %d, want 3", result.RecoveryDays)
	}
}

func TestCalculateSleepDebt_DoesNotMutateInput(t *testing.T) {
	history := []SleepDay{
		{Date: day(-3), SleepHours: 5},
		{Date: day(0), SleepHours: 7},
		{Date: day(-1), SleepHours: 6},
	}
	want := make([]SleepDay, len(history))
	copy(want, history)

	if _, err := CalculateSleepDebt(history, 8.0, 14); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for i := range history {
		if !history[i].Date.Equal(want[i].Date) || history[i].SleepHours != want[i].SleepHours {
			t.Fatalf("input mutated at %d: got %+v, want %+v", i, history[i], want[i])
		}
	}
}

func TestCalculateSleepDebt_InvalidOptimalSleep(t *testing.T) {
	_, err := CalculateSleepDebt(nights(7), 0, 14)
	if !errors.Is(err, ErrInvalidOptimalSleep) {
		t.Errorf("err = %v, want ErrInvalidOptimalSleep", err)
	}

	// Empty history short-circuits before the divisor is touched.
	result, err := CalculateSleepDebt(nil, 0, 14)
	if err != nil {
		t.Fatalf("empty history with bad optimal: unexpected error %v", err)
	}
	if result.Status != SleepDebtUnknown {
		t.Errorf("status = %q, want unknown", result.Status)
	}
}

func TestSleepRecommendations_Tiers(t *testing.T) {
	tests := []struct {
		debt      float64
		wantCount int
	}{
		{0, 2},
		{3, 3},
		{10, 4},
		{20, 5},
		{40, 5},
	}

	for _, tt := range tests {
		tips := SleepRecommendations(tt.debt)
		if len(tips) != tt.wantCount {
			t.Errorf("debt %.0f: got %d tips, want %d", tt.debt, len(tips), tt.wantCount)
		}
		if tips[0] != "maintain consistent bed/wake times" {
			t.Errorf("debt %.0f: first tip = %q, want baseline", tt.debt, tips[0])
		}
	}
}

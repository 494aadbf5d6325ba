package wellness

import (
	"fmt"
	"math"
	"sort"
	"time"
)

const (
	// DefaultLookbackDays is the default sleep debt analysis window.
	DefaultLookbackDays = 14

	// debtCapHours is the hard ceiling on accumulated debt (~5 full nights).
	debtCapHours = 40.0

	// maxNightlyRecoveryHours caps how much one over-sleep night can repay.
	maxNightlyRecoveryHours = 1.0
)

// SleepDay is one night's sleep record.
type SleepDay struct {
	Date       time.Time
	SleepHours float64
}

// SleepDebtStatus classifies accumulated debt.
type SleepDebtStatus string

const (
	// SleepDebtUnknown means there is no data to analyze. Distinct from
	// SleepDebtRested, which means data exists and debt is zero.
	SleepDebtUnknown     SleepDebtStatus = "unknown"
	SleepDebtRested      SleepDebtStatus = "rested"
	SleepDebtMild        SleepDebtStatus = "mild"
	SleepDebtModerate    SleepDebtStatus = "moderate"
	SleepDebtSignificant SleepDebtStatus = "significant"
	SleepDebtSevere      SleepDebtStatus = "severe"
)

// SleepDebtResult is the accumulated debt with recovery guidance.
type SleepDebtResult struct {
	DebtHours    float64         `json:"debt_hours"`
	DaysAnalyzed int             `json:"days_analyzed"`
	RecoveryDays int             `json:"recovery_days"`
	Status       SleepDebtStatus `json:"status"`
	Message      string          `json:"message"`
}

// CalculateSleepDebt accumulates sleep debt over the most recent lookbackDays
// entries of history (14 when lookbackDays <= 0).
//
// Nights short of optimal add their full shortfall; nights over optimal repay
// at most one hour no matter how long they were. The running total is not
// clamped per night, only the final figure is held to [0, 40].
func CalculateSleepDebt(history []SleepDay, optimalSleep float64, lookbackDays int) (SleepDebtResult, error) {
	if len(history) == 0 {
		return SleepDebtResult{
			DebtHours:    0.0,
			DaysAnalyzed: 0,
			RecoveryDays: 0,
			Status:       SleepDebtUnknown,
			Message:      "no sleep data available",
		}, nil
	}

	if optimalSleep <= 0 {
		return SleepDebtResult{}, ErrInvalidOptimalSleep
	}
	if lookbackDays <= 0 {
		lookbackDays = DefaultLookbackDays
	}

	// Sort a copy newest-first; the caller's slice stays untouched.
	recent := make([]SleepDay, len(history))
	copy(recent, history)
	sort.Slice(recent, func(i, j int) bool {
		return recent[i].Date.After(recent[j].Date)
	})
	if len(recent) > lookbackDays {
		recent = recent[:lookbackDays]
	}

	debt := 0.0
	for _, day := range recent {
		diff := optimalSleep - day.SleepHours
		if diff > 0 {
			debt += diff
		} else {
			debt -= math.Min(maxNightlyRecoveryHours, -diff)
		}
	}

	debt = clampFloat(debt, 0, debtCapHours)

	recoveryDays := 0
	if debt > 0 {
		// Rough heuristic: one extra recovered hour per night.
		recoveryDays = int(debt)
	}

	status, message := classifySleepDebt(debt, recoveryDays)

	return SleepDebtResult{
		DebtHours:    math.Round(debt*10) / 10,
		DaysAnalyzed: len(recent),
		RecoveryDays: recoveryDays,
		Status:       status,
		Message:      message,
	}, nil
}

func classifySleepDebt(debt float64, recoveryDays int) (SleepDebtStatus, string) {
	switch {
	case debt == 0:
		return SleepDebtRested, "you're well rested"
	case debt < 5:
		return SleepDebtMild, fmt.Sprintf("slight sleep debt (%.1fh) - easy to recover", debt)
	case debt < 15:
		return SleepDebtModerate, fmt.Sprintf("noticeable debt (%.1fh) - prioritize sleep this week", debt)
	case debt < 25:
		return SleepDebtSignificant, fmt.Sprintf("significant debt (%.1fh) - recovery will take ~%d days", debt, recoveryDays)
	default:
		return SleepDebtSevere, fmt.Sprintf("severe debt (%.1fh) - consider consulting a doctor if fatigued", debt)
	}
}

// SleepRecommendations returns tips tiered by debt level, always starting with
// a consistency baseline.
func SleepRecommendations(debtHours float64) []string {
	base := []string{"maintain consistent bed/wake times"}

	switch {
	case debtHours == 0:
		return append(base, "you're doing great, keep it up")
	case debtHours < 5:
		return append(base,
			"add 30min extra sleep tonight",
			"avoid screens before bed",
		)
	case debtHours < 15:
		return append(base,
			"aim for 8-9 hours tonight",
			"skip caffeine after 2pm",
			"consider a 20min power nap",
		)
	default:
		return append(base,
			"prioritize sleep over other activities",
			"keep room dark and cool",
			"no alcohol - it disrupts sleep quality",
			"consider going to bed 1 hour earlier",
		)
	}
}

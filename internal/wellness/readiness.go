// Package wellness holds the analytics core: readiness scoring, sleep debt
// accumulation, trend analysis, and streak tracking. Every function here is a
// pure computation over caller-supplied data; callers own storage and I/O.
package wellness

import "errors"

// DefaultOptimalSleep is the fallback nightly sleep target in hours when a
// user has no profile preference.
const DefaultOptimalSleep = 8.0

// ErrInvalidOptimalSleep is returned when the optimal sleep divisor is zero or
// negative. All other bad input degrades to a clamped result instead of failing.
var ErrInvalidOptimalSleep = errors.New("optimal sleep hours must be positive")

// Factor weights for the readiness score.
const (
	weightSleep       = 0.35
	weightEnergy      = 0.25
	weightStress      = 0.20
	weightActivity    = 0.10
	weightConsistency = 0.10

	// activityTargetMinutes is the daily activity that counts as 100%.
	activityTargetMinutes = 30
)

// ReadinessInput carries one day's health metrics.
// SleepQuality, EnergyLevel, and StressLevel are 1-10 ratings.
type ReadinessInput struct {
	SleepHours      float64
	SleepQuality    int
	EnergyLevel     int
	StressLevel     int
	ActivityMinutes int
	OptimalSleep    float64
	StreakDays      int
}

// ReadinessFactors is the per-factor breakdown, each clamped to 0-100.
type ReadinessFactors struct {
	Sleep       int `json:"sleep"`
	Energy      int `json:"energy"`
	Stress      int `json:"stress"`
	Activity    int `json:"activity"`
	Consistency int `json:"consistency"`
}

// ReadinessResult is the composite score with its zone and breakdown.
type ReadinessResult struct {
	Score   int              `json:"score"`
	Zone    Zone             `json:"zone"`
	Factors ReadinessFactors `json:"factors"`
}

// CalculateReadiness converts a day's metrics into a 0-100 readiness score.
//
// Weights: sleep 35% (hours vs optimal plus a quality bonus), energy 25%,
// stress 20% (inverted), activity 10% (30 min target), consistency 10%
// (step function of the logging streak). The weighted sum is truncated to an
// integer and clamped to 0-100.
func CalculateReadiness(in ReadinessInput) (ReadinessResult, error) {
	if in.OptimalSleep <= 0 {
		return ReadinessResult{}, ErrInvalidOptimalSleep
	}

	// Sleep: how close to the optimal hours, shifted by quality.
	sleepRatio := in.SleepHours / in.OptimalSleep
	if sleepRatio > 1.0 {
		sleepRatio = 1.0
	}
	sleepBase := sleepRatio * 100

	// Quality bonus ranges -20..+25 for ratings 1-10.
	qualityBonus := float64(in.SleepQuality-5) * 5
	sleepFactor := clampFloat(sleepBase+qualityBonus, 0, 100)

	energyFactor := float64(in.EnergyLevel) / 10 * 100

	// Inverted: stress 1 scores ~100, stress 10 scores 0.
	stressFactor := float64(10-in.StressLevel) / 9 * 100

	activityFactor := float64(in.ActivityMinutes) / activityTargetMinutes * 100
	if activityFactor > 100 {
		activityFactor = 100
	}

	consistencyFactor := consistencyForStreak(in.StreakDays)

	score := int(
		sleepFactor*weightSleep +
			energyFactor*weightEnergy +
			stressFactor*weightStress +
			activityFactor*weightActivity +
			consistencyFactor*weightConsistency,
	)
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}

	return ReadinessResult{
		Score: score,
		Zone:  ZoneForScore(score),
		Factors: ReadinessFactors{
			Sleep:       int(sleepFactor),
			Energy:      int(energyFactor),
			Stress:      int(stressFactor),
			Activity:    int(activityFactor),
			Consistency: int(consistencyFactor),
		},
	}, nil
}

// consistencyForStreak maps a logging streak to a 20-100 consistency factor.
func consistencyForStreak(streakDays int) float64 {
	switch {
	case streakDays >= 30:
		return 100
	case streakDays >= 14:
		return 80
	case streakDays >= 7:
		return 60
	case streakDays >= 3:
		return 40
	default:
		return 20
	}
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

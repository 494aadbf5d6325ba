package wellness

import (
	"fmt"
	"sort"
	"time"
)

// StreakResult is the consecutive-day logging streak with its message.
type StreakResult struct {
	Streak  int    `json:"streak"`
	Message string `json:"message"`
}

// StreakStatus counts consecutive logged calendar days walking back from
// today. Index 0 of the date set must be today itself for the streak to start:
// a user who last logged yesterday has a streak of 0. The walk stops at the
// first gap; days beyond it do not count.
//
// `today` is explicit so the computation stays deterministic under test.
// Zero-value dates are skipped.
func StreakStatus(dates []time.Time, today time.Time) StreakResult {
	if len(dates) == 0 {
		return StreakResult{Streak: 0, Message: "start logging to build a streak"}
	}

	valid := make([]time.Time, 0, len(dates))
	for _, d := range dates {
		if !d.IsZero() {
			valid = append(valid, d)
		}
	}
	if len(valid) == 0 {
		return StreakResult{Streak: 0, Message: "no logs found"}
	}

	sort.Slice(valid, func(i, j int) bool {
		return valid[i].After(valid[j])
	})

	streak := 0
	for i, d := range valid {
		expected := today.AddDate(0, 0, -i)
		if sameDay(d, expected) {
			streak++
		} else {
			break
		}
	}

	return StreakResult{Streak: streak, Message: streakMessage(streak)}
}

func streakMessage(streak int) string {
	switch {
	case streak >= 30:
		return fmt.Sprintf("amazing %d-day streak!", streak)
	case streak >= 7:
		return fmt.Sprintf("great %d-day streak going", streak)
	case streak >= 3:
		return fmt.Sprintf("%d days in a row, keep it up", streak)
	case streak == 1:
		return "logged today, building momentum"
	default:
		return "no current streak"
	}
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

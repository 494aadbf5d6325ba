package wellness

// Zone is a coarse readiness bucket derived from the score.
type Zone string

const (
	ZonePeak     Zone = "peak"
	ZoneGood     Zone = "good"
	ZoneModerate Zone = "moderate"
	ZoneLow      Zone = "low"
	ZoneCritical Zone = "critical"
)

// ZoneForScore maps a readiness score to its zone. Lower bounds are inclusive:
// exactly 80 is peak, exactly 79 is good. This is the only score-to-zone table
// in the codebase; every caller derives zones through it.
func ZoneForScore(score int) Zone {
	switch {
	case score >= 80:
		return ZonePeak
	case score >= 60:
		return ZoneGood
	case score >= 40:
		return ZoneModerate
	case score >= 20:
		return ZoneLow
	default:
		return ZoneCritical
	}
}

// ZoneGuidance is the human-readable advice for a zone.
type ZoneGuidance struct {
	Summary     string   `json:"summary"`
	Suggestions []string `json:"suggestions"`
}

var zoneGuidance = map[Zone]ZoneGuidance{
	ZonePeak: {
		Summary: "you're at peak performance today",
		Suggestions: []string{
			"great day for challenging workouts",
			"tackle your hardest tasks",
			"push your limits if you want",
		},
	},
	ZoneGood: {
		Summary: "solid day ahead",
		Suggestions: []string{
			"normal activities are fine",
			"stay hydrated",
			"maintain your routine",
		},
	},
	ZoneModerate: {
		Summary: "take it a bit easier today",
		Suggestions: []string{
			"lighter workout recommended",
			"prioritize important tasks only",
			"consider an early night",
		},
	},
	ZoneLow: {
		Summary: "focus on recovery today",
		Suggestions: []string{
			"skip intense exercise",
			"get to bed early tonight",
			"take breaks often",
		},
	},
	ZoneCritical: {
		Summary: "rest day needed",
		Suggestions: []string{
			"avoid strenuous activity",
			"prioritize sleep and nutrition",
			"consider taking a day off if possible",
		},
	},
}

// ZoneRecommendations returns the guidance for a zone. Unrecognized zones fall
// back to moderate rather than failing; callers may hand us free-form strings.
func ZoneRecommendations(zone Zone) ZoneGuidance {
	if g, ok := zoneGuidance[zone]; ok {
		return g
	}
	return zoneGuidance[ZoneModerate]
}

// ActivityPlan suggests how to shape the day around a readiness zone.
type ActivityPlan struct {
	Workout string `json:"workout"`
	Work    string `json:"work"`
	Mindset string `json:"mindset"`
}

var activityPlans = map[Zone]ActivityPlan{
	ZonePeak: {
		Workout: "high intensity - HIIT, running, heavy lifting",
		Work:    "tackle your hardest tasks",
		Mindset: "push yourself today",
	},
	ZoneGood: {
		Workout: "moderate - strength training, cycling, swimming",
		Work:    "productive day for focused work",
		Mindset: "steady progress",
	},
	ZoneModerate: {
		Workout: "light - yoga, walking, stretching",
		Work:    "prioritize essential tasks only",
		Mindset: "conserve energy",
	},
	ZoneLow: {
		Workout: "recovery only - gentle stretching, walking",
		Work:    "handle only urgent matters",
		Mindset: "focus on rest",
	},
	ZoneCritical: {
		Workout: "rest - no exercise today",
		Work:    "consider taking time off",
		Mindset: "recovery is the priority",
	},
}

// ActivitySuggestion returns the activity plan for a zone, falling back to
// moderate for unknown input.
func ActivitySuggestion(zone Zone) ActivityPlan {
	if p, ok := activityPlans[zone]; ok {
		return p
	}
	return activityPlans[ZoneModerate]
}

package wellness

import (
	"math"
	"sort"
	"time"
)

// DefaultTrendDays is the default trend analysis window.
const DefaultTrendDays = 7

// trendStableThreshold is the half-average delta below which a metric counts
// as stable.
const trendStableThreshold = 0.5

// Metric keys in TrendResult.Trends.
const (
	MetricReadinessScore = "readiness_score"
	MetricSleepHours     = "sleep_hours"
	MetricEnergyLevel    = "energy_level"
	MetricStressLevel    = "stress_level"
)

// TrendDirection classifies how a metric moved between window halves.
type TrendDirection string

const (
	TrendUp     TrendDirection = "up"
	TrendDown   TrendDirection = "down"
	TrendStable TrendDirection = "stable"
)

// Arrow returns the display glyph for a direction.
func (d TrendDirection) Arrow() string {
	switch d {
	case TrendUp:
		return "↑"
	case TrendDown:
		return "↓"
	default:
		return "→"
	}
}

// TrendLogEntry is one day's metrics for trend analysis. Nil fields are
// missing values and are skipped when averaging.
type TrendLogEntry struct {
	Date           time.Time
	ReadinessScore *float64
	SleepHours     *float64
	EnergyLevel    *float64
	StressLevel    *float64
}

// MetricTrend is the directional summary for a single metric. Averages are nil
// when no values were present in the corresponding half.
type MetricTrend struct {
	Average       *float64       `json:"average"`
	Trend         TrendDirection `json:"trend"`
	Arrow         string         `json:"arrow"`
	FirstHalfAvg  *float64       `json:"first_half_avg"`
	SecondHalfAvg *float64       `json:"second_half_avg"`
}

// TrendResult is the per-metric trend table with a narrative message.
type TrendResult struct {
	Days    int                    `json:"days"`
	Trends  map[string]MetricTrend `json:"trends"`
	Message string                 `json:"message"`
}

// AnalyzeTrends compares the earlier and later halves of a log window for each
// metric and derives a single narrative message (7-day window when days <= 0).
//
// The window is the first `days` entries after sorting ascending by date, i.e.
// the OLDEST entries of whatever set the caller passes, not the most recent
// calendar days. This mirrors the behavior the product shipped with; callers
// that want "last N days" must pre-trim their input.
func AnalyzeTrends(logs []TrendLogEntry, days int) TrendResult {
	if days <= 0 {
		days = DefaultTrendDays
	}

	if len(logs) < 2 {
		return TrendResult{
			Days:    0,
			Trends:  map[string]MetricTrend{},
			Message: "need more data for trend analysis",
		}
	}

	sorted := make([]TrendLogEntry, len(logs))
	copy(sorted, logs)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})
	if len(sorted) > days {
		sorted = sorted[:days]
	}

	n := len(sorted)
	if n < 2 {
		return TrendResult{
			Days:    n,
			Trends:  map[string]MetricTrend{},
			Message: "need at least 2 data points",
		}
	}

	mid := n / 2
	firstHalf := sorted[:mid]
	if mid == 0 {
		firstHalf = sorted[:1]
	}
	secondHalf := sorted[mid:]

	metrics := map[string]func(TrendLogEntry) *float64{
		MetricReadinessScore: func(e TrendLogEntry) *float64 { return e.ReadinessScore },
		MetricSleepHours:     func(e TrendLogEntry) *float64 { return e.SleepHours },
		MetricEnergyLevel:    func(e TrendLogEntry) *float64 { return e.EnergyLevel },
		MetricStressLevel:    func(e TrendLogEntry) *float64 { return e.StressLevel },
	}

	trends := make(map[string]MetricTrend, len(metrics))
	for name, field := range metrics {
		firstAvg := average(firstHalf, field)
		secondAvg := average(secondHalf, field)
		overallAvg := average(sorted, field)

		direction := classifyTrend(firstAvg, secondAvg)

		trends[name] = MetricTrend{
			Average:       round1(overallAvg),
			Trend:         direction,
			Arrow:         direction.Arrow(),
			FirstHalfAvg:  round1(firstAvg),
			SecondHalfAvg: round1(secondAvg),
		}
	}

	return TrendResult{
		Days:    n,
		Trends:  trends,
		Message: trendMessage(trends),
	}
}

// trendMessage picks exactly one narrative by first-matching rule.
func trendMessage(trends map[string]MetricTrend) string {
	readiness := trends[MetricReadinessScore].Trend
	energy := trends[MetricEnergyLevel].Trend
	stress := trends[MetricStressLevel].Trend

	switch {
	case readiness == TrendUp && energy == TrendUp:
		return "your wellness is improving"
	case readiness == TrendDown && stress == TrendUp:
		return "you seem more stressed lately"
	case stress == TrendDown:
		return "stress levels are coming down"
	default:
		return "wellness is stable"
	}
}

func classifyTrend(first, second *float64) TrendDirection {
	if first == nil || second == nil {
		return TrendStable
	}
	diff := *second - *first
	if math.Abs(diff) < trendStableThreshold {
		return TrendStable
	}
	if diff > 0 {
		return TrendUp
	}
	return TrendDown
}

// average computes the mean of present values; nil when the set has none.
func average(entries []TrendLogEntry, field func(TrendLogEntry) *float64) *float64 {
	sum := 0.0
	count := 0
	for _, e := range entries {
		if v := field(e); v != nil {
			sum += *v
			count++
		}
	}
	if count == 0 {
		return nil
	}
	avg := sum / float64(count)
	return &avg
}

func round1(v *float64) *float64 {
	if v == nil {
		return nil
	}
	r := math.Round(*v*10) / 10
	return &r
}

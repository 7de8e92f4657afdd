package scouting

import "github.com/ExcaliDevBot/ExcaliStrategy/internal/models"

// ClassifyTrend classifies a team's ordered per-match total scores as
// upward, downward or stable. The test is strict monotonicity over adjacent
// differences, not a slope estimate: a single flat or reversing pair
// anywhere in the sequence forces stable. Callers must pass scores sorted
// by match number.
func ClassifyTrend(scores []float64) models.Trend {
	if len(scores) < 2 {
		return models.TrendStable
	}

	allUp, allDown := true, true
	for i := 1; i < len(scores); i++ {
		diff := scores[i] - scores[i-1]
		if diff <= 0 {
			allUp = false
		}
		if diff >= 0 {
			allDown = false
		}
	}

	switch {
	case allUp:
		return models.TrendUpward
	case allDown:
		return models.TrendDownward
	default:
		return models.TrendStable
	}
}

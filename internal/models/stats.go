package models

import "time"

// Trend classifies the direction of a team's recent performance.
type Trend string

const (
	TrendUpward   Trend = "upward"
	TrendDownward Trend = "downward"
	TrendStable   Trend = "stable"
)

// TeamStats is one team's persisted performance summary, recomputed in full
// (never incrementally) each time aggregation runs and overwritten at its
// team-number key. Every rate and average is derived solely from that team's
// scouting entries; a team with no entries gets zero sentinels, never an error.
type TeamStats struct {
	TeamNumber int `json:"team_number"`

	// Per-field averages over entries where the field was recorded.
	AutoL1          float64 `json:"auto_l1"`
	AutoL2          float64 `json:"auto_l2"`
	AutoL3          float64 `json:"auto_l3"`
	AutoL4          float64 `json:"auto_l4"`
	AutoRemoveAlgae float64 `json:"auto_remove_algae"`
	L1              float64 `json:"l1"`
	L2              float64 `json:"l2"`
	L3              float64 `json:"l3"`
	L4              float64 `json:"l4"`
	RemoveAlgae     float64 `json:"remove_algae"`
	ProcessorScore  float64 `json:"processor_score"`
	NetScore        float64 `json:"net_score"`

	// ClimbRate is the percentage (0-100) of matches with a DEEP climb.
	ClimbRate float64 `json:"climb_rate"`
	// ConsistencyRate is the percentage (0-100) of matches whose estimated
	// total score exceeded the consistency threshold.
	ConsistencyRate float64 `json:"consistency_rate"`
	// DefenseRating is the average of defensive pins, or the 0 sentinel when
	// the team has fewer than the minimum defensive samples.
	DefenseRating float64 `json:"defense_rating"`

	MatchesPlayed    int   `json:"matches_played"`
	PerformanceTrend Trend `json:"performance_trend"`

	// Power ratings, sourced externally or carried from a prior computation.
	OPR  float64 `json:"opr"`
	DPR  float64 `json:"dpr"`
	CCWM float64 `json:"ccwm"`

	ComputedAt time.Time `json:"computed_at"`
}

// CalculatedMetrics is the presentation-ready view derived from TeamStats
// by fixed scoring-weight formulas. It is computed on read, never persisted.
type CalculatedMetrics struct {
	AvgAutoScore      float64 `json:"avg_auto_score"`
	AvgTeleopScore    float64 `json:"avg_teleop_score"`
	AvgEndgameScore   float64 `json:"avg_endgame_score"`
	AvgTotalScore     float64 `json:"avg_total_score"`
	ClimbSuccessRate  float64 `json:"climb_success_rate"`
	ConsistencyRating float64 `json:"consistency_rating"`
	DefenseCapability string  `json:"defense_capability"`
}

// Provenance flags externally sourced data so callers can display or
// discount a season-level fallback differently from event-specific data.
type Provenance struct {
	Source       string `json:"source"`
	FallbackUsed bool   `json:"fallback_used"`
	FallbackType string `json:"fallback_type,omitempty"`
	EventKey     string `json:"event_key,omitempty"`
	EventExists  *bool  `json:"event_exists,omitempty"`
	Reason       string `json:"reason,omitempty"`
}

// TeamPerformanceData bundles a team's stats with its derived metrics.
// It has the same shape whether the stats came from internal aggregation
// or from an external statistics source.
type TeamPerformanceData struct {
	TeamNumber        int               `json:"team_number"`
	Stats             TeamStats         `json:"stats"`
	CalculatedMetrics CalculatedMetrics `json:"calculated_metrics"`
	Provenance        *Provenance       `json:"provenance,omitempty"`
}

// MatchScore is one team's estimated score decomposition for one match,
// persisted alongside TeamStats for charting. Rewritten on every
// aggregation run, keyed by (team, match).
type MatchScore struct {
	TeamNumber   int     `json:"team_number"`
	MatchNumber  int     `json:"match_number"`
	AutoScore    float64 `json:"auto_score"`
	TeleopScore  float64 `json:"teleop_score"`
	EndgameScore float64 `json:"endgame_score"`
	TotalScore   float64 `json:"total_score"`
}

package models

// AllianceSummary aggregates up to three teams' derived metrics into an
// alliance-level view. An empty alliance produces an all-zero summary.
type AllianceSummary struct {
	Teams []int `json:"teams"`

	// CombinedTotalScore is the sum of member avg total scores
	// ("combined scoring potential").
	CombinedTotalScore float64 `json:"combined_total_score"`
	AvgClimbRate       float64 `json:"avg_climb_rate"`
	AvgConsistency     float64 `json:"avg_consistency"`

	// Member counts over fixed thresholds.
	DefensiveTeams  int `json:"defensive_teams"`
	StrongAutoTeams int `json:"strong_auto_teams"`
	ReliableClimbers int `json:"reliable_climbers"`
}

// ComparisonReport is the structured head-to-head result of comparing two
// alliances. Both the UI and the strategy-prompt builder consume it; the
// human-readable rendering is a separate presentation step.
type ComparisonReport struct {
	Alliance *AllianceSummary `json:"alliance"`
	Opponent *AllianceSummary `json:"opponent"`

	// ScoringDifferential is alliance combined total minus opponent combined
	// total: positive favors the alliance, negative favors the opponent.
	ScoringDifferential float64 `json:"scoring_differential"`
	Advantage           string  `json:"advantage"`
}

// Advantage values for ComparisonReport.
const (
	AdvantageAlliance = "alliance"
	AdvantageOpponent = "opponent"
	AdvantageEven     = "even"
)

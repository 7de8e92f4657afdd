package models

import "time"

// MatchStrategy is a per-match strategy note prepared before a match,
// optionally enriched with generated insights.
type MatchStrategy struct {
	ID            int64    `json:"id"`
	MatchNumber   int      `json:"match_number"`
	MatchType     string   `json:"match_type"`
	AllianceColor string   `json:"alliance_color"`
	AllianceTeams []int    `json:"alliance_teams"`
	OpponentTeams []int    `json:"opponent_teams"`

	Gameplan          string `json:"gameplan"`
	AutoStrategy      string `json:"auto_strategy"`
	TeleopStrategy    string `json:"teleop_strategy"`
	EndgameStrategy   string `json:"endgame_strategy"`
	DefensiveStrategy string `json:"defensive_strategy"`
	BackupPlans       string `json:"backup_plans"`
	Notes             string `json:"notes"`
	AIInsights        string `json:"ai_insights,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Team is an event participant as listed by The Blue Alliance.
type Team struct {
	TeamNumber int    `json:"team_number"`
	TeamName   string `json:"team_name"`
}

package repository

import (
	"context"

	"github.com/ExcaliDevBot/ExcaliStrategy/internal/models"
)

// ScoutingRepository handles raw scouting entry access. Entries are written
// once at intake and read many times by aggregation; nothing updates them.
type ScoutingRepository interface {
	Insert(ctx context.Context, entry models.ScoutingEntry) (int64, error)
	Upsert(ctx context.Context, entry models.ScoutingEntry) error
	All(ctx context.Context) ([]models.ScoutingEntry, error)
	List(ctx context.Context, filter models.EntryFilter) ([]models.ScoutingEntry, error)
	TeamNumbers(ctx context.Context) ([]int, error)
}

// StatsRepository handles derived team statistics and per-match score
// breakdowns. Both are written exclusively by the aggregation service, as a
// single transaction per run so readers never observe a partial state.
type StatsRepository interface {
	TeamStats(ctx context.Context, teamNumber int) (*models.TeamStats, error)
	AllTeamStats(ctx context.Context) ([]models.TeamStats, error)
	SaveAggregation(ctx context.Context, stats models.TeamStats, scores []models.MatchScore) error
	UpdatePowerRatings(ctx context.Context, teamNumber int, opr, dpr, ccwm float64) error
	MatchScores(ctx context.Context, teamNumber int) ([]models.MatchScore, error)
}

// StrategyRepository handles per-match strategy notes.
type StrategyRepository interface {
	Insert(ctx context.Context, strategy models.MatchStrategy) (int64, error)
	Update(ctx context.Context, strategy models.MatchStrategy) error
	Get(ctx context.Context, id int64) (*models.MatchStrategy, error)
	List(ctx context.Context) ([]models.MatchStrategy, error)
	ListByMatch(ctx context.Context, matchNumber int) ([]models.MatchStrategy, error)
	SetInsights(ctx context.Context, id int64, insights string) error
}

package sqlite

import (
	"context"
	"database/sql"

	"github.com/ExcaliDevBot/ExcaliStrategy/internal/logger"
	"github.com/ExcaliDevBot/ExcaliStrategy/internal/models"
	"github.com/ExcaliDevBot/ExcaliStrategy/internal/repository"
)

type statsRepository struct {
	db *sql.DB
}

// NewStatsRepository creates a new StatsRepository implementation
func NewStatsRepository(db *sql.DB) repository.StatsRepository {
	return &statsRepository{db: db}
}

const statsColumns = `team_number,
auto_l1, auto_l2, auto_l3, auto_l4, auto_remove_algae,
l1, l2, l3, l4, remove_algae, processor_score, net_score,
climb_rate, consistency_rate, defense_rating, matches_played, performance_trend,
opr, dpr, ccwm, computed_at`

func scanStats(scan func(...any) error) (models.TeamStats, error) {
	var s models.TeamStats
	err := scan(&s.TeamNumber,
		&s.AutoL1, &s.AutoL2, &s.AutoL3, &s.AutoL4, &s.AutoRemoveAlgae,
		&s.L1, &s.L2, &s.L3, &s.L4, &s.RemoveAlgae, &s.ProcessorScore, &s.NetScore,
		&s.ClimbRate, &s.ConsistencyRate, &s.DefenseRating, &s.MatchesPlayed, &s.PerformanceTrend,
		&s.OPR, &s.DPR, &s.CCWM, &s.ComputedAt)
	return s, err
}

func (r *statsRepository) TeamStats(ctx context.Context, teamNumber int) (*models.TeamStats, error) {
	log := logger.FromContext(ctx).WithPrefix("stats_repo")
	log.Debug("fetching stats for team %d", teamNumber)

	row := r.db.QueryRowContext(ctx, `
SELECT `+statsColumns+`
FROM team_stats
WHERE team_number = ?
`, teamNumber)

	s, err := scanStats(row.Scan)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		log.Error("failed to scan stats for team %d: %v", teamNumber, err)
		return nil, err
	}
	return &s, nil
}

func (r *statsRepository) AllTeamStats(ctx context.Context) ([]models.TeamStats, error) {
	log := logger.FromContext(ctx).WithPrefix("stats_repo")
	log.Debug("fetching all team stats")

	rows, err := r.db.QueryContext(ctx, `
SELECT `+statsColumns+`
FROM team_stats
ORDER BY team_number
`)
	if err != nil {
		log.Error("failed to query team stats: %v", err)
		return nil, err
	}
	defer rows.Close()

	var all []models.TeamStats
	for rows.Next() {
		s, err := scanStats(rows.Scan)
		if err != nil {
			log.Error("failed to scan stats row: %v", err)
			return nil, err
		}
		all = append(all, s)
	}
	log.Debug("found stats for %d teams", len(all))
	return all, rows.Err()
}

// SaveAggregation overwrites the team's stats and match score breakdowns in
// one transaction, so a concurrent reader sees either the previous run's
// output or this run's, never a mix.
func (r *statsRepository) SaveAggregation(ctx context.Context, stats models.TeamStats, scores []models.MatchScore) error {
	log := logger.FromContext(ctx).WithPrefix("stats_repo")
	log.Debug("saving aggregation for team %d (%d match scores)", stats.TeamNumber, len(scores))

	return tx(ctx, r.db, func(t *sql.Tx) error {
		_, err := t.ExecContext(ctx, `
INSERT INTO team_stats (team_number,
  auto_l1, auto_l2, auto_l3, auto_l4, auto_remove_algae,
  l1, l2, l3, l4, remove_algae, processor_score, net_score,
  climb_rate, consistency_rate, defense_rating, matches_played, performance_trend,
  opr, dpr, ccwm, computed_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT (team_number) DO UPDATE SET
  auto_l1 = excluded.auto_l1,
  auto_l2 = excluded.auto_l2,
  auto_l3 = excluded.auto_l3,
  auto_l4 = excluded.auto_l4,
  auto_remove_algae = excluded.auto_remove_algae,
  l1 = excluded.l1,
  l2 = excluded.l2,
  l3 = excluded.l3,
  l4 = excluded.l4,
  remove_algae = excluded.remove_algae,
  processor_score = excluded.processor_score,
  net_score = excluded.net_score,
  climb_rate = excluded.climb_rate,
  consistency_rate = excluded.consistency_rate,
  defense_rating = excluded.defense_rating,
  matches_played = excluded.matches_played,
  performance_trend = excluded.performance_trend,
  computed_at = excluded.computed_at
`, stats.TeamNumber,
			stats.AutoL1, stats.AutoL2, stats.AutoL3, stats.AutoL4, stats.AutoRemoveAlgae,
			stats.L1, stats.L2, stats.L3, stats.L4, stats.RemoveAlgae, stats.ProcessorScore, stats.NetScore,
			stats.ClimbRate, stats.ConsistencyRate, stats.DefenseRating, stats.MatchesPlayed, stats.PerformanceTrend,
			stats.OPR, stats.DPR, stats.CCWM, stats.ComputedAt)
		if err != nil {
			return err
		}

		if _, err := t.ExecContext(ctx, `DELETE FROM match_scores WHERE team_number = ?`, stats.TeamNumber); err != nil {
			return err
		}
		for _, score := range scores {
			_, err := t.ExecContext(ctx, `
INSERT INTO match_scores (team_number, match_number, auto_score, teleop_score, endgame_score, total_score)
VALUES (?, ?, ?, ?, ?, ?)
`, score.TeamNumber, score.MatchNumber, score.AutoScore, score.TeleopScore, score.EndgameScore, score.TotalScore)
			if err != nil {
				return err
			}
		}
		return nil
	})
}

// UpdatePowerRatings writes externally sourced power ratings without touching
// the scouting-derived columns. SaveAggregation intentionally leaves the
// rating columns alone on conflict so the two writers do not fight.
func (r *statsRepository) UpdatePowerRatings(ctx context.Context, teamNumber int, opr, dpr, ccwm float64) error {
	log := logger.FromContext(ctx).WithPrefix("stats_repo")
	log.Debug("updating power ratings for team %d", teamNumber)

	_, err := r.db.ExecContext(ctx, `
INSERT INTO team_stats (team_number, opr, dpr, ccwm)
VALUES (?, ?, ?, ?)
ON CONFLICT (team_number) DO UPDATE SET
  opr = excluded.opr,
  dpr = excluded.dpr,
  ccwm = excluded.ccwm
`, teamNumber, opr, dpr, ccwm)
	if err != nil {
		log.Error("failed to update power ratings for team %d: %v", teamNumber, err)
	}
	return err
}

func (r *statsRepository) MatchScores(ctx context.Context, teamNumber int) ([]models.MatchScore, error) {
	log := logger.FromContext(ctx).WithPrefix("stats_repo")
	log.Debug("fetching match scores for team %d", teamNumber)

	rows, err := r.db.QueryContext(ctx, `
SELECT team_number, match_number, auto_score, teleop_score, endgame_score, total_score
FROM match_scores
WHERE team_number = ?
ORDER BY match_number
`, teamNumber)
	if err != nil {
		log.Error("failed to query match scores: %v", err)
		return nil, err
	}
	defer rows.Close()

	var scores []models.MatchScore
	for rows.Next() {
		var s models.MatchScore
		if err := rows.Scan(&s.TeamNumber, &s.MatchNumber, &s.AutoScore, &s.TeleopScore, &s.EndgameScore, &s.TotalScore); err != nil {
			log.Error("failed to scan match score row: %v", err)
			return nil, err
		}
		scores = append(scores, s)
	}
	return scores, rows.Err()
}

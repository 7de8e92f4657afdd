package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/ExcaliDevBot/ExcaliStrategy/internal/logger"
	"github.com/ExcaliDevBot/ExcaliStrategy/internal/models"
	"github.com/ExcaliDevBot/ExcaliStrategy/internal/repository"
)

type strategyRepository struct {
	db *sql.DB
}

// NewStrategyRepository creates a new StrategyRepository implementation
func NewStrategyRepository(db *sql.DB) repository.StrategyRepository {
	return &strategyRepository{db: db}
}

const strategyColumns = `id, match_number, match_type, alliance_color,
alliance_teams, opponent_teams, gameplan, auto_strategy, teleop_strategy,
endgame_strategy, defensive_strategy, backup_plans, notes, ai_insights,
created_at, updated_at`

func encodeTeams(teams []int) (string, error) {
	if teams == nil {
		teams = []int{}
	}
	b, err := json.Marshal(teams)
	return string(b), err
}

func scanStrategy(scan func(...any) error) (models.MatchStrategy, error) {
	var s models.MatchStrategy
	var alliance, opponent string

	err := scan(&s.ID, &s.MatchNumber, &s.MatchType, &s.AllianceColor,
		&alliance, &opponent, &s.Gameplan, &s.AutoStrategy, &s.TeleopStrategy,
		&s.EndgameStrategy, &s.DefensiveStrategy, &s.BackupPlans, &s.Notes, &s.AIInsights,
		&s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return s, err
	}

	if err := json.Unmarshal([]byte(alliance), &s.AllianceTeams); err != nil {
		return s, err
	}
	if err := json.Unmarshal([]byte(opponent), &s.OpponentTeams); err != nil {
		return s, err
	}
	return s, nil
}

func (r *strategyRepository) Insert(ctx context.Context, strategy models.MatchStrategy) (int64, error) {
	log := logger.FromContext(ctx).WithPrefix("strategy_repo")
	log.Debug("inserting strategy for match %d", strategy.MatchNumber)

	alliance, err := encodeTeams(strategy.AllianceTeams)
	if err != nil {
		return 0, err
	}
	opponent, err := encodeTeams(strategy.OpponentTeams)
	if err != nil {
		return 0, err
	}

	res, err := r.db.ExecContext(ctx, `
INSERT INTO match_strategies (match_number, match_type, alliance_color,
  alliance_teams, opponent_teams, gameplan, auto_strategy, teleop_strategy,
  endgame_strategy, defensive_strategy, backup_plans, notes, ai_insights)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
`, strategy.MatchNumber, strategy.MatchType, strategy.AllianceColor,
		alliance, opponent, strategy.Gameplan, strategy.AutoStrategy, strategy.TeleopStrategy,
		strategy.EndgameStrategy, strategy.DefensiveStrategy, strategy.BackupPlans,
		strategy.Notes, strategy.AIInsights)
	if err != nil {
		log.Error("failed to insert strategy: %v", err)
		return 0, err
	}
	return res.LastInsertId()
}

func (r *strategyRepository) Update(ctx context.Context, strategy models.MatchStrategy) error {
	log := logger.FromContext(ctx).WithPrefix("strategy_repo")
	log.Debug("updating strategy %d", strategy.ID)

	alliance, err := encodeTeams(strategy.AllianceTeams)
	if err != nil {
		return err
	}
	opponent, err := encodeTeams(strategy.OpponentTeams)
	if err != nil {
		return err
	}

	res, err := r.db.ExecContext(ctx, `
UPDATE match_strategies SET
  match_number = ?, match_type = ?, alliance_color = ?,
  alliance_teams = ?, opponent_teams = ?, gameplan = ?, auto_strategy = ?,
  teleop_strategy = ?, endgame_strategy = ?, defensive_strategy = ?,
  backup_plans = ?, notes = ?, updated_at = ?
WHERE id = ?
`, strategy.MatchNumber, strategy.MatchType, strategy.AllianceColor,
		alliance, opponent, strategy.Gameplan, strategy.AutoStrategy,
		strategy.TeleopStrategy, strategy.EndgameStrategy, strategy.DefensiveStrategy,
		strategy.BackupPlans, strategy.Notes, time.Now().UTC(), strategy.ID)
	if err != nil {
		log.Error("failed to update strategy %d: %v", strategy.ID, err)
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *strategyRepository) Get(ctx context.Context, id int64) (*models.MatchStrategy, error) {
	log := logger.FromContext(ctx).WithPrefix("strategy_repo")
	log.Debug("fetching strategy %d", id)

	row := r.db.QueryRowContext(ctx, `
SELECT `+strategyColumns+`
FROM match_strategies
WHERE id = ?
`, id)

	s, err := scanStrategy(row.Scan)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		log.Error("failed to scan strategy %d: %v", id, err)
		return nil, err
	}
	return &s, nil
}

func (r *strategyRepository) List(ctx context.Context) ([]models.MatchStrategy, error) {
	return r.list(ctx, `
SELECT `+strategyColumns+`
FROM match_strategies
ORDER BY match_number, id
`)
}

func (r *strategyRepository) ListByMatch(ctx context.Context, matchNumber int) ([]models.MatchStrategy, error) {
	return r.list(ctx, `
SELECT `+strategyColumns+`
FROM match_strategies
WHERE match_number = ?
ORDER BY id
`, matchNumber)
}

func (r *strategyRepository) list(ctx context.Context, query string, args ...any) ([]models.MatchStrategy, error) {
	log := logger.FromContext(ctx).WithPrefix("strategy_repo")

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to query strategies: %v", err)
		return nil, err
	}
	defer rows.Close()

	var strategies []models.MatchStrategy
	for rows.Next() {
		s, err := scanStrategy(rows.Scan)
		if err != nil {
			log.Error("failed to scan strategy row: %v", err)
			return nil, err
		}
		strategies = append(strategies, s)
	}
	return strategies, rows.Err()
}

func (r *strategyRepository) SetInsights(ctx context.Context, id int64, insights string) error {
	log := logger.FromContext(ctx).WithPrefix("strategy_repo")
	log.Debug("storing insights for strategy %d", id)

	res, err := r.db.ExecContext(ctx, `
UPDATE match_strategies SET ai_insights = ?, updated_at = ? WHERE id = ?
`, insights, time.Now().UTC(), id)
	if err != nil {
		log.Error("failed to store insights for strategy %d: %v", id, err)
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

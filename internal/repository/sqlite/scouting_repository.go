package sqlite

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"

	"github.com/ExcaliDevBot/ExcaliStrategy/internal/logger"
	"github.com/ExcaliDevBot/ExcaliStrategy/internal/models"
	"github.com/ExcaliDevBot/ExcaliStrategy/internal/repository"
)

type scoutingRepository struct {
	db *sql.DB
}

// NewScoutingRepository creates a new ScoutingRepository implementation
func NewScoutingRepository(db *sql.DB) repository.ScoutingRepository {
	return &scoutingRepository{db: db}
}

const scoutingColumns = `id, match_number, team_number, alliance, scout_name,
auto_l1, auto_l2, auto_l3, auto_l4, auto_remove_algae, left_starting_zone,
l1, l2, l3, l4, remove_algae, defensive_pins, processor_score, net_score,
climb_option, notes, created_at`

func optional(v *float64) sql.NullFloat64 {
	if v == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *v, Valid: true}
}

func pointer(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	f := v.Float64
	return &f
}

func scanEntry(scan func(...any) error) (models.ScoutingEntry, error) {
	var e models.ScoutingEntry
	var autoL1, autoL2, autoL3, autoL4, autoRemoveAlgae sql.NullFloat64
	var l1, l2, l3, l4, removeAlgae, defensivePins, processorScore, netScore sql.NullFloat64

	err := scan(&e.ID, &e.MatchNumber, &e.TeamNumber, &e.Alliance, &e.ScoutName,
		&autoL1, &autoL2, &autoL3, &autoL4, &autoRemoveAlgae, &e.LeftStartingZone,
		&l1, &l2, &l3, &l4, &removeAlgae, &defensivePins, &processorScore, &netScore,
		&e.ClimbOption, &e.Notes, &e.CreatedAt)
	if err != nil {
		return e, err
	}

	e.AutoL1 = pointer(autoL1)
	e.AutoL2 = pointer(autoL2)
	e.AutoL3 = pointer(autoL3)
	e.AutoL4 = pointer(autoL4)
	e.AutoRemoveAlgae = pointer(autoRemoveAlgae)
	e.L1 = pointer(l1)
	e.L2 = pointer(l2)
	e.L3 = pointer(l3)
	e.L4 = pointer(l4)
	e.RemoveAlgae = pointer(removeAlgae)
	e.DefensivePins = pointer(defensivePins)
	e.ProcessorScore = pointer(processorScore)
	e.NetScore = pointer(netScore)
	return e, nil
}

func (r *scoutingRepository) Insert(ctx context.Context, entry models.ScoutingEntry) (int64, error) {
	log := logger.FromContext(ctx).WithPrefix("scouting_repo")
	log.Debug("inserting entry: match=%d, team=%d", entry.MatchNumber, entry.TeamNumber)

	res, err := r.db.ExecContext(ctx, `
INSERT INTO scouting_entries (match_number, team_number, alliance, scout_name,
  auto_l1, auto_l2, auto_l3, auto_l4, auto_remove_algae, left_starting_zone,
  l1, l2, l3, l4, remove_algae, defensive_pins, processor_score, net_score,
  climb_option, notes)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
`, entry.MatchNumber, entry.TeamNumber, entry.Alliance, entry.ScoutName,
		optional(entry.AutoL1), optional(entry.AutoL2), optional(entry.AutoL3), optional(entry.AutoL4),
		optional(entry.AutoRemoveAlgae), entry.LeftStartingZone,
		optional(entry.L1), optional(entry.L2), optional(entry.L3), optional(entry.L4),
		optional(entry.RemoveAlgae), optional(entry.DefensivePins),
		optional(entry.ProcessorScore), optional(entry.NetScore),
		entry.ClimbOption, entry.Notes)
	if err != nil {
		log.Error("failed to insert entry: %v", err)
		return 0, err
	}
	return res.LastInsertId()
}

func (r *scoutingRepository) Upsert(ctx context.Context, entry models.ScoutingEntry) error {
	log := logger.FromContext(ctx).WithPrefix("scouting_repo")
	log.Debug("upserting entry: match=%d, team=%d", entry.MatchNumber, entry.TeamNumber)

	_, err := r.db.ExecContext(ctx, `
INSERT INTO scouting_entries (match_number, team_number, alliance, scout_name,
  auto_l1, auto_l2, auto_l3, auto_l4, auto_remove_algae, left_starting_zone,
  l1, l2, l3, l4, remove_algae, defensive_pins, processor_score, net_score,
  climb_option, notes)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT (match_number, team_number) DO UPDATE SET
  alliance = excluded.alliance,
  scout_name = excluded.scout_name,
  auto_l1 = excluded.auto_l1,
  auto_l2 = excluded.auto_l2,
  auto_l3 = excluded.auto_l3,
  auto_l4 = excluded.auto_l4,
  auto_remove_algae = excluded.auto_remove_algae,
  left_starting_zone = excluded.left_starting_zone,
  l1 = excluded.l1,
  l2 = excluded.l2,
  l3 = excluded.l3,
  l4 = excluded.l4,
  remove_algae = excluded.remove_algae,
  defensive_pins = excluded.defensive_pins,
  processor_score = excluded.processor_score,
  net_score = excluded.net_score,
  climb_option = excluded.climb_option,
  notes = excluded.notes
`, entry.MatchNumber, entry.TeamNumber, entry.Alliance, entry.ScoutName,
		optional(entry.AutoL1), optional(entry.AutoL2), optional(entry.AutoL3), optional(entry.AutoL4),
		optional(entry.AutoRemoveAlgae), entry.LeftStartingZone,
		optional(entry.L1), optional(entry.L2), optional(entry.L3), optional(entry.L4),
		optional(entry.RemoveAlgae), optional(entry.DefensivePins),
		optional(entry.ProcessorScore), optional(entry.NetScore),
		entry.ClimbOption, entry.Notes)
	if err != nil {
		log.Error("failed to upsert entry: %v", err)
	}
	return err
}

func (r *scoutingRepository) All(ctx context.Context) ([]models.ScoutingEntry, error) {
	log := logger.FromContext(ctx).WithPrefix("scouting_repo")
	log.Debug("fetching all scouting entries")

	rows, err := r.db.QueryContext(ctx, `
SELECT `+scoutingColumns+`
FROM scouting_entries
ORDER BY match_number, team_number
`)
	if err != nil {
		log.Error("failed to query entries: %v", err)
		return nil, err
	}
	defer rows.Close()

	var entries []models.ScoutingEntry
	for rows.Next() {
		e, err := scanEntry(rows.Scan)
		if err != nil {
			log.Error("failed to scan entry row: %v", err)
			return nil, err
		}
		entries = append(entries, e)
	}
	log.Debug("found %d entries", len(entries))
	return entries, rows.Err()
}

func (r *scoutingRepository) List(ctx context.Context, filter models.EntryFilter) ([]models.ScoutingEntry, error) {
	log := logger.FromContext(ctx).WithPrefix("scouting_repo")
	log.Debug("listing entries: team=%d, match=%d, alliance=%s",
		filter.TeamNumber, filter.MatchNumber, filter.Alliance)

	query := sqlBuilder.Select(
		"id", "match_number", "team_number", "alliance", "scout_name",
		"auto_l1", "auto_l2", "auto_l3", "auto_l4", "auto_remove_algae", "left_starting_zone",
		"l1", "l2", "l3", "l4", "remove_algae", "defensive_pins", "processor_score", "net_score",
		"climb_option", "notes", "created_at",
	).From("scouting_entries")

	if filter.TeamNumber != 0 {
		query = query.Where(squirrel.Eq{"team_number": filter.TeamNumber})
	}
	if filter.MatchNumber != 0 {
		query = query.Where(squirrel.Eq{"match_number": filter.MatchNumber})
	}
	if filter.Alliance != "" {
		query = query.Where(squirrel.Eq{"alliance": filter.Alliance})
	}

	query = query.OrderBy("match_number ASC")

	limit := filter.Limit
	if limit <= 0 {
		limit = 500
	}
	offset := filter.Offset
	if offset < 0 {
		offset = 0
	}
	query = query.Limit(uint64(limit)).Offset(uint64(offset))

	sqlStr, args, err := query.ToSql()
	if err != nil {
		log.Error("failed to build query: %v", err)
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		log.Error("failed to list entries: %v", err)
		return nil, err
	}
	defer rows.Close()

	var entries []models.ScoutingEntry
	for rows.Next() {
		e, err := scanEntry(rows.Scan)
		if err != nil {
			log.Error("failed to scan entry row: %v", err)
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (r *scoutingRepository) TeamNumbers(ctx context.Context) ([]int, error) {
	log := logger.FromContext(ctx).WithPrefix("scouting_repo")
	log.Debug("fetching distinct team numbers")

	rows, err := r.db.QueryContext(ctx, `
SELECT DISTINCT team_number
FROM scouting_entries
ORDER BY team_number
`)
	if err != nil {
		log.Error("failed to query team numbers: %v", err)
		return nil, err
	}
	defer rows.Close()

	var teams []int
	for rows.Next() {
		var n int
		if err := rows.Scan(&n); err != nil {
			log.Error("failed to scan team number: %v", err)
			return nil, err
		}
		teams = append(teams, n)
	}
	return teams, rows.Err()
}

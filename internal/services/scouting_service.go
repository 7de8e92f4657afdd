package services

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/ExcaliDevBot/ExcaliStrategy/internal/errors"
	"github.com/ExcaliDevBot/ExcaliStrategy/internal/jobs"
	"github.com/ExcaliDevBot/ExcaliStrategy/internal/logger"
	"github.com/ExcaliDevBot/ExcaliStrategy/internal/models"
	"github.com/ExcaliDevBot/ExcaliStrategy/internal/repository"
	"github.com/ExcaliDevBot/ExcaliStrategy/internal/scouting"
)

// ImportResult summarizes a bulk import run.
type ImportResult struct {
	Imported int      `json:"imported"`
	Skipped  int      `json:"skipped"`
	Teams    []int    `json:"teams"`
	Problems []string `json:"problems,omitempty"`
}

// ScoutingService handles scouting entry intake and bulk import
type ScoutingService interface {
	Submit(ctx context.Context, entry models.ScoutingEntry) (*models.ScoutingEntry, error)
	List(ctx context.Context, filter models.EntryFilter) ([]models.ScoutingEntry, error)
	ImportTSV(ctx context.Context, r io.Reader) (*ImportResult, error)
}

type scoutingService struct {
	scoutingRepo repository.ScoutingRepository
	queue        jobs.JobQueue
}

// NewScoutingService creates a new ScoutingService
func NewScoutingService(scoutingRepo repository.ScoutingRepository, queue jobs.JobQueue) ScoutingService {
	return &scoutingService{scoutingRepo: scoutingRepo, queue: queue}
}

func validateEntry(entry models.ScoutingEntry) *errors.AppError {
	if entry.MatchNumber <= 0 {
		return errors.NewValidationError("match_number", "must be a positive integer")
	}
	if entry.TeamNumber <= 0 {
		return errors.NewValidationError("team_number", "must be a positive integer")
	}
	switch entry.ClimbOption {
	case "", models.ClimbDeep, models.ClimbShallow, models.ClimbParked:
	default:
		return errors.NewValidationError("climb_option", "must be DEEP, SHALLOW, or PARKED")
	}
	return nil
}

func (s *scoutingService) Submit(ctx context.Context, entry models.ScoutingEntry) (*models.ScoutingEntry, error) {
	log := logger.FromContext(ctx)
	log.Debug("submitting entry: match=%d, team=%d", entry.MatchNumber, entry.TeamNumber)

	if err := validateEntry(entry); err != nil {
		return nil, err
	}

	id, err := s.scoutingRepo.Insert(ctx, entry)
	if err != nil {
		log.Error("failed to insert scouting entry: %v", err)
		return nil, errors.NewInternalError(err)
	}
	entry.ID = id

	if err := s.queue.EnqueueAggregation(entry.TeamNumber); err != nil {
		// Intake succeeded; the stale stats get fixed by the next run.
		log.Warn("failed to enqueue aggregation for team %d: %v", entry.TeamNumber, err)
	}

	log.Info("recorded entry %s", scouting.RecordKey{Match: entry.MatchNumber, Team: entry.TeamNumber})
	return &entry, nil
}

func (s *scoutingService) List(ctx context.Context, filter models.EntryFilter) ([]models.ScoutingEntry, error) {
	entries, err := s.scoutingRepo.List(ctx, filter)
	if err != nil {
		logger.FromContext(ctx).Error("failed to list scouting entries: %v", err)
		return nil, errors.NewInternalError(err)
	}
	return entries, nil
}

// numeric coerces a TSV cell into an optional counter. Empty and malformed
// cells become nil so they stay out of average denominators; malformed cells
// also get a diagnostic.
func numeric(cell string, column string, line int, problems *[]string) *float64 {
	cell = strings.TrimSpace(cell)
	if cell == "" {
		return nil
	}
	v, err := strconv.ParseFloat(cell, 64)
	if err != nil {
		*problems = append(*problems, fmt.Sprintf("line %d: %s %q is not numeric, treated as unrecorded", line, column, cell))
		return nil
	}
	return &v
}

// ImportTSV ingests the spreadsheet export layout: one header row, then one
// row per match/team observation. Rows that cannot be keyed are skipped with
// a diagnostic; everything else is upserted and aggregation is enqueued once
// per team.
func (s *scoutingService) ImportTSV(ctx context.Context, r io.Reader) (*ImportResult, error) {
	log := logger.FromContext(ctx)
	log.Info("starting TSV import")

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	if !scanner.Scan() {
		return nil, errors.NewBadRequestError("import data is empty")
	}
	columns := strings.Split(scanner.Text(), "\t")
	index := make(map[string]int, len(columns))
	for i, name := range columns {
		index[strings.TrimSpace(name)] = i
	}
	for _, required := range []string{"Match", "Team"} {
		if _, ok := index[required]; !ok {
			return nil, errors.NewBadRequestError(fmt.Sprintf("import data is missing the %s column", required))
		}
	}

	cell := func(row []string, name string) string {
		i, ok := index[name]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	result := &ImportResult{}
	teamSet := make(map[int]bool)
	line := 1

	for scanner.Scan() {
		line++
		text := scanner.Text()
		if strings.TrimSpace(text) == "" {
			continue
		}
		row := strings.Split(text, "\t")

		// The original export keys rows as M<match>T<team>; going through
		// the same key type rejects rows a substring match would let pass.
		key, err := scouting.ParseRecordKey(fmt.Sprintf("M%sT%s", cell(row, "Match"), cell(row, "Team")))
		if err != nil {
			result.Skipped++
			result.Problems = append(result.Problems, fmt.Sprintf("line %d: %v", line, err))
			continue
		}

		entry := models.ScoutingEntry{
			MatchNumber:      key.Match,
			TeamNumber:       key.Team,
			Alliance:         cell(row, "Alliance"),
			ScoutName:        cell(row, "Name"),
			AutoL1:           numeric(cell(row, "autoL1"), "autoL1", line, &result.Problems),
			AutoL2:           numeric(cell(row, "autoL2"), "autoL2", line, &result.Problems),
			AutoL3:           numeric(cell(row, "autoL3"), "autoL3", line, &result.Problems),
			AutoL4:           numeric(cell(row, "autoL4"), "autoL4", line, &result.Problems),
			AutoRemoveAlgae:  numeric(cell(row, "autoRemoveAlgae"), "autoRemoveAlgae", line, &result.Problems),
			LeftStartingZone: strings.EqualFold(cell(row, "leftStartingZone"), "TRUE"),
			L1:               numeric(cell(row, "L1"), "L1", line, &result.Problems),
			L2:               numeric(cell(row, "L2"), "L2", line, &result.Problems),
			L3:               numeric(cell(row, "L3"), "L3", line, &result.Problems),
			L4:               numeric(cell(row, "L4"), "L4", line, &result.Problems),
			RemoveAlgae:      numeric(cell(row, "removeAlgae"), "removeAlgae", line, &result.Problems),
			DefensivePins:    numeric(cell(row, "defensivePins"), "defensivePins", line, &result.Problems),
			ProcessorScore:   numeric(cell(row, "processorScore"), "processorScore", line, &result.Problems),
			NetScore:         numeric(cell(row, "netScore"), "netScore", line, &result.Problems),
			ClimbOption:      strings.ToUpper(cell(row, "climbOption")),
		}
		if err := validateEntry(entry); err != nil {
			result.Skipped++
			result.Problems = append(result.Problems, fmt.Sprintf("line %d: %s", line, err.Message))
			continue
		}

		if err := s.scoutingRepo.Upsert(ctx, entry); err != nil {
			log.Error("failed to upsert entry %s: %v", key, err)
			return nil, errors.NewInternalError(err)
		}
		result.Imported++
		teamSet[key.Team] = true
	}
	if err := scanner.Err(); err != nil {
		log.Error("failed to read import data: %v", err)
		return nil, errors.NewInternalError(err)
	}

	for team := range teamSet {
		result.Teams = append(result.Teams, team)
	}
	sort.Ints(result.Teams)
	for _, team := range result.Teams {
		if err := s.queue.EnqueueAggregation(team); err != nil {
			log.Warn("failed to enqueue aggregation for team %d: %v", team, err)
		}
	}

	log.Info("import complete: %d imported, %d skipped, %d teams", result.Imported, result.Skipped, len(result.Teams))
	return result, nil
}

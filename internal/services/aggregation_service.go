package services

import (
	"context"
	"sync"
	"time"

	"github.com/ExcaliDevBot/ExcaliStrategy/internal/errors"
	"github.com/ExcaliDevBot/ExcaliStrategy/internal/logger"
	"github.com/ExcaliDevBot/ExcaliStrategy/internal/models"
	"github.com/ExcaliDevBot/ExcaliStrategy/internal/repository"
	"github.com/ExcaliDevBot/ExcaliStrategy/internal/scouting"
)

// AggregationService recomputes team statistics from raw scouting entries
type AggregationService interface {
	AggregateTeam(ctx context.Context, teamNumber int) error
	AggregateAll(ctx context.Context) error
}

type aggregationService struct {
	scoutingRepo repository.ScoutingRepository
	statsRepo    repository.StatsRepository

	// Serializes concurrent recomputes per team so two runs for the same
	// team cannot interleave their read and write phases.
	mu    sync.Mutex
	locks map[int]*sync.Mutex
}

// NewAggregationService creates a new AggregationService
func NewAggregationService(scoutingRepo repository.ScoutingRepository, statsRepo repository.StatsRepository) AggregationService {
	return &aggregationService{
		scoutingRepo: scoutingRepo,
		statsRepo:    statsRepo,
		locks:        make(map[int]*sync.Mutex),
	}
}

func (s *aggregationService) teamLock(teamNumber int) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	lock, ok := s.locks[teamNumber]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[teamNumber] = lock
	}
	return lock
}

// buildRecords keys each entry by its match/team pair, the shape the
// aggregation core selects from.
func buildRecords(entries []models.ScoutingEntry) map[scouting.RecordKey]models.ScoutingEntry {
	records := make(map[scouting.RecordKey]models.ScoutingEntry, len(entries))
	for _, e := range entries {
		records[scouting.RecordKey{Match: e.MatchNumber, Team: e.TeamNumber}] = e
	}
	return records
}

func (s *aggregationService) AggregateTeam(ctx context.Context, teamNumber int) error {
	log := logger.FromContext(ctx)
	log.Debug("aggregating team %d", teamNumber)

	if teamNumber <= 0 {
		return errors.NewValidationError("team_number", "must be a positive integer")
	}

	lock := s.teamLock(teamNumber)
	lock.Lock()
	defer lock.Unlock()

	start := time.Now()

	entries, err := s.scoutingRepo.All(ctx)
	if err != nil {
		log.Error("failed to load scouting entries: %v", err)
		return errors.NewInternalError(err)
	}

	stats, scores, ok := scouting.Aggregate(buildRecords(entries), teamNumber)
	if !ok {
		// No scouting data at all: leave whatever was computed before
		// untouched instead of wiping it with zeros.
		log.Warn("no scouting entries exist, skipping stats write for team %d", teamNumber)
		return nil
	}
	stats.ComputedAt = time.Now().UTC()

	if err := s.statsRepo.SaveAggregation(ctx, stats, scores); err != nil {
		log.Error("failed to save aggregation for team %d: %v", teamNumber, err)
		return errors.NewInternalError(err)
	}

	log.Info("aggregated team %d: %d matches, trend=%s, took %v",
		teamNumber, stats.MatchesPlayed, stats.PerformanceTrend, time.Since(start))
	return nil
}

func (s *aggregationService) AggregateAll(ctx context.Context) error {
	log := logger.FromContext(ctx)
	log.Info("aggregating all scouted teams")

	teams, err := s.scoutingRepo.TeamNumbers(ctx)
	if err != nil {
		log.Error("failed to load team numbers: %v", err)
		return errors.NewInternalError(err)
	}

	var failed int
	for _, team := range teams {
		if ctx.Err() != nil {
			log.Warn("aggregation cancelled: %v", ctx.Err())
			return ctx.Err()
		}
		if err := s.AggregateTeam(ctx, team); err != nil {
			log.Error("aggregation failed for team %d: %v", team, err)
			failed++
		}
	}

	log.Info("aggregated %d teams (%d failed)", len(teams)-failed, failed)
	return nil
}

package services

import (
	"context"
	stderrors "errors"
	"sort"

	"github.com/ExcaliDevBot/ExcaliStrategy/internal/errors"
	"github.com/ExcaliDevBot/ExcaliStrategy/internal/logger"
	"github.com/ExcaliDevBot/ExcaliStrategy/internal/models"
	"github.com/ExcaliDevBot/ExcaliStrategy/internal/repository"
	"github.com/ExcaliDevBot/ExcaliStrategy/internal/scouting"
	"github.com/ExcaliDevBot/ExcaliStrategy/internal/statbotics"
	"github.com/ExcaliDevBot/ExcaliStrategy/internal/tba"
)

// TeamDataService handles team listing and performance read paths
type TeamDataService interface {
	ListTeams(ctx context.Context) ([]models.Team, error)
	GetTeamPerformance(ctx context.Context, teamNumber int) (*models.TeamPerformanceData, error)
	GetAllTeamPerformance(ctx context.Context) ([]models.TeamPerformanceData, error)
	GetMatchScores(ctx context.Context, teamNumber int) ([]models.MatchScore, error)
	GetExternalPerformance(ctx context.Context, teamNumber int) (*models.TeamPerformanceData, error)
	GetEventSchedule(ctx context.Context) ([]tba.Match, error)
	GetTeamSchedule(ctx context.Context, teamNumber int) ([]tba.Match, error)
}

type teamDataService struct {
	statsRepo    repository.StatsRepository
	scoutingRepo repository.ScoutingRepository
	tbaClient    tba.ClientInterface
	statClient   statbotics.ClientInterface
	eventKey     string
}

// NewTeamDataService creates a new TeamDataService
func NewTeamDataService(
	statsRepo repository.StatsRepository,
	scoutingRepo repository.ScoutingRepository,
	tbaClient tba.ClientInterface,
	statClient statbotics.ClientInterface,
	eventKey string,
) TeamDataService {
	return &teamDataService{
		statsRepo:    statsRepo,
		scoutingRepo: scoutingRepo,
		tbaClient:    tbaClient,
		statClient:   statClient,
		eventKey:     eventKey,
	}
}

// ListTeams merges the event roster with teams that only exist in scouting
// data, so a team scouted before TBA lists it still shows up.
func (s *teamDataService) ListTeams(ctx context.Context) ([]models.Team, error) {
	log := logger.FromContext(ctx)
	log.Debug("listing teams for event %s", s.eventKey)

	seen := make(map[int]bool)
	var teams []models.Team

	roster, err := s.tbaClient.EventTeams(ctx, s.eventKey)
	if err != nil {
		log.Warn("event roster unavailable, falling back to scouted teams: %v", err)
	} else {
		for _, t := range roster {
			seen[t.TeamNumber] = true
			teams = append(teams, t)
		}
	}

	scouted, err := s.scoutingRepo.TeamNumbers(ctx)
	if err != nil {
		log.Error("failed to load scouted team numbers: %v", err)
		return nil, errors.NewInternalError(err)
	}
	for _, n := range scouted {
		if !seen[n] {
			teams = append(teams, models.Team{TeamNumber: n, TeamName: "Unknown Team"})
		}
	}

	sort.Slice(teams, func(i, j int) bool { return teams[i].TeamNumber < teams[j].TeamNumber })
	return teams, nil
}

func (s *teamDataService) GetTeamPerformance(ctx context.Context, teamNumber int) (*models.TeamPerformanceData, error) {
	log := logger.FromContext(ctx)
	log.Debug("getting performance data for team %d", teamNumber)

	if teamNumber <= 0 {
		return nil, errors.NewValidationError("team_number", "must be a positive integer")
	}

	stats, err := s.statsRepo.TeamStats(ctx, teamNumber)
	if err != nil {
		log.Error("failed to load team stats: %v", err)
		return nil, errors.NewInternalError(err)
	}
	if stats == nil {
		return nil, errors.NewNoDataError("team stats", teamNumber)
	}

	return &models.TeamPerformanceData{
		TeamNumber:        teamNumber,
		Stats:             *stats,
		CalculatedMetrics: scouting.DeriveMetrics(*stats),
	}, nil
}

func (s *teamDataService) GetAllTeamPerformance(ctx context.Context) ([]models.TeamPerformanceData, error) {
	log := logger.FromContext(ctx)

	all, err := s.statsRepo.AllTeamStats(ctx)
	if err != nil {
		log.Error("failed to load all team stats: %v", err)
		return nil, errors.NewInternalError(err)
	}

	out := make([]models.TeamPerformanceData, 0, len(all))
	for _, stats := range all {
		out = append(out, models.TeamPerformanceData{
			TeamNumber:        stats.TeamNumber,
			Stats:             stats,
			CalculatedMetrics: scouting.DeriveMetrics(stats),
		})
	}
	log.Debug("loaded performance data for %d teams", len(out))
	return out, nil
}

func (s *teamDataService) GetMatchScores(ctx context.Context, teamNumber int) ([]models.MatchScore, error) {
	log := logger.FromContext(ctx)

	if teamNumber <= 0 {
		return nil, errors.NewValidationError("team_number", "must be a positive integer")
	}

	scores, err := s.statsRepo.MatchScores(ctx, teamNumber)
	if err != nil {
		log.Error("failed to load match scores for team %d: %v", teamNumber, err)
		return nil, errors.NewInternalError(err)
	}
	return scores, nil
}

// GetExternalPerformance fetches the Statbotics view of a team, shaped like
// internally aggregated data but carrying provenance.
func (s *teamDataService) GetExternalPerformance(ctx context.Context, teamNumber int) (*models.TeamPerformanceData, error) {
	log := logger.FromContext(ctx)
	log.Debug("getting external performance for team %d at %s", teamNumber, s.eventKey)

	if teamNumber <= 0 {
		return nil, errors.NewValidationError("team_number", "must be a positive integer")
	}

	data, err := s.statClient.TeamPerformance(ctx, teamNumber, s.eventKey)
	if err != nil {
		if stderrors.Is(err, statbotics.ErrNoData) {
			return nil, errors.NewNoDataError("external stats", teamNumber)
		}
		log.Error("statbotics lookup failed: %v", err)
		return nil, errors.NewUpstreamError("statbotics", err)
	}
	return data, nil
}

// GetEventSchedule returns the event's match schedule as published by TBA.
func (s *teamDataService) GetEventSchedule(ctx context.Context) ([]tba.Match, error) {
	matches, err := s.tbaClient.EventMatches(ctx, s.eventKey)
	if err != nil {
		logger.FromContext(ctx).Error("event schedule lookup failed: %v", err)
		return nil, errors.NewUpstreamError("tba", err)
	}
	return matches, nil
}

func (s *teamDataService) GetTeamSchedule(ctx context.Context, teamNumber int) ([]tba.Match, error) {
	if teamNumber <= 0 {
		return nil, errors.NewValidationError("team_number", "must be a positive integer")
	}

	matches, err := s.tbaClient.TeamMatches(ctx, s.eventKey, teamNumber)
	if err != nil {
		logger.FromContext(ctx).Error("team schedule lookup failed for %d: %v", teamNumber, err)
		return nil, errors.NewUpstreamError("tba", err)
	}
	return matches, nil
}

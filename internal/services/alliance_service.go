package services

import (
	"context"

	"github.com/ExcaliDevBot/ExcaliStrategy/internal/errors"
	"github.com/ExcaliDevBot/ExcaliStrategy/internal/logger"
	"github.com/ExcaliDevBot/ExcaliStrategy/internal/models"
	"github.com/ExcaliDevBot/ExcaliStrategy/internal/scouting"
)

// AllianceService compares two prospective alliances using scouted data
type AllianceService interface {
	Compare(ctx context.Context, allianceTeams, opponentTeams []int) (*models.ComparisonReport, error)
}

type allianceService struct {
	teamData TeamDataService
}

// NewAllianceService creates a new AllianceService
func NewAllianceService(teamData TeamDataService) AllianceService {
	return &allianceService{teamData: teamData}
}

// validateSnapshot rejects malformed alliance selections before any data is
// loaded: at most three teams per side and no team on both sides.
func validateSnapshot(allianceTeams, opponentTeams []int) *errors.AppError {
	if len(allianceTeams) > 3 {
		return errors.NewValidationError("alliance_teams", "at most 3 teams per alliance")
	}
	if len(opponentTeams) > 3 {
		return errors.NewValidationError("opponent_teams", "at most 3 teams per alliance")
	}

	onAlliance := make(map[int]bool, len(allianceTeams))
	for _, t := range allianceTeams {
		if t <= 0 {
			return errors.NewValidationError("alliance_teams", "team numbers must be positive integers")
		}
		onAlliance[t] = true
	}
	for _, t := range opponentTeams {
		if t <= 0 {
			return errors.NewValidationError("opponent_teams", "team numbers must be positive integers")
		}
		if onAlliance[t] {
			return errors.NewValidationError("opponent_teams", "a team cannot appear on both alliances")
		}
	}
	return nil
}

// loadSide fetches performance data for one side, skipping teams without
// stats: an unscouted pick shrinks the summary instead of failing it.
func (s *allianceService) loadSide(ctx context.Context, teams []int) ([]models.TeamPerformanceData, error) {
	log := logger.FromContext(ctx)

	var out []models.TeamPerformanceData
	for _, team := range teams {
		data, err := s.teamData.GetTeamPerformance(ctx, team)
		if err != nil {
			if appErr, ok := err.(*errors.AppError); ok && appErr.Code == errors.ErrCodeNoData {
				log.Warn("no stats for team %d, excluding from comparison", team)
				continue
			}
			return nil, err
		}
		out = append(out, *data)
	}
	return out, nil
}

func (s *allianceService) Compare(ctx context.Context, allianceTeams, opponentTeams []int) (*models.ComparisonReport, error) {
	log := logger.FromContext(ctx)
	log.Debug("comparing alliances: %v vs %v", allianceTeams, opponentTeams)

	if err := validateSnapshot(allianceTeams, opponentTeams); err != nil {
		return nil, err
	}

	alliance, err := s.loadSide(ctx, allianceTeams)
	if err != nil {
		return nil, err
	}
	opponent, err := s.loadSide(ctx, opponentTeams)
	if err != nil {
		return nil, err
	}

	report := scouting.CompareAlliances(alliance, opponent)
	log.Info("comparison complete: differential=%.1f, advantage=%s",
		report.ScoringDifferential, report.Advantage)
	return &report, nil
}

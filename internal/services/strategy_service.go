package services

import (
	"context"

	"github.com/ExcaliDevBot/ExcaliStrategy/internal/ai"
	"github.com/ExcaliDevBot/ExcaliStrategy/internal/errors"
	"github.com/ExcaliDevBot/ExcaliStrategy/internal/logger"
	"github.com/ExcaliDevBot/ExcaliStrategy/internal/models"
	"github.com/ExcaliDevBot/ExcaliStrategy/internal/repository"
	"github.com/ExcaliDevBot/ExcaliStrategy/internal/scouting"
)

// StrategyService handles per-match strategy notes and generated insights
type StrategyService interface {
	Create(ctx context.Context, strategy models.MatchStrategy) (*models.MatchStrategy, error)
	Update(ctx context.Context, strategy models.MatchStrategy) error
	Get(ctx context.Context, id int64) (*models.MatchStrategy, error)
	List(ctx context.Context) ([]models.MatchStrategy, error)
	ListByMatch(ctx context.Context, matchNumber int) ([]models.MatchStrategy, error)
	GenerateInsights(ctx context.Context, id int64) (string, error)
}

type strategyService struct {
	strategyRepo repository.StrategyRepository
	teamData     TeamDataService
	aiClient     ai.ClientInterface
}

// NewStrategyService creates a new StrategyService
func NewStrategyService(strategyRepo repository.StrategyRepository, teamData TeamDataService, aiClient ai.ClientInterface) StrategyService {
	return &strategyService{
		strategyRepo: strategyRepo,
		teamData:     teamData,
		aiClient:     aiClient,
	}
}

func validateStrategy(strategy models.MatchStrategy) *errors.AppError {
	if strategy.MatchNumber <= 0 {
		return errors.NewValidationError("match_number", "must be a positive integer")
	}
	if err := validateSnapshot(strategy.AllianceTeams, strategy.OpponentTeams); err != nil {
		return err
	}
	return nil
}

func (s *strategyService) Create(ctx context.Context, strategy models.MatchStrategy) (*models.MatchStrategy, error) {
	log := logger.FromContext(ctx)
	log.Debug("creating strategy for match %d", strategy.MatchNumber)

	if err := validateStrategy(strategy); err != nil {
		return nil, err
	}
	if strategy.MatchType == "" {
		strategy.MatchType = "qualification"
	}

	id, err := s.strategyRepo.Insert(ctx, strategy)
	if err != nil {
		log.Error("failed to insert strategy: %v", err)
		return nil, errors.NewInternalError(err)
	}

	created, err := s.strategyRepo.Get(ctx, id)
	if err != nil {
		log.Error("failed to reload strategy %d: %v", id, err)
		return nil, errors.NewInternalError(err)
	}
	return created, nil
}

func (s *strategyService) Update(ctx context.Context, strategy models.MatchStrategy) error {
	log := logger.FromContext(ctx)
	log.Debug("updating strategy %d", strategy.ID)

	if strategy.ID <= 0 {
		return errors.NewValidationError("id", "must be a positive integer")
	}
	if err := validateStrategy(strategy); err != nil {
		return err
	}

	existing, err := s.strategyRepo.Get(ctx, strategy.ID)
	if err != nil {
		log.Error("failed to load strategy %d: %v", strategy.ID, err)
		return errors.NewInternalError(err)
	}
	if existing == nil {
		return errors.NewNotFoundError("strategy", strategy.ID)
	}

	if err := s.strategyRepo.Update(ctx, strategy); err != nil {
		log.Error("failed to update strategy %d: %v", strategy.ID, err)
		return errors.NewInternalError(err)
	}
	return nil
}

func (s *strategyService) Get(ctx context.Context, id int64) (*models.MatchStrategy, error) {
	log := logger.FromContext(ctx)

	strategy, err := s.strategyRepo.Get(ctx, id)
	if err != nil {
		log.Error("failed to load strategy %d: %v", id, err)
		return nil, errors.NewInternalError(err)
	}
	if strategy == nil {
		return nil, errors.NewNotFoundError("strategy", id)
	}
	return strategy, nil
}

func (s *strategyService) List(ctx context.Context) ([]models.MatchStrategy, error) {
	strategies, err := s.strategyRepo.List(ctx)
	if err != nil {
		logger.FromContext(ctx).Error("failed to list strategies: %v", err)
		return nil, errors.NewInternalError(err)
	}
	return strategies, nil
}

func (s *strategyService) ListByMatch(ctx context.Context, matchNumber int) ([]models.MatchStrategy, error) {
	if matchNumber <= 0 {
		return nil, errors.NewValidationError("match_number", "must be a positive integer")
	}

	strategies, err := s.strategyRepo.ListByMatch(ctx, matchNumber)
	if err != nil {
		logger.FromContext(ctx).Error("failed to list strategies for match %d: %v", matchNumber, err)
		return nil, errors.NewInternalError(err)
	}
	return strategies, nil
}

// summaries renders the deterministic performance text for each team that
// has data; teams without stats are simply omitted from the prompt.
func (s *strategyService) summaries(ctx context.Context, teams []int) ([]string, []models.TeamPerformanceData) {
	log := logger.FromContext(ctx)

	var texts []string
	var data []models.TeamPerformanceData
	for _, team := range teams {
		perf, err := s.teamData.GetTeamPerformance(ctx, team)
		if err != nil {
			log.Warn("no performance data for team %d: %v", team, err)
			continue
		}
		texts = append(texts, scouting.GenerateTeamSummary(*perf))
		data = append(data, *perf)
	}
	return texts, data
}

// GenerateInsights builds the strategy prompt from scouted performance data
// and stores the model's recommendations on the strategy.
func (s *strategyService) GenerateInsights(ctx context.Context, id int64) (string, error) {
	log := logger.FromContext(ctx)
	log.Debug("generating insights for strategy %d", id)

	strategy, err := s.Get(ctx, id)
	if err != nil {
		return "", err
	}

	allianceTexts, allianceData := s.summaries(ctx, strategy.AllianceTeams)
	opponentTexts, opponentData := s.summaries(ctx, strategy.OpponentTeams)
	comparison := scouting.RenderComparison(scouting.CompareAlliances(allianceData, opponentData))

	insights, err := s.aiClient.GenerateStrategyInsights(ctx, ai.StrategyInput{
		MatchNumber:        strategy.MatchNumber,
		MatchType:          strategy.MatchType,
		AllianceColor:      strategy.AllianceColor,
		AllianceTeams:      strategy.AllianceTeams,
		OpponentTeams:      strategy.OpponentTeams,
		AllianceSummaries:  allianceTexts,
		OpponentSummaries:  opponentTexts,
		AllianceComparison: comparison,
	})
	if err != nil {
		log.Error("insight generation failed: %v", err)
		return "", errors.NewUpstreamError("openrouter", err)
	}

	if err := s.strategyRepo.SetInsights(ctx, id, insights); err != nil {
		log.Error("failed to store insights for strategy %d: %v", id, err)
		return "", errors.NewInternalError(err)
	}

	log.Info("stored insights for strategy %d (%d bytes)", id, len(insights))
	return insights, nil
}

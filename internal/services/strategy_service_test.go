package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/ExcaliDevBot/ExcaliStrategy/internal/ai"
	"github.com/ExcaliDevBot/ExcaliStrategy/internal/errors"
	"github.com/ExcaliDevBot/ExcaliStrategy/internal/models"
	"github.com/ExcaliDevBot/ExcaliStrategy/internal/testutil/mocks"
)

func strategyFixture() models.MatchStrategy {
	return models.MatchStrategy{
		ID:            1,
		MatchNumber:   12,
		MatchType:     "qualification",
		AllianceColor: "red",
		AllianceTeams: []int{6738},
		OpponentTeams: []int{1111},
	}
}

func TestCreateStrategy(t *testing.T) {
	strategyRepo := new(mocks.MockStrategyRepository)
	svc := NewStrategyService(strategyRepo, nil, nil)

	input := strategyFixture()
	input.ID = 0
	stored := strategyFixture()

	strategyRepo.On("Insert", mock.Anything, mock.Anything).Return(int64(1), nil)
	strategyRepo.On("Get", mock.Anything, int64(1)).Return(&stored, nil)

	created, err := svc.Create(context.Background(), input)
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)
}

func TestCreateStrategyValidation(t *testing.T) {
	svc := NewStrategyService(new(mocks.MockStrategyRepository), nil, nil)

	bad := strategyFixture()
	bad.MatchNumber = 0
	_, err := svc.Create(context.Background(), bad)
	require.Error(t, err)

	overlapping := strategyFixture()
	overlapping.OpponentTeams = []int{6738}
	_, err = svc.Create(context.Background(), overlapping)
	require.Error(t, err)
	appErr, ok := err.(*errors.AppError)
	require.True(t, ok)
	assert.Equal(t, errors.ErrCodeValidation, appErr.Code)
}

func TestGetStrategyNotFound(t *testing.T) {
	strategyRepo := new(mocks.MockStrategyRepository)
	svc := NewStrategyService(strategyRepo, nil, nil)

	strategyRepo.On("Get", mock.Anything, int64(404)).Return(nil, nil)

	_, err := svc.Get(context.Background(), 404)
	require.Error(t, err)
	appErr, ok := err.(*errors.AppError)
	require.True(t, ok)
	assert.Equal(t, errors.ErrCodeNotFound, appErr.Code)
}

func TestGenerateInsights(t *testing.T) {
	strategyRepo := new(mocks.MockStrategyRepository)
	statsRepo := new(mocks.MockStatsRepository)
	aiClient := new(mocks.MockAIClient)

	teamData := NewTeamDataService(statsRepo, new(mocks.MockScoutingRepository),
		new(mocks.MockTBAClient), new(mocks.MockStatboticsClient), "2025iscmp")
	svc := NewStrategyService(strategyRepo, teamData, aiClient)

	stored := strategyFixture()
	strategyRepo.On("Get", mock.Anything, int64(1)).Return(&stored, nil)
	statsRepo.On("TeamStats", mock.Anything, 6738).Return(&models.TeamStats{
		TeamNumber: 6738, L4: 5, MatchesPlayed: 8, PerformanceTrend: models.TrendUpward,
	}, nil)
	statsRepo.On("TeamStats", mock.Anything, 1111).Return(nil, nil)

	var input ai.StrategyInput
	aiClient.On("GenerateStrategyInsights", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { input = args.Get(1).(ai.StrategyInput) }).
		Return("Play defense on 1111.", nil)
	strategyRepo.On("SetInsights", mock.Anything, int64(1), "Play defense on 1111.").Return(nil)

	insights, err := svc.GenerateInsights(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Play defense on 1111.", insights)

	assert.Equal(t, 12, input.MatchNumber)
	require.Len(t, input.AllianceSummaries, 1)
	assert.Contains(t, input.AllianceSummaries[0], "6738")
	// Team 1111 has no stats, so the opponent side has no summaries.
	assert.Empty(t, input.OpponentSummaries)
	assert.NotEmpty(t, input.AllianceComparison)

	strategyRepo.AssertExpectations(t)
}

func TestGenerateInsightsUpstreamFailure(t *testing.T) {
	strategyRepo := new(mocks.MockStrategyRepository)
	statsRepo := new(mocks.MockStatsRepository)
	aiClient := new(mocks.MockAIClient)

	teamData := NewTeamDataService(statsRepo, new(mocks.MockScoutingRepository),
		new(mocks.MockTBAClient), new(mocks.MockStatboticsClient), "2025iscmp")
	svc := NewStrategyService(strategyRepo, teamData, aiClient)

	stored := strategyFixture()
	strategyRepo.On("Get", mock.Anything, int64(1)).Return(&stored, nil)
	statsRepo.On("TeamStats", mock.Anything, mock.Anything).Return(nil, nil)
	aiClient.On("GenerateStrategyInsights", mock.Anything, mock.Anything).Return("", assert.AnError)

	_, err := svc.GenerateInsights(context.Background(), 1)
	require.Error(t, err)
	appErr, ok := err.(*errors.AppError)
	require.True(t, ok)
	assert.Equal(t, errors.ErrCodeUpstream, appErr.Code)

	strategyRepo.AssertNotCalled(t, "SetInsights", mock.Anything, mock.Anything, mock.Anything)
}

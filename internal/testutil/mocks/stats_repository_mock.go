package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/ExcaliDevBot/ExcaliStrategy/internal/models"
)

// MockStatsRepository is a mock implementation of repository.StatsRepository
type MockStatsRepository struct {
	mock.Mock
}

func (m *MockStatsRepository) TeamStats(ctx context.Context, teamNumber int) (*models.TeamStats, error) {
	args := m.Called(ctx, teamNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.TeamStats), args.Error(1)
}

func (m *MockStatsRepository) AllTeamStats(ctx context.Context) ([]models.TeamStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.TeamStats), args.Error(1)
}

func (m *MockStatsRepository) SaveAggregation(ctx context.Context, stats models.TeamStats, scores []models.MatchScore) error {
	args := m.Called(ctx, stats, scores)
	return args.Error(0)
}

func (m *MockStatsRepository) UpdatePowerRatings(ctx context.Context, teamNumber int, opr, dpr, ccwm float64) error {
	args := m.Called(ctx, teamNumber, opr, dpr, ccwm)
	return args.Error(0)
}

func (m *MockStatsRepository) MatchScores(ctx context.Context, teamNumber int) ([]models.MatchScore, error) {
	args := m.Called(ctx, teamNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.MatchScore), args.Error(1)
}

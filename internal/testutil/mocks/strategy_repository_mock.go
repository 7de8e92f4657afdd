package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/ExcaliDevBot/ExcaliStrategy/internal/models"
)

// MockStrategyRepository is a mock implementation of repository.StrategyRepository
type MockStrategyRepository struct {
	mock.Mock
}

func (m *MockStrategyRepository) Insert(ctx context.Context, strategy models.MatchStrategy) (int64, error) {
	args := m.Called(ctx, strategy)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockStrategyRepository) Update(ctx context.Context, strategy models.MatchStrategy) error {
	args := m.Called(ctx, strategy)
	return args.Error(0)
}

func (m *MockStrategyRepository) Get(ctx context.Context, id int64) (*models.MatchStrategy, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.MatchStrategy), args.Error(1)
}

func (m *MockStrategyRepository) List(ctx context.Context) ([]models.MatchStrategy, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.MatchStrategy), args.Error(1)
}

func (m *MockStrategyRepository) ListByMatch(ctx context.Context, matchNumber int) ([]models.MatchStrategy, error) {
	args := m.Called(ctx, matchNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.MatchStrategy), args.Error(1)
}

func (m *MockStrategyRepository) SetInsights(ctx context.Context, id int64, insights string) error {
	args := m.Called(ctx, id, insights)
	return args.Error(0)
}

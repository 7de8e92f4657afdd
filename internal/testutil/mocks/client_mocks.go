package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/ExcaliDevBot/ExcaliStrategy/internal/ai"
	"github.com/ExcaliDevBot/ExcaliStrategy/internal/models"
	"github.com/ExcaliDevBot/ExcaliStrategy/internal/tba"
)

// MockStatboticsClient is a mock implementation of statbotics.ClientInterface
type MockStatboticsClient struct {
	mock.Mock
}

func (m *MockStatboticsClient) TeamPerformance(ctx context.Context, team int, eventKey string) (*models.TeamPerformanceData, error) {
	args := m.Called(ctx, team, eventKey)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.TeamPerformanceData), args.Error(1)
}

// MockTBAClient is a mock implementation of tba.ClientInterface
type MockTBAClient struct {
	mock.Mock
}

func (m *MockTBAClient) EventTeams(ctx context.Context, eventKey string) ([]models.Team, error) {
	args := m.Called(ctx, eventKey)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Team), args.Error(1)
}

func (m *MockTBAClient) EventMatches(ctx context.Context, eventKey string) ([]tba.Match, error) {
	args := m.Called(ctx, eventKey)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]tba.Match), args.Error(1)
}

func (m *MockTBAClient) TeamMatches(ctx context.Context, eventKey string, teamNumber int) ([]tba.Match, error) {
	args := m.Called(ctx, eventKey, teamNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]tba.Match), args.Error(1)
}

// MockAIClient is a mock implementation of ai.ClientInterface
type MockAIClient struct {
	mock.Mock
}

func (m *MockAIClient) GenerateStrategyInsights(ctx context.Context, input ai.StrategyInput) (string, error) {
	args := m.Called(ctx, input)
	return args.String(0), args.Error(1)
}

// MockJobQueue is a mock implementation of jobs.JobQueue
type MockJobQueue struct {
	mock.Mock
}

func (m *MockJobQueue) EnqueueAggregation(teamNumber int) error {
	args := m.Called(teamNumber)
	return args.Error(0)
}

func (m *MockJobQueue) EnqueueFullAggregation() error {
	args := m.Called()
	return args.Error(0)
}

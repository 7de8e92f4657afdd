package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/ExcaliDevBot/ExcaliStrategy/internal/models"
)

// MockScoutingRepository is a mock implementation of repository.ScoutingRepository
type MockScoutingRepository struct {
	mock.Mock
}

func (m *MockScoutingRepository) Insert(ctx context.Context, entry models.ScoutingEntry) (int64, error) {
	args := m.Called(ctx, entry)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockScoutingRepository) Upsert(ctx context.Context, entry models.ScoutingEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockScoutingRepository) All(ctx context.Context) ([]models.ScoutingEntry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ScoutingEntry), args.Error(1)
}

func (m *MockScoutingRepository) List(ctx context.Context, filter models.EntryFilter) ([]models.ScoutingEntry, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ScoutingEntry), args.Error(1)
}

func (m *MockScoutingRepository) TeamNumbers(ctx context.Context) ([]int, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int), args.Error(1)
}

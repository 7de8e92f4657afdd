package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/ExcaliDevBot/ExcaliStrategy/internal/errors"
	"github.com/ExcaliDevBot/ExcaliStrategy/internal/models"
	"github.com/ExcaliDevBot/ExcaliStrategy/internal/testutil/mocks"
)

func teamDataFixture() (*mocks.MockStatsRepository, TeamDataService) {
	statsRepo := new(mocks.MockStatsRepository)
	teamData := NewTeamDataService(statsRepo, new(mocks.MockScoutingRepository),
		new(mocks.MockTBAClient), new(mocks.MockStatboticsClient), "2025iscmp")
	return statsRepo, teamData
}

func statsWith(team int, l4 float64, climbRate float64) *models.TeamStats {
	return &models.TeamStats{
		TeamNumber:       team,
		L4:               l4,
		ClimbRate:        climbRate,
		MatchesPlayed:    5,
		PerformanceTrend: models.TrendStable,
	}
}

func TestCompareAlliances(t *testing.T) {
	statsRepo, teamData := teamDataFixture()
	svc := NewAllianceService(teamData)

	statsRepo.On("TeamStats", mock.Anything, 6738).Return(statsWith(6738, 8, 90), nil)
	statsRepo.On("TeamStats", mock.Anything, 1234).Return(statsWith(1234, 4, 50), nil)
	statsRepo.On("TeamStats", mock.Anything, 1111).Return(statsWith(1111, 2, 10), nil)

	report, err := svc.Compare(context.Background(), []int{6738, 1234}, []int{1111})
	require.NoError(t, err)

	assert.Len(t, report.Alliance.Teams, 2)
	assert.Len(t, report.Opponent.Teams, 1)
	assert.Equal(t, models.AdvantageAlliance, report.Advantage)
	assert.Greater(t, report.ScoringDifferential, 0.0)
}

func TestCompareSkipsUnscoutedTeams(t *testing.T) {
	statsRepo, teamData := teamDataFixture()
	svc := NewAllianceService(teamData)

	statsRepo.On("TeamStats", mock.Anything, 6738).Return(statsWith(6738, 8, 90), nil)
	statsRepo.On("TeamStats", mock.Anything, 9999).Return(nil, nil)

	report, err := svc.Compare(context.Background(), []int{6738, 9999}, nil)
	require.NoError(t, err)
	assert.Equal(t, []int{6738}, report.Alliance.Teams)
}

func TestCompareValidation(t *testing.T) {
	_, teamData := teamDataFixture()
	svc := NewAllianceService(teamData)

	cases := []struct {
		name     string
		alliance []int
		opponent []int
	}{
		{"too many alliance teams", []int{1, 2, 3, 4}, nil},
		{"too many opponent teams", nil, []int{1, 2, 3, 4}},
		{"duplicate across sides", []int{6738, 1234}, []int{1111, 6738}},
		{"non-positive team", []int{0}, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Compare(context.Background(), tc.alliance, tc.opponent)
			require.Error(t, err)
			appErr, ok := err.(*errors.AppError)
			require.True(t, ok)
			assert.Equal(t, errors.ErrCodeValidation, appErr.Code)
		})
	}
}

func TestCompareEmptySides(t *testing.T) {
	_, teamData := teamDataFixture()
	svc := NewAllianceService(teamData)

	report, err := svc.Compare(context.Background(), nil, nil)
	require.NoError(t, err)
	assert.Equal(t, models.AdvantageEven, report.Advantage)
}

package sqlite_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/ExcaliDevBot/ExcaliStrategy/internal/models"
	"github.com/ExcaliDevBot/ExcaliStrategy/internal/repository"
	"github.com/ExcaliDevBot/ExcaliStrategy/internal/repository/sqlite"
	"github.com/ExcaliDevBot/ExcaliStrategy/internal/testutil"
)

type StatsRepositorySuite struct {
	suite.Suite
	db   *sql.DB
	repo repository.StatsRepository
}

func (s *StatsRepositorySuite) SetupTest() {
	s.db = testutil.NewTestDB(s.T())
	s.repo = sqlite.NewStatsRepository(s.db)
}

func (s *StatsRepositorySuite) TearDownTest() {
	testutil.MustClose(s.T(), s.db)
}

func (s *StatsRepositorySuite) stats(team int) models.TeamStats {
	return models.TeamStats{
		TeamNumber:       team,
		AutoL4:           2.5,
		L4:               5,
		ProcessorScore:   1.5,
		ClimbRate:        66.7,
		ConsistencyRate:  50,
		DefenseRating:    4.2,
		MatchesPlayed:    6,
		PerformanceTrend: models.TrendUpward,
		ComputedAt:       time.Now().UTC(),
	}
}

func (s *StatsRepositorySuite) scores(team int) []models.MatchScore {
	return []models.MatchScore{
		{TeamNumber: team, MatchNumber: 1, AutoScore: 20, TeleopScore: 30, EndgameScore: 12, TotalScore: 62},
		{TeamNumber: team, MatchNumber: 2, AutoScore: 14, TeleopScore: 25, EndgameScore: 0, TotalScore: 39},
	}
}

func (s *StatsRepositorySuite) TestSaveAggregationAndRead() {
	ctx := context.Background()

	err := s.repo.SaveAggregation(ctx, s.stats(6738), s.scores(6738))
	s.Require().NoError(err)

	got, err := s.repo.TeamStats(ctx, 6738)
	s.Require().NoError(err)
	s.Require().NotNil(got)
	s.Equal(2.5, got.AutoL4)
	s.Equal(66.7, got.ClimbRate)
	s.Equal(models.TrendUpward, got.PerformanceTrend)
	s.Equal(6, got.MatchesPlayed)

	scores, err := s.repo.MatchScores(ctx, 6738)
	s.Require().NoError(err)
	s.Require().Len(scores, 2)
	s.Equal(1, scores[0].MatchNumber)
	s.Equal(62.0, scores[0].TotalScore)
}

func (s *StatsRepositorySuite) TestSaveAggregationOverwrites() {
	ctx := context.Background()

	s.Require().NoError(s.repo.SaveAggregation(ctx, s.stats(6738), s.scores(6738)))

	next := s.stats(6738)
	next.L4 = 7
	next.PerformanceTrend = models.TrendDownward
	s.Require().NoError(s.repo.SaveAggregation(ctx, next, []models.MatchScore{
		{TeamNumber: 6738, MatchNumber: 3, AutoScore: 10, TeleopScore: 10, EndgameScore: 0, TotalScore: 20},
	}))

	got, err := s.repo.TeamStats(ctx, 6738)
	s.Require().NoError(err)
	s.Equal(7.0, got.L4)
	s.Equal(models.TrendDownward, got.PerformanceTrend)

	// Previous run's match scores are fully replaced, not merged.
	scores, err := s.repo.MatchScores(ctx, 6738)
	s.Require().NoError(err)
	s.Require().Len(scores, 1)
	s.Equal(3, scores[0].MatchNumber)
}

func (s *StatsRepositorySuite) TestSaveAggregationPreservesPowerRatings() {
	ctx := context.Background()

	s.Require().NoError(s.repo.UpdatePowerRatings(ctx, 6738, 45.2, 12.1, 33.1))
	s.Require().NoError(s.repo.SaveAggregation(ctx, s.stats(6738), nil))

	got, err := s.repo.TeamStats(ctx, 6738)
	s.Require().NoError(err)
	s.Equal(45.2, got.OPR)
	s.Equal(12.1, got.DPR)
	s.Equal(33.1, got.CCWM)
	s.Equal(5.0, got.L4)
}

func (s *StatsRepositorySuite) TestUpdatePowerRatingsCreatesRow() {
	ctx := context.Background()

	s.Require().NoError(s.repo.UpdatePowerRatings(ctx, 1234, 10, 20, -10))

	got, err := s.repo.TeamStats(ctx, 1234)
	s.Require().NoError(err)
	s.Require().NotNil(got)
	s.Equal(10.0, got.OPR)
	s.Equal(-10.0, got.CCWM)
}

func (s *StatsRepositorySuite) TestTeamStatsNotFound() {
	got, err := s.repo.TeamStats(context.Background(), 9999)
	s.Require().NoError(err)
	s.Nil(got)
}

func (s *StatsRepositorySuite) TestAllTeamStatsOrdered() {
	ctx := context.Background()

	s.Require().NoError(s.repo.SaveAggregation(ctx, s.stats(6738), nil))
	s.Require().NoError(s.repo.SaveAggregation(ctx, s.stats(1234), nil))

	all, err := s.repo.AllTeamStats(ctx)
	s.Require().NoError(err)
	s.Require().Len(all, 2)
	s.Equal(1234, all[0].TeamNumber)
	s.Equal(6738, all[1].TeamNumber)
}

func TestStatsRepositorySuite(t *testing.T) {
	suite.Run(t, new(StatsRepositorySuite))
}

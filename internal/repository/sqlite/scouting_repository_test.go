package sqlite_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/ExcaliDevBot/ExcaliStrategy/internal/models"
	"github.com/ExcaliDevBot/ExcaliStrategy/internal/repository"
	"github.com/ExcaliDevBot/ExcaliStrategy/internal/repository/sqlite"
	"github.com/ExcaliDevBot/ExcaliStrategy/internal/testutil"
)

type ScoutingRepositorySuite struct {
	suite.Suite
	db   *sql.DB
	repo repository.ScoutingRepository
}

func (s *ScoutingRepositorySuite) SetupTest() {
	s.db = testutil.NewTestDB(s.T())
	s.repo = sqlite.NewScoutingRepository(s.db)
}

func (s *ScoutingRepositorySuite) TearDownTest() {
	testutil.MustClose(s.T(), s.db)
}

func (s *ScoutingRepositorySuite) entry(match, team int) models.ScoutingEntry {
	return models.ScoutingEntry{
		MatchNumber:      match,
		TeamNumber:       team,
		Alliance:         "red",
		ScoutName:        "dana",
		AutoL4:           testutil.Float(2),
		LeftStartingZone: true,
		L4:               testutil.Float(5),
		ProcessorScore:   testutil.Float(1),
		ClimbOption:      models.ClimbDeep,
		Notes:            "fast cycles",
	}
}

func (s *ScoutingRepositorySuite) TestInsertAndList() {
	ctx := context.Background()

	id, err := s.repo.Insert(ctx, s.entry(1, 6738))
	s.Require().NoError(err)
	s.Greater(id, int64(0))

	_, err = s.repo.Insert(ctx, s.entry(2, 6738))
	s.Require().NoError(err)
	_, err = s.repo.Insert(ctx, s.entry(1, 1234))
	s.Require().NoError(err)

	entries, err := s.repo.List(ctx, models.EntryFilter{TeamNumber: 6738})
	s.Require().NoError(err)
	s.Require().Len(entries, 2)
	s.Equal(1, entries[0].MatchNumber)
	s.Equal(2, entries[1].MatchNumber)

	got := entries[0]
	s.Equal(6738, got.TeamNumber)
	s.Equal("red", got.Alliance)
	s.Require().NotNil(got.AutoL4)
	s.Equal(2.0, *got.AutoL4)
	s.Require().NotNil(got.L4)
	s.Equal(5.0, *got.L4)
	s.Nil(got.L1)
	s.Nil(got.DefensivePins)
	s.True(got.LeftStartingZone)
	s.Equal(models.ClimbDeep, got.ClimbOption)
	s.False(got.CreatedAt.IsZero())
}

func (s *ScoutingRepositorySuite) TestInsertRejectsDuplicateMatchTeam() {
	ctx := context.Background()

	_, err := s.repo.Insert(ctx, s.entry(1, 6738))
	s.Require().NoError(err)

	_, err = s.repo.Insert(ctx, s.entry(1, 6738))
	s.Error(err)
}

func (s *ScoutingRepositorySuite) TestUpsertReplacesExisting() {
	ctx := context.Background()

	s.Require().NoError(s.repo.Upsert(ctx, s.entry(1, 6738)))

	updated := s.entry(1, 6738)
	updated.L4 = testutil.Float(9)
	updated.ClimbOption = models.ClimbParked
	s.Require().NoError(s.repo.Upsert(ctx, updated))

	entries, err := s.repo.All(ctx)
	s.Require().NoError(err)
	s.Require().Len(entries, 1)
	s.Require().NotNil(entries[0].L4)
	s.Equal(9.0, *entries[0].L4)
	s.Equal(models.ClimbParked, entries[0].ClimbOption)
}

func (s *ScoutingRepositorySuite) TestListFilters() {
	ctx := context.Background()

	for match := 1; match <= 3; match++ {
		e := s.entry(match, 6738)
		if match == 2 {
			e.Alliance = "blue"
		}
		s.Require().NoError(s.repo.Upsert(ctx, e))
	}

	byMatch, err := s.repo.List(ctx, models.EntryFilter{MatchNumber: 2})
	s.Require().NoError(err)
	s.Require().Len(byMatch, 1)
	s.Equal(2, byMatch[0].MatchNumber)

	byAlliance, err := s.repo.List(ctx, models.EntryFilter{Alliance: "red"})
	s.Require().NoError(err)
	s.Len(byAlliance, 2)

	limited, err := s.repo.List(ctx, models.EntryFilter{TeamNumber: 6738, Limit: 1, Offset: 1})
	s.Require().NoError(err)
	s.Require().Len(limited, 1)
	s.Equal(2, limited[0].MatchNumber)
}

func (s *ScoutingRepositorySuite) TestTeamNumbers() {
	ctx := context.Background()

	s.Require().NoError(s.repo.Upsert(ctx, s.entry(1, 6738)))
	s.Require().NoError(s.repo.Upsert(ctx, s.entry(2, 6738)))
	s.Require().NoError(s.repo.Upsert(ctx, s.entry(1, 1234)))

	teams, err := s.repo.TeamNumbers(ctx)
	s.Require().NoError(err)
	s.Equal([]int{1234, 6738}, teams)
}

func (s *ScoutingRepositorySuite) TestAllEmpty() {
	entries, err := s.repo.All(context.Background())
	s.Require().NoError(err)
	s.Empty(entries)
}

func TestScoutingRepositorySuite(t *testing.T) {
	suite.Run(t, new(ScoutingRepositorySuite))
}

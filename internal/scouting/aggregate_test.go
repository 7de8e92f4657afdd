package scouting_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ExcaliDevBot/ExcaliStrategy/internal/models"
	"github.com/ExcaliDevBot/ExcaliStrategy/internal/scouting"
)

func record(match, team int, entry models.ScoutingEntry) (scouting.RecordKey, models.ScoutingEntry) {
	entry.MatchNumber = match
	entry.TeamNumber = team
	return scouting.RecordKey{Match: match, Team: team}, entry
}

func buildRecords(entries ...func() (scouting.RecordKey, models.ScoutingEntry)) map[scouting.RecordKey]models.ScoutingEntry {
	records := make(map[scouting.RecordKey]models.ScoutingEntry)
	for _, build := range entries {
		key, entry := build()
		records[key] = entry
	}
	return records
}

func TestAggregate_AbsentFieldsExcludedFromDenominator(t *testing.T) {
	records := buildRecords(
		func() (scouting.RecordKey, models.ScoutingEntry) {
			return record(1, 100, models.ScoutingEntry{AutoL1: f(2)})
		},
		func() (scouting.RecordKey, models.ScoutingEntry) {
			return record(2, 100, models.ScoutingEntry{}) // autoL1 not recorded
		},
		func() (scouting.RecordKey, models.ScoutingEntry) {
			return record(3, 100, models.ScoutingEntry{AutoL1: f(4)})
		},
	)

	stats, _, ok := scouting.Aggregate(records, 100)
	require.True(t, ok)

	assert.Equal(t, 3.0, stats.AutoL1, "average over 2 recorded samples, not 3")
	assert.Equal(t, 3, stats.MatchesPlayed, "matches played counts all selected records")
}

func TestAggregate_RecordedZeroCountsTowardAverage(t *testing.T) {
	records := buildRecords(
		func() (scouting.RecordKey, models.ScoutingEntry) {
			return record(1, 100, models.ScoutingEntry{NetScore: f(4)})
		},
		func() (scouting.RecordKey, models.ScoutingEntry) {
			return record(2, 100, models.ScoutingEntry{NetScore: f(0)})
		},
	)

	stats, _, ok := scouting.Aggregate(records, 100)
	require.True(t, ok)
	assert.Equal(t, 2.0, stats.NetScore, "a recorded zero is a sample, absence is not")
}

func TestAggregate_ClimbRateBounds(t *testing.T) {
	records := buildRecords(
		func() (scouting.RecordKey, models.ScoutingEntry) {
			return record(1, 200, models.ScoutingEntry{ClimbOption: models.ClimbDeep})
		},
		func() (scouting.RecordKey, models.ScoutingEntry) {
			return record(2, 200, models.ScoutingEntry{ClimbOption: models.ClimbShallow})
		},
		func() (scouting.RecordKey, models.ScoutingEntry) {
			return record(3, 200, models.ScoutingEntry{})
		},
	)

	stats, _, ok := scouting.Aggregate(records, 200)
	require.True(t, ok)
	assert.InDelta(t, 33.333, stats.ClimbRate, 0.001, "1 DEEP of 3 matches")
	assert.GreaterOrEqual(t, stats.ClimbRate, 0.0)
	assert.LessOrEqual(t, stats.ClimbRate, 100.0)
}

func TestAggregate_TeamWithNoRecordsGetsSentinels(t *testing.T) {
	records := buildRecords(
		func() (scouting.RecordKey, models.ScoutingEntry) {
			return record(1, 999, models.ScoutingEntry{AutoL4: f(3)})
		},
	)

	stats, scores, ok := scouting.Aggregate(records, 200)
	require.True(t, ok, "collection is non-empty, the team just has no matches")
	assert.Equal(t, 0, stats.MatchesPlayed)
	assert.Equal(t, 0.0, stats.ClimbRate)
	assert.Equal(t, 0.0, stats.ConsistencyRate)
	assert.Equal(t, models.TrendStable, stats.PerformanceTrend)
	assert.Empty(t, scores)
}

func TestAggregate_EmptyCollectionSkipsWrite(t *testing.T) {
	_, _, ok := scouting.Aggregate(map[scouting.RecordKey]models.ScoutingEntry{}, 200)
	assert.False(t, ok, "empty source collection must not produce a writable result")

	_, _, ok = scouting.Aggregate(nil, 200)
	assert.False(t, ok)
}

func TestAggregate_DefenseRatingSampleThreshold(t *testing.T) {
	twoSamples := buildRecords(
		func() (scouting.RecordKey, models.ScoutingEntry) {
			return record(1, 300, models.ScoutingEntry{DefensivePins: f(1)})
		},
		func() (scouting.RecordKey, models.ScoutingEntry) {
			return record(2, 300, models.ScoutingEntry{DefensivePins: f(1)})
		},
	)
	stats, _, ok := scouting.Aggregate(twoSamples, 300)
	require.True(t, ok)
	assert.Equal(t, 0.0, stats.DefenseRating, "2 samples is below the reporting threshold")

	threeSamples := buildRecords(
		func() (scouting.RecordKey, models.ScoutingEntry) {
			return record(1, 300, models.ScoutingEntry{DefensivePins: f(1)})
		},
		func() (scouting.RecordKey, models.ScoutingEntry) {
			return record(2, 300, models.ScoutingEntry{DefensivePins: f(1)})
		},
		func() (scouting.RecordKey, models.ScoutingEntry) {
			return record(3, 300, models.ScoutingEntry{DefensivePins: f(1)})
		},
	)
	stats, _, ok = scouting.Aggregate(threeSamples, 300)
	require.True(t, ok)
	assert.Equal(t, 1.0, stats.DefenseRating,
		"3 samples reports the true average even when it is below the defensive label cutoff")
}

func TestAggregate_ExactTeamSelection(t *testing.T) {
	records := buildRecords(
		func() (scouting.RecordKey, models.ScoutingEntry) {
			return record(4, 738, models.ScoutingEntry{AutoL4: f(5)})
		},
		func() (scouting.RecordKey, models.ScoutingEntry) {
			return record(5, 38, models.ScoutingEntry{AutoL4: f(1)})
		},
	)

	stats, _, ok := scouting.Aggregate(records, 38)
	require.True(t, ok)
	assert.Equal(t, 1, stats.MatchesPlayed, "team 38 must not pick up team 738's record")
	assert.Equal(t, 1.0, stats.AutoL4)
}

func TestAggregate_MatchScoresSortedByMatchNumber(t *testing.T) {
	records := buildRecords(
		func() (scouting.RecordKey, models.ScoutingEntry) {
			return record(9, 400, models.ScoutingEntry{AutoL4: f(3)})
		},
		func() (scouting.RecordKey, models.ScoutingEntry) {
			return record(2, 400, models.ScoutingEntry{AutoL4: f(1)})
		},
		func() (scouting.RecordKey, models.ScoutingEntry) {
			return record(5, 400, models.ScoutingEntry{AutoL4: f(2)})
		},
	)

	_, scores, ok := scouting.Aggregate(records, 400)
	require.True(t, ok)
	require.Len(t, scores, 3)
	assert.Equal(t, []int{2, 5, 9}, []int{scores[0].MatchNumber, scores[1].MatchNumber, scores[2].MatchNumber})
}

func TestAggregate_TrendFromChronologicalTotals(t *testing.T) {
	// Inserted out of order; totals rise strictly with match number.
	records := buildRecords(
		func() (scouting.RecordKey, models.ScoutingEntry) {
			return record(3, 500, models.ScoutingEntry{AutoL4: f(3)})
		},
		func() (scouting.RecordKey, models.ScoutingEntry) {
			return record(1, 500, models.ScoutingEntry{AutoL4: f(1)})
		},
		func() (scouting.RecordKey, models.ScoutingEntry) {
			return record(2, 500, models.ScoutingEntry{AutoL4: f(2)})
		},
	)

	stats, _, ok := scouting.Aggregate(records, 500)
	require.True(t, ok)
	assert.Equal(t, models.TrendUpward, stats.PerformanceTrend)
}

func TestAggregate_ConsistencyRate(t *testing.T) {
	// One high-scoring match (over the 40 point threshold), one low.
	records := buildRecords(
		func() (scouting.RecordKey, models.ScoutingEntry) {
			return record(1, 600, models.ScoutingEntry{AutoL4: f(4), ClimbOption: models.ClimbDeep})
		},
		func() (scouting.RecordKey, models.ScoutingEntry) {
			return record(2, 600, models.ScoutingEntry{AutoL1: f(1)})
		},
	)

	stats, _, ok := scouting.Aggregate(records, 600)
	require.True(t, ok)
	assert.Equal(t, 50.0, stats.ConsistencyRate)
}

func TestAggregate_ScenarioTeam6738(t *testing.T) {
	records := buildRecords(
		func() (scouting.RecordKey, models.ScoutingEntry) {
			return record(1, 6738, models.ScoutingEntry{
				AutoL4: f(2), AutoL3: f(0), AutoL2: f(0), AutoL1: f(0),
				NetScore: f(1), ProcessorScore: f(0),
				ClimbOption: models.ClimbDeep,
			})
		},
		func() (scouting.RecordKey, models.ScoutingEntry) {
			return record(2, 6738, models.ScoutingEntry{AutoL4: f(1), ClimbOption: models.ClimbShallow})
		},
		func() (scouting.RecordKey, models.ScoutingEntry) {
			return record(3, 6738, models.ScoutingEntry{AutoL4: f(0)})
		},
	)

	stats, scores, ok := scouting.Aggregate(records, 6738)
	require.True(t, ok)

	assert.Equal(t, 3, stats.MatchesPlayed)
	assert.InDelta(t, 33.333, stats.ClimbRate, 0.001)
	assert.Equal(t, 1.0, stats.AutoL4, "averaged over the 3 recorded samples")
	assert.Len(t, scores, 3)

	metrics := scouting.DeriveMetrics(stats)
	assert.Equal(t, 10.0, metrics.AvgAutoScore, "1*7 plus the leave bonus")
}

package services

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/ExcaliDevBot/ExcaliStrategy/internal/errors"
	"github.com/ExcaliDevBot/ExcaliStrategy/internal/models"
	"github.com/ExcaliDevBot/ExcaliStrategy/internal/testutil/mocks"
)

func TestSubmitEnqueuesAggregation(t *testing.T) {
	scoutingRepo := new(mocks.MockScoutingRepository)
	queue := new(mocks.MockJobQueue)
	svc := NewScoutingService(scoutingRepo, queue)

	scoutingRepo.On("Insert", mock.Anything, mock.Anything).Return(int64(7), nil)
	queue.On("EnqueueAggregation", 6738).Return(nil)

	entry, err := svc.Submit(context.Background(), models.ScoutingEntry{
		MatchNumber: 3,
		TeamNumber:  6738,
		ClimbOption: models.ClimbDeep,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(7), entry.ID)

	queue.AssertExpectations(t)
}

func TestSubmitValidatesEntry(t *testing.T) {
	svc := NewScoutingService(new(mocks.MockScoutingRepository), new(mocks.MockJobQueue))

	cases := []struct {
		name  string
		entry models.ScoutingEntry
	}{
		{"zero match", models.ScoutingEntry{MatchNumber: 0, TeamNumber: 6738}},
		{"zero team", models.ScoutingEntry{MatchNumber: 1, TeamNumber: 0}},
		{"bad climb", models.ScoutingEntry{MatchNumber: 1, TeamNumber: 6738, ClimbOption: "FLEW"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Submit(context.Background(), tc.entry)
			require.Error(t, err)
			appErr, ok := err.(*errors.AppError)
			require.True(t, ok)
			assert.Equal(t, errors.ErrCodeValidation, appErr.Code)
		})
	}
}

const importHeader = "Match\tTeam\tName\tAlliance\tL1\tL2\tL3\tL4\tautoRemoveAlgae\tleftStartingZone\tautoL1\tautoL2\tautoL3\tautoL4\tremoveAlgae\tprocessorScore\tnetScore\tInfo\tdefensivePins\tclimbOption"

func TestImportTSV(t *testing.T) {
	scoutingRepo := new(mocks.MockScoutingRepository)
	queue := new(mocks.MockJobQueue)
	svc := NewScoutingService(scoutingRepo, queue)

	var upserted []models.ScoutingEntry
	scoutingRepo.On("Upsert", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			upserted = append(upserted, args.Get(1).(models.ScoutingEntry))
		}).Return(nil)
	queue.On("EnqueueAggregation", mock.Anything).Return(nil)

	data := strings.Join([]string{
		importHeader,
		"11\t5928\t\tblue\t1\t0\t0\t0\t0\tTRUE\t0\t0\t1\t3\t3\t2\t0\tFALSE\t0\t",
		"15\t6738\tdana\tred\t0\t0\t0\t2\t0\tTRUE\t0\t0\t0\t0\t2\t0\t0\tFALSE\t0\tDEEP",
		"xx\t9999\t\tred\t0\t0\t0\t0\t0\tTRUE\t0\t0\t0\t0\t0\t0\t0\tFALSE\t0\t",
	}, "\n")

	result, err := svc.ImportTSV(context.Background(), strings.NewReader(data))
	require.NoError(t, err)

	assert.Equal(t, 2, result.Imported)
	assert.Equal(t, 1, result.Skipped)
	assert.Equal(t, []int{5928, 6738}, result.Teams)
	require.Len(t, result.Problems, 1)
	assert.Contains(t, result.Problems[0], "line 4")

	require.Len(t, upserted, 2)
	first := upserted[0]
	assert.Equal(t, 11, first.MatchNumber)
	assert.Equal(t, 5928, first.TeamNumber)
	assert.Equal(t, "blue", first.Alliance)
	require.NotNil(t, first.L1)
	assert.Equal(t, 1.0, *first.L1)
	require.NotNil(t, first.AutoL4)
	assert.Equal(t, 3.0, *first.AutoL4)
	assert.True(t, first.LeftStartingZone)
	assert.Empty(t, first.ClimbOption)

	second := upserted[1]
	assert.Equal(t, "dana", second.ScoutName)
	assert.Equal(t, models.ClimbDeep, second.ClimbOption)

	queue.AssertCalled(t, "EnqueueAggregation", 5928)
	queue.AssertCalled(t, "EnqueueAggregation", 6738)
}

func TestImportTSVMalformedNumericBecomesNil(t *testing.T) {
	scoutingRepo := new(mocks.MockScoutingRepository)
	queue := new(mocks.MockJobQueue)
	svc := NewScoutingService(scoutingRepo, queue)

	var entry models.ScoutingEntry
	scoutingRepo.On("Upsert", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { entry = args.Get(1).(models.ScoutingEntry) }).Return(nil)
	queue.On("EnqueueAggregation", mock.Anything).Return(nil)

	data := importHeader + "\n" +
		"1\t6738\t\tred\tbanana\t0\t0\t\t0\tTRUE\t0\t0\t0\t0\t0\t0\t0\tFALSE\t0\t"

	result, err := svc.ImportTSV(context.Background(), strings.NewReader(data))
	require.NoError(t, err)

	assert.Equal(t, 1, result.Imported)
	// Malformed cell: recorded as a diagnostic, excluded from the entry.
	require.Len(t, result.Problems, 1)
	assert.Contains(t, result.Problems[0], "banana")
	assert.Nil(t, entry.L1)
	// Empty cell: unrecorded, no diagnostic.
	assert.Nil(t, entry.L4)
}

func TestImportTSVMissingColumns(t *testing.T) {
	svc := NewScoutingService(new(mocks.MockScoutingRepository), new(mocks.MockJobQueue))

	_, err := svc.ImportTSV(context.Background(), strings.NewReader("Match\tName\n1\tx"))
	require.Error(t, err)
	appErr, ok := err.(*errors.AppError)
	require.True(t, ok)
	assert.Equal(t, errors.ErrCodeBadRequest, appErr.Code)
}

func TestImportTSVEmpty(t *testing.T) {
	svc := NewScoutingService(new(mocks.MockScoutingRepository), new(mocks.MockJobQueue))

	_, err := svc.ImportTSV(context.Background(), strings.NewReader(""))
	require.Error(t, err)
}

package scouting_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ExcaliDevBot/ExcaliStrategy/internal/scouting"
)

func TestParseRecordKey(t *testing.T) {
	key, err := scouting.ParseRecordKey("M11T5928")
	require.NoError(t, err)
	assert.Equal(t, 11, key.Match)
	assert.Equal(t, 5928, key.Team)
}

func TestParseRecordKey_RoundTrip(t *testing.T) {
	key := scouting.RecordKey{Match: 7, Team: 6738}
	parsed, err := scouting.ParseRecordKey(key.String())
	require.NoError(t, err)
	assert.Equal(t, key, parsed)
}

func TestParseRecordKey_Invalid(t *testing.T) {
	tests := []struct {
		name string
		key  string
	}{
		{"empty", ""},
		{"missing match marker", "11T5928"},
		{"missing team marker", "M11"},
		{"non-numeric match", "MxT5928"},
		{"non-numeric team", "M11Tx"},
		{"zero team", "M11T0"},
		{"negative match", "M-1T5928"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := scouting.ParseRecordKey(tt.key)
			assert.Error(t, err)
		})
	}
}

func TestRecordKey_ExactTeamSelection(t *testing.T) {
	// Team 38 must not match inside team 738's key, which the old formatted
	// string containment check allowed.
	key, err := scouting.ParseRecordKey("M4T738")
	require.NoError(t, err)
	assert.NotEqual(t, 38, key.Team)
	assert.Equal(t, 738, key.Team)
}

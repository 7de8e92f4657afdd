package scouting

import (
	"math"
	"strconv"

	"github.com/ExcaliDevBot/ExcaliStrategy/internal/models"
)

// Scoring weights approximating the game's point values. Fixed at design
// time; never inferred from data.
const (
	autoL4Weight = 7
	autoL3Weight = 6
	autoL2Weight = 4
	autoL1Weight = 3

	teleopL4Weight = 5
	teleopL3Weight = 4
	teleopL2Weight = 3
	teleopL1Weight = 2
	netWeight      = 4
	processorWeight = 6

	// Fixed bonus for leaving the starting zone, assumed always earned.
	leaveBonus = 3

	// ClimbRate is a 0-100 percentage; this scales it into a points proxy.
	endgameClimbFactor = 0.12
)

// consistencyThreshold is the estimated total score a match must exceed to
// count toward the consistency rate.
const consistencyThreshold = 40.0

// minDefenseObservation is the label cutoff below which a team is reported
// as not defensive.
const minDefenseObservation = 2.0

// DeriveMetrics converts a team's aggregated stats into the
// presentation-ready metrics used by charts, tables and alliance scoring.
// Pure: identical input yields identical output, whether the stats came
// from internal aggregation or an external source.
func DeriveMetrics(stats models.TeamStats) models.CalculatedMetrics {
	avgAuto := math.Round(stats.AutoL4*autoL4Weight+
		stats.AutoL3*autoL3Weight+
		stats.AutoL2*autoL2Weight+
		stats.AutoL1*autoL1Weight) + leaveBonus
	avgTeleop := math.Round(stats.AutoL4*teleopL4Weight +
		stats.AutoL3*teleopL3Weight +
		stats.AutoL2*teleopL2Weight +
		stats.AutoL1*teleopL1Weight +
		stats.NetScore*netWeight +
		stats.ProcessorScore*processorWeight)
	avgEndgame := math.Round(stats.ClimbRate * endgameClimbFactor)

	return models.CalculatedMetrics{
		AvgAutoScore:      avgAuto,
		AvgTeleopScore:    avgTeleop,
		AvgEndgameScore:   avgEndgame,
		AvgTotalScore:     avgAuto + avgTeleop + avgEndgame,
		ClimbSuccessRate:  math.Round(stats.ClimbRate),
		ConsistencyRating: math.Round(stats.ConsistencyRate) / 10,
		DefenseCapability: defenseCapability(stats.DefenseRating),
	}
}

func defenseCapability(rating float64) string {
	if rating < minDefenseObservation {
		return "Not Defensive"
	}
	return strconv.FormatFloat(rating, 'f', -1, 64) + "/10"
}

// ScoreEntry estimates one match's score decomposition from a single
// scouting entry's raw counts, using the same weights as DeriveMetrics.
// The endgame share credits the full climb value only for a DEEP climb.
func ScoreEntry(entry models.ScoutingEntry) models.MatchScore {
	auto := math.Round(count(entry.AutoL4)*autoL4Weight+
		count(entry.AutoL3)*autoL3Weight+
		count(entry.AutoL2)*autoL2Weight+
		count(entry.AutoL1)*autoL1Weight) + leaveBonus
	teleop := math.Round(count(entry.AutoL4)*teleopL4Weight +
		count(entry.AutoL3)*teleopL3Weight +
		count(entry.AutoL2)*teleopL2Weight +
		count(entry.AutoL1)*teleopL1Weight +
		count(entry.NetScore)*netWeight +
		count(entry.ProcessorScore)*processorWeight)

	var endgame float64
	if entry.ClimbOption == models.ClimbDeep {
		endgame = math.Round(100 * endgameClimbFactor)
	}

	return models.MatchScore{
		TeamNumber:   entry.TeamNumber,
		MatchNumber:  entry.MatchNumber,
		AutoScore:    auto,
		TeleopScore:  teleop,
		EndgameScore: endgame,
		TotalScore:   auto + teleop + endgame,
	}
}

// count reads an optional counter, treating an unrecorded field as zero for
// score estimation. Averaging uses the field's presence separately.
func count(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}

package scouting

import "github.com/ExcaliDevBot/ExcaliStrategy/internal/models"

// Thresholds for alliance-level member counts.
const (
	strongDefenseRating = 5.0
	strongAutoScore     = 15.0
	reliableClimbRate   = 80.0
)

// SummarizeAlliance aggregates up to three teams' metrics into an
// alliance-level summary. An empty member list yields an all-zero summary
// rather than an error; slots may be unfilled during interactive selection.
func SummarizeAlliance(teams []models.TeamPerformanceData) models.AllianceSummary {
	summary := models.AllianceSummary{Teams: make([]int, 0, len(teams))}
	if len(teams) == 0 {
		return summary
	}

	var climbSum, consistencySum float64
	for _, team := range teams {
		summary.Teams = append(summary.Teams, team.TeamNumber)
		summary.CombinedTotalScore += team.CalculatedMetrics.AvgTotalScore
		climbSum += team.CalculatedMetrics.ClimbSuccessRate
		consistencySum += team.CalculatedMetrics.ConsistencyRating

		if team.Stats.DefenseRating >= strongDefenseRating {
			summary.DefensiveTeams++
		}
		if team.CalculatedMetrics.AvgAutoScore >= strongAutoScore {
			summary.StrongAutoTeams++
		}
		if team.CalculatedMetrics.ClimbSuccessRate >= reliableClimbRate {
			summary.ReliableClimbers++
		}
	}

	n := float64(len(teams))
	summary.AvgClimbRate = climbSum / n
	summary.AvgConsistency = consistencySum / n
	return summary
}

// CompareAlliances builds the head-to-head report for two alliances of up
// to three teams each. The differential is alliance minus opponent, so
// swapping the inputs negates it with the same magnitude. Shape validation
// (member counts, duplicate teams) belongs to the boundary constructing the
// snapshots; this function tolerates whatever it is given.
func CompareAlliances(alliance, opponent []models.TeamPerformanceData) models.ComparisonReport {
	a := SummarizeAlliance(alliance)
	b := SummarizeAlliance(opponent)

	diff := a.CombinedTotalScore - b.CombinedTotalScore
	advantage := models.AdvantageEven
	if diff > 0 {
		advantage = models.AdvantageAlliance
	} else if diff < 0 {
		advantage = models.AdvantageOpponent
	}

	return models.ComparisonReport{
		Alliance:            &a,
		Opponent:            &b,
		ScoringDifferential: diff,
		Advantage:           advantage,
	}
}

package scouting

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/ExcaliDevBot/ExcaliStrategy/internal/models"
)

// num renders a float without trailing zeros, matching the display format
// the rest of the dashboard uses.
func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// GenerateTeamSummary renders one team's performance as a stable multi-line
// block. Strategy prompts are built from this text, so the output must be
// deterministic for identical input.
func GenerateTeamSummary(team models.TeamPerformanceData) string {
	m := team.CalculatedMetrics
	s := team.Stats

	var b strings.Builder
	fmt.Fprintf(&b, "Team %d:\n", team.TeamNumber)
	fmt.Fprintf(&b, "- Performance Trend: %s\n", s.PerformanceTrend)
	fmt.Fprintf(&b, "- Average Scores: Auto %s, Teleop %s, Endgame %s, Total %s\n",
		num(m.AvgAutoScore), num(m.AvgTeleopScore), num(m.AvgEndgameScore), num(m.AvgTotalScore))
	fmt.Fprintf(&b, "- Climb Success: %s%%\n", num(m.ClimbSuccessRate))
	fmt.Fprintf(&b, "- Consistency: %s/10\n", num(m.ConsistencyRating))
	fmt.Fprintf(&b, "- Defense: %s\n", m.DefenseCapability)
	fmt.Fprintf(&b, "- OPR: %.2f, DPR: %.2f, CCWM: %s\n", s.OPR, s.DPR, num(s.CCWM))
	fmt.Fprintf(&b, "- Matches Played: %d", s.MatchesPlayed)
	return b.String()
}

// RenderAllianceSummary renders an alliance-level summary as text.
func RenderAllianceSummary(summary models.AllianceSummary) string {
	if len(summary.Teams) == 0 {
		return "No team data available for analysis."
	}

	var b strings.Builder
	b.WriteString("Alliance Analysis:\n")
	fmt.Fprintf(&b, "- Combined Scoring Potential: %s points\n", num(summary.CombinedTotalScore))
	fmt.Fprintf(&b, "- Average Climb Success: %.1f%%\n", summary.AvgClimbRate)
	fmt.Fprintf(&b, "- Average Consistency: %.1f/10\n", summary.AvgConsistency)
	fmt.Fprintf(&b, "- Defensive Capabilities: %d strong defensive team(s)\n", summary.DefensiveTeams)
	fmt.Fprintf(&b, "- Strong Auto Teams: %d\n", summary.StrongAutoTeams)
	fmt.Fprintf(&b, "- Reliable Climbers: %d", summary.ReliableClimbers)
	return b.String()
}

// RenderComparison renders the head-to-head report as text, leading with
// the scoring advantage.
func RenderComparison(report models.ComparisonReport) string {
	var advantage string
	if report.ScoringDifferential > 0 {
		advantage = fmt.Sprintf("Your alliance has a %.1f point scoring advantage", report.ScoringDifferential)
	} else {
		advantage = fmt.Sprintf("Opponents have a %.1f point scoring advantage", math.Abs(report.ScoringDifferential))
	}

	var b strings.Builder
	b.WriteString(advantage)
	b.WriteString("\n\nYour Alliance:\n")
	b.WriteString(RenderAllianceSummary(*report.Alliance))
	b.WriteString("\n\nOpponent Alliance:\n")
	b.WriteString(RenderAllianceSummary(*report.Opponent))
	return b.String()
}

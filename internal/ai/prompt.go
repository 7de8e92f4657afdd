package ai

import (
	"fmt"
	"strings"
)

// StrategyInput carries everything the strategy prompt needs, already
// rendered: callers pass the deterministic team summaries and alliance
// comparison text so the prompt content is reproducible.
type StrategyInput struct {
	MatchNumber   int
	MatchType     string
	AllianceColor string
	AllianceTeams []int
	OpponentTeams []int

	AllianceSummaries  []string
	OpponentSummaries  []string
	AllianceComparison string
}

const strategySystemPrompt = `You are an expert FRC (FIRST Robotics Competition) strategist with access to detailed team performance data. Analyze the provided team statistics and match setup to create comprehensive strategic recommendations. Focus on data-driven insights, specific tactical recommendations, and actionable strategies based on the actual performance metrics provided.`

func joinTeams(teams []int) string {
	parts := make([]string, len(teams))
	for i, t := range teams {
		parts[i] = fmt.Sprintf("%d", t)
	}
	return strings.Join(parts, ", ")
}

func joinSummaries(summaries []string, fallback string) string {
	if len(summaries) == 0 {
		return fallback
	}
	return strings.Join(summaries, "\n\n")
}

func buildStrategyPrompt(in StrategyInput) string {
	var b strings.Builder

	fmt.Fprintf(&b, `Analyze this upcoming FRC match using the detailed team performance data and provide strategic recommendations:

MATCH DETAILS:
- Match Number: %d
- Match Type: %s
- Alliance Color: %s
- Our Alliance: %s
- Opponent Alliance: %s

ALLIANCE TEAM PERFORMANCE DATA:
%s

OPPONENT TEAM PERFORMANCE DATA:
%s

ALLIANCE COMPARISON:
%s

`,
		in.MatchNumber, in.MatchType, in.AllianceColor,
		joinTeams(in.AllianceTeams), joinTeams(in.OpponentTeams),
		joinSummaries(in.AllianceSummaries, "No performance data available for alliance teams"),
		joinSummaries(in.OpponentSummaries, "No performance data available for opponent teams"),
		in.AllianceComparison)

	b.WriteString(`Based on this detailed performance data, provide:

1. **OVERALL STRATEGY**: Data-driven game plan considering scoring potentials and team strengths
2. **AUTONOMOUS RECOMMENDATIONS**: Specific auto strategies based on each team's auto performance
3. **TELEOP FOCUS AREAS**: Tactical priorities based on scoring capabilities and consistency ratings
4. **ENDGAME COORDINATION**: Climbing strategy based on success rates and reliability data
5. **DEFENSIVE STRATEGY**: When and how to play defense based on opponent strengths and your defensive capabilities
6. **RISK MITIGATION**: Backup plans considering consistency ratings and performance trends
7. **KEY MATCHUPS**: Specific team-vs-team tactical considerations
8. **SCORING PREDICTIONS**: Expected score ranges based on historical performance

Make your recommendations specific, actionable, and directly tied to the performance data provided. Include confidence levels where appropriate.`)

	return b.String()
}

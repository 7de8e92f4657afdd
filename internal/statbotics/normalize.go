package statbotics

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/ExcaliDevBot/ExcaliStrategy/internal/logger"
	"github.com/ExcaliDevBot/ExcaliStrategy/internal/models"
)

// breakdown is the version-independent shape both API generations reduce to.
type breakdown struct {
	auto    float64
	teleop  float64
	endgame float64
	total   float64
	matches int
	opr     float64
	dpr     float64
	ccwm    float64
}

func derefOr(v *float64, def float64) float64 {
	if v == nil {
		return def
	}
	return *v
}

func normalizeV3(raw *teamEventV3) breakdown {
	var b breakdown
	b.auto = deref(raw.EPA.Breakdown.AutoPoints)
	b.teleop = deref(raw.EPA.Breakdown.TeleopPoints)
	b.endgame = deref(raw.EPA.Breakdown.EndgamePoints)
	if raw.EPA.Breakdown.TotalPoints != nil {
		b.total = *raw.EPA.Breakdown.TotalPoints
	} else {
		b.total = b.auto + b.teleop + b.endgame
	}
	if raw.Record.Qual != nil {
		b.matches = raw.Record.Qual.Wins + raw.Record.Qual.Losses + raw.Record.Qual.Ties
	} else {
		b.matches = raw.Matches
	}
	// v3 carries no OPR columns; approximate from EPA the way the event
	// dashboards do.
	b.opr = b.total
	b.dpr = derefOr(raw.EPA.Stats.Mean, b.total) * 0.4
	b.ccwm = b.opr - b.dpr
	return b
}

func normalizeV2(raw *teamEventV2) breakdown {
	var b breakdown
	if raw.EPABreakdown != nil {
		b.auto = raw.EPABreakdown.Auto
		b.teleop = raw.EPABreakdown.Teleop
		b.endgame = raw.EPABreakdown.Endgame
		b.total = raw.EPABreakdown.Total
	} else {
		b.auto = deref(raw.AutoEPA)
		b.teleop = deref(raw.TeleopEPA)
		b.endgame = deref(raw.EndgameEPA)
		b.total = raw.EPA
	}
	if b.total == 0 {
		b.total = b.auto + b.teleop + b.endgame
	}
	b.matches = raw.Matches
	if b.matches == 0 {
		b.matches = raw.MatchesPlayed
	}
	b.opr = derefOr(raw.OPR, b.total)
	b.dpr = deref(raw.DPR)
	if raw.CCWM != nil {
		b.ccwm = *raw.CCWM
	} else {
		b.ccwm = b.opr - b.dpr
	}
	return b
}

func deref(v *float64) float64 {
	return derefOr(v, 0)
}

// TeamPerformance fetches and normalizes a team's EPA breakdown into the
// same shape internally aggregated stats use. It tries the v3 team_event
// endpoint, then v2 team_event, then falls back to the v2 season aggregate;
// the fallback is flagged in Provenance. Returns ErrNoData when all three
// come up empty.
//
// EPA phase points map directly onto the score fields; no scoring weights
// are reapplied. Defense capability is reported as "N/A" because Statbotics
// has no defensive signal.
func (c *Client) TeamPerformance(ctx context.Context, team int, eventKey string) (*models.TeamPerformanceData, error) {
	log := logger.FromContext(ctx).WithPrefix("statbotics").WithField("team", strconv.Itoa(team))

	prov := models.Provenance{Source: "statbotics", EventKey: eventKey}
	var b breakdown

	if raw, err := c.fetchTeamEventV3(ctx, team, eventKey); err != nil {
		return nil, err
	} else if raw != nil {
		log.Debug("using v3 team_event data for %s", eventKey)
		b = normalizeV3(raw)
	} else if raw, err := c.fetchTeamEventV2(ctx, team, eventKey); err != nil {
		return nil, err
	} else if raw != nil {
		log.Debug("using v2 team_event data for %s", eventKey)
		b = normalizeV2(raw)
	} else {
		exists := c.eventExists(ctx, eventKey)
		prov.EventExists = &exists
		log.Warn("no team_event data for %s (event exists=%v), trying season aggregate", eventKey, exists)

		year := seasonOf(eventKey)
		raw, err := c.fetchTeamYear(ctx, team, year)
		if err != nil {
			return nil, err
		}
		if raw == nil {
			log.Warn("no season data for team %d either", team)
			return nil, fmt.Errorf("%w %d at %s", ErrNoData, team, eventKey)
		}
		b = normalizeV2(raw)
		prov.FallbackUsed = true
		prov.FallbackType = "team_year"
		prov.Reason = fmt.Sprintf("Using season aggregate (team_year) because no team_event data for %s.", eventKey)
	}

	log.Info("normalized: auto=%.1f, teleop=%.1f, endgame=%.1f, total=%.1f, fallback=%v",
		b.auto, b.teleop, b.endgame, b.total, prov.FallbackUsed)

	stats := models.TeamStats{
		TeamNumber: team,
		// Teleop EPA lands on the net field and endgame EPA becomes a
		// pseudo climb rate; the per-element columns have no external
		// equivalent and stay zero.
		NetScore:         b.teleop,
		ClimbRate:        b.endgame * 10,
		MatchesPlayed:    b.matches,
		PerformanceTrend: models.TrendStable,
		OPR:              b.opr,
		DPR:              b.dpr,
		CCWM:             b.ccwm,
		ComputedAt:       time.Now().UTC(),
	}

	metrics := models.CalculatedMetrics{
		AvgAutoScore:      math.Round(b.auto),
		AvgTeleopScore:    math.Round(b.teleop),
		AvgEndgameScore:   math.Round(b.endgame),
		AvgTotalScore:     math.Round(b.total),
		ClimbSuccessRate:  math.Round(stats.ClimbRate),
		ConsistencyRating: 0,
		DefenseCapability: "N/A",
	}

	return &models.TeamPerformanceData{
		TeamNumber:        team,
		Stats:             stats,
		CalculatedMetrics: metrics,
		Provenance:        &prov,
	}, nil
}

// seasonOf extracts the four-digit year prefix from an event key like
// "2025iscmp", defaulting to the current year when the key has no prefix.
func seasonOf(eventKey string) int {
	if len(eventKey) >= 4 {
		if year, err := strconv.Atoi(eventKey[:4]); err == nil {
			return year
		}
	}
	return time.Now().Year()
}

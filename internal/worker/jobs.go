package worker

import (
	"context"
	"strconv"

	"github.com/ExcaliDevBot/ExcaliStrategy/internal/logger"
)

// AggregateTeamJob recomputes one team's statistics from its raw scouting
// entries.
type AggregateTeamJob struct {
	AggregationService AggregationServiceInterface
	TeamNumber         int
}

func (j *AggregateTeamJob) Name() string { return "aggregate_team" }

func (j *AggregateTeamJob) Run(ctx context.Context) error {
	log := logger.FromContext(ctx).WithField("team", strconv.Itoa(j.TeamNumber))
	log.Debug("recomputing team statistics")
	return j.AggregationService.AggregateTeam(logger.NewContext(ctx, log), j.TeamNumber)
}

// AggregateAllJob recomputes statistics for every team with scouting data,
// typically after a bulk import.
type AggregateAllJob struct {
	AggregationService AggregationServiceInterface
}

func (j *AggregateAllJob) Name() string { return "aggregate_all" }

func (j *AggregateAllJob) Run(ctx context.Context) error {
	return j.AggregationService.AggregateAll(ctx)
}

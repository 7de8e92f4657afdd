package worker

import "context"

// AggregationServiceInterface defines the interface for team aggregation
// This avoids import cycles by not importing the services package
type AggregationServiceInterface interface {
	AggregateTeam(ctx context.Context, teamNumber int) error
	AggregateAll(ctx context.Context) error
}

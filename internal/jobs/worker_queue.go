package jobs

import (
	"github.com/ExcaliDevBot/ExcaliStrategy/internal/worker"
)

// WorkerQueue implements JobQueue using a worker pool
type WorkerQueue struct {
	pool               *worker.Pool
	aggregationService worker.AggregationServiceInterface
}

// NewWorkerQueue creates a new WorkerQueue implementation
func NewWorkerQueue(pool *worker.Pool, aggregationService worker.AggregationServiceInterface) JobQueue {
	return &WorkerQueue{
		pool:               pool,
		aggregationService: aggregationService,
	}
}

func (q *WorkerQueue) EnqueueAggregation(teamNumber int) error {
	return q.pool.Submit(&worker.AggregateTeamJob{
		AggregationService: q.aggregationService,
		TeamNumber:         teamNumber,
	})
}

func (q *WorkerQueue) EnqueueFullAggregation() error {
	return q.pool.Submit(&worker.AggregateAllJob{
		AggregationService: q.aggregationService,
	})
}

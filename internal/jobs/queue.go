package jobs

// JobQueue provides an abstraction for enqueueing background jobs
type JobQueue interface {
	EnqueueAggregation(teamNumber int) error
	EnqueueFullAggregation() error
}

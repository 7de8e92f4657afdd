package statbotics

import (
	"context"

	"github.com/ExcaliDevBot/ExcaliStrategy/internal/models"
)

// ClientInterface defines the interface for Statbotics API operations.
// This interface enables testability by allowing mock implementations.
type ClientInterface interface {
	TeamPerformance(ctx context.Context, team int, eventKey string) (*models.TeamPerformanceData, error)
}

// Ensure Client implements the interface
var _ ClientInterface = (*Client)(nil)

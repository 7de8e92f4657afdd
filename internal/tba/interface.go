package tba

import (
	"context"

	"github.com/ExcaliDevBot/ExcaliStrategy/internal/models"
)

// ClientInterface defines the interface for The Blue Alliance API
// operations. This interface enables testability by allowing mock
// implementations.
type ClientInterface interface {
	EventTeams(ctx context.Context, eventKey string) ([]models.Team, error)
	EventMatches(ctx context.Context, eventKey string) ([]Match, error)
	TeamMatches(ctx context.Context, eventKey string, teamNumber int) ([]Match, error)
}

// Ensure Client implements the interface
var _ ClientInterface = (*Client)(nil)

package ai

import "context"

// ClientInterface defines the interface for AI completion operations.
// This interface enables testability by allowing mock implementations.
type ClientInterface interface {
	GenerateStrategyInsights(ctx context.Context, input StrategyInput) (string, error)
}

// Ensure Client implements the interface
var _ ClientInterface = (*Client)(nil)

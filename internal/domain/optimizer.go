package domain

import "context"

// OptimizerRequest carries the instructions sent to the external
// optimization service.
type OptimizerRequest struct {
	SystemPrompt string
	UserPrompt   string
}

// OptimizerClient is the port to the external sequence optimization service.
// Generate returns the raw assistant text; interpreting it (including
// deciding that it is unparseable) is the orchestrator's job.
type OptimizerClient interface {
	Generate(ctx context.Context, req OptimizerRequest) (string, error)
}

package domain

import (
	"context"

	"github.com/google/uuid"
)

type ProjectRepository interface {
	Create(ctx context.Context, project *Project) error
	// FindNewestByName returns the most recently created project with the
	// given name under the owner, or ErrProjectNotFound.
	FindNewestByName(ctx context.Context, ownerID, name string) (*Project, error)
	// ListByOwner returns the owner's projects newest-first with nested
	// sequences, optimization results (newest-first) and mutations.
	ListByOwner(ctx context.Context, ownerID string) ([]*Project, error)
}

type SequenceRepository interface {
	Create(ctx context.Context, sequence *Sequence) error
	GetByID(ctx context.Context, id uuid.UUID) (*Sequence, error)
}

type OptimizationRepository interface {
	// Create persists the result and its mutation rows in one transaction:
	// either all rows become visible or none do.
	Create(ctx context.Context, result *OptimizationResult, mutations []string) error
}

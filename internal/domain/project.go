package domain

import (
	"time"

	"github.com/google/uuid"
)

type Project struct {
	ID          uuid.UUID `json:"id"`
	CreatedAt   time.Time `json:"created_at"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	OwnerID     string    `json:"owner_id"`

	// Computed fields (populated by the aggregate listing query)
	Sequences         []*Sequence `json:"sequences,omitempty"`
	SequenceCount     int         `json:"sequence_count"`
	OptimizationCount int         `json:"optimization_count"`
}

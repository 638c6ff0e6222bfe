package domain

import (
	"time"

	"github.com/google/uuid"
)

type Goal string

const (
	GoalStability  Goal = "stability"
	GoalActivity   Goal = "activity"
	GoalExpression Goal = "expression"
)

func ParseGoal(s string) (Goal, error) {
	switch Goal(s) {
	case GoalStability, GoalActivity, GoalExpression:
		return Goal(s), nil
	}
	return "", ErrInvalidGoal
}

type OptimizationResult struct {
	ID                uuid.UUID              `json:"id"`
	CreatedAt         time.Time              `json:"created_at"`
	ProjectID         uuid.UUID              `json:"project_id"`
	SequenceID        uuid.UUID              `json:"sequence_id"`
	Goal              Goal                   `json:"goal"`
	OriginalSequence  string                 `json:"original_sequence"`
	OptimizedSequence string                 `json:"optimized_sequence"`
	ImprovementScore  float64                `json:"improvement_score"`
	ConfidenceScore   float64                `json:"confidence_score"`
	Analysis          string                 `json:"analysis"`
	Parameters        map[string]interface{} `json:"parameters"`

	// Computed fields (populated by the aggregate listing query)
	Mutations []*Mutation `json:"mutations,omitempty"`
}

// OptimizationRecord is the outcome of one optimization run, before and
// independent of persistence. It is what the caller receives even when the
// store write fails.
type OptimizationRecord struct {
	Goal              Goal
	OriginalSequence  string
	OptimizedSequence string
	Mutations         []string
	ImprovementScore  float64
	ConfidenceScore   float64
	Analysis          string
}

package dto

import (
	"time"

	"protein-optimizer-service/internal/domain"
)

type CreateProjectRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type MutationResponse struct {
	ID       string `json:"id"`
	Notation string `json:"notation"`
}

type OptimizationResponse struct {
	ID                string             `json:"id"`
	CreatedAt         time.Time          `json:"createdAt"`
	ProjectID         string             `json:"projectId"`
	SequenceID        string             `json:"sequenceId"`
	Goal              string             `json:"goal"`
	OriginalSequence  string             `json:"originalSequence"`
	OptimizedSequence string             `json:"optimizedSequence"`
	ImprovementScore  float64            `json:"improvementScore"`
	ConfidenceScore   float64            `json:"confidenceScore"`
	Analysis          string             `json:"analysis"`
	Mutations         []MutationResponse `json:"mutations"`
}

type SequenceResponse struct {
	ID            string                 `json:"id"`
	CreatedAt     time.Time              `json:"createdAt"`
	Name          string                 `json:"name"`
	Sequence      string                 `json:"sequence"`
	Length        int                    `json:"length"`
	Source        string                 `json:"source"`
	Optimizations []OptimizationResponse `json:"optimizations"`
}

type ProjectResponse struct {
	ID          string             `json:"id"`
	CreatedAt   time.Time          `json:"createdAt"`
	Name        string             `json:"name"`
	Description string             `json:"description"`
	OwnerID     string             `json:"ownerId"`
	Sequences   []SequenceResponse `json:"sequences"`
	Count       ProjectCounts      `json:"_count"`
}

type ProjectCounts struct {
	Sequences     int `json:"sequences"`
	Optimizations int `json:"optimizations"`
}

func ToProjectResponse(p *domain.Project) ProjectResponse {
	sequences := make([]SequenceResponse, 0, len(p.Sequences))
	for _, s := range p.Sequences {
		sequences = append(sequences, toSequenceResponse(s))
	}
	return ProjectResponse{
		ID:          p.ID.String(),
		CreatedAt:   p.CreatedAt,
		Name:        p.Name,
		Description: p.Description,
		OwnerID:     p.OwnerID,
		Sequences:   sequences,
		Count: ProjectCounts{
			Sequences:     p.SequenceCount,
			Optimizations: p.OptimizationCount,
		},
	}
}

func toSequenceResponse(s *domain.Sequence) SequenceResponse {
	optimizations := make([]OptimizationResponse, 0, len(s.Optimizations))
	for _, res := range s.Optimizations {
		optimizations = append(optimizations, toOptimizationResponse(res))
	}
	return SequenceResponse{
		ID:            s.ID.String(),
		CreatedAt:     s.CreatedAt,
		Name:          s.Name,
		Sequence:      s.Sequence,
		Length:        s.Length,
		Source:        string(s.Source),
		Optimizations: optimizations,
	}
}

func toOptimizationResponse(res *domain.OptimizationResult) OptimizationResponse {
	mutations := make([]MutationResponse, 0, len(res.Mutations))
	for _, m := range res.Mutations {
		mutations = append(mutations, MutationResponse{
			ID:       m.ID.String(),
			Notation: m.Notation,
		})
	}
	return OptimizationResponse{
		ID:                res.ID.String(),
		CreatedAt:         res.CreatedAt,
		ProjectID:         res.ProjectID.String(),
		SequenceID:        res.SequenceID.String(),
		Goal:              string(res.Goal),
		OriginalSequence:  res.OriginalSequence,
		OptimizedSequence: res.OptimizedSequence,
		ImprovementScore:  res.ImprovementScore,
		ConfidenceScore:   res.ConfidenceScore,
		Analysis:          res.Analysis,
		Mutations:         mutations,
	}
}

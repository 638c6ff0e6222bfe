package dto

import "protein-optimizer-service/internal/domain"

type OptimizeRequest struct {
	Sequence string `json:"sequence"`
	Goal     string `json:"goal"`
}

type OptimizeResponse struct {
	OptimizedSequence string   `json:"optimizedSequence"`
	Mutations         []string `json:"mutations"`
	ImprovementScore  float64  `json:"improvementScore"`
	ConfidenceScore   float64  `json:"confidenceScore"`
	Analysis          string   `json:"analysis"`
}

func ToOptimizeResponse(record *domain.OptimizationRecord) OptimizeResponse {
	mutations := record.Mutations
	if mutations == nil {
		mutations = []string{}
	}
	return OptimizeResponse{
		OptimizedSequence: record.OptimizedSequence,
		Mutations:         mutations,
		ImprovementScore:  record.ImprovementScore,
		ConfidenceScore:   record.ConfidenceScore,
		Analysis:          record.Analysis,
	}
}

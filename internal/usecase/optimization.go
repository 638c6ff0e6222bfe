package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"protein-optimizer-service/internal/domain"
)

const (
	defaultProjectName        = "Demo Project"
	defaultProjectDescription = "Demo project for protein optimization"

	unavailableAnalysis = "AI optimization service unavailable. Basic analysis performed."
	analysisMaxChars    = 500

	unavailableImprovement = 10
	unavailableConfidence  = 50
	unparseableImprovement = 15
	unparseableConfidence  = 70
)

const systemPrompt = `You are an expert protein engineer and bioinformatician. Your task is to optimize protein sequences for specific goals.

For the given protein sequence, analyze it and suggest optimizations. You must respond with a JSON object containing:

1. optimizedSequence: The optimized protein sequence (single-letter amino acid codes)
2. mutations: Array of mutations in format ["A15V", "G23S"] etc.
3. improvementScore: Estimated improvement percentage (0-100)
4. confidenceScore: Confidence in the optimization (0-100)
5. analysis: Brief explanation of the optimization strategy

Optimization goals:
- stability: Improve protein stability, reduce aggregation, increase melting temperature
- activity: Enhance enzymatic activity or binding affinity
- expression: Improve expression yield and solubility

Keep mutations minimal and conservative. Only suggest changes that are likely to improve the target property.`

// proposal is the JSON shape the optimization service is asked to produce.
type proposal struct {
	OptimizedSequence string   `json:"optimizedSequence"`
	Mutations         []string `json:"mutations"`
	ImprovementScore  float64  `json:"improvementScore"`
	ConfidenceScore   float64  `json:"confidenceScore"`
	Analysis          string   `json:"analysis"`
}

type OptimizationUseCase struct {
	client       domain.OptimizerClient
	projectRepo  domain.ProjectRepository
	sequenceRepo domain.SequenceRepository
	resultRepo   domain.OptimizationRepository
}

func NewOptimizationUseCase(
	client domain.OptimizerClient,
	projectRepo domain.ProjectRepository,
	sequenceRepo domain.SequenceRepository,
	resultRepo domain.OptimizationRepository,
) *OptimizationUseCase {
	return &OptimizationUseCase{
		client:       client,
		projectRepo:  projectRepo,
		sequenceRepo: sequenceRepo,
		resultRepo:   resultRepo,
	}
}

// Optimize validates the input, obtains an optimization proposal and records
// it under the owner's default project. Once the input passes validation the
// call cannot fail: service errors and unparseable output degrade to
// deterministic fallback records, and store errors are logged but never
// propagated. The computed record is always returned.
func (uc *OptimizationUseCase) Optimize(ctx context.Context, ownerID, rawSequence string, goal domain.Goal) (*domain.OptimizationRecord, error) {
	sequence, err := domain.NormalizeSequence(rawSequence)
	if err != nil {
		return nil, err
	}
	if _, err := domain.ParseGoal(string(goal)); err != nil {
		return nil, err
	}

	record := uc.propose(ctx, sequence, goal)

	if err := uc.persist(ctx, ownerID, record); err != nil {
		log.WithError(err).WithFields(log.Fields{
			"owner_id": ownerID,
			"goal":     goal,
		}).Error("storing optimization record failed")
	}

	return record, nil
}

// propose runs the compute stage: one attempt against the external service,
// with the unavailable/unparseable fallbacks absorbing every failure mode.
func (uc *OptimizationUseCase) propose(ctx context.Context, sequence string, goal domain.Goal) *domain.OptimizationRecord {
	req := domain.OptimizerRequest{
		SystemPrompt: systemPrompt,
		UserPrompt: fmt.Sprintf(
			"Optimize this protein sequence for %s: %s\n\nProvide the optimization results in JSON format as specified.",
			goal, sequence,
		),
	}

	raw, err := uc.client.Generate(ctx, req)
	if err != nil {
		log.WithError(err).WithField("goal", goal).Warn("optimization service unavailable, falling back")
		return &domain.OptimizationRecord{
			Goal:              goal,
			OriginalSequence:  sequence,
			OptimizedSequence: sequence,
			Mutations:         []string{},
			ImprovementScore:  unavailableImprovement,
			ConfidenceScore:   unavailableConfidence,
			Analysis:          unavailableAnalysis,
		}
	}

	var p proposal
	if err := json.Unmarshal([]byte(raw), &p); err != nil || p.OptimizedSequence == "" {
		log.WithField("goal", goal).Warn("optimization service returned unparseable output, falling back")
		return &domain.OptimizationRecord{
			Goal:              goal,
			OriginalSequence:  sequence,
			OptimizedSequence: sequence,
			Mutations:         []string{},
			ImprovementScore:  unparseableImprovement,
			ConfidenceScore:   unparseableConfidence,
			Analysis:          truncate(raw, analysisMaxChars),
		}
	}

	return &domain.OptimizationRecord{
		Goal:              goal,
		OriginalSequence:  sequence,
		OptimizedSequence: p.OptimizedSequence,
		Mutations:         domain.FilterMutations(p.Mutations),
		ImprovementScore:  clampScore(p.ImprovementScore),
		ConfidenceScore:   clampScore(p.ConfidenceScore),
		Analysis:          p.Analysis,
	}
}

// persist runs the storage stage: default project, sequence row, then the
// result with its mutations as one transactional unit.
func (uc *OptimizationUseCase) persist(ctx context.Context, ownerID string, record *domain.OptimizationRecord) error {
	project, err := uc.findOrCreateDefaultProject(ctx, ownerID)
	if err != nil {
		return err
	}

	now := time.Now()
	sequence := &domain.Sequence{
		ID:        uuid.New(),
		CreatedAt: now,
		ProjectID: project.ID,
		Name:      fmt.Sprintf("Optimized for %s", record.Goal),
		Sequence:  record.OriginalSequence,
		Length:    len(record.OriginalSequence),
		Source:    domain.SourceUserInput,
	}
	if err := uc.sequenceRepo.Create(ctx, sequence); err != nil {
		return err
	}

	result := &domain.OptimizationResult{
		ID:                uuid.New(),
		CreatedAt:         now,
		ProjectID:         project.ID,
		SequenceID:        sequence.ID,
		Goal:              record.Goal,
		OriginalSequence:  record.OriginalSequence,
		OptimizedSequence: record.OptimizedSequence,
		ImprovementScore:  record.ImprovementScore,
		ConfidenceScore:   record.ConfidenceScore,
		Analysis:          record.Analysis,
		Parameters: map[string]interface{}{
			"goal":      string(record.Goal),
			"timestamp": now.UTC().Format(time.RFC3339),
		},
	}
	return uc.resultRepo.Create(ctx, result, record.Mutations)
}

// findOrCreateDefaultProject prefers the newest existing default project.
// Under a concurrent create the unique (owner_id, name) constraint makes the
// loser re-read the winner's row.
func (uc *OptimizationUseCase) findOrCreateDefaultProject(ctx context.Context, ownerID string) (*domain.Project, error) {
	project, err := uc.projectRepo.FindNewestByName(ctx, ownerID, defaultProjectName)
	if err == nil {
		return project, nil
	}
	if !errors.Is(err, domain.ErrProjectNotFound) {
		return nil, err
	}

	project = &domain.Project{
		ID:          uuid.New(),
		CreatedAt:   time.Now(),
		Name:        defaultProjectName,
		Description: defaultProjectDescription,
		OwnerID:     ownerID,
	}
	if err := uc.projectRepo.Create(ctx, project); err != nil {
		if errors.Is(err, domain.ErrProjectNameConflict) {
			return uc.projectRepo.FindNewestByName(ctx, ownerID, defaultProjectName)
		}
		return nil, err
	}
	return project, nil
}

func clampScore(score float64) float64 {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}

package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"protein-optimizer-service/internal/domain"
)

type optimizationRepo struct {
	pool *pgxpool.Pool
}

func NewOptimizationRepository(pool *pgxpool.Pool) domain.OptimizationRepository {
	return &optimizationRepo{pool: pool}
}

// Create writes the result row and its mutation rows inside one transaction.
// The sequence must exist and belong to result.ProjectID before anything is
// written.
func (r *optimizationRepo) Create(ctx context.Context, result *domain.OptimizationResult, mutations []string) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin optimization tx: %w", err)
	}
	defer tx.Rollback(ctx)

	var sequenceProjectID uuid.UUID
	err = tx.QueryRow(ctx,
		`SELECT project_id FROM protein_sequence WHERE id = $1`,
		result.SequenceID,
	).Scan(&sequenceProjectID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrSequenceNotFound
		}
		return fmt.Errorf("check sequence parent: %w", err)
	}
	if sequenceProjectID != result.ProjectID {
		return domain.ErrProjectSequenceMismatch
	}

	paramsJSON, err := json.Marshal(result.Parameters)
	if err != nil {
		return fmt.Errorf("marshal result parameters: %w", err)
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO optimization_result
			(id, created_at, project_id, sequence_id, goal, original_sequence,
			 optimized_sequence, improvement_score, confidence_score, analysis, parameters)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`,
		result.ID, result.CreatedAt, result.ProjectID, result.SequenceID,
		string(result.Goal), result.OriginalSequence, result.OptimizedSequence,
		result.ImprovementScore, result.ConfidenceScore, result.Analysis, paramsJSON,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return domain.ErrProjectNotFound
		}
		return fmt.Errorf("create optimization result: %w", err)
	}

	now := time.Now()
	for i, notation := range mutations {
		_, err = tx.Exec(ctx, `
			INSERT INTO mutation (id, created_at, result_id, notation, ordinal)
			VALUES ($1, $2, $3, $4, $5)
		`, uuid.New(), now, result.ID, notation, i)
		if err != nil {
			return fmt.Errorf("create mutation row: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit optimization tx: %w", err)
	}
	return nil
}

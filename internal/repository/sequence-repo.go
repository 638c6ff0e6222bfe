package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"protein-optimizer-service/internal/domain"
)

type sequenceRepo struct {
	pool *pgxpool.Pool
}

func NewSequenceRepository(pool *pgxpool.Pool) domain.SequenceRepository {
	return &sequenceRepo{pool: pool}
}

func (r *sequenceRepo) Create(ctx context.Context, sequence *domain.Sequence) error {
	query := `
		INSERT INTO protein_sequence (id, created_at, project_id, name, sequence, length, source)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := r.pool.Exec(ctx, query,
		sequence.ID, sequence.CreatedAt, sequence.ProjectID,
		sequence.Name, sequence.Sequence, sequence.Length, string(sequence.Source),
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return domain.ErrProjectNotFound
		}
		return fmt.Errorf("create sequence: %w", err)
	}
	return nil
}

func (r *sequenceRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Sequence, error) {
	query := `
		SELECT id, created_at, project_id, name, sequence, length, source
		FROM protein_sequence
		WHERE id = $1
	`
	var s domain.Sequence
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&s.ID, &s.CreatedAt, &s.ProjectID, &s.Name, &s.Sequence, &s.Length, &s.Source,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrSequenceNotFound
		}
		return nil, fmt.Errorf("get sequence by id: %w", err)
	}
	return &s, nil
}

package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"protein-optimizer-service/internal/domain"
)

type projectRepo struct {
	pool *pgxpool.Pool
}

func NewProjectRepository(pool *pgxpool.Pool) domain.ProjectRepository {
	return &projectRepo{pool: pool}
}

func (r *projectRepo) Create(ctx context.Context, project *domain.Project) error {
	query := `
		INSERT INTO protein_project (id, created_at, name, description, owner_id)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := r.pool.Exec(ctx, query,
		project.ID, project.CreatedAt, project.Name, project.Description, project.OwnerID,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrProjectNameConflict
		}
		return fmt.Errorf("create project: %w", err)
	}
	return nil
}

func (r *projectRepo) FindNewestByName(ctx context.Context, ownerID, name string) (*domain.Project, error) {
	query := `
		SELECT id, created_at, name, description, owner_id
		FROM protein_project
		WHERE owner_id = $1 AND name = $2
		ORDER BY created_at DESC
		LIMIT 1
	`
	var p domain.Project
	err := r.pool.QueryRow(ctx, query, ownerID, name).Scan(
		&p.ID, &p.CreatedAt, &p.Name, &p.Description, &p.OwnerID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrProjectNotFound
		}
		return nil, fmt.Errorf("find project by name: %w", err)
	}
	return &p, nil
}

func (r *projectRepo) ListByOwner(ctx context.Context, ownerID string) ([]*domain.Project, error) {
	projects, err := r.queryProjects(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if len(projects) == 0 {
		return projects, nil
	}

	projectIDs := make([]uuid.UUID, 0, len(projects))
	byProject := make(map[uuid.UUID]*domain.Project, len(projects))
	for _, p := range projects {
		projectIDs = append(projectIDs, p.ID)
		byProject[p.ID] = p
	}

	sequences, bySequence, err := r.querySequences(ctx, projectIDs)
	if err != nil {
		return nil, err
	}
	for _, s := range sequences {
		if p, ok := byProject[s.ProjectID]; ok {
			p.Sequences = append(p.Sequences, s)
			p.SequenceCount++
		}
	}

	results, byResult, err := r.queryResults(ctx, projectIDs)
	if err != nil {
		return nil, err
	}
	for _, res := range results {
		if s, ok := bySequence[res.SequenceID]; ok {
			s.Optimizations = append(s.Optimizations, res)
		}
		if p, ok := byProject[res.ProjectID]; ok {
			p.OptimizationCount++
		}
	}

	if err := r.attachMutations(ctx, byResult); err != nil {
		return nil, err
	}

	return projects, nil
}

func (r *projectRepo) queryProjects(ctx context.Context, ownerID string) ([]*domain.Project, error) {
	query := `
		SELECT id, created_at, name, description, owner_id
		FROM protein_project
		WHERE owner_id = $1
		ORDER BY created_at DESC
	`
	rows, err := r.pool.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer rows.Close()

	projects := make([]*domain.Project, 0)
	for rows.Next() {
		var p domain.Project
		if err := rows.Scan(&p.ID, &p.CreatedAt, &p.Name, &p.Description, &p.OwnerID); err != nil {
			return nil, fmt.Errorf("scan project: %w", err)
		}
		projects = append(projects, &p)
	}
	return projects, rows.Err()
}

func (r *projectRepo) querySequences(ctx context.Context, projectIDs []uuid.UUID) ([]*domain.Sequence, map[uuid.UUID]*domain.Sequence, error) {
	query := `
		SELECT id, created_at, project_id, name, sequence, length, source
		FROM protein_sequence
		WHERE project_id = ANY($1)
		ORDER BY created_at DESC
	`
	rows, err := r.pool.Query(ctx, query, projectIDs)
	if err != nil {
		return nil, nil, fmt.Errorf("list sequences: %w", err)
	}
	defer rows.Close()

	sequences := make([]*domain.Sequence, 0)
	byID := make(map[uuid.UUID]*domain.Sequence)
	for rows.Next() {
		var s domain.Sequence
		if err := rows.Scan(&s.ID, &s.CreatedAt, &s.ProjectID, &s.Name, &s.Sequence, &s.Length, &s.Source); err != nil {
			return nil, nil, fmt.Errorf("scan sequence: %w", err)
		}
		sequences = append(sequences, &s)
		byID[s.ID] = &s
	}
	return sequences, byID, rows.Err()
}

func (r *projectRepo) queryResults(ctx context.Context, projectIDs []uuid.UUID) ([]*domain.OptimizationResult, map[uuid.UUID]*domain.OptimizationResult, error) {
	query := `
		SELECT id, created_at, project_id, sequence_id, goal, original_sequence,
		       optimized_sequence, improvement_score, confidence_score, analysis, parameters
		FROM optimization_result
		WHERE project_id = ANY($1)
		ORDER BY created_at DESC
	`
	rows, err := r.pool.Query(ctx, query, projectIDs)
	if err != nil {
		return nil, nil, fmt.Errorf("list optimization results: %w", err)
	}
	defer rows.Close()

	results := make([]*domain.OptimizationResult, 0)
	byID := make(map[uuid.UUID]*domain.OptimizationResult)
	for rows.Next() {
		var res domain.OptimizationResult
		var params []byte
		if err := rows.Scan(
			&res.ID, &res.CreatedAt, &res.ProjectID, &res.SequenceID, &res.Goal,
			&res.OriginalSequence, &res.OptimizedSequence,
			&res.ImprovementScore, &res.ConfidenceScore, &res.Analysis, &params,
		); err != nil {
			return nil, nil, fmt.Errorf("scan optimization result: %w", err)
		}
		if len(params) > 0 {
			if err := json.Unmarshal(params, &res.Parameters); err != nil {
				return nil, nil, fmt.Errorf("unmarshal result parameters: %w", err)
			}
		}
		results = append(results, &res)
		byID[res.ID] = &res
	}
	return results, byID, rows.Err()
}

func (r *projectRepo) attachMutations(ctx context.Context, byResult map[uuid.UUID]*domain.OptimizationResult) error {
	if len(byResult) == 0 {
		return nil
	}
	resultIDs := make([]uuid.UUID, 0, len(byResult))
	for id := range byResult {
		resultIDs = append(resultIDs, id)
	}

	query := `
		SELECT id, created_at, result_id, notation
		FROM mutation
		WHERE result_id = ANY($1)
		ORDER BY ordinal
	`
	rows, err := r.pool.Query(ctx, query, resultIDs)
	if err != nil {
		return fmt.Errorf("list mutations: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var m domain.Mutation
		if err := rows.Scan(&m.ID, &m.CreatedAt, &m.ResultID, &m.Notation); err != nil {
			return fmt.Errorf("scan mutation: %w", err)
		}
		if res, ok := byResult[m.ResultID]; ok {
			res.Mutations = append(res.Mutations, &m)
		}
	}
	return rows.Err()
}

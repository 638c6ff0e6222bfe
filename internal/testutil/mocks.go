package testutil

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"protein-optimizer-service/internal/domain"
)

// MockProjectRepo is a mock of ProjectRepository.
type MockProjectRepo struct {
	mock.Mock
}

func (m *MockProjectRepo) Create(ctx context.Context, project *domain.Project) error {
	args := m.Called(ctx, project)
	return args.Error(0)
}

func (m *MockProjectRepo) FindNewestByName(ctx context.Context, ownerID, name string) (*domain.Project, error) {
	args := m.Called(ctx, ownerID, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Project), args.Error(1)
}

func (m *MockProjectRepo) ListByOwner(ctx context.Context, ownerID string) ([]*domain.Project, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Project), args.Error(1)
}

// MockSequenceRepo is a mock of SequenceRepository.
type MockSequenceRepo struct {
	mock.Mock
}

func (m *MockSequenceRepo) Create(ctx context.Context, sequence *domain.Sequence) error {
	args := m.Called(ctx, sequence)
	return args.Error(0)
}

func (m *MockSequenceRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Sequence, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Sequence), args.Error(1)
}

// MockOptimizationRepo is a mock of OptimizationRepository.
type MockOptimizationRepo struct {
	mock.Mock
}

func (m *MockOptimizationRepo) Create(ctx context.Context, result *domain.OptimizationResult, mutations []string) error {
	args := m.Called(ctx, result, mutations)
	return args.Error(0)
}

// MockOptimizerClient is a mock of the external optimization service port.
type MockOptimizerClient struct {
	mock.Mock
}

func (m *MockOptimizerClient) Generate(ctx context.Context, req domain.OptimizerRequest) (string, error) {
	args := m.Called(ctx, req)
	return args.String(0), args.Error(1)
}

package repositories

import (
	"context"

	"crm-dashboard/internal/dto"
	"crm-dashboard/internal/integrations/backend"

	"go.uber.org/zap"
)

type BranchRepositoryInterface interface {
	GetBranches(ctx context.Context) ([]dto.Branch, error)
	FindBranch(ctx context.Context, id uint64) (*dto.Branch, error)
	CreateBranch(ctx context.Context, payload dto.CreateBranchDTO) (*dto.Branch, error)
	UpdateBranch(ctx context.Context, id uint64, payload dto.UpdateBranchDTO) (*dto.Branch, error)
	DeleteBranch(ctx context.Context, id uint64) error
}

type BranchRepository struct {
	client *backend.Client
	logger *zap.Logger
}

func NewBranchRepository(client *backend.Client, logger *zap.Logger) BranchRepositoryInterface {
	return &BranchRepository{client: client, logger: logger}
}

func (r *BranchRepository) GetBranches(ctx context.Context) ([]dto.Branch, error) {
	branches, err := backend.Get[[]dto.Branch](ctx, r.client, branchesPath, nil)
	return orEmpty(branches), err
}

func (r *BranchRepository) FindBranch(ctx context.Context, id uint64) (*dto.Branch, error) {
	branch, err := backend.Get[dto.Branch](ctx, r.client, idPath(branchesPath, id), nil)
	if err != nil {
		return nil, err
	}
	return &branch, nil
}

func (r *BranchRepository) CreateBranch(ctx context.Context, payload dto.CreateBranchDTO) (*dto.Branch, error) {
	branch, err := backend.Post[dto.Branch](ctx, r.client, branchesPath, payload)
	if err != nil {
		return nil, err
	}
	return &branch, nil
}

func (r *BranchRepository) UpdateBranch(ctx context.Context, id uint64, payload dto.UpdateBranchDTO) (*dto.Branch, error) {
	branch, err := backend.Put[dto.Branch](ctx, r.client, idPath(branchesPath, id), payload)
	if err != nil {
		return nil, err
	}
	return &branch, nil
}

func (r *BranchRepository) DeleteBranch(ctx context.Context, id uint64) error {
	return backend.Delete(ctx, r.client, idPath(branchesPath, id))
}

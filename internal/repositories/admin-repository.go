package repositories

import (
	"context"

	"crm-dashboard/internal/dto"
	"crm-dashboard/internal/integrations/backend"

	"go.uber.org/zap"
)

type AdminRepositoryInterface interface {
	GetAdmins(ctx context.Context) ([]dto.Admin, error)
	CreateAdmin(ctx context.Context, payload dto.CreateAdminDTO) (*dto.Admin, error)
}

type AdminRepository struct {
	client *backend.Client
	logger *zap.Logger
}

func NewAdminRepository(client *backend.Client, logger *zap.Logger) AdminRepositoryInterface {
	return &AdminRepository{client: client, logger: logger}
}

func (r *AdminRepository) GetAdmins(ctx context.Context) ([]dto.Admin, error) {
	admins, err := backend.Get[[]dto.Admin](ctx, r.client, adminsPath, nil)
	return orEmpty(admins), err
}

func (r *AdminRepository) CreateAdmin(ctx context.Context, payload dto.CreateAdminDTO) (*dto.Admin, error) {
	admin, err := backend.Post[dto.Admin](ctx, r.client, adminsPath, payload)
	if err != nil {
		return nil, err
	}
	return &admin, nil
}

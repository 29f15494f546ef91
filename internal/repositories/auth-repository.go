package repositories

import (
	"context"

	"crm-dashboard/internal/dto"
	"crm-dashboard/internal/integrations/backend"

	"go.uber.org/zap"
)

type AuthRepositoryInterface interface {
	Login(ctx context.Context, payload dto.LoginDTO) (*dto.AuthData, error)
}

type AuthRepository struct {
	client *backend.Client
	logger *zap.Logger
}

func NewAuthRepository(client *backend.Client, logger *zap.Logger) AuthRepositoryInterface {
	return &AuthRepository{client: client, logger: logger}
}

func (r *AuthRepository) Login(ctx context.Context, payload dto.LoginDTO) (*dto.AuthData, error) {
	data, err := backend.Post[dto.AuthData](ctx, r.client, authPath+"/login", payload)
	if err != nil {
		return nil, err
	}
	return &data, nil
}

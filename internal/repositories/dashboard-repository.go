package repositories

import (
	"context"

	"crm-dashboard/internal/dto"
	"crm-dashboard/internal/integrations/backend"

	"go.uber.org/zap"
)

type DashboardRepositoryInterface interface {
	GetDashboard(ctx context.Context) (*dto.DashboardResponse, error)
}

type DashboardRepository struct {
	client *backend.Client
	logger *zap.Logger
}

func NewDashboardRepository(client *backend.Client, logger *zap.Logger) DashboardRepositoryInterface {
	return &DashboardRepository{client: client, logger: logger}
}

func (r *DashboardRepository) GetDashboard(ctx context.Context) (*dto.DashboardResponse, error) {
	res, err := backend.Get[dto.DashboardResponse](ctx, r.client, dashboardPath, nil)
	if err != nil {
		return nil, err
	}
	return &res, nil
}

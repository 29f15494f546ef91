package repositories

import (
	"context"

	"crm-dashboard/internal/dto"
	"crm-dashboard/internal/integrations/backend"

	"go.uber.org/zap"
)

type TicketStageRepositoryInterface interface {
	GetTicketStages(ctx context.Context, ticketTypeID uint64) ([]dto.TicketStage, error)
	CreateTicketStage(ctx context.Context, payload dto.CreateTicketStageDTO) (*dto.TicketStage, error)
	UpdateTicketStage(ctx context.Context, id uint64, payload dto.UpdateTicketStageDTO) (*dto.TicketStage, error)
	DeleteTicketStage(ctx context.Context, id uint64) error
}

type TicketStageRepository struct {
	client *backend.Client
	logger *zap.Logger
}

func NewTicketStageRepository(client *backend.Client, logger *zap.Logger) TicketStageRepositoryInterface {
	return &TicketStageRepository{client: client, logger: logger}
}

func (r *TicketStageRepository) GetTicketStages(ctx context.Context, ticketTypeID uint64) ([]dto.TicketStage, error) {
	q := newQuery().uint("ticketTypeId", &ticketTypeID)
	stages, err := backend.Get[[]dto.TicketStage](ctx, r.client, ticketStagesPath, q.values())
	return orEmpty(stages), err
}

func (r *TicketStageRepository) CreateTicketStage(ctx context.Context, payload dto.CreateTicketStageDTO) (*dto.TicketStage, error) {
	stage, err := backend.Post[dto.TicketStage](ctx, r.client, ticketStagesPath, payload)
	if err != nil {
		return nil, err
	}
	return &stage, nil
}

func (r *TicketStageRepository) UpdateTicketStage(ctx context.Context, id uint64, payload dto.UpdateTicketStageDTO) (*dto.TicketStage, error) {
	stage, err := backend.Put[dto.TicketStage](ctx, r.client, idPath(ticketStagesPath, id), payload)
	if err != nil {
		return nil, err
	}
	return &stage, nil
}

func (r *TicketStageRepository) DeleteTicketStage(ctx context.Context, id uint64) error {
	return backend.Delete(ctx, r.client, idPath(ticketStagesPath, id))
}

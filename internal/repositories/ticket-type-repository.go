package repositories

import (
	"context"

	"crm-dashboard/internal/dto"
	"crm-dashboard/internal/integrations/backend"

	"go.uber.org/zap"
)

type TicketTypeRepositoryInterface interface {
	GetTicketTypes(ctx context.Context) ([]dto.TicketType, error)
	CreateTicketType(ctx context.Context, payload dto.CreateTicketTypeDTO) (*dto.TicketType, error)
	UpdateTicketType(ctx context.Context, id uint64, payload dto.UpdateTicketTypeDTO) (*dto.TicketType, error)
	DeleteTicketType(ctx context.Context, id uint64) error
}

type TicketTypeRepository struct {
	client *backend.Client
	logger *zap.Logger
}

func NewTicketTypeRepository(client *backend.Client, logger *zap.Logger) TicketTypeRepositoryInterface {
	return &TicketTypeRepository{client: client, logger: logger}
}

func (r *TicketTypeRepository) GetTicketTypes(ctx context.Context) ([]dto.TicketType, error) {
	types, err := backend.Get[[]dto.TicketType](ctx, r.client, ticketTypesPath, nil)
	return orEmpty(types), err
}

func (r *TicketTypeRepository) CreateTicketType(ctx context.Context, payload dto.CreateTicketTypeDTO) (*dto.TicketType, error) {
	t, err := backend.Post[dto.TicketType](ctx, r.client, ticketTypesPath, payload)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *TicketTypeRepository) UpdateTicketType(ctx context.Context, id uint64, payload dto.UpdateTicketTypeDTO) (*dto.TicketType, error) {
	t, err := backend.Put[dto.TicketType](ctx, r.client, idPath(ticketTypesPath, id), payload)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *TicketTypeRepository) DeleteTicketType(ctx context.Context, id uint64) error {
	return backend.Delete(ctx, r.client, idPath(ticketTypesPath, id))
}

package repositories

import (
	"context"

	"crm-dashboard/internal/dto"
	"crm-dashboard/internal/integrations/backend"

	"go.uber.org/zap"
)

type TicketRepositoryInterface interface {
	GetTickets(ctx context.Context) ([]dto.Ticket, error)
	FindTicket(ctx context.Context, id uint64) (*dto.Ticket, error)
	CreateTicket(ctx context.Context, payload dto.CreateTicketDTO) (*dto.Ticket, error)
	UpdateTicket(ctx context.Context, id uint64, payload dto.UpdateTicketDTO) (*dto.Ticket, error)
	DeleteTicket(ctx context.Context, id uint64) error
}

type TicketRepository struct {
	client *backend.Client
	logger *zap.Logger
}

func NewTicketRepository(client *backend.Client, logger *zap.Logger) TicketRepositoryInterface {
	return &TicketRepository{client: client, logger: logger}
}

func (r *TicketRepository) GetTickets(ctx context.Context) ([]dto.Ticket, error) {
	tickets, err := backend.Get[[]dto.Ticket](ctx, r.client, ticketsPath, nil)
	return orEmpty(tickets), err
}

func (r *TicketRepository) FindTicket(ctx context.Context, id uint64) (*dto.Ticket, error) {
	ticket, err := backend.Get[dto.Ticket](ctx, r.client, idPath(ticketsPath, id), nil)
	if err != nil {
		return nil, err
	}
	return &ticket, nil
}

func (r *TicketRepository) CreateTicket(ctx context.Context, payload dto.CreateTicketDTO) (*dto.Ticket, error) {
	ticket, err := backend.Post[dto.Ticket](ctx, r.client, ticketsPath, payload)
	if err != nil {
		return nil, err
	}
	return &ticket, nil
}

func (r *TicketRepository) UpdateTicket(ctx context.Context, id uint64, payload dto.UpdateTicketDTO) (*dto.Ticket, error) {
	ticket, err := backend.Put[dto.Ticket](ctx, r.client, idPath(ticketsPath, id), payload)
	if err != nil {
		return nil, err
	}
	return &ticket, nil
}

func (r *TicketRepository) DeleteTicket(ctx context.Context, id uint64) error {
	return backend.Delete(ctx, r.client, idPath(ticketsPath, id))
}

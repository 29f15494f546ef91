package repositories

import (
	"context"

	"crm-dashboard/internal/dto"
	"crm-dashboard/internal/integrations/backend"

	"go.uber.org/zap"
)

// История этапов только читается.
type TicketStageHistoryRepositoryInterface interface {
	GetTicketStageHistory(ctx context.Context, ticketID uint64) ([]dto.TicketStageHistory, error)
}

type TicketStageHistoryRepository struct {
	client *backend.Client
	logger *zap.Logger
}

func NewTicketStageHistoryRepository(client *backend.Client, logger *zap.Logger) TicketStageHistoryRepositoryInterface {
	return &TicketStageHistoryRepository{client: client, logger: logger}
}

func (r *TicketStageHistoryRepository) GetTicketStageHistory(ctx context.Context, ticketID uint64) ([]dto.TicketStageHistory, error) {
	history, err := backend.Get[[]dto.TicketStageHistory](ctx, r.client, idPath(ticketStageHistoryPath, ticketID), nil)
	return orEmpty(history), err
}

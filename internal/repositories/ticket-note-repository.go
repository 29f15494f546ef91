package repositories

import (
	"context"

	"crm-dashboard/internal/dto"
	"crm-dashboard/internal/integrations/backend"

	"go.uber.org/zap"
)

type TicketNoteRepositoryInterface interface {
	GetTicketNotes(ctx context.Context, ticketID uint64) ([]dto.TicketNote, error)
	CreateTicketNote(ctx context.Context, payload dto.CreateTicketNoteDTO) (*dto.TicketNote, error)
}

type TicketNoteRepository struct {
	client *backend.Client
	logger *zap.Logger
}

func NewTicketNoteRepository(client *backend.Client, logger *zap.Logger) TicketNoteRepositoryInterface {
	return &TicketNoteRepository{client: client, logger: logger}
}

func (r *TicketNoteRepository) GetTicketNotes(ctx context.Context, ticketID uint64) ([]dto.TicketNote, error) {
	q := newQuery().uint("ticketId", &ticketID)
	notes, err := backend.Get[[]dto.TicketNote](ctx, r.client, ticketNotesPath, q.values())
	return orEmpty(notes), err
}

func (r *TicketNoteRepository) CreateTicketNote(ctx context.Context, payload dto.CreateTicketNoteDTO) (*dto.TicketNote, error) {
	note, err := backend.Post[dto.TicketNote](ctx, r.client, ticketNotesPath, payload)
	if err != nil {
		return nil, err
	}
	return &note, nil
}

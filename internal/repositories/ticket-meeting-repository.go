package repositories

import (
	"context"

	"crm-dashboard/internal/dto"
	"crm-dashboard/internal/integrations/backend"

	"go.uber.org/zap"
)

type TicketMeetingRepositoryInterface interface {
	GetTicketMeetings(ctx context.Context, ticketID uint64) ([]dto.TicketMeeting, error)
	CreateTicketMeeting(ctx context.Context, payload dto.CreateMeetingDTO) (*dto.TicketMeeting, error)
	UpdateTicketMeeting(ctx context.Context, id uint64, payload dto.UpdateMeetingDTO) (*dto.TicketMeeting, error)
	AddParticipant(ctx context.Context, meetingID uint64, participant dto.MeetingParticipant) (*dto.MeetingParticipant, error)
	DeleteParticipant(ctx context.Context, participantID uint64) error
}

type TicketMeetingRepository struct {
	client *backend.Client
	logger *zap.Logger
}

func NewTicketMeetingRepository(client *backend.Client, logger *zap.Logger) TicketMeetingRepositoryInterface {
	return &TicketMeetingRepository{client: client, logger: logger}
}

func (r *TicketMeetingRepository) GetTicketMeetings(ctx context.Context, ticketID uint64) ([]dto.TicketMeeting, error) {
	q := newQuery().uint("ticketId", &ticketID)
	meetings, err := backend.Get[[]dto.TicketMeeting](ctx, r.client, ticketMeetingsPath, q.values())
	return orEmpty(meetings), err
}

func (r *TicketMeetingRepository) CreateTicketMeeting(ctx context.Context, payload dto.CreateMeetingDTO) (*dto.TicketMeeting, error) {
	meeting, err := backend.Post[dto.TicketMeeting](ctx, r.client, ticketMeetingsPath, payload)
	if err != nil {
		return nil, err
	}
	return &meeting, nil
}

func (r *TicketMeetingRepository) UpdateTicketMeeting(ctx context.Context, id uint64, payload dto.UpdateMeetingDTO) (*dto.TicketMeeting, error) {
	meeting, err := backend.Put[dto.TicketMeeting](ctx, r.client, idPath(ticketMeetingsPath, id), payload)
	if err != nil {
		return nil, err
	}
	return &meeting, nil
}

func (r *TicketMeetingRepository) AddParticipant(ctx context.Context, meetingID uint64, participant dto.MeetingParticipant) (*dto.MeetingParticipant, error) {
	created, err := backend.Post[dto.MeetingParticipant](ctx, r.client, idPath(ticketMeetingsPath, meetingID, "participants"), participant)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *TicketMeetingRepository) DeleteParticipant(ctx context.Context, participantID uint64) error {
	return backend.Delete(ctx, r.client, idPath(ticketMeetingsPath+"/participants", participantID))
}

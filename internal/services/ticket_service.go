package services

import (
	"context"
	"slices"

	"crm-dashboard/internal/dto"
	"crm-dashboard/internal/repositories"
	"crm-dashboard/internal/views"
	apperrors "crm-dashboard/pkg/errors"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type TicketServiceInterface interface {
	GetTickets(ctx context.Context, filter views.TicketFilter) ([]dto.Ticket, error)
	GetBoard(ctx context.Context, query views.BoardQuery) (*views.BoardView, error)
	GetTicketDetails(ctx context.Context, id uint64) (*dto.TicketDetailsDTO, error)
	CreateTicket(ctx context.Context, payload dto.CreateTicketDTO) ([]dto.Ticket, error)
	UpdateTicket(ctx context.Context, id uint64, payload dto.UpdateTicketDTO) (*dto.TicketDetailsDTO, error)
	DeleteTicket(ctx context.Context, id uint64) ([]dto.Ticket, error)
	AddNote(ctx context.Context, ticketID uint64, payload dto.CreateTicketNoteDTO) (*dto.TicketDetailsDTO, error)

	GetMeetings(ctx context.Context, ticketID uint64) ([]dto.TicketMeeting, error)
	CreateMeeting(ctx context.Context, ticketID uint64, payload dto.CreateMeetingDTO) ([]dto.TicketMeeting, error)
	UpdateMeeting(ctx context.Context, ticketID, meetingID uint64, payload dto.UpdateMeetingDTO) ([]dto.TicketMeeting, error)
	AddParticipant(ctx context.Context, ticketID, meetingID uint64, participant dto.MeetingParticipant) ([]dto.TicketMeeting, error)
	DeleteParticipant(ctx context.Context, ticketID, participantID uint64) ([]dto.TicketMeeting, error)
}

type TicketService struct {
	ticketRepo     repositories.TicketRepositoryInterface
	noteRepo       repositories.TicketNoteRepositoryInterface
	meetingRepo    repositories.TicketMeetingRepositoryInterface
	historyRepo    repositories.TicketStageHistoryRepositoryInterface
	ticketTypeRepo repositories.TicketTypeRepositoryInterface
	stageRepo      repositories.TicketStageRepositoryInterface
	branchRepo     repositories.BranchRepositoryInterface
	logger         *zap.Logger
}

func NewTicketService(
	ticketRepo repositories.TicketRepositoryInterface,
	noteRepo repositories.TicketNoteRepositoryInterface,
	meetingRepo repositories.TicketMeetingRepositoryInterface,
	historyRepo repositories.TicketStageHistoryRepositoryInterface,
	ticketTypeRepo repositories.TicketTypeRepositoryInterface,
	stageRepo repositories.TicketStageRepositoryInterface,
	branchRepo repositories.BranchRepositoryInterface,
	logger *zap.Logger,
) TicketServiceInterface {
	return &TicketService{
		ticketRepo:     ticketRepo,
		noteRepo:       noteRepo,
		meetingRepo:    meetingRepo,
		historyRepo:    historyRepo,
		ticketTypeRepo: ticketTypeRepo,
		stageRepo:      stageRepo,
		branchRepo:     branchRepo,
		logger:         logger,
	}
}

func (s *TicketService) GetTickets(ctx context.Context, filter views.TicketFilter) ([]dto.Ticket, error) {
	tickets, err := s.ticketRepo.GetTickets(ctx)
	if err != nil {
		return nil, err
	}
	return views.FilterTickets(tickets, filter), nil
}

func (s *TicketService) GetBoard(ctx context.Context, query views.BoardQuery) (*views.BoardView, error) {
	var (
		tickets []dto.Ticket
		types   []dto.TicketType
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) { tickets, err = s.ticketRepo.GetTickets(gctx); return })
	g.Go(func() (err error) { types, err = s.ticketTypeRepo.GetTicketTypes(gctx); return })
	if err := g.Wait(); err != nil {
		return nil, err
	}

	typeID, hasType := views.ActiveType(views.TypesWithTickets(tickets, types), query.TypeID)
	var stages []dto.TicketStage
	if hasType {
		var err error
		if stages, err = s.stageRepo.GetTicketStages(ctx, typeID); err != nil {
			return nil, err
		}
	}

	view := views.BuildBoardView(tickets, types, stages, typeID, hasType, query)
	return &view, nil
}

// GetTicketDetails: если не загрузилась хотя бы одна часть, карточки нет целиком.
func (s *TicketService) GetTicketDetails(ctx context.Context, id uint64) (*dto.TicketDetailsDTO, error) {
	var (
		ticket  *dto.Ticket
		details = &dto.TicketDetailsDTO{}
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) { ticket, err = s.ticketRepo.FindTicket(gctx, id); return })
	g.Go(func() (err error) { details.Notes, err = s.noteRepo.GetTicketNotes(gctx, id); return })
	g.Go(func() (err error) { details.Meetings, err = s.meetingRepo.GetTicketMeetings(gctx, id); return })
	g.Go(func() (err error) { details.History, err = s.historyRepo.GetTicketStageHistory(gctx, id); return })
	if err := g.Wait(); err != nil {
		s.logger.Warn("Карточка тикета не загружена", zap.Uint64("ticketID", id), zap.Error(err))
		return nil, err
	}
	details.Ticket = *ticket
	return details, nil
}

func (s *TicketService) CreateTicket(ctx context.Context, payload dto.CreateTicketDTO) ([]dto.Ticket, error) {
	branch, err := s.branchRepo.FindBranch(ctx, payload.BranchID)
	if err != nil {
		return nil, err
	}
	if branch.Company.CompanyID != payload.CompanyID {
		return nil, apperrors.NewInvalidInputError("Branch %d does not belong to company %d", payload.BranchID, payload.CompanyID)
	}

	stages, err := s.stageRepo.GetTicketStages(ctx, payload.TicketTypeID)
	if err != nil {
		return nil, err
	}
	if !slices.ContainsFunc(stages, func(st dto.TicketStage) bool { return st.StageID == payload.InitialStageID }) {
		return nil, apperrors.NewInvalidInputError("Stage %d is not a stage of ticket type %d", payload.InitialStageID, payload.TicketTypeID)
	}

	created, err := s.ticketRepo.CreateTicket(ctx, payload)
	if err != nil {
		return nil, err
	}
	s.logger.Info("Тикет создан", zap.Uint64("ticketID", created.TicketID))
	return s.ticketRepo.GetTickets(ctx)
}

func (s *TicketService) UpdateTicket(ctx context.Context, id uint64, payload dto.UpdateTicketDTO) (*dto.TicketDetailsDTO, error) {
	if payload.StageChangeNote != nil && payload.NewStageID == nil {
		return nil, apperrors.NewInvalidInputError("stageChangeNote requires newStageId")
	}
	if _, err := s.ticketRepo.UpdateTicket(ctx, id, payload); err != nil {
		return nil, err
	}
	return s.GetTicketDetails(ctx, id)
}

func (s *TicketService) DeleteTicket(ctx context.Context, id uint64) ([]dto.Ticket, error) {
	if err := s.ticketRepo.DeleteTicket(ctx, id); err != nil {
		return nil, err
	}
	s.logger.Info("Тикет удалён", zap.Uint64("ticketID", id))
	return s.ticketRepo.GetTickets(ctx)
}

func (s *TicketService) AddNote(ctx context.Context, ticketID uint64, payload dto.CreateTicketNoteDTO) (*dto.TicketDetailsDTO, error) {
	payload.TicketID = ticketID
	if _, err := s.noteRepo.CreateTicketNote(ctx, payload); err != nil {
		return nil, err
	}
	return s.GetTicketDetails(ctx, ticketID)
}

func (s *TicketService) GetMeetings(ctx context.Context, ticketID uint64) ([]dto.TicketMeeting, error) {
	return s.meetingRepo.GetTicketMeetings(ctx, ticketID)
}

func (s *TicketService) CreateMeeting(ctx context.Context, ticketID uint64, payload dto.CreateMeetingDTO) ([]dto.TicketMeeting, error) {
	payload.TicketID = ticketID
	payload.MeetingAtUtc = payload.MeetingAtUtc.UTC()
	if payload.Participants == nil {
		payload.Participants = []dto.MeetingParticipant{}
	}
	if _, err := s.meetingRepo.CreateTicketMeeting(ctx, payload); err != nil {
		return nil, err
	}
	return s.meetingRepo.GetTicketMeetings(ctx, ticketID)
}

func (s *TicketService) UpdateMeeting(ctx context.Context, ticketID, meetingID uint64, payload dto.UpdateMeetingDTO) ([]dto.TicketMeeting, error) {
	if payload.MeetingAtUtc != nil {
		at := payload.MeetingAtUtc.UTC()
		payload.MeetingAtUtc = &at
	}
	updated, err := s.meetingRepo.UpdateTicketMeeting(ctx, meetingID, payload)
	if err != nil {
		return nil, err
	}
	if updated.TicketID != 0 && updated.TicketID != ticketID {
		s.logger.Warn("Встреча принадлежит другому тикету", zap.Uint64("meetingID", meetingID), zap.Uint64("ticketID", ticketID))
	}
	return s.meetingRepo.GetTicketMeetings(ctx, ticketID)
}

func (s *TicketService) AddParticipant(ctx context.Context, ticketID, meetingID uint64, participant dto.MeetingParticipant) ([]dto.TicketMeeting, error) {
	if participant.Participant == nil {
		return nil, apperrors.NewInvalidInputError("participant is required")
	}
	participant.ParticipantID = 0
	if _, err := s.meetingRepo.AddParticipant(ctx, meetingID, participant); err != nil {
		return nil, err
	}
	return s.meetingRepo.GetTicketMeetings(ctx, ticketID)
}

func (s *TicketService) DeleteParticipant(ctx context.Context, ticketID, participantID uint64) ([]dto.TicketMeeting, error) {
	if err := s.meetingRepo.DeleteParticipant(ctx, participantID); err != nil {
		return nil, err
	}
	return s.meetingRepo.GetTicketMeetings(ctx, ticketID)
}

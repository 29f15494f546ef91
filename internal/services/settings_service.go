package services

import (
	"context"

	"crm-dashboard/internal/dto"
	"crm-dashboard/internal/repositories"
	"crm-dashboard/internal/views"

	"go.uber.org/zap"
)

// SettingsServiceInterface - справочники тикетов: типы и их этапы.
type SettingsServiceInterface interface {
	GetTicketTypes(ctx context.Context) ([]dto.TicketType, error)
	CreateTicketType(ctx context.Context, payload dto.CreateTicketTypeDTO) ([]dto.TicketType, error)
	UpdateTicketType(ctx context.Context, id uint64, payload dto.UpdateTicketTypeDTO) ([]dto.TicketType, error)
	DeleteTicketType(ctx context.Context, id uint64) ([]dto.TicketType, error)

	// GetTicketStages возвращает этапы по возрастанию stageOrder.
	GetTicketStages(ctx context.Context, ticketTypeID uint64) ([]dto.TicketStage, error)
	CreateTicketStage(ctx context.Context, payload dto.CreateTicketStageDTO) ([]dto.TicketStage, error)
	UpdateTicketStage(ctx context.Context, id uint64, payload dto.UpdateTicketStageDTO) ([]dto.TicketStage, error)
	DeleteTicketStage(ctx context.Context, ticketTypeID, id uint64) ([]dto.TicketStage, error)
}

type SettingsService struct {
	typeRepo  repositories.TicketTypeRepositoryInterface
	stageRepo repositories.TicketStageRepositoryInterface
	logger    *zap.Logger
}

func NewSettingsService(
	typeRepo repositories.TicketTypeRepositoryInterface,
	stageRepo repositories.TicketStageRepositoryInterface,
	logger *zap.Logger,
) SettingsServiceInterface {
	return &SettingsService{typeRepo: typeRepo, stageRepo: stageRepo, logger: logger}
}

func (s *SettingsService) GetTicketTypes(ctx context.Context) ([]dto.TicketType, error) {
	return s.typeRepo.GetTicketTypes(ctx)
}

func (s *SettingsService) CreateTicketType(ctx context.Context, payload dto.CreateTicketTypeDTO) ([]dto.TicketType, error) {
	if _, err := s.typeRepo.CreateTicketType(ctx, payload); err != nil {
		return nil, err
	}
	return s.typeRepo.GetTicketTypes(ctx)
}

func (s *SettingsService) UpdateTicketType(ctx context.Context, id uint64, payload dto.UpdateTicketTypeDTO) ([]dto.TicketType, error) {
	if _, err := s.typeRepo.UpdateTicketType(ctx, id, payload); err != nil {
		return nil, err
	}
	return s.typeRepo.GetTicketTypes(ctx)
}

func (s *SettingsService) DeleteTicketType(ctx context.Context, id uint64) ([]dto.TicketType, error) {
	if err := s.typeRepo.DeleteTicketType(ctx, id); err != nil {
		return nil, err
	}
	s.logger.Info("Тип тикета удалён", zap.Uint64("ticketTypeID", id))
	return s.typeRepo.GetTicketTypes(ctx)
}

func (s *SettingsService) GetTicketStages(ctx context.Context, ticketTypeID uint64) ([]dto.TicketStage, error) {
	stages, err := s.stageRepo.GetTicketStages(ctx, ticketTypeID)
	if err != nil {
		return nil, err
	}
	return views.SortStages(stages), nil
}

func (s *SettingsService) CreateTicketStage(ctx context.Context, payload dto.CreateTicketStageDTO) ([]dto.TicketStage, error) {
	if _, err := s.stageRepo.CreateTicketStage(ctx, payload); err != nil {
		return nil, err
	}
	return s.GetTicketStages(ctx, payload.TicketTypeID)
}

func (s *SettingsService) UpdateTicketStage(ctx context.Context, id uint64, payload dto.UpdateTicketStageDTO) ([]dto.TicketStage, error) {
	updated, err := s.stageRepo.UpdateTicketStage(ctx, id, payload)
	if err != nil {
		return nil, err
	}
	return s.GetTicketStages(ctx, updated.TicketTypeID)
}

func (s *SettingsService) DeleteTicketStage(ctx context.Context, ticketTypeID, id uint64) ([]dto.TicketStage, error) {
	if err := s.stageRepo.DeleteTicketStage(ctx, id); err != nil {
		return nil, err
	}
	return s.GetTicketStages(ctx, ticketTypeID)
}

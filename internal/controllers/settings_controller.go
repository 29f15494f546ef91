package controllers

import (
	"net/http"

	"crm-dashboard/internal/dto"
	"crm-dashboard/internal/services"
	apperrors "crm-dashboard/pkg/errors"
	"crm-dashboard/pkg/utils"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// SettingsController - типы тикетов и их стадии.
type SettingsController struct {
	settingsService services.SettingsServiceInterface
	logger          *zap.Logger
}

func NewSettingsController(settingsService services.SettingsServiceInterface, logger *zap.Logger) *SettingsController {
	return &SettingsController{settingsService: settingsService, logger: logger}
}

func (ctrl *SettingsController) GetTicketTypes(c echo.Context) error {
	res, err := ctrl.settingsService.GetTicketTypes(c.Request().Context())
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.SuccessResponse(c, res, "Ticket types loaded", http.StatusOK)
}

func (ctrl *SettingsController) CreateTicketType(c echo.Context) error {
	var payload dto.CreateTicketTypeDTO
	if err := c.Bind(&payload); err != nil {
		return utils.ErrorResponse(c, apperrors.NewBadRequestError("Invalid ticket type payload"), ctrl.logger)
	}
	if err := c.Validate(&payload); err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	res, err := ctrl.settingsService.CreateTicketType(c.Request().Context(), payload)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.SuccessResponse(c, res, "Ticket type created", http.StatusCreated)
}

func (ctrl *SettingsController) UpdateTicketType(c echo.Context) error {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	var payload dto.UpdateTicketTypeDTO
	if err := c.Bind(&payload); err != nil {
		return utils.ErrorResponse(c, apperrors.NewBadRequestError("Invalid ticket type payload"), ctrl.logger)
	}
	if err := c.Validate(&payload); err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	res, err := ctrl.settingsService.UpdateTicketType(c.Request().Context(), id, payload)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.SuccessResponse(c, res, "Ticket type updated", http.StatusOK)
}

func (ctrl *SettingsController) DeleteTicketType(c echo.Context) error {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	res, err := ctrl.settingsService.DeleteTicketType(c.Request().Context(), id)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.SuccessResponse(c, res, "Ticket type deleted", http.StatusOK)
}

// requiredTypeID: стадии всегда запрашиваются в рамках одного типа тикета.
func requiredTypeID(c echo.Context) (uint64, error) {
	typeID, err := utils.QueryUint64(c, "ticketTypeId")
	if err != nil {
		return 0, err
	}
	if typeID == nil || *typeID == 0 {
		return 0, apperrors.NewBadRequestError("Query parameter ticketTypeId is required")
	}
	return *typeID, nil
}

func (ctrl *SettingsController) GetTicketStages(c echo.Context) error {
	typeID, err := requiredTypeID(c)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	res, err := ctrl.settingsService.GetTicketStages(c.Request().Context(), typeID)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.SuccessResponse(c, res, "Ticket stages loaded", http.StatusOK)
}

func (ctrl *SettingsController) CreateTicketStage(c echo.Context) error {
	var payload dto.CreateTicketStageDTO
	if err := c.Bind(&payload); err != nil {
		return utils.ErrorResponse(c, apperrors.NewBadRequestError("Invalid stage payload"), ctrl.logger)
	}
	if err := c.Validate(&payload); err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	res, err := ctrl.settingsService.CreateTicketStage(c.Request().Context(), payload)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.SuccessResponse(c, res, "Ticket stage created", http.StatusCreated)
}

func (ctrl *SettingsController) UpdateTicketStage(c echo.Context) error {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	var payload dto.UpdateTicketStageDTO
	if err := c.Bind(&payload); err != nil {
		return utils.ErrorResponse(c, apperrors.NewBadRequestError("Invalid stage payload"), ctrl.logger)
	}
	if err := c.Validate(&payload); err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	res, err := ctrl.settingsService.UpdateTicketStage(c.Request().Context(), id, payload)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.SuccessResponse(c, res, "Ticket stage updated", http.StatusOK)
}

func (ctrl *SettingsController) DeleteTicketStage(c echo.Context) error {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	typeID, err := requiredTypeID(c)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	res, err := ctrl.settingsService.DeleteTicketStage(c.Request().Context(), typeID, id)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.SuccessResponse(c, res, "Ticket stage deleted", http.StatusOK)
}

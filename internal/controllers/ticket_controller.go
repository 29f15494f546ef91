package controllers

import (
	"fmt"
	"net/http"
	"time"

	"crm-dashboard/internal/dto"
	"crm-dashboard/internal/services"
	apperrors "crm-dashboard/pkg/errors"
	"crm-dashboard/pkg/utils"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type TicketController struct {
	ticketService   services.TicketServiceInterface
	exportService   services.ExportServiceInterface
	calendarService services.CalendarServiceInterface
	logger          *zap.Logger
}

func NewTicketController(
	ticketService services.TicketServiceInterface,
	exportService services.ExportServiceInterface,
	calendarService services.CalendarServiceInterface,
	logger *zap.Logger,
) *TicketController {
	return &TicketController{
		ticketService:   ticketService,
		exportService:   exportService,
		calendarService: calendarService,
		logger:          logger,
	}
}

func (ctrl *TicketController) GetTickets(c echo.Context) error {
	filter, err := parseTicketFilter(c)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	res, err := ctrl.ticketService.GetTickets(c.Request().Context(), filter)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.SuccessResponse(c, res, "Tickets loaded", http.StatusOK)
}

func (ctrl *TicketController) GetBoard(c echo.Context) error {
	query, err := parseBoardQuery(c)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	res, err := ctrl.ticketService.GetBoard(c.Request().Context(), query)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.SuccessResponse(c, res, "Board loaded", http.StatusOK)
}

func (ctrl *TicketController) ExportTickets(c echo.Context) error {
	filter, err := parseTicketFilter(c)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	loc, err := ctrl.calendarService.Location(c.QueryParam("tz"))
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	tickets, err := ctrl.ticketService.GetTickets(c.Request().Context(), filter)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	f, err := ctrl.exportService.TicketsWorkbook(tickets, loc)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	defer f.Close()

	fileName := fmt.Sprintf("tickets_%s.xlsx", time.Now().In(loc).Format("2006-01-02"))
	c.Response().Header().Set(echo.HeaderContentType, services.XLSXContentType)
	c.Response().Header().Set("Content-Disposition", "attachment; filename="+fileName)
	return f.Write(c.Response().Writer)
}

func (ctrl *TicketController) GetTicket(c echo.Context) error {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	res, err := ctrl.ticketService.GetTicketDetails(c.Request().Context(), id)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.SuccessResponse(c, res, "Ticket loaded", http.StatusOK)
}

func (ctrl *TicketController) CreateTicket(c echo.Context) error {
	var payload dto.CreateTicketDTO
	if err := c.Bind(&payload); err != nil {
		return utils.ErrorResponse(c, apperrors.NewBadRequestError("Invalid ticket payload"), ctrl.logger)
	}
	if err := c.Validate(&payload); err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	res, err := ctrl.ticketService.CreateTicket(c.Request().Context(), payload)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.SuccessResponse(c, res, "Ticket created", http.StatusCreated)
}

func (ctrl *TicketController) UpdateTicket(c echo.Context) error {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	var payload dto.UpdateTicketDTO
	if err := c.Bind(&payload); err != nil {
		return utils.ErrorResponse(c, apperrors.NewBadRequestError("Invalid ticket payload"), ctrl.logger)
	}
	if err := c.Validate(&payload); err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	res, err := ctrl.ticketService.UpdateTicket(c.Request().Context(), id, payload)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.SuccessResponse(c, res, "Ticket updated", http.StatusOK)
}

func (ctrl *TicketController) DeleteTicket(c echo.Context) error {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	res, err := ctrl.ticketService.DeleteTicket(c.Request().Context(), id)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.SuccessResponse(c, res, "Ticket deleted", http.StatusOK)
}

func (ctrl *TicketController) AddNote(c echo.Context) error {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	var payload dto.CreateTicketNoteDTO
	if err := c.Bind(&payload); err != nil {
		return utils.ErrorResponse(c, apperrors.NewBadRequestError("Invalid note payload"), ctrl.logger)
	}
	if err := c.Validate(&payload); err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	res, err := ctrl.ticketService.AddNote(c.Request().Context(), id, payload)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.SuccessResponse(c, res, "Note added", http.StatusCreated)
}

func (ctrl *TicketController) GetMeetings(c echo.Context) error {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	res, err := ctrl.ticketService.GetMeetings(c.Request().Context(), id)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.SuccessResponse(c, res, "Meetings loaded", http.StatusOK)
}

func (ctrl *TicketController) CreateMeeting(c echo.Context) error {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	var payload dto.CreateMeetingDTO
	if err := c.Bind(&payload); err != nil {
		ctrl.logger.Warn("CreateMeeting: ошибка привязки данных", zap.Error(err))
		return utils.ErrorResponse(c, apperrors.NewBadRequestError("Invalid meeting payload: "+err.Error()), ctrl.logger)
	}
	if err := c.Validate(&payload); err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	res, err := ctrl.ticketService.CreateMeeting(c.Request().Context(), id, payload)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.SuccessResponse(c, res, "Meeting created", http.StatusCreated)
}

func (ctrl *TicketController) UpdateMeeting(c echo.Context) error {
	ticketID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	meetingID, err := utils.ParseIDParam(c, "meetingId")
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	var payload dto.UpdateMeetingDTO
	if err := c.Bind(&payload); err != nil {
		return utils.ErrorResponse(c, apperrors.NewBadRequestError("Invalid meeting payload"), ctrl.logger)
	}
	if err := c.Validate(&payload); err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	res, err := ctrl.ticketService.UpdateMeeting(c.Request().Context(), ticketID, meetingID, payload)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.SuccessResponse(c, res, "Meeting updated", http.StatusOK)
}

func (ctrl *TicketController) AddParticipant(c echo.Context) error {
	ticketID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	meetingID, err := utils.ParseIDParam(c, "meetingId")
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	var payload dto.MeetingParticipant
	if err := c.Bind(&payload); err != nil {
		return utils.ErrorResponse(c, apperrors.NewBadRequestError("Invalid participant: "+err.Error()), ctrl.logger)
	}
	res, err := ctrl.ticketService.AddParticipant(c.Request().Context(), ticketID, meetingID, payload)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.SuccessResponse(c, res, "Participant added", http.StatusCreated)
}

func (ctrl *TicketController) DeleteParticipant(c echo.Context) error {
	ticketID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	participantID, err := utils.ParseIDParam(c, "participantId")
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	res, err := ctrl.ticketService.DeleteParticipant(c.Request().Context(), ticketID, participantID)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.SuccessResponse(c, res, "Participant removed", http.StatusOK)
}

package routes

import (
	"crm-dashboard/internal/controllers"
	"crm-dashboard/internal/services"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

func runTicketRouter(
	secureGroup *echo.Group,
	ticketService services.TicketServiceInterface,
	exportService services.ExportServiceInterface,
	calendarService services.CalendarServiceInterface,
	logger *zap.Logger,
) {
	ticketCtrl := controllers.NewTicketController(ticketService, exportService, calendarService, logger)

	secureGroup.GET("/tickets", ticketCtrl.GetTickets)
	secureGroup.GET("/tickets/board", ticketCtrl.GetBoard)
	secureGroup.GET("/tickets/export", ticketCtrl.ExportTickets)
	secureGroup.POST("/tickets", ticketCtrl.CreateTicket)
	secureGroup.GET("/tickets/:id", ticketCtrl.GetTicket)
	secureGroup.PUT("/tickets/:id", ticketCtrl.UpdateTicket)
	secureGroup.DELETE("/tickets/:id", ticketCtrl.DeleteTicket)

	secureGroup.POST("/tickets/:id/notes", ticketCtrl.AddNote)

	secureGroup.GET("/tickets/:id/meetings", ticketCtrl.GetMeetings)
	secureGroup.POST("/tickets/:id/meetings", ticketCtrl.CreateMeeting)
	secureGroup.PUT("/tickets/:id/meetings/:meetingId", ticketCtrl.UpdateMeeting)
	secureGroup.POST("/tickets/:id/meetings/:meetingId/participants", ticketCtrl.AddParticipant)
	secureGroup.DELETE("/tickets/:id/meetings/participants/:participantId", ticketCtrl.DeleteParticipant)
}

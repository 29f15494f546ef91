package routes

import (
	"crm-dashboard/internal/controllers"
	"crm-dashboard/internal/services"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

func runPublicRouter(
	publicGroup *echo.Group,
	jobService services.JobPostingServiceInterface,
	contactService services.ContactServiceInterface,
	calendarService services.CalendarServiceInterface,
	dedup *controllers.RequestDeduplicator,
	logger *zap.Logger,
) {
	publicCtrl := controllers.NewPublicController(jobService, contactService, calendarService, dedup, logger)

	publicGroup.GET("/jobs", publicCtrl.GetJobs)
	publicGroup.GET("/jobs/:id", publicCtrl.GetJob)
	publicGroup.POST("/jobs/:id/apply", publicCtrl.Apply)
	publicGroup.POST("/contact", publicCtrl.SubmitContactForm)
}

package routes

import (
	"crm-dashboard/internal/controllers"
	"crm-dashboard/internal/services"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

func runJobPostingRouter(
	secureGroup *echo.Group,
	jobService services.JobPostingServiceInterface,
	exportService services.ExportServiceInterface,
	calendarService services.CalendarServiceInterface,
	logger *zap.Logger,
) {
	jobCtrl := controllers.NewJobPostingController(jobService, exportService, calendarService, logger)

	secureGroup.GET("/jobs", jobCtrl.GetJobPostings)
	secureGroup.GET("/jobs/export", jobCtrl.ExportJobPostings)
	secureGroup.POST("/jobs", jobCtrl.CreateJobPosting)
	secureGroup.GET("/jobs/:id", jobCtrl.FindJobPosting)
	secureGroup.PUT("/jobs/:id", jobCtrl.UpdateJobPosting)
	secureGroup.DELETE("/jobs/:id", jobCtrl.DeleteJobPosting)
}

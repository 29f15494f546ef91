package routes

import (
	"crm-dashboard/internal/controllers"
	"crm-dashboard/internal/services"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

func runDashboardRouter(
	secureGroup *echo.Group,
	dashboardService services.DashboardServiceInterface,
	calendarService services.CalendarServiceInterface,
	lookupService services.LookupServiceInterface,
	logger *zap.Logger,
) {
	dashboardCtrl := controllers.NewDashboardController(dashboardService, calendarService, lookupService, logger)

	secureGroup.GET("/dashboard", dashboardCtrl.GetDashboard)
	secureGroup.GET("/lookups", dashboardCtrl.GetLookups)
	secureGroup.GET("/calendar", dashboardCtrl.GetCalendar)
	secureGroup.GET("/calendar/upcoming", dashboardCtrl.GetUpcoming)
}

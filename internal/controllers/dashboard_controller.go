package controllers

import (
	"net/http"
	"time"

	"crm-dashboard/internal/services"
	"crm-dashboard/internal/views"
	"crm-dashboard/pkg/utils"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// DashboardController - главная страница, календарь и справочники для фильтров.
type DashboardController struct {
	dashboardService services.DashboardServiceInterface
	calendarService  services.CalendarServiceInterface
	lookupService    services.LookupServiceInterface
	logger           *zap.Logger
}

func NewDashboardController(
	dashboardService services.DashboardServiceInterface,
	calendarService services.CalendarServiceInterface,
	lookupService services.LookupServiceInterface,
	logger *zap.Logger,
) *DashboardController {
	return &DashboardController{
		dashboardService: dashboardService,
		calendarService:  calendarService,
		lookupService:    lookupService,
		logger:           logger,
	}
}

func (ctrl *DashboardController) GetDashboard(c echo.Context) error {
	res, err := ctrl.dashboardService.GetDashboard(c.Request().Context(), c.QueryParam("tz"))
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.SuccessResponse(c, res, "Dashboard loaded", http.StatusOK)
}

// GetCalendar: без year/month отдаётся текущий месяц.
func (ctrl *DashboardController) GetCalendar(c echo.Context) error {
	year := queryInt(c, "year", 0)
	month := time.Month(queryInt(c, "month", 0))
	res, err := ctrl.calendarService.GetMonth(c.Request().Context(), year, month, c.QueryParam("tz"))
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.SuccessResponse(c, res, "Calendar loaded", http.StatusOK)
}

func (ctrl *DashboardController) GetUpcoming(c echo.Context) error {
	limit := queryInt(c, "limit", views.UpcomingLimit)
	res, err := ctrl.calendarService.GetUpcoming(c.Request().Context(), c.QueryParam("tz"), limit)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.SuccessResponse(c, res, "Upcoming meetings loaded", http.StatusOK)
}

func (ctrl *DashboardController) GetLookups(c echo.Context) error {
	res, err := ctrl.lookupService.GetLookups(c.Request().Context())
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.SuccessResponse(c, res, "Lookups loaded", http.StatusOK)
}

package routes

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"crm-dashboard/internal/controllers"
	"crm-dashboard/internal/dto"
	"crm-dashboard/internal/services"
	"crm-dashboard/pkg/config"
	"crm-dashboard/pkg/middleware"
	"crm-dashboard/pkg/websocket"
)

type Loggers struct {
	Main   *zap.Logger
	Auth   *zap.Logger
	Ticket *zap.Logger
	Job    *zap.Logger
}

// Services - всё, что нужно роутерам; собирается в main.
type Services struct {
	Auth      services.AuthServiceInterface
	Lookup    services.LookupServiceInterface
	Ticket    services.TicketServiceInterface
	Calendar  services.CalendarServiceInterface
	Dashboard services.DashboardServiceInterface
	Job       services.JobPostingServiceInterface
	Company   services.CompanyServiceInterface
	Admin     services.AdminServiceInterface
	Settings  services.SettingsServiceInterface
	Contact   services.ContactServiceInterface
	Export    services.ExportServiceInterface
}

func InitRouter(
	e *echo.Echo,
	svc *Services,
	authMW *middleware.AuthMiddleware,
	hub *websocket.Hub,
	dedup *controllers.RequestDeduplicator,
	cfg *config.Config,
	loggers *Loggers,
) {
	loggers.Main.Info("InitRouter: Начало создания маршрутов")

	api := e.Group("/api")

	runAuthRouter(api, svc.Auth, authMW, cfg.Session, loggers.Auth)
	runPublicRouter(api.Group("/public"), svc.Job, svc.Contact, svc.Calendar, dedup, loggers.Main)

	superGroup := api.Group("/super", authMW.Auth, authMW.RequireRoles(dto.AdminTypeAdmin, dto.AdminTypeSuperAdmin))

	runDashboardRouter(superGroup, svc.Dashboard, svc.Calendar, svc.Lookup, loggers.Main)
	runTicketRouter(superGroup, svc.Ticket, svc.Export, svc.Calendar, loggers.Ticket)
	runJobPostingRouter(superGroup, svc.Job, svc.Export, svc.Calendar, loggers.Job)
	runWebSocketRouter(superGroup, hub, cfg.Server.AllowedOrigins, loggers.Main)

	ownerGroup := superGroup.Group("", authMW.RequireRoles(dto.AdminTypeSuperAdmin))

	runCompanyRouter(ownerGroup, svc.Company, loggers.Main)
	runAdminRouter(ownerGroup, svc.Admin, loggers.Main)
	runSettingsRouter(ownerGroup.Group("/settings"), svc.Settings, loggers.Main)

	loggers.Main.Info("InitRouter: Создание маршрутов завершено")
}

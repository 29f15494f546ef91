package routes

import (
	"context"

	"crm-dashboard/internal/events"
	"crm-dashboard/internal/integrations/backend"
	"crm-dashboard/internal/repositories"
	"crm-dashboard/internal/services"
	"crm-dashboard/pkg/config"
	"crm-dashboard/pkg/mailer"
	"crm-dashboard/pkg/utils"

	"go.uber.org/zap"
)

// NewBackendClient: токен берётся из сессии запроса, а 401 от бэкенда завершает эту сессию.
func NewBackendClient(cfg config.BackendConfig, sessions services.SessionServiceInterface, logger *zap.Logger) *backend.Client {
	tokenSource := func(ctx context.Context) string {
		session, err := utils.GetSessionFromContext(ctx)
		if err != nil {
			return ""
		}
		return session.Auth.Token
	}
	onUnauthorized := func(ctx context.Context) {
		sessionID := utils.GetSessionIDFromContext(ctx)
		if sessionID == "" {
			return
		}
		if _, err := sessions.Clear(ctx, sessionID, events.ReasonUnauthorized); err != nil {
			logger.Error("Не удалось завершить сессию после 401", zap.String("sessionID", sessionID), zap.Error(err))
		}
	}
	return backend.New(backend.Options{BaseURL: cfg.BaseURL, Timeout: cfg.Timeout}, tokenSource, onUnauthorized, logger)
}

// NewServices собирает репозитории поверх клиента бэкенда и сервисы поверх них.
func NewServices(
	client *backend.Client,
	sessions services.SessionServiceInterface,
	m mailer.Mailer,
	cfg *config.Config,
	loggers *Loggers,
) *Services {
	// --- 1. РЕПОЗИТОРИИ ---
	authRepo := repositories.NewAuthRepository(client, loggers.Auth)
	adminRepo := repositories.NewAdminRepository(client, loggers.Main)
	companyRepo := repositories.NewCompanyRepository(client, loggers.Main)
	branchRepo := repositories.NewBranchRepository(client, loggers.Main)
	contactRepo := repositories.NewContactPersonRepository(client, loggers.Main)
	ticketTypeRepo := repositories.NewTicketTypeRepository(client, loggers.Main)
	stageRepo := repositories.NewTicketStageRepository(client, loggers.Main)
	ticketRepo := repositories.NewTicketRepository(client, loggers.Ticket)
	noteRepo := repositories.NewTicketNoteRepository(client, loggers.Ticket)
	historyRepo := repositories.NewTicketStageHistoryRepository(client, loggers.Ticket)
	meetingRepo := repositories.NewTicketMeetingRepository(client, loggers.Ticket)
	calendarRepo := repositories.NewCalendarRepository(client, loggers.Main)
	jobRepo := repositories.NewJobPostingRepository(client, loggers.Job)
	dashboardRepo := repositories.NewDashboardRepository(client, loggers.Main)

	// --- 2. СЕРВИСЫ ---
	calendarService := services.NewCalendarService(calendarRepo, cfg.Calendar, loggers.Main)
	jobService := services.NewJobPostingService(jobRepo, loggers.Job)

	return &Services{
		Auth:   services.NewAuthService(authRepo, sessions, loggers.Auth),
		Lookup: services.NewLookupService(ticketTypeRepo, companyRepo, branchRepo, adminRepo, contactRepo, loggers.Main),
		Ticket: services.NewTicketService(
			ticketRepo, noteRepo, meetingRepo, historyRepo, ticketTypeRepo, stageRepo, branchRepo, loggers.Ticket,
		),
		Calendar:  calendarService,
		Dashboard: services.NewDashboardService(dashboardRepo, calendarService, loggers.Main),
		Job:       jobService,
		Company:   services.NewCompanyService(companyRepo, branchRepo, contactRepo, loggers.Main),
		Admin:     services.NewAdminService(adminRepo, loggers.Main),
		Settings:  services.NewSettingsService(ticketTypeRepo, stageRepo, loggers.Main),
		Contact:   services.NewContactService(jobService, m, cfg.Mail.ContactInbox, loggers.Main),
		Export:    services.NewExportService(loggers.Main),
	}
}

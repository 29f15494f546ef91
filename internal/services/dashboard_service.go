package services

import (
	"context"
	"time"

	"crm-dashboard/internal/dto"
	"crm-dashboard/internal/repositories"
	"crm-dashboard/internal/views"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type DashboardServiceInterface interface {
	GetDashboard(ctx context.Context, tz string) (*dto.DashboardPageDTO, error)
}

type DashboardService struct {
	repo     repositories.DashboardRepositoryInterface
	calendar *CalendarService
	now      func() time.Time
	logger   *zap.Logger
}

func NewDashboardService(repo repositories.DashboardRepositoryInterface, calendar *CalendarService, logger *zap.Logger) DashboardServiceInterface {
	return &DashboardService{repo: repo, calendar: calendar, now: time.Now, logger: logger}
}

// GetDashboard: счётчики бэкенда и календарь текущего месяца грузятся параллельно.
func (s *DashboardService) GetDashboard(ctx context.Context, tz string) (*dto.DashboardPageDTO, error) {
	loc, err := s.calendar.Location(tz)
	if err != nil {
		return nil, err
	}
	now := s.now()
	local := now.In(loc)
	from, to := s.calendar.monthRange(local.Year(), local.Month(), loc)

	var (
		stats    *dto.DashboardResponse
		meetings []dto.CalendarMeeting
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) { stats, err = s.repo.GetDashboard(gctx); return })
	g.Go(func() (err error) { meetings, err = s.calendar.fetch(gctx, from, to); return })
	if err := g.Wait(); err != nil {
		s.logger.Error("Дашборд не загружен", zap.Error(err))
		return nil, err
	}

	if stats.TicketByStatus == nil {
		stats.TicketByStatus = []dto.StatusCount{}
	}
	if stats.JobByStatus == nil {
		stats.JobByStatus = []dto.StatusCount{}
	}

	return &dto.DashboardPageDTO{
		Stats:    *stats,
		Calendar: views.MonthView(meetings, local.Year(), local.Month(), from, to, now, loc),
		Upcoming: toCards(views.Upcoming(meetings, now, views.UpcomingLimit), now, loc),
	}, nil
}

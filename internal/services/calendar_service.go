package services

import (
	"context"
	"strings"
	"time"

	"crm-dashboard/internal/dto"
	"crm-dashboard/internal/repositories"
	"crm-dashboard/internal/views"
	apperrors "crm-dashboard/pkg/errors"
	"crm-dashboard/pkg/config"

	"go.uber.org/zap"
)

type CalendarServiceInterface interface {
	// GetMonth: month 0 означает текущий месяц в зоне tz.
	GetMonth(ctx context.Context, year int, month time.Month, tz string) (*dto.CalendarMonthDTO, error)
	GetUpcoming(ctx context.Context, tz string, limit int) ([]dto.MeetingCardDTO, error)
	// GetDay - встречи локального дня, в который попадает at.
	GetDay(ctx context.Context, at time.Time, loc *time.Location) ([]dto.CalendarMeeting, error)
	Location(tz string) (*time.Location, error)
}

type CalendarService struct {
	repo   repositories.CalendarRepositoryInterface
	cfg    config.CalendarConfig
	now    func() time.Time
	logger *zap.Logger
}

func NewCalendarService(repo repositories.CalendarRepositoryInterface, cfg config.CalendarConfig, logger *zap.Logger) *CalendarService {
	return &CalendarService{repo: repo, cfg: cfg, now: time.Now, logger: logger}
}

// Location: пустая зона - бизнес-зона из конфигурации.
func (s *CalendarService) Location(tz string) (*time.Location, error) {
	name := strings.TrimSpace(tz)
	if name == "" {
		name = s.cfg.BusinessTimezone
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, apperrors.NewInvalidInputError("Unknown timezone %q", name)
	}
	return loc, nil
}

func (s *CalendarService) monthRange(year int, month time.Month, loc *time.Location) (time.Time, time.Time) {
	if s.cfg.ZoneAwareMonth {
		return views.MonthRangeIn(year, month, loc)
	}
	return views.MonthRangeUTC(year, month)
}

func (s *CalendarService) fetch(ctx context.Context, from, to time.Time) ([]dto.CalendarMeeting, error) {
	return s.repo.GetMeetings(ctx, dto.CalendarRangeParams{FromUtc: &from, ToUtc: &to})
}

func (s *CalendarService) GetMonth(ctx context.Context, year int, month time.Month, tz string) (*dto.CalendarMonthDTO, error) {
	loc, err := s.Location(tz)
	if err != nil {
		return nil, err
	}
	now := s.now()
	if month < time.January || month > time.December {
		local := now.In(loc)
		year, month = local.Year(), local.Month()
	}

	from, to := s.monthRange(year, month, loc)
	meetings, err := s.fetch(ctx, from, to)
	if err != nil {
		return nil, err
	}
	res := views.MonthView(meetings, year, month, from, to, now, loc)
	return &res, nil
}

// GetUpcoming смотрит вперёд на текущий и следующий месяц.
func (s *CalendarService) GetUpcoming(ctx context.Context, tz string, limit int) ([]dto.MeetingCardDTO, error) {
	loc, err := s.Location(tz)
	if err != nil {
		return nil, err
	}
	now := s.now()
	meetings, err := s.fetch(ctx, now.UTC(), now.UTC().AddDate(0, 2, 0))
	if err != nil {
		return nil, err
	}
	return toCards(views.Upcoming(meetings, now, limit), now, loc), nil
}

func (s *CalendarService) GetDay(ctx context.Context, at time.Time, loc *time.Location) ([]dto.CalendarMeeting, error) {
	local := at.In(loc)
	start := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
	return s.fetch(ctx, start.UTC(), start.AddDate(0, 0, 1).UTC())
}

func toCards(meetings []dto.CalendarMeeting, now time.Time, loc *time.Location) []dto.MeetingCardDTO {
	cards := make([]dto.MeetingCardDTO, 0, len(meetings))
	for _, m := range meetings {
		cards = append(cards, views.MeetingCard(m, now, loc))
	}
	return cards
}

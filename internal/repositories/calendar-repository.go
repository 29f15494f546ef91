package repositories

import (
	"context"

	"crm-dashboard/internal/dto"
	"crm-dashboard/internal/integrations/backend"

	"go.uber.org/zap"
)

// Ответ календаря зависит от роли: бэкенд сам решает, какие встречи видны.
type CalendarRepositoryInterface interface {
	GetMeetings(ctx context.Context, params dto.CalendarRangeParams) ([]dto.CalendarMeeting, error)
}

type CalendarRepository struct {
	client *backend.Client
	logger *zap.Logger
}

func NewCalendarRepository(client *backend.Client, logger *zap.Logger) CalendarRepositoryInterface {
	return &CalendarRepository{client: client, logger: logger}
}

func (r *CalendarRepository) GetMeetings(ctx context.Context, params dto.CalendarRangeParams) ([]dto.CalendarMeeting, error) {
	q := newQuery().utc("fromUtc", params.FromUtc).utc("toUtc", params.ToUtc)
	meetings, err := backend.Get[[]dto.CalendarMeeting](ctx, r.client, calendarPath, q.values())
	return orEmpty(meetings), err
}

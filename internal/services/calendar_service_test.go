package services

import (
	"context"
	"testing"
	"time"

	"crm-dashboard/internal/dto"
	apperrors "crm-dashboard/pkg/errors"
	"crm-dashboard/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var calendarNow = time.Date(2025, 3, 10, 4, 0, 0, 0, time.UTC) // 09:30 в Коломбо

func newCalendarFixture(zoneAware bool) (*CalendarService, *fakeCalendarRepo) {
	repo := &fakeCalendarRepo{meetings: []dto.CalendarMeeting{
		{MeetingID: 1, TicketID: 1, MeetingAtUtc: calendarNow.Add(30 * time.Minute), Status: dto.MeetingStatusScheduled},
		{MeetingID: 2, TicketID: 1, MeetingAtUtc: calendarNow.Add(-2 * time.Hour), Status: dto.MeetingStatusDone},
		{MeetingID: 3, TicketID: 2, MeetingAtUtc: time.Date(2025, 3, 31, 20, 0, 0, 0, time.UTC), Status: dto.MeetingStatusScheduled},
		{MeetingID: 4, TicketID: 2, MeetingAtUtc: time.Date(2025, 4, 2, 6, 0, 0, 0, time.UTC), Status: dto.MeetingStatusScheduled},
	}}
	s := NewCalendarService(repo, config.CalendarConfig{BusinessTimezone: "Asia/Colombo", ZoneAwareMonth: zoneAware}, zap.NewNop())
	s.now = func() time.Time { return calendarNow }
	return s, repo
}

func TestCalendarService_Location(t *testing.T) {
	s, _ := newCalendarFixture(false)

	loc, err := s.Location("")
	require.NoError(t, err)
	assert.Equal(t, "Asia/Colombo", loc.String())

	_, err = s.Location("Mars/Olympus")
	var invalid *apperrors.InvalidInputError
	assert.ErrorAs(t, err, &invalid)
}

func TestCalendarService_GetMonth(t *testing.T) {
	ctx := context.Background()

	s, repo := newCalendarFixture(false)
	month, err := s.GetMonth(ctx, 0, 0, "")
	require.NoError(t, err)
	assert.Equal(t, 2025, month.Year)
	assert.Equal(t, 3, month.Month)
	assert.Equal(t, "2025-03-10", month.Today)
	require.Len(t, repo.calls, 1)
	assert.Equal(t, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), *repo.calls[0].FromUtc)
	// 31 марта 20:00 UTC - это уже 1 апреля в Коломбо
	assert.Contains(t, month.MeetingDays, "2025-04-01")

	s, repo = newCalendarFixture(true)
	month, err = s.GetMonth(ctx, 2025, time.March, "Asia/Colombo")
	require.NoError(t, err)
	colombo, _ := time.LoadLocation("Asia/Colombo")
	assert.Equal(t, time.Date(2025, 3, 1, 0, 0, 0, 0, colombo).UTC(), repo.calls[0].FromUtc.UTC())
	assert.NotContains(t, month.MeetingDays, "2025-04-01")
}

func TestCalendarService_GetUpcoming(t *testing.T) {
	s, _ := newCalendarFixture(false)
	cards, err := s.GetUpcoming(context.Background(), "", 2)
	require.NoError(t, err)
	require.Len(t, cards, 2)
	assert.Equal(t, uint64(1), cards[0].MeetingID)
	assert.Equal(t, 30, cards[0].MinutesUntil)
	assert.Equal(t, "10:00", cards[0].LocalTime)
}

func TestDashboardService_GetDashboard(t *testing.T) {
	calendar, _ := newCalendarFixture(false)
	d := NewDashboardService(&fakeDashboardRepo{stats: &dto.DashboardResponse{TotalTickets: 2}}, calendar, zap.NewNop()).(*DashboardService)
	d.now = func() time.Time { return calendarNow }

	page, err := d.GetDashboard(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, 2, page.Stats.TotalTickets)
	assert.NotNil(t, page.Stats.TicketByStatus)
	assert.Equal(t, 3, page.Calendar.Month)
	require.Len(t, page.Upcoming, 2)
	assert.Equal(t, uint64(1), page.Upcoming[0].MeetingID)
}

package listeners

import (
	"context"
	"sync"
	"testing"
	"time"

	"crm-dashboard/internal/dto"
	"crm-dashboard/internal/events"
	"crm-dashboard/internal/repositories"
	"crm-dashboard/internal/services"
	"crm-dashboard/pkg/config"
	"crm-dashboard/pkg/eventbus"
	"crm-dashboard/pkg/service"
	"crm-dashboard/pkg/utils"
	"crm-dashboard/pkg/websocket"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type staticSessions []string

func (s staticSessions) Sessions() []string { return s }

type calendarStub struct {
	meetings []dto.CalendarMeeting
	tokens   []string
}

func (c *calendarStub) GetMeetings(ctx context.Context, _ dto.CalendarRangeParams) ([]dto.CalendarMeeting, error) {
	if session, err := utils.GetSessionFromContext(ctx); err == nil {
		c.tokens = append(c.tokens, session.Auth.Token)
	}
	return c.meetings, nil
}

type pushed struct {
	sessionID   string
	messageType string
	payload     interface{}
}

type recordingPusher struct {
	mu     sync.Mutex
	pushes []pushed
	closed []string
}

func (p *recordingPusher) SendToSession(sessionID string, payload interface{}, messageType string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.pushes = append(p.pushes, pushed{sessionID, messageType, payload})
	return nil
}

func (p *recordingPusher) CloseSession(sessionID string, _ interface{}, _ string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.closed = append(p.closed, sessionID)
}

func TestMeetingNotifier_NotifiesOncePerSession(t *testing.T) {
	ctx := context.Background()
	logger := zap.NewNop()
	now := time.Date(2025, 3, 10, 4, 0, 0, 0, time.UTC) // 09:30 в Коломбо
	company := "Acme"

	cache := repositories.NewMemoryCacheRepository()
	bus := eventbus.New(logger)
	sessions := services.NewSessionService(cache, service.NewJWTService("", logger), bus, time.Hour, logger)
	stub := &calendarStub{meetings: []dto.CalendarMeeting{
		{MeetingID: 1, TicketID: 9, MeetingAtUtc: now.Add(30 * time.Minute), Status: dto.MeetingStatusScheduled, CompanyName: &company},
		{MeetingID: 2, TicketID: 9, MeetingAtUtc: now.Add(3 * time.Hour), Status: dto.MeetingStatusScheduled},
		{MeetingID: 3, TicketID: 9, MeetingAtUtc: now.Add(10 * time.Minute), Status: dto.MeetingStatusCanceled},
	}}
	calendar := services.NewCalendarService(stub, config.CalendarConfig{BusinessTimezone: "Asia/Colombo"}, logger)

	pusher := &recordingPusher{}
	NewWebSocketListener(pusher, logger).Register(bus, sessions)

	session, err := sessions.Save(ctx, dto.AuthData{Token: "tok-1", AdminID: 1, ExpiresInMs: int64(time.Hour / time.Millisecond)})
	require.NoError(t, err)

	notifier := NewMeetingNotifier(staticSessions{session.ID, "gone"}, sessions, calendar, cache, bus,
		config.NotifyConfig{PollInterval: time.Minute, Window: time.Hour}, logger)
	notifier.now = func() time.Time { return now }

	notifier.Tick(ctx)
	notifier.now = func() time.Time { return now.Add(time.Minute) }
	notifier.Tick(ctx)
	bus.Wait()

	require.Len(t, pusher.pushes, 1)
	assert.Equal(t, session.ID, pusher.pushes[0].sessionID)
	assert.Equal(t, websocket.MessageMeetingSoon, pusher.pushes[0].messageType)
	payload, ok := pusher.pushes[0].payload.(websocket.NotificationPayload)
	require.True(t, ok)
	assert.Equal(t, "Meeting in 30 min with Acme", payload.Message)
	assert.Equal(t, "/tickets/9", payload.Link)
	assert.Equal(t, []string{"tok-1", "tok-1"}, stub.tokens)
}

func TestWebSocketListener_SessionClearedClosesConnections(t *testing.T) {
	ctx := context.Background()
	logger := zap.NewNop()
	bus := eventbus.New(logger)
	sessions := services.NewSessionService(repositories.NewMemoryCacheRepository(), service.NewJWTService("", logger), bus, time.Hour, logger)

	pusher := &recordingPusher{}
	NewWebSocketListener(pusher, logger).Register(bus, sessions)

	session, err := sessions.Save(ctx, dto.AuthData{Token: "tok", ExpiresInMs: 60_000})
	require.NoError(t, err)
	_, err = sessions.Clear(ctx, session.ID, events.ReasonUnauthorized)
	require.NoError(t, err)
	_, err = sessions.Clear(ctx, session.ID, events.ReasonUnauthorized)
	require.NoError(t, err)
	bus.Wait()

	assert.Equal(t, []string{session.ID}, pusher.closed)
}

package listeners

import (
	"context"
	"fmt"
	"time"

	"crm-dashboard/internal/events"
	"crm-dashboard/internal/services"
	"crm-dashboard/pkg/eventbus"
	"crm-dashboard/pkg/websocket"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Pusher - часть websocket.Hub, нужная слушателю.
type Pusher interface {
	SendToSession(sessionID string, payload interface{}, messageType string) error
	CloseSession(sessionID string, payload interface{}, messageType string)
}

// WebSocketListener доставляет события в открытые вкладки админки.
type WebSocketListener struct {
	hub    Pusher
	logger *zap.Logger
}

func NewWebSocketListener(hub Pusher, logger *zap.Logger) *WebSocketListener {
	return &WebSocketListener{hub: hub, logger: logger}
}

func (l *WebSocketListener) Register(bus *eventbus.Bus, sessions services.SessionServiceInterface) {
	bus.Subscribe(events.MeetingSoonEvent{}.Name(), l.handleMeetingSoon)
	sessions.Subscribe(l.handleSessionEvent)
	l.logger.Info("WebSocketListener подписан на 'meeting.soon' и 'session.cleared'")
}

func (l *WebSocketListener) handleMeetingSoon(_ context.Context, event eventbus.Event) error {
	e, ok := event.(events.MeetingSoonEvent)
	if !ok {
		return nil
	}
	m := e.Meeting
	message := fmt.Sprintf("Meeting in %d min", m.MinutesUntil)
	if m.CompanyName != nil && *m.CompanyName != "" {
		message += " with " + *m.CompanyName
	}
	payload := websocket.NotificationPayload{
		EventID:   uuid.NewString(),
		Message:   message,
		Link:      fmt.Sprintf("/tickets/%d", m.TicketID),
		Data:      m,
		CreatedAt: time.Now().UTC(),
	}
	return l.hub.SendToSession(e.SessionID, payload, websocket.MessageMeetingSoon)
}

// handleSessionEvent: закрытая сессия получает session_ended и теряет соединения.
func (l *WebSocketListener) handleSessionEvent(_ context.Context, e events.SessionEvent) {
	if e.Kind != events.SessionCleared {
		return
	}
	l.hub.CloseSession(e.SessionID, websocket.SessionEndedPayload{Redirect: "/login", Reason: e.Reason}, websocket.MessageSessionEnded)
}

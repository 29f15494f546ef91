package websocket

import "time"

const (
	MessageMeetingSoon  = "meeting_soon"
	MessageSessionEnded = "session_ended"
)

// Envelope - "конверт" сообщения; по Type фронтенд понимает, что делать.
type Envelope struct {
	Type      string      `json:"type"`
	Payload   interface{} `json:"payload"`
	Timestamp time.Time   `json:"timestamp"`
}

type NotificationPayload struct {
	EventID   string      `json:"eventId"`
	Message   string      `json:"message"`
	Link      string      `json:"link,omitempty"`
	Data      interface{} `json:"data,omitempty"`
	CreatedAt time.Time   `json:"createdAt"`
}

type SessionEndedPayload struct {
	Redirect string `json:"redirect"`
	Reason   string `json:"reason"`
}

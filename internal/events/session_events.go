package events

type SessionEventKind string

const (
	SessionSaved   SessionEventKind = "saved"
	SessionCleared SessionEventKind = "cleared"
)

// Причины завершения сессии.
const (
	ReasonLogout       = "logout"
	ReasonUnauthorized = "unauthorized"
	ReasonExpired      = "expired"
)

// SessionEvent - сессия сохранена (вход) или удалена (выход, 401, истечение).
type SessionEvent struct {
	Kind      SessionEventKind
	SessionID string
	AdminID   uint64
	Reason    string
}

// Name - реализуем интерфейс eventbus.Event
func (e SessionEvent) Name() string {
	return "session." + string(e.Kind)
}

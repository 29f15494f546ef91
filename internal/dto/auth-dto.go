package dto

import "time"

type AdminType string

const (
	AdminTypeAdmin      AdminType = "ADMIN"
	AdminTypeSuperAdmin AdminType = "SUPERADMIN"
)

type LoginDTO struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// AuthData - ответ бэкенда на /api/auth/login, хранится в сессии как есть.
type AuthData struct {
	Token       string    `json:"token"`
	TokenType   string    `json:"tokenType"`
	ExpiresInMs int64     `json:"expiresInMs"`
	AdminID     uint64    `json:"adminId"`
	Username    string    `json:"username"`
	AdminType   AdminType `json:"adminType"`
}

// Session - запись в долговременном хранилище (Redis).
type Session struct {
	ID        string    `json:"id"`
	Auth      AuthData  `json:"auth"`
	CreatedAt time.Time `json:"createdAt"`
	ExpiresAt time.Time `json:"expiresAt"`
}

func (s *Session) IsExpired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && !now.Before(s.ExpiresAt)
}

func (s *Session) Role() AdminType {
	if s == nil {
		return ""
	}
	return s.Auth.AdminType
}

type SessionResponseDTO struct {
	SessionID string    `json:"sessionId,omitempty"`
	AdminID   uint64    `json:"adminId"`
	Username  string    `json:"username"`
	AdminType AdminType `json:"adminType"`
	ExpiresAt time.Time `json:"expiresAt"`
}

func NewSessionResponse(s *Session, withID bool) SessionResponseDTO {
	res := SessionResponseDTO{
		AdminID:   s.Auth.AdminID,
		Username:  s.Auth.Username,
		AdminType: s.Auth.AdminType,
		ExpiresAt: s.ExpiresAt,
	}
	if withID {
		res.SessionID = s.ID
	}
	return res
}

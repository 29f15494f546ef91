package middleware

import (
	"context"
	"errors"
	"net/http"
	"slices"
	"strings"

	"crm-dashboard/internal/dto"
	apperrors "crm-dashboard/pkg/errors"
	"crm-dashboard/pkg/utils"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// SessionLoader восстанавливает сессию по id в начале запроса.
type SessionLoader interface {
	Init(ctx context.Context, sessionID string) (*dto.Session, error)
}

type AuthMiddleware struct {
	sessions   SessionLoader
	cookieName string
	logger     *zap.Logger
}

func NewAuthMiddleware(sessions SessionLoader, cookieName string, logger *zap.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		sessions:   sessions,
		cookieName: cookieName,
		logger:     logger,
	}
}

// SessionID берёт id из cookie, а если её нет, из заголовка "Authorization: Session <id>".
func (m *AuthMiddleware) SessionID(r *http.Request) (string, error) {
	if cookie, err := r.Cookie(m.cookieName); err == nil && cookie.Value != "" {
		return cookie.Value, nil
	}

	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", apperrors.ErrEmptyAuthHeader
	}
	parts := strings.Fields(authHeader)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Session") {
		return "", apperrors.ErrInvalidAuthHeader
	}
	return parts[1], nil
}

// Auth пропускает запрос дальше только с живой сессией.
func (m *AuthMiddleware) Auth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		sessionID, err := m.SessionID(c.Request())
		if err != nil {
			m.logger.Debug("AuthMiddleware: сессия не передана", zap.Error(err))
			return utils.ErrorResponse(c, err, m.logger)
		}

		session, err := m.sessions.Init(c.Request().Context(), sessionID)
		if err != nil {
			if !errors.Is(err, apperrors.ErrSessionNotFound) && !errors.Is(err, apperrors.ErrSessionExpired) {
				m.logger.Error("AuthMiddleware: не удалось загрузить сессию", zap.Error(err))
			}
			return utils.ErrorResponse(c, err, m.logger)
		}

		c.SetRequest(c.Request().WithContext(utils.WithSession(c.Request().Context(), session)))
		return next(c)
	}
}

// RequireRoles: без роли или с чужой ролью - 403 с переходом на /unauthorized.
func (m *AuthMiddleware) RequireRoles(roles ...dto.AdminType) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			session, err := utils.GetSessionFromContext(c.Request().Context())
			if err != nil {
				return utils.ErrorResponse(c, err, m.logger)
			}
			if role := session.Role(); role == "" || !slices.Contains(roles, role) {
				m.logger.Warn("AuthMiddleware: недостаточно прав",
					zap.Uint64("adminID", session.Auth.AdminID),
					zap.String("role", string(role)),
					zap.String("path", c.Path()),
				)
				return utils.ErrorResponse(c, apperrors.ErrForbidden, m.logger)
			}
			return next(c)
		}
	}
}

package utils

import (
	"context"
	"strconv"
	"strings"

	"crm-dashboard/internal/dto"
	"crm-dashboard/pkg/contextkeys"
	apperrors "crm-dashboard/pkg/errors"

	"github.com/labstack/echo/v4"
)

func ParseIDParam(c echo.Context, name string) (uint64, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		return 0, apperrors.NewBadRequestError("Invalid " + name)
	}
	return id, nil
}

// QueryUint64 возвращает nil для пустого значения и для сентинела ALL.
func QueryUint64(c echo.Context, name string) (*uint64, error) {
	raw := strings.TrimSpace(c.QueryParam(name))
	if raw == "" || strings.EqualFold(raw, "ALL") {
		return nil, nil
	}
	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return nil, apperrors.NewBadRequestError("Invalid query parameter " + name)
	}
	return &v, nil
}

func GetSessionFromContext(ctx context.Context) (*dto.Session, error) {
	session, ok := ctx.Value(contextkeys.SessionKey).(*dto.Session)
	if !ok || session == nil {
		return nil, apperrors.ErrSessionNotInContext
	}
	return session, nil
}

func GetSessionIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(contextkeys.SessionIDKey).(string)
	return id
}

func WithSession(ctx context.Context, session *dto.Session) context.Context {
	ctx = context.WithValue(ctx, contextkeys.SessionKey, session)
	return context.WithValue(ctx, contextkeys.SessionIDKey, session.ID)
}

package utils

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	apperrors "crm-dashboard/pkg/errors"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

const (
	LoginPath        = "/login"
	UnauthorizedPath = "/unauthorized"
)

type HTTPResponse struct {
	Status  bool        `json:"status"`
	Body    interface{} `json:"body,omitempty"`
	Message string      `json:"message"`
}

type RedirectBody struct {
	Redirect string `json:"redirect"`
}

func SuccessResponse(ctx echo.Context, body interface{}, message string, code int) error {
	return ctx.JSON(code, &HTTPResponse{Status: true, Body: body, Message: message})
}

func ErrorResponse(c echo.Context, err error, logger *zap.Logger) error {
	var httpErr *apperrors.HttpError
	if errors.As(err, &httpErr) {
		if httpErr.Err != nil {
			logger.Error("HTTP Error",
				zap.Int("code", httpErr.Code),
				zap.String("message", httpErr.Message),
				zap.Error(httpErr.Err),
			)
		}
		return c.JSON(httpErr.Code, &HTTPResponse{Status: false, Body: httpErr.Details, Message: httpErr.Message})
	}

	var backendErr *apperrors.BackendError
	if errors.As(err, &backendErr) {
		return backendErrorResponse(c, backendErr, logger)
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		msgs := make([]string, 0, len(validationErrors))
		for _, e := range validationErrors {
			msgs = append(msgs, fmt.Sprintf("field '%s' failed on '%s'", e.Field(), e.Tag()))
		}
		return c.JSON(http.StatusBadRequest, &HTTPResponse{Status: false, Message: "Validation error: " + strings.Join(msgs, "; ")})
	}

	var inputErr *apperrors.InvalidInputError
	if errors.As(err, &inputErr) {
		return c.JSON(http.StatusBadRequest, &HTTPResponse{Status: false, Message: inputErr.Message})
	}

	var echoErr *echo.HTTPError
	if errors.As(err, &echoErr) {
		return c.JSON(echoErr.Code, &HTTPResponse{Status: false, Message: fmt.Sprint(echoErr.Message)})
	}

	switch {
	case errors.Is(err, apperrors.ErrEmptyAuthHeader),
		errors.Is(err, apperrors.ErrInvalidAuthHeader),
		errors.Is(err, apperrors.ErrUnauthorized),
		errors.Is(err, apperrors.ErrSessionNotFound),
		errors.Is(err, apperrors.ErrSessionExpired),
		errors.Is(err, apperrors.ErrInvalidToken),
		errors.Is(err, apperrors.ErrSessionNotInContext):
		return c.JSON(http.StatusUnauthorized, &HTTPResponse{Status: false, Body: RedirectBody{Redirect: LoginPath}, Message: err.Error()})
	case errors.Is(err, apperrors.ErrForbidden):
		return c.JSON(http.StatusForbidden, &HTTPResponse{Status: false, Body: RedirectBody{Redirect: UnauthorizedPath}, Message: err.Error()})
	case errors.Is(err, apperrors.ErrNotFound):
		return c.JSON(http.StatusNotFound, &HTTPResponse{Status: false, Message: err.Error()})
	case errors.Is(err, apperrors.ErrBadRequest):
		return c.JSON(http.StatusBadRequest, &HTTPResponse{Status: false, Message: err.Error()})
	case errors.Is(err, context.DeadlineExceeded):
		logger.Warn("Request timed out", zap.Error(err))
		return c.JSON(http.StatusGatewayTimeout, &HTTPResponse{Status: false, Message: "Backend did not respond in time"})
	case errors.Is(err, context.Canceled):
		return c.NoContent(http.StatusNoContent)
	}

	logger.Error("Unexpected Error", zap.Error(err))
	return c.JSON(http.StatusInternalServerError, &HTTPResponse{Status: false, Message: "Internal server error"})
}

// 401 от бэкенда означает конец сессии; 5xx бэкенда отдаём как 502.
func backendErrorResponse(c echo.Context, err *apperrors.BackendError, logger *zap.Logger) error {
	msg := apperrors.MessageOf(err, "Request failed")
	switch {
	case err.IsUnauthorized():
		return c.JSON(http.StatusUnauthorized, &HTTPResponse{Status: false, Body: RedirectBody{Redirect: LoginPath}, Message: msg})
	case err.StatusCode == http.StatusForbidden:
		return c.JSON(http.StatusForbidden, &HTTPResponse{Status: false, Body: RedirectBody{Redirect: UnauthorizedPath}, Message: msg})
	case err.StatusCode >= 400 && err.StatusCode < 500:
		return c.JSON(err.StatusCode, &HTTPResponse{Status: false, Message: msg})
	}
	logger.Error("Backend Error",
		zap.Int("status", err.StatusCode),
		zap.String("method", err.Method),
		zap.String("path", err.Path),
		zap.String("message", msg),
	)
	return c.JSON(http.StatusBadGateway, &HTTPResponse{Status: false, Message: msg})
}

package errors

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// Авторизация и сессия
	ErrEmptyAuthHeader   = fmt.Errorf("session is missing")
	ErrInvalidAuthHeader = fmt.Errorf("invalid authorization header")
	ErrUnauthorized      = fmt.Errorf("unauthorized")
	ErrForbidden         = fmt.Errorf("access denied")
	ErrSessionNotFound   = fmt.Errorf("session not found")
	ErrSessionExpired    = fmt.Errorf("session expired")
	ErrInvalidToken      = fmt.Errorf("invalid token")

	// Контекст
	ErrSessionNotInContext = fmt.Errorf("session not found in request context")

	// Общие
	ErrNotFound   = fmt.Errorf("record not found")
	ErrBadRequest = fmt.Errorf("bad request")
)

// Кастомные типы ошибок
type InvalidInputError struct {
	Message string
}

func (e *InvalidInputError) Error() string { return e.Message }

func NewInvalidInputError(format string, args ...interface{}) error {
	return &InvalidInputError{Message: fmt.Sprintf(format, args...)}
}

// HttpError - ошибка, которая уже знает свой HTTP-код и текст для клиента.
type HttpError struct {
	Code    int
	Message string
	Err     error
	Details interface{}
}

func (e *HttpError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *HttpError) Unwrap() error { return e.Err }

func NewHttpError(code int, message string, err error, details interface{}) *HttpError {
	return &HttpError{Code: code, Message: message, Err: err, Details: details}
}

func NewBadRequestError(message string) *HttpError {
	return NewHttpError(http.StatusBadRequest, message, nil, nil)
}

// BackendError - не-2xx ответ внешнего REST-бэкенда.
// Message уже извлечён из тела ответа (message -> error).
type BackendError struct {
	StatusCode int
	Message    string
	Method     string
	Path       string
	Body       []byte
}

func (e *BackendError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("request failed with status code %d", e.StatusCode)
}

func (e *BackendError) IsUnauthorized() bool { return e.StatusCode == http.StatusUnauthorized }

// MessageOf возвращает человекочитаемое сообщение:
// data.message -> data.error -> текст исключения -> fallback.
func MessageOf(err error, fallback string) string {
	if err == nil {
		return fallback
	}
	var backendErr *BackendError
	if errors.As(err, &backendErr) {
		if backendErr.Message != "" {
			return backendErr.Message
		}
	}
	var httpErr *HttpError
	if errors.As(err, &httpErr) && httpErr.Message != "" {
		return httpErr.Message
	}
	if msg := err.Error(); msg != "" {
		return msg
	}
	return fallback
}

// IsUnauthorized - true, если где-то в цепочке есть 401 от бэкенда.
func IsUnauthorized(err error) bool {
	var backendErr *BackendError
	return errors.As(err, &backendErr) && backendErr.IsUnauthorized()
}

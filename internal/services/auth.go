// Файл: internal/services/auth.go
package services

import (
	"context"
	"net/http"
	"strings"

	"crm-dashboard/internal/dto"
	"crm-dashboard/internal/events"
	"crm-dashboard/internal/repositories"
	apperrors "crm-dashboard/pkg/errors"
	"crm-dashboard/pkg/utils"

	"go.uber.org/zap"
)

type AuthServiceInterface interface {
	Login(ctx context.Context, payload dto.LoginDTO) (*dto.Session, error)
	Logout(ctx context.Context, sessionID string) error
	Me(ctx context.Context) (*dto.SessionResponseDTO, error)
}

type AuthService struct {
	authRepo repositories.AuthRepositoryInterface
	sessions SessionServiceInterface
	logger   *zap.Logger
}

func NewAuthService(
	authRepo repositories.AuthRepositoryInterface,
	sessions SessionServiceInterface,
	logger *zap.Logger,
) AuthServiceInterface {
	return &AuthService{authRepo: authRepo, sessions: sessions, logger: logger}
}

func (s *AuthService) Login(ctx context.Context, payload dto.LoginDTO) (*dto.Session, error) {
	logger := s.logger.With(zap.String("username", payload.Username))
	payload.Username = strings.TrimSpace(payload.Username)

	auth, err := s.authRepo.Login(ctx, payload)
	if err != nil {
		if apperrors.IsUnauthorized(err) {
			logger.Warn("Неверный логин или пароль")
			return nil, apperrors.NewHttpError(http.StatusUnauthorized, apperrors.MessageOf(err, "Invalid username or password"), nil, nil)
		}
		logger.Error("Ошибка входа", zap.Error(err))
		return nil, err
	}
	if auth.Token == "" {
		logger.Error("Бэкенд вернул пустой токен")
		return nil, apperrors.NewHttpError(http.StatusBadGateway, "Login failed", nil, nil)
	}
	if auth.AdminType != dto.AdminTypeAdmin && auth.AdminType != dto.AdminTypeSuperAdmin {
		logger.Warn("Неизвестный тип администратора", zap.String("adminType", string(auth.AdminType)))
		return nil, apperrors.ErrForbidden
	}

	return s.sessions.Save(ctx, *auth)
}

func (s *AuthService) Logout(ctx context.Context, sessionID string) error {
	_, err := s.sessions.Clear(ctx, sessionID, events.ReasonLogout)
	return err
}

func (s *AuthService) Me(ctx context.Context) (*dto.SessionResponseDTO, error) {
	session, err := utils.GetSessionFromContext(ctx)
	if err != nil {
		return nil, err
	}
	res := dto.NewSessionResponse(session, false)
	return &res, nil
}

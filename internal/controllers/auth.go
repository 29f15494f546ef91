package controllers

import (
	"net/http"
	"time"

	"crm-dashboard/internal/dto"
	"crm-dashboard/internal/services"
	apperrors "crm-dashboard/pkg/errors"
	"crm-dashboard/pkg/utils"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// SessionIDResolver достаёт id сессии из запроса (cookie или заголовок).
type SessionIDResolver func(r *http.Request) (string, error)

type AuthController struct {
	authService  services.AuthServiceInterface
	sessionID    SessionIDResolver
	cookieName   string
	secureCookie bool
	logger       *zap.Logger
}

func NewAuthController(
	authService services.AuthServiceInterface,
	sessionID SessionIDResolver,
	cookieName string,
	secureCookie bool,
	logger *zap.Logger,
) *AuthController {
	return &AuthController{
		authService:  authService,
		sessionID:    sessionID,
		cookieName:   cookieName,
		secureCookie: secureCookie,
		logger:       logger,
	}
}

func (ctrl *AuthController) errorResponse(c echo.Context, err error) error {
	return utils.ErrorResponse(c, err, ctrl.logger)
}

func (ctrl *AuthController) sessionCookie(value string, expires time.Time) *http.Cookie {
	cookie := &http.Cookie{
		Name:     ctrl.cookieName,
		Value:    value,
		Path:     "/",
		Expires:  expires,
		HttpOnly: true,
		Secure:   ctrl.secureCookie,
		SameSite: http.SameSiteLaxMode,
	}
	if value == "" {
		cookie.MaxAge = -1
	}
	return cookie
}

func (ctrl *AuthController) Login(c echo.Context) error {
	var payload dto.LoginDTO
	if err := c.Bind(&payload); err != nil {
		ctrl.logger.Error("Login: ошибка привязки данных", zap.Error(err))
		return ctrl.errorResponse(c, apperrors.NewBadRequestError("Invalid login payload"))
	}
	if err := c.Validate(&payload); err != nil {
		return ctrl.errorResponse(c, err)
	}

	session, err := ctrl.authService.Login(c.Request().Context(), payload)
	if err != nil {
		return ctrl.errorResponse(c, err)
	}

	c.SetCookie(ctrl.sessionCookie(session.ID, session.ExpiresAt))
	return utils.SuccessResponse(c, dto.NewSessionResponse(session, true), "Logged in", http.StatusOK)
}

// Logout всегда стирает cookie, даже если сессии уже нет.
func (ctrl *AuthController) Logout(c echo.Context) error {
	if sessionID, err := ctrl.sessionID(c.Request()); err == nil {
		if err := ctrl.authService.Logout(c.Request().Context(), sessionID); err != nil {
			ctrl.logger.Error("Logout: не удалось удалить сессию", zap.Error(err))
		}
	}
	c.SetCookie(ctrl.sessionCookie("", time.Unix(0, 0)))
	return utils.SuccessResponse(c, utils.RedirectBody{Redirect: utils.LoginPath}, "Logged out", http.StatusOK)
}

func (ctrl *AuthController) Me(c echo.Context) error {
	res, err := ctrl.authService.Me(c.Request().Context())
	if err != nil {
		return ctrl.errorResponse(c, err)
	}
	return utils.SuccessResponse(c, res, "Session is active", http.StatusOK)
}

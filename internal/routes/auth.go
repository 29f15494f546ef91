package routes

import (
	"crm-dashboard/internal/controllers"
	"crm-dashboard/internal/services"
	"crm-dashboard/pkg/config"
	"crm-dashboard/pkg/middleware"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

func runAuthRouter(
	api *echo.Group,
	authService services.AuthServiceInterface,
	authMW *middleware.AuthMiddleware,
	cfg config.SessionConfig,
	logger *zap.Logger,
) {
	authCtrl := controllers.NewAuthController(authService, authMW.SessionID, cfg.CookieName, cfg.CookieSecure, logger)

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/login", authCtrl.Login)
		authGroup.POST("/logout", authCtrl.Logout)
		authGroup.GET("/me", authCtrl.Me, authMW.Auth)
	}
}

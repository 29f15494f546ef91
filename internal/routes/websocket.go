package routes

import (
	"slices"

	"crm-dashboard/internal/controllers"
	"crm-dashboard/pkg/websocket"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

func runWebSocketRouter(secureGroup *echo.Group, hub *websocket.Hub, allowedOrigins []string, logger *zap.Logger) {
	wsCtrl := controllers.NewWebSocketController(hub, func(origin string) bool {
		return slices.Contains(allowedOrigins, origin)
	}, logger)

	secureGroup.GET("/ws", wsCtrl.ServeWs)
}

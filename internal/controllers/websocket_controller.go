package controllers

import (
	"net/http"

	"crm-dashboard/pkg/utils"
	appwebsocket "crm-dashboard/pkg/websocket"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// OriginChecker решает, разрешён ли Origin для апгрейда.
type OriginChecker func(origin string) bool

type WebSocketController struct {
	hub      *appwebsocket.Hub
	upgrader websocket.Upgrader
	logger   *zap.Logger
}

func NewWebSocketController(hub *appwebsocket.Hub, allowOrigin OriginChecker, logger *zap.Logger) *WebSocketController {
	return &WebSocketController{
		hub: hub,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				return origin == "" || allowOrigin == nil || allowOrigin(origin)
			},
		},
		logger: logger,
	}
}

// ServeWs: сессия уже проверена middleware.Auth, клиент привязывается к её id.
func (ctrl *WebSocketController) ServeWs(c echo.Context) error {
	session, err := utils.GetSessionFromContext(c.Request().Context())
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	conn, err := ctrl.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		ctrl.logger.Error("WebSocket: не удалось улучшить соединение", zap.Error(err))
		return err
	}

	client := appwebsocket.NewClient(ctrl.hub, conn, session.ID, session.Auth.AdminID)
	if !ctrl.hub.Join(client) {
		conn.Close()
		return nil
	}

	go client.WritePump()
	go client.ReadPump()

	ctrl.logger.Info("WebSocket: клиент подключен", zap.Uint64("adminID", session.Auth.AdminID))
	return nil
}

package router

import (
	"researchhub/internal/adapter/api/handler"

	"github.com/labstack/echo/v4"
)

// The widget authenticates through the token query param inside the handler,
// so no auth middleware sits on this route.
func SetupWebSocketRouter(e *echo.Echo, wsHandler *handler.WebSocketHandler) {
	e.GET("/ws", wsHandler.HandleWebSocket)
}

package router

import (
	"researchhub/internal/adapter/api/handler"
	"researchhub/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupDashboardRouter(e *echo.Echo, dashboardHandler *handler.DashboardHandler, authMiddleware *middleware.AuthMiddleware) {
	dashboard := e.Group("/v1/dashboard")
	dashboard.Use(authMiddleware.Authenticate)

	dashboard.GET("", dashboardHandler.Overview)
	dashboard.GET("/search", dashboardHandler.Search)
}

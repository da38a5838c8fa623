package router

import (
	"researchhub/internal/adapter/api/handler"
	"researchhub/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupAdminRouter(e *echo.Echo, adminHandler *handler.AdminHandler, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware) {
	admin := e.Group("/v1/admin")
	admin.Use(authMiddleware.Authenticate)
	admin.Use(adminMiddleware.AdminOnly)

	admin.GET("/users", adminHandler.ListUsers)
	admin.PATCH("/users/:id/status", adminHandler.SetUserStatus)
	admin.POST("/users/:id/promote", adminHandler.PromoteAdmin)
	admin.POST("/reviewers", adminHandler.AddReviewer)
	admin.DELETE("/reviewers/:id", adminHandler.DeactivateReviewer)
	admin.GET("/logs", adminHandler.ListAuditLogs)
}

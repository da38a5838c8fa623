package router

import (
	"researchhub/internal/adapter/api/handler"
	"researchhub/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupCollaborationRouter(e *echo.Echo, collaborationHandler *handler.CollaborationHandler, authMiddleware *middleware.AuthMiddleware) {
	requests := e.Group("/v1/collaboration-requests")
	requests.Use(authMiddleware.Authenticate)

	requests.POST("", collaborationHandler.CreateRequest)
	requests.POST("/:id/accept", collaborationHandler.Accept)
	requests.POST("/:id/reject", collaborationHandler.Reject)
	requests.GET("/incoming", collaborationHandler.ListIncoming)
	requests.GET("/outgoing", collaborationHandler.ListOutgoing)

	collaborations := e.Group("/v1/collaborations")
	collaborations.Use(authMiddleware.Authenticate)
	collaborations.GET("", collaborationHandler.ListCollaborations)
}

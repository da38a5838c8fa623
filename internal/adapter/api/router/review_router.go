package router

import (
	"researchhub/internal/adapter/api/handler"
	"researchhub/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupReviewRouter(e *echo.Echo, reviewHandler *handler.ReviewHandler, authMiddleware *middleware.AuthMiddleware) {
	requests := e.Group("/v1/review-requests")
	requests.Use(authMiddleware.Authenticate)

	requests.POST("", reviewHandler.CreateRequest)
	requests.POST("/:id/accept", reviewHandler.Accept)
	requests.POST("/:id/decline", reviewHandler.Decline)
	requests.POST("/:id/complete", reviewHandler.Complete)
	requests.GET("/assigned", reviewHandler.ListForReviewer)
	requests.GET("/mine", reviewHandler.ListForResearcher)

	reviewers := e.Group("/v1/reviewers")
	reviewers.Use(authMiddleware.Authenticate)
	reviewers.GET("", reviewHandler.ListReviewers)
}

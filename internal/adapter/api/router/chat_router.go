package router

import (
	"researchhub/internal/adapter/api/handler"
	"researchhub/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupChatRouter(e *echo.Echo, chatHandler *handler.ChatHandler, milestoneHandler *handler.MilestoneHandler, fundingHandler *handler.FundingHandler, authMiddleware *middleware.AuthMiddleware) {
	conversations := e.Group("/v1/conversations")
	conversations.Use(authMiddleware.Authenticate)

	conversations.GET("", chatHandler.ListConversations)
	conversations.POST("/:id/open", chatHandler.OpenConversation)
	conversations.GET("/:id", chatHandler.GetConversation)
	conversations.POST("/:id/messages", chatHandler.SendMessage)
	conversations.POST("/:id/attachments", chatHandler.UploadAttachment)

	conversations.POST("/:id/milestones", milestoneHandler.Add)
	conversations.PATCH("/:id/milestones/:milestoneId/toggle", milestoneHandler.Toggle)
	conversations.DELETE("/:id/milestones/:milestoneId", milestoneHandler.Delete)
	conversations.POST("/:id/research-complete", milestoneHandler.MarkComplete)
	conversations.DELETE("/:id/research-complete", milestoneHandler.UnmarkComplete)

	conversations.POST("/:id/funding", fundingHandler.AddFunding)
	conversations.POST("/:id/expenditures", fundingHandler.AddExpenditure)
	conversations.PUT("/:id/total-needed", fundingHandler.UpdateTotalNeeded)
	conversations.GET("/:id/funding/summary", fundingHandler.Summary)

	users := e.Group("/v1/users")
	users.Use(authMiddleware.Authenticate)
	users.GET("/:userId/display-name", chatHandler.ResolveUser)
}

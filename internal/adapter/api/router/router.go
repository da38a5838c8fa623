package router

import (
	"researchhub/internal/adapter/api/handler"
	"researchhub/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

type Handlers struct {
	Auth          *handler.AuthHandler
	Chat          *handler.ChatHandler
	Milestone     *handler.MilestoneHandler
	Funding       *handler.FundingHandler
	Notification  *handler.NotificationHandler
	Listing       *handler.ListingHandler
	Collaboration *handler.CollaborationHandler
	Review        *handler.ReviewHandler
	Dashboard     *handler.DashboardHandler
	Admin         *handler.AdminHandler
	WebSocket     *handler.WebSocketHandler
	Health        *handler.HealthHandler
}

func Setup(e *echo.Echo, h Handlers, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware) {
	SetupAuthRouter(e, h.Auth, authMiddleware)
	SetupChatRouter(e, h.Chat, h.Milestone, h.Funding, authMiddleware)
	SetupNotificationRouter(e, h.Notification, authMiddleware)
	SetupListingRouter(e, h.Listing, authMiddleware)
	SetupCollaborationRouter(e, h.Collaboration, authMiddleware)
	SetupReviewRouter(e, h.Review, authMiddleware)
	SetupDashboardRouter(e, h.Dashboard, authMiddleware)
	SetupAdminRouter(e, h.Admin, authMiddleware, adminMiddleware)
	SetupWebSocketRouter(e, h.WebSocket)
	SetupHealthRouter(e, h.Health)
}

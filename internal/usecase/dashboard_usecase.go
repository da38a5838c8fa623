package usecase

import (
	"context"

	"researchhub/internal/domain/entity"
	"researchhub/pkg/logger"
)

// DashboardUseCase aggregates the researcher's landing state in one call,
// the server-side analog of the dashboard's fetch-all-on-mount behavior.
type DashboardUseCase struct {
	listings      *ListingUseCase
	collaboration *CollaborationUseCase
	reviews       *ReviewUseCase
	notifications *NotificationUseCase
}

func NewDashboardUseCase(
	listings *ListingUseCase,
	collaboration *CollaborationUseCase,
	reviews *ReviewUseCase,
	notifications *NotificationUseCase,
) *DashboardUseCase {
	return &DashboardUseCase{
		listings:      listings,
		collaboration: collaboration,
		reviews:       reviews,
		notifications: notifications,
	}
}

type DashboardOverview struct {
	UnreadNotifications   int64                          `json:"unread_notifications"`
	Notifications         []*entity.Notification         `json:"notifications"`
	PendingCollaborations []*entity.CollaborationRequest `json:"pending_collaborations"`
	PendingReviews        []*entity.ReviewRequest        `json:"pending_reviews"`
	OwnListings           []*entity.ResearchListing      `json:"own_listings"`
	PublicListings        []*entity.ResearchListing      `json:"public_listings"`
}

// Overview fetches every dashboard panel. Individual panel failures degrade
// to empty sections rather than failing the whole page.
func (uc *DashboardUseCase) Overview(ctx context.Context, userID string) (*DashboardOverview, error) {
	overview := &DashboardOverview{}

	unread, err := uc.notifications.UnreadCount(ctx, userID)
	if err != nil {
		logger.Warn("Dashboard: unread count failed for %s: %v", userID, err)
	}
	overview.UnreadNotifications = unread

	if notifications, _, err := uc.notifications.List(ctx, userID, 20, 0); err == nil {
		overview.Notifications = notifications
	} else {
		logger.Warn("Dashboard: notification list failed for %s: %v", userID, err)
	}

	if requests, _, err := uc.collaboration.ListIncoming(ctx, userID, entity.RequestStatusPending, 0, 0); err == nil {
		overview.PendingCollaborations = requests
	} else {
		logger.Warn("Dashboard: collaboration requests failed for %s: %v", userID, err)
	}

	if reviews, _, err := uc.reviews.ListForReviewer(ctx, userID, entity.ReviewStatusPending, 0, 0); err == nil {
		overview.PendingReviews = reviews
	} else {
		logger.Warn("Dashboard: review requests failed for %s: %v", userID, err)
	}

	if own, _, err := uc.listings.ListOwn(ctx, userID, 0, 0); err == nil {
		overview.OwnListings = own
	} else {
		logger.Warn("Dashboard: own listings failed for %s: %v", userID, err)
	}

	if public, _, err := uc.listings.ListPublic(ctx, 0, 0); err == nil {
		overview.PublicListings = public
	} else {
		logger.Warn("Dashboard: public listings failed for %s: %v", userID, err)
	}

	return overview, nil
}

// Search applies the dashboard's listing filter.
func (uc *DashboardUseCase) Search(ctx context.Context, query string) ([]*entity.ResearchListing, error) {
	return uc.listings.Search(ctx, query)
}

package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"researchhub/internal/domain/entity"
)

func newDashboardUseCaseForTest(t *testing.T) (*DashboardUseCase, *fakeListingRepo, *fakeCollabRepo, *fakeReviewRepo, *fakeNotificationRepo) {
	t.Helper()
	listingRepo := newFakeListingRepo()
	collabRepo := newFakeCollabRepo()
	reviewRepo := newFakeReviewRepo()
	notificationRepo := newFakeNotificationRepo()
	userRepo := newFakeUserRepo()

	notificationUC := NewNotificationUseCase(notificationRepo)
	uc := NewDashboardUseCase(
		NewListingUseCase(listingRepo, userRepo),
		NewCollaborationUseCase(collabRepo, listingRepo, newFakeConvRepo(), notificationUC),
		NewReviewUseCase(reviewRepo, listingRepo, notificationUC),
		notificationUC,
	)
	return uc, listingRepo, collabRepo, reviewRepo, notificationRepo
}

func TestDashboardOverview(t *testing.T) {
	uc, listingRepo, collabRepo, reviewRepo, notificationRepo := newDashboardUseCaseForTest(t)
	ctx := context.Background()

	own := seedListing(t, listingRepo, "alice", entity.ListingStatusPublic)
	seedListing(t, listingRepo, "bob", entity.ListingStatusPublic)
	seedListing(t, listingRepo, "bob", entity.ListingStatusDraft)

	require.NoError(t, collabRepo.CreateRequest(ctx, &entity.CollaborationRequest{
		ListingID:   own.ID,
		RequesterID: "bob",
		OwnerID:     "alice",
	}))

	require.NoError(t, reviewRepo.CreateRequest(ctx, &entity.ReviewRequest{
		ListingID:    own.ID,
		ResearcherID: "bob",
		ReviewerID:   "alice",
	}))

	require.NoError(t, notificationRepo.Create(ctx, "alice", &entity.Notification{
		Type:  entity.NotificationSystem,
		Title: "Welcome",
	}))

	overview, err := uc.Overview(ctx, "alice")
	require.NoError(t, err)

	assert.Equal(t, int64(1), overview.UnreadNotifications)
	assert.Len(t, overview.Notifications, 1)
	assert.Len(t, overview.PendingCollaborations, 1)
	assert.Len(t, overview.PendingReviews, 1)
	assert.Len(t, overview.OwnListings, 1)
	assert.Len(t, overview.PublicListings, 2, "drafts stay off the dashboard")
}

func TestDashboardOverviewEmpty(t *testing.T) {
	uc, _, _, _, _ := newDashboardUseCaseForTest(t)

	overview, err := uc.Overview(context.Background(), "nobody")
	require.NoError(t, err)

	assert.Zero(t, overview.UnreadNotifications)
	assert.Empty(t, overview.PendingCollaborations)
	assert.Empty(t, overview.PendingReviews)
}

func TestDashboardSearch(t *testing.T) {
	uc, listingRepo, _, _, _ := newDashboardUseCaseForTest(t)
	ctx := context.Background()

	seedListing(t, listingRepo, "alice", entity.ListingStatusPublic)
	hidden := seedListing(t, listingRepo, "bob", entity.ListingStatusDraft)

	results, err := uc.Search(ctx, "reef")
	require.NoError(t, err)
	require.Len(t, results, 1, "search only covers public listings")
	assert.NotEqual(t, hidden.ID, results[0].ID)
}

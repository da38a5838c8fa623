package usecase

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"researchhub/internal/domain/entity"
	"researchhub/pkg/errors"
)

type fakeReviewRepo struct {
	mu        sync.Mutex
	seq       int
	requests  map[string]*entity.ReviewRequest
	reviewers map[string]*entity.Reviewer
}

func newFakeReviewRepo() *fakeReviewRepo {
	return &fakeReviewRepo{
		requests:  make(map[string]*entity.ReviewRequest),
		reviewers: make(map[string]*entity.Reviewer),
	}
}

func (r *fakeReviewRepo) CreateRequest(ctx context.Context, request *entity.ReviewRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	request.ID = fmt.Sprintf("review-%d", r.seq)
	request.Status = entity.ReviewStatusPending
	request.CreatedAt = time.Now()
	r.requests[request.ID] = request
	return nil
}

func (r *fakeReviewRepo) GetRequestByID(ctx context.Context, id string) (*entity.ReviewRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	request, ok := r.requests[id]
	if !ok {
		return nil, errors.NotFound("Review request", nil)
	}
	return request, nil
}

func (r *fakeReviewRepo) UpdateRequest(ctx context.Context, request *entity.ReviewRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.requests[request.ID]; !ok {
		return errors.NotFound("Review request", nil)
	}
	r.requests[request.ID] = request
	return nil
}

func (r *fakeReviewRepo) ListRequestsByReviewer(ctx context.Context, reviewerID, status string, limit, offset int) ([]*entity.ReviewRequest, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.ReviewRequest
	for _, req := range r.requests {
		if req.ReviewerID == reviewerID && (status == "" || req.Status == status) {
			out = append(out, req)
		}
	}
	return out, int64(len(out)), nil
}

func (r *fakeReviewRepo) ListRequestsByResearcher(ctx context.Context, researcherID string, limit, offset int) ([]*entity.ReviewRequest, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.ReviewRequest
	for _, req := range r.requests {
		if req.ResearcherID == researcherID {
			out = append(out, req)
		}
	}
	return out, int64(len(out)), nil
}

func (r *fakeReviewRepo) CreateReviewer(ctx context.Context, reviewer *entity.Reviewer) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	if reviewer.ID == "" {
		reviewer.ID = fmt.Sprintf("reviewer-%d", r.seq)
	}
	reviewer.CreatedAt = time.Now()
	r.reviewers[reviewer.UserID] = reviewer
	return nil
}

func (r *fakeReviewRepo) GetReviewerByUserID(ctx context.Context, userID string) (*entity.Reviewer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	reviewer, ok := r.reviewers[userID]
	if !ok {
		return nil, errors.NotFound("Reviewer", nil)
	}
	return reviewer, nil
}

func (r *fakeReviewRepo) UpdateReviewer(ctx context.Context, reviewer *entity.Reviewer) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.reviewers[reviewer.UserID]; !ok {
		return errors.NotFound("Reviewer", nil)
	}
	r.reviewers[reviewer.UserID] = reviewer
	return nil
}

func (r *fakeReviewRepo) ListReviewers(ctx context.Context, activeOnly bool) ([]*entity.Reviewer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Reviewer
	for _, reviewer := range r.reviewers {
		if !activeOnly || reviewer.Active {
			out = append(out, reviewer)
		}
	}
	return out, nil
}

func newReviewUseCaseForTest(t *testing.T) (*ReviewUseCase, *fakeReviewRepo, *fakeListingRepo, *fakeNotificationRepo) {
	t.Helper()
	reviewRepo := newFakeReviewRepo()
	listingRepo := newFakeListingRepo()
	notificationRepo := newFakeNotificationRepo()
	uc := NewReviewUseCase(reviewRepo, listingRepo, NewNotificationUseCase(notificationRepo))
	return uc, reviewRepo, listingRepo, notificationRepo
}

func seedReviewer(t *testing.T, reviewRepo *fakeReviewRepo, userID string, active bool) {
	t.Helper()
	require.NoError(t, reviewRepo.CreateReviewer(context.Background(), &entity.Reviewer{
		UserID: userID,
		Active: active,
	}))
}

func TestCreateReviewRequest(t *testing.T) {
	uc, reviewRepo, listingRepo, notificationRepo := newReviewUseCaseForTest(t)
	ctx := context.Background()
	listing := seedListing(t, listingRepo, "owner", entity.ListingStatusPublic)
	seedReviewer(t, reviewRepo, "rev", true)

	request, err := uc.CreateRequest(ctx, "owner", CreateReviewRequestInput{
		ListingID:  listing.ID,
		ReviewerID: "rev",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.ReviewStatusPending, request.Status)

	require.Len(t, notificationRepo.byUser["rev"], 1)
	assert.Equal(t, entity.NotificationReviewRequest, notificationRepo.byUser["rev"][0].Type)
}

func TestCreateReviewRequestValidation(t *testing.T) {
	uc, reviewRepo, listingRepo, _ := newReviewUseCaseForTest(t)
	ctx := context.Background()
	listing := seedListing(t, listingRepo, "owner", entity.ListingStatusPublic)
	seedReviewer(t, reviewRepo, "inactive", false)

	_, err := uc.CreateRequest(ctx, "mallory", CreateReviewRequestInput{ListingID: listing.ID, ReviewerID: "rev"})
	assert.True(t, errors.Is(err, "FORBIDDEN"), "only the listing owner may request reviews")

	_, err = uc.CreateRequest(ctx, "owner", CreateReviewRequestInput{ListingID: listing.ID, ReviewerID: "nobody"})
	assert.True(t, errors.Is(err, "NOT_FOUND"))

	_, err = uc.CreateRequest(ctx, "owner", CreateReviewRequestInput{ListingID: listing.ID, ReviewerID: "inactive"})
	assert.True(t, errors.Is(err, "BAD_REQUEST"))
}

func TestReviewLifecycle(t *testing.T) {
	uc, reviewRepo, listingRepo, notificationRepo := newReviewUseCaseForTest(t)
	ctx := context.Background()
	listing := seedListing(t, listingRepo, "owner", entity.ListingStatusPublic)
	seedReviewer(t, reviewRepo, "rev", true)

	request, err := uc.CreateRequest(ctx, "owner", CreateReviewRequestInput{ListingID: listing.ID, ReviewerID: "rev"})
	require.NoError(t, err)

	// Completing before accepting is out of order.
	err = uc.Complete(ctx, "rev", request.ID, "great methodology")
	assert.True(t, errors.Is(err, "CONFLICT"))

	require.NoError(t, uc.Accept(ctx, "rev", request.ID))
	require.NoError(t, uc.Complete(ctx, "rev", request.ID, "great methodology"))

	stored, _ := reviewRepo.GetRequestByID(ctx, request.ID)
	assert.Equal(t, entity.ReviewStatusCompleted, stored.Status)
	assert.Equal(t, "great methodology", stored.Feedback)

	// Researcher hears about the completion.
	var systemNotes int
	for _, n := range notificationRepo.byUser["owner"] {
		if n.Type == entity.NotificationSystem {
			systemNotes++
		}
	}
	assert.Equal(t, 1, systemNotes)
}

func TestReviewTransitionsAreReviewerOnly(t *testing.T) {
	uc, reviewRepo, listingRepo, _ := newReviewUseCaseForTest(t)
	ctx := context.Background()
	listing := seedListing(t, listingRepo, "owner", entity.ListingStatusPublic)
	seedReviewer(t, reviewRepo, "rev", true)

	request, err := uc.CreateRequest(ctx, "owner", CreateReviewRequestInput{ListingID: listing.ID, ReviewerID: "rev"})
	require.NoError(t, err)

	assert.True(t, errors.Is(uc.Accept(ctx, "mallory", request.ID), "FORBIDDEN"))
	assert.True(t, errors.Is(uc.Complete(ctx, "rev", request.ID, ""), "BAD_REQUEST"), "feedback is mandatory")

	require.NoError(t, uc.Decline(ctx, "rev", request.ID))
	assert.True(t, errors.Is(uc.Accept(ctx, "rev", request.ID), "CONFLICT"))
}

func TestListReviewers(t *testing.T) {
	uc, reviewRepo, _, _ := newReviewUseCaseForTest(t)
	seedReviewer(t, reviewRepo, "active-rev", true)
	seedReviewer(t, reviewRepo, "retired-rev", false)

	reviewers, err := uc.ListReviewers(context.Background())
	require.NoError(t, err)
	require.Len(t, reviewers, 1)
	assert.Equal(t, "active-rev", reviewers[0].UserID)
}

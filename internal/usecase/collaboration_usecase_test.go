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

type fakeListingRepo struct {
	mu       sync.Mutex
	seq      int
	listings map[string]*entity.ResearchListing
}

func newFakeListingRepo() *fakeListingRepo {
	return &fakeListingRepo{listings: make(map[string]*entity.ResearchListing)}
}

func (r *fakeListingRepo) Create(ctx context.Context, listing *entity.ResearchListing) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if listing.ID == "" {
		r.seq++
		listing.ID = fmt.Sprintf("listing-%d", r.seq)
	}
	listing.CreatedAt = time.Now()
	r.listings[listing.ID] = listing
	return nil
}

func (r *fakeListingRepo) GetByID(ctx context.Context, id string) (*entity.ResearchListing, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	listing, ok := r.listings[id]
	if !ok {
		return nil, errors.NotFound("Listing", nil)
	}
	return listing, nil
}

func (r *fakeListingRepo) Update(ctx context.Context, listing *entity.ResearchListing) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.listings[listing.ID]; !ok {
		return errors.NotFound("Listing", nil)
	}
	r.listings[listing.ID] = listing
	return nil
}

func (r *fakeListingRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.listings, id)
	return nil
}

func (r *fakeListingRepo) ListPublic(ctx context.Context, limit, offset int) ([]*entity.ResearchListing, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.ResearchListing
	for _, l := range r.listings {
		if l.Status == entity.ListingStatusPublic {
			out = append(out, l)
		}
	}
	return out, int64(len(out)), nil
}

func (r *fakeListingRepo) ListByResearcher(ctx context.Context, researcherID string, limit, offset int) ([]*entity.ResearchListing, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.ResearchListing
	for _, l := range r.listings {
		if l.ResearcherID == researcherID {
			out = append(out, l)
		}
	}
	return out, int64(len(out)), nil
}

type fakeCollabRepo struct {
	mu             sync.Mutex
	seq            int
	requests       map[string]*entity.CollaborationRequest
	collaborations map[string]*entity.Collaboration
}

func newFakeCollabRepo() *fakeCollabRepo {
	return &fakeCollabRepo{
		requests:       make(map[string]*entity.CollaborationRequest),
		collaborations: make(map[string]*entity.Collaboration),
	}
}

func (r *fakeCollabRepo) CreateRequest(ctx context.Context, request *entity.CollaborationRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	request.ID = fmt.Sprintf("req-%d", r.seq)
	request.Status = entity.RequestStatusPending
	request.CreatedAt = time.Now()
	r.requests[request.ID] = request
	return nil
}

func (r *fakeCollabRepo) GetRequestByID(ctx context.Context, id string) (*entity.CollaborationRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	request, ok := r.requests[id]
	if !ok {
		return nil, errors.NotFound("Collaboration request", nil)
	}
	return request, nil
}

func (r *fakeCollabRepo) UpdateRequest(ctx context.Context, request *entity.CollaborationRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.requests[request.ID]; !ok {
		return errors.NotFound("Collaboration request", nil)
	}
	r.requests[request.ID] = request
	return nil
}

func (r *fakeCollabRepo) ListRequestsByOwner(ctx context.Context, ownerID, status string, limit, offset int) ([]*entity.CollaborationRequest, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.CollaborationRequest
	for _, req := range r.requests {
		if req.OwnerID == ownerID && (status == "" || req.Status == status) {
			out = append(out, req)
		}
	}
	return out, int64(len(out)), nil
}

func (r *fakeCollabRepo) ListRequestsByRequester(ctx context.Context, requesterID string, limit, offset int) ([]*entity.CollaborationRequest, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.CollaborationRequest
	for _, req := range r.requests {
		if req.RequesterID == requesterID {
			out = append(out, req)
		}
	}
	return out, int64(len(out)), nil
}

func (r *fakeCollabRepo) CreateCollaboration(ctx context.Context, collaboration *entity.Collaboration) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	collaboration.ID = fmt.Sprintf("collab-%d", r.seq)
	collaboration.CreatedAt = time.Now()
	r.collaborations[collaboration.ID] = collaboration
	return nil
}

func (r *fakeCollabRepo) ListCollaborationsByUser(ctx context.Context, userID string, limit, offset int) ([]*entity.Collaboration, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Collaboration
	for _, c := range r.collaborations {
		for _, p := range c.Participants {
			if p == userID {
				out = append(out, c)
				break
			}
		}
	}
	return out, int64(len(out)), nil
}

func newCollaborationUseCaseForTest(t *testing.T) (*CollaborationUseCase, *fakeCollabRepo, *fakeListingRepo, *fakeConvRepo, *fakeNotificationRepo) {
	t.Helper()
	collabRepo := newFakeCollabRepo()
	listingRepo := newFakeListingRepo()
	convRepo := newFakeConvRepo()
	notificationRepo := newFakeNotificationRepo()
	uc := NewCollaborationUseCase(collabRepo, listingRepo, convRepo, NewNotificationUseCase(notificationRepo))
	return uc, collabRepo, listingRepo, convRepo, notificationRepo
}

func seedListing(t *testing.T, listingRepo *fakeListingRepo, owner, status string) *entity.ResearchListing {
	t.Helper()
	listing := &entity.ResearchListing{
		ResearcherID:   owner,
		ResearcherName: "Dr. " + owner,
		Title:          "Reef restoration",
		Status:         status,
	}
	require.NoError(t, listingRepo.Create(context.Background(), listing))
	return listing
}

func TestCreateCollaborationRequest(t *testing.T) {
	uc, _, listingRepo, _, notificationRepo := newCollaborationUseCaseForTest(t)
	ctx := context.Background()
	listing := seedListing(t, listingRepo, "owner", entity.ListingStatusPublic)

	request, err := uc.CreateRequest(ctx, "requester", CreateCollaborationRequestInput{
		ListingID: listing.ID,
		Message:   "I work on adjacent coral genomics",
	})
	require.NoError(t, err)

	assert.Equal(t, entity.RequestStatusPending, request.Status)
	assert.Equal(t, "owner", request.OwnerID)

	notifications := notificationRepo.byUser["owner"]
	require.Len(t, notifications, 1)
	assert.Equal(t, entity.NotificationCollaborationRequest, notifications[0].Type)
	assert.False(t, notifications[0].Read)
}

func TestCreateCollaborationRequestRejectsOwnListing(t *testing.T) {
	uc, _, listingRepo, _, _ := newCollaborationUseCaseForTest(t)
	listing := seedListing(t, listingRepo, "owner", entity.ListingStatusPublic)

	_, err := uc.CreateRequest(context.Background(), "owner", CreateCollaborationRequestInput{ListingID: listing.ID})
	assert.True(t, errors.Is(err, "BAD_REQUEST"))
}

func TestCreateCollaborationRequestRejectsDrafts(t *testing.T) {
	uc, _, listingRepo, _, _ := newCollaborationUseCaseForTest(t)
	listing := seedListing(t, listingRepo, "owner", entity.ListingStatusDraft)

	_, err := uc.CreateRequest(context.Background(), "requester", CreateCollaborationRequestInput{ListingID: listing.ID})
	assert.True(t, errors.Is(err, "BAD_REQUEST"))
}

func TestAcceptRequestCreatesSharedConversation(t *testing.T) {
	uc, collabRepo, listingRepo, convRepo, notificationRepo := newCollaborationUseCaseForTest(t)
	ctx := context.Background()
	listing := seedListing(t, listingRepo, "owner", entity.ListingStatusPublic)

	request, err := uc.CreateRequest(ctx, "requester", CreateCollaborationRequestInput{ListingID: listing.ID})
	require.NoError(t, err)

	collaboration, err := uc.Accept(ctx, "owner", request.ID)
	require.NoError(t, err)

	assert.NotEmpty(t, collaboration.ConversationID)
	assert.ElementsMatch(t, []string{"owner", "requester"}, collaboration.Participants)

	conv, err := convRepo.GetByID(ctx, collaboration.ConversationID)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"owner", "requester"}, conv.Participants)

	stored, _ := collabRepo.GetRequestByID(ctx, request.ID)
	assert.Equal(t, entity.RequestStatusAccepted, stored.Status)

	updated, _ := listingRepo.GetByID(ctx, listing.ID)
	assert.Contains(t, updated.Collaborators, "requester")

	require.Len(t, notificationRepo.byUser["requester"], 1)
	assert.Equal(t, entity.NotificationSystem, notificationRepo.byUser["requester"][0].Type)
}

func TestAcceptRequestAuthorization(t *testing.T) {
	uc, _, listingRepo, _, _ := newCollaborationUseCaseForTest(t)
	ctx := context.Background()
	listing := seedListing(t, listingRepo, "owner", entity.ListingStatusPublic)

	request, err := uc.CreateRequest(ctx, "requester", CreateCollaborationRequestInput{ListingID: listing.ID})
	require.NoError(t, err)

	_, err = uc.Accept(ctx, "mallory", request.ID)
	assert.True(t, errors.Is(err, "FORBIDDEN"))

	_, err = uc.Accept(ctx, "owner", request.ID)
	require.NoError(t, err)

	_, err = uc.Accept(ctx, "owner", request.ID)
	assert.True(t, errors.Is(err, "CONFLICT"), "a resolved request cannot be accepted twice")
}

func TestRejectRequest(t *testing.T) {
	uc, collabRepo, listingRepo, _, _ := newCollaborationUseCaseForTest(t)
	ctx := context.Background()
	listing := seedListing(t, listingRepo, "owner", entity.ListingStatusPublic)

	request, err := uc.CreateRequest(ctx, "requester", CreateCollaborationRequestInput{ListingID: listing.ID})
	require.NoError(t, err)

	require.NoError(t, uc.Reject(ctx, "owner", request.ID))

	stored, _ := collabRepo.GetRequestByID(ctx, request.ID)
	assert.Equal(t, entity.RequestStatusRejected, stored.Status)

	assert.True(t, errors.Is(uc.Reject(ctx, "owner", request.ID), "CONFLICT"))
}

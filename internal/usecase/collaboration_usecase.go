package usecase

import (
	"context"

	"github.com/google/uuid"

	"researchhub/internal/domain/entity"
	"researchhub/internal/domain/repository"
	"researchhub/pkg/errors"
	"researchhub/pkg/logger"
)

type CollaborationUseCase struct {
	collabRepo    repository.CollaborationRepository
	listingRepo   repository.ListingRepository
	convRepo      repository.ConversationRepository
	notifications *NotificationUseCase
}

func NewCollaborationUseCase(
	collabRepo repository.CollaborationRepository,
	listingRepo repository.ListingRepository,
	convRepo repository.ConversationRepository,
	notifications *NotificationUseCase,
) *CollaborationUseCase {
	return &CollaborationUseCase{
		collabRepo:    collabRepo,
		listingRepo:   listingRepo,
		convRepo:      convRepo,
		notifications: notifications,
	}
}

type CreateCollaborationRequestInput struct {
	ListingID string
	Message   string
}

// CreateRequest files a pending request against a listing and notifies the
// owner.
func (uc *CollaborationUseCase) CreateRequest(ctx context.Context, requesterID string, input CreateCollaborationRequestInput) (*entity.CollaborationRequest, error) {
	listing, err := uc.listingRepo.GetByID(ctx, input.ListingID)
	if err != nil {
		return nil, err
	}
	if listing.ResearcherID == requesterID {
		return nil, errors.BadRequest("You cannot request collaboration on your own listing", nil)
	}
	if listing.Status != entity.ListingStatusPublic {
		return nil, errors.BadRequest("Listing is not open for collaboration", nil)
	}

	request := &entity.CollaborationRequest{
		ListingID:   input.ListingID,
		RequesterID: requesterID,
		OwnerID:     listing.ResearcherID,
		Message:     input.Message,
	}

	if err := uc.collabRepo.CreateRequest(ctx, request); err != nil {
		return nil, err
	}

	uc.notifications.Notify(ctx, listing.ResearcherID, SendNotificationInput{
		Type:  entity.NotificationCollaborationRequest,
		Title: "New collaboration request",
		Body:  input.Message,
		Data: map[string]interface{}{
			"requestId": request.ID,
			"listingId": listing.ID,
		},
	})

	return request, nil
}

// Accept turns a pending request into a collaboration: the two researchers
// get a shared conversation and the requester is added to the listing's
// collaborator list.
func (uc *CollaborationUseCase) Accept(ctx context.Context, ownerID, requestID string) (*entity.Collaboration, error) {
	request, err := uc.collabRepo.GetRequestByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if request.OwnerID != ownerID {
		return nil, errors.Forbidden("Only the listing owner can accept this request", nil)
	}
	if request.Status != entity.RequestStatusPending {
		return nil, errors.Conflict("Request has already been resolved")
	}

	chatID := uuid.New().String()
	if _, _, err := uc.convRepo.GetOrCreate(ctx, chatID, ownerID); err != nil {
		return nil, err
	}
	if err := uc.convRepo.AddParticipant(ctx, chatID, request.RequesterID); err != nil {
		return nil, err
	}

	collaboration := &entity.Collaboration{
		ListingID:      request.ListingID,
		Participants:   []string{ownerID, request.RequesterID},
		ConversationID: chatID,
	}
	if err := uc.collabRepo.CreateCollaboration(ctx, collaboration); err != nil {
		return nil, err
	}

	request.Status = entity.RequestStatusAccepted
	if err := uc.collabRepo.UpdateRequest(ctx, request); err != nil {
		return nil, err
	}

	if listing, err := uc.listingRepo.GetByID(ctx, request.ListingID); err == nil {
		listing.Collaborators = append(listing.Collaborators, request.RequesterID)
		if err := uc.listingRepo.Update(ctx, listing); err != nil {
			logger.Warn("Failed to add collaborator to listing %s: %v", listing.ID, err)
		}
	}

	uc.notifications.Notify(ctx, request.RequesterID, SendNotificationInput{
		Type:  entity.NotificationSystem,
		Title: "Collaboration request accepted",
		Data: map[string]interface{}{
			"collaborationId": collaboration.ID,
			"conversationId":  chatID,
		},
	})

	return collaboration, nil
}

func (uc *CollaborationUseCase) Reject(ctx context.Context, ownerID, requestID string) error {
	request, err := uc.collabRepo.GetRequestByID(ctx, requestID)
	if err != nil {
		return err
	}
	if request.OwnerID != ownerID {
		return errors.Forbidden("Only the listing owner can reject this request", nil)
	}
	if request.Status != entity.RequestStatusPending {
		return errors.Conflict("Request has already been resolved")
	}

	request.Status = entity.RequestStatusRejected
	if err := uc.collabRepo.UpdateRequest(ctx, request); err != nil {
		return err
	}

	uc.notifications.Notify(ctx, request.RequesterID, SendNotificationInput{
		Type:  entity.NotificationSystem,
		Title: "Collaboration request rejected",
		Data: map[string]interface{}{
			"requestId": request.ID,
		},
	})

	return nil
}

func (uc *CollaborationUseCase) ListIncoming(ctx context.Context, ownerID, status string, limit, offset int) ([]*entity.CollaborationRequest, int64, error) {
	return uc.collabRepo.ListRequestsByOwner(ctx, ownerID, status, limit, offset)
}

func (uc *CollaborationUseCase) ListOutgoing(ctx context.Context, requesterID string, limit, offset int) ([]*entity.CollaborationRequest, int64, error) {
	return uc.collabRepo.ListRequestsByRequester(ctx, requesterID, limit, offset)
}

func (uc *CollaborationUseCase) ListCollaborations(ctx context.Context, userID string, limit, offset int) ([]*entity.Collaboration, int64, error) {
	return uc.collabRepo.ListCollaborationsByUser(ctx, userID, limit, offset)
}

package usecase

import (
	"context"

	"researchhub/internal/domain/entity"
	"researchhub/internal/domain/repository"
	"researchhub/pkg/errors"
)

type ReviewUseCase struct {
	reviewRepo    repository.ReviewRepository
	listingRepo   repository.ListingRepository
	notifications *NotificationUseCase
}

func NewReviewUseCase(
	reviewRepo repository.ReviewRepository,
	listingRepo repository.ListingRepository,
	notifications *NotificationUseCase,
) *ReviewUseCase {
	return &ReviewUseCase{
		reviewRepo:    reviewRepo,
		listingRepo:   listingRepo,
		notifications: notifications,
	}
}

type CreateReviewRequestInput struct {
	ListingID  string
	ReviewerID string
}

// CreateRequest asks a registered reviewer to review a listing.
func (uc *ReviewUseCase) CreateRequest(ctx context.Context, researcherID string, input CreateReviewRequestInput) (*entity.ReviewRequest, error) {
	listing, err := uc.listingRepo.GetByID(ctx, input.ListingID)
	if err != nil {
		return nil, err
	}
	if listing.ResearcherID != researcherID {
		return nil, errors.Forbidden("Only the listing owner can request a review", nil)
	}

	reviewer, err := uc.reviewRepo.GetReviewerByUserID(ctx, input.ReviewerID)
	if err != nil {
		return nil, err
	}
	if !reviewer.Active {
		return nil, errors.BadRequest("Reviewer is not active", nil)
	}

	request := &entity.ReviewRequest{
		ListingID:    input.ListingID,
		ResearcherID: researcherID,
		ReviewerID:   input.ReviewerID,
	}

	if err := uc.reviewRepo.CreateRequest(ctx, request); err != nil {
		return nil, err
	}

	uc.notifications.Notify(ctx, input.ReviewerID, SendNotificationInput{
		Type:  entity.NotificationReviewRequest,
		Title: "New review request",
		Body:  listing.Title,
		Data: map[string]interface{}{
			"requestId": request.ID,
			"listingId": listing.ID,
		},
	})

	return request, nil
}

func (uc *ReviewUseCase) Accept(ctx context.Context, reviewerID, requestID string) error {
	return uc.transition(ctx, reviewerID, requestID, entity.ReviewStatusPending, entity.ReviewStatusAccepted, "")
}

func (uc *ReviewUseCase) Decline(ctx context.Context, reviewerID, requestID string) error {
	return uc.transition(ctx, reviewerID, requestID, entity.ReviewStatusPending, entity.ReviewStatusDeclined, "")
}

// Complete closes an accepted review with the reviewer's feedback and
// notifies the researcher.
func (uc *ReviewUseCase) Complete(ctx context.Context, reviewerID, requestID, feedback string) error {
	if feedback == "" {
		return errors.BadRequest("Feedback is required to complete a review", nil)
	}
	return uc.transition(ctx, reviewerID, requestID, entity.ReviewStatusAccepted, entity.ReviewStatusCompleted, feedback)
}

func (uc *ReviewUseCase) transition(ctx context.Context, reviewerID, requestID, from, to, feedback string) error {
	request, err := uc.reviewRepo.GetRequestByID(ctx, requestID)
	if err != nil {
		return err
	}
	if request.ReviewerID != reviewerID {
		return errors.Forbidden("Only the assigned reviewer can update this request", nil)
	}
	if request.Status != from {
		return errors.Conflict("Review request is not in the expected state")
	}

	request.Status = to
	if feedback != "" {
		request.Feedback = feedback
	}

	if err := uc.reviewRepo.UpdateRequest(ctx, request); err != nil {
		return err
	}

	if to == entity.ReviewStatusCompleted {
		uc.notifications.Notify(ctx, request.ResearcherID, SendNotificationInput{
			Type:  entity.NotificationSystem,
			Title: "Review completed",
			Data: map[string]interface{}{
				"requestId": request.ID,
				"listingId": request.ListingID,
			},
		})
	}

	return nil
}

func (uc *ReviewUseCase) ListForReviewer(ctx context.Context, reviewerID, status string, limit, offset int) ([]*entity.ReviewRequest, int64, error) {
	return uc.reviewRepo.ListRequestsByReviewer(ctx, reviewerID, status, limit, offset)
}

func (uc *ReviewUseCase) ListForResearcher(ctx context.Context, researcherID string, limit, offset int) ([]*entity.ReviewRequest, int64, error) {
	return uc.reviewRepo.ListRequestsByResearcher(ctx, researcherID, limit, offset)
}

func (uc *ReviewUseCase) ListReviewers(ctx context.Context) ([]*entity.Reviewer, error) {
	return uc.reviewRepo.ListReviewers(ctx, true)
}

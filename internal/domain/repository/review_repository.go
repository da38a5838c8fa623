package repository

import (
	"context"

	"researchhub/internal/domain/entity"
)

type ReviewRepository interface {
	CreateRequest(ctx context.Context, request *entity.ReviewRequest) error
	GetRequestByID(ctx context.Context, id string) (*entity.ReviewRequest, error)
	UpdateRequest(ctx context.Context, request *entity.ReviewRequest) error
	ListRequestsByReviewer(ctx context.Context, reviewerID, status string, limit, offset int) ([]*entity.ReviewRequest, int64, error)
	ListRequestsByResearcher(ctx context.Context, researcherID string, limit, offset int) ([]*entity.ReviewRequest, int64, error)

	CreateReviewer(ctx context.Context, reviewer *entity.Reviewer) error
	GetReviewerByUserID(ctx context.Context, userID string) (*entity.Reviewer, error)
	UpdateReviewer(ctx context.Context, reviewer *entity.Reviewer) error
	ListReviewers(ctx context.Context, activeOnly bool) ([]*entity.Reviewer, error)
}

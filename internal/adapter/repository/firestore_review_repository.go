package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	grpcstatus "google.golang.org/grpc/status"

	"researchhub/internal/domain/entity"
	"researchhub/internal/domain/repository"
	"researchhub/pkg/errors"
)

type firestoreReviewRepository struct {
	client *firestore.Client
}

func NewFirestoreReviewRepository(client *firestore.Client) repository.ReviewRepository {
	return &firestoreReviewRepository{
		client: client,
	}
}

func (r *firestoreReviewRepository) CreateRequest(ctx context.Context, request *entity.ReviewRequest) error {
	if request.ID == "" {
		request.ID = uuid.New().String()
	}

	now := time.Now()
	request.CreatedAt = now
	request.UpdatedAt = now
	request.Status = entity.ReviewStatusPending

	_, err := r.client.Collection("reviewRequests").Doc(request.ID).Set(ctx, request)
	if err != nil {
		return errors.Internal("Failed to create review request", err)
	}
	return nil
}

func (r *firestoreReviewRepository) GetRequestByID(ctx context.Context, id string) (*entity.ReviewRequest, error) {
	doc, err := r.client.Collection("reviewRequests").Doc(id).Get(ctx)
	if err != nil {
		if grpcstatus.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Review request", err)
		}
		return nil, errors.Internal("Failed to get review request", err)
	}

	var request entity.ReviewRequest
	if err := doc.DataTo(&request); err != nil {
		return nil, errors.Internal("Failed to parse review request data", err)
	}
	request.ID = doc.Ref.ID

	return &request, nil
}

func (r *firestoreReviewRepository) UpdateRequest(ctx context.Context, request *entity.ReviewRequest) error {
	request.UpdatedAt = time.Now()

	_, err := r.client.Collection("reviewRequests").Doc(request.ID).Set(ctx, request)
	if err != nil {
		return errors.Internal("Failed to update review request", err)
	}
	return nil
}

func (r *firestoreReviewRepository) ListRequestsByReviewer(ctx context.Context, reviewerID, status string, limit, offset int) ([]*entity.ReviewRequest, int64, error) {
	query := r.client.Collection("reviewRequests").Where("reviewerId", "==", reviewerID)
	if status != "" {
		query = query.Where("status", "==", status)
	}
	return r.queryRequests(ctx, query, limit, offset)
}

func (r *firestoreReviewRepository) ListRequestsByResearcher(ctx context.Context, researcherID string, limit, offset int) ([]*entity.ReviewRequest, int64, error) {
	query := r.client.Collection("reviewRequests").Where("researcherId", "==", researcherID)
	return r.queryRequests(ctx, query, limit, offset)
}

func (r *firestoreReviewRepository) queryRequests(ctx context.Context, query firestore.Query, limit, offset int) ([]*entity.ReviewRequest, int64, error) {
	countDocs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, 0, errors.Internal("Failed to count review requests", err)
	}
	total := int64(len(countDocs))

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	iter := query.Documents(ctx)
	var requests []*entity.ReviewRequest

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, 0, errors.Internal("Failed to iterate review requests", err)
		}

		var request entity.ReviewRequest
		if err := doc.DataTo(&request); err != nil {
			return nil, 0, errors.Internal("Failed to parse review request data", err)
		}
		request.ID = doc.Ref.ID
		requests = append(requests, &request)
	}

	return requests, total, nil
}

func (r *firestoreReviewRepository) CreateReviewer(ctx context.Context, reviewer *entity.Reviewer) error {
	if reviewer.ID == "" {
		reviewer.ID = uuid.New().String()
	}
	reviewer.CreatedAt = time.Now()

	_, err := r.client.Collection("reviewers").Doc(reviewer.ID).Set(ctx, reviewer)
	if err != nil {
		return errors.Internal("Failed to create reviewer", err)
	}
	return nil
}

func (r *firestoreReviewRepository) GetReviewerByUserID(ctx context.Context, userID string) (*entity.Reviewer, error) {
	query := r.client.Collection("reviewers").Where("userId", "==", userID).Limit(1)
	iter := query.Documents(ctx)
	doc, err := iter.Next()
	if err != nil {
		if err == iterator.Done {
			return nil, errors.NotFound("Reviewer", nil)
		}
		return nil, errors.Internal("Failed to query reviewer", err)
	}

	var reviewer entity.Reviewer
	if err := doc.DataTo(&reviewer); err != nil {
		return nil, errors.Internal("Failed to parse reviewer data", err)
	}
	reviewer.ID = doc.Ref.ID

	return &reviewer, nil
}

func (r *firestoreReviewRepository) UpdateReviewer(ctx context.Context, reviewer *entity.Reviewer) error {
	_, err := r.client.Collection("reviewers").Doc(reviewer.ID).Set(ctx, reviewer)
	if err != nil {
		return errors.Internal("Failed to update reviewer", err)
	}
	return nil
}

func (r *firestoreReviewRepository) ListReviewers(ctx context.Context, activeOnly bool) ([]*entity.Reviewer, error) {
	query := r.client.Collection("reviewers").Query
	if activeOnly {
		query = r.client.Collection("reviewers").Where("active", "==", true)
	}

	docs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, errors.Internal("Failed to query reviewers", err)
	}

	var reviewers []*entity.Reviewer
	for _, doc := range docs {
		var reviewer entity.Reviewer
		if err := doc.DataTo(&reviewer); err != nil {
			continue
		}
		reviewer.ID = doc.Ref.ID
		reviewers = append(reviewers, &reviewer)
	}

	return reviewers, nil
}

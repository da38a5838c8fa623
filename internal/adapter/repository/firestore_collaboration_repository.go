package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"researchhub/internal/domain/entity"
	"researchhub/internal/domain/repository"
	"researchhub/pkg/errors"
)

type firestoreCollaborationRepository struct {
	client *firestore.Client
}

func NewFirestoreCollaborationRepository(client *firestore.Client) repository.CollaborationRepository {
	return &firestoreCollaborationRepository{
		client: client,
	}
}

func (r *firestoreCollaborationRepository) CreateRequest(ctx context.Context, request *entity.CollaborationRequest) error {
	if request.ID == "" {
		request.ID = uuid.New().String()
	}

	now := time.Now()
	request.CreatedAt = now
	request.UpdatedAt = now
	request.Status = entity.RequestStatusPending

	_, err := r.client.Collection("collaboration-requests").Doc(request.ID).Set(ctx, request)
	if err != nil {
		return errors.Internal("Failed to create collaboration request", err)
	}
	return nil
}

func (r *firestoreCollaborationRepository) GetRequestByID(ctx context.Context, id string) (*entity.CollaborationRequest, error) {
	doc, err := r.client.Collection("collaboration-requests").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Collaboration request", err)
		}
		return nil, errors.Internal("Failed to get collaboration request", err)
	}

	var request entity.CollaborationRequest
	if err := doc.DataTo(&request); err != nil {
		return nil, errors.Internal("Failed to parse collaboration request data", err)
	}
	request.ID = doc.Ref.ID

	return &request, nil
}

func (r *firestoreCollaborationRepository) UpdateRequest(ctx context.Context, request *entity.CollaborationRequest) error {
	request.UpdatedAt = time.Now()

	_, err := r.client.Collection("collaboration-requests").Doc(request.ID).Set(ctx, request)
	if err != nil {
		return errors.Internal("Failed to update collaboration request", err)
	}
	return nil
}

func (r *firestoreCollaborationRepository) ListRequestsByOwner(ctx context.Context, ownerID, status string, limit, offset int) ([]*entity.CollaborationRequest, int64, error) {
	query := r.client.Collection("collaboration-requests").Where("ownerId", "==", ownerID)
	if status != "" {
		query = query.Where("status", "==", status)
	}
	return r.queryRequests(ctx, query, limit, offset)
}

func (r *firestoreCollaborationRepository) ListRequestsByRequester(ctx context.Context, requesterID string, limit, offset int) ([]*entity.CollaborationRequest, int64, error) {
	query := r.client.Collection("collaboration-requests").Where("requesterId", "==", requesterID)
	return r.queryRequests(ctx, query, limit, offset)
}

func (r *firestoreCollaborationRepository) queryRequests(ctx context.Context, query firestore.Query, limit, offset int) ([]*entity.CollaborationRequest, int64, error) {
	countDocs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, 0, errors.Internal("Failed to count collaboration requests", err)
	}
	total := int64(len(countDocs))

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	iter := query.Documents(ctx)
	var requests []*entity.CollaborationRequest

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, 0, errors.Internal("Failed to iterate collaboration requests", err)
		}

		var request entity.CollaborationRequest
		if err := doc.DataTo(&request); err != nil {
			return nil, 0, errors.Internal("Failed to parse collaboration request data", err)
		}
		request.ID = doc.Ref.ID
		requests = append(requests, &request)
	}

	return requests, total, nil
}

func (r *firestoreCollaborationRepository) CreateCollaboration(ctx context.Context, collaboration *entity.Collaboration) error {
	if collaboration.ID == "" {
		collaboration.ID = uuid.New().String()
	}
	collaboration.CreatedAt = time.Now()

	_, err := r.client.Collection("collaborations").Doc(collaboration.ID).Set(ctx, collaboration)
	if err != nil {
		return errors.Internal("Failed to create collaboration", err)
	}
	return nil
}

func (r *firestoreCollaborationRepository) ListCollaborationsByUser(ctx context.Context, userID string, limit, offset int) ([]*entity.Collaboration, int64, error) {
	query := r.client.Collection("collaborations").Where("participants", "array-contains", userID)

	countDocs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, 0, errors.Internal("Failed to count collaborations", err)
	}
	total := int64(len(countDocs))

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	iter := query.Documents(ctx)
	var collaborations []*entity.Collaboration

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, 0, errors.Internal("Failed to iterate collaborations", err)
		}

		var collaboration entity.Collaboration
		if err := doc.DataTo(&collaboration); err != nil {
			return nil, 0, errors.Internal("Failed to parse collaboration data", err)
		}
		collaboration.ID = doc.Ref.ID
		collaborations = append(collaborations, &collaboration)
	}

	return collaborations, total, nil
}

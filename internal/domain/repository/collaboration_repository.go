package repository

import (
	"context"

	"researchhub/internal/domain/entity"
)

type CollaborationRepository interface {
	CreateRequest(ctx context.Context, request *entity.CollaborationRequest) error
	GetRequestByID(ctx context.Context, id string) (*entity.CollaborationRequest, error)
	UpdateRequest(ctx context.Context, request *entity.CollaborationRequest) error
	ListRequestsByOwner(ctx context.Context, ownerID, status string, limit, offset int) ([]*entity.CollaborationRequest, int64, error)
	ListRequestsByRequester(ctx context.Context, requesterID string, limit, offset int) ([]*entity.CollaborationRequest, int64, error)

	CreateCollaboration(ctx context.Context, collaboration *entity.Collaboration) error
	ListCollaborationsByUser(ctx context.Context, userID string, limit, offset int) ([]*entity.Collaboration, int64, error)
}

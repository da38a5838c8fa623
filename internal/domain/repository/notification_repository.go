package repository

import (
	"context"

	"researchhub/internal/domain/entity"
)

// NotificationRepository writes into the recipient's messages subcollection.
type NotificationRepository interface {
	Create(ctx context.Context, userID string, notification *entity.Notification) error
	ListByUser(ctx context.Context, userID string, limit, offset int) ([]*entity.Notification, int64, error)
	GetByID(ctx context.Context, userID, id string) (*entity.Notification, error)
	MarkRead(ctx context.Context, userID, id string) error
	CountUnread(ctx context.Context, userID string) (int64, error)
}

package usecase

import (
	"context"

	"researchhub/internal/domain/entity"
	"researchhub/internal/domain/repository"
	"researchhub/pkg/errors"
	"researchhub/pkg/logger"
)

type NotificationUseCase struct {
	notificationRepo repository.NotificationRepository
}

func NewNotificationUseCase(notificationRepo repository.NotificationRepository) *NotificationUseCase {
	return &NotificationUseCase{
		notificationRepo: notificationRepo,
	}
}

type SendNotificationInput struct {
	Type  string
	Title string
	Body  string
	Data  map[string]interface{}
}

// Send writes one notification into the recipient's messages subcollection.
// Read is forced to false no matter what the caller passed.
func (uc *NotificationUseCase) Send(ctx context.Context, recipientID string, input SendNotificationInput) (*entity.Notification, error) {
	if recipientID == "" {
		return nil, errors.BadRequest("Recipient id is required", nil)
	}
	if input.Type == "" || input.Title == "" {
		return nil, errors.BadRequest("Notification type and title are required", nil)
	}
	if !entity.ValidNotificationType(input.Type) {
		return nil, errors.BadRequest("Unknown notification type", nil)
	}

	notification := &entity.Notification{
		Type:  input.Type,
		Title: input.Title,
		Body:  input.Body,
		Data:  input.Data,
		Read:  false,
	}

	if err := uc.notificationRepo.Create(ctx, recipientID, notification); err != nil {
		return nil, err
	}

	return notification, nil
}

// Notify is the fire-and-forget variant used inside other flows: failures
// are logged and dropped so a missing notification never fails the
// triggering operation.
func (uc *NotificationUseCase) Notify(ctx context.Context, recipientID string, input SendNotificationInput) {
	if _, err := uc.Send(ctx, recipientID, input); err != nil {
		logger.Warn("Failed to notify %s (%s): %v", recipientID, input.Type, err)
	}
}

func (uc *NotificationUseCase) List(ctx context.Context, userID string, limit, offset int) ([]*entity.Notification, int64, error) {
	return uc.notificationRepo.ListByUser(ctx, userID, limit, offset)
}

// MarkRead flips the read flag. Only the recipient can do this; the
// subcollection path already scopes the lookup to their documents.
func (uc *NotificationUseCase) MarkRead(ctx context.Context, userID, notificationID string) error {
	return uc.notificationRepo.MarkRead(ctx, userID, notificationID)
}

func (uc *NotificationUseCase) UnreadCount(ctx context.Context, userID string) (int64, error) {
	return uc.notificationRepo.CountUnread(ctx, userID)
}

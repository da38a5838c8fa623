package usecase

import (
	"context"

	"researchhub/internal/domain/entity"
	"researchhub/internal/domain/repository"
	"researchhub/pkg/errors"
	"researchhub/pkg/logger"
)

type AdminUseCase struct {
	userRepo      repository.UserRepository
	reviewRepo    repository.ReviewRepository
	auditRepo     repository.AuditLogRepository
	notifications *NotificationUseCase
}

func NewAdminUseCase(
	userRepo repository.UserRepository,
	reviewRepo repository.ReviewRepository,
	auditRepo repository.AuditLogRepository,
	notifications *NotificationUseCase,
) *AdminUseCase {
	return &AdminUseCase{
		userRepo:      userRepo,
		reviewRepo:    reviewRepo,
		auditRepo:     auditRepo,
		notifications: notifications,
	}
}

func (uc *AdminUseCase) ListUsers(ctx context.Context, limit, offset int) ([]*entity.User, int64, error) {
	return uc.userRepo.List(ctx, limit, offset)
}

func (uc *AdminUseCase) SetUserStatus(ctx context.Context, adminID, userID, status string) error {
	if status != "active" && status != "suspended" {
		return errors.BadRequest("Status must be active or suspended", nil)
	}

	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	user.Status = status
	if err := uc.userRepo.Update(ctx, user); err != nil {
		return err
	}

	uc.audit(ctx, adminID, "set_user_status", userID, status)
	return nil
}

// PromoteAdmin grants the admin role. The promotion lands in the audit log
// and the promoted user gets a system notification.
func (uc *AdminUseCase) PromoteAdmin(ctx context.Context, adminID, userID string) error {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if user.Role == entity.RoleAdmin {
		return errors.Conflict("User is already an admin")
	}

	user.Role = entity.RoleAdmin
	if err := uc.userRepo.Update(ctx, user); err != nil {
		return err
	}

	uc.audit(ctx, adminID, "promote_admin", userID, "")
	uc.notifications.Notify(ctx, userID, SendNotificationInput{
		Type:  entity.NotificationSystem,
		Title: "You have been granted administrator access",
	})

	return nil
}

type AddReviewerInput struct {
	UserID    string
	Expertise []string
}

func (uc *AdminUseCase) AddReviewer(ctx context.Context, adminID string, input AddReviewerInput) (*entity.Reviewer, error) {
	user, err := uc.userRepo.GetByID(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	if existing, err := uc.reviewRepo.GetReviewerByUserID(ctx, input.UserID); err == nil && existing != nil {
		return nil, errors.Conflict("User is already a reviewer")
	}

	reviewer := &entity.Reviewer{
		UserID:    input.UserID,
		Expertise: input.Expertise,
		Active:    true,
		AddedBy:   adminID,
	}
	if err := uc.reviewRepo.CreateReviewer(ctx, reviewer); err != nil {
		return nil, err
	}

	if user.Role == entity.RoleResearcher {
		user.Role = entity.RoleReviewer
		if err := uc.userRepo.Update(ctx, user); err != nil {
			logger.Warn("Failed to update role for new reviewer %s: %v", user.ID, err)
		}
	}

	uc.audit(ctx, adminID, "add_reviewer", input.UserID, "")
	return reviewer, nil
}

func (uc *AdminUseCase) DeactivateReviewer(ctx context.Context, adminID, userID string) error {
	reviewer, err := uc.reviewRepo.GetReviewerByUserID(ctx, userID)
	if err != nil {
		return err
	}

	reviewer.Active = false
	if err := uc.reviewRepo.UpdateReviewer(ctx, reviewer); err != nil {
		return err
	}

	uc.audit(ctx, adminID, "deactivate_reviewer", userID, "")
	return nil
}

func (uc *AdminUseCase) ListAuditLogs(ctx context.Context, limit, offset int) ([]*entity.AuditLog, int64, error) {
	return uc.auditRepo.List(ctx, limit, offset)
}

// audit is best effort; losing a log line must not fail the admin action.
func (uc *AdminUseCase) audit(ctx context.Context, actorID, action, target, detail string) {
	err := uc.auditRepo.Append(ctx, &entity.AuditLog{
		ActorID: actorID,
		Action:  action,
		Target:  target,
		Detail:  detail,
	})
	if err != nil {
		logger.Warn("Audit log append failed (%s by %s): %v", action, actorID, err)
	}
}

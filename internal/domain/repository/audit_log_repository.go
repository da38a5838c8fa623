package repository

import (
	"context"

	"researchhub/internal/domain/entity"
)

type AuditLogRepository interface {
	Append(ctx context.Context, log *entity.AuditLog) error
	List(ctx context.Context, limit, offset int) ([]*entity.AuditLog, int64, error)
}

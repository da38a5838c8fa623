package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"google.golang.org/api/iterator"

	"researchhub/internal/domain/entity"
	"researchhub/internal/domain/repository"
	"researchhub/pkg/errors"
)

type firestoreAuditLogRepository struct {
	client *firestore.Client
}

func NewFirestoreAuditLogRepository(client *firestore.Client) repository.AuditLogRepository {
	return &firestoreAuditLogRepository{
		client: client,
	}
}

func (r *firestoreAuditLogRepository) Append(ctx context.Context, log *entity.AuditLog) error {
	if log.ID == "" {
		log.ID = uuid.New().String()
	}
	log.CreatedAt = time.Now()

	_, err := r.client.Collection("logs").Doc(log.ID).Set(ctx, log)
	if err != nil {
		return errors.Internal("Failed to append audit log", err)
	}
	return nil
}

func (r *firestoreAuditLogRepository) List(ctx context.Context, limit, offset int) ([]*entity.AuditLog, int64, error) {
	query := r.client.Collection("logs").OrderBy("createdAt", firestore.Desc)

	countDocs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, 0, errors.Internal("Failed to count audit logs", err)
	}
	total := int64(len(countDocs))

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	iter := query.Documents(ctx)
	var logs []*entity.AuditLog

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, 0, errors.Internal("Failed to iterate audit logs", err)
		}

		var log entity.AuditLog
		if err := doc.DataTo(&log); err != nil {
			return nil, 0, errors.Internal("Failed to parse audit log data", err)
		}
		log.ID = doc.Ref.ID
		logs = append(logs, &log)
	}

	return logs, total, nil
}

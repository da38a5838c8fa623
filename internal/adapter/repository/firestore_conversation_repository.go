package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"researchhub/internal/domain/entity"
	"researchhub/internal/domain/repository"
	"researchhub/pkg/errors"
	"researchhub/pkg/logger"
)

type firestoreConversationRepository struct {
	client *firestore.Client
}

func NewFirestoreConversationRepository(client *firestore.Client) repository.ConversationRepository {
	return &firestoreConversationRepository{
		client: client,
	}
}

func (r *firestoreConversationRepository) doc(id string) *firestore.DocumentRef {
	return r.client.Collection("chats").Doc(id)
}

func (r *firestoreConversationRepository) GetOrCreate(ctx context.Context, id, ownerID string) (*entity.Conversation, bool, error) {
	ref := r.doc(id)

	var conv entity.Conversation
	var created bool

	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		created = false
		doc, err := tx.Get(ref)
		if err != nil {
			if status.Code(err) != codes.NotFound {
				return err
			}
			conv = entity.Conversation{
				ID:           id,
				Name:         "New Chat",
				Participants: []string{ownerID},
				Messages:     []entity.Message{},
				Milestones:   []entity.Milestone{},
				Funding:      []entity.FundingRecord{},
				Expenditures: []entity.ExpenditureRecord{},
			}
			created = true
			return tx.Set(ref, &conv)
		}

		if err := doc.DataTo(&conv); err != nil {
			return err
		}
		conv.ID = doc.Ref.ID
		return nil
	})
	if err != nil {
		return nil, false, errors.Internal("Failed to open conversation", err)
	}

	return &conv, created, nil
}

func (r *firestoreConversationRepository) GetByID(ctx context.Context, id string) (*entity.Conversation, error) {
	doc, err := r.doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Conversation", err)
		}
		return nil, errors.Internal("Failed to get conversation", err)
	}

	var conv entity.Conversation
	if err := doc.DataTo(&conv); err != nil {
		return nil, errors.Internal("Failed to parse conversation data", err)
	}
	conv.ID = doc.Ref.ID

	return &conv, nil
}

func (r *firestoreConversationRepository) ListByParticipant(ctx context.Context, userID string, limit, offset int) ([]*entity.Conversation, int64, error) {
	query := r.client.Collection("chats").
		Where("participants", "array-contains", userID).
		OrderBy("lastUpdated", firestore.Desc)

	allDocs, err := query.Documents(ctx).GetAll()
	if err != nil {
		logger.Error("Firestore error while fetching conversations for user %s: %v", userID, err)
		return nil, 0, errors.Internal("Failed to fetch conversations", err)
	}

	total := int64(len(allDocs))

	start := offset
	if start > len(allDocs) {
		start = len(allDocs)
	}
	end := len(allDocs)
	if limit > 0 && start+limit < end {
		end = start + limit
	}

	var conversations []*entity.Conversation
	for i := start; i < end; i++ {
		var conv entity.Conversation
		if err := allDocs[i].DataTo(&conv); err != nil {
			logger.Warn("Skipping malformed conversation %s: %v", allDocs[i].Ref.ID, err)
			continue
		}
		conv.ID = allDocs[i].Ref.ID
		conversations = append(conversations, &conv)
	}

	return conversations, total, nil
}

func (r *firestoreConversationRepository) AddParticipant(ctx context.Context, id, userID string) error {
	_, err := r.doc(id).Update(ctx, []firestore.Update{
		{Path: "participants", Value: firestore.ArrayUnion(userID)},
		{Path: "lastUpdated", Value: firestore.ServerTimestamp},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return errors.NotFound("Conversation", err)
		}
		return errors.Internal("Failed to add participant", err)
	}
	return nil
}

// AppendMessage writes the message and the lastUpdated stamp in one update,
// so a concurrent sender can never overwrite this message and the two fields
// can never diverge.
func (r *firestoreConversationRepository) AppendMessage(ctx context.Context, id string, message entity.Message) error {
	_, err := r.doc(id).Update(ctx, []firestore.Update{
		{Path: "messages", Value: firestore.ArrayUnion(message)},
		{Path: "lastUpdated", Value: firestore.ServerTimestamp},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return errors.NotFound("Conversation", err)
		}
		return errors.Internal("Failed to append message", err)
	}
	return nil
}

func (r *firestoreConversationRepository) AppendMilestone(ctx context.Context, id string, milestone entity.Milestone) error {
	_, err := r.doc(id).Update(ctx, []firestore.Update{
		{Path: "milestones", Value: firestore.ArrayUnion(milestone)},
		{Path: "lastUpdated", Value: firestore.ServerTimestamp},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return errors.NotFound("Conversation", err)
		}
		return errors.Internal("Failed to append milestone", err)
	}
	return nil
}

// UpdateMilestones rewrites the milestones array from a fresh transactional
// read. Firestore retries the transaction on contention, so a toggle can
// never revert a concurrent peer's edit.
func (r *firestoreConversationRepository) UpdateMilestones(ctx context.Context, id string, fn func([]entity.Milestone) ([]entity.Milestone, error)) error {
	ref := r.doc(id)

	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		doc, err := tx.Get(ref)
		if err != nil {
			if status.Code(err) == codes.NotFound {
				return errors.NotFound("Conversation", err)
			}
			return err
		}

		var conv entity.Conversation
		if err := doc.DataTo(&conv); err != nil {
			return err
		}

		updated, err := fn(conv.Milestones)
		if err != nil {
			return err
		}

		return tx.Update(ref, []firestore.Update{
			{Path: "milestones", Value: updated},
			{Path: "lastUpdated", Value: firestore.ServerTimestamp},
		})
	})
	if err != nil {
		if errors.Is(err, "NOT_FOUND") || errors.Is(err, "BAD_REQUEST") {
			return err
		}
		return errors.Internal("Failed to update milestones", err)
	}
	return nil
}

// SetResearchComplete writes the two completion fields independently of the
// milestones array; they have never shared the array's write path.
func (r *firestoreConversationRepository) SetResearchComplete(ctx context.Context, id string, complete bool, completedAt *time.Time) error {
	var at interface{}
	if completedAt != nil {
		at = *completedAt
	}

	_, err := r.doc(id).Update(ctx, []firestore.Update{
		{Path: "researchComplete", Value: complete},
		{Path: "researchCompletedAt", Value: at},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return errors.NotFound("Conversation", err)
		}
		return errors.Internal("Failed to update research completion", err)
	}
	return nil
}

func (r *firestoreConversationRepository) AppendFunding(ctx context.Context, id string, record entity.FundingRecord) error {
	_, err := r.doc(id).Update(ctx, []firestore.Update{
		{Path: "funding", Value: firestore.ArrayUnion(record)},
		{Path: "lastUpdated", Value: firestore.ServerTimestamp},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return errors.NotFound("Conversation", err)
		}
		return errors.Internal("Failed to append funding record", err)
	}
	return nil
}

func (r *firestoreConversationRepository) AppendExpenditure(ctx context.Context, id string, record entity.ExpenditureRecord) error {
	_, err := r.doc(id).Update(ctx, []firestore.Update{
		{Path: "expenditures", Value: firestore.ArrayUnion(record)},
		{Path: "lastUpdated", Value: firestore.ServerTimestamp},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return errors.NotFound("Conversation", err)
		}
		return errors.Internal("Failed to append expenditure record", err)
	}
	return nil
}

func (r *firestoreConversationRepository) SetTotalNeeded(ctx context.Context, id string, amount float64) error {
	_, err := r.doc(id).Update(ctx, []firestore.Update{
		{Path: "totalNeeded", Value: amount},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return errors.NotFound("Conversation", err)
		}
		return errors.Internal("Failed to update total needed", err)
	}
	return nil
}

// Watch streams document snapshots to fn until cancel is called or ctx ends.
// Snapshots of a non-existent document are skipped without invoking fn.
func (r *firestoreConversationRepository) Watch(ctx context.Context, id string, fn func(*entity.Conversation)) (func(), error) {
	watchCtx, cancel := context.WithCancel(ctx)
	iter := r.doc(id).Snapshots(watchCtx)

	go func() {
		defer iter.Stop()
		for {
			snap, err := iter.Next()
			if err != nil {
				if status.Code(err) != codes.Canceled {
					logger.Error("Snapshot listener for conversation %s stopped: %v", id, err)
				}
				return
			}

			if !snap.Exists() {
				continue
			}

			var conv entity.Conversation
			if err := snap.DataTo(&conv); err != nil {
				logger.Error("Failed to parse conversation snapshot %s: %v", id, err)
				continue
			}
			conv.ID = snap.Ref.ID
			if conv.Participants == nil {
				conv.Participants = []string{}
			}
			fn(&conv)
		}
	}()

	return cancel, nil
}

package repository

import (
	"context"
	"time"

	"researchhub/internal/domain/entity"
)

// ConversationRepository owns the chats collection. Array fields are mutated
// through atomic appends (AppendMessage, AppendFunding, ...) or a store
// transaction (UpdateMilestones), so two concurrent writers can never clobber
// each other's records.
type ConversationRepository interface {
	// GetOrCreate returns the conversation, creating it with the given owner
	// as sole participant when absent. The bool reports whether a document
	// was created. Existing documents are never overwritten.
	GetOrCreate(ctx context.Context, id, ownerID string) (*entity.Conversation, bool, error)
	GetByID(ctx context.Context, id string) (*entity.Conversation, error)
	ListByParticipant(ctx context.Context, userID string, limit, offset int) ([]*entity.Conversation, int64, error)
	AddParticipant(ctx context.Context, id, userID string) error

	// AppendMessage appends one message and refreshes lastUpdated in a single
	// atomic write.
	AppendMessage(ctx context.Context, id string, message entity.Message) error

	AppendMilestone(ctx context.Context, id string, milestone entity.Milestone) error
	// UpdateMilestones runs fn against the live milestones array inside a
	// transaction and writes back the result.
	UpdateMilestones(ctx context.Context, id string, fn func([]entity.Milestone) ([]entity.Milestone, error)) error
	SetResearchComplete(ctx context.Context, id string, complete bool, completedAt *time.Time) error

	AppendFunding(ctx context.Context, id string, record entity.FundingRecord) error
	AppendExpenditure(ctx context.Context, id string, record entity.ExpenditureRecord) error
	SetTotalNeeded(ctx context.Context, id string, amount float64) error

	// Watch attaches a snapshot listener. fn is invoked with each state of the
	// document; it is never invoked while the document does not exist. The
	// returned cancel is idempotent and stops all further deliveries.
	Watch(ctx context.Context, id string, fn func(*entity.Conversation)) (cancel func(), err error)
}

package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"researchhub/internal/domain/entity"
	"researchhub/pkg/errors"
)

// fakeConvRepo is an in-memory ConversationRepository. Mutations run under
// one mutex, which gives the same "no lost updates" behavior as the real
// store's atomic appends and transactions.
type fakeConvRepo struct {
	mu       sync.Mutex
	convs    map[string]*entity.Conversation
	watchers map[string][]*fakeWatcher
	failGet  error
}

type fakeWatcher struct {
	fn        func(*entity.Conversation)
	cancelled bool
}

func newFakeConvRepo() *fakeConvRepo {
	return &fakeConvRepo{
		convs:    make(map[string]*entity.Conversation),
		watchers: make(map[string][]*fakeWatcher),
	}
}

func (r *fakeConvRepo) GetOrCreate(ctx context.Context, id, ownerID string) (*entity.Conversation, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if conv, ok := r.convs[id]; ok {
		return conv, false, nil
	}

	conv := &entity.Conversation{
		ID:           id,
		Name:         "New Chat",
		Participants: []string{ownerID},
		Messages:     []entity.Message{},
		Milestones:   []entity.Milestone{},
		Funding:      []entity.FundingRecord{},
		Expenditures: []entity.ExpenditureRecord{},
		CreatedAt:    time.Now(),
		LastUpdated:  time.Now(),
	}
	r.convs[id] = conv
	return conv, true, nil
}

func (r *fakeConvRepo) GetByID(ctx context.Context, id string) (*entity.Conversation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.failGet != nil {
		return nil, r.failGet
	}
	conv, ok := r.convs[id]
	if !ok {
		return nil, errors.NotFound("Conversation", nil)
	}
	return conv, nil
}

func (r *fakeConvRepo) ListByParticipant(ctx context.Context, userID string, limit, offset int) ([]*entity.Conversation, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []*entity.Conversation
	for _, conv := range r.convs {
		for _, p := range conv.Participants {
			if p == userID {
				out = append(out, conv)
				break
			}
		}
	}
	return out, int64(len(out)), nil
}

func (r *fakeConvRepo) AddParticipant(ctx context.Context, id, userID string) error {
	return r.mutate(id, func(conv *entity.Conversation) error {
		for _, p := range conv.Participants {
			if p == userID {
				return nil
			}
		}
		conv.Participants = append(conv.Participants, userID)
		return nil
	})
}

func (r *fakeConvRepo) AppendMessage(ctx context.Context, id string, message entity.Message) error {
	return r.mutate(id, func(conv *entity.Conversation) error {
		conv.Messages = append(conv.Messages, message)
		conv.LastUpdated = time.Now()
		return nil
	})
}

func (r *fakeConvRepo) AppendMilestone(ctx context.Context, id string, milestone entity.Milestone) error {
	return r.mutate(id, func(conv *entity.Conversation) error {
		conv.Milestones = append(conv.Milestones, milestone)
		conv.LastUpdated = time.Now()
		return nil
	})
}

func (r *fakeConvRepo) UpdateMilestones(ctx context.Context, id string, fn func([]entity.Milestone) ([]entity.Milestone, error)) error {
	return r.mutate(id, func(conv *entity.Conversation) error {
		updated, err := fn(conv.Milestones)
		if err != nil {
			return err
		}
		conv.Milestones = updated
		conv.LastUpdated = time.Now()
		return nil
	})
}

func (r *fakeConvRepo) SetResearchComplete(ctx context.Context, id string, complete bool, completedAt *time.Time) error {
	return r.mutate(id, func(conv *entity.Conversation) error {
		conv.ResearchComplete = complete
		conv.ResearchCompletedAt = completedAt
		return nil
	})
}

func (r *fakeConvRepo) AppendFunding(ctx context.Context, id string, record entity.FundingRecord) error {
	return r.mutate(id, func(conv *entity.Conversation) error {
		conv.Funding = append(conv.Funding, record)
		conv.LastUpdated = time.Now()
		return nil
	})
}

func (r *fakeConvRepo) AppendExpenditure(ctx context.Context, id string, record entity.ExpenditureRecord) error {
	return r.mutate(id, func(conv *entity.Conversation) error {
		conv.Expenditures = append(conv.Expenditures, record)
		conv.LastUpdated = time.Now()
		return nil
	})
}

func (r *fakeConvRepo) SetTotalNeeded(ctx context.Context, id string, amount float64) error {
	return r.mutate(id, func(conv *entity.Conversation) error {
		conv.TotalNeeded = amount
		return nil
	})
}

func (r *fakeConvRepo) Watch(ctx context.Context, id string, fn func(*entity.Conversation)) (func(), error) {
	r.mu.Lock()
	w := &fakeWatcher{fn: fn}
	r.watchers[id] = append(r.watchers[id], w)
	conv := r.convs[id]
	r.mu.Unlock()

	// Like the real listener, an existing document is delivered right away
	// and a missing one is silently skipped.
	if conv != nil {
		fn(conv)
	}

	return func() {
		r.mu.Lock()
		w.cancelled = true
		r.mu.Unlock()
	}, nil
}

func (r *fakeConvRepo) mutate(id string, fn func(*entity.Conversation) error) error {
	r.mu.Lock()
	conv, ok := r.convs[id]
	if !ok {
		r.mu.Unlock()
		return errors.NotFound("Conversation", nil)
	}
	if err := fn(conv); err != nil {
		r.mu.Unlock()
		return err
	}
	var fns []func(*entity.Conversation)
	for _, w := range r.watchers[id] {
		if !w.cancelled {
			fns = append(fns, w.fn)
		}
	}
	r.mu.Unlock()

	for _, fn := range fns {
		fn(conv)
	}
	return nil
}

type fakeUserRepo struct {
	mu         sync.Mutex
	users      map[string]*entity.User
	failGet    error
	failCreate error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*entity.User)}
}

func (r *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failCreate != nil {
		return r.failCreate
	}
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failGet != nil {
		return nil, r.failGet
	}
	user, ok := r.users[id]
	if !ok {
		return nil, errors.NotFound("User", nil)
	}
	return user, nil
}

func (r *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, user := range r.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, errors.NotFound("User", nil)
}

func (r *fakeUserRepo) Update(ctx context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[user.ID]; !ok {
		return errors.NotFound("User", nil)
	}
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.users, id)
	return nil
}

func (r *fakeUserRepo) List(ctx context.Context, limit, offset int) ([]*entity.User, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.User
	for _, user := range r.users {
		out = append(out, user)
	}
	return out, int64(len(out)), nil
}

func (r *fakeUserRepo) FindByField(ctx context.Context, field, value string, limit, offset int) ([]*entity.User, int64, error) {
	return nil, 0, nil
}

type fakeNotificationRepo struct {
	mu     sync.Mutex
	seq    int
	byUser map[string][]*entity.Notification
}

func newFakeNotificationRepo() *fakeNotificationRepo {
	return &fakeNotificationRepo{byUser: make(map[string][]*entity.Notification)}
}

func (r *fakeNotificationRepo) Create(ctx context.Context, userID string, notification *entity.Notification) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	notification.ID = fmt.Sprintf("n-%d", r.seq)
	notification.Timestamp = time.Now()
	r.byUser[userID] = append(r.byUser[userID], notification)
	return nil
}

func (r *fakeNotificationRepo) ListByUser(ctx context.Context, userID string, limit, offset int) ([]*entity.Notification, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	list := r.byUser[userID]
	return list, int64(len(list)), nil
}

func (r *fakeNotificationRepo) GetByID(ctx context.Context, userID, id string) (*entity.Notification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, n := range r.byUser[userID] {
		if n.ID == id {
			return n, nil
		}
	}
	return nil, errors.NotFound("Notification", nil)
}

func (r *fakeNotificationRepo) MarkRead(ctx context.Context, userID, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, n := range r.byUser[userID] {
		if n.ID == id {
			n.Read = true
			return nil
		}
	}
	return errors.NotFound("Notification", nil)
}

func (r *fakeNotificationRepo) CountUnread(ctx context.Context, userID string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var count int64
	for _, n := range r.byUser[userID] {
		if !n.Read {
			count++
		}
	}
	return count, nil
}

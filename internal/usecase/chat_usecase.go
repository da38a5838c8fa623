package usecase

import (
	"context"
	"io"
	"time"

	"github.com/google/uuid"

	"researchhub/internal/domain/entity"
	"researchhub/internal/domain/repository"
	"researchhub/internal/infrastructure/ratelimit"
	"researchhub/internal/infrastructure/storage"
	ws "researchhub/internal/infrastructure/websocket"
	"researchhub/pkg/errors"
	"researchhub/pkg/logger"
)

// UnknownUserName is returned whenever a display name cannot be resolved,
// whatever the reason. Callers render it as-is.
const UnknownUserName = "Unknown User"

type ChatUseCase struct {
	convRepo    repository.ConversationRepository
	userRepo    repository.UserRepository
	storage     *storage.CloudStorageClient
	wsManager   *ws.Manager
	rateLimiter *ratelimit.RateLimiter
}

func NewChatUseCase(
	convRepo repository.ConversationRepository,
	userRepo repository.UserRepository,
	storageClient *storage.CloudStorageClient,
	wsManager *ws.Manager,
) *ChatUseCase {
	rateLimiter := ratelimit.NewRateLimiter()
	rateLimiter.StartCleanupRoutine()

	return &ChatUseCase{
		convRepo:    convRepo,
		userRepo:    userRepo,
		storage:     storageClient,
		wsManager:   wsManager,
		rateLimiter: rateLimiter,
	}
}

type SendMessageInput struct {
	Text     string
	FileURL  string
	FileName string
	FileType string
	FileSize int64
}

// ChatSnapshot is what a live subscription delivers: the full message list
// and the participant set, participants defaulted to empty.
type ChatSnapshot struct {
	Messages     []entity.Message `json:"messages"`
	Participants []string         `json:"participants"`
}

// Initialize opens a conversation, creating it on first open with the caller
// as sole participant. Opening an existing conversation never resets it; a
// caller who is not a participant is rejected.
func (uc *ChatUseCase) Initialize(ctx context.Context, userID, chatID string) (*entity.Conversation, error) {
	if chatID == "" {
		return nil, errors.BadRequest("Conversation id is required", nil)
	}

	allowed, _ := uc.rateLimiter.Allow(userID, "open_conversation")
	if !allowed {
		return nil, errors.TooManyRequests("Too many conversations opened, slow down")
	}

	conv, created, err := uc.convRepo.GetOrCreate(ctx, chatID, userID)
	if err != nil {
		return nil, err
	}
	if created {
		logger.Info("Conversation %s created by %s", chatID, userID)
		return conv, nil
	}

	if !isParticipant(conv.Participants, userID) {
		return nil, errors.Forbidden("You are not a participant of this conversation", nil)
	}

	return conv, nil
}

func (uc *ChatUseCase) GetConversation(ctx context.Context, userID, chatID string) (*entity.Conversation, error) {
	conv, err := uc.convRepo.GetByID(ctx, chatID)
	if err != nil {
		return nil, err
	}
	if !isParticipant(conv.Participants, userID) {
		return nil, errors.Forbidden("You are not a participant of this conversation", nil)
	}
	return conv, nil
}

func (uc *ChatUseCase) ListConversations(ctx context.Context, userID string, limit, offset int) ([]*entity.Conversation, int64, error) {
	return uc.convRepo.ListByParticipant(ctx, userID, limit, offset)
}

// SendMessage appends one message atomically. The message and the
// conversation's lastUpdated stamp land in the same write.
func (uc *ChatUseCase) SendMessage(ctx context.Context, userID, chatID string, input SendMessageInput) (*entity.Message, error) {
	if input.Text == "" && input.FileURL == "" {
		return nil, errors.BadRequest("Message must have text or an attachment", nil)
	}

	allowed, _ := uc.rateLimiter.Allow(userID, "send_message")
	if !allowed {
		return nil, errors.TooManyRequests("Too many messages, slow down")
	}

	conv, err := uc.convRepo.GetByID(ctx, chatID)
	if err != nil {
		return nil, err
	}
	if !isParticipant(conv.Participants, userID) {
		return nil, errors.Forbidden("You are not a participant of this conversation", nil)
	}

	message := entity.Message{
		ID:        uuid.New().String(),
		Text:      input.Text,
		SenderID:  userID,
		Timestamp: time.Now(),
		FileURL:   input.FileURL,
		FileName:  input.FileName,
		FileType:  input.FileType,
		FileSize:  input.FileSize,
	}

	if err := uc.convRepo.AppendMessage(ctx, chatID, message); err != nil {
		return nil, err
	}

	// Best effort push to the peer if they hold a socket; the snapshot
	// listener is the source of truth either way.
	peer := entity.OtherParticipant(conv.Participants, userID)
	if peer != "" {
		uc.wsManager.SendToUser(peer, ws.Encode(ws.EventReceiveMessage, ws.ReceiveMessageData{
			SenderID:  userID,
			Text:      input.Text,
			Timestamp: message.Timestamp.UTC().Format(time.RFC3339),
		}))
	}

	return &message, nil
}

// DirectChatID derives a stable conversation id for a user pair so both
// sides land in the same document no matter who messages first.
func DirectChatID(a, b string) string {
	if b < a {
		a, b = b, a
	}
	return "direct_" + a + "_" + b
}

// SendDirectMessage backs the support chat widget. It creates the pair's
// conversation on first contact, makes sure both sides are participants,
// then appends the message the same way SendMessage does.
func (uc *ChatUseCase) SendDirectMessage(ctx context.Context, senderID, recipientID, text string) (string, *entity.Message, error) {
	if text == "" {
		return "", nil, errors.BadRequest("Message text is required", nil)
	}
	if recipientID == "" || recipientID == senderID {
		return "", nil, errors.BadRequest("A distinct recipient is required", nil)
	}

	allowed, _ := uc.rateLimiter.Allow(senderID, "send_message")
	if !allowed {
		return "", nil, errors.TooManyRequests("Too many messages, slow down")
	}

	chatID := DirectChatID(senderID, recipientID)
	if _, _, err := uc.convRepo.GetOrCreate(ctx, chatID, senderID); err != nil {
		return "", nil, err
	}
	for _, participant := range []string{senderID, recipientID} {
		if err := uc.convRepo.AddParticipant(ctx, chatID, participant); err != nil {
			return "", nil, err
		}
	}

	message := entity.Message{
		ID:        uuid.New().String(),
		Text:      text,
		SenderID:  senderID,
		Timestamp: time.Now(),
	}
	if err := uc.convRepo.AppendMessage(ctx, chatID, message); err != nil {
		return "", nil, err
	}

	return chatID, &message, nil
}

// UploadAttachment stores the file and returns its URL plus echoed metadata.
// The caller then sends a message carrying those fields.
func (uc *ChatUseCase) UploadAttachment(ctx context.Context, userID, chatID, filename, contentType string, file io.Reader) (*storage.UploadResult, error) {
	if filename == "" {
		return nil, errors.BadRequest("Filename is required", nil)
	}

	allowed, _ := uc.rateLimiter.Allow(userID, "upload_attachment")
	if !allowed {
		return nil, errors.TooManyRequests("Too many uploads, slow down")
	}

	conv, err := uc.convRepo.GetByID(ctx, chatID)
	if err != nil {
		return nil, err
	}
	if !isParticipant(conv.Participants, userID) {
		return nil, errors.Forbidden("You are not a participant of this conversation", nil)
	}

	result, err := uc.storage.UploadAttachment(ctx, chatID, filename, contentType, file)
	if err != nil {
		return nil, errors.Internal("Failed to upload attachment", err)
	}

	return result, nil
}

// ResolveDisplayName swallows every failure and falls back to "Unknown User":
// an empty id, a missing user document and a store error are all
// indistinguishable to the caller. This is the deliberate exception to the
// error contract; chat rendering must never fail on a name lookup.
func (uc *ChatUseCase) ResolveDisplayName(ctx context.Context, userID string) string {
	if userID == "" {
		return UnknownUserName
	}

	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		logger.Warn("Display name lookup failed for %s: %v", userID, err)
		return UnknownUserName
	}
	if user.Name == "" {
		return UnknownUserName
	}

	return user.Name
}

// Watch attaches a live subscription. fn receives every state of the
// conversation the caller participates in; snapshots of a non-existent
// document never invoke fn. Zero message timestamps are defaulted to now.
// The returned cancel is idempotent; after it runs, fn is never invoked
// again.
func (uc *ChatUseCase) Watch(ctx context.Context, userID, chatID string, fn func(ChatSnapshot)) (func(), error) {
	return uc.convRepo.Watch(ctx, chatID, func(conv *entity.Conversation) {
		if !isParticipant(conv.Participants, userID) {
			return
		}

		messages := make([]entity.Message, len(conv.Messages))
		copy(messages, conv.Messages)
		for i := range messages {
			if messages[i].Timestamp.IsZero() {
				messages[i].Timestamp = time.Now()
			}
		}

		participants := conv.Participants
		if participants == nil {
			participants = []string{}
		}

		fn(ChatSnapshot{
			Messages:     messages,
			Participants: participants,
		})
	})
}

func isParticipant(participants []string, userID string) bool {
	for _, p := range participants {
		if p == userID {
			return true
		}
	}
	return false
}

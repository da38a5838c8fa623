package entity

import "time"

const (
	RequestStatusPending  = "pending"
	RequestStatusAccepted = "accepted"
	RequestStatusRejected = "rejected"
)

type CollaborationRequest struct {
	ID          string    `json:"id" firestore:"id"`
	ListingID   string    `json:"listing_id" firestore:"listingId"`
	RequesterID string    `json:"requester_id" firestore:"requesterId"`
	OwnerID     string    `json:"owner_id" firestore:"ownerId"`
	Message     string    `json:"message,omitempty" firestore:"message,omitempty"`
	Status      string    `json:"status" firestore:"status"`
	CreatedAt   time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt   time.Time `json:"updated_at" firestore:"updatedAt"`
}

// Collaboration is created when a request is accepted. ConversationID points
// at the chat document shared by the two researchers.
type Collaboration struct {
	ID             string    `json:"id" firestore:"id"`
	ListingID      string    `json:"listing_id" firestore:"listingId"`
	Participants   []string  `json:"participants" firestore:"participants"`
	ConversationID string    `json:"conversation_id" firestore:"conversationId"`
	CreatedAt      time.Time `json:"created_at" firestore:"createdAt"`
}

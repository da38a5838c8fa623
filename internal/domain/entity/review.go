package entity

import "time"

const (
	ReviewStatusPending   = "pending"
	ReviewStatusAccepted  = "accepted"
	ReviewStatusDeclined  = "declined"
	ReviewStatusCompleted = "completed"
)

type ReviewRequest struct {
	ID           string    `json:"id" firestore:"id"`
	ListingID    string    `json:"listing_id" firestore:"listingId"`
	ResearcherID string    `json:"researcher_id" firestore:"researcherId"`
	ReviewerID   string    `json:"reviewer_id" firestore:"reviewerId"`
	Status       string    `json:"status" firestore:"status"`
	Feedback     string    `json:"feedback,omitempty" firestore:"feedback,omitempty"`
	CreatedAt    time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt    time.Time `json:"updated_at" firestore:"updatedAt"`
}

// Reviewer is an admin-managed registry entry in the reviewers collection.
type Reviewer struct {
	ID        string    `json:"id" firestore:"id"`
	UserID    string    `json:"user_id" firestore:"userId"`
	Expertise []string  `json:"expertise,omitempty" firestore:"expertise,omitempty"`
	Active    bool      `json:"active" firestore:"active"`
	AddedBy   string    `json:"added_by" firestore:"addedBy"`
	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
}

package entity

import "time"

const (
	ListingStatusPublic = "public"
	ListingStatusDraft  = "draft"
	ListingStatusClosed = "closed"
)

type ResearchListing struct {
	ID             string    `json:"id" firestore:"id"`
	ResearcherID   string    `json:"researcher_id" firestore:"researcherId"`
	ResearcherName string    `json:"researcher_name" firestore:"researcherName"`
	Title          string    `json:"title" firestore:"title"`
	Summary        string    `json:"summary,omitempty" firestore:"summary,omitempty"`
	Field          string    `json:"field,omitempty" firestore:"field,omitempty"`
	Keywords       []string  `json:"keywords,omitempty" firestore:"keywords,omitempty"`
	Status         string    `json:"status" firestore:"status"`
	Collaborators  []string  `json:"collaborators,omitempty" firestore:"collaborators,omitempty"`
	CreatedAt      time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt      time.Time `json:"updated_at" firestore:"updatedAt"`
}

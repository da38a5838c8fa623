package entity

import "time"

const (
	RoleResearcher = "researcher"
	RoleReviewer   = "reviewer"
	RoleAdmin      = "admin"
)

type User struct {
	ID          string `json:"id" firestore:"id"`
	Email       string `json:"email" firestore:"email"`
	Name        string `json:"name" firestore:"name"`
	Institution string `json:"institution,omitempty" firestore:"institution,omitempty"`
	Field       string `json:"field,omitempty" firestore:"field,omitempty"`
	Bio         string `json:"bio,omitempty" firestore:"bio,omitempty"`
	Role        string `json:"role" firestore:"role"`
	Status      string `json:"status" firestore:"status"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}

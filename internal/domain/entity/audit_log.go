package entity

import "time"

// AuditLog records admin mutations in the logs collection.
type AuditLog struct {
	ID        string    `json:"id" firestore:"id"`
	ActorID   string    `json:"actor_id" firestore:"actorId"`
	Action    string    `json:"action" firestore:"action"`
	Target    string    `json:"target,omitempty" firestore:"target,omitempty"`
	Detail    string    `json:"detail,omitempty" firestore:"detail,omitempty"`
	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
}

package entity

import "time"

// Notification types dispatched by the dashboard. Closed set; Send rejects
// anything else.
const (
	NotificationCollaborationRequest = "COLLABORATION_REQUEST"
	NotificationReviewRequest        = "REVIEW_REQUEST"
	NotificationUploadConfirmation   = "UPLOAD_CONFIRMATION"
	NotificationSystem               = "SYSTEM_NOTIFICATION"
)

func ValidNotificationType(t string) bool {
	switch t {
	case NotificationCollaborationRequest,
		NotificationReviewRequest,
		NotificationUploadConfirmation,
		NotificationSystem:
		return true
	}
	return false
}

// Notification lives in the recipient's users/{uid}/messages subcollection.
// Read is always false at creation time, whatever the sender passed.
type Notification struct {
	ID        string                 `json:"id" firestore:"id"`
	Type      string                 `json:"type" firestore:"type"`
	Title     string                 `json:"title" firestore:"title"`
	Body      string                 `json:"body,omitempty" firestore:"body,omitempty"`
	Data      map[string]interface{} `json:"data,omitempty" firestore:"data,omitempty"`
	Read      bool                   `json:"read" firestore:"read"`
	Timestamp time.Time              `json:"timestamp" firestore:"timestamp,serverTimestamp"`
}

package entity

import "time"

// Conversation is the single per-chat document holding the message list and
// the milestone/funding ledgers for a collaboration. The embedded arrays are
// only ever mutated through atomic appends or transactions, never through a
// blind read-then-replace.
type Conversation struct {
	ID                  string              `json:"id" firestore:"id"`
	Name                string              `json:"name" firestore:"name"`
	Participants        []string            `json:"participants" firestore:"participants"`
	Messages            []Message           `json:"messages" firestore:"messages"`
	Milestones          []Milestone         `json:"milestones" firestore:"milestones"`
	Funding             []FundingRecord     `json:"funding" firestore:"funding"`
	Expenditures        []ExpenditureRecord `json:"expenditures" firestore:"expenditures"`
	TotalNeeded         float64             `json:"total_needed" firestore:"totalNeeded"`
	ResearchComplete    bool                `json:"research_complete" firestore:"researchComplete"`
	ResearchCompletedAt *time.Time          `json:"research_completed_at,omitempty" firestore:"researchCompletedAt"`
	CreatedAt           time.Time           `json:"created_at" firestore:"createdAt,serverTimestamp"`
	LastUpdated         time.Time           `json:"last_updated" firestore:"lastUpdated,serverTimestamp"`
}

type Message struct {
	ID        string    `json:"id" firestore:"id"`
	Text      string    `json:"text" firestore:"text"`
	SenderID  string    `json:"sender_id" firestore:"senderId"`
	Timestamp time.Time `json:"timestamp" firestore:"timestamp"`
	FileURL   string    `json:"file_url,omitempty" firestore:"fileUrl,omitempty"`
	FileName  string    `json:"file_name,omitempty" firestore:"fileName,omitempty"`
	FileType  string    `json:"file_type,omitempty" firestore:"fileType,omitempty"`
	FileSize  int64     `json:"file_size,omitempty" firestore:"fileSize,omitempty"`
}

type Milestone struct {
	ID          string     `json:"id" firestore:"id"`
	Title       string     `json:"title" firestore:"title"`
	Description string     `json:"description,omitempty" firestore:"description,omitempty"`
	Done        bool       `json:"done" firestore:"done"`
	CreatedAt   time.Time  `json:"created_at" firestore:"createdAt"`
	DoneAt      *time.Time `json:"done_at" firestore:"doneAt"`
}

type FundingRecord struct {
	ID      string    `json:"id" firestore:"id"`
	Amount  float64   `json:"amount" firestore:"amount"`
	Source  string    `json:"source" firestore:"source"`
	Date    time.Time `json:"date" firestore:"date"`
	AddedBy string    `json:"added_by" firestore:"addedBy"`
}

type ExpenditureRecord struct {
	ID          string    `json:"id" firestore:"id"`
	Amount      float64   `json:"amount" firestore:"amount"`
	Description string    `json:"description" firestore:"description"`
	Date        time.Time `json:"date" firestore:"date"`
	AddedBy     string    `json:"added_by" firestore:"addedBy"`
}

// OtherParticipant returns the first participant that is not the current
// user. Conversations are 1:1, so with exactly two participants this is the
// peer; anything else falls back to the first non-matching id.
func OtherParticipant(participants []string, currentUserID string) string {
	for _, p := range participants {
		if p != currentUserID {
			return p
		}
	}
	return ""
}

package models

import "time"

// Turn roles.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ConversationTurn is one entry in a session's append-only transcript.
// PackageID is set only on assistant turns that carry a recommendation.
type ConversationTurn struct {
	Role      string    `json:"role"`
	Text      string    `json:"text"`
	PackageID string    `json:"packageId,omitempty"`
	SentAt    time.Time `json:"sentAt"`
}

// PlannerSession holds everything the planner knows about one conversation.
// A session is owned by exactly one caller; nothing else mutates it.
type PlannerSession struct {
	SessionID string             `json:"sessionId"`
	Profile   TripProfile        `json:"profile"`
	Turns     []ConversationTurn `json:"turns"`
	CreatedAt time.Time          `json:"createdAt"`
}

// RecentTurns returns up to n of the newest turns, oldest first. Used as
// bounded context for the phrasing gateway.
func (s *PlannerSession) RecentTurns(n int) []ConversationTurn {
	if len(s.Turns) <= n {
		return s.Turns
	}
	return s.Turns[len(s.Turns)-n:]
}

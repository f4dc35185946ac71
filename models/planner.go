package models

// TurnRequest is the payload for submitting one user turn to a session.
type TurnRequest struct {
	Text string `json:"text" binding:"required"`
}

// ScoredPackage pairs a catalog entry with its ranking score.
type ScoredPackage struct {
	Package TravelPackage `json:"package"`
	Score   int           `json:"score"`
}

// Recommendation is emitted once the profile is complete and a package won
// the ranking. Alternatives hold up to two runner-up candidates; the caller
// decides whether to render them.
type Recommendation struct {
	PackageID    string          `json:"packageId"`
	Score        int             `json:"score"`
	Package      TravelPackage   `json:"package"`
	Alternatives []ScoredPackage `json:"alternatives,omitempty"`
}

// TurnResponse is what the planner returns for one processed user turn.
type TurnResponse struct {
	SessionID      string             `json:"sessionId"`
	State          string             `json:"state"`
	Profile        TripProfile        `json:"profile"`
	AssistantTurns []ConversationTurn `json:"assistantTurns"`
	Recommendation *Recommendation    `json:"recommendation,omitempty"`
	NoMatch        bool               `json:"noMatch,omitempty"`
}

// MatchRequest ranks the catalog against a caller-supplied profile without a
// conversation. Used by the standalone match endpoint.
type MatchRequest struct {
	Profile TripProfile `json:"profile" binding:"required"`
	Limit   int         `json:"limit,omitempty"`
}

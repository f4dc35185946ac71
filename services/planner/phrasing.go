package planner

import (
	"context"
	"time"

	"tripwise/models"
	"tripwise/utils"

	"go.uber.org/zap"
)

// Phrasing intents. The controller never depends on the gateway's wording,
// only on getting some string back for an intent.
const (
	IntentGreeting  = "greeting"
	IntentAskSlot   = "ask_slot"     // facts: slot
	IntentConfirm   = "confirm_slot" // facts: slot, value
	IntentClarify   = "clarify_slot" // facts: slot
	IntentRecommend = "recommend"    // facts: package name, destination, score
	IntentNoMatch   = "no_match"
)

// recentTurnWindow bounds the transcript context handed to the gateway.
const recentTurnWindow = 6

// PhraseRequest asks the gateway to phrase one assistant message.
type PhraseRequest struct {
	Intent      string                    `json:"intent"`
	Facts       map[string]string         `json:"facts,omitempty"`
	RecentTurns []models.ConversationTurn `json:"recentTurns,omitempty"`
}

// PhrasingGateway turns an intent plus supporting facts into user-facing
// prose. Implementations live outside the planner core.
type PhrasingGateway interface {
	Phrase(ctx context.Context, req PhraseRequest) (string, error)
}

// Canned fallback phrases, used whenever the gateway fails, times out, or
// returns an empty string. Gateway trouble must never block slot filling.
var fallbackPhrases = map[string]string{
	IntentGreeting:  "Hi! I can help you plan your next trip. Where would you like to go?",
	IntentRecommend: "Based on what you told me, I found a package that fits your trip really well.",
	IntentNoMatch:   "I couldn't find an exact match for your trip. Our travel team will follow up with a tailored plan.",
}

var askFallbacks = map[models.Slot]string{
	models.SlotDestination: "Where would you like to travel?",
	models.SlotTravelDate:  "When are you planning to travel?",
	models.SlotTripLength:  "How many days are you planning for?",
	models.SlotBudget:      "What budget do you have in mind for the trip?",
	models.SlotLodging:     "What kind of stay do you prefer - budget, mid-range, luxury or boutique?",
	models.SlotParty:       "Who is travelling - solo, family, couple or friends?",
}

var confirmFallbacks = map[models.Slot]string{
	models.SlotDestination: "Great choice! I've noted your destination.",
	models.SlotTravelDate:  "Noted, I've saved your travel date.",
	models.SlotTripLength:  "Got it, trip length saved.",
	models.SlotBudget:      "Thanks, budget noted.",
	models.SlotLodging:     "Perfect, I've noted your stay preference.",
	models.SlotParty:       "Lovely, noted who's travelling.",
}

var clarifyFallbacks = map[models.Slot]string{
	models.SlotDestination: "I didn't catch a destination I know. Could you name the place you'd like to visit?",
	models.SlotTravelDate:  "I couldn't work out the date. Could you share it like 2026-10-15, or just name a month?",
	models.SlotTripLength:  "How many days should I plan for? A number works best.",
	models.SlotBudget:      "Could you share a rough budget amount, or say budget, mid-range or luxury?",
	models.SlotLodging:     "Should I look at budget, mid-range, luxury or boutique stays?",
	models.SlotParty:       "Is this a solo trip, a family holiday, a couple's getaway or a trip with friends?",
}

// fallbackFor returns the canned phrase for an intent/slot pair.
func fallbackFor(intent string, slot models.Slot) string {
	switch intent {
	case IntentAskSlot:
		return askFallbacks[slot]
	case IntentConfirm:
		return confirmFallbacks[slot]
	case IntentClarify:
		return clarifyFallbacks[slot]
	}
	if s, ok := fallbackPhrases[intent]; ok {
		return s
	}
	return "Let's keep planning your trip."
}

// phrase calls the gateway with a short timeout and a single retry; any
// failure falls back to the canned phrase. This is the only retry point in
// the planner.
func (s *DefaultPlannerService) phrase(ctx context.Context, intent string, slot models.Slot, facts map[string]string, turns []models.ConversationTurn) string {
	if s.Gateway == nil {
		return fallbackFor(intent, slot)
	}
	req := PhraseRequest{Intent: intent, Facts: facts, RecentTurns: turns}
	if slot != models.SlotNone {
		if req.Facts == nil {
			req.Facts = map[string]string{}
		}
		req.Facts["slot"] = slot.String()
	}

	logger := utils.GetLogger()
	for attempt := 0; attempt < 2; attempt++ {
		callCtx, cancel := context.WithTimeout(ctx, s.PhrasingTimeout)
		text, err := s.Gateway.Phrase(callCtx, req)
		cancel()
		if err == nil && text != "" {
			return text
		}
		logger.Warn("phrasing gateway call failed, will fall back",
			zap.String("intent", intent),
			zap.Int("attempt", attempt+1),
			zap.Error(err))
	}
	return fallbackFor(intent, slot)
}

// DefaultPhrasingTimeout is used when config leaves the timeout unset.
const DefaultPhrasingTimeout = 2500 * time.Millisecond

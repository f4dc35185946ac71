package planner

import (
	"context"
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"tripwise/models"
	"tripwise/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// StartSession creates a new session and opens the conversation.
func (s *DefaultPlannerService) StartSession(ctx context.Context) (*models.TurnResponse, error) {
	session := &models.PlannerSession{
		SessionID: uuid.New().String(),
		CreatedAt: time.Now(),
	}

	greeting := s.phrase(ctx, IntentGreeting, models.SlotNone, nil, nil)
	s.appendAssistant(session, greeting, "")
	question := s.phrase(ctx, IntentAskSlot, models.SlotDestination, nil, session.RecentTurns(recentTurnWindow))
	s.appendAssistant(session, question, "")

	if err := s.Store.Set(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to persist new session: %w", err)
	}
	return s.buildResponse(session, session.Turns, nil, false), nil
}

// SubmitTurn runs one full dialogue step for a session.
func (s *DefaultPlannerService) SubmitTurn(ctx context.Context, sessionID, text string) (*models.TurnResponse, error) {
	lock := s.sessionLock(sessionID)
	lock.Lock()
	defer lock.Unlock()

	session, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	session.Turns = append(session.Turns, models.ConversationTurn{
		Role:   models.RoleUser,
		Text:   text,
		SentAt: time.Now(),
	})
	turnStart := len(session.Turns)

	var rec *models.Recommendation
	noMatch := false

	// Side-channel check: a destination can be volunteered at any point, so
	// it is tried before the pending slot whenever it is still open. All
	// other slots are strictly sequential.
	matchedSlot := models.SlotNone
	var matchedValue string
	if !session.Profile.Filled(models.SlotDestination) {
		if dest, ok := ExtractDestination(text, s.Catalog.Destinations()); ok {
			matchedSlot, matchedValue = models.SlotDestination, dest
		}
	}

	pending := session.Profile.PendingSlot()
	if matchedSlot == models.SlotNone {
		if pending == models.SlotNone {
			// Already ready: re-surface the recommendation instead of asking
			// anything further.
			rec, noMatch = s.recommend(ctx, session)
			return s.finishTurn(ctx, session, turnStart, rec, noMatch)
		}
		if value, ok := s.runExtractor(pending, text); ok {
			matchedSlot, matchedValue = pending, value
		}
	}

	if matchedSlot == models.SlotNone {
		// Extraction miss: re-ask the same slot, profile untouched.
		clarify := s.phrase(ctx, IntentClarify, pending, nil, session.RecentTurns(recentTurnWindow))
		s.appendAssistant(session, clarify, "")
		return s.finishTurn(ctx, session, turnStart, nil, false)
	}

	if err := s.applySlot(&session.Profile, matchedSlot, matchedValue); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSessionCorrupt, err)
	}

	confirm := s.phrase(ctx, IntentConfirm, matchedSlot,
		map[string]string{"value": matchedValue}, session.RecentTurns(recentTurnWindow))
	s.appendAssistant(session, confirm, "")

	if next := session.Profile.PendingSlot(); next != models.SlotNone {
		question := s.phrase(ctx, IntentAskSlot, next, nil, session.RecentTurns(recentTurnWindow))
		s.appendAssistant(session, question, "")
	} else {
		rec, noMatch = s.recommend(ctx, session)
	}

	return s.finishTurn(ctx, session, turnStart, rec, noMatch)
}

// EndSession discards session state entirely.
func (s *DefaultPlannerService) EndSession(ctx context.Context, sessionID string) error {
	s.dropSessionLock(sessionID)
	return s.Store.Clear(ctx, sessionID)
}

// runExtractor dispatches the slot's extractor against the turn text and
// returns the extracted value in its string form.
func (s *DefaultPlannerService) runExtractor(slot models.Slot, text string) (string, bool) {
	switch slot {
	case models.SlotDestination:
		return ExtractDestination(text, s.Catalog.Destinations())
	case models.SlotTravelDate:
		return ExtractDate(text, s.now())
	case models.SlotTripLength:
		if n, ok := ExtractDayCount(text); ok {
			return strconv.Itoa(n), true
		}
	case models.SlotBudget:
		if n, ok := ExtractBudget(text); ok {
			return strconv.Itoa(n), true
		}
	case models.SlotLodging:
		if tier, ok := ExtractLodgingTier(text); ok {
			return string(tier), true
		}
	case models.SlotParty:
		if party, ok := ExtractPartyType(text); ok {
			return string(party), true
		}
	}
	return "", false
}

// applySlot writes an extracted value into the profile, enforcing the
// set-once invariant.
func (s *DefaultPlannerService) applySlot(p *models.TripProfile, slot models.Slot, value string) error {
	if p.Filled(slot) {
		return &models.ErrSlotAlreadySet{Slot: slot}
	}
	switch slot {
	case models.SlotDestination:
		p.Destination = value
	case models.SlotTravelDate:
		p.TravelDate = value
	case models.SlotTripLength:
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("bad trip length %q: %w", value, err)
		}
		p.TripLengthDays = n
	case models.SlotBudget:
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("bad budget %q: %w", value, err)
		}
		p.BudgetAmount = n
	case models.SlotLodging:
		p.LodgingTier = models.LodgingTier(value)
	case models.SlotParty:
		p.PartyType = models.PartyType(value)
	default:
		return fmt.Errorf("cannot apply value to slot %q", slot)
	}
	return nil
}

// recommend runs the ranking engine over the completed profile and appends
// the recommendation (or the no-match follow-up) to the transcript.
func (s *DefaultPlannerService) recommend(ctx context.Context, session *models.PlannerSession) (*models.Recommendation, bool) {
	rec, ok := BestMatch(&session.Profile, s.Catalog)
	if !ok {
		utils.GetLogger().Info("no package matched profile",
			zap.String("sessionId", session.SessionID),
			zap.String("destination", session.Profile.Destination))
		text := s.phrase(ctx, IntentNoMatch, models.SlotNone,
			map[string]string{"destination": session.Profile.Destination},
			session.RecentTurns(recentTurnWindow))
		s.appendAssistant(session, text, "")
		return nil, true
	}

	facts := map[string]string{
		"package":     rec.Package.Name,
		"destination": rec.Package.DestinationName,
		"duration":    rec.Package.Duration,
		"score":       strconv.Itoa(rec.Score),
	}
	text := s.phrase(ctx, IntentRecommend, models.SlotNone, facts, session.RecentTurns(recentTurnWindow))
	s.appendAssistant(session, text, rec.PackageID)
	return rec, false
}

// finishTurn persists the session and assembles the response with the
// assistant turns appended during this call.
func (s *DefaultPlannerService) finishTurn(ctx context.Context, session *models.PlannerSession, turnStart int, rec *models.Recommendation, noMatch bool) (*models.TurnResponse, error) {
	if err := s.Store.Set(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to persist session %s: %w", session.SessionID, err)
	}
	return s.buildResponse(session, session.Turns[turnStart:], rec, noMatch), nil
}

func (s *DefaultPlannerService) buildResponse(session *models.PlannerSession, newTurns []models.ConversationTurn, rec *models.Recommendation, noMatch bool) *models.TurnResponse {
	state := "ready"
	if pending := session.Profile.PendingSlot(); pending != models.SlotNone {
		state = "awaiting_" + pending.String()
	}
	return &models.TurnResponse{
		SessionID:      session.SessionID,
		State:          state,
		Profile:        session.Profile,
		AssistantTurns: newTurns,
		Recommendation: rec,
		NoMatch:        noMatch,
	}
}

func (s *DefaultPlannerService) appendAssistant(session *models.PlannerSession, text, packageID string) {
	session.Turns = append(session.Turns, models.ConversationTurn{
		Role:      models.RoleAssistant,
		Text:      text,
		PackageID: packageID,
		SentAt:    time.Now(),
	})
}

func (s *DefaultPlannerService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// MatchPackages ranks the catalog for a caller-supplied profile. Results are
// cached for a few minutes keyed by the profile's JSON digest.
func (s *DefaultPlannerService) MatchPackages(ctx context.Context, profile models.TripProfile, limit int) ([]models.ScoredPackage, error) {
	profileBytes, err := json.Marshal(profile)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal profile: %w", err)
	}
	cacheKey := fmt.Sprintf("match:%x", sha256.Sum256(profileBytes))

	if s.CacheClient != nil {
		if cached, err := s.CacheClient.Get(ctx, cacheKey).Result(); err == nil && cached != "" {
			var ranked []models.ScoredPackage
			if err := json.Unmarshal([]byte(cached), &ranked); err == nil {
				return clipRanked(ranked, limit), nil
			}
			// Undecodable cache entries fall through to re-computation.
		}
	}

	ranked := RankPackages(&profile, s.Catalog)

	if s.CacheClient != nil {
		if b, err := json.Marshal(ranked); err == nil {
			s.CacheClient.Set(ctx, cacheKey, b, 5*time.Minute)
		}
	}
	return clipRanked(ranked, limit), nil
}

func clipRanked(ranked []models.ScoredPackage, limit int) []models.ScoredPackage {
	if limit > 0 && len(ranked) > limit {
		return ranked[:limit]
	}
	return ranked
}

package planner

import (
	"context"
	"sync"
	"time"

	"tripwise/models"

	"github.com/go-redis/redis/v8"
)

// PlannerService is the conversational trip-planning engine. One session is
// one independent conversation; the caller owns rendering and routing.
type PlannerService interface {
	// StartSession creates a fresh session and returns the opening
	// assistant turns (greeting plus the first question).
	StartSession(ctx context.Context) (*models.TurnResponse, error)
	// SubmitTurn processes one user turn end to end: extraction, profile
	// mutation, phrasing, and - once the profile completes - a
	// recommendation. Turns for one session are processed sequentially.
	SubmitTurn(ctx context.Context, sessionID, text string) (*models.TurnResponse, error)
	// EndSession discards a session. No state survives.
	EndSession(ctx context.Context, sessionID string) error
	// MatchPackages ranks the catalog against a caller-supplied profile,
	// bypassing the conversation. Results are cached briefly.
	MatchPackages(ctx context.Context, profile models.TripProfile, limit int) ([]models.ScoredPackage, error)
}

// DefaultPlannerService is the production implementation.
type DefaultPlannerService struct {
	Store           SessionStore
	Gateway         PhrasingGateway
	Catalog         *models.Catalog
	CacheClient     *redis.Client // optional; nil disables match caching
	PhrasingTimeout time.Duration

	// Now is the clock used for month-name date resolution. Tests pin it.
	Now func() time.Time

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewDefaultPlannerService wires the planner with its collaborators.
func NewDefaultPlannerService(store SessionStore, gateway PhrasingGateway, catalog *models.Catalog, cache *redis.Client) *DefaultPlannerService {
	return &DefaultPlannerService{
		Store:           store,
		Gateway:         gateway,
		Catalog:         catalog,
		CacheClient:     cache,
		PhrasingTimeout: DefaultPhrasingTimeout,
		Now:             time.Now,
		locks:           make(map[string]*sync.Mutex),
	}
}

// sessionLock returns the mutex serializing turns for one session. A second
// turn for the same session waits until the first is fully processed.
func (s *DefaultPlannerService) sessionLock(sessionID string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.locks == nil {
		s.locks = make(map[string]*sync.Mutex)
	}
	l, ok := s.locks[sessionID]
	if !ok {
		l = &sync.Mutex{}
		s.locks[sessionID] = l
	}
	return l
}

func (s *DefaultPlannerService) dropSessionLock(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.locks, sessionID)
}

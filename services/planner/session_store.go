package planner

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"tripwise/models"

	"github.com/go-redis/redis/v8"
)

const sessionKeyPrefix = "planner:session:"

// ErrSessionNotFound is returned when a session ID is unknown or expired.
var ErrSessionNotFound = errors.New("planner session not found")

// ErrSessionCorrupt marks session state that no longer decodes or violates a
// profile invariant. The session cannot be repaired; it must be discarded.
var ErrSessionCorrupt = errors.New("planner session state is corrupt")

// SessionStore persists planner sessions between turns.
type SessionStore interface {
	Get(ctx context.Context, sessionID string) (*models.PlannerSession, error)
	Set(ctx context.Context, session *models.PlannerSession) error
	Clear(ctx context.Context, sessionID string) error
}

// RedisSessionStore keeps sessions as JSON blobs with a TTL. Abandoned
// sessions simply expire; nothing else persists them.
type RedisSessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisSessionStore(client *redis.Client, ttl time.Duration) *RedisSessionStore {
	return &RedisSessionStore{client: client, ttl: ttl}
}

func (s *RedisSessionStore) Get(ctx context.Context, sessionID string) (*models.PlannerSession, error) {
	data, err := s.client.Get(ctx, sessionKeyPrefix+sessionID).Result()
	if err == redis.Nil {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load session %s: %w", sessionID, err)
	}
	var session models.PlannerSession
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSessionCorrupt, err)
	}
	return &session, nil
}

func (s *RedisSessionStore) Set(ctx context.Context, session *models.PlannerSession) error {
	b, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("encode session %s: %w", session.SessionID, err)
	}
	return s.client.Set(ctx, sessionKeyPrefix+session.SessionID, b, s.ttl).Err()
}

func (s *RedisSessionStore) Clear(ctx context.Context, sessionID string) error {
	return s.client.Del(ctx, sessionKeyPrefix+sessionID).Err()
}

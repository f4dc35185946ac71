package utils

import (
	"context"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/mongo"
)

// HealthStatus is the latest snapshot of the planner's backing services.
type HealthStatus struct {
	CatalogDB    bool      `json:"catalogDb"`
	MatchCache   bool      `json:"matchCache"`
	SessionStore bool      `json:"sessionStore"`
	CheckedAt    time.Time `json:"checkedAt"`
}

var (
	currentHealth   HealthStatus
	healthMu        sync.RWMutex
	healthCheckTick = 60 * time.Second
)

// GetHealthStatus returns the most recent health snapshot.
func GetHealthStatus() HealthStatus {
	healthMu.RLock()
	defer healthMu.RUnlock()
	return currentHealth
}

// StartHealthMonitor pings the catalog database and both Redis clients on a
// fixed interval and keeps the snapshot in memory for the health endpoint.
func StartHealthMonitor(cache, sessions *redis.Client, mongoClient *mongo.Client) {
	go func() {
		ticker := time.NewTicker(healthCheckTick)
		defer ticker.Stop()

		ctx := context.Background()
		for range ticker.C {
			snapshot := HealthStatus{
				CatalogDB:    mongoClient.Ping(ctx, nil) == nil,
				MatchCache:   cache.Ping(ctx).Err() == nil,
				SessionStore: sessions.Ping(ctx).Err() == nil,
				CheckedAt:    time.Now(),
			}

			healthMu.Lock()
			currentHealth = snapshot
			healthMu.Unlock()
		}
	}()
}

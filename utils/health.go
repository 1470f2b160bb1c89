package utils

import (
	"context"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/mongo"
)

// HealthStatus is a snapshot of the backing stores: the Redis session store
// and the Mongo lead archive.
type HealthStatus struct {
	SessionStore bool      `json:"sessionStore"`
	LeadArchive  bool      `json:"leadArchive"`
	CheckedAt    time.Time `json:"checkedAt"`
}

var (
	currentHealth HealthStatus
	healthMu      sync.RWMutex
)

// GetHealthStatus returns the latest stored health snapshot.
func GetHealthStatus() HealthStatus {
	healthMu.RLock()
	defer healthMu.RUnlock()
	return currentHealth
}

// StartHealthMonitor pings the session store and the lead archive once a
// minute and keeps the latest snapshot in memory.
func StartHealthMonitor(sessionStore *redis.Client, leadArchive *mongo.Client) {
	check := func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		snapshot := HealthStatus{
			SessionStore: sessionStore.Ping(ctx).Err() == nil,
			LeadArchive:  leadArchive.Ping(ctx, nil) == nil,
			CheckedAt:    time.Now(),
		}

		healthMu.Lock()
		currentHealth = snapshot
		healthMu.Unlock()
	}

	go func() {
		check()
		ticker := time.NewTicker(60 * time.Second)
		defer ticker.Stop()
		for range ticker.C {
			check()
		}
	}()
}

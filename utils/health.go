package utils

import (
	"context"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/mongo"
)

// DependencyHealth is the latest probe result for the two stores the chat
// engine cannot run without.
type DependencyHealth struct {
	Mongo     bool      `json:"mongo"`
	Cache     bool      `json:"cache"`
	CheckedAt time.Time `json:"checkedAt"`
}

var (
	healthMu   sync.RWMutex
	healthSnap DependencyHealth
	startedAt  = time.Now()
)

const healthPeriod = 60 * time.Second

// GetHealthStatus returns the most recent dependency snapshot. The zero value
// (both false, zero timestamp) is returned until the first probe completes.
func GetHealthStatus() DependencyHealth {
	healthMu.RLock()
	defer healthMu.RUnlock()
	return healthSnap
}

// Uptime returns how long the process has been running.
func Uptime() time.Duration {
	return time.Since(startedAt)
}

// StartHealthMonitor probes Mongo and the conversation cache on a fixed
// period and keeps the snapshot current for the health endpoint.
func StartHealthMonitor(cache *redis.Client, mongoClient *mongo.Client) {
	go func() {
		ticker := time.NewTicker(healthPeriod)
		defer ticker.Stop()

		for range ticker.C {
			probe(cache, mongoClient)
		}
	}()
}

func probe(cache *redis.Client, mongoClient *mongo.Client) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	snap := DependencyHealth{
		Mongo:     mongoClient.Ping(ctx, nil) == nil,
		Cache:     cache.Ping(ctx).Err() == nil,
		CheckedAt: time.Now(),
	}

	healthMu.Lock()
	healthSnap = snap
	healthMu.Unlock()
}

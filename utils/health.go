package utils

import (
	"context"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/mongo"
)

const healthProbeInterval = 60 * time.Second

// HealthStatus is the latest liveness snapshot of the backing stores: the
// Mongo document store and the cache/session Redis clients, in the order
// they were handed to StartHealthMonitor.
type HealthStatus struct {
	Mongo     bool      `json:"mongo"`
	Redis     []bool    `json:"redis"`
	CheckedAt time.Time `json:"checkedAt"`
}

var (
	lastHealth HealthStatus
	healthMu   sync.RWMutex
)

// GetHealthStatus returns the most recent probe result. Zero value until the
// first probe completes.
func GetHealthStatus() HealthStatus {
	healthMu.RLock()
	defer healthMu.RUnlock()
	return lastHealth
}

// StartHealthMonitor probes the backing stores periodically in the
// background and keeps the snapshot served by /health current.
func StartHealthMonitor(redisClients []*redis.Client, mongoClient *mongo.Client) {
	go func() {
		ticker := time.NewTicker(healthProbeInterval)
		defer ticker.Stop()

		for range ticker.C {
			status := probeStores(context.Background(), redisClients, mongoClient)
			healthMu.Lock()
			lastHealth = status
			healthMu.Unlock()
		}
	}()
}

func probeStores(ctx context.Context, redisClients []*redis.Client, mongoClient *mongo.Client) HealthStatus {
	redisUp := make([]bool, 0, len(redisClients))
	for _, client := range redisClients {
		redisUp = append(redisUp, client.Ping(ctx).Err() == nil)
	}
	return HealthStatus{
		Mongo:     mongoClient.Ping(ctx, nil) == nil,
		Redis:     redisUp,
		CheckedAt: time.Now(),
	}
}

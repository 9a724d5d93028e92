// File: utils/session_store.go
package utils

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// SessionRecord is the Redis-persisted mirror of a live session manager.
// It lets auth middleware rehydrate a session after a process restart.
type SessionRecord struct {
	SessionID     string    `json:"sessionId"`
	AccountID     string    `json:"accountId"`
	CreatedAt     time.Time `json:"createdAt"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
}

// SaveSessionRecord saves the session record in Redis with a TTL.
func SaveSessionRecord(client *redis.Client, record SessionRecord) error {
	record.LastUpdatedAt = time.Now()
	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal session record: %w", err)
	}
	ctx := context.Background()
	if err := client.Set(ctx, SessionCachePrefix+record.SessionID, data, SessionTTL).Err(); err != nil {
		return fmt.Errorf("failed to save session record: %w", err)
	}
	return nil
}

// GetSessionRecord retrieves a session record from Redis. Returns nil when
// the key is missing or expired.
func GetSessionRecord(client *redis.Client, sessionID string) (*SessionRecord, error) {
	ctx := context.Background()
	data, err := client.Get(ctx, SessionCachePrefix+sessionID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}
	var record SessionRecord
	if err := json.Unmarshal([]byte(data), &record); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session record: %w", err)
	}
	return &record, nil
}

// DeleteSessionRecord removes a session record from Redis.
func DeleteSessionRecord(client *redis.Client, sessionID string) error {
	ctx := context.Background()
	return client.Del(ctx, SessionCachePrefix+sessionID).Err()
}

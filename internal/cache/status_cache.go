// Package cache provides a short-lived read-through cache of plate status
// lookups backed by Redis.
//
// The cache is purely an optimization in front of the authoritative store:
// every failure is soft (treated as a miss) and entries expire quickly, so a
// stale answer can only outlive reality by the configured TTL.
package cache

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	sessionDomain "github.com/allisson/parkledger/internal/session/domain"
)

// StatusCache caches PlateStatus values keyed by plate digest.
type StatusCache struct {
	client redis.UniversalClient
	ttl    time.Duration
	logger *slog.Logger
}

// NewStatusCache creates a cache over the given Redis client.
func NewStatusCache(client redis.UniversalClient, ttl time.Duration, logger *slog.Logger) *StatusCache {
	return &StatusCache{
		client: client,
		ttl:    ttl,
		logger: logger,
	}
}

// key builds the Redis key for a plate digest.
func (c *StatusCache) key(plateHash []byte) string {
	return "parkledger:plate-status:" + hex.EncodeToString(plateHash)
}

// Get returns the cached status for a digest, or ok=false on miss or error.
func (c *StatusCache) Get(ctx context.Context, plateHash []byte) (*sessionDomain.PlateStatus, bool) {
	payload, err := c.client.Get(ctx, c.key(plateHash)).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.logger.Warn("status cache get failed", slog.Any("error", err))
		}
		return nil, false
	}

	var status sessionDomain.PlateStatus
	if err := json.Unmarshal(payload, &status); err != nil {
		c.logger.Warn("status cache entry corrupt", slog.Any("error", err))
		return nil, false
	}

	return &status, true
}

// Set stores a status with the configured TTL. Failures are soft.
func (c *StatusCache) Set(ctx context.Context, plateHash []byte, status *sessionDomain.PlateStatus) {
	payload, err := json.Marshal(status)
	if err != nil {
		c.logger.Warn("status cache marshal failed", slog.Any("error", err))
		return
	}

	if err := c.client.Set(ctx, c.key(plateHash), payload, c.ttl).Err(); err != nil {
		c.logger.Warn("status cache set failed", slog.Any("error", err))
	}
}

// Invalidate drops the cached status for a digest, used after park and leave
// so state transitions are visible immediately.
func (c *StatusCache) Invalidate(ctx context.Context, plateHash []byte) {
	if err := c.client.Del(ctx, c.key(plateHash)).Err(); err != nil {
		c.logger.Warn("status cache invalidate failed", slog.Any("error", err))
	}
}

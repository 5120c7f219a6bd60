package cache

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	sessionDomain "github.com/allisson/parkledger/internal/session/domain"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func newTestCache(t *testing.T, ttl time.Duration) *StatusCache {
	t.Helper()
	mr := miniredis.RunT(t)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() {
		require.NoError(t, client.Close())
	})

	return NewStatusCache(client, ttl, slog.New(slog.DiscardHandler))
}

func TestStatusCache(t *testing.T) {
	ctx := context.Background()
	plateHash := bytes.Repeat([]byte{0x0a}, 32)

	t.Run("miss on empty cache", func(t *testing.T) {
		cache := newTestCache(t, time.Minute)

		_, ok := cache.Get(ctx, plateHash)
		assert.False(t, ok)
	})

	t.Run("set then get round trips", func(t *testing.T) {
		cache := newTestCache(t, time.Minute)
		status := &sessionDomain.PlateStatus{
			Parked: true,
			LotID:  "LOT-001",
			Serial: 7,
			Source: sessionDomain.SourceDatabase,
		}

		cache.Set(ctx, plateHash, status)

		got, ok := cache.Get(ctx, plateHash)
		require.True(t, ok)
		assert.Equal(t, status, got)
	})

	t.Run("different digests do not collide", func(t *testing.T) {
		cache := newTestCache(t, time.Minute)
		cache.Set(ctx, plateHash, &sessionDomain.PlateStatus{Parked: true})

		other := bytes.Repeat([]byte{0x0b}, 32)
		_, ok := cache.Get(ctx, other)
		assert.False(t, ok)
	})

	t.Run("invalidate drops the entry", func(t *testing.T) {
		cache := newTestCache(t, time.Minute)
		cache.Set(ctx, plateHash, &sessionDomain.PlateStatus{Parked: true})

		cache.Invalidate(ctx, plateHash)

		_, ok := cache.Get(ctx, plateHash)
		assert.False(t, ok)
	})

	t.Run("unreachable redis degrades to a miss", func(t *testing.T) {
		mr := miniredis.RunT(t)
		client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
		t.Cleanup(func() {
			require.NoError(t, client.Close())
		})
		cache := NewStatusCache(client, time.Minute, slog.New(slog.DiscardHandler))

		mr.Close()

		_, ok := cache.Get(ctx, plateHash)
		assert.False(t, ok)
		assert.NotPanics(t, func() {
			cache.Set(ctx, plateHash, &sessionDomain.PlateStatus{Parked: true})
			cache.Invalidate(ctx, plateHash)
		})
	})
}

package repositories

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JarodCode/gamevault/internal/models"
)

// cacheClient connects to the Redis instance named by TEST_REDIS_ADDR, or
// skips the test when none is configured.
func cacheClient(t *testing.T) *redis.Client {
	t.Helper()

	addr := os.Getenv("TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("TEST_REDIS_ADDR not set, skipping Redis integration test")
	}

	client := redis.NewClient(&redis.Options{Addr: addr})
	t.Cleanup(func() { _ = client.Close() })

	require.NoError(t, client.Ping(context.Background()).Err())
	return client
}

func TestAggregateCacheRepository_SetAndGet(t *testing.T) {
	client := cacheClient(t)
	ctx := context.Background()

	repo := NewAggregateCacheRepository(client, time.Minute)

	want := &models.RatingAggregate{
		AverageRating:         4.0,
		ReviewCount:           3,
		DistinctReviewerCount: 3,
	}
	require.NoError(t, repo.Set(ctx, "game-cache-test", want))

	got, err := repo.Get(ctx, "game-cache-test")
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestAggregateCacheRepository_MissAndExpiry(t *testing.T) {
	client := cacheClient(t)
	ctx := context.Background()

	repo := NewAggregateCacheRepository(client, 50*time.Millisecond)

	// A never-written game is a miss.
	_, err := repo.Get(ctx, "game-never-written")
	assert.True(t, errors.Is(err, redis.Nil))

	// A written entry disappears after its TTL.
	require.NoError(t, repo.Set(ctx, "game-expiry-test", &models.RatingAggregate{ReviewCount: 1}))
	time.Sleep(100 * time.Millisecond)

	_, err = repo.Get(ctx, "game-expiry-test")
	assert.True(t, errors.Is(err, redis.Nil))
}

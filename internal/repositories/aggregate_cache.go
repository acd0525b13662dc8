package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/JarodCode/gamevault/internal/logger"
	"github.com/JarodCode/gamevault/internal/models"
)

// AggregateCacheRepository keeps per-game rating aggregates in Redis so
// read-heavy listing endpoints can skip recomputation. The ledger remains
// the source of truth; entries are overwritten on every mutation and expire
// on their own.
type AggregateCacheRepository struct {
	client *redis.Client
	exp    time.Duration
}

// NewAggregateCacheRepository creates a cache repository with the given TTL.
func NewAggregateCacheRepository(client *redis.Client, expiration time.Duration) *AggregateCacheRepository {
	return &AggregateCacheRepository{
		client: client,
		exp:    expiration,
	}
}

func aggregateKey(gameID string) string {
	return fmt.Sprintf("game_rating:%s", gameID)
}

// Get fetches the cached aggregate for a game. A cache miss is returned as
// redis.Nil wrapped in the error.
func (r *AggregateCacheRepository) Get(ctx context.Context, gameID string) (*models.RatingAggregate, error) {
	key := aggregateKey(gameID)

	val, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, fmt.Errorf("aggregate not cached for game %s: %w", gameID, err)
		}
		logger.Log.Warnw("aggregate cache read failed", "key", key, "error", err)
		return nil, err
	}

	var agg models.RatingAggregate
	if err := json.Unmarshal([]byte(val), &agg); err != nil {
		logger.Log.Warnw("aggregate cache entry is unreadable", "key", key, "error", err)
		return nil, err
	}

	return &agg, nil
}

// Set overwrites the cached aggregate for a game.
func (r *AggregateCacheRepository) Set(ctx context.Context, gameID string, agg *models.RatingAggregate) error {
	key := aggregateKey(gameID)

	data, err := json.Marshal(agg)
	if err != nil {
		return err
	}

	if err := r.client.Set(ctx, key, data, r.exp).Err(); err != nil {
		logger.Log.Warnw("aggregate cache write failed", "key", key, "error", err)
		return err
	}
	return nil
}

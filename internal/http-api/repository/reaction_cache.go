package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"blogify/internal/http-api/models"

	"github.com/redis/go-redis/v9"
)

// ReactionCache keeps per-post reaction summaries in redis so the public
// reactions endpoint does not hit the aggregation query on every page view.
// Entries are invalidated on every toggle; the cache is advisory and every
// method is a no-op on a nil receiver so the service works without redis.
type ReactionCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewReactionCache parses a redis URL, verifies the connection and returns
// the cache. Callers treat an error here as "run without cache".
func NewReactionCache(redisURL string, ttl time.Duration) (*ReactionCache, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("invalid redis URL: %w", err)
	}
	rdb := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &ReactionCache{client: rdb, ttl: ttl}, nil
}

func summaryKey(postID int64) string {
	return fmt.Sprintf("reactions:post:%d", postID)
}

// Get returns the cached summaries for a post. The second return value is
// false on miss, decode failure, or when the cache is disabled.
func (c *ReactionCache) Get(ctx context.Context, postID int64) ([]models.ReactionSummary, bool) {
	if c == nil || c.client == nil {
		return nil, false
	}
	raw, err := c.client.Get(ctx, summaryKey(postID)).Result()
	if err != nil {
		return nil, false
	}
	var summaries []models.ReactionSummary
	if err := json.Unmarshal([]byte(raw), &summaries); err != nil {
		return nil, false
	}
	return summaries, true
}

func (c *ReactionCache) Set(ctx context.Context, postID int64, summaries []models.ReactionSummary) error {
	if c == nil || c.client == nil {
		return nil
	}
	data, err := json.Marshal(summaries)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, summaryKey(postID), data, c.ttl).Err()
}

// Invalidate drops the cached entry for a post after any toggle so the next
// read rebuilds from the store.
func (c *ReactionCache) Invalidate(ctx context.Context, postID int64) error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Del(ctx, summaryKey(postID)).Err()
}

func (c *ReactionCache) Close() error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Close()
}

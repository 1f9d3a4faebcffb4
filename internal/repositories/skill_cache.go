package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/skillswap/skillswap-api/internal/logger"
	"github.com/skillswap/skillswap-api/internal/models"
)

const skillFeedKey = "skills:feed"

// ErrCacheMiss is returned when the feed is not cached.
var ErrCacheMiss = errors.New("skill feed not found in cache")

// SkillCacheRepository caches the public skill feed in Redis.
type SkillCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration duration for the cached feed
}

// NewSkillCacheRepository creates a new repository instance with the given TTL.
func NewSkillCacheRepository(client *redis.Client, expiration time.Duration) *SkillCacheRepository {
	return &SkillCacheRepository{
		client: client,
		exp:    expiration,
	}
}

// GetFeed fetches the cached public feed.
func (r *SkillCacheRepository) GetFeed(ctx context.Context) ([]models.SkillWithOwner, error) {
	val, err := r.client.Get(ctx, skillFeedKey).Bytes()
	if err != nil {
		logger.Log.Infow("cache read",
			"key", skillFeedKey,
			"error", err,
		)
		if errors.Is(err, redis.Nil) {
			return nil, ErrCacheMiss
		}
		return nil, err
	}

	var feed []models.SkillWithOwner
	if err := json.Unmarshal(val, &feed); err != nil {
		logger.Log.Errorw("cache payload unmarshal failed",
			"key", skillFeedKey,
			"error", err,
		)
		return nil, err
	}

	logger.Log.Infow("cache read",
		"key", skillFeedKey,
		"result", len(feed),
		"error", nil,
	)

	return feed, nil
}

// SetFeed caches the public feed with the configured expiration.
func (r *SkillCacheRepository) SetFeed(ctx context.Context, feed []models.SkillWithOwner) error {
	data, err := json.Marshal(feed)
	if err != nil {
		return err
	}

	err = r.client.Set(ctx, skillFeedKey, data, r.exp).Err()

	logger.Log.Infow("cache write",
		"key", skillFeedKey,
		"result", len(feed),
		"error", err,
	)

	return err
}

// InvalidateFeed drops the cached feed after a listing mutation.
func (r *SkillCacheRepository) InvalidateFeed(ctx context.Context) error {
	err := r.client.Del(ctx, skillFeedKey).Err()

	logger.Log.Infow("cache invalidate",
		"key", skillFeedKey,
		"error", err,
	)

	return err
}

package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// Channel titles change rarely; a short TTL keeps renamed channels from
// showing a stale sheet name for long.
const channelTitleTTL = 15 * time.Minute

// CacheService is a Redis cache-aside layer for channel title lookups,
// which otherwise cost a catalog API call on every binding status read.
type CacheService struct {
	rdb *redis.Client
}

// NewCacheService connects to Redis. If redisURL is empty or the
// connection fails, the returned service has a nil client and every
// operation degrades to a no-op.
func NewCacheService(redisURL string) *CacheService {
	if redisURL == "" {
		log.Println("redis: no URL configured, caching disabled")
		return &CacheService{}
	}

	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Printf("redis: invalid URL %q, caching disabled: %v", redisURL, err)
		return &CacheService{}
	}

	rdb := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Printf("redis: connection failed, caching disabled: %v", err)
		return &CacheService{}
	}

	log.Println("redis: connected, caching enabled")
	return &CacheService{rdb: rdb}
}

// Client returns the underlying Redis client (for health checks). May be nil.
func (c *CacheService) Client() *redis.Client {
	return c.rdb
}

// GetChannelTitle returns the cached title, or "" on miss or when the
// cache is disabled.
func (c *CacheService) GetChannelTitle(ctx context.Context, channelID string) (string, error) {
	if c.rdb == nil {
		return "", nil
	}
	title, err := c.rdb.Get(ctx, titleKey(channelID)).Result()
	if err == redis.Nil {
		return "", nil
	}
	return title, err
}

// SetChannelTitle stores a resolved title.
func (c *CacheService) SetChannelTitle(ctx context.Context, channelID, title string) error {
	if c.rdb == nil {
		return nil
	}
	return c.rdb.Set(ctx, titleKey(channelID), title, channelTitleTTL).Err()
}

// Close shuts down the Redis connection.
func (c *CacheService) Close() error {
	if c.rdb == nil {
		return nil
	}
	return c.rdb.Close()
}

func titleKey(channelID string) string {
	return fmt.Sprintf("channel_title:%s", channelID)
}

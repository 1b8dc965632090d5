package cache

import (
	"context"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// ListKey caches the rendered asset list between mutations.
	ListKey = "assets:list"
	// ListTTL bounds staleness if an invalidation is ever missed.
	ListTTL = 5 * time.Minute
)

// InitRedis connects to the Redis instance named by REDIS_ADDR.
func InitRedis() (*redis.Client, error) {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       0,
	})

	ctx := context.Background()
	if err := redisClient.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return redisClient, nil
}

// GetList returns the cached list payload, or "" on a miss.
func GetList(ctx context.Context, client *redis.Client) string {
	if client == nil {
		return ""
	}
	cached, err := client.Get(ctx, ListKey).Result()
	if err != nil {
		return ""
	}
	return cached
}

// SetList stores the rendered list payload with a TTL. Best effort.
func SetList(ctx context.Context, client *redis.Client, payload []byte) {
	if client == nil {
		return
	}
	_ = client.Set(ctx, ListKey, payload, ListTTL).Err()
}

// InvalidateList drops the cached list after any mutation.
func InvalidateList(ctx context.Context, client *redis.Client) {
	if client == nil {
		return
	}
	_ = client.Del(ctx, ListKey).Err()
}

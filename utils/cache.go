// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"nestcare/config"

	"github.com/go-redis/redis/v8"
)

// FeedCacheClient is the dedicated client for the featured-caregiver feed.
var FeedCacheClient *redis.Client

// InitFeedCache initializes the Redis client backing the featured-caregiver feed.
func InitFeedCache() {
	FeedCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisFeedDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := FeedCacheClient.Ping(ctx).Result()
	if err != nil {
		log.Fatalf("Failed to connect to Redis (Feed Cache): %v", err)
	}
}

// GetFeedCacheClient returns the Redis client for the featured-caregiver feed.
func GetFeedCacheClient() *redis.Client {
	if FeedCacheClient == nil {
		InitFeedCache()
	}
	return FeedCacheClient
}

// InitRedis initializes all Redis clients. The reminder queue manages its
// own connection through asynq.
func InitRedis() {
	InitFeedCache()
}

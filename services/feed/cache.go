// File: services/feed/cache.go
package feed

import (
	"context"
	"encoding/json"
	"fmt"

	"nestcare/models"
	"nestcare/utils"

	"github.com/go-redis/redis/v8"
)

// RedisFeaturedCache implements FeaturedCache on Redis, one key per
// caregiver.
type RedisFeaturedCache struct {
	client *redis.Client
}

func NewRedisFeaturedCache(client *redis.Client) FeaturedCache {
	return &RedisFeaturedCache{client: client}
}

func caregiverKey(id string) string {
	return fmt.Sprintf("%s%s", utils.FeedCachePrefix, id)
}

func (c *RedisFeaturedCache) SetCaregiver(ctx context.Context, caregiver models.Caregiver) error {
	data, err := json.Marshal(caregiver)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, caregiverKey(caregiver.ID), data, utils.FeedCacheTTL).Err()
}

func (c *RedisFeaturedCache) GetAllCaregivers(ctx context.Context) ([]models.Caregiver, error) {
	keys, err := c.client.Keys(ctx, utils.FeedCachePrefix+"*").Result()
	if err != nil {
		return nil, err
	}

	var caregivers []models.Caregiver
	for _, key := range keys {
		val, err := c.client.Get(ctx, key).Result()
		if err != nil {
			continue // skip corrupt/missing
		}

		var caregiver models.Caregiver
		if err := json.Unmarshal([]byte(val), &caregiver); err != nil {
			continue
		}
		caregivers = append(caregivers, caregiver)
	}
	return caregivers, nil
}

func (c *RedisFeaturedCache) DeleteCaregiver(ctx context.Context, id string) error {
	return c.client.Del(ctx, caregiverKey(id)).Err()
}

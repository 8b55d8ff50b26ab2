// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package cloud

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisCache implements [Cache] with JSON values in Redis.
type RedisCache struct {
	client *redis.Client
}

// NewRedisCache creates a new Redis-backed [Cache].
func NewRedisCache(client *redis.Client) *RedisCache {
	return &RedisCache{client: client}
}

/*
Get retrieves and decodes a cached value.

Parameters:
  - ctx: context.Context
  - key: string
  - dest: any (pointer to decode into)

Returns:
  - bool: false when the key is absent or expired
  - error: Connectivity or decoding failures
*/
func (cache *RedisCache) Get(ctx context.Context, key string, dest any) (bool, error) {
	payload, err := cache.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("redis_cloud_get_failed: %w", err)
	}

	if err := json.Unmarshal(payload, dest); err != nil {
		return false, fmt.Errorf("redis_cloud_decode_failed: %w", err)
	}
	return true, nil
}

// Set encodes value as JSON and stores it under key for ttl.
func (cache *RedisCache) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("redis_cloud_encode_failed: %w", err)
	}

	if err := cache.client.Set(ctx, key, payload, ttl).Err(); err != nil {
		return fmt.Errorf("redis_cloud_set_failed: %w", err)
	}
	return nil
}

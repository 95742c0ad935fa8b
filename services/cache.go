package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

// GetFromCache loads a cached JSON value into target. A cache miss leaves
// target untouched and returns (false, nil).
func GetFromCache(ctx context.Context, rdb *redis.Client, key string, target interface{}) (bool, error) {
	cached, err := rdb.Get(ctx, key).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal([]byte(cached), target); err != nil {
		return false, err
	}
	return true, nil
}

// SetToCache stores value as JSON with the given TTL.
func SetToCache(ctx context.Context, rdb *redis.Client, key string, value interface{}, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return rdb.Set(ctx, key, data, ttl).Err()
}

// DeleteFromCache drops a cached key, used when bookings or rooms mutate.
func DeleteFromCache(ctx context.Context, rdb *redis.Client, key string) error {
	return rdb.Del(ctx, key).Err()
}

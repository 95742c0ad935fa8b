package config

import (
	"context"
	"log"
	"os"
	"strings"

	"github.com/redis/go-redis/v9"
)

// ConnectRedis opens the optional Redis connection used to cache dashboard
// stats. Returns nil when REDIS_ADDR is not configured; callers must treat a
// nil client as "no cache".
func ConnectRedis(ctx context.Context) *redis.Client {
	addr := strings.TrimSpace(os.Getenv("REDIS_ADDR"))
	if addr == "" {
		return nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Username: os.Getenv("REDIS_USER"),
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       0,
	})

	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Printf("warning: redis unreachable at %s, caching disabled: %v", addr, err)
		return nil
	}

	log.Println("Redis connection established")
	return rdb
}

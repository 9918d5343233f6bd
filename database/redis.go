package database

import (
	"context"
	"log"

	config "github.com/chalkroute/teacher_match/configs"
	"github.com/redis/go-redis/v9"
)

var Redis *redis.Client

// ConnectRedis parses REDIS_URL and verifies connectivity. The cache is
// optional: when REDIS_URL is unset the client stays nil and callers fall
// back to computing ranked matches on every request.
func ConnectRedis() {
	redisURL := config.Config("REDIS_URL")
	if redisURL == "" {
		log.Println("⚠️ REDIS_URL not set, ranked-match caching disabled")
		return
	}

	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Fatalf("🔥 Failed to parse REDIS_URL: %v", err)
	}

	client := redis.NewClient(opts)
	if err := client.Ping(context.Background()).Err(); err != nil {
		log.Fatalf("🔥 Redis ping failed: %v", err)
	}

	Redis = client
	log.Println("✅ Redis connected successfully")
}

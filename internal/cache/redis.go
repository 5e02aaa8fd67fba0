package cache

import (
	"context"
	"log"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/UticaHairSalon/salon-booking/internal/config"
)

// NewRedisClient connects to Redis for gallery caching. Redis is optional:
// when no address is configured or the server is unreachable the function
// returns nil and callers fall back to hitting the database directly.
func NewRedisClient(cfg *config.Config) *redis.Client {
	if cfg.RedisAddr == "" {
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Printf("redis unavailable, caching disabled: %v", err)
		return nil
	}

	return client
}

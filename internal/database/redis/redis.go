package redis

import (
	"context"
	"fmt"
	"log"
	"time"

	redis_v9 "github.com/redis/go-redis/v9"
)

// NewClient connects from a redis:// URI and pings once.
func NewClient(uri string) (*redis_v9.Client, error) {
	if uri == "" {
		return nil, fmt.Errorf("REDIS_URI is required")
	}
	opts, err := redis_v9.ParseURL(uri)
	if err != nil {
		return nil, fmt.Errorf("error parsing redis URI: %w", err)
	}

	client := redis_v9.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("error connecting to Redis: %w", err)
	}
	log.Println("Successfully connected to Redis")
	return client, nil
}

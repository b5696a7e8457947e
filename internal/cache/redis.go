package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/aulaview/aulaview-backend/internal/model"
)

// Redis is the shared cache backend for multi-instance deployments.
// Payloads are JSON-encoded lesson lists; Redis handles TTL expiry itself.
// An unreachable Redis turns every Get into a miss and every Put into a
// no-op, so the service keeps answering from the upstream API.
type Redis struct {
	rdb *redis.Client
	log zerolog.Logger
}

// NewRedis creates a Redis store around an established client.
func NewRedis(rdb *redis.Client, log zerolog.Logger) *Redis {
	return &Redis{
		rdb: rdb,
		log: log.With().Str("component", "lesson_cache").Logger(),
	}
}

func (r *Redis) Get(ctx context.Context, key string) ([]model.Lesson, bool) {
	payload, err := r.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			r.log.Warn().Err(err).Str("key", key).Msg("cache get failed, treating as miss")
		}
		return nil, false
	}

	var lessons []model.Lesson
	if err := json.Unmarshal(payload, &lessons); err != nil {
		r.log.Warn().Err(err).Str("key", key).Msg("cache payload undecodable, treating as miss")
		return nil, false
	}
	return lessons, true
}

func (r *Redis) Put(ctx context.Context, key string, lessons []model.Lesson, ttl time.Duration) {
	payload, err := json.Marshal(lessons)
	if err != nil {
		r.log.Warn().Err(err).Str("key", key).Msg("cache payload encode failed, skipping put")
		return
	}
	if err := r.rdb.Set(ctx, key, payload, ttl).Err(); err != nil {
		r.log.Warn().Err(err).Str("key", key).Msg("cache put failed, skipping")
	}
}

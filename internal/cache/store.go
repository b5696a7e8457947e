// Package cache stores normalized full-day lesson lists under a TTL.
// Entries self-expire; an expired entry behaves exactly like a missing key.
// Backend failures degrade to cache-miss behavior, never to request failure.
package cache

import (
	"context"
	"time"

	"github.com/aulaview/aulaview-backend/internal/model"
)

// Store is the lesson cache abstraction injected into the aggregation
// service. Implementations must isolate operations per key; a concurrent
// get/put pair on the same key may race last-write-wins, which is accepted
// because both writers cache the outcome of the same upstream query.
type Store interface {
	// Get returns the cached lesson list for key. The second return is
	// false for missing keys, expired entries, and backend failures.
	Get(ctx context.Context, key string) ([]model.Lesson, bool)

	// Put caches lessons under key for ttl. Backend failures are logged
	// and swallowed.
	Put(ctx context.Context, key string, lessons []model.Lesson, ttl time.Duration)
}

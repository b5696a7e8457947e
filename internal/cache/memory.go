package cache

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/aulaview/aulaview-backend/internal/model"
)

// janitorInterval is how often the memory backend sweeps expired entries.
// Lookups on expired entries already miss before the sweep runs.
const janitorInterval = 5 * time.Minute

// Memory is the in-process cache backend for single-instance deployments.
type Memory struct {
	cache *gocache.Cache
}

// NewMemory creates a Memory store. defaultTTL applies when Put receives a
// non-positive ttl.
func NewMemory(defaultTTL time.Duration) *Memory {
	return &Memory{
		cache: gocache.New(defaultTTL, janitorInterval),
	}
}

func (m *Memory) Get(_ context.Context, key string) ([]model.Lesson, bool) {
	v, ok := m.cache.Get(key)
	if !ok {
		return nil, false
	}
	lessons, ok := v.([]model.Lesson)
	return lessons, ok
}

func (m *Memory) Put(_ context.Context, key string, lessons []model.Lesson, ttl time.Duration) {
	if ttl <= 0 {
		ttl = gocache.DefaultExpiration
	}
	m.cache.Set(key, lessons, ttl)
}

// Package cache provides the in-process render cache backed by go-cache.
package cache

import (
	"context"
	"errors"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/goliatone/go-cms-social/pkg/interfaces"
)

// ErrCacheMiss is returned by Get for absent or expired keys.
var ErrCacheMiss = errors.New("cache: miss")

// Memory is an interfaces.CacheProvider holding values in process memory.
type Memory struct {
	store      *gocache.Cache
	defaultTTL time.Duration
}

// NewMemory returns a cache whose entries expire after defaultTTL unless Set
// supplies its own ttl. Expired entries are purged every cleanup interval.
func NewMemory(defaultTTL, cleanup time.Duration) *Memory {
	if defaultTTL <= 0 {
		defaultTTL = gocache.NoExpiration
	}
	if cleanup <= 0 {
		cleanup = 10 * time.Minute
	}
	return &Memory{
		store:      gocache.New(defaultTTL, cleanup),
		defaultTTL: defaultTTL,
	}
}

func (m *Memory) Get(_ context.Context, key string) (any, error) {
	value, found := m.store.Get(key)
	if !found {
		return nil, ErrCacheMiss
	}
	return value, nil
}

// Set stores value. A zero ttl uses the cache default.
func (m *Memory) Set(_ context.Context, key string, value any, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = gocache.DefaultExpiration
	}
	m.store.Set(key, value, ttl)
	return nil
}

func (m *Memory) Delete(_ context.Context, key string) error {
	m.store.Delete(key)
	return nil
}

func (m *Memory) Clear(_ context.Context) error {
	m.store.Flush()
	return nil
}

// Len reports the number of stored entries, including expired ones not yet purged.
func (m *Memory) Len() int {
	return m.store.ItemCount()
}

var _ interfaces.CacheProvider = (*Memory)(nil)

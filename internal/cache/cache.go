// Package cache keeps per-user snapshots of listings so that follow-up actions on a page can be
// checked against what the user was shown.
package cache

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/pkg/errors"
)

// ErrMiss means no live snapshot exists for the key.
var ErrMiss = errors.New("cache: miss")

// Snapshots stores one list per key.
type Snapshots[T any] interface {
	Get(ctx context.Context, key string) ([]T, error)
	Set(ctx context.Context, key string, items []T) error
	Delete(ctx context.Context, key string) error
}

// Key builds the snapshot key of one user's listing.
func Key(listing string, userID int64) string {
	return fmt.Sprintf("eduaventuras:%s:%d", listing, userID)
}

type entry[T any] struct {
	items   []T
	expires time.Time
}

// Memory is a process-local Snapshots with a fixed TTL.
type Memory[T any] struct {
	mu    sync.Mutex
	ttl   time.Duration
	items map[string]entry[T]
	now   func() time.Time
}

func NewMemory[T any](ttl time.Duration) *Memory[T] {
	return &Memory[T]{ttl: ttl, items: make(map[string]entry[T]), now: time.Now}
}

func (m *Memory[T]) Get(_ context.Context, key string) ([]T, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.items[key]
	if !ok {
		return nil, ErrMiss
	}
	if m.now().After(e.expires) {
		delete(m.items, key)
		return nil, ErrMiss
	}
	out := make([]T, len(e.items))
	copy(out, e.items)
	return out, nil
}

func (m *Memory[T]) Set(_ context.Context, key string, items []T) error {
	cp := make([]T, len(items))
	copy(cp, items)
	m.mu.Lock()
	m.items[key] = entry[T]{items: cp, expires: m.now().Add(m.ttl)}
	m.mu.Unlock()
	return nil
}

func (m *Memory[T]) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	delete(m.items, key)
	m.mu.Unlock()
	return nil
}

// Find returns the first item of the key's snapshot accepted by match.
func Find[T any](ctx context.Context, s Snapshots[T], key string, match func(T) bool) (T, bool, error) {
	var zero T
	items, err := s.Get(ctx, key)
	if err != nil {
		return zero, false, err
	}
	for _, it := range items {
		if match(it) {
			return it, true, nil
		}
	}
	return zero, false, nil
}

// Update rewrites the key's snapshot through fn. A missing snapshot is left missing.
func Update[T any](ctx context.Context, s Snapshots[T], key string, fn func([]T) []T) error {
	items, err := s.Get(ctx, key)
	if errors.Is(err, ErrMiss) {
		return nil
	}
	if err != nil {
		return err
	}
	return s.Set(ctx, key, fn(items))
}

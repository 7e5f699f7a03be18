package cache

import (
	"context"
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
)

// Memo is a bounded in-process memo. A miss calls the loader and stores
// its result; failed loads are not cached.
type Memo[K comparable, V any] struct {
	entries *lru.Cache[K, V]
}

func NewMemo[K comparable, V any](size int) (*Memo[K, V], error) {
	entries, err := lru.New[K, V](size)
	if err != nil {
		return nil, fmt.Errorf("new memo: %w", err)
	}
	return &Memo[K, V]{entries: entries}, nil
}

// Get returns the memoised value for key, loading it on a miss.
func (m *Memo[K, V]) Get(ctx context.Context, key K, load func(context.Context, K) (V, error)) (V, error) {
	if v, ok := m.entries.Get(key); ok {
		return v, nil
	}

	v, err := load(ctx, key)
	if err != nil {
		var zero V
		return zero, err
	}

	m.entries.Add(key, v)
	return v, nil
}

// Len reports how many entries are held.
func (m *Memo[K, V]) Len() int { return m.entries.Len() }

// Package memorystore backs the session layer with an in-process map.
// Suitable for tests and single-process deployments only; anything behind a
// load balancer wants the Redis store instead.
package memorystore

import (
	"context"
	"sync"
	"time"
)

type entry struct {
	value   []byte
	expires time.Time
}

// KV is a mutex-guarded in-memory key-value store with per-key TTL.
// Expired entries are dropped lazily on the next Get.
type KV struct {
	mu      sync.Mutex
	entries map[string]entry
}

func NewKV() *KV {
	return &KV{entries: make(map[string]entry)}
}

func (k *KV) Get(ctx context.Context, key string) ([]byte, bool, error) {
	_ = ctx
	k.mu.Lock()
	defer k.mu.Unlock()
	e, ok := k.entries[key]
	if !ok {
		return nil, false, nil
	}
	if !e.expires.IsZero() && time.Now().After(e.expires) {
		delete(k.entries, key)
		return nil, false, nil
	}
	return e.value, true, nil
}

func (k *KV) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	_ = ctx
	k.mu.Lock()
	defer k.mu.Unlock()
	var exp time.Time
	if ttl > 0 {
		exp = time.Now().Add(ttl)
	}
	k.entries[key] = entry{value: append([]byte(nil), value...), expires: exp}
	return nil
}

func (k *KV) Del(ctx context.Context, key string) error {
	_ = ctx
	k.mu.Lock()
	defer k.mu.Unlock()
	delete(k.entries, key)
	return nil
}

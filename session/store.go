// Package session gives the auth flow a namespaced key/value view of the
// browser session, so the protocol core never touches the session
// implementation directly.
package session

import (
	"context"
	"time"
)

// Store is the minimal key-value contract the session layer is built on.
// Implementations must honor TTL on Set and report missing keys as
// (found=false, err=nil). The module ships memory and Redis backends under
// storage/.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Del(ctx context.Context, key string) error
}

// Package db defines the storage facade the engine depends on.
package db

import (
	"context"
	"time"
)

// Store is the database facade. Consumers depend on the narrow
// sub-interfaces they actually use (ISP).
type Store interface {
	Pinger
	HashStore
	Close()
	WaitForReady(ctx context.Context, timeout time.Duration) error
}

// Pinger checks database connectivity.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HashStore provides hash-based key-value operations. A single HSet with
// multiple fields is atomic, HGetAll observes a point-in-time snapshot of
// the whole hash, and Del removes the hash as one operation. The offer
// store's atomicity and snapshot guarantees rest on exactly these three
// properties.
type HashStore interface {
	HSet(ctx context.Context, key string, fields map[string]string) error
	HGetAll(ctx context.Context, key string) (map[string]string, error)
	Del(ctx context.Context, key string) error
}

// Package snapshot provides the whole-snapshot key-value persistence
// behind the catalog. Every save rewrites a key's full value; there
// are no incremental updates.
package snapshot

import (
	"context"
	"errors"
)

// Store is a minimal key-value store for serialized snapshots
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, data []byte) error
}

var ErrNotFound = errors.New("snapshot not found")

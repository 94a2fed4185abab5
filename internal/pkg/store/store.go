package store

import (
	"context"
)

// KVStore keeps small opaque blobs by key. Get returns constants.ErrDBNotFound for a missing key.
type KVStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Clear(ctx context.Context, key string) error
}

// Migrator is implemented by backends that need a schema.
type Migrator interface {
	Migrate(ctx context.Context) error
}

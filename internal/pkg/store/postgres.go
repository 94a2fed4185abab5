package store

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/ougirez/solarscope/internal/pkg/logger"
	"github.com/ougirez/solarscope/internal/pkg/store/xpgx"
)

type Pool = xpgx.Pool

const postgresMigration = `
CREATE TABLE IF NOT EXISTS kv_entries (
	key        TEXT PRIMARY KEY,
	value      BYTEA NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`

type store struct {
	pool *Pool
}

// NewStore returns a Postgres-backed KVStore.
func NewStore(pool *Pool) KVStore {
	return &store{pool}
}

func (s *store) Migrate(ctx context.Context) error {
	if _, err := s.pool.Exec(ctx, postgresMigration); err != nil {
		return fmt.Errorf("postgres: migrate: %w", err)
	}
	return nil
}

func (s *store) Get(ctx context.Context, key string) ([]byte, error) {
	query := builder().Select("value").
		From(tableKVEntries).
		Where(sq.Eq{"key": key})

	var value []byte
	if err := s.pool.Getx(ctx, query, &value); err != nil {
		return nil, wrapErr(err)
	}

	return value, nil
}

func (s *store) Set(ctx context.Context, key string, value []byte) error {
	query := builder().Insert(tableKVEntries).
		Columns("key", "value").
		Values(key, value).
		Suffix(`on conflict (key) do update set value = excluded.value, updated_at = now()`)

	if _, err := s.pool.Execx(ctx, query); err != nil {
		logger.Errorf(ctx, "kv set %s: %s", key, err.Error())
		return fmt.Errorf("kv set: %w", err)
	}

	return nil
}

func (s *store) Clear(ctx context.Context, key string) error {
	query := builder().Delete(tableKVEntries).
		Where(sq.Eq{"key": key})

	if _, err := s.pool.Execx(ctx, query); err != nil {
		return fmt.Errorf("kv clear: %w", err)
	}

	return nil
}

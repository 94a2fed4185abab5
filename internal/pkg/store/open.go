package store

import (
	"context"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/ougirez/solarscope/internal/config"
	"github.com/ougirez/solarscope/internal/pkg/logger"
	"github.com/ougirez/solarscope/internal/pkg/store/xpgx"
)

// Open builds the KVStore selected by cfg. The returned func releases its resources.
func Open(ctx context.Context, cfg config.StoreConfig) (KVStore, func(), error) {
	switch cfg.Driver {
	case config.DriverSQLite:
		s, err := NewSQLiteStore(cfg.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		return s, func() { _ = s.Close() }, nil

	case config.DriverPostgres:
		pool, err := connectPostgres(ctx, cfg)
		if err != nil {
			return nil, nil, err
		}
		return NewStore(xpgx.New(pool)), pool.Close, nil

	default:
		return NewMemoryStore(), func() {}, nil
	}
}

func connectPostgres(ctx context.Context, cfg config.StoreConfig) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("pgxpool.New: %w", err)
	}

	err = backoff.Retry(
		func() error {
			if pingErr := pool.Ping(ctx); pingErr != nil {
				logger.Warnf(ctx, "postgres not ready: %s", pingErr.Error())
				return fmt.Errorf("ping: %w", pingErr)
			}
			return nil
		},
		backoff.WithContext(
			backoff.WithMaxRetries(backoff.NewConstantBackOff(500*time.Millisecond), cfg.ConnectRetries),
			ctx,
		),
	)
	if err != nil {
		pool.Close()
		return nil, err
	}

	return pool, nil
}

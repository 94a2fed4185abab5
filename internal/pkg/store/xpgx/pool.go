package xpgx

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Conn is the subset of *pgxpool.Pool used by Pool.
type Conn interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Pool runs squirrel builders against a Conn.
type Pool struct {
	Conn
}

func New(conn Conn) *Pool {
	return &Pool{Conn: conn}
}

func (p *Pool) Execx(ctx context.Context, query sq.Sqlizer) (pgconn.CommandTag, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return pgconn.CommandTag{}, fmt.Errorf("build query: %w", err)
	}
	return p.Exec(ctx, sql, args...)
}

// Getx scans the single row returned by query into dest.
func (p *Pool) Getx(ctx context.Context, query sq.Sqlizer, dest ...any) error {
	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}
	return p.QueryRow(ctx, sql, args...).Scan(dest...)
}

package store

import (
	"database/sql"
	"errors"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/ougirez/solarscope/internal/pkg/constants"
)

const (
	tableKVEntries = "kv_entries"
)

var mapping = map[error]error{
	pgx.ErrNoRows: constants.ErrDBNotFound,
	sql.ErrNoRows: constants.ErrDBNotFound,
}

func wrapErr(err error) error {
	for k, v := range mapping {
		if errors.Is(err, k) {
			return v
		}
	}
	return err
}

// builder returns a squirrel statement builder with Postgres placeholders.
func builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

// sqliteBuilder returns a squirrel statement builder with SQLite placeholders.
func sqliteBuilder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question)
}

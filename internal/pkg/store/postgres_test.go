package store

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/ougirez/solarscope/internal/pkg/constants"
	"github.com/ougirez/solarscope/internal/pkg/store/xpgx"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockStore(t *testing.T) (*store, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { mock.Close() })

	return &store{pool: xpgx.New(mock)}, mock
}

func TestPostgresStore_Get(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT value FROM kv_entries WHERE key = $1`)).
		WithArgs("sid/facilityFilters").
		WillReturnRows(pgxmock.NewRows([]string{"value"}).AddRow([]byte(`{"state":"Michigan"}`)))

	got, err := s.Get(context.Background(), "sid/facilityFilters")
	require.NoError(t, err)
	assert.JSONEq(t, `{"state":"Michigan"}`, string(got))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_Get_NotFound(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectQuery(`SELECT value FROM kv_entries`).
		WithArgs("missing").
		WillReturnError(pgx.ErrNoRows)

	_, err := s.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, constants.ErrDBNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_Set_Upsert(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectExec(`INSERT INTO kv_entries .* on conflict \(key\) do update`).
		WithArgs("sid/facilityFilters", []byte(`{"verified":true}`)).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err := s.Set(context.Background(), "sid/facilityFilters", []byte(`{"verified":true}`))
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_Set_Error(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectExec(`INSERT INTO kv_entries`).
		WithArgs("k", []byte("v")).
		WillReturnError(errors.New("connection reset"))

	err := s.Set(context.Background(), "k", []byte("v"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "kv set")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_Clear(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM kv_entries WHERE key = $1`)).
		WithArgs("k").
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	require.NoError(t, s.Clear(context.Background(), "k"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_Migrate(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectExec(`CREATE TABLE IF NOT EXISTS kv_entries`).
		WillReturnResult(pgxmock.NewResult("CREATE TABLE", 0))

	require.NoError(t, s.Migrate(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

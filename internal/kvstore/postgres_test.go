package kvstore

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostgresStore_Get(t *testing.T) {
	ctx := context.Background()

	t.Run("Existing key", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()
		store := NewPostgresStore(db)

		rows := sqlmock.NewRows([]string{"value"}).AddRow([]byte(`[{"id":"E1"}]`))
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT value FROM collections WHERE key = $1`)).
			WithArgs(KeyEquipments).
			WillReturnRows(rows)

		got, err := store.Get(ctx, KeyEquipments)
		require.NoError(t, err)
		assert.Equal(t, []byte(`[{"id":"E1"}]`), got)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Missing key", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()
		store := NewPostgresStore(db)

		mock.ExpectQuery(regexp.QuoteMeta(`SELECT value FROM collections WHERE key = $1`)).
			WithArgs(KeyRentals).
			WillReturnRows(sqlmock.NewRows([]string{"value"}))

		_, err = store.Get(ctx, KeyRentals)
		assert.ErrorIs(t, err, ErrKeyNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Query failure is passed through", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()
		store := NewPostgresStore(db)

		queryErr := errors.New("connection reset")
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT value FROM collections WHERE key = $1`)).
			WithArgs(KeyRentals).
			WillReturnError(queryErr)

		_, err = store.Get(ctx, KeyRentals)
		assert.ErrorIs(t, err, queryErr)
	})
}

func TestPostgresStore_Put(t *testing.T) {
	ctx := context.Background()

	t.Run("Upsert", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()
		store := NewPostgresStore(db)

		payload := []byte(`[{"id":"R1"}]`)
		mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO collections (key, value, updated_on)`)).
			WithArgs(KeyRentals, payload).
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, store.Put(ctx, KeyRentals, payload))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Exec failure is passed through", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()
		store := NewPostgresStore(db)

		execErr := errors.New("disk full")
		mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO collections (key, value, updated_on)`)).
			WithArgs(KeyEquipments, []byte("[]")).
			WillReturnError(execErr)

		err = store.Put(ctx, KeyEquipments, []byte("[]"))
		assert.ErrorIs(t, err, execErr)
	})
}

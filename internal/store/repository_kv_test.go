package store

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrdjohnson/sukistudy/internal/logger"
)

func TestKVRepository_SetGetOverwrite(t *testing.T) {
	st := newTestStorages(t)
	ctx := context.Background()

	require.NoError(t, st.KV.Set(ctx, KeySubjectsCursor, "2024-03-01T10:00:00Z"))

	got, err := st.KV.Get(ctx, KeySubjectsCursor)
	require.NoError(t, err)
	assert.Equal(t, "2024-03-01T10:00:00Z", got)

	require.NoError(t, st.KV.Set(ctx, KeySubjectsCursor, "2024-03-02T10:00:00Z"))
	got, err = st.KV.Get(ctx, KeySubjectsCursor)
	require.NoError(t, err)
	assert.Equal(t, "2024-03-02T10:00:00Z", got)
}

func TestKVRepository_GetAbsentKey(t *testing.T) {
	st := newTestStorages(t)

	_, err := st.KV.Get(context.Background(), KeyAssignmentsCursor)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestKVRepository_DeleteIsIdempotent(t *testing.T) {
	st := newTestStorages(t)
	ctx := context.Background()

	require.NoError(t, st.KV.Set(ctx, KeyAPIToken, "tok"))
	require.NoError(t, st.KV.Delete(ctx, KeyAPIToken))
	require.NoError(t, st.KV.Delete(ctx, KeyAPIToken))

	_, err := st.KV.Get(ctx, KeyAPIToken)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestKVRepository_QueryErrorWrapped(t *testing.T) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer mockDB.Close()

	boom := errors.New("disk I/O error")
	mock.ExpectQuery("SELECT value FROM kv").WillReturnError(boom)

	repo := NewKVRepository(&DB{DB: mockDB, logger: logger.Nop()}, logger.Nop())

	_, err = repo.Get(context.Background(), KeySubjectsCursor)
	require.ErrorIs(t, err, boom)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestKVRepository_ExecErrorWrapped(t *testing.T) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer mockDB.Close()

	boom := errors.New("database is locked")
	mock.ExpectExec("INSERT INTO kv").WillReturnError(boom)

	repo := NewKVRepository(&DB{DB: mockDB, logger: logger.Nop()}, logger.Nop())

	err = repo.Set(context.Background(), KeyAPIToken, "tok")
	require.ErrorIs(t, err, boom)
	require.NoError(t, mock.ExpectationsWereMet())
}

package state

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clausecraft/clausecraft-cli/internal/common"
)

func setupStore(t *testing.T) (*SQLiteStore, *sql.DB) {
	t.Helper()
	db, err := Open(context.Background(), "file:"+t.Name()+"?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewSQLiteStore(db), db
}

func TestStore_SetGetRoundtrip(t *testing.T) {
	s, _ := setupStore(t)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, KeyToken, []byte("tok-1")))

	got, err := s.Get(ctx, KeyToken)
	require.NoError(t, err)
	assert.Equal(t, []byte("tok-1"), got)
}

func TestStore_SetOverwrites(t *testing.T) {
	s, _ := setupStore(t)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, KeyDemoMode, []byte("true")))
	require.NoError(t, s.Set(ctx, KeyDemoMode, []byte("false")))

	got, err := s.Get(ctx, KeyDemoMode)
	require.NoError(t, err)
	assert.Equal(t, []byte("false"), got)
}

func TestStore_GetMissingReturnsNotFound(t *testing.T) {
	s, _ := setupStore(t)

	_, err := s.Get(context.Background(), "nope")
	require.ErrorIs(t, err, common.ErrNotFound)
}

func TestStore_DeleteIsIdempotent(t *testing.T) {
	s, _ := setupStore(t)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, KeyToken, []byte("tok")))
	require.NoError(t, s.Delete(ctx, KeyToken))
	require.NoError(t, s.Delete(ctx, KeyToken))

	_, err := s.Get(ctx, KeyToken)
	require.ErrorIs(t, err, common.ErrNotFound)
}

func TestStore_ClearRemovesEverything(t *testing.T) {
	s, _ := setupStore(t)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, KeyToken, []byte("t")))
	require.NoError(t, s.Set(ctx, KeyDemoMode, []byte("true")))
	require.NoError(t, s.Set(ctx, KeyDemoUser, []byte("{}")))

	require.NoError(t, s.Clear(ctx))

	for _, key := range []string{KeyToken, KeyDemoMode, KeyDemoUser} {
		_, err := s.Get(ctx, key)
		assert.ErrorIs(t, err, common.ErrNotFound, key)
	}
}

func TestOpen_MigrationsAreIdempotent(t *testing.T) {
	dsn := "file:reopen?mode=memory&cache=shared"
	ctx := context.Background()

	db1, err := Open(ctx, dsn)
	require.NoError(t, err)
	defer db1.Close()

	db2, err := Open(ctx, dsn)
	require.NoError(t, err)
	defer db2.Close()
}

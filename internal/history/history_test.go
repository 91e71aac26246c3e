package history

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yourusername/lexicode/internal/db"
)

func newStore(t *testing.T) *Store {
	t.Helper()
	tmp := filepath.Join(os.TempDir(), "lexicode_test_history.db")
	t.Cleanup(func() { os.Remove(tmp) })
	os.Remove(tmp)

	database, err := db.New(tmp)
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })
	require.NoError(t, database.Migrate())
	return New(database)
}

func TestStore_RecordAndList(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	require.NoError(t, s.Record(ctx, &db.Operation{
		Op: "encode", Source: "web", InputChars: 5, OutputChars: 14, OK: true, DurationUS: 42,
	}))
	require.NoError(t, s.Record(ctx, &db.Operation{
		Op: "decode", Source: "telegram", InputChars: 14, OK: false,
		Error: "codec: unrecognized sequence at position 0",
	}))

	ops, err := s.List(ctx, 1, 50)
	require.NoError(t, err)
	require.Len(t, ops, 2)

	// Newest first.
	assert.Equal(t, "decode", ops[0].Op)
	assert.False(t, ops[0].OK)
	assert.Contains(t, ops[0].Error, "position 0")
	assert.Equal(t, "encode", ops[1].Op)
	assert.True(t, ops[1].OK)

	n, err := s.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestStore_Pagination(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		require.NoError(t, s.Record(ctx, &db.Operation{Op: "encode", Source: "web", OK: true}))
	}

	page1, err := s.List(ctx, 1, 2)
	require.NoError(t, err)
	assert.Len(t, page1, 2)

	page3, err := s.List(ctx, 3, 2)
	require.NoError(t, err)
	assert.Len(t, page3, 1)

	// Out-of-range pages come back empty, not as an error.
	page9, err := s.List(ctx, 9, 2)
	require.NoError(t, err)
	assert.Empty(t, page9)
}

func TestStore_PruneAndClear(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	require.NoError(t, s.Record(ctx, &db.Operation{Op: "encode", Source: "web", OK: true}))

	// Nothing is older than an hour yet.
	n, err := s.Prune(ctx, time.Hour)
	require.NoError(t, err)
	assert.Zero(t, n)

	// A zero retention window prunes everything recorded so far.
	n, err = s.Prune(ctx, 0)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	require.NoError(t, s.Record(ctx, &db.Operation{Op: "decode", Source: "web", OK: true}))
	require.NoError(t, s.Clear(ctx))
	count, err := s.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}

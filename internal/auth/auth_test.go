package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yourusername/lexicode/internal/db"
)

func newDB(t *testing.T) *db.DB {
	t.Helper()
	tmp := filepath.Join(os.TempDir(), "lexicode_test_auth.db")
	t.Cleanup(func() { os.Remove(tmp) })
	os.Remove(tmp)

	database, err := db.New(tmp)
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })
	require.NoError(t, database.Migrate())
	return database
}

func TestAdminKey(t *testing.T) {
	database := newDB(t)
	ctx := context.Background()

	// Unconfigured: nothing matches.
	assert.False(t, CheckAdminKey(database, "anything"))

	require.NoError(t, SetAdminKey(ctx, database, "s3cret"))
	assert.True(t, CheckAdminKey(database, "s3cret"))
	assert.False(t, CheckAdminKey(database, "wrong"))
	assert.False(t, CheckAdminKey(database, ""))

	assert.Error(t, SetAdminKey(ctx, database, ""))
}

func TestRequire(t *testing.T) {
	database := newDB(t)
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	handler := Require(database, next)

	// No key configured yet.
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/v1/history", nil))
	assert.Equal(t, http.StatusForbidden, rec.Code)

	require.NoError(t, SetAdminKey(context.Background(), database, "s3cret"))

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/v1/history", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/v1/history", nil)
	req.Header.Set("X-Admin-Key", "s3cret")
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

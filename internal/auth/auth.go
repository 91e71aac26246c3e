// Package auth guards destructive admin endpoints with a single admin key.
// The key is set via `lexicode setkey` and stored as a bcrypt hash in the
// settings table; requests present the plain key in the X-Admin-Key header.
package auth

import (
	"context"
	"fmt"
	"net/http"

	"golang.org/x/crypto/bcrypt"

	"github.com/yourusername/lexicode/internal/db"
)

const bcryptCost = 12
const settingKeyHash = "admin_key_hash"

// SetAdminKey hashes and stores the admin key.
func SetAdminKey(ctx context.Context, database *db.DB, plain string) error {
	if plain == "" {
		return fmt.Errorf("auth.SetAdminKey: empty key")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcryptCost)
	if err != nil {
		return fmt.Errorf("auth.SetAdminKey: %w", err)
	}
	if err := database.SetSetting(settingKeyHash, string(hash)); err != nil {
		return fmt.Errorf("auth.SetAdminKey: %w", err)
	}
	return nil
}

// CheckAdminKey compares a plain key against the stored hash.
// Returns false when no key has been configured yet.
func CheckAdminKey(database *db.DB, plain string) bool {
	hash := database.GetSetting(settingKeyHash, "")
	if hash == "" || plain == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}

// Require is middleware that validates the X-Admin-Key header.
func Require(database *db.DB, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if database.GetSetting(settingKeyHash, "") == "" {
			http.Error(w, `{"success":false,"error":"admin key not configured — run 'lexicode setkey'"}`, http.StatusForbidden)
			return
		}
		if !CheckAdminKey(database, r.Header.Get("X-Admin-Key")) {
			http.Error(w, `{"success":false,"error":"unauthorized"}`, http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}

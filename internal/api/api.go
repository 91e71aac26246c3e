// Package api sets up the HTTP routes for Lexicode's REST API.
package api

import (
	"net/http"

	"github.com/yourusername/lexicode/internal/api/handlers"
	"github.com/yourusername/lexicode/internal/auth"
	"github.com/yourusername/lexicode/internal/codec"
	"github.com/yourusername/lexicode/internal/config"
	"github.com/yourusername/lexicode/internal/db"
	"github.com/yourusername/lexicode/internal/history"
	"github.com/yourusername/lexicode/internal/ws"
)

// Deps holds all dependencies injected into the API handlers.
type Deps struct {
	DB      *db.DB
	Config  *config.Config
	Codec   *codec.Codec
	History *history.Store
	Hub     *ws.Hub
	Version string
}

// SetupRoutes registers all HTTP routes on the given ServeMux.
// Uses Go 1.22 method+pattern routing syntax.
func SetupRoutes(mux *http.ServeMux, deps *Deps) {
	h := handlers.New(deps.DB, deps.Config, deps.Codec, deps.History, deps.Hub, deps.Version)

	// ── Public routes ────────────────────────────────────────────────────────
	mux.HandleFunc("POST /api/v1/encode", h.Encode)
	mux.HandleFunc("POST /api/v1/decode", h.Decode)
	mux.HandleFunc("GET /api/v1/alphabet", h.Alphabet)
	mux.HandleFunc("GET /api/v1/history", h.ListHistory)
	mux.HandleFunc("GET /api/v1/status", h.Status)

	// ── Admin routes ─────────────────────────────────────────────────────────
	mux.Handle("DELETE /api/v1/history", auth.Require(deps.DB, http.HandlerFunc(h.ClearHistory)))
}

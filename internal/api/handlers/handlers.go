// Package handlers provides HTTP handler implementations for the Lexicode REST API.
package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/yourusername/lexicode/internal/codec"
	"github.com/yourusername/lexicode/internal/config"
	"github.com/yourusername/lexicode/internal/db"
	"github.com/yourusername/lexicode/internal/history"
	"github.com/yourusername/lexicode/internal/ws"
)

// Handler holds all shared dependencies for API handler methods.
type Handler struct {
	db      *db.DB
	config  *config.Config
	codec   *codec.Codec
	history *history.Store
	hub     *ws.Hub
	version string
	started time.Time
}

// New creates a Handler with all dependencies.
func New(
	database *db.DB,
	cfg *config.Config,
	c *codec.Codec,
	store *history.Store,
	hub *ws.Hub,
	version string,
) *Handler {
	return &Handler{
		db:      database,
		config:  cfg,
		codec:   c,
		history: store,
		hub:     hub,
		version: version,
		started: time.Now(),
	}
}

// ── Response helpers ──────────────────────────────────────────────────────────

type response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

type paginatedResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data"`
	Meta    pageMeta    `json:"meta"`
}

type pageMeta struct {
	Total int `json:"total"`
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

func ok(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response{Success: true, Data: data})
}

func okPaginated(w http.ResponseWriter, data interface{}, total, page, limit int) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(paginatedResponse{
		Success: true,
		Data:    data,
		Meta:    pageMeta{Total: total, Page: page, Limit: limit},
	})
}

func fail(w http.ResponseWriter, code int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(response{Success: false, Error: msg})
}

func decode(r *http.Request, v interface{}) error {
	return json.NewDecoder(r.Body).Decode(v)
}

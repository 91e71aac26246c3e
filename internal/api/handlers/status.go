package handlers

import (
	"net/http"
	"time"
)

// Status handles GET /api/v1/status.
func (h *Handler) Status(w http.ResponseWriter, r *http.Request) {
	total, err := h.history.Count(r.Context())
	if err != nil {
		fail(w, http.StatusInternalServerError, err.Error())
		return
	}
	ok(w, map[string]interface{}{
		"version":        h.version,
		"uptime_seconds": int(time.Since(h.started).Seconds()),
		"operations":     total,
		"ws_clients":     h.hub.ClientCount(),
		"bit_width":      h.codec.BitWidth(),
		"word_count":     h.codec.Len(),
	})
}

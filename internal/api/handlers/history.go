package handlers

import (
	"net/http"
	"strconv"
)

// ListHistory handles GET /api/v1/history?page=&limit=.
func (h *Handler) ListHistory(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	if page < 1 {
		page = 1
	}
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	if limit < 1 {
		limit = 50
	}

	ops, err := h.history.List(r.Context(), page, limit)
	if err != nil {
		fail(w, http.StatusInternalServerError, err.Error())
		return
	}
	total, err := h.history.Count(r.Context())
	if err != nil {
		fail(w, http.StatusInternalServerError, err.Error())
		return
	}
	okPaginated(w, ops, total, page, limit)
}

// ClearHistory handles DELETE /api/v1/history. Admin-guarded in api.SetupRoutes.
func (h *Handler) ClearHistory(w http.ResponseWriter, r *http.Request) {
	if err := h.history.Clear(r.Context()); err != nil {
		fail(w, http.StatusInternalServerError, err.Error())
		return
	}
	ok(w, map[string]string{"status": "cleared"})
}

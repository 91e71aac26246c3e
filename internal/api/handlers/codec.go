package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/yourusername/lexicode/internal/codec"
	"github.com/yourusername/lexicode/internal/db"
)

type codecRequest struct {
	Text string `json:"text"`
}

// Encode handles POST /api/v1/encode.
func (h *Handler) Encode(w http.ResponseWriter, r *http.Request) {
	var req codecRequest
	if err := decode(r, &req); err != nil {
		fail(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	start := time.Now()
	encoded, err := h.codec.Encode(req.Text)
	h.record(r, "encode", req.Text, encoded, err, time.Since(start))
	if err != nil {
		fail(w, http.StatusInternalServerError, err.Error())
		return
	}

	ok(w, map[string]interface{}{
		"result": h.config.ResultPrefix + encoded + h.config.ResultSuffix,
		"words":  encoded,
		"chunks": chunkCount(len(req.Text), h.codec.BitWidth()),
	})
}

// Decode handles POST /api/v1/decode. The configured result decoration is
// stripped first so a copied encode result can be pasted back verbatim.
func (h *Handler) Decode(w http.ResponseWriter, r *http.Request) {
	var req codecRequest
	if err := decode(r, &req); err != nil {
		fail(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	text := strings.TrimSpace(req.Text)
	text = strings.TrimPrefix(text, h.config.ResultPrefix)
	text = strings.TrimSuffix(text, h.config.ResultSuffix)

	start := time.Now()
	decoded, err := h.codec.Decode(text)
	h.record(r, "decode", text, decoded, err, time.Since(start))
	if err != nil {
		fail(w, codecErrorStatus(err), err.Error())
		return
	}

	ok(w, map[string]interface{}{"result": decoded})
}

// Alphabet handles GET /api/v1/alphabet.
func (h *Handler) Alphabet(w http.ResponseWriter, r *http.Request) {
	ok(w, map[string]interface{}{
		"bit_width":  h.codec.BitWidth(),
		"pad_word":   h.codec.PadWord(),
		"word_count": h.codec.Len(),
		"words":      h.codec.Entries(),
	})
}

// record writes one history row and pushes it to the activity feed.
func (h *Handler) record(r *http.Request, op, input, output string, opErr error, took time.Duration) {
	entry := &db.Operation{
		Op:          op,
		Source:      "web",
		InputChars:  utf8.RuneCountInString(input),
		OutputChars: utf8.RuneCountInString(output),
		OK:          opErr == nil,
		DurationUS:  took.Microseconds(),
	}
	if opErr != nil {
		entry.Error = opErr.Error()
	}
	if err := h.history.Record(r.Context(), entry); err != nil {
		log.Printf("handlers.record: %v", err)
	}
	h.hub.BroadcastOperation(op, "web", entry.InputChars, entry.OutputChars, opErr)
}

// codecErrorStatus maps decode failures to HTTP status codes. All decode
// errors are caller errors (bad input), not server faults.
func codecErrorStatus(err error) int {
	var segErr *codec.SegmentationError
	var unkErr *codec.UnknownWordError
	var invErr *codec.InvalidTextError
	if errors.As(err, &segErr) || errors.As(err, &unkErr) || errors.As(err, &invErr) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// chunkCount returns how many words encode emits for n input bytes.
func chunkCount(n, bitWidth int) int {
	return (n*8 + bitWidth - 1) / bitWidth
}

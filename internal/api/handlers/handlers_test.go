package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yourusername/lexicode/internal/codec"
	"github.com/yourusername/lexicode/internal/config"
	"github.com/yourusername/lexicode/internal/db"
	"github.com/yourusername/lexicode/internal/history"
	"github.com/yourusername/lexicode/internal/ws"
)

func newHandler(t *testing.T) *Handler {
	t.Helper()
	tmp := filepath.Join(os.TempDir(), "lexicode_test_handlers.db")
	t.Cleanup(func() { os.Remove(tmp) })
	os.Remove(tmp)

	database, err := db.New(tmp)
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })
	require.NoError(t, database.Migrate())

	c, err := codec.New(codec.DefaultConfig())
	require.NoError(t, err)

	cfg := &config.Config{
		ResultPrefix: "啊啊啊啊啊啊宝宝你是一个",
		ResultSuffix: "的小蛋糕",
	}
	// The hub is not run here; broadcasts land in its buffer and are dropped.
	return New(database, cfg, c, history.New(database), ws.NewHub(), "test")
}

func post(t *testing.T, h http.HandlerFunc, path, body string) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	h(rec, req)

	var envelope struct {
		Success bool                   `json:"success"`
		Data    map[string]interface{} `json:"data"`
		Error   string                 `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	if envelope.Data == nil {
		envelope.Data = map[string]interface{}{"error": envelope.Error}
	}
	return rec, envelope.Data
}

func TestEncodeDecode_RoundTrip(t *testing.T) {
	h := newHandler(t)

	rec, data := post(t, h.Encode, "/api/v1/encode", `{"text":"A"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "香蕉香蕉", data["words"])
	assert.Equal(t, "啊啊啊啊啊啊宝宝你是一个香蕉香蕉的小蛋糕", data["result"])
	assert.EqualValues(t, 2, data["chunks"])

	// The decorated result decodes back as-is.
	rec, data = post(t, h.Decode, "/api/v1/decode", `{"text":"啊啊啊啊啊啊宝宝你是一个香蕉香蕉的小蛋糕"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "A", data["result"])

	// So does the bare encoding.
	rec, data = post(t, h.Decode, "/api/v1/decode", `{"text":"香蕉香蕉"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "A", data["result"])
}

func TestDecode_BadInput(t *testing.T) {
	h := newHandler(t)

	rec, data := post(t, h.Decode, "/api/v1/decode", `{"text":"not words"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, data["error"], "position")

	rec, _ = post(t, h.Decode, "/api/v1/decode", `{broken`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHistory_RecordsOperations(t *testing.T) {
	h := newHandler(t)

	post(t, h.Encode, "/api/v1/encode", `{"text":"hello"}`)
	post(t, h.Decode, "/api/v1/decode", `{"text":"nonsense"}`)

	rec := httptest.NewRecorder()
	h.ListHistory(rec, httptest.NewRequest(http.MethodGet, "/api/v1/history", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var envelope struct {
		Success bool           `json:"success"`
		Data    []db.Operation `json:"data"`
		Meta    struct {
			Total int `json:"total"`
		} `json:"meta"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	require.Equal(t, 2, envelope.Meta.Total)

	// Newest first: the failed decode, then the encode.
	assert.Equal(t, "decode", envelope.Data[0].Op)
	assert.False(t, envelope.Data[0].OK)
	assert.Equal(t, "encode", envelope.Data[1].Op)
	assert.True(t, envelope.Data[1].OK)
	assert.Equal(t, 5, envelope.Data[1].InputChars)
}

func TestStatus(t *testing.T) {
	h := newHandler(t)
	post(t, h.Encode, "/api/v1/encode", `{"text":"hi"}`)

	rec := httptest.NewRecorder()
	h.Status(rec, httptest.NewRequest(http.MethodGet, "/api/v1/status", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var envelope struct {
		Data map[string]interface{} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Equal(t, "test", envelope.Data["version"])
	assert.EqualValues(t, 1, envelope.Data["operations"])
	assert.EqualValues(t, 6, envelope.Data["bit_width"])
}

func TestAlphabet(t *testing.T) {
	h := newHandler(t)

	rec := httptest.NewRecorder()
	h.Alphabet(rec, httptest.NewRequest(http.MethodGet, "/api/v1/alphabet", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var envelope struct {
		Data struct {
			BitWidth  int           `json:"bit_width"`
			PadWord   string        `json:"pad_word"`
			WordCount int           `json:"word_count"`
			Words     []codec.Entry `json:"words"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Equal(t, 6, envelope.Data.BitWidth)
	assert.Equal(t, "的", envelope.Data.PadWord)
	assert.Equal(t, 66, envelope.Data.WordCount)
	assert.Equal(t, "香香", envelope.Data.Words[0].Word)
}

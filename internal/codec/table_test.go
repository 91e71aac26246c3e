package codec

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Validation(t *testing.T) {
	base := func() Config {
		return Config{
			BitWidth: 2,
			PadIndex: 4,
			PadWord:  "p",
			Words:    map[int]string{0: "a", 1: "b", 2: "c", 3: "d"},
		}
	}

	t.Run("valid", func(t *testing.T) {
		_, err := New(base())
		assert.NoError(t, err)
	})

	t.Run("bit width out of range", func(t *testing.T) {
		cfg := base()
		cfg.BitWidth = 0
		_, err := New(cfg)
		assert.Error(t, err)

		cfg.BitWidth = 13
		_, err = New(cfg)
		assert.Error(t, err)
	})

	t.Run("missing pad word", func(t *testing.T) {
		cfg := base()
		cfg.PadWord = ""
		_, err := New(cfg)
		assert.Error(t, err)
	})

	t.Run("pad index inside data range", func(t *testing.T) {
		cfg := base()
		cfg.PadIndex = 3
		cfg.Words = map[int]string{0: "a", 1: "b", 2: "c"}
		_, err := New(cfg)
		assert.Error(t, err)
	})

	t.Run("duplicate word", func(t *testing.T) {
		cfg := base()
		cfg.Words[3] = "a"
		_, err := New(cfg)
		assert.ErrorContains(t, err, "mapped to both")
	})

	t.Run("word collides with pad word", func(t *testing.T) {
		cfg := base()
		cfg.Words[3] = "p"
		_, err := New(cfg)
		assert.ErrorContains(t, err, "pad word")
	})

	t.Run("index collides with pad index", func(t *testing.T) {
		cfg := base()
		cfg.Words[4] = "e"
		_, err := New(cfg)
		assert.ErrorContains(t, err, "pad index")
	})

	t.Run("empty word", func(t *testing.T) {
		cfg := base()
		cfg.Words[3] = ""
		_, err := New(cfg)
		assert.ErrorContains(t, err, "empty word")
	})

	t.Run("negative index", func(t *testing.T) {
		cfg := base()
		cfg.Words[-1] = "z"
		_, err := New(cfg)
		assert.ErrorContains(t, err, "negative")
	})
}

func TestDefaultConfig(t *testing.T) {
	c, err := New(DefaultConfig())
	require.NoError(t, err)

	assert.Equal(t, 6, c.BitWidth())
	assert.Equal(t, "的", c.PadWord())
	// 67 list entries minus the shadowed one at the pad index.
	assert.Equal(t, 66, c.Len())

	entries := c.Entries()
	require.Len(t, entries, 66)
	assert.Equal(t, Entry{Index: 0, Word: "香香"}, entries[0])
	assert.Equal(t, Entry{Index: 16, Word: "香蕉"}, entries[16])
	// The gap entries above the 6-bit range are kept.
	assert.Equal(t, Entry{Index: 64, Word: "绿豆"}, entries[64])
	assert.Equal(t, Entry{Index: 66, Word: "黑豆"}, entries[65])
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "alphabet.json")
	content := `{
		"bit_width": 2,
		"pad_index": 4,
		"pad_word": "pp",
		"words": {"0": "aa", "1": "bb", "2": "cc", "3": "dd"}
	}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	c, err := New(cfg)
	require.NoError(t, err)

	out, err := c.Encode("A") // 01 00 00 01 → bb, pad, pad, bb
	require.NoError(t, err)
	assert.Equal(t, "bbppppbb", out)

	back, err := c.Decode(out)
	require.NoError(t, err)
	assert.Equal(t, "A", back)
}

func TestLoadConfig_Errors(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	bad := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`{"words": {"x": "a"}}`), 0644))
	_, err = LoadConfig(bad)
	assert.ErrorContains(t, err, "not a number")
}

package codec

import (
	"fmt"
	"sort"
)

// Config describes a word alphabet. Words maps data indices to words; the
// pad entry is kept separate so a config cannot silently shadow a data index
// the way a flat mapping would.
type Config struct {
	BitWidth int            `json:"bit_width"`
	PadIndex int            `json:"pad_index"`
	PadWord  string         `json:"pad_word"`
	Words    map[int]string `json:"-"`
}

// New validates cfg and builds a Codec. The returned Codec is immutable and
// safe for concurrent use.
func New(cfg Config) (*Codec, error) {
	if cfg.BitWidth < 1 || cfg.BitWidth > 12 {
		return nil, fmt.Errorf("codec.New: bit width %d out of range 1..12", cfg.BitWidth)
	}
	if cfg.PadWord == "" {
		return nil, fmt.Errorf("codec.New: pad word is required")
	}
	// The pad index must sit outside the chunk value range, otherwise a data
	// chunk could be confused with padding on decode.
	if cfg.PadIndex < 1<<cfg.BitWidth {
		return nil, fmt.Errorf("codec.New: pad index %d inside data range 0..%d", cfg.PadIndex, 1<<cfg.BitWidth-1)
	}

	c := &Codec{
		bitWidth: cfg.BitWidth,
		padIndex: cfg.PadIndex,
		padWord:  cfg.PadWord,
		byIndex:  make(map[int]string, len(cfg.Words)+1),
		byWord:   make(map[string]int, len(cfg.Words)+1),
	}
	for idx, word := range cfg.Words {
		if idx < 0 {
			return nil, fmt.Errorf("codec.New: negative index %d", idx)
		}
		if word == "" {
			return nil, fmt.Errorf("codec.New: empty word for index %d", idx)
		}
		if idx == cfg.PadIndex {
			return nil, fmt.Errorf("codec.New: index %d collides with the pad index", idx)
		}
		if word == cfg.PadWord {
			return nil, fmt.Errorf("codec.New: word %q collides with the pad word", word)
		}
		if prev, dup := c.byWord[word]; dup {
			return nil, fmt.Errorf("codec.New: word %q mapped to both %d and %d", word, prev, idx)
		}
		c.byIndex[idx] = word
		c.byWord[word] = idx
	}
	c.byIndex[cfg.PadIndex] = cfg.PadWord
	c.byWord[cfg.PadWord] = cfg.PadIndex

	// Longest words first so the greedy segmenter prefers the longer match
	// when one word is a prefix of another. Ties break lexicographically to
	// keep segmentation deterministic.
	c.ordered = make([]string, 0, len(c.byWord))
	for word := range c.byWord {
		c.ordered = append(c.ordered, word)
	}
	sort.Slice(c.ordered, func(i, j int) bool {
		if len(c.ordered[i]) != len(c.ordered[j]) {
			return len(c.ordered[i]) > len(c.ordered[j])
		}
		return c.ordered[i] < c.ordered[j]
	})
	return c, nil
}

// BitWidth returns the number of bits each word encodes.
func (c *Codec) BitWidth() int { return c.bitWidth }

// PadWord returns the word used for structural padding and zero chunks.
func (c *Codec) PadWord() string { return c.padWord }

// Len returns the number of data words (pad excluded).
func (c *Codec) Len() int { return len(c.byIndex) - 1 }

// Entry is one index→word pair of the alphabet.
type Entry struct {
	Index int    `json:"index"`
	Word  string `json:"word"`
}

// Entries returns the data alphabet sorted by index, pad excluded.
func (c *Codec) Entries() []Entry {
	entries := make([]Entry, 0, len(c.byIndex)-1)
	for idx, word := range c.byIndex {
		if idx == c.padIndex {
			continue
		}
		entries = append(entries, Entry{Index: idx, Word: word})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Index < entries[j].Index })
	return entries
}

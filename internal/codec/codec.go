// Package codec implements a reversible text-to-word codec: UTF-8 text is
// packed into fixed-width bit chunks and every chunk is rendered as a word
// from a configurable alphabet. Decoding segments the word string greedily
// (longest match first) and unpacks the bits back into text.
//
// Two quirks of the format are load-bearing and deliberately preserved:
//
//   - Any chunk whose value is 0 — genuine zero data or trailing structural
//     padding alike — encodes as the pad word. The word for index 0 is never
//     emitted.
//   - On decode, any reconstructed byte equal to 0x00 is dropped. A NUL byte
//     in the input text therefore does not survive a round trip.
package codec

import (
	"math/bits"
	"strings"
	"unicode/utf8"
)

// Codec holds the bidirectional word table and the active bit width.
// Immutable after New; arbitrarily many goroutines may call Encode and
// Decode on the same instance.
type Codec struct {
	bitWidth int
	padIndex int
	padWord  string
	byIndex  map[int]string
	byWord   map[string]int
	ordered  []string // every word, longest first, for greedy segmentation
}

// Encode maps text to its word-string form. It fails only when a chunk value
// has no word in the table (UndefinedIndexError).
func (c *Codec) Encode(text string) (string, error) {
	mask := uint32(1)<<c.bitWidth - 1
	var sb strings.Builder

	emit := func(chunk uint32) error {
		idx := int(chunk)
		if chunk == 0 {
			idx = c.padIndex
		}
		word, ok := c.byIndex[idx]
		if !ok {
			return &UndefinedIndexError{Index: idx}
		}
		sb.WriteString(word)
		return nil
	}

	var acc uint32
	nbits := 0
	for i := 0; i < len(text); i++ {
		acc = acc<<8 | uint32(text[i])
		nbits += 8
		for nbits >= c.bitWidth {
			nbits -= c.bitWidth
			if err := emit(acc >> nbits & mask); err != nil {
				return "", err
			}
		}
		acc &= uint32(1)<<nbits - 1
	}
	// Structural padding: right-pad the final partial chunk with zero bits.
	if nbits > 0 {
		if err := emit(acc << (c.bitWidth - nbits) & mask); err != nil {
			return "", err
		}
	}
	return sb.String(), nil
}

// Decode maps a word string back to text. It fails with SegmentationError
// (character position included), UnknownWordError, or InvalidTextError.
func (c *Codec) Decode(encoded string) (string, error) {
	indices, err := c.segment(encoded)
	if err != nil {
		return "", err
	}

	var out []byte
	var acc uint32
	nbits := 0
	for _, idx := range indices {
		var v uint32
		if idx != c.padIndex {
			v = uint32(idx)
		}
		// Gap entries above the chunk range contribute their full binary
		// form, not a truncated chunk. Decoding them usually lands on bytes
		// that fail UTF-8 validation below.
		width := c.bitWidth
		if n := bits.Len32(v); n > width {
			width = n
		}
		acc = acc<<width | v
		nbits += width
		for nbits >= 8 {
			nbits -= 8
			// All-zero bytes are dropped, not emitted.
			if b := byte(acc >> nbits); b != 0 {
				out = append(out, b)
			}
		}
		acc &= uint32(1)<<nbits - 1
	}
	// A trailing group shorter than 8 bits is discarded.

	if !utf8.Valid(out) {
		return "", &InvalidTextError{}
	}
	return string(out), nil
}

// segment splits encoded into known words, longest match first at each
// position, and returns their indices in order.
func (c *Codec) segment(encoded string) ([]int, error) {
	var indices []int
	pos := 0 // rune position, for error reporting
	for i := 0; i < len(encoded); {
		matched := false
		for _, word := range c.ordered {
			if strings.HasPrefix(encoded[i:], word) {
				idx, ok := c.byWord[word]
				if !ok {
					return nil, &UnknownWordError{Word: word}
				}
				indices = append(indices, idx)
				i += len(word)
				pos += utf8.RuneCountInString(word)
				matched = true
				break
			}
		}
		if !matched {
			return nil, &SegmentationError{Position: pos}
		}
	}
	return indices, nil
}

package codec

import "fmt"

// UndefinedIndexError is returned by Encode when a chunk value has no word
// in the table. Only possible with an alphabet that leaves gaps inside the
// chunk value range.
type UndefinedIndexError struct {
	Index int
}

func (e *UndefinedIndexError) Error() string {
	return fmt.Sprintf("codec: no word defined for index %d", e.Index)
}

// SegmentationError is returned by Decode when no known word matches at some
// position of the input. Position is the character (rune) index into the
// encoded string.
type SegmentationError struct {
	Position int
}

func (e *SegmentationError) Error() string {
	return fmt.Sprintf("codec: unrecognized sequence at position %d", e.Position)
}

// UnknownWordError is returned by Decode when a matched word has no reverse
// mapping. The segmenter only matches known words, so this is a defensive
// check that should never fire on a well-formed table.
type UnknownWordError struct {
	Word string
}

func (e *UnknownWordError) Error() string {
	return fmt.Sprintf("codec: word %q has no index", e.Word)
}

// InvalidTextError is returned by Decode when the reconstructed bytes are not
// valid UTF-8.
type InvalidTextError struct{}

func (e *InvalidTextError) Error() string {
	return "codec: decoded bytes are not valid UTF-8"
}

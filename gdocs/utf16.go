package gdocs

import "unicode/utf16"

// utf16Len returns the length of s in UTF-16 code units. The Docs API
// addresses content in these units, so characters outside the Basic
// Multilingual Plane count as two.
func utf16Len(s string) int64 {
	return int64(len(utf16.Encode([]rune(s))))
}

// cursor tracks the insertion position while a document is assembled.
// Positions are 1-based code-unit indices and only ever move forward.
type cursor struct {
	pos int64
}

func newCursor() cursor { return cursor{pos: 1} }

// advance moves the cursor past chunk and returns the chunk's length in
// code units.
func (c *cursor) advance(chunk string) int64 {
	n := utf16Len(chunk)
	c.pos += n
	return n
}

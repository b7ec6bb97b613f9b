package decode

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/tsawler/hwp/model"
)

// InsufficientDataError reports a payload shorter than the structure being
// decoded requires.
type InsufficientDataError struct {
	What     string
	Expected int
	Actual   int
}

func (e *InsufficientDataError) Error() string {
	return fmt.Sprintf("decode: %s: need %d bytes, have %d", e.What, e.Expected, e.Actual)
}

// cursor reads little-endian fields from a payload. The first read past the
// end records an *InsufficientDataError; later reads return zero values.
type cursor struct {
	what string
	b    []byte
	pos  int
	err  error
}

func newCursor(what string, b []byte) *cursor {
	return &cursor{what: what, b: b}
}

func (c *cursor) remaining() int { return len(c.b) - c.pos }

// need checks that n more bytes are available.
func (c *cursor) need(n int) bool {
	if c.err != nil {
		return false
	}
	if n < 0 || c.remaining() < n {
		c.err = &InsufficientDataError{What: c.what, Expected: c.pos + n, Actual: len(c.b)}
		return false
	}
	return true
}

// needEach is need(count*size) for counts read from the payload, computed
// in 64 bits so a hostile count cannot wrap to a small length.
func (c *cursor) needEach(count uint32, size int) bool {
	total := int64(count) * int64(size)
	if total <= int64(c.remaining()) {
		return c.need(int(total))
	}
	if c.err == nil {
		expected := int64(c.pos) + total
		if expected > math.MaxInt {
			expected = math.MaxInt
		}
		c.err = &InsufficientDataError{What: c.what, Expected: int(expected), Actual: len(c.b)}
	}
	return false
}

func (c *cursor) take(n int) []byte {
	if !c.need(n) {
		return nil
	}
	b := c.b[c.pos : c.pos+n : c.pos+n]
	c.pos += n
	return b
}

func (c *cursor) skip(n int) { c.take(n) }

func (c *cursor) u8() uint8 {
	b := c.take(1)
	if b == nil {
		return 0
	}
	return b[0]
}

func (c *cursor) u16() uint16 {
	b := c.take(2)
	if b == nil {
		return 0
	}
	return binary.LittleEndian.Uint16(b)
}

func (c *cursor) u32() uint32 {
	b := c.take(4)
	if b == nil {
		return 0
	}
	return binary.LittleEndian.Uint32(b)
}

func (c *cursor) i8() int8   { return int8(c.u8()) }
func (c *cursor) i16() int16 { return int16(c.u16()) }
func (c *cursor) i32() int32 { return int32(c.u32()) }

func (c *cursor) color() model.ColorRef { return model.ColorRef(c.u32()) }

func (c *cursor) point() model.Point {
	return model.Point{X: c.i32(), Y: c.i32()}
}

// str reads a WCHAR count followed by that many UTF-16 code units.
func (c *cursor) str() string {
	n := int(c.u16())
	return model.UTF16String(c.take(2 * n))
}

// rest returns the unread bytes, or nil when nothing is left.
func (c *cursor) rest() []byte {
	if c.err != nil || c.remaining() == 0 {
		return nil
	}
	b := c.b[c.pos:]
	c.pos = len(c.b)
	return b
}

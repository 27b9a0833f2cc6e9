package buffer

import "github.com/wippyai/memory/errors"

// Cursor tracks a view's valid range [start, end) inside its fixed size and the
// current position for relative access.
// Invariant: 0 <= start <= position <= end <= size.
type Cursor struct {
	start    int64
	position int64
	end      int64
	size     int64
}

func newCursor(size int64) Cursor {
	return Cursor{end: size, size: size}
}

// Start returns the first valid offset.
func (c *Cursor) Start() int64 { return c.start }

// Position returns the offset of the next relative get or put.
func (c *Cursor) Position() int64 { return c.position }

// End returns the offset one past the last valid byte.
func (c *Cursor) End() int64 { return c.end }

// Capacity returns end - start.
func (c *Cursor) Capacity() int64 { return c.end - c.start }

// Size returns the fixed extent the cursor may range over.
func (c *Cursor) Size() int64 { return c.size }

// HasRemaining reports whether position < end.
func (c *Cursor) HasRemaining() bool { return c.position < c.end }

// Remaining returns end - position.
func (c *Cursor) Remaining() int64 { return c.end - c.position }

// ResetPosition moves position back to start.
func (c *Cursor) ResetPosition() {
	c.position = c.start
}

// SetPosition moves position within [start, end].
func (c *Cursor) SetPosition(position int64) error {
	if position < c.start || position > c.end {
		return errors.CursorOrder("SetPosition", c.start, position, c.end, c.size)
	}
	c.position = position
	return nil
}

// IncrementPosition advances position by n bytes, staying within [start, end].
func (c *Cursor) IncrementPosition(n int64) error {
	if n < 0 || n > c.end-c.position {
		return errors.CursorOrder("IncrementPosition", c.start, c.position+n, c.end, c.size)
	}
	c.position += n
	return nil
}

// SetStartPositionEnd replaces all three offsets at once.
// Nothing changes if the new triple violates the ordering invariant.
func (c *Cursor) SetStartPositionEnd(start, position, end int64) error {
	if start < 0 || start > position || position > end || end > c.size {
		return errors.CursorOrder("SetStartPositionEnd", start, position, end, c.size)
	}
	c.start, c.position, c.end = start, position, end
	return nil
}

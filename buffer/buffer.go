package buffer

import (
	"bytes"

	"github.com/wippyai/memory"
	"github.com/wippyai/memory/errors"
	"github.com/wippyai/memory/resource"
)

// Buffer is a read-only positional view over a Descriptor.
// Offsets are relative to the view's base; base itself is a descriptor offset.
type Buffer struct {
	desc *resource.Descriptor
	Cursor
	base     int64
	readOnly bool
}

// WritableBuffer adds put, fill, bit and atomic operations to Buffer.
type WritableBuffer struct {
	Buffer
}

// New returns a read-only view over the whole descriptor.
func New(d *resource.Descriptor) *Buffer {
	return &Buffer{desc: d, Cursor: newCursor(d.Capacity()), readOnly: true}
}

// NewWritable returns a writable view over the whole descriptor.
// It fails when the descriptor was marked read-only or has been released.
func NewWritable(d *resource.Descriptor) (*WritableBuffer, error) {
	if !d.IsValid() {
		return nil, errors.Released(errors.PhaseConstruct, "NewWritable")
	}
	if d.IsReadOnly() {
		return nil, errors.ReadOnly(errors.PhaseConstruct, "NewWritable")
	}
	return newWritable(d), nil
}

func newWritable(d *resource.Descriptor) *WritableBuffer {
	return &WritableBuffer{Buffer{desc: d, Cursor: newCursor(d.Capacity())}}
}

// Wrap returns a writable view over a heap array.
func Wrap[T memory.Primitive](arr []T) *WritableBuffer {
	return newWritable(resource.FromArray(arr))
}

// WrapReadOnly returns a read-only view over a heap array.
func WrapReadOnly[T memory.Primitive](arr []T) *Buffer {
	return New(resource.FromArrayReadOnly(arr))
}

// Allocate returns a writable view over fresh zeroed heap storage.
func Allocate(capacity int) (*WritableBuffer, error) {
	d, err := resource.Allocate(capacity)
	if err != nil {
		return nil, err
	}
	return newWritable(d), nil
}

// WrapExternal returns a writable view over a caller-owned buffer.
func WrapExternal(ext resource.External) (*WritableBuffer, error) {
	if ext.ReadOnly {
		return nil, errors.ReadOnly(errors.PhaseConstruct, "WrapExternal")
	}
	d, err := resource.FromBuffer(ext)
	if err != nil {
		return nil, err
	}
	return newWritable(d), nil
}

// WrapExternalReadOnly returns a read-only view over a caller-owned buffer.
func WrapExternalReadOnly(ext resource.External) (*Buffer, error) {
	d, err := resource.FromBuffer(ext)
	if err != nil {
		return nil, err
	}
	return New(d), nil
}

// Descriptor returns the shared descriptor.
func (b *Buffer) Descriptor() *resource.Descriptor { return b.desc }

// Kind returns the backing kind.
func (b *Buffer) Kind() resource.Kind { return b.desc.Kind() }

// Order returns the byte order of the backing.
func (b *Buffer) Order() resource.ByteOrder { return b.desc.Order() }

// IsReadOnly reports whether this view rejects mutation.
func (b *Buffer) IsReadOnly() bool { return b.readOnly }

// IsDirect reports whether the backing lives outside the Go heap.
func (b *Buffer) IsDirect() bool { return b.desc.IsDirect() }

// IsValid reports whether the backing has not been released.
func (b *Buffer) IsValid() bool { return b.desc.IsValid() }

// Array returns the heap array behind the view, or nil for other backings.
func (b *Buffer) Array() any { return b.desc.Array() }

// window returns the bytes [offset, offset+n) after checking validity and
// that the range lies inside [start, end).
func (b *Buffer) window(phase errors.Phase, op string, offset, n int64) ([]byte, error) {
	data, err := b.desc.Bytes()
	if err != nil {
		return nil, errors.Released(phase, op)
	}
	if offset < b.start || n < 0 || offset > b.end || n > b.end-offset {
		return nil, errors.OutOfBounds(phase, op, offset, n, b.start, b.end)
	}
	lo := b.base + offset
	return data[lo : lo+n : lo+n], nil
}

// next returns n bytes at position and advances past them.
func (b *Buffer) next(op string, n int64) ([]byte, error) {
	w, err := b.window(errors.PhaseAccess, op, b.position, n)
	if err != nil {
		return nil, err
	}
	b.position += n
	return w, nil
}

// Region returns a read-only view of capacity bytes starting offset bytes past start.
// The region aliases the same descriptor; its own start and position are 0.
// On a WritableBuffer this still yields a read-only view; use WritableRegion.
func (b *Buffer) Region(offset, capacity int64) (*Buffer, error) {
	base, err := b.regionBase("Region", offset, capacity)
	if err != nil {
		return nil, err
	}
	return &Buffer{desc: b.desc, Cursor: newCursor(capacity), base: base, readOnly: true}, nil
}

func (b *Buffer) regionBase(op string, offset, capacity int64) (int64, error) {
	if !b.desc.IsValid() {
		return 0, errors.Released(errors.PhaseRegion, op)
	}
	span := b.end - b.start
	if offset < 0 || capacity < 0 || offset > span || capacity > span-offset {
		return 0, errors.OutOfBounds(errors.PhaseRegion, op, b.start+offset, capacity, b.start, b.end)
	}
	return b.base + b.start + offset, nil
}

// Duplicate returns a read-only view with an independent copy of the cursor.
func (b *Buffer) Duplicate() *Buffer {
	return &Buffer{desc: b.desc, Cursor: b.Cursor, base: b.base, readOnly: true}
}

// Equal reports whether both views are valid and hold the same bytes in [start, end).
func (b *Buffer) Equal(other *Buffer) bool {
	x, err := b.window(errors.PhaseAccess, "Equal", b.start, b.Capacity())
	if err != nil {
		return false
	}
	y, err := other.window(errors.PhaseAccess, "Equal", other.start, other.Capacity())
	if err != nil {
		return false
	}
	return bytes.Equal(x, y)
}

// Copy transfers length bytes from src at srcOffset to dst at dstOffset.
// Offsets are absolute in each view; overlapping ranges are handled.
func Copy(src *Buffer, srcOffset int64, dst *WritableBuffer, dstOffset, length int64) error {
	from, err := src.window(errors.PhaseRegion, "Copy", srcOffset, length)
	if err != nil {
		return err
	}
	to, err := dst.window(errors.PhaseRegion, "Copy", dstOffset, length)
	if err != nil {
		return err
	}
	copy(to, from)
	return nil
}

// AsReadOnly returns a read-only view with an independent copy of the cursor.
func (b *WritableBuffer) AsReadOnly() *Buffer {
	return b.Duplicate()
}

// WritableRegion is Region for writable views.
func (b *WritableBuffer) WritableRegion(offset, capacity int64) (*WritableBuffer, error) {
	base, err := b.regionBase("WritableRegion", offset, capacity)
	if err != nil {
		return nil, err
	}
	return &WritableBuffer{Buffer{desc: b.desc, Cursor: newCursor(capacity), base: base}}, nil
}

// WritableDuplicate returns a writable view with an independent copy of the cursor.
func (b *WritableBuffer) WritableDuplicate() *WritableBuffer {
	return &WritableBuffer{Buffer{desc: b.desc, Cursor: b.Cursor, base: b.base}}
}

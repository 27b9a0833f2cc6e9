package buffer

import (
	"sync/atomic"
	"unsafe"

	"github.com/wippyai/memory/errors"
)

// The Int64 atomics work on a fixed absolute offset and never move position.
// They are the only operations safe to call from several goroutines on the
// same bytes; each one is a single sync/atomic instruction on the word.

// GetAndAddInt64 adds delta to the int64 at offset and returns the previous value.
func (b *WritableBuffer) GetAndAddInt64(offset, delta int64) (int64, error) {
	p, err := b.word("GetAndAddInt64", offset)
	if err != nil {
		return 0, err
	}
	return atomic.AddInt64(p, delta) - delta, nil
}

// CompareAndSwapInt64 stores update at offset iff the current value equals expect.
func (b *WritableBuffer) CompareAndSwapInt64(offset, expect, update int64) (bool, error) {
	p, err := b.word("CompareAndSwapInt64", offset)
	if err != nil {
		return false, err
	}
	return atomic.CompareAndSwapInt64(p, expect, update), nil
}

// GetAndSetInt64 stores v at offset and returns the previous value.
func (b *WritableBuffer) GetAndSetInt64(offset, v int64) (int64, error) {
	p, err := b.word("GetAndSetInt64", offset)
	if err != nil {
		return 0, err
	}
	return atomic.SwapInt64(p, v), nil
}

// LoadInt64 atomically reads the int64 at offset.
func (b *Buffer) LoadInt64(offset int64) (int64, error) {
	p, err := b.word("LoadInt64", offset)
	if err != nil {
		return 0, err
	}
	return atomic.LoadInt64(p), nil
}

func (b *Buffer) word(op string, offset int64) (*int64, error) {
	w, err := b.window(errors.PhaseAtomic, op, offset, SizeInt64)
	if err != nil {
		return nil, err
	}
	p := unsafe.Pointer(unsafe.SliceData(w))
	if uintptr(p)%SizeInt64 != 0 {
		return nil, errors.Misaligned(op, offset, SizeInt64)
	}
	return (*int64)(p), nil
}

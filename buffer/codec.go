package buffer

import (
	"encoding/binary"
	"math"
	"unsafe"

	"github.com/wippyai/memory"
	"github.com/wippyai/memory/errors"
)

// Primitive sizes in bytes.
const (
	SizeBool    = 1
	SizeByte    = 1
	SizeChar    = 2
	SizeInt16   = 2
	SizeInt32   = 4
	SizeInt64   = 8
	SizeFloat32 = 4
	SizeFloat64 = 8
)

func decBool(b []byte) bool       { return b[0] != 0 }
func decByte(b []byte) byte       { return b[0] }
func decChar(b []byte) uint16     { return binary.NativeEndian.Uint16(b) }
func decInt16(b []byte) int16     { return int16(binary.NativeEndian.Uint16(b)) }
func decInt32(b []byte) int32     { return int32(binary.NativeEndian.Uint32(b)) }
func decInt64(b []byte) int64     { return int64(binary.NativeEndian.Uint64(b)) }
func decFloat32(b []byte) float32 { return math.Float32frombits(binary.NativeEndian.Uint32(b)) }
func decFloat64(b []byte) float64 { return math.Float64frombits(binary.NativeEndian.Uint64(b)) }

func encBool(b []byte, v bool) {
	if v {
		b[0] = 1
	} else {
		b[0] = 0
	}
}
func encByte(b []byte, v byte)       { b[0] = v }
func encChar(b []byte, v uint16)     { binary.NativeEndian.PutUint16(b, v) }
func encInt16(b []byte, v int16)     { binary.NativeEndian.PutUint16(b, uint16(v)) }
func encInt32(b []byte, v int32)     { binary.NativeEndian.PutUint32(b, uint32(v)) }
func encInt64(b []byte, v int64)     { binary.NativeEndian.PutUint64(b, uint64(v)) }
func encFloat32(b []byte, v float32) { binary.NativeEndian.PutUint32(b, math.Float32bits(v)) }
func encFloat64(b []byte, v float64) { binary.NativeEndian.PutUint64(b, math.Float64bits(v)) }

func getScalar[T any](b *Buffer, op string, size int64, dec func([]byte) T) (T, error) {
	w, err := b.next(op, size)
	if err != nil {
		var zero T
		return zero, err
	}
	return dec(w), nil
}

func getScalarAt[T any](b *Buffer, op string, offset, size int64, dec func([]byte) T) (T, error) {
	w, err := b.window(errors.PhaseAccess, op, offset, size)
	if err != nil {
		var zero T
		return zero, err
	}
	return dec(w), nil
}

func putScalar[T any](b *WritableBuffer, op string, size int64, v T, enc func([]byte, T)) error {
	w, err := b.next(op, size)
	if err != nil {
		return err
	}
	enc(w, v)
	return nil
}

func putScalarAt[T any](b *WritableBuffer, op string, offset, size int64, v T, enc func([]byte, T)) error {
	w, err := b.window(errors.PhaseAccess, op, offset, size)
	if err != nil {
		return err
	}
	enc(w, v)
	return nil
}

// Bulk transfers copy the memory image directly: with native order it is
// identical to encoding each element in turn.

func getArray[T memory.Primitive](b *Buffer, op string, dst []T, dstOffset, length int) error {
	if err := checkArray(op, dstOffset, length, len(dst)); err != nil {
		return err
	}
	w, err := b.next(op, int64(length)*sizeOf[T]())
	if err != nil {
		return err
	}
	copy(asBytes(dst[dstOffset:dstOffset+length]), w)
	return nil
}

func putArray[T memory.Primitive](b *WritableBuffer, op string, src []T, srcOffset, length int) error {
	if err := checkArray(op, srcOffset, length, len(src)); err != nil {
		return err
	}
	w, err := b.next(op, int64(length)*sizeOf[T]())
	if err != nil {
		return err
	}
	copy(w, asBytes(src[srcOffset:srcOffset+length]))
	return nil
}

func checkArray(op string, offset, length, n int) error {
	if offset < 0 || length < 0 || offset > n || length > n-offset {
		return errors.ArrayBounds(errors.PhaseAccess, op, offset, length, n)
	}
	return nil
}

func sizeOf[T memory.Primitive]() int64 {
	var zero T
	return int64(unsafe.Sizeof(zero))
}

func asBytes[T memory.Primitive](s []T) []byte {
	if len(s) == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(s))), len(s)*int(sizeOf[T]()))
}

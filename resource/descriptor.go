package resource

import (
	"encoding/binary"
	"fmt"
	"sync/atomic"
	"unsafe"

	"github.com/wippyai/memory"
	"github.com/wippyai/memory/errors"
)

// Kind identifies the physical storage behind a Descriptor.
type Kind uint8

const (
	KindHeap   Kind = iota // Go heap array
	KindBuffer             // caller-owned byte buffer
	KindMapped             // memory-mapped file region
	KindNative             // off-heap allocation
)

func (k Kind) String() string {
	switch k {
	case KindHeap:
		return "heap"
	case KindBuffer:
		return "buffer"
	case KindMapped:
		return "mapped"
	case KindNative:
		return "native"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// ByteOrder is the order a backing declares for its multi-byte values.
type ByteOrder uint8

const (
	OrderUnspecified ByteOrder = iota // treated as native
	LittleEndian
	BigEndian
)

func (o ByteOrder) String() string {
	switch o {
	case OrderUnspecified:
		return "Unspecified"
	case LittleEndian:
		return "LittleEndian"
	case BigEndian:
		return "BigEndian"
	default:
		return fmt.Sprintf("order(%d)", uint8(o))
	}
}

var nativeOrder = func() ByteOrder {
	if binary.NativeEndian.AppendUint16(nil, 1)[0] == 1 {
		return LittleEndian
	}
	return BigEndian
}()

// NativeOrder returns the platform byte order.
func NativeOrder() ByteOrder {
	return nativeOrder
}

// CheckOrder rejects any declared order other than the native one.
func CheckOrder(order ByteOrder) error {
	if order == OrderUnspecified || order == nativeOrder {
		return nil
	}
	return errors.ByteOrderMismatch(order.String(), nativeOrder.String())
}

// Descriptor records where a backing's bytes live, their order and capacity.
// It is shared by every view derived from the same backing. Capacity never
// changes; validity only ever goes from true to false.
type Descriptor struct {
	data     []byte
	array    any
	capacity int64
	valid    atomic.Bool
	kind     Kind
	order    ByteOrder
	readOnly bool
}

func newDescriptor(kind Kind, data []byte, array any, readOnly bool) *Descriptor {
	d := &Descriptor{
		data:     data,
		array:    array,
		capacity: int64(len(data)),
		kind:     kind,
		order:    nativeOrder,
		readOnly: readOnly,
	}
	d.valid.Store(true)
	return d
}

// FromArray describes a heap array. Capacity is len(arr) times the element size.
func FromArray[T memory.Primitive](arr []T) *Descriptor {
	return newDescriptor(KindHeap, arrayBytes(arr), arr, false)
}

// FromArrayReadOnly is FromArray for arrays that no writable view may alias.
func FromArrayReadOnly[T memory.Primitive](arr []T) *Descriptor {
	return newDescriptor(KindHeap, arrayBytes(arr), arr, true)
}

func arrayBytes[T memory.Primitive](arr []T) []byte {
	if len(arr) == 0 {
		return nil
	}
	var zero T
	size := int(unsafe.Sizeof(zero))
	return unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(arr))), len(arr)*size)
}

// Allocate returns a zeroed heap descriptor of n bytes whose base is 8-byte aligned.
func Allocate(n int) (*Descriptor, error) {
	if n < 0 {
		return nil, errors.InvalidInput(errors.PhaseConstruct, fmt.Sprintf("negative capacity %d", n))
	}
	if n == 0 {
		data := []byte{}
		return newDescriptor(KindHeap, data, data, false), nil
	}
	words := make([]uint64, (n+7)/8)
	data := unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(words))), n)
	return newDescriptor(KindHeap, data, data, false), nil
}

// External describes a caller-owned byte buffer.
type External struct {
	Data     []byte
	Order    ByteOrder
	ReadOnly bool
}

// FromBuffer describes a caller-owned buffer. The buffer must use native order.
func FromBuffer(ext External) (*Descriptor, error) {
	if err := CheckOrder(ext.Order); err != nil {
		return nil, err
	}
	return newDescriptor(KindBuffer, ext.Data, nil, ext.ReadOnly), nil
}

// FromMapping describes an already mapped file region.
// The caller owns the mapping and must Invalidate the descriptor before unmapping it.
func FromMapping(data []byte, readOnly bool) *Descriptor {
	return newDescriptor(KindMapped, data, nil, readOnly)
}

// FromNative describes an off-heap allocation.
// The caller owns the allocation and must Invalidate the descriptor before freeing it.
func FromNative(data []byte) *Descriptor {
	return newDescriptor(KindNative, data, nil, false)
}

// Kind returns the backing kind.
func (d *Descriptor) Kind() Kind { return d.kind }

// Order returns the byte order, always the native one.
func (d *Descriptor) Order() ByteOrder { return d.order }

// Capacity returns the total addressable size in bytes.
func (d *Descriptor) Capacity() int64 { return d.capacity }

// IsValid reports whether the backing is still accessible.
func (d *Descriptor) IsValid() bool { return d.valid.Load() }

// IsReadOnly reports whether the backing was marked immutable.
func (d *Descriptor) IsReadOnly() bool { return d.readOnly }

// IsDirect reports whether the bytes live outside the Go heap.
func (d *Descriptor) IsDirect() bool {
	return d.kind == KindMapped || d.kind == KindNative
}

// Array returns the primitive array behind a heap descriptor, or nil.
func (d *Descriptor) Array() any {
	if d.kind != KindHeap {
		return nil
	}
	return d.array
}

// Bytes returns the full addressable window.
func (d *Descriptor) Bytes() ([]byte, error) {
	if !d.valid.Load() {
		return nil, errors.Released(errors.PhaseAccess, "Bytes")
	}
	return d.data, nil
}

// Invalidate marks the backing as released and drops the reference to its bytes.
// It reports whether this call performed the transition.
func (d *Descriptor) Invalidate() bool {
	if !d.valid.CompareAndSwap(true, false) {
		return false
	}
	d.data = nil
	d.array = nil
	return true
}

func (d *Descriptor) String() string {
	state := "valid"
	if !d.IsValid() {
		state = "released"
	}
	mode := "rw"
	if d.readOnly {
		mode = "ro"
	}
	return fmt.Sprintf("%s[%d bytes, %s, %s, %s]", d.kind, d.capacity, d.order, mode, state)
}

package resource

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wippyai/memory/errors"
)

func TestFromArray_Capacity(t *testing.T) {
	tests := []struct {
		name string
		desc *Descriptor
		want int64
	}{
		{"bool", FromArray(make([]bool, 5)), 5},
		{"byte", FromArray(make([]byte, 7)), 7},
		{"char", FromArray(make([]uint16, 3)), 6},
		{"int16", FromArray(make([]int16, 4)), 8},
		{"int32", FromArray(make([]int32, 4)), 16},
		{"int64", FromArray(make([]int64, 4)), 32},
		{"float32", FromArray(make([]float32, 2)), 8},
		{"float64", FromArray(make([]float64, 2)), 16},
		{"empty", FromArray([]int64(nil)), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.desc.Capacity())
			assert.Equal(t, KindHeap, tt.desc.Kind())
			assert.Equal(t, NativeOrder(), tt.desc.Order())
			assert.True(t, tt.desc.IsValid())
			assert.False(t, tt.desc.IsDirect())
		})
	}
}

func TestFromArray_AliasesStorage(t *testing.T) {
	arr := []int32{0, 0}
	d := FromArray(arr)

	b, err := d.Bytes()
	require.NoError(t, err)
	b[0] = 0xff

	assert.NotZero(t, arr[0])
	assert.Equal(t, any(arr), d.Array())
}

func TestFromBuffer(t *testing.T) {
	t.Run("native order", func(t *testing.T) {
		d, err := FromBuffer(External{Data: make([]byte, 16), Order: NativeOrder()})
		require.NoError(t, err)
		assert.Equal(t, KindBuffer, d.Kind())
		assert.Equal(t, int64(16), d.Capacity())
		assert.Nil(t, d.Array())
	})

	t.Run("unspecified order is native", func(t *testing.T) {
		d, err := FromBuffer(External{Data: make([]byte, 4)})
		require.NoError(t, err)
		assert.Equal(t, NativeOrder(), d.Order())
	})

	t.Run("foreign order rejected", func(t *testing.T) {
		foreign := BigEndian
		if NativeOrder() == BigEndian {
			foreign = LittleEndian
		}
		_, err := FromBuffer(External{Data: make([]byte, 4), Order: foreign})
		require.Error(t, err)
		assert.ErrorIs(t, err, errors.ErrByteOrder)
	})

	t.Run("read-only flag kept", func(t *testing.T) {
		d, err := FromBuffer(External{Data: make([]byte, 4), ReadOnly: true})
		require.NoError(t, err)
		assert.True(t, d.IsReadOnly())
	})
}

func TestAllocate(t *testing.T) {
	for _, n := range []int{1, 7, 8, 60, 4096} {
		d, err := Allocate(n)
		require.NoError(t, err)
		assert.Equal(t, int64(n), d.Capacity())

		b, err := d.Bytes()
		require.NoError(t, err)
		assert.Zero(t, uintptr(unsafe.Pointer(&b[0]))%8, "allocation of %d bytes is not 8-byte aligned", n)
		for _, v := range b {
			require.Zero(t, v)
		}
	}

	d, err := Allocate(0)
	require.NoError(t, err)
	assert.Zero(t, d.Capacity())

	_, err = Allocate(-1)
	assert.ErrorIs(t, err, errors.ErrInvalidInput)
}

func TestInvalidate(t *testing.T) {
	d := FromNative(make([]byte, 32))
	assert.True(t, d.IsDirect())

	assert.True(t, d.Invalidate())
	assert.False(t, d.Invalidate(), "second Invalidate must not report a transition")
	assert.False(t, d.IsValid())
	assert.Equal(t, int64(32), d.Capacity(), "capacity is fixed for the descriptor lifetime")

	_, err := d.Bytes()
	assert.ErrorIs(t, err, errors.ErrReleased)
	assert.Contains(t, d.String(), "released")
}

func TestKindAndOrderStrings(t *testing.T) {
	assert.Equal(t, "heap", KindHeap.String())
	assert.Equal(t, "mapped", KindMapped.String())
	assert.Equal(t, "native", KindNative.String())
	assert.Equal(t, "buffer", KindBuffer.String())
	assert.Equal(t, "BigEndian", BigEndian.String())
	assert.Contains(t, FromMapping(make([]byte, 8), true).String(), "ro")
}

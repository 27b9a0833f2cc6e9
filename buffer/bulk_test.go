package buffer_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wippyai/memory/buffer"
)

// bulkCase drives one element type through both the array and the scalar
// accessors of the same view.
type bulkCase[T comparable] struct {
	values   []T
	size     int64
	put      func(*buffer.WritableBuffer, T) error
	get      func(*buffer.WritableBuffer) (T, error)
	putArray func(*buffer.WritableBuffer, []T, int, int) error
	getArray func(*buffer.WritableBuffer, []T, int, int) error
}

func (c bulkCase[T]) run(t *testing.T) {
	n := len(c.values)
	buf := allocate(t, n*int(c.size))

	t.Run("array then scalars", func(t *testing.T) {
		buf.ResetPosition()
		require.NoError(t, buf.Fill(0xa5))
		buf.ResetPosition()
		require.NoError(t, c.putArray(buf, c.values, 0, n))
		assert.Equal(t, int64(n)*c.size, buf.Position())

		buf.ResetPosition()
		for i, want := range c.values {
			got, err := c.get(buf)
			require.NoError(t, err)
			assert.Equal(t, want, got, "element %d", i)
			assert.Equal(t, int64(i+1)*c.size, buf.Position())
		}
	})

	t.Run("scalars then array", func(t *testing.T) {
		buf.ResetPosition()
		require.NoError(t, buf.Fill(0x5a))
		buf.ResetPosition()
		for i, v := range c.values {
			require.NoError(t, c.put(buf, v))
			assert.Equal(t, int64(i+1)*c.size, buf.Position())
		}
		afterScalars := buf.Position()

		buf.ResetPosition()
		got := make([]T, n)
		require.NoError(t, c.getArray(buf, got, 0, n))
		assert.Equal(t, c.values, got)
		assert.Equal(t, afterScalars, buf.Position())
	})
}

func TestBulkMatchesSequential(t *testing.T) {
	cases := map[string]func(*testing.T){
		"bool": bulkCase[bool]{
			values:   []bool{true, false, false, true, true},
			size:     buffer.SizeBool,
			put:      (*buffer.WritableBuffer).PutBool,
			get:      func(b *buffer.WritableBuffer) (bool, error) { return b.GetBool() },
			putArray: (*buffer.WritableBuffer).PutBoolArray,
			getArray: func(b *buffer.WritableBuffer, d []bool, o, l int) error { return b.GetBoolArray(d, o, l) },
		}.run,
		"byte": bulkCase[byte]{
			values:   []byte{0, 1, 0x7f, 0x80, 0xff},
			size:     buffer.SizeByte,
			put:      (*buffer.WritableBuffer).PutByte,
			get:      func(b *buffer.WritableBuffer) (byte, error) { return b.GetByte() },
			putArray: (*buffer.WritableBuffer).PutByteArray,
			getArray: func(b *buffer.WritableBuffer, d []byte, o, l int) error { return b.GetByteArray(d, o, l) },
		}.run,
		"char": bulkCase[uint16]{
			values:   []uint16{'A', 'z', 0, 0xd800, math.MaxUint16},
			size:     buffer.SizeChar,
			put:      (*buffer.WritableBuffer).PutChar,
			get:      func(b *buffer.WritableBuffer) (uint16, error) { return b.GetChar() },
			putArray: (*buffer.WritableBuffer).PutCharArray,
			getArray: func(b *buffer.WritableBuffer, d []uint16, o, l int) error { return b.GetCharArray(d, o, l) },
		}.run,
		"int16": bulkCase[int16]{
			values:   []int16{math.MinInt16, -1, 0, 1, math.MaxInt16},
			size:     buffer.SizeInt16,
			put:      (*buffer.WritableBuffer).PutInt16,
			get:      func(b *buffer.WritableBuffer) (int16, error) { return b.GetInt16() },
			putArray: (*buffer.WritableBuffer).PutInt16Array,
			getArray: func(b *buffer.WritableBuffer, d []int16, o, l int) error { return b.GetInt16Array(d, o, l) },
		}.run,
		"int32": bulkCase[int32]{
			values:   []int32{math.MinInt32, -2, 0, 3, math.MaxInt32},
			size:     buffer.SizeInt32,
			put:      (*buffer.WritableBuffer).PutInt32,
			get:      func(b *buffer.WritableBuffer) (int32, error) { return b.GetInt32() },
			putArray: (*buffer.WritableBuffer).PutInt32Array,
			getArray: func(b *buffer.WritableBuffer, d []int32, o, l int) error { return b.GetInt32Array(d, o, l) },
		}.run,
		"int64": bulkCase[int64]{
			values:   []int64{math.MinInt64, -4, 0, 5, math.MaxInt64},
			size:     buffer.SizeInt64,
			put:      (*buffer.WritableBuffer).PutInt64,
			get:      func(b *buffer.WritableBuffer) (int64, error) { return b.GetInt64() },
			putArray: (*buffer.WritableBuffer).PutInt64Array,
			getArray: func(b *buffer.WritableBuffer, d []int64, o, l int) error { return b.GetInt64Array(d, o, l) },
		}.run,
		"float32": bulkCase[float32]{
			values:   []float32{-math.MaxFloat32, -1.5, 0, math.SmallestNonzeroFloat32, math.MaxFloat32},
			size:     buffer.SizeFloat32,
			put:      (*buffer.WritableBuffer).PutFloat32,
			get:      func(b *buffer.WritableBuffer) (float32, error) { return b.GetFloat32() },
			putArray: (*buffer.WritableBuffer).PutFloat32Array,
			getArray: func(b *buffer.WritableBuffer, d []float32, o, l int) error { return b.GetFloat32Array(d, o, l) },
		}.run,
		"float64": bulkCase[float64]{
			values:   []float64{-math.MaxFloat64, -2.25, 0, math.SmallestNonzeroFloat64, math.MaxFloat64},
			size:     buffer.SizeFloat64,
			put:      (*buffer.WritableBuffer).PutFloat64,
			get:      func(b *buffer.WritableBuffer) (float64, error) { return b.GetFloat64() },
			putArray: (*buffer.WritableBuffer).PutFloat64Array,
			getArray: func(b *buffer.WritableBuffer, d []float64, o, l int) error { return b.GetFloat64Array(d, o, l) },
		}.run,
	}

	for name, run := range cases {
		t.Run(name, run)
	}
}

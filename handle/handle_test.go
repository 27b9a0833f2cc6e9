package handle_test

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	merrors "github.com/wippyai/memory/errors"
	"github.com/wippyai/memory/handle"
	"github.com/wippyai/memory/resource"
)

func testOptions(t *testing.T) (handle.Options, *handle.Registry) {
	t.Helper()
	reg := handle.NewRegistry()
	t.Cleanup(func() { _ = reg.Close() })
	opts := handle.DefaultOptions()
	opts.Registry = reg
	return opts, reg
}

func writeFile(t *testing.T, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data.bin")
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func TestAllocateDirect(t *testing.T) {
	opts, reg := testOptions(t)

	h, err := handle.AllocateDirect(60, opts)
	require.NoError(t, err)
	assert.Equal(t, int64(60), h.Capacity())
	assert.Equal(t, resource.KindNative, h.Kind())
	assert.Equal(t, 1, reg.Len())
	assert.Equal(t, int64(60), reg.Bytes())

	buf, err := h.GetWritable()
	require.NoError(t, err)
	assert.True(t, buf.IsDirect())
	require.NoError(t, buf.PutInt64At(8, -9))

	ro, err := h.Get()
	require.NoError(t, err)
	assert.Same(t, &buf.Buffer, ro)
	v, err := ro.GetInt64At(8)
	require.NoError(t, err)
	assert.Equal(t, int64(-9), v)

	require.NoError(t, h.Release())
	assert.True(t, h.IsReleased())
	assert.Equal(t, 0, reg.Len())
	assert.Equal(t, int64(0), reg.Bytes())
}

func TestAllocateDirectInvalid(t *testing.T) {
	opts, _ := testOptions(t)

	_, err := handle.AllocateDirect(-1, opts)
	require.ErrorIs(t, err, merrors.ErrInvalidInput)

	h, err := handle.AllocateDirect(0, opts)
	require.NoError(t, err)
	buf, err := h.GetWritable()
	require.NoError(t, err)
	assert.Equal(t, int64(0), buf.Capacity())
	require.NoError(t, h.Release())
}

func TestWrappedViewKeepsCursor(t *testing.T) {
	opts, _ := testOptions(t)

	h, err := handle.AllocateDirect(16, opts)
	require.NoError(t, err)
	defer h.Release()

	first, err := h.GetWritable()
	require.NoError(t, err)
	require.NoError(t, first.PutInt64(42))

	second, err := h.GetWritable()
	require.NoError(t, err)
	assert.Same(t, first, second)
	assert.Equal(t, int64(8), second.Position())

	ro, err := h.Get()
	require.NoError(t, err)
	assert.Equal(t, int64(8), ro.Position())
	ro.ResetPosition()
	v, err := ro.GetInt64()
	require.NoError(t, err)
	assert.Equal(t, int64(42), v)
	assert.Equal(t, int64(8), first.Position())
}

func TestReleaseIsTerminal(t *testing.T) {
	opts, _ := testOptions(t)

	h, err := handle.AllocateDirect(32, opts)
	require.NoError(t, err)
	buf, err := h.GetWritable()
	require.NoError(t, err)
	region, err := buf.WritableRegion(8, 8)
	require.NoError(t, err)
	ro := buf.AsReadOnly()

	require.NoError(t, h.Release())

	_, err = buf.GetByte()
	require.ErrorIs(t, err, merrors.ErrReleased)
	require.ErrorIs(t, buf.PutByte(1), merrors.ErrReleased)
	require.ErrorIs(t, region.PutInt32At(0, 1), merrors.ErrReleased)
	_, err = ro.GetInt64At(0)
	require.ErrorIs(t, err, merrors.ErrReleased)
	assert.False(t, buf.IsValid())

	_, err = h.Get()
	require.ErrorIs(t, err, merrors.ErrReleased)
	_, err = h.GetWritable()
	require.ErrorIs(t, err, merrors.ErrReleased)
	require.ErrorIs(t, h.Force(), merrors.ErrReleased)

	require.NoError(t, h.Release())
	require.NoError(t, h.Close())
}

func TestConcurrentRelease(t *testing.T) {
	opts, reg := testOptions(t)
	releases := &recorder{}
	reg.Subscribe(releases)

	h, err := handle.AllocateDirect(16, opts)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = h.Release()
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, releases.count(handle.EventReleased))
	assert.Equal(t, uint64(1), reg.Stats().Released)
}

func TestMapFile(t *testing.T) {
	opts, _ := testOptions(t)
	data := make([]byte, 8192)
	for i := range data {
		data[i] = byte(i)
	}
	path := writeFile(t, data)

	h, err := handle.MapFile(path, 4100, 64, opts)
	require.NoError(t, err)
	assert.Equal(t, resource.KindMapped, h.Kind())
	assert.Equal(t, int64(64), h.Capacity())
	assert.Equal(t, path, h.Source())

	buf, err := h.GetWritable()
	require.NoError(t, err)
	v, err := buf.GetByteAt(0)
	require.NoError(t, err)
	assert.Equal(t, byte(4100%256), v)

	require.NoError(t, buf.PutByteAt(1, 0xaa))
	require.NoError(t, h.Force())
	require.NoError(t, h.Release())

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, byte(0xaa), got[4101])
	assert.Equal(t, byte(4102%256), got[4102])
}

func TestMapWholeFile(t *testing.T) {
	opts, _ := testOptions(t)
	path := writeFile(t, []byte("hello, mapped world"))

	h, err := handle.MapWholeFile(path, opts)
	require.NoError(t, err)
	defer h.Release()

	buf, err := h.Get()
	require.NoError(t, err)
	got := make([]byte, buf.Capacity())
	require.NoError(t, buf.GetByteArray(got, 0, len(got)))
	assert.Equal(t, "hello, mapped world", string(got))
}

func TestMapFileErrors(t *testing.T) {
	opts, reg := testOptions(t)
	path := writeFile(t, make([]byte, 100))

	_, err := handle.MapFile(filepath.Join(t.TempDir(), "missing"), 0, 1, opts)
	require.ErrorIs(t, err, merrors.ErrNotFound)

	_, err = handle.MapFile(path, 90, 11, opts)
	require.ErrorIs(t, err, merrors.ErrOutOfBounds)

	_, err = handle.MapFile(path, 101, 0, opts)
	require.ErrorIs(t, err, merrors.ErrOutOfBounds)

	_, err = handle.MapFile(path, -1, 10, opts)
	require.ErrorIs(t, err, merrors.ErrInvalidInput)

	_, err = handle.MapFile(t.TempDir(), 0, 0, opts)
	require.ErrorIs(t, err, merrors.ErrInvalidInput)

	assert.Equal(t, 0, reg.Len())
}

func TestMapFileReadOnly(t *testing.T) {
	opts, _ := testOptions(t)
	opts.ReadOnly = true
	path := writeFile(t, []byte{1, 2, 3, 4})

	h, err := handle.MapFile(path, 0, 4, opts)
	require.NoError(t, err)
	defer h.Release()

	assert.True(t, h.IsReadOnly())
	_, err = h.GetWritable()
	require.ErrorIs(t, err, merrors.ErrReadOnly)
	require.ErrorIs(t, h.Force(), merrors.ErrReadOnly)

	buf, err := h.Get()
	require.NoError(t, err)
	assert.True(t, buf.IsReadOnly())
	again, err := h.Get()
	require.NoError(t, err)
	assert.Same(t, buf, again)
	v, err := buf.GetByteAt(3)
	require.NoError(t, err)
	assert.Equal(t, byte(4), v)
}

func TestForceOnNative(t *testing.T) {
	opts, _ := testOptions(t)
	h, err := handle.AllocateDirect(8, opts)
	require.NoError(t, err)
	defer h.Release()
	require.ErrorIs(t, h.Force(), merrors.ErrInvalidInput)
}

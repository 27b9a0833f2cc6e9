package handle_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	merrors "github.com/wippyai/memory/errors"
	"github.com/wippyai/memory/handle"
)

func TestUseReleasesOnReturn(t *testing.T) {
	opts, reg := testOptions(t)

	var seen *handle.Handle
	err := handle.WithDirect(16, opts, func(h *handle.Handle) error {
		seen = h
		assert.Equal(t, 1, reg.Len())
		return nil
	})
	require.NoError(t, err)
	require.NotNil(t, seen)
	assert.True(t, seen.IsReleased())
	assert.Equal(t, 0, reg.Len())
}

func TestUseReleasesOnError(t *testing.T) {
	opts, reg := testOptions(t)
	boom := errors.New("boom")

	h, err := handle.AllocateDirect(16, opts)
	err = handle.Use(h, err, func(*handle.Handle) error {
		return boom
	})
	require.ErrorIs(t, err, boom)
	assert.Equal(t, 0, reg.Len())
}

func TestUseReleasesOnPanic(t *testing.T) {
	opts, reg := testOptions(t)

	assert.PanicsWithValue(t, "kaboom", func() {
		_ = handle.WithDirect(16, opts, func(h *handle.Handle) error {
			panic("kaboom")
		})
	})
	assert.Equal(t, 0, reg.Len())
}

func TestUsePassesConstructorError(t *testing.T) {
	opts, _ := testOptions(t)
	called := false
	err := handle.WithFile("/nonexistent/file", 0, 1, opts, func(*handle.Handle) error {
		called = true
		return nil
	})
	require.ErrorIs(t, err, merrors.ErrNotFound)
	assert.False(t, called)
}

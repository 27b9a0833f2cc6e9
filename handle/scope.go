package handle

import (
	stderrors "errors"

	"go.uber.org/zap"
)

// Use runs fn with h and releases h on every exit path, including a panic in
// fn, which is re-raised after the release. It takes a constructor's results
// as they are:
//
//	h, err := handle.AllocateDirect(64, handle.DefaultOptions())
//	err = handle.Use(h, err, func(h *handle.Handle) error {
//		...
//	})
//
// If err is non-nil fn is not called and err is returned.
func Use(h *Handle, err error, fn func(*Handle) error) (result error) {
	if err != nil {
		return err
	}
	defer func() {
		rerr := h.Release()
		if p := recover(); p != nil {
			if rerr != nil {
				Logger().Warn("release after panic failed", zap.Uint64("id", h.id), zap.Error(rerr))
			}
			panic(p)
		}
		result = stderrors.Join(result, rerr)
	}()
	return fn(h)
}

// WithDirect allocates capacity native bytes, runs fn and releases them.
func WithDirect(capacity int64, opts Options, fn func(*Handle) error) error {
	h, err := AllocateDirect(capacity, opts)
	return Use(h, err, fn)
}

// WithFile maps a file range, runs fn and unmaps it.
func WithFile(path string, offset, length int64, opts Options, fn func(*Handle) error) error {
	h, err := MapFile(path, offset, length, opts)
	return Use(h, err, fn)
}

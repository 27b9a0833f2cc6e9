package handle

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/wippyai/memory/buffer"
	"github.com/wippyai/memory/errors"
)

// GrowPolicy supplies a larger backing when a caller needs more than a
// handle's capacity. Returning (nil, nil) declines the request. Views never
// consult the policy on their own; callers ask for growth through Grow.
type GrowPolicy interface {
	RequestCapacity(view *buffer.WritableBuffer, current, required int64) (*Handle, error)
}

// GrowFunc adapts a function to GrowPolicy.
type GrowFunc func(view *buffer.WritableBuffer, current, required int64) (*Handle, error)

// RequestCapacity calls f.
func (f GrowFunc) RequestCapacity(view *buffer.WritableBuffer, current, required int64) (*Handle, error) {
	return f(view, current, required)
}

// DoublingPolicy allocates native memory of twice the current capacity, or
// the required size if that is larger, up to Max bytes. Max <= 0 means no limit.
type DoublingPolicy struct {
	Max     int64
	Options Options
}

// RequestCapacity implements GrowPolicy.
func (p DoublingPolicy) RequestCapacity(_ *buffer.WritableBuffer, current, required int64) (*Handle, error) {
	next := max(current*2, required)
	if p.Max > 0 && next > p.Max {
		if required > p.Max {
			return nil, nil
		}
		next = p.Max
	}
	return AllocateDirect(next, p.Options)
}

// Grow asks h's policy for a backing of at least required bytes, copies h's
// contents into it and releases h. If h already holds required bytes it is
// returned unchanged.
func Grow(h *Handle, required int64) (*Handle, error) {
	if h.IsReleased() {
		return nil, errors.Released(errors.PhaseGrow, "Grow")
	}
	current := h.Capacity()
	if required <= current {
		return h, nil
	}
	if h.grow == nil {
		return nil, declined(current, required, "no grow policy")
	}

	view, err := h.GetWritable()
	if err != nil {
		return nil, err
	}
	next, err := h.grow.RequestCapacity(view, current, required)
	if err != nil {
		return nil, errors.New(errors.PhaseGrow, errors.KindAllocation).
			Op("Grow").
			Cause(err).
			Detail("policy failed for %d bytes", required).
			Build()
	}
	if next == nil {
		return nil, declined(current, required, "policy declined")
	}
	if next.Capacity() < required {
		_ = next.Release()
		return nil, declined(current, required, fmt.Sprintf("policy returned %d bytes", next.Capacity()))
	}

	// Copy through fresh full-span views; the wrapped views may have a
	// caller-narrowed [start, end).
	dst, err := buffer.NewWritable(next.desc)
	if err != nil {
		_ = next.Release()
		return nil, err
	}
	if err := buffer.Copy(buffer.New(h.desc), 0, dst, 0, current); err != nil {
		_ = next.Release()
		return nil, err
	}
	if next.grow == nil {
		next.grow = h.grow
	}
	if err := h.Release(); err != nil {
		Logger().Warn("release after grow failed", zap.Uint64("id", h.id), zap.Error(err))
	}
	Logger().Debug("handle grown",
		zap.Uint64("from", h.id),
		zap.Uint64("to", next.id),
		zap.Int64("capacity", next.Capacity()))
	return next, nil
}

func declined(current, required int64, why string) error {
	return errors.New(errors.PhaseGrow, errors.KindDeclined).
		Op("Grow").
		Value(required).
		Detail("grow from %d to %d bytes: %s", current, required, why).
		Build()
}

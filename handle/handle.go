package handle

import (
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/wippyai/memory/buffer"
	"github.com/wippyai/memory/errors"
	"github.com/wippyai/memory/resource"
)

// Handle owns a native allocation or a file mapping and the one view that
// wraps it. Get and GetWritable hand out that same view, so its cursor is
// kept between calls. Regions taken from it alias the backing until Release,
// after which every one of them fails with errors.KindReleased.
type Handle struct {
	desc     *resource.Descriptor
	view     *buffer.WritableBuffer // nil for read-only backings
	ro       *buffer.Buffer
	registry *Registry
	grow     GrowPolicy
	free     func() error
	flush    func() error
	source   string
	id       uint64
	released atomic.Bool
}

// acquire registers a freshly created backing. On failure the backing is
// freed before returning.
func acquire(desc *resource.Descriptor, source string, free, flush func() error, opts Options) (*Handle, error) {
	h := &Handle{
		desc:     desc,
		ro:       buffer.New(desc),
		registry: opts.registry(),
		grow:     opts.Grow,
		free:     free,
		flush:    flush,
		source:   source,
	}
	if !desc.IsReadOnly() {
		view, err := buffer.NewWritable(desc)
		if err != nil {
			discard(desc, free)
			return nil, err
		}
		h.view = view
		h.ro = &view.Buffer
	}
	if err := h.registry.insert(h); err != nil {
		discard(desc, free)
		return nil, err
	}
	Logger().Debug("handle acquired",
		zap.Uint64("id", h.id),
		zap.String("kind", desc.Kind().String()),
		zap.Int64("capacity", desc.Capacity()),
		zap.String("source", source))
	return h, nil
}

func discard(desc *resource.Descriptor, free func() error) {
	desc.Invalidate()
	if err := free(); err != nil {
		Logger().Warn("free after failed acquisition",
			zap.String("kind", desc.Kind().String()),
			zap.Error(err))
	}
}

// ID returns the registry-assigned identifier.
func (h *Handle) ID() uint64 { return h.id }

// Kind returns the backing kind.
func (h *Handle) Kind() resource.Kind { return h.desc.Kind() }

// Capacity returns the size of the backing in bytes.
func (h *Handle) Capacity() int64 { return h.desc.Capacity() }

// Source names the backing: the file path for mappings, empty otherwise.
func (h *Handle) Source() string { return h.source }

// Descriptor returns the descriptor shared by every view of this handle.
func (h *Handle) Descriptor() *resource.Descriptor { return h.desc }

// GrowPolicy returns the policy the handle was acquired with, or nil.
func (h *Handle) GrowPolicy() GrowPolicy { return h.grow }

// IsReadOnly reports whether the backing rejects writable views.
func (h *Handle) IsReadOnly() bool { return h.desc.IsReadOnly() }

// IsReleased reports whether Release has run.
func (h *Handle) IsReleased() bool { return h.released.Load() }

// Get returns the wrapped view through its read-only surface. For writable
// backings it shares its cursor with the view GetWritable returns.
func (h *Handle) Get() (*buffer.Buffer, error) {
	if h.released.Load() {
		return nil, errors.Released(errors.PhaseConstruct, "Get")
	}
	return h.ro, nil
}

// GetWritable returns the wrapped writable view. It fails with
// errors.KindReadOnly for backings mapped read-only.
func (h *Handle) GetWritable() (*buffer.WritableBuffer, error) {
	if h.released.Load() {
		return nil, errors.Released(errors.PhaseConstruct, "GetWritable")
	}
	if h.view == nil {
		return nil, errors.ReadOnly(errors.PhaseConstruct, "GetWritable")
	}
	return h.view, nil
}

// Force writes modified pages of a writable mapping back to its file.
func (h *Handle) Force() error {
	if h.released.Load() {
		return errors.Released(errors.PhaseAccess, "Force")
	}
	if h.desc.IsReadOnly() {
		return errors.ReadOnly(errors.PhaseAccess, "Force")
	}
	if h.flush == nil {
		return errors.New(errors.PhaseAccess, errors.KindInvalidInput).
			Op("Force").
			Detail("%s backing has no file to flush", h.desc.Kind()).
			Build()
	}
	if err := h.flush(); err != nil {
		return errors.Wrap(errors.PhaseAccess, errors.KindMapping, err, "flush "+h.source)
	}
	return nil
}

// Release invalidates every view and frees the backing. Only the first call
// does anything; later calls return nil.
func (h *Handle) Release() error {
	if !h.released.CompareAndSwap(false, true) {
		return nil
	}
	h.desc.Invalidate()
	h.registry.remove(h)

	if err := h.free(); err != nil {
		Logger().Warn("release failed",
			zap.Uint64("id", h.id),
			zap.String("kind", h.desc.Kind().String()),
			zap.Error(err))
		return errors.Wrap(errors.PhaseRelease, errors.KindMapping, err, "free "+h.desc.Kind().String())
	}
	Logger().Debug("handle released",
		zap.Uint64("id", h.id),
		zap.String("kind", h.desc.Kind().String()),
		zap.Int64("capacity", h.desc.Capacity()))
	return nil
}

// Close is Release, for use as an io.Closer.
func (h *Handle) Close() error {
	return h.Release()
}

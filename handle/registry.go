package handle

import (
	stderrors "errors"
	"sync"

	"go.uber.org/zap"

	"github.com/wippyai/memory/errors"
	"github.com/wippyai/memory/resource"
)

// EventType identifies a handle lifecycle event.
type EventType uint8

const (
	EventAcquired EventType = iota
	EventReleased
)

func (t EventType) String() string {
	if t == EventAcquired {
		return "acquired"
	}
	return "released"
}

// Event describes a handle lifecycle change.
type Event struct {
	Type     EventType
	ID       uint64
	Kind     resource.Kind
	Capacity int64
}

// Observer receives lifecycle events. Callbacks run synchronously on the
// goroutine that acquired or released the handle and must not block.
type Observer interface {
	OnHandleEvent(Event)
}

// Stats is a point-in-time summary of a registry.
type Stats struct {
	Live     int
	Bytes    int64
	Acquired uint64
	Released uint64
}

// Registry tracks outstanding handles. IDs are slot indices and are reused
// once a handle is released.
type Registry struct {
	entries   []*Handle
	freeList  []uint64
	observers []Observer
	bytes     int64
	acquired  uint64
	released  uint64
	live      int
	mu        sync.RWMutex
	obsMu     sync.RWMutex
	closed    bool
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		entries:  make([]*Handle, 0, 16),
		freeList: make([]uint64, 0, 8),
	}
}

var (
	defaultRegistry     *Registry
	defaultRegistryOnce sync.Once
)

// DefaultRegistry returns the registry used when Options.Registry is nil.
func DefaultRegistry() *Registry {
	defaultRegistryOnce.Do(func() {
		defaultRegistry = NewRegistry()
	})
	return defaultRegistry
}

func (r *Registry) insert(h *Handle) error {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return errors.New(errors.PhaseConstruct, errors.KindReleased).
			Op("acquire").
			Detail("registry is closed").
			Build()
	}
	if n := len(r.freeList); n > 0 {
		h.id = r.freeList[n-1]
		r.freeList = r.freeList[:n-1]
		r.entries[h.id-1] = h
	} else {
		r.entries = append(r.entries, h)
		h.id = uint64(len(r.entries))
	}
	r.live++
	r.bytes += h.Capacity()
	r.acquired++
	r.mu.Unlock()

	r.notify(Event{Type: EventAcquired, ID: h.id, Kind: h.Kind(), Capacity: h.Capacity()})
	return nil
}

func (r *Registry) remove(h *Handle) {
	r.mu.Lock()
	idx := h.id - 1
	if h.id == 0 || int(idx) >= len(r.entries) || r.entries[idx] != h {
		r.mu.Unlock()
		return
	}
	r.entries[idx] = nil
	r.freeList = append(r.freeList, h.id)
	r.live--
	r.bytes -= h.Capacity()
	r.released++
	r.mu.Unlock()

	r.notify(Event{Type: EventReleased, ID: h.id, Kind: h.Kind(), Capacity: h.Capacity()})
}

// Lookup returns the outstanding handle with the given ID.
func (r *Registry) Lookup(id uint64) (*Handle, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if id == 0 || int(id) > len(r.entries) {
		return nil, false
	}
	h := r.entries[id-1]
	return h, h != nil
}

// Len returns the number of outstanding handles.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.live
}

// Bytes returns the total capacity of outstanding handles.
func (r *Registry) Bytes() int64 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.bytes
}

// Stats returns the current counters.
func (r *Registry) Stats() Stats {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return Stats{Live: r.live, Bytes: r.bytes, Acquired: r.acquired, Released: r.released}
}

// Each calls fn for every outstanding handle until fn returns false.
// fn runs on a snapshot, so it may release the handle it is given.
func (r *Registry) Each(fn func(*Handle) bool) {
	for _, h := range r.snapshot() {
		if !fn(h) {
			return
		}
	}
}

func (r *Registry) snapshot() []*Handle {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*Handle, 0, r.live)
	for _, h := range r.entries {
		if h != nil {
			out = append(out, h)
		}
	}
	return out
}

// Subscribe adds an observer for lifecycle events.
func (r *Registry) Subscribe(o Observer) {
	r.obsMu.Lock()
	defer r.obsMu.Unlock()
	r.observers = append(r.observers, o)
}

// Unsubscribe removes an observer.
func (r *Registry) Unsubscribe(o Observer) {
	r.obsMu.Lock()
	defer r.obsMu.Unlock()
	for i, obs := range r.observers {
		if obs == o {
			r.observers = append(r.observers[:i], r.observers[i+1:]...)
			return
		}
	}
}

// Close releases every outstanding handle and stops accepting new ones.
// Handles still outstanding at this point are logged as leaked.
func (r *Registry) Close() error {
	r.mu.Lock()
	r.closed = true
	r.mu.Unlock()

	var errs []error
	for _, h := range r.snapshot() {
		Logger().Warn("releasing leaked handle",
			zap.Uint64("id", h.id),
			zap.String("kind", h.Kind().String()),
			zap.Int64("capacity", h.Capacity()),
			zap.String("source", h.source))
		if err := h.Release(); err != nil {
			errs = append(errs, err)
		}
	}
	return stderrors.Join(errs...)
}

func (r *Registry) notify(e Event) {
	r.obsMu.RLock()
	defer r.obsMu.RUnlock()
	for _, o := range r.observers {
		o.OnHandleEvent(e)
	}
}

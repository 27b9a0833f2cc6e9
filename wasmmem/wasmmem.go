package wasmmem

import (
	"github.com/tetratelabs/wazero/api"

	"github.com/wippyai/memory/buffer"
	"github.com/wippyai/memory/errors"
	"github.com/wippyai/memory/resource"
)

// Wrap returns a writable view over the whole of mem.
func Wrap(mem api.Memory) (*buffer.WritableBuffer, error) {
	ext, err := external(mem, false)
	if err != nil {
		return nil, err
	}
	return buffer.WrapExternal(ext)
}

// WrapReadOnly returns a read-only view over the whole of mem.
func WrapReadOnly(mem api.Memory) (*buffer.Buffer, error) {
	ext, err := external(mem, true)
	if err != nil {
		return nil, err
	}
	return buffer.WrapExternalReadOnly(ext)
}

// Rewrap returns view unchanged if it still covers all of mem. Otherwise the
// memory has grown: view and everything derived from it are released and a
// fresh view is returned.
func Rewrap(mem api.Memory, view *buffer.WritableBuffer) (*buffer.WritableBuffer, error) {
	if view != nil && view.IsValid() && mem != nil && view.Descriptor().Capacity() == int64(mem.Size()) {
		return view, nil
	}
	next, err := Wrap(mem)
	if err != nil {
		return nil, err
	}
	if view != nil {
		view.Descriptor().Invalidate()
	}
	return next, nil
}

func external(mem api.Memory, readOnly bool) (resource.External, error) {
	if mem == nil {
		return resource.External{}, errors.InvalidInput(errors.PhaseConstruct, "nil guest memory")
	}
	size := mem.Size()
	data, ok := mem.Read(0, size)
	if !ok {
		return resource.External{}, errors.New(errors.PhaseConstruct, errors.KindMapping).
			Op("Wrap").
			Detail("guest memory read out of bounds: size=%d", size).
			Build()
	}
	return resource.External{Data: data, Order: resource.LittleEndian, ReadOnly: readOnly}, nil
}

package handle

import (
	"fmt"

	"github.com/wippyai/memory/errors"
	"github.com/wippyai/memory/resource"
)

// AllocateDirect reserves capacity bytes outside the Go heap. The contents are
// not guaranteed to be zero.
func AllocateDirect(capacity int64, opts Options) (*Handle, error) {
	if capacity < 0 {
		return nil, errors.InvalidInput(errors.PhaseConstruct, fmt.Sprintf("negative capacity %d", capacity))
	}
	if int64(int(capacity)) != capacity {
		return nil, errors.AllocationFailed(capacity, fmt.Errorf("capacity exceeds address space"))
	}

	if capacity == 0 {
		return acquire(resource.FromNative([]byte{}), "", noop, nil, opts)
	}

	data, free, err := mapNative(int(capacity))
	if err != nil {
		return nil, errors.AllocationFailed(capacity, err)
	}
	return acquire(resource.FromNative(data), "", free, nil, opts)
}

func noop() error { return nil }

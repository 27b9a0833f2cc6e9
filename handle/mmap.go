package handle

import (
	"fmt"
	"os"

	"github.com/edsrzf/mmap-go"

	"github.com/wippyai/memory/errors"
	"github.com/wippyai/memory/resource"
)

// MapFile maps length bytes of the file at path starting at offset.
// The range must lie inside the current file size. With opts.ReadOnly the
// file is opened and mapped without write access.
func MapFile(path string, offset, length int64, opts Options) (*Handle, error) {
	if offset < 0 || length < 0 {
		return nil, errors.InvalidInput(errors.PhaseConstruct,
			fmt.Sprintf("negative map range offset=%d length=%d", offset, length))
	}

	f, size, err := openForMap(path, opts.ReadOnly)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if offset > size || length > size-offset {
		return nil, errors.OutOfBounds(errors.PhaseConstruct, "MapFile", offset, length, 0, size)
	}
	if int64(int(length)) != length {
		return nil, errors.AllocationFailed(length, fmt.Errorf("length exceeds address space"))
	}

	if length == 0 {
		var flush func() error
		if !opts.ReadOnly {
			flush = noop
		}
		return acquire(resource.FromMapping([]byte{}, opts.ReadOnly), path, noop, flush, opts)
	}

	// mmap offsets must be page aligned; map from the enclosing page and
	// slice the requested window out of it.
	page := int64(os.Getpagesize())
	delta := offset % page
	prot := mmap.RDWR
	if opts.ReadOnly {
		prot = mmap.RDONLY
	}
	m, err := mmap.MapRegion(f, int(length+delta), prot, 0, offset-delta)
	if err != nil {
		return nil, errors.Wrap(errors.PhaseConstruct, errors.KindMapping, err, "map "+path)
	}

	var flush func() error
	if !opts.ReadOnly {
		flush = m.Flush
	}
	data := []byte(m[delta : delta+length : delta+length])
	return acquire(resource.FromMapping(data, opts.ReadOnly), path, m.Unmap, flush, opts)
}

// MapWholeFile maps the entire file at path.
func MapWholeFile(path string, opts Options) (*Handle, error) {
	st, err := os.Stat(path)
	if err != nil {
		return nil, statError(path, err)
	}
	return MapFile(path, 0, st.Size(), opts)
}

func openForMap(path string, readOnly bool) (*os.File, int64, error) {
	st, err := os.Stat(path)
	if err != nil {
		return nil, 0, statError(path, err)
	}
	if st.IsDir() {
		return nil, 0, errors.InvalidInput(errors.PhaseConstruct, fmt.Sprintf("%s is a directory", path))
	}
	flag := os.O_RDWR
	if readOnly {
		flag = os.O_RDONLY
	}
	f, err := os.OpenFile(path, flag, 0)
	if err != nil {
		return nil, 0, statError(path, err)
	}
	return f, st.Size(), nil
}

func statError(path string, err error) error {
	if os.IsNotExist(err) {
		return errors.NotFound(errors.PhaseConstruct, "file", path, err)
	}
	return errors.Wrap(errors.PhaseConstruct, errors.KindMapping, err, "open "+path)
}

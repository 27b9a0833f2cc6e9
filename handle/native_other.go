//go:build !(linux || darwin || freebsd || netbsd || openbsd || dragonfly)

package handle

import "github.com/edsrzf/mmap-go"

// mapNative reserves n bytes of anonymous read-write memory.
func mapNative(n int) ([]byte, func() error, error) {
	m, err := mmap.MapRegion(nil, n, mmap.RDWR, mmap.ANON, 0)
	if err != nil {
		return nil, nil, err
	}
	return m, m.Unmap, nil
}

//go:build linux || darwin || freebsd || netbsd || openbsd || dragonfly

package handle

import "golang.org/x/sys/unix"

// mapNative reserves n bytes of anonymous, private, read-write pages.
func mapNative(n int) ([]byte, func() error, error) {
	data, err := unix.Mmap(-1, 0, n, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return nil, nil, err
	}
	return data, func() error { return unix.Munmap(data) }, nil
}

//go:build aix || darwin || dragonfly || freebsd || linux || netbsd || openbsd || solaris

package obj

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

func mapFile(file *os.File, size int64) ([]byte, error) {
	if size <= 0 || int64(int(size)) != size {
		return nil, fmt.Errorf("cannot map %d bytes", size)
	}
	data, err := unix.Mmap(int(file.Fd()), 0, int(size), unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		return nil, fmt.Errorf("failed to map %s: %w", file.Name(), err)
	}
	return data, nil
}

func unmapFile(data []byte) error {
	return unix.Munmap(data)
}

//go:build !(aix || darwin || dragonfly || freebsd || linux || netbsd || openbsd || solaris)

package obj

import "os"

func mapFile(_ *os.File, _ int64) ([]byte, error) {
	return nil, ErrMapUnsupported
}

func unmapFile(_ []byte) error {
	return nil
}

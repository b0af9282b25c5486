//go:build !linux

package regmap

import "errors"

// DevMem — заглушка на не-Linux.
type DevMem struct{}

// OpenDevMem — /dev/mem доступен только на Linux.
func OpenDevMem(base, size uint32) (*DevMem, error) {
	_, _ = base, size
	return nil, errors.New("devmem: not supported on this platform")
}

func (d *DevMem) Read(addr uint32) (uint32, error) { return 0, ErrOutOfRange }

func (d *DevMem) Write(addr, val uint32) error { return ErrOutOfRange }

func (d *DevMem) UpdateBits(addr, mask, val uint32) error { return ErrOutOfRange }

func (d *DevMem) Close() error { return nil }

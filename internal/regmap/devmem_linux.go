//go:build linux

package regmap

import (
	"fmt"
	"os"
	"sync/atomic"
	"unsafe"

	"golang.org/x/sys/unix"
)

// DevMem — окно физической памяти через mmap /dev/mem. Требует root и CONFIG_STRICT_DEVMEM=n
// (или разрешённый диапазон). Адреса Read/Write — смещения от base.
type DevMem struct {
	fd   int
	base uint32
	mem  []byte
}

// OpenDevMem отображает [base, base+size) из /dev/mem; base должен быть выровнен на страницу.
func OpenDevMem(base, size uint32) (*DevMem, error) {
	page := uint32(os.Getpagesize())
	if base%page != 0 {
		return nil, fmt.Errorf("devmem: base %#x not page aligned", base)
	}
	if size == 0 {
		return nil, fmt.Errorf("devmem: zero size")
	}
	size = (size + page - 1) / page * page
	fd, err := unix.Open("/dev/mem", unix.O_RDWR|unix.O_SYNC|unix.O_CLOEXEC, 0)
	if err != nil {
		return nil, fmt.Errorf("devmem open: %w", err)
	}
	mem, err := unix.Mmap(fd, int64(base), int(size), unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	if err != nil {
		unix.Close(fd)
		return nil, fmt.Errorf("devmem mmap %#x+%#x: %w", base, size, err)
	}
	return &DevMem{fd: fd, base: base, mem: mem}, nil
}

func (d *DevMem) word(addr uint32) (*uint32, error) {
	if err := checkAligned(addr); err != nil {
		return nil, err
	}
	if d.mem == nil || uint64(addr)+4 > uint64(len(d.mem)) {
		return nil, fmt.Errorf("%w: %#x (window %#x+%#x)", ErrOutOfRange, addr, d.base, len(d.mem))
	}
	return (*uint32)(unsafe.Pointer(&d.mem[addr])), nil
}

// Read читает регистр по смещению addr.
func (d *DevMem) Read(addr uint32) (uint32, error) {
	p, err := d.word(addr)
	if err != nil {
		return 0, err
	}
	return atomic.LoadUint32(p), nil
}

// Write записывает регистр по смещению addr.
func (d *DevMem) Write(addr, val uint32) error {
	p, err := d.word(addr)
	if err != nil {
		return err
	}
	atomic.StoreUint32(p, val)
	return nil
}

// UpdateBits — read-modify-write (не атомарно относительно других мастеров шины).
func (d *DevMem) UpdateBits(addr, mask, val uint32) error {
	return updateBits(d, addr, mask, val)
}

// Close снимает отображение и закрывает /dev/mem.
func (d *DevMem) Close() error {
	if d.mem == nil {
		return nil
	}
	err := unix.Munmap(d.mem)
	d.mem = nil
	if cerr := unix.Close(d.fd); err == nil {
		err = cerr
	}
	return err
}

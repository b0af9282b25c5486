// Package regmap — доступ к 32-битным регистрам SoC: чтение, запись и маскированное обновление.
//
// Адреса байтовые, регистры выровнены на 4. Бэкенды: Flat (в памяти), DevMem (/dev/mem),
// I2C (мост через periph), Console (U-Boot md.l/mw.l по UART), SSH (busybox devmem).
package regmap

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfRange — адрес вне окна регистров или не выровнен.
	ErrOutOfRange = errors.New("regmap: address out of range")
	// ErrUnknownBackend — неизвестный backend в конфиге.
	ErrUnknownBackend = errors.New("regmap: unknown backend")
)

// Map — пространство 32-битных регистров.
type Map interface {
	Read(addr uint32) (uint32, error)
	Write(addr, val uint32) error
	// UpdateBits записывает old&^mask | val&mask; если значение не меняется, записи нет.
	UpdateBits(addr, mask, val uint32) error
}

// Closer — бэкенд, держащий ресурсы (mmap, порт, сессия).
type Closer interface {
	Map
	Close() error
}

// updateBits — read-modify-write для бэкендов без атомарного обновления.
func updateBits(m Map, addr, mask, val uint32) error {
	old, err := m.Read(addr)
	if err != nil {
		return err
	}
	v := old&^mask | val&mask
	if v == old {
		return nil
	}
	return m.Write(addr, v)
}

func checkAligned(addr uint32) error {
	if addr&3 != 0 {
		return fmt.Errorf("%w: unaligned %#x", ErrOutOfRange, addr)
	}
	return nil
}

// offsetMap — окно внутри большего пространства.
type offsetMap struct {
	m    Map
	base uint32
}

// Offset возвращает вид на m, прибавляющий base к каждому адресу.
func Offset(m Map, base uint32) Map {
	if base == 0 {
		return m
	}
	return &offsetMap{m: m, base: base}
}

func (o *offsetMap) Read(addr uint32) (uint32, error) { return o.m.Read(o.base + addr) }

func (o *offsetMap) Write(addr, val uint32) error { return o.m.Write(o.base+addr, val) }

func (o *offsetMap) UpdateBits(addr, mask, val uint32) error {
	return o.m.UpdateBits(o.base+addr, mask, val)
}

// Field извлекает поле шириной width бит начиная с shift.
func Field(val uint32, shift, width uint) uint32 {
	return (val >> shift) & Mask(width)
}

// Mask возвращает маску из width младших бит.
func Mask(width uint) uint32 {
	if width >= 32 {
		return ^uint32(0)
	}
	return 1<<width - 1
}

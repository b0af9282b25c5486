package regmap

import (
	"encoding/binary"
	"fmt"
	"sync"
	"time"

	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/host/v3"

	"github.com/msm8953-mainline/msm8953ctl/internal/logger"
)

// Transport — транзакция запись+чтение (реализуется *i2c.Dev).
type Transport interface {
	Tx(w, r []byte) error
}

// WaitAfterI2C — пауза после каждой транзакции моста.
var WaitAfterI2C = 50 * time.Microsecond

// I2C — регистры SoC через I2C→AHB мост отладочной платы.
// Чтение: запись [addr BE32], чтение 4 байт BE. Запись: [addr BE32][val BE32].
type I2C struct {
	mu     sync.Mutex
	dev    Transport
	base   uint32
	closer interface{ Close() error }
}

// NewI2C оборачивает готовый транспорт; base прибавляется к адресам.
func NewI2C(dev Transport, base uint32) *I2C {
	return &I2C{dev: dev, base: base}
}

// OpenI2C инициализирует драйверы periph, открывает шину bus и устройство addr.
func OpenI2C(bus string, addr uint16, base uint32) (*I2C, error) {
	log := logger.NewLogger("i2c-" + bus)
	if _, err := host.Init(); err != nil {
		log.Warn("periph host.Init: %v", err)
	}
	b, err := i2creg.Open(bus)
	if err != nil {
		return nil, fmt.Errorf("i2creg.Open %s: %w", bus, err)
	}
	r := NewI2C(&i2c.Dev{Addr: addr, Bus: b}, base)
	r.closer = b
	return r, nil
}

func (r *I2C) tx(w, rd []byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	err := r.dev.Tx(w, rd)
	time.Sleep(WaitAfterI2C)
	return err
}

// Read читает регистр addr.
func (r *I2C) Read(addr uint32) (uint32, error) {
	if err := checkAligned(addr); err != nil {
		return 0, err
	}
	w := binary.BigEndian.AppendUint32(nil, r.base+addr)
	var rd [4]byte
	if err := r.tx(w, rd[:]); err != nil {
		return 0, fmt.Errorf("i2c read %#x: %w", r.base+addr, err)
	}
	return binary.BigEndian.Uint32(rd[:]), nil
}

// Write записывает регистр addr.
func (r *I2C) Write(addr, val uint32) error {
	if err := checkAligned(addr); err != nil {
		return err
	}
	w := binary.BigEndian.AppendUint32(make([]byte, 0, 8), r.base+addr)
	w = binary.BigEndian.AppendUint32(w, val)
	if err := r.tx(w, nil); err != nil {
		return fmt.Errorf("i2c write %#x: %w", r.base+addr, err)
	}
	return nil
}

// UpdateBits — read-modify-write двумя транзакциями.
func (r *I2C) UpdateBits(addr, mask, val uint32) error {
	return updateBits(r, addr, mask, val)
}

// Close закрывает шину, если она была открыта через OpenI2C.
func (r *I2C) Close() error {
	if r.closer == nil {
		return nil
	}
	return r.closer.Close()
}

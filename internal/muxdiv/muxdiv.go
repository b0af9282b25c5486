// Package muxdiv — RCG-подобный клок «мультиплексор + полуцелый делитель» (mux-div).
//
// Регистры блока: CMD_RCGR (+0x0) и CFG_RCGR (+0x4) относительно RegOffset.
// В CFG поле источника [SrcShift, SrcShift+SrcWidth) и поле делителя
// [HidShift, HidShift+HidWidth) со значением div-1. Частота на выходе = parent*2/div,
// то есть div=2 — деление на 1, div=3 — на 1.5.
package muxdiv

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/msm8953-mainline/msm8953ctl/internal/logger"
	"github.com/msm8953-mainline/msm8953ctl/internal/regmap"
)

// Регистры и биты
const (
	CmdRCGR = 0x0
	CfgRCGR = 0x4

	CmdUpdate   = 1 << 0
	CmdDirtyCfg = 1 << 4
	CmdRootOff  = 1 << 31
)

// Параметры ожидания подтверждения обновления
const (
	DefaultPollCount    = 500
	DefaultPollInterval = time.Microsecond
)

var (
	// ErrInvalidArgument — нет родителя с нужной частотой, нет подходящего делителя, неизвестный источник.
	ErrInvalidArgument = errors.New("muxdiv: invalid argument")
	// ErrBusy — бит UPDATE не сбросился за отведённое число опросов.
	ErrBusy = errors.New("muxdiv: update not acknowledged")
	// ErrConfigPending — выставлен DIRTY_CFG, содержимое CFG недостоверно.
	ErrConfigPending = errors.New("muxdiv: configuration pending")
)

// State — этап последней последовательности Program.
type State int

const (
	Idle State = iota
	ConfigWritten
	UpdateRequested
	Committed
	TimedOut
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case ConfigWritten:
		return "config-written"
	case UpdateRequested:
		return "update-requested"
	case Committed:
		return "committed"
	case TimedOut:
		return "timed-out"
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// Device — один mux-div. Поля задаются до первого использования и далее не меняются.
// Операции с регистрами одного Device сериализуются внутренним мьютексом.
type Device struct {
	ClockName string
	Regs      regmap.Map
	RegOffset uint32

	HidWidth uint
	HidShift uint
	SrcWidth uint
	SrcShift uint

	// Parents[i] подключён к источнику ParentMap[i]
	Parents   []Clock
	ParentMap []uint32
	// KeepRateMap[i] — частоту Parents[i] нельзя перестраивать (может быть nil)
	KeepRateMap []bool
	// SetRateParent — разрешено менять частоту родителя (CLK_SET_RATE_PARENT)
	SetRateParent bool

	// Бит включения ветки (0 — ветки нет)
	EnableReg  uint32
	EnableMask uint32

	PollCount    int
	PollInterval time.Duration

	mu    sync.Mutex
	state State
	log   *logger.Logger
}

// Validate проверяет геометрию полей и таблицы родителей.
func (d *Device) Validate() error {
	if d.HidWidth == 0 || d.SrcWidth == 0 {
		return fmt.Errorf("%w: %s: zero field width", ErrInvalidArgument, d.ClockName)
	}
	if d.HidShift+d.HidWidth > 32 || d.SrcShift+d.SrcWidth > 32 {
		return fmt.Errorf("%w: %s: field exceeds register", ErrInvalidArgument, d.ClockName)
	}
	if len(d.Parents) == 0 || len(d.Parents) != len(d.ParentMap) {
		return fmt.Errorf("%w: %s: %d parents, %d map entries", ErrInvalidArgument, d.ClockName, len(d.Parents), len(d.ParentMap))
	}
	if d.KeepRateMap != nil && len(d.KeepRateMap) != len(d.Parents) {
		return fmt.Errorf("%w: %s: keep-rate map length %d", ErrInvalidArgument, d.ClockName, len(d.KeepRateMap))
	}
	if d.Regs == nil {
		return fmt.Errorf("%w: %s: no register map", ErrInvalidArgument, d.ClockName)
	}
	return nil
}

// Name возвращает имя клока.
func (d *Device) Name() string { return d.ClockName }

// MaxDiv — наибольшее значение div, 2^HidWidth.
func (d *Device) MaxDiv() uint32 { return 1 << d.HidWidth }

// State возвращает этап последней последовательности Program.
func (d *Device) State() State {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.state
}

func (d *Device) logger() *logger.Logger {
	if d.log == nil {
		d.log = logger.NewLogger("muxdiv")
	}
	return d.log
}

// ConfigWord возвращает значение и маску CFG для пары (src, div).
func (d *Device) ConfigWord(src, div uint32) (val, mask uint32) {
	val = (div-1)<<d.HidShift | src<<d.SrcShift
	mask = regmap.Mask(d.HidWidth)<<d.HidShift | regmap.Mask(d.SrcWidth)<<d.SrcShift
	return val, mask
}

// Program записывает (src, div) в CFG, выставляет UPDATE и ждёт его сброса.
func (d *Device) Program(src, div uint32) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.program(src, div)
}

func (d *Device) program(src, div uint32) error {
	if div == 0 || div > d.MaxDiv() || src > regmap.Mask(d.SrcWidth) {
		return fmt.Errorf("%w: %s: src %d div %d", ErrInvalidArgument, d.ClockName, src, div)
	}
	d.state = Idle
	val, mask := d.ConfigWord(src, div)
	if err := d.Regs.UpdateBits(d.RegOffset+CfgRCGR, mask, val); err != nil {
		return err
	}
	d.state = ConfigWritten
	if err := d.Regs.UpdateBits(d.RegOffset+CmdRCGR, CmdUpdate, CmdUpdate); err != nil {
		return err
	}
	d.state = UpdateRequested

	count, interval := d.PollCount, d.PollInterval
	if count <= 0 {
		count = DefaultPollCount
	}
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	for ; count > 0; count-- {
		v, err := d.Regs.Read(d.RegOffset + CmdRCGR)
		if err != nil {
			return err
		}
		if v&CmdUpdate == 0 {
			d.state = Committed
			return nil
		}
		time.Sleep(interval)
	}
	d.state = TimedOut
	d.logger().Error("%s: RCG did not update its configuration", d.ClockName)
	return fmt.Errorf("%w: %s", ErrBusy, d.ClockName)
}

// SrcDiv читает текущие источник и делитель (div уже +1).
func (d *Device) SrcDiv() (src, div uint32, err error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.srcDiv()
}

func (d *Device) srcDiv() (src, div uint32, err error) {
	cmd, err := d.Regs.Read(d.RegOffset + CmdRCGR)
	if err != nil {
		return 0, 0, err
	}
	if cmd&CmdDirtyCfg != 0 {
		d.logger().Error("%s: RCG configuration is pending", d.ClockName)
		return 0, 0, fmt.Errorf("%w: %s", ErrConfigPending, d.ClockName)
	}
	cfg, err := d.Regs.Read(d.RegOffset + CfgRCGR)
	if err != nil {
		return 0, 0, err
	}
	src = regmap.Field(cfg, d.SrcShift, d.SrcWidth)
	div = regmap.Field(cfg, d.HidShift, d.HidWidth) + 1
	return src, div, nil
}

// IsRootOff сообщает, выключен ли корень RCG (бит ROOT_OFF).
func (d *Device) IsRootOff() (bool, error) {
	v, err := d.Regs.Read(d.RegOffset + CmdRCGR)
	if err != nil {
		return false, err
	}
	return v&CmdRootOff != 0, nil
}

// Enable включает ветку.
func (d *Device) Enable() error {
	if d.EnableMask == 0 {
		return nil
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.Regs.UpdateBits(d.EnableReg, d.EnableMask, d.EnableMask)
}

// Disable выключает ветку.
func (d *Device) Disable() error {
	if d.EnableMask == 0 {
		return nil
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.Regs.UpdateBits(d.EnableReg, d.EnableMask, 0)
}

// IsEnabled — ветки без бита включения считаются всегда включёнными.
func (d *Device) IsEnabled() (bool, error) {
	if d.EnableMask == 0 {
		return true, nil
	}
	v, err := d.Regs.Read(d.EnableReg)
	if err != nil {
		return false, err
	}
	return v&d.EnableMask == d.EnableMask, nil
}

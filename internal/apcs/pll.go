package apcs

import (
	"errors"
	"fmt"
	"time"

	"github.com/msm8953-mainline/msm8953ctl/internal/regmap"
)

// Регистры Huayra PLL относительно Offset
const (
	pllMode      = 0x00
	pllLVal      = 0x08
	pllAlphaVal  = 0x10
	pllUserCtl   = 0x18
	pllConfigCtl = 0x20
	pllConfigU   = 0x24
	pllTestCtl   = 0x30
	pllTestCtlU  = 0x34

	modeOutCtrl  = 1 << 0
	modeBypassNL = 1 << 1
	modeResetN   = 1 << 2
	modeLockDet  = 1 << 31
)

// Начальная конфигурация HFPLL (выходы main+early, post-div 2)
const (
	configCtlVal   = 0x200d4828
	configCtlUVal  = 0x6
	testCtlVal     = 0x1c000000
	testCtlUVal    = 0x4000
	userCtlMask    = 1<<0 | 1<<3 | 1<<12 | 3<<8
	userCtlVal     = 1<<0 | 1<<3 | 1<<8
	lockPollCount  = 100
	lockPollPeriod = 5 * time.Microsecond
)

// ErrNotLocked — PLL не захватил частоту.
var ErrNotLocked = errors.New("apcs: pll not locked")

// PLL — HFPLL кластера (apcs-hfpll-c0), частота L×XO (+дробная часть alpha).
type PLL struct {
	ClockName string
	Regs      regmap.Map
	Offset    uint32
	XO        uint64
}

func (p *PLL) Name() string { return p.ClockName }

// Rate читает L и alpha; при ошибке чтения 0.
func (p *PLL) Rate() uint64 {
	l, err := p.Regs.Read(p.Offset + pllLVal)
	if err != nil {
		return 0
	}
	a, err := p.Regs.Read(p.Offset + pllAlphaVal)
	if err != nil {
		return 0
	}
	return p.XO*uint64(l) + (p.XO*uint64(a&0xffff))>>16
}

// RoundRate округляет вниз до кратного XO.
func (p *PLL) RoundRate(rate uint64) uint64 {
	return rate - rate%p.XO
}

// SetRate программирует L = rate/XO, alpha = 0.
func (p *PLL) SetRate(rate uint64) error {
	l := rate / p.XO
	if l == 0 || l > 0xffff {
		return fmt.Errorf("apcs: %s: rate %d out of range", p.ClockName, rate)
	}
	if err := p.Regs.Write(p.Offset+pllLVal, uint32(l)); err != nil {
		return err
	}
	return p.Regs.Write(p.Offset+pllAlphaVal, 0)
}

// Configure записывает начальные CONFIG/TEST/USER_CTL.
func (p *PLL) Configure() error {
	for _, w := range []struct{ reg, val uint32 }{
		{pllConfigCtl, configCtlVal},
		{pllConfigU, configCtlUVal},
		{pllTestCtl, testCtlVal},
		{pllTestCtlU, testCtlUVal},
	} {
		if err := p.Regs.Write(p.Offset+w.reg, w.val); err != nil {
			return err
		}
	}
	return p.Regs.UpdateBits(p.Offset+pllUserCtl, userCtlMask, userCtlVal)
}

// Enable: bypass снят, сброс снят, ожидание LOCK_DET, затем выход.
func (p *PLL) Enable() error {
	mode := p.Offset + pllMode
	if err := p.Regs.UpdateBits(mode, modeBypassNL, modeBypassNL); err != nil {
		return err
	}
	if err := p.Regs.UpdateBits(mode, modeResetN, modeResetN); err != nil {
		return err
	}
	locked := false
	for i := 0; i < lockPollCount; i++ {
		v, err := p.Regs.Read(mode)
		if err != nil {
			return err
		}
		if v&modeLockDet != 0 {
			locked = true
			break
		}
		time.Sleep(lockPollPeriod)
	}
	if !locked {
		return fmt.Errorf("%w: %s", ErrNotLocked, p.ClockName)
	}
	return p.Regs.UpdateBits(mode, modeOutCtrl, modeOutCtrl)
}

// IsEnabled — выход PLL включён.
func (p *PLL) IsEnabled() (bool, error) {
	v, err := p.Regs.Read(p.Offset + pllMode)
	if err != nil {
		return false, err
	}
	return v&modeOutCtrl != 0, nil
}

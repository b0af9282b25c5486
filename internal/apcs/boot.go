package apcs

import "github.com/msm8953-mainline/msm8953ctl/internal/regmap"

// BootConfig — значение CFG до появления драйвера: src и сырое поле делителя.
type BootConfig struct {
	Cluster Cluster
	Offset  uint32
	Src     uint32
	Div     uint32
}

// BootTable: c0 и c1 на gpll0 без деления (800 МГц), CCI — 800/2.5.
var BootTable = []BootConfig{
	{C0, C0Offset, 4, 1},
	{C1, C1Offset, 4, 1},
	{CCI, CCIOffset, 4, 4},
}

// EarlyConfigure пишет BootTable напрямую: CFG, бит UPDATE, включение ветки.
// Завершения обновления не ждёт.
func EarlyConfigure(regs regmap.Map) error {
	for _, b := range BootTable {
		if err := regs.Write(b.Offset+0x4, (b.Src&7)<<8|b.Div&0x1f); err != nil {
			return err
		}
		if err := setBit0(regs, b.Offset); err != nil {
			return err
		}
		if err := setBit0(regs, b.Offset+0x8); err != nil {
			return err
		}
	}
	return nil
}

// setBit0 — readl | BIT(0), writel без проверки изменения.
func setBit0(regs regmap.Map, addr uint32) error {
	v, err := regs.Read(addr)
	if err != nil {
		return err
	}
	return regs.Write(addr, v|1)
}

// Simulate готовит Flat к работе без железа: UPDATE у трёх mux-div сбрасывается
// сам после записи, HFPLL сразу сообщает о захвате.
func Simulate(f *regmap.Flat, hfpllOffset uint32) {
	if hfpllOffset == 0 {
		hfpllOffset = HFPLLOffset
	}
	for _, b := range BootTable {
		f.AutoClear(b.Offset, 1)
	}
	f.Set(hfpllOffset+pllMode, f.Get(hfpllOffset+pllMode)|modeLockDet)
}

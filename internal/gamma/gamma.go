// Package gamma строит таблицы гаммы панели Samsung S6E3FA7 (AMS604NL01) из MTP-калибровки.
//
// Для каждого канала R, G, B есть 11 опорных точек (VT, V1 ... V255). Из MTP
// восстанавливаются напряжения точек, по ним строится 256-уровневая шкала серого,
// а для каждого из 74 индексов яркости вычисляются коды точек и упаковываются в 33 байта.
// Вся арифметика целочисленная с фиксированной точкой (22 бита дробной части).
package gamma

import (
	"errors"
	"fmt"
)

// Размеры
const (
	LuminanceMax = 74
	GrayScaleMax = 256
	MTPLen       = 32
	TableLen     = 33

	rgbCompensation = 9
	fpShift         = 22
	vreg            = 27262976 // 6.5 × 2^22
)

// Опорные точки
const (
	VT = iota
	V1
	V7
	V11
	V23
	V35
	V51
	V87
	V151
	V203
	V255
	vMax
)

// Смещения каналов в массивах из 33 элементов
const (
	Red   = 0 * vMax
	Green = 1 * vMax
	Blue  = 2 * vMax
	vRGB  = 3 * vMax
)

var (
	// ErrInvalidArgument — неверный аргумент (длина буфера, канал, уровень).
	ErrInvalidArgument = errors.New("gamma: invalid argument")
	// ErrInvalidLength — длина MTP или выходного буфера.
	ErrInvalidLength = fmt.Errorf("%w: invalid length", ErrInvalidArgument)
)

var inflection = [vMax]int{0, 1, 7, 11, 23, 35, 51, 87, 151, 203, 255}

var centerGamma = [vRGB]int{
	0x0, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x100,
	0x0, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x100,
	0x0, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x100,
}

// {числитель, знаменатель} кода точки
var fraction = [vMax][2]int{
	{0, 860},   // VT
	{0, 256},   // V1
	{64, 320},  // V7
	{64, 320},  // V11
	{64, 320},  // V23
	{64, 320},  // V35
	{64, 320},  // V51
	{64, 320},  // V87
	{64, 320},  // V151
	{64, 320},  // V203
	{129, 860}, // V255
}

// Context — результат разбора MTP. После New не изменяется и безопасен
// для одновременного чтения.
type Context struct {
	offsets   [vRGB]int
	rgbOut    [vRGB]int
	grayscale [GrayScaleMax * 3]int
	generated [LuminanceMax][TableLen]byte
}

// New разбирает 32 байта MTP и заранее строит все 74 таблицы.
func New(mtp []byte) (*Context, error) {
	if len(mtp) != MTPLen {
		return nil, fmt.Errorf("%w: mtp %d bytes, want %d", ErrInvalidLength, len(mtp), MTPLen)
	}
	c := &Context{}
	c.sortMTP(mtp)
	for _, comp := range []int{Red, Green, Blue} {
		c.voltages(comp)
		c.grayScale(comp)
	}
	for i := 0; i < LuminanceMax; i++ {
		c.generated[i] = c.generate(i)
	}
	return c, nil
}

// Gamma копирует готовую таблицу index (ограничивается [0, 73]) в out.
func (c *Context) Gamma(index int, out []byte) error {
	if len(out) != TableLen {
		return fmt.Errorf("%w: output %d bytes, want %d", ErrInvalidLength, len(out), TableLen)
	}
	t := c.Table(index)
	copy(out, t[:])
	return nil
}

// Table возвращает готовую таблицу index (ограничивается [0, 73]).
func (c *Context) Table(index int) [TableLen]byte {
	return c.generated[clampIndex(index)]
}

// Generate пересчитывает таблицу index заново.
func (c *Context) Generate(index int, out []byte) error {
	if len(out) != TableLen {
		return fmt.Errorf("%w: output %d bytes, want %d", ErrInvalidLength, len(out), TableLen)
	}
	t := c.generate(clampIndex(index))
	copy(out, t[:])
	return nil
}

// Offsets — MTP-смещения точек (R, G, B по 11).
func (c *Context) Offsets() [vRGB]int { return c.offsets }

// Voltages — восстановленные напряжения точек в единицах 2^-22 В.
func (c *Context) Voltages() [vRGB]int { return c.rgbOut }

// Grayscale — напряжение уровня level (0..255) канала channel (Red, Green, Blue или 0..2).
func (c *Context) Grayscale(channel, level int) (int, error) {
	switch channel {
	case Green:
		channel = 1
	case Blue:
		channel = 2
	}
	if channel < 0 || channel > 2 || level < 0 || level >= GrayScaleMax {
		return 0, fmt.Errorf("%w: channel %d level %d", ErrInvalidArgument, channel, level)
	}
	return c.grayscale[channel*GrayScaleMax+level], nil
}

func clampIndex(i int) int {
	if i < 0 {
		return 0
	}
	if i >= LuminanceMax {
		return LuminanceMax - 1
	}
	return i
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// signMagnitude: бит 7 — знак, биты 6..0 — модуль.
func signMagnitude(b byte) int {
	if b&0x80 != 0 {
		return -int(b & 0x7f)
	}
	return int(b)
}

// sortMTP раскладывает MTP по точкам. Байт 0: VT красного (старший полубайт) и знаки V255;
// байт 1: VT зелёного и синего; байты 2..4: модули V255; далее V203..V1 тройками RGB.
func (c *Context) sortMTP(p []byte) {
	sign := func(bit byte) int {
		if p[0]&bit != 0 {
			return -1
		}
		return 1
	}
	c.offsets[V255+Red] = int(p[2]) * sign(0x04)
	c.offsets[V255+Green] = int(p[3]) * sign(0x02)
	c.offsets[V255+Blue] = int(p[4]) * sign(0x01)

	n := 5
	for i := V203; i > VT; i-- {
		for _, comp := range []int{Red, Green, Blue} {
			c.offsets[i+comp] = signMagnitude(p[n])
			n++
		}
	}

	c.offsets[VT+Red] = signMagnitude(p[0] >> 4)
	c.offsets[VT+Green] = signMagnitude(p[1] >> 4)
	c.offsets[VT+Blue] = signMagnitude(p[1] & 0x0f)
}

func vtCoefficient(m int) int {
	switch {
	case m <= 9:
		return 12 * m
	case m <= 14:
		return 10*m + 38
	}
	return 10*m + 36
}

// voltages восстанавливает напряжения точек канала сверху вниз.
func (c *Context) voltages(comp int) {
	out := &c.rgbOut
	out[VT+comp] = gammaVoltage(vreg, 0, vtCoefficient(c.offsets[VT+comp]), fraction[VT])
	out[V255+comp] = gammaVoltage(vreg, 0, c.offsets[V255+comp]+centerGamma[V255+comp], fraction[V255])
	for i := V203; i >= V11; i-- {
		out[i+comp] = gammaVoltage(out[VT+comp], out[i+comp+1], c.offsets[i+comp]+centerGamma[i+comp], fraction[i])
	}
	for i := V7; i >= V1; i-- {
		out[i+comp] = gammaVoltage(vreg, out[i+comp+1], c.offsets[i+comp]+centerGamma[i+comp], fraction[i])
	}
}

// grayScale заполняет 256 уровней канала: точки — напрямую, между ними линейно.
func (c *Context) grayScale(comp int) {
	g := c.grayscale[GrayScaleMax*comp/vMax:][:GrayScaleMax]
	g[0] = vreg
	for i := 1; i < vMax; i++ {
		g[inflection[i]] = c.rgbOut[i+comp]
	}
	vi, cal := V1, 0
	for n := 0; n < GrayScaleMax; n++ {
		if n == inflection[vi] {
			cal = 1
			vi++
			continue
		}
		den := inflection[vi] - inflection[vi-1]
		g[n] = grayScaleVoltage(g[inflection[vi-1]], g[inflection[vi]], den-cal, den)
		cal++
	}
}

// generate вычисляет и упаковывает таблицу для индекса яркости index.
func (c *Context) generate(index int) [TableLen]byte {
	var gm [vRGB]int
	if index == LuminanceMax-1 {
		gm = centerGamma
	} else {
		mg := &grayOffsets[index]
		for ci, comp := range []int{Red, Green, Blue} {
			g := c.grayscale[GrayScaleMax*comp/vMax:][:GrayScaleMax]

			gm[V255+comp] = v255Code(vreg, g[mg[V255]], fraction[V255])
			for i := V203; i >= V11; i-- {
				gm[i+comp] = otherCode(c.rgbOut[VT+comp], g[mg[i]], g[mg[i+1]], fraction[i])
			}
			for i := V7; i >= V1; i-- {
				gm[i+comp] = otherCode(vreg, g[mg[i]], g[mg[i+1]], fraction[i])
			}
			gm[VT+comp] = 0

			var shift *[rgbCompensation]int8
			switch ci {
			case 0:
				shift = &redOffsets[index]
			case 1:
				shift = &greenOffsets[index]
			default:
				shift = &blueOffsets[index]
			}
			for i := 0; i < rgbCompensation; i++ {
				gm[V255-i+comp] += int(shift[i])
			}

			gm[V255+comp] = clamp(gm[V255+comp]-c.offsets[V255+comp], 0, 0xffff)
			for i := V203; i >= V1; i-- {
				gm[i+comp] = clamp(gm[i+comp]-c.offsets[i+comp], 0, 0xff)
			}
		}
	}
	return pack(&gm)
}

// pack: байт 0 — VT красного и старшие биты V255, байт 1 — VT зелёного/синего,
// 2, 3, 5 — младшие байты V255, 4 — ноль, далее V203..V1 тройками RGB.
func pack(gm *[vRGB]int) [TableLen]byte {
	var o [TableLen]byte
	o[0] = byte((gm[VT+Red] & 0x0f) << 4)
	o[1] = byte((gm[VT+Green]&0x0f)<<4 | gm[VT+Blue]&0x0f)
	o[0] |= byte(gm[V255+Red]>>6&4 | gm[V255+Green]>>7&2 | gm[V255+Blue]>>8&1)
	o[2] = byte(gm[V255+Red])
	o[3] = byte(gm[V255+Green])
	o[4] = 0
	o[5] = byte(gm[V255+Blue])
	for i := V203; i >= V1; i-- {
		k := (V203 - i) * 3
		o[6+k] = byte(gm[i+Red])
		o[7+k] = byte(gm[i+Green])
		o[8+k] = byte(gm[i+Blue])
	}
	return o
}

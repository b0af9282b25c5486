package muxdiv

// Clock — источник тактирования: имя, текущая частота и ближайшая достижимая.
type Clock interface {
	Name() string
	Rate() uint64
	RoundRate(rate uint64) uint64
}

// Fixed — клок с неизменной частотой (XO, GPLL0 early).
type Fixed struct {
	ClockName string
	Hz        uint64
}

func (f *Fixed) Name() string { return f.ClockName }

func (f *Fixed) Rate() uint64 { return f.Hz }

// RoundRate всегда возвращает собственную частоту.
func (f *Fixed) RoundRate(uint64) uint64 { return f.Hz }

// multFrac — x*n/d без переполнения промежуточного произведения.
func multFrac(x, n, d uint64) uint64 {
	q := x / d
	r := x % d
	return q*n + r*n/d
}

func divRoundUp(n, d uint64) uint64 {
	return (n + d - 1) / d
}

func absDiff(a, b uint64) uint64 {
	if a > b {
		return a - b
	}
	return b - a
}

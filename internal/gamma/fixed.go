package gamma

// Формулы в 64-битной беззнаковой арифметике с переполнением по модулю 2^64;
// результат усекается до int32, как у регистра панели.

// gammaVoltage: V = base - (base - next) × (gamma + num) / den.
func gammaVoltage(base, next, gamma int, f [2]int) int {
	v1 := uint64(int64(base - next))
	v2 := uint64(int64(f[0]+gamma)) << fpShift
	v2 /= uint64(f[1])
	v3 := (v1 * v2) >> fpShift
	return int(int32(uint64(int64(base)) - v3))
}

// v255Code: (vreg - gray) × den / vreg - num.
func v255Code(ref, gray int, f [2]int) int {
	v1 := uint64(int64(ref - gray))
	v2 := v1 * uint64(f[1])
	v2 /= uint64(uint32(ref))
	return int(int32(v2 - uint64(f[0])))
}

// otherCode: (base - gray) × den / (base - next) - num, деление модулей со знаком отдельно.
func otherCode(base, gray, next int, f [2]int) int {
	gs, ns := int64(1), int64(1)
	if base-gray < 0 {
		gs = -1
	}
	if base-next < 0 {
		ns = -1
	}
	v2 := int64(base-gray) * int64(f[1]) * gs
	v3 := int64(base-next) * ns
	var q int64
	if d := uint32(v3); d != 0 {
		q = int64(uint64(v2) / uint64(d))
	}
	q *= gs * ns
	return int(int32(q - int64(f[0])))
}

// grayScaleVoltage: down + (up - down) × num / den.
func grayScaleVoltage(up, down, num, den int) int {
	v1 := uint64(int64(up - down))
	v2 := (v1 * uint64(int64(num))) << fpShift
	v2 /= uint64(int64(den))
	v2 >>= fpShift
	v2 += uint64(int64(down))
	return int(int32(v2))
}

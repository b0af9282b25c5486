package gamma

// Компенсация цвета для V255..V7 (9 точек, от верхней к нижней) по индексу яркости.
var redOffsets = [LuminanceMax][rgbCompensation]int8{
	{-5, -2, -5, -14, -22, -19, -22, -23, -13},
	{-3, -2, -3, -11, -21, -19, -24, -25, -13},
	{-2, -2, -3, -11, -20, -19, -22, -24, -13},
	{-1, -2, -3, -10, -20, -20, -21, -24, -13},
	{0, -1, -3, -9, -20, -20, -22, -24, -13},
	{0, -1, -3, -7, -20, -18, -22, -25, -13},
	{0, -1, -3, -7, -18, -15, -20, -20, -10},
	{0, -1, -3, -6, -16, -15, -17, -20, -10},
	{0, -1, -3, -6, -14, -11, -16, -16, -9},
	{0, 0, -3, -4, -14, -9, -16, -15, -9},
	{0, 0, -3, -4, -13, -10, -16, -11, -8},
	{0, 0, -3, -4, -13, -10, -14, -11, -8},
	{0, 0, -3, -4, -13, -10, -14, -9, -8},
	{1, 0, -3, -4, -13, -10, -14, -9, -8},
	{1, 0, -2, -4, -13, -10, -12, -7, -7},
	{1, 0, -2, -4, -12, -10, -13, -9, -7},
	{1, 0, -2, -3, -11, -10, -13, -10, -7},
	{0, 0, -2, -3, -11, -9, -13, -12, -7},
	{1, 0, -2, -3, -7, -11, -11, -15, -7},
	{1, 0, -2, -3, -7, -11, -12, -11, -7},
	{1, 0, -2, -2, -7, -10, -11, -12, -7},
	{1, 0, -1, -2, -7, -7, -10, -13, -7},
	{1, 0, -1, -2, -6, -6, -8, -15, -7},
	{1, 0, -1, -2, -6, -6, -9, -15, -4},
	{1, 0, -1, -2, -4, -7, -10, -15, -4},
	{1, 0, -1, -2, -4, -5, -10, -14, -5},
	{1, 0, -1, -2, -4, -5, -10, -16, -5},
	{1, 0, -1, -2, -4, -5, -11, -14, -4},
	{1, 0, -1, -2, -5, -5, -11, -14, -4},
	{1, 0, -1, -2, -5, -4, -11, -15, -5},
	{1, 0, -1, -2, -2, -3, -9, -15, -5},
	{1, 0, -1, -2, -2, -3, -7, -13, -3},
	{1, 0, -1, -2, -2, -3, -7, -11, -3},
	{1, 0, -1, -2, -2, -3, -7, -11, -5},
	{1, 0, -1, -1, -3, -4, -6, -15, -3},
	{1, 0, -1, -2, -2, -2, -7, -15, -5},
	{0, 0, -1, -1, -2, -3, -9, -15, -4},
	{1, 0, -1, -1, -2, -4, -5, -16, -4},
	{1, 0, -2, -1, -1, -3, -8, -18, -2},
	{1, 0, -1, -1, -2, -5, -6, -18, -1},
	{1, 0, -2, 1, -2, -4, -4, -14, -6},
	{0, 1, 0, -1, -3, -1, -4, -13, -8},
	{1, 0, -1, 0, -1, -5, -3, -13, -8},
	{0, 0, 0, 0, -2, -1, -6, -16, -5},
	{1, 0, -1, 0, -1, -2, -4, -16, -5},
	{0, 1, 0, -1, -1, -1, -2, -16, -6},
	{0, 0, -1, -1, -2, -1, -3, -13, -6},
	{1, 1, -1, -2, -2, 0, -3, -14, -6},
	{0, 0, 0, 0, -3, 0, -5, -15, -8},
	{0, 1, -1, 0, -2, -1, -2, -15, -11},
	{-1, 0, 0, -1, 0, 1, -6, -12, -11},
	{-1, 0, -1, 1, -1, -1, -4, -11, -11},
	{-1, 1, 0, 0, 0, 0, -1, -8, -11},
	{0, 1, 1, -1, -2, -1, 0, -8, -10},
	{0, 1, 0, -1, -1, 0, 0, -7, -13},
	{0, 1, 0, -1, -1, -1, -1, -9, -5},
	{0, 0, 0, 0, 0, 0, -2, -8, -3},
	{0, 0, 0, 0, 0, 0, 1, -7, -4},
	{-1, 0, 1, 1, 0, 0, -2, -5, -4},
	{0, 0, 0, 0, -1, -1, 0, -5, -5},
	{0, 0, 0, 0, 1, -1, 0, -7, -7},
	{0, 0, 0, 0, 0, 1, -2, -2, -8},
	{1, 0, 0, -1, 0, 1, 1, -2, -9},
	{0, 0, 0, 1, 0, 0, -3, 0, -5},
	{0, 0, 1, 0, 0, 0, -3, 0, 0},
	{1, -1, 0, 0, 1, 2, -4, 0, -2},
	{0, 0, 0, 0, 0, 0, 0, 0, 0},
	{0, 0, 0, 0, 0, 0, 0, 0, 0},
	{0, 0, 0, 0, 0, 0, 0, 0, -1},
	{0, 0, 1, -1, 0, 0, 0, 0, 0},
	{0, 0, 0, 0, 0, 0, 0, 0, 0},
	{0, 0, 0, 0, 0, 0, 0, 0, 0},
	{0, 0, 0, 0, 0, 0, 0, 0, 0},
	{0, 0, 0, 0, 0, 0, 0, 0, 0},
}

var greenOffsets = [LuminanceMax][rgbCompensation]int8{
	{0, 1, 1, 1, -1, -1, -8, -3, -6},
	{0, 1, 0, 0, -4, -3, -8, -5, -6},
	{0, 1, -1, -1, -2, -3, -9, -7, -6},
	{0, 0, -1, 0, -5, -6, -2, -7, -6},
	{0, 0, -1, 0, -5, -6, -5, -7, -6},
	{0, 0, -1, -1, -5, -6, -7, -8, -6},
	{0, 0, -1, -1, -5, -2, -5, -8, -6},
	{0, 0, -1, -1, -4, -2, -4, -8, -6},
	{0, 0, -1, -1, -3, 0, -3, -6, -5},
	{0, 1, -1, -1, -2, 2, -4, -5, -5},
	{0, 1, -1, -1, -1, 1, -4, 0, -4},
	{0, 1, -1, -1, -1, 0, -3, 0, -4},
	{0, 1, -1, -1, -2, 0, -3, 0, -4},
	{0, 1, -1, -1, -2, 0, -3, 0, -4},
	{0, 1, 0, -1, -2, 0, 0, 2, -3},
	{0, 1, 0, -1, -2, -1, -1, 2, -5},
	{0, 1, 0, -1, -1, -1, -2, 1, -5},
	{0, 1, 0, -1, -2, 1, -4, 0, -5},
	{0, 1, -1, 0, 1, -3, 0, -3, -5},
	{0, 1, -1, 0, 0, -3, -1, 2, -5},
	{0, 1, -1, 0, 0, -1, 0, 1, -5},
	{0, 1, 0, 0, 0, 1, 1, 0, -5},
	{0, 1, 0, 0, 0, 3, 2, 1, -5},
	{0, 1, 0, -1, 0, 2, 1, 1, 1},
	{0, 1, 0, -1, 2, 0, 0, -1, 1},
	{0, 1, 0, -1, 2, 2, 1, 0, 0},
	{0, 1, 0, -1, 1, 2, 0, -2, 0},
	{0, 1, 0, -1, 0, 2, -1, 2, 1},
	{0, 1, 0, -1, -1, 1, -1, 2, 1},
	{0, 1, 0, -1, -1, 1, -2, 0, 0},
	{0, 1, 0, -2, 2, 2, -2, 0, -1},
	{0, 1, 0, -2, 1, 1, 1, 2, 1},
	{0, 1, 0, -2, 1, 1, 1, 4, 1},
	{0, 1, 0, -2, 1, 0, 1, 3, 0},
	{0, 1, 0, -2, 1, 0, 0, 1, 0},
	{0, 1, 0, -2, 0, 1, -1, 0, -1},
	{0, 0, 0, -1, 0, -1, -3, 0, -2},
	{0, 1, 0, -1, 0, -2, 2, -1, -1},
	{0, 0, -1, -1, 1, 0, -2, -3, 4},
	{0, 1, 0, -1, 0, -3, 0, -2, 4},
	{0, 1, 0, 0, 1, -2, 1, 1, -2},
	{0, 1, 0, -1, 0, 1, 1, 1, -2},
	{0, 0, 0, 0, 1, -1, 1, 2, -3},
	{0, 0, 0, 0, 1, 1, -2, -2, 3},
	{0, 0, 0, 0, 0, 1, -1, -1, 2},
	{0, 1, 0, -1, 0, 2, 0, -2, 2},
	{0, 0, 0, -1, -2, 0, 1, 1, 2},
	{0, 0, 0, -1, -1, 2, 2, 0, 1},
	{0, 0, 0, 0, -1, 1, -2, -2, -1},
	{0, 0, 0, 0, -1, 0, 1, -4, -1},
	{0, 0, 0, 0, 0, 2, -3, 0, -1},
	{0, -1, 0, 1, -1, 1, -1, 0, 0},
	{0, 0, 1, 0, 1, 1, 2, 2, -1},
	{0, 0, 1, 0, 0, 0, 3, 3, -1},
	{0, 0, 0, 0, 1, 1, 2, 1, -2},
	{0, 0, 0, 0, 1, -1, 1, 0, 2},
	{0, 0, 0, 0, 1, 0, 1, 2, 2},
	{0, 0, 0, 0, 0, 1, 3, 2, 1},
	{0, 0, 0, 1, 0, 1, -1, 3, 2},
	{0, 0, 0, 0, 0, 1, 2, 2, 0},
	{0, 0, 0, 0, 0, 2, 1, 1, -2},
	{0, 0, 0, 0, 0, 1, -1, 2, -3},
	{0, 0, 0, 0, 0, 1, 2, 1, -4},
	{0, 0, 0, 1, 0, 0, -2, 3, 2},
	{0, 0, 1, 0, 0, 1, -2, 2, 2},
	{0, 0, 0, 0, 1, 1, -3, 2, 2},
	{0, 0, 0, 0, 0, 0, 0, 1, 2},
	{0, 0, 0, 0, 0, 0, 0, 0, 2},
	{0, 0, 0, 0, 0, 0, 0, 0, 2},
	{0, 0, 0, 0, 0, 0, 0, 0, 0},
	{0, 0, 0, 0, 0, 0, 0, 0, 0},
	{0, 0, 0, 0, 0, 0, 0, 0, 0},
	{0, 0, 0, 0, 0, 0, 0, 0, 0},
	{0, 0, 0, 0, 0, 0, 0, 0, 0},
}

var blueOffsets = [LuminanceMax][rgbCompensation]int8{
	{-2, -2, -2, -7, -10, -6, -10, -4, -5},
	{-1, -1, -1, -7, -12, -7, -11, -8, -8},
	{-1, -1, -1, -7, -12, -7, -10, -11, -8},
	{-1, -1, -1, -7, -15, -9, -7, -11, -8},
	{0, -1, -1, -6, -16, -9, -9, -11, -8},
	{0, -1, -1, -5, -16, -10, -10, -12, -8},
	{0, -1, -1, -5, -16, -7, -10, -12, -8},
	{0, -1, -1, -5, -14, -7, -10, -12, -8},
	{0, -1, -1, -5, -13, -6, -9, -12, -8},
	{-1, 0, -1, -3, -14, -4, -10, -11, -8},
	{-1, 0, -1, -3, -13, -6, -10, -8, -6},
	{-1, 0, -1, -3, -13, -7, -10, -8, -6},
	{-1, 0, -1, -3, -13, -7, -10, -8, -6},
	{-1, 0, -1, -3, -13, -7, -11, -8, -6},
	{-1, 0, -1, -3, -13, -7, -10, -8, -5},
	{-1, 0, -1, -3, -12, -7, -11, -9, -7},
	{-1, 0, -1, -2, -12, -7, -11, -9, -7},
	{-1, 0, -1, -2, -11, -7, -11, -11, -7},
	{-1, 0, -1, -2, -9, -9, -9, -14, -7},
	{-1, 0, -1, -2, -9, -9, -10, -10, -7},
	{-1, 0, -1, -1, -9, -8, -9, -12, -7},
	{-1, 0, 0, -2, -9, -5, -8, -12, -7},
	{-1, 0, 0, -2, -8, -4, -7, -12, -7},
	{-1, 0, 0, -2, -8, -4, -8, -12, -4},
	{-1, 0, 0, -2, -7, -5, -8, -12, -4},
	{-1, 0, 0, -2, -7, -2, -8, -13, -4},
	{-1, 0, 0, -2, -7, -2, -8, -15, -4},
	{-1, 0, 0, -2, -7, -2, -9, -13, -3},
	{-1, 0, 0, -2, -8, -2, -8, -13, -4},
	{-1, 0, 0, -2, -8, -2, -8, -14, -5},
	{-1, 0, 0, -2, -5, -2, -7, -14, -5},
	{-1, 0, 0, -2, -5, -2, -5, -14, -2},
	{-1, 0, 0, -2, -5, -2, -5, -12, -2},
	{-1, 0, 0, -2, -5, -2, -5, -12, -4},
	{-1, 0, 0, -2, -5, -2, -5, -14, -4},
	{-1, 0, 0, -2, -5, -1, -5, -14, -4},
	{-1, -1, 0, -1, -5, -2, -7, -14, -5},
	{-1, 1, 0, -1, -5, -2, -4, -15, -5},
	{-1, 0, 0, -1, -4, -1, -7, -15, -3},
	{-1, 0, 1, -1, -5, -3, -5, -15, -3},
	{-1, 0, 0, 1, -5, -2, -3, -12, -7},
	{-1, 0, 1, -1, -4, 0, -3, -12, -8},
	{-1, 0, 0, 1, -4, -2, -3, -11, -9},
	{0, -1, 1, 0, -4, -1, -5, -14, -4},
	{0, 0, 0, 0, -4, 0, -5, -12, -5},
	{-1, 0, 0, -1, -2, 0, -2, -13, -6},
	{0, -1, 0, 1, -5, -1, -2, -11, -6},
	{0, 0, 0, 0, -3, 0, -1, -12, -7},
	{0, -1, 0, 1, -4, 0, -4, -12, -9},
	{0, 0, 0, 1, -2, -1, -2, -14, -11},
	{-1, -1, -1, 0, -1, 1, -5, -11, -11},
	{-1, -1, -1, 1, -2, -1, -4, -10, -10},
	{-1, 0, 1, 1, -1, 0, -2, -6, -11},
	{0, 0, 1, 1, -2, -1, 0, -7, -10},
	{0, 0, 0, 1, -1, 0, -1, -7, -11},
	{0, 0, 0, 1, -1, -1, -2, -8, -4},
	{0, 0, 0, 1, -1, 0, -1, -7, -4},
	{0, -1, 0, 1, -1, 1, 1, -4, -5},
	{-1, 0, 0, 1, 0, 0, -2, -4, -5},
	{0, 0, 0, 1, -2, 0, 0, -4, -3},
	{-1, 0, 0, 1, 0, 0, 0, -6, -6},
	{-1, 0, 0, 1, 0, 1, -2, -1, -7},
	{0, 0, 0, 0, 0, 1, 1, -1, -8},
	{-1, 0, 0, 1, -1, 0, -2, 2, 0},
	{0, 0, 1, 0, 1, 0, -3, 1, 1},
	{0, 0, 0, 0, 1, 2, -4, 1, 0},
	{0, 0, 0, 0, 0, 0, 0, 0, 0},
	{0, 0, 0, 0, 0, 0, 0, 0, 1},
	{0, 0, 0, 0, 0, 0, 0, 0, 1},
	{0, 0, 0, 0, 0, 0, 0, 0, 0},
	{0, 0, 0, 0, 0, 0, 0, 0, 0},
	{0, 0, 0, 0, 0, 0, 0, 0, 0},
	{0, 0, 0, 0, 0, 0, 0, 0, 0},
	{0, 0, 0, 0, 0, 0, 0, 0, 0},
}

// Целевые уровни серого для VT..V255 по индексу яркости.
var grayOffsets = [LuminanceMax][vMax]uint8{
	{0x00, 0x01, 0x22, 0x22, 0x26, 0x26, 0x2b, 0x37, 0x53, 0x6d, 0x86},
	{0x00, 0x01, 0x1f, 0x21, 0x23, 0x24, 0x29, 0x34, 0x52, 0x6c, 0x86},
	{0x00, 0x01, 0x1e, 0x1f, 0x21, 0x22, 0x27, 0x34, 0x52, 0x6c, 0x86},
	{0x00, 0x01, 0x1d, 0x1d, 0x1f, 0x22, 0x27, 0x33, 0x52, 0x6c, 0x86},
	{0x00, 0x01, 0x1c, 0x1c, 0x1e, 0x21, 0x25, 0x32, 0x52, 0x6c, 0x86},
	{0x00, 0x01, 0x1b, 0x1b, 0x1d, 0x20, 0x25, 0x32, 0x52, 0x6c, 0x86},
	{0x00, 0x01, 0x1a, 0x1a, 0x1c, 0x1f, 0x25, 0x32, 0x52, 0x6c, 0x86},
	{0x00, 0x01, 0x19, 0x19, 0x1b, 0x1e, 0x24, 0x32, 0x52, 0x6c, 0x86},
	{0x00, 0x01, 0x18, 0x18, 0x1a, 0x1d, 0x24, 0x32, 0x52, 0x6c, 0x86},
	{0x00, 0x01, 0x17, 0x17, 0x19, 0x1c, 0x23, 0x31, 0x52, 0x6c, 0x86},
	{0x00, 0x01, 0x16, 0x16, 0x19, 0x1c, 0x22, 0x31, 0x52, 0x6c, 0x86},
	{0x00, 0x01, 0x16, 0x16, 0x19, 0x1c, 0x22, 0x31, 0x52, 0x6c, 0x86},
	{0x00, 0x01, 0x16, 0x16, 0x19, 0x1c, 0x22, 0x31, 0x52, 0x6c, 0x86},
	{0x00, 0x01, 0x16, 0x16, 0x19, 0x1c, 0x22, 0x31, 0x52, 0x6c, 0x86},
	{0x00, 0x01, 0x15, 0x15, 0x18, 0x1c, 0x22, 0x31, 0x51, 0x6c, 0x86},
	{0x00, 0x01, 0x15, 0x15, 0x18, 0x1c, 0x22, 0x31, 0x51, 0x6c, 0x86},
	{0x00, 0x01, 0x14, 0x14, 0x17, 0x1b, 0x21, 0x31, 0x51, 0x6b, 0x86},
	{0x00, 0x01, 0x14, 0x14, 0x17, 0x1a, 0x21, 0x30, 0x51, 0x6b, 0x86},
	{0x00, 0x01, 0x14, 0x14, 0x16, 0x1a, 0x20, 0x30, 0x51, 0x6b, 0x86},
	{0x00, 0x01, 0x13, 0x13, 0x16, 0x1a, 0x20, 0x30, 0x51, 0x6b, 0x86},
	{0x00, 0x01, 0x12, 0x12, 0x15, 0x19, 0x20, 0x30, 0x51, 0x6b, 0x86},
	{0x00, 0x01, 0x11, 0x11, 0x14, 0x18, 0x1f, 0x2f, 0x50, 0x6b, 0x86},
	{0x00, 0x01, 0x10, 0x10, 0x13, 0x17, 0x1f, 0x2f, 0x50, 0x6b, 0x86},
	{0x00, 0x01, 0x0f, 0x10, 0x13, 0x17, 0x1f, 0x2f, 0x50, 0x6b, 0x86},
	{0x00, 0x01, 0x0f, 0x10, 0x13, 0x17, 0x1e, 0x2f, 0x50, 0x6b, 0x86},
	{0x00, 0x01, 0x0e, 0x0f, 0x12, 0x16, 0x1e, 0x2f, 0x50, 0x6b, 0x86},
	{0x00, 0x01, 0x0e, 0x0f, 0x12, 0x16, 0x1e, 0x2f, 0x50, 0x6b, 0x86},
	{0x00, 0x01, 0x0d, 0x0e, 0x12, 0x16, 0x1e, 0x2f, 0x50, 0x6b, 0x86},
	{0x00, 0x01, 0x0d, 0x0e, 0x12, 0x16, 0x1e, 0x2f, 0x50, 0x6b, 0x86},
	{0x00, 0x01, 0x0d, 0x0e, 0x12, 0x16, 0x1e, 0x2f, 0x50, 0x6b, 0x86},
	{0x00, 0x01, 0x0c, 0x0d, 0x11, 0x15, 0x1d, 0x2f, 0x50, 0x6b, 0x86},
	{0x00, 0x01, 0x0b, 0x0c, 0x10, 0x15, 0x1d, 0x2f, 0x50, 0x6b, 0x86},
	{0x00, 0x01, 0x0a, 0x0b, 0x10, 0x15, 0x1d, 0x2f, 0x50, 0x6b, 0x86},
	{0x00, 0x01, 0x0a, 0x0b, 0x10, 0x15, 0x1d, 0x2f, 0x50, 0x6b, 0x86},
	{0x00, 0x01, 0x0a, 0x0b, 0x10, 0x15, 0x1d, 0x2f, 0x50, 0x6b, 0x86},
	{0x00, 0x01, 0x0a, 0x0b, 0x10, 0x15, 0x1d, 0x2f, 0x50, 0x6b, 0x86},
	{0x00, 0x01, 0x0a, 0x0b, 0x10, 0x15, 0x1d, 0x2f, 0x50, 0x6b, 0x86},
	{0x00, 0x01, 0x0a, 0x0b, 0x10, 0x16, 0x1e, 0x30, 0x53, 0x6f, 0x8a},
	{0x00, 0x01, 0x0a, 0x0c, 0x11, 0x16, 0x1f, 0x32, 0x55, 0x72, 0x8e},
	{0x00, 0x01, 0x0a, 0x0c, 0x11, 0x17, 0x1f, 0x33, 0x57, 0x75, 0x92},
	{0x00, 0x01, 0x0a, 0x0b, 0x11, 0x17, 0x20, 0x34, 0x5a, 0x79, 0x96},
	{0x00, 0x01, 0x0a, 0x0b, 0x11, 0x17, 0x21, 0x36, 0x5c, 0x7c, 0x9a},
	{0x00, 0x01, 0x0a, 0x0b, 0x11, 0x18, 0x21, 0x37, 0x5f, 0x80, 0x9e},
	{0x00, 0x01, 0x0a, 0x0c, 0x12, 0x18, 0x22, 0x39, 0x62, 0x83, 0xa3},
	{0x00, 0x01, 0x0a, 0x0c, 0x12, 0x19, 0x23, 0x3b, 0x65, 0x88, 0xa8},
	{0x00, 0x01, 0x0a, 0x0c, 0x12, 0x1a, 0x24, 0x3c, 0x68, 0x8a, 0xad},
	{0x00, 0x01, 0x0a, 0x0c, 0x13, 0x1b, 0x26, 0x3f, 0x6c, 0x8e, 0xb2},
	{0x00, 0x01, 0x0a, 0x0c, 0x13, 0x1b, 0x27, 0x41, 0x6e, 0x91, 0xb6},
	{0x00, 0x01, 0x0b, 0x0d, 0x14, 0x1c, 0x28, 0x43, 0x72, 0x97, 0xbc},
	{0x00, 0x01, 0x0b, 0x0d, 0x14, 0x1c, 0x29, 0x45, 0x75, 0x9a, 0xc1},
	{0x00, 0x01, 0x0b, 0x0d, 0x15, 0x1d, 0x2a, 0x47, 0x79, 0x9f, 0xc7},
	{0x00, 0x01, 0x0b, 0x0d, 0x15, 0x1e, 0x2b, 0x48, 0x7d, 0xa4, 0xcd},
	{0x00, 0x01, 0x0a, 0x0c, 0x15, 0x1e, 0x2b, 0x49, 0x7e, 0xa7, 0xd1},
	{0x00, 0x01, 0x0a, 0x0c, 0x15, 0x1f, 0x2c, 0x4b, 0x81, 0xab, 0xd6},
	{0x00, 0x01, 0x0a, 0x0c, 0x15, 0x1f, 0x2c, 0x4b, 0x81, 0xab, 0xd6},
	{0x00, 0x01, 0x0a, 0x0c, 0x15, 0x1f, 0x2c, 0x4b, 0x81, 0xab, 0xd6},
	{0x00, 0x01, 0x09, 0x0b, 0x15, 0x1f, 0x2c, 0x4b, 0x81, 0xab, 0xd6},
	{0x00, 0x01, 0x08, 0x0b, 0x14, 0x1f, 0x2c, 0x4b, 0x81, 0xaa, 0xd6},
	{0x00, 0x01, 0x08, 0x0b, 0x15, 0x1f, 0x2d, 0x4c, 0x83, 0xae, 0xda},
	{0x00, 0x01, 0x09, 0x0b, 0x15, 0x20, 0x2e, 0x4e, 0x86, 0xb3, 0xdf},
	{0x00, 0x01, 0x09, 0x0b, 0x16, 0x21, 0x2f, 0x50, 0x8a, 0xb6, 0xe4},
	{0x00, 0x01, 0x09, 0x0b, 0x16, 0x21, 0x30, 0x51, 0x8c, 0xba, 0xe8},
	{0x00, 0x01, 0x09, 0x0b, 0x16, 0x22, 0x31, 0x53, 0x8f, 0xbe, 0xed},
	{0x00, 0x01, 0x08, 0x0b, 0x17, 0x22, 0x31, 0x54, 0x92, 0xc2, 0xf2},
	{0x00, 0x01, 0x08, 0x0b, 0x16, 0x23, 0x32, 0x55, 0x92, 0xc5, 0xf6},
	{0x00, 0x01, 0x08, 0x0a, 0x17, 0x22, 0x31, 0x56, 0x95, 0xc6, 0xf8},
	{0x00, 0x01, 0x07, 0x0b, 0x17, 0x23, 0x33, 0x57, 0x96, 0xc8, 0xfa},
	{0x00, 0x01, 0x07, 0x0b, 0x17, 0x23, 0x33, 0x57, 0x95, 0xc8, 0xfa},
	{0x00, 0x01, 0x07, 0x0b, 0x17, 0x23, 0x34, 0x57, 0x95, 0xc8, 0xfa},
	{0x00, 0x01, 0x07, 0x0b, 0x17, 0x23, 0x34, 0x57, 0x95, 0xc8, 0xfa},
	{0x00, 0x01, 0x07, 0x0b, 0x17, 0x23, 0x34, 0x57, 0x95, 0xc8, 0xfa},
	{0x00, 0x01, 0x07, 0x0b, 0x18, 0x24, 0x34, 0x58, 0x97, 0xca, 0xfc},
	{0x00, 0x01, 0x07, 0x0c, 0x18, 0x24, 0x34, 0x58, 0x98, 0xcb, 0xfd},
	{0x00, 0x01, 0x07, 0x0b, 0x17, 0x23, 0x33, 0x57, 0x97, 0xcb, 0xff},
}

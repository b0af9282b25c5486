package gamma

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// sampleMTP — калибровка с ненулевыми смещениями во всех точках и обоими знаками.
var sampleMTP = []byte{
	0x52, 0x37, 0x03, 0x05, 0x02,
	0x01, 0x82, 0x00,
	0x03, 0x81, 0x02,
	0x84, 0x02, 0x01,
	0x05, 0x83, 0x00,
	0x02, 0x02, 0x86,
	0x81, 0x04, 0x03,
	0x07, 0x85, 0x02,
	0x8a, 0x09, 0x01,
	0x0c, 0x88, 0x03,
}

var centerTable = [TableLen]byte{
	0x07, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80,
	0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80,
	0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80,
}

func mustNew(t *testing.T, mtp []byte) *Context {
	t.Helper()
	c, err := New(mtp)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return c
}

func TestNew_InvalidLength(t *testing.T) {
	for _, n := range []int{0, 31, 33, 64} {
		_, err := New(make([]byte, n))
		if !errors.Is(err, ErrInvalidLength) {
			t.Errorf("len %d: err = %v, want ErrInvalidLength", n, err)
		}
		if !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("len %d: ErrInvalidLength must match ErrInvalidArgument", n)
		}
	}
}

func TestOffsets(t *testing.T) {
	c := mustNew(t, sampleMTP)
	want := [vRGB]int{
		5, 12, -10, 7, -1, 2, 5, -4, 3, 1, 3,
		3, -8, 9, -5, 4, 2, -3, 2, -1, -2, -5,
		7, 3, 1, 2, 3, -6, 0, 1, 2, 0, 2,
	}
	if diff := cmp.Diff(want, c.Offsets()); diff != "" {
		t.Errorf("Offsets mismatch (-want +got):\n%s", diff)
	}
}

func TestVoltages(t *testing.T) {
	t.Run("zero mtp", func(t *testing.T) {
		c := mustNew(t, make([]byte, MTPLen))
		ch := []int{27262976, 27160479, 27057981, 26921317, 26693544, 26313922, 25681219, 24626713, 22869202, 19940018, 15058043}
		var want [vRGB]int
		for i := 0; i < 3; i++ {
			copy(want[i*vMax:], ch)
		}
		if diff := cmp.Diff(want, c.Voltages()); diff != "" {
			t.Errorf("Voltages mismatch (-want +got):\n%s", diff)
		}
	})
	t.Run("sample mtp", func(t *testing.T) {
		c := mustNew(t, sampleMTP)
		want := [vRGB]int{
			25360914, 26574628, 26004281, 25049885, 24860766, 24522969, 23978736, 23115750, 21539356, 19089639, 14962942,
			26121739, 26838545, 26357522, 25821456, 25607885, 25282792, 24737907, 23778742, 22256999, 19646781, 15216546,
			24600082, 26357333, 25493168, 24328578, 24152240, 23865161, 23335700, 22492778, 21106105, 18836819, 14994642,
		}
		if diff := cmp.Diff(want, c.Voltages()); diff != "" {
			t.Errorf("Voltages mismatch (-want +got):\n%s", diff)
		}
	})
}

func TestGrayscale(t *testing.T) {
	tests := []struct {
		name           string
		mtp            []byte
		channel, level int
		want           int
	}{
		{"zero/0", make([]byte, MTPLen), Red, 0, 27262976},
		{"zero/1", make([]byte, MTPLen), Red, 1, 27160479},
		{"zero/2", make([]byte, MTPLen), Red, 2, 27143396},
		{"zero/3", make([]byte, MTPLen), Green, 3, 27126313},
		{"zero/6", make([]byte, MTPLen), Blue, 6, 27075064},
		{"zero/7", make([]byte, MTPLen), Red, 7, 27057981},
		{"zero/100", make([]byte, MTPLen), Red, 100, 24269718},
		{"zero/255", make([]byte, MTPLen), Red, 255, 15058043},
		{"sample/0", sampleMTP, Red, 0, 27262976},
		{"sample/1", sampleMTP, Red, 1, 26574628},
		{"sample/2", sampleMTP, Red, 2, 26479570},
		{"sample/3", sampleMTP, Red, 3, 26384512},
		{"sample/6", sampleMTP, Red, 6, 26099338},
		{"sample/7", sampleMTP, Red, 7, 26004281},
		{"sample/100", sampleMTP, Red, 100, 22795544},
		{"sample/255", sampleMTP, Red, 255, 14962942},
		{"sample/green/0", sampleMTP, Green, 0, 27262976},
		{"sample/green/128", sampleMTP, 1, 128, 22803875},
		{"sample/blue/255", sampleMTP, Blue, 255, 14994642},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := mustNew(t, tt.mtp)
			got, err := c.Grayscale(tt.channel, tt.level)
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("Grayscale(%d, %d) = %d, want %d", tt.channel, tt.level, got, tt.want)
			}
		})
	}

	c := mustNew(t, sampleMTP)
	for _, a := range [][2]int{{3, 0}, {-1, 0}, {Red, 256}, {Red, -1}} {
		if _, err := c.Grayscale(a[0], a[1]); !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("Grayscale(%d, %d) err = %v, want ErrInvalidArgument", a[0], a[1], err)
		}
	}
}

func TestTable(t *testing.T) {
	tests := []struct {
		name  string
		mtp   []byte
		index int
		want  [TableLen]byte
	}{
		{"zero/0", make([]byte, MTPLen), 0, [TableLen]byte{0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0xc6, 0xc9, 0xc6, 0xb3, 0xb9, 0xb6, 0x89, 0x98, 0x90, 0x98, 0xad, 0xa4, 0xba, 0xcc, 0xc7, 0xea, 0xf8, 0xf6, 0xbb, 0xcf, 0xce, 0xf3, 0xfa, 0xfb, 0x1c, 0x1c, 0x1c}},
		{"zero/36", make([]byte, MTPLen), 36, [TableLen]byte{0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0xc3, 0xc3, 0xc2, 0xb3, 0xb4, 0xb4, 0x7a, 0x7a, 0x7a, 0x68, 0x6a, 0x65, 0x9c, 0x9e, 0x9d, 0xbd, 0xc3, 0xbf, 0xab, 0xba, 0xac, 0xdb, 0xdd, 0xda, 0x55, 0x55, 0x55}},
		{"zero/72", make([]byte, MTPLen), 72, [TableLen]byte{0x00, 0x00, 0xfa, 0xfa, 0x00, 0xfa, 0x82, 0x82, 0x82, 0x82, 0x82, 0x82, 0x7f, 0x7f, 0x7f, 0x81, 0x81, 0x81, 0x84, 0x84, 0x84, 0x82, 0x82, 0x82, 0x80, 0x80, 0x80, 0x75, 0x75, 0x75, 0x7f, 0x7f, 0x7f}},
		{"zero/73", make([]byte, MTPLen), 73, centerTable},
		{"sample/0", sampleMTP, 0, [TableLen]byte{0x00, 0x00, 0x1e, 0x15, 0x00, 0x31, 0xc3, 0xcc, 0xc6, 0xae, 0xbb, 0xb5, 0x92, 0x94, 0x8f, 0x95, 0xb0, 0xa1, 0xb9, 0xcb, 0xcb, 0xeb, 0xf4, 0xf3, 0xb5, 0xd6, 0xca, 0xfd, 0xf1, 0xfa, 0x34, 0x3f, 0x41}},
		{"sample/20", sampleMTP, 20, [TableLen]byte{0x00, 0x00, 0x24, 0x15, 0x00, 0x32, 0xc0, 0xc7, 0xc4, 0xb0, 0xb7, 0xb4, 0x84, 0x79, 0x7b, 0x70, 0x80, 0x6d, 0xa0, 0xac, 0xad, 0xc3, 0xc9, 0xc2, 0xcc, 0xe2, 0xd0, 0xff, 0xf2, 0xf8, 0x3f, 0x4d, 0x49}},
		{"sample/50", sampleMTP, 50, [TableLen]byte{0x00, 0x00, 0x76, 0x6d, 0x00, 0x80, 0x9b, 0x9b, 0x9b, 0xa7, 0xad, 0xa9, 0x84, 0x80, 0x81, 0x73, 0x76, 0x71, 0x85, 0x88, 0x8a, 0x9b, 0x9b, 0x9a, 0x96, 0xa5, 0x99, 0xfa, 0xee, 0xf0, 0x43, 0x53, 0x4c}},
		{"sample/72", sampleMTP, 72, [TableLen]byte{0x00, 0x00, 0xfa, 0xfa, 0x00, 0xfb, 0x82, 0x83, 0x82, 0x82, 0x82, 0x82, 0x7f, 0x7f, 0x7f, 0x81, 0x81, 0x81, 0x84, 0x84, 0x84, 0x82, 0x82, 0x81, 0x7e, 0x81, 0x80, 0x7e, 0x7d, 0x7f, 0x7f, 0x7f, 0x7f}},
		{"sample/73", sampleMTP, 73, centerTable},
		{"clamped high", sampleMTP, 1000, centerTable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := mustNew(t, tt.mtp)
			if diff := cmp.Diff(tt.want, c.Table(tt.index)); diff != "" {
				t.Errorf("Table(%d) mismatch (-want +got):\n%s", tt.index, diff)
			}
		})
	}
}

func TestGamma(t *testing.T) {
	c := mustNew(t, sampleMTP)
	out := make([]byte, TableLen)
	if err := c.Gamma(-5, out); err != nil {
		t.Fatal(err)
	}
	first := c.Table(0)
	if diff := cmp.Diff(first[:], out); diff != "" {
		t.Errorf("Gamma(-5) must clamp to index 0 (-want +got):\n%s", diff)
	}
	for _, n := range []int{0, 32, 34} {
		if err := c.Gamma(0, make([]byte, n)); !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("Gamma out len %d: err = %v, want ErrInvalidArgument", n, err)
		}
		if err := c.Generate(0, make([]byte, n)); !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("Generate out len %d: err = %v, want ErrInvalidArgument", n, err)
		}
	}
}

func TestGenerateMatchesPrecomputed(t *testing.T) {
	c := mustNew(t, sampleMTP)
	out := make([]byte, TableLen)
	for i := 0; i < LuminanceMax; i++ {
		if err := c.Generate(i, out); err != nil {
			t.Fatal(err)
		}
		want := c.Table(i)
		if diff := cmp.Diff(want[:], out); diff != "" {
			t.Errorf("index %d: Generate differs from Table (-want +got):\n%s", i, diff)
		}
	}
}

// v255 распаковывает код V255 канала ch (0..2) из таблицы.
func v255(t [TableLen]byte, ch int) int {
	bit := [3]byte{4, 2, 1}[ch]
	lo := [3]byte{t[2], t[3], t[5]}[ch]
	v := int(lo)
	if t[0]&bit != 0 {
		v |= 0x100
	}
	return v
}

func TestV255Monotonic(t *testing.T) {
	c := mustNew(t, make([]byte, MTPLen))
	for ch := 0; ch < 3; ch++ {
		prev := -1
		for i := 0; i < LuminanceMax; i++ {
			v := v255(c.Table(i), ch)
			if v < prev {
				t.Errorf("channel %d: V255 drops at index %d (%d -> %d)", ch, i, prev, v)
			}
			prev = v
		}
		if prev != 0x100 {
			t.Errorf("channel %d: top V255 = %#x, want 0x100", ch, prev)
		}
	}
}

func TestConcurrentReaders(t *testing.T) {
	c := mustNew(t, sampleMTP)
	want := c.Table(42)
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			out := make([]byte, TableLen)
			for j := 0; j < 100; j++ {
				if err := c.Gamma(42, out); err != nil {
					t.Error(err)
					return
				}
				if string(out) != string(want[:]) {
					t.Error("table changed under concurrent reads")
					return
				}
			}
		}()
	}
	wg.Wait()
}

func TestFixedPoint(t *testing.T) {
	tests := []struct {
		name string
		got  int
		want int
	}{
		{"voltage V255 center", gammaVoltage(vreg, 0, 0x100, fraction[V255]), 15058043},
		{"voltage VT zero", gammaVoltage(vreg, 0, 0, fraction[VT]), vreg},
		{"gray endpoint", grayScaleVoltage(100, 50, 1, 1), 100},
		{"gray midpoint", grayScaleVoltage(100, 50, 1, 2), 75},
		{"v255 at vreg", v255Code(vreg, vreg, fraction[V255]), -129},
		{"other zero gap", otherCode(100, 50, 100, fraction[V7]), -64},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %d, want %d", tt.got, tt.want)
			}
		})
	}
}

func ExampleContext_Table() {
	c, err := New(make([]byte, MTPLen))
	if err != nil {
		panic(err)
	}
	t := c.Table(LuminanceMax - 1)
	fmt.Printf("% x\n", t[:6])
	// Output: 07 00 00 00 00 00
}

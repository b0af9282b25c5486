package regmap

import (
	"bytes"
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/msm8953-mainline/msm8953ctl/internal/config"
)

func TestFlat_ReadWrite(t *testing.T) {
	f := NewFlat()
	if v, err := f.Read(0x10); err != nil || v != 0 {
		t.Fatalf("Read(0x10) = %#x, %v; want 0, nil", v, err)
	}
	if err := f.Write(0x10, 0xdeadbeef); err != nil {
		t.Fatal(err)
	}
	if v, _ := f.Read(0x10); v != 0xdeadbeef {
		t.Errorf("Read(0x10) = %#x, want 0xdeadbeef", v)
	}
	if _, err := f.Read(0x11); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("unaligned Read err = %v, want ErrOutOfRange", err)
	}
	if err := f.Write(0x12, 1); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("unaligned Write err = %v, want ErrOutOfRange", err)
	}
}

func TestFlat_UpdateBits(t *testing.T) {
	f := NewFlat()
	f.Set(0x4, 0xff00)
	if err := f.UpdateBits(0x4, 0x0f0f, 0x0505); err != nil {
		t.Fatal(err)
	}
	if got := f.Get(0x4); got != 0xf505 {
		t.Errorf("got %#x, want 0xf505", got)
	}
	n := f.Writes()
	if err := f.UpdateBits(0x4, 0x0f0f, 0x0505); err != nil {
		t.Fatal(err)
	}
	if f.Writes() != n {
		t.Errorf("UpdateBits without change must not write")
	}
}

func TestFlat_AutoClear(t *testing.T) {
	f := NewFlat()
	f.AutoClear(0x0, 0x1)
	if err := f.Write(0x0, 0x11); err != nil {
		t.Fatal(err)
	}
	v1, _ := f.Read(0x0)
	v2, _ := f.Read(0x0)
	if v1 != 0x11 || v2 != 0x10 {
		t.Errorf("reads = %#x, %#x; want 0x11, 0x10", v1, v2)
	}
}

func TestOffset(t *testing.T) {
	f := NewFlat()
	m := Offset(f, 0x1000)
	if err := m.Write(0x4, 7); err != nil {
		t.Fatal(err)
	}
	if got := f.Get(0x1004); got != 7 {
		t.Errorf("flat[0x1004] = %d, want 7", got)
	}
	if err := m.UpdateBits(0x4, 0x2, 0x2); err != nil {
		t.Fatal(err)
	}
	if v, _ := m.Read(0x4); v != 7 {
		t.Errorf("Read = %d, want 7", v)
	}
	if Offset(f, 0) != Map(f) {
		t.Errorf("Offset(m, 0) must return m")
	}
}

func TestFieldMask(t *testing.T) {
	tests := []struct {
		val          uint32
		shift, width uint
		want         uint32
	}{
		{0x403, 0, 5, 3},
		{0x403, 8, 3, 4},
		{0xffffffff, 31, 1, 1},
		{0x12345678, 0, 32, 0x12345678},
	}
	for _, tt := range tests {
		if got := Field(tt.val, tt.shift, tt.width); got != tt.want {
			t.Errorf("Field(%#x, %d, %d) = %#x, want %#x", tt.val, tt.shift, tt.width, got, tt.want)
		}
	}
	if Mask(5) != 0x1f || Mask(0) != 0 || Mask(32) != 0xffffffff {
		t.Errorf("Mask mismatch")
	}
}

type fakeTransport struct {
	regs map[uint32]uint32
	log  []string
	err  error
}

func (f *fakeTransport) Tx(w, r []byte) error {
	if f.err != nil {
		return f.err
	}
	addr := binary.BigEndian.Uint32(w)
	switch {
	case len(w) == 4 && len(r) == 4:
		binary.BigEndian.PutUint32(r, f.regs[addr])
		f.log = append(f.log, fmt.Sprintf("r %08x", addr))
	case len(w) == 8 && len(r) == 0:
		f.regs[addr] = binary.BigEndian.Uint32(w[4:])
		f.log = append(f.log, fmt.Sprintf("w %08x", addr))
	default:
		return fmt.Errorf("bad tx w=%d r=%d", len(w), len(r))
	}
	return nil
}

func TestI2C(t *testing.T) {
	old := WaitAfterI2C
	WaitAfterI2C = 0
	defer func() { WaitAfterI2C = old }()

	tr := &fakeTransport{regs: map[uint32]uint32{0x0b111050: 0x401}}
	r := NewI2C(tr, 0x0b011000)
	v, err := r.Read(0x100050)
	if err != nil || v != 0x401 {
		t.Fatalf("Read = %#x, %v; want 0x401", v, err)
	}
	if err := r.UpdateBits(0x100054, 0x71f, 0x403); err != nil {
		t.Fatal(err)
	}
	if got := tr.regs[0x0b111054]; got != 0x403 {
		t.Errorf("reg = %#x, want 0x403", got)
	}
	want := []string{"r 0b111050", "r 0b111054", "w 0b111054"}
	if diff := cmp.Diff(want, tr.log); diff != "" {
		t.Errorf("transactions mismatch (-want +got):\n%s", diff)
	}

	tr.err = errors.New("nak")
	if _, err := r.Read(0); err == nil {
		t.Errorf("expected transport error")
	}
	if err := r.Close(); err != nil {
		t.Errorf("Close: %v", err)
	}
}

// fakeUBoot — консоль U-Boot: эхо команды, вывод, приглашение.
type fakeUBoot struct {
	regs map[uint32]uint32
	out  bytes.Buffer
	in   bytes.Buffer
}

func (f *fakeUBoot) Write(p []byte) (int, error) {
	f.in.Write(p)
	for {
		line, err := f.in.ReadString('\n')
		if err != nil {
			// неполная строка остаётся в буфере
			f.in.Reset()
			f.in.WriteString(line)
			break
		}
		f.exec(strings.TrimSpace(line))
	}
	return len(p), nil
}

func (f *fakeUBoot) exec(line string) {
	f.out.WriteString(line + "\r\n")
	fields := strings.Fields(line)
	switch {
	case len(fields) == 0:
	case fields[0] == "md.l" && len(fields) == 3:
		a, _ := strconv.ParseUint(fields[1], 0, 32)
		fmt.Fprintf(&f.out, "%08x: %08x    ....\r\n", a, f.regs[uint32(a)])
	case fields[0] == "mw.l" && len(fields) == 3:
		a, _ := strconv.ParseUint(fields[1], 0, 32)
		v, _ := strconv.ParseUint(fields[2], 0, 32)
		f.regs[uint32(a)] = uint32(v)
	default:
		fmt.Fprintf(&f.out, "Unknown command '%s' - try 'help'\r\n", fields[0])
	}
	f.out.WriteString("=> ")
}

func (f *fakeUBoot) Read(p []byte) (int, error) {
	if f.out.Len() == 0 {
		return 0, io.EOF
	}
	return f.out.Read(p)
}

func TestConsole(t *testing.T) {
	ub := &fakeUBoot{regs: map[uint32]uint32{0x0b111050: 0x80000000}}
	c := NewConsole(ub, "=> ", 0x0b011000, time.Second)
	if err := c.Sync(context.Background()); err != nil {
		t.Fatalf("Sync: %v", err)
	}
	v, err := c.Read(0x100050)
	if err != nil || v != 0x80000000 {
		t.Fatalf("Read = %#x, %v; want 0x80000000", v, err)
	}
	if err := c.Write(0x100054, 0x403); err != nil {
		t.Fatal(err)
	}
	if got := ub.regs[0x0b111054]; got != 0x403 {
		t.Errorf("reg = %#x, want 0x403", got)
	}
	if err := c.UpdateBits(0x100050, 1, 1); err != nil {
		t.Fatal(err)
	}
	if got := ub.regs[0x0b111050]; got != 0x80000001 {
		t.Errorf("reg = %#x, want 0x80000001", got)
	}
}

func TestConsole_NoPrompt(t *testing.T) {
	c := NewConsole(&fakeUBoot{regs: map[uint32]uint32{}}, "# ", 0, 20*time.Millisecond)
	if _, err := c.Read(0); err == nil {
		t.Errorf("expected timeout without prompt")
	}
}

func TestParseMDLine(t *testing.T) {
	out := "md.l 0x0b111050 1\r\n0b111050: 00000401    ....\r\n"
	if v, ok := ParseMDLine(out, 0x0b111050); !ok || v != 0x401 {
		t.Errorf("ParseMDLine = %#x, %v", v, ok)
	}
	if _, ok := ParseMDLine(out, 0x0b111054); ok {
		t.Errorf("wrong address must not match")
	}
	if _, ok := ParseMDLine("0b111050: zz\r\n", 0x0b111050); ok {
		t.Errorf("garbage value must not parse")
	}
}

type fakeRunner struct {
	regs map[uint32]uint32
	cmds []string
}

func (f *fakeRunner) Run(cmd string) (string, error) {
	f.cmds = append(f.cmds, cmd)
	fields := strings.Fields(cmd)
	if len(fields) < 3 || fields[0] != "devmem" {
		return "", fmt.Errorf("unexpected %q", cmd)
	}
	a, _ := strconv.ParseUint(fields[1], 0, 32)
	if len(fields) == 4 {
		v, _ := strconv.ParseUint(fields[3], 0, 32)
		f.regs[uint32(a)] = uint32(v)
		return "", nil
	}
	return fmt.Sprintf("0x%08X\n", f.regs[uint32(a)]), nil
}

func TestSSH(t *testing.T) {
	fr := &fakeRunner{regs: map[uint32]uint32{0x1874008: 0x2001234}}
	s := NewSSH(fr, 0x01800000)
	v, err := s.Read(0x74008)
	if err != nil || v != 0x2001234 {
		t.Fatalf("Read = %#x, %v", v, err)
	}
	if err := s.Write(0x74004, 0x100000); err != nil {
		t.Fatal(err)
	}
	want := []string{"devmem 0x01874008 32", "devmem 0x01874004 32 0x00100000"}
	if diff := cmp.Diff(want, fr.cmds); diff != "" {
		t.Errorf("commands mismatch (-want +got):\n%s", diff)
	}
}

func TestOpen(t *testing.T) {
	m, err := Open(context.Background(), config.Regmap{Backend: "flat"})
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := m.(*Flat); !ok {
		t.Errorf("flat backend = %T", m)
	}
	if _, err := Open(context.Background(), config.Regmap{Backend: "jtag"}); !errors.Is(err, ErrUnknownBackend) {
		t.Errorf("err = %v, want ErrUnknownBackend", err)
	}
}

func TestResolvePort(t *testing.T) {
	got, err := ResolvePort("/dev/ttyUSB3")
	if err != nil || got != "/dev/ttyUSB3" {
		t.Errorf("ResolvePort = %q, %v", got, err)
	}
}

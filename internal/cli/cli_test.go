package cli

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/subcommands"

	"github.com/msm8953-mainline/msm8953ctl/internal/apcs"
	"github.com/msm8953-mainline/msm8953ctl/internal/config"
	"github.com/msm8953-mainline/msm8953ctl/internal/measure"
	"github.com/msm8953-mainline/msm8953ctl/internal/regmap"
)

// counterGCC — окно GCC, у которого счётчик отвечает сразу.
type counterGCC struct {
	*regmap.Flat
}

func (g *counterGCC) Write(addr, val uint32) error {
	if addr == measure.CtlReg {
		switch {
		case val == measure.CtlStart|measure.ShortTicks:
			g.Set(measure.StatusReg, measure.StatusReady|0x2000)
		case val == measure.CtlStart|measure.SampleTicks:
			g.Set(measure.StatusReg, measure.StatusReady|0x20000)
		default:
			g.Set(measure.StatusReg, 0)
		}
	}
	return g.Flat.Write(addr, val)
}

type testEnv struct {
	*Env
	out  *bytes.Buffer
	apcs *regmap.Flat
	gcc  regmap.Closer
}

func newTestEnv() *testEnv {
	te := &testEnv{out: &bytes.Buffer{}, apcs: regmap.NewFlat(), gcc: regmap.NewFlat()}
	te.Env = &Env{
		Config: config.Default(),
		Out:    te.out,
		Open: func(_ context.Context, cfg config.Regmap) (regmap.Closer, error) {
			if cfg.Base == config.DefaultGCCBase {
				return te.gcc, nil
			}
			return te.apcs, nil
		},
	}
	return te
}

func run(t *testing.T, env *Env, cmd subcommands.Command, args ...string) subcommands.ExitStatus {
	t.Helper()
	fs := flag.NewFlagSet(cmd.Name(), flag.ContinueOnError)
	cmd.SetFlags(fs)
	if err := fs.Parse(args); err != nil {
		t.Fatalf("parse %v: %v", args, err)
	}
	return cmd.Execute(context.Background(), fs, env)
}

func TestRate_Determine(t *testing.T) {
	te := newTestEnv()
	if st := run(t, te.Env, new(Rate), "c0", "1.2G"); st != subcommands.ExitSuccess {
		t.Fatalf("status = %v", st)
	}
	want := "c0: 1190400000 Hz (1190.4 MHz) via apcs-hfpll-c0 at 1190400000 Hz\n"
	if got := te.out.String(); got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
	if v := te.apcs.Get(apcs.C0Offset + 4); v != 0x401 {
		t.Errorf("c0 CFG = %#x, want boot value 0x401 without -apply", v)
	}
}

func TestRate_Apply(t *testing.T) {
	te := newTestEnv()
	if st := run(t, te.Env, new(Rate), "-apply", "c0", "1200M"); st != subcommands.ExitSuccess {
		t.Fatalf("status = %v", st)
	}
	want := "c0: 1190400000 Hz (1190.4 MHz) via apcs-hfpll-c0 at 1190400000 Hz, div 2\n" +
		"cci: 476160000 Hz (476.16 MHz) via apcs-hfpll-c0 at 1190400000 Hz, div 5\n"
	if diff := cmp.Diff(want, te.out.String()); diff != "" {
		t.Errorf("output mismatch (-want +got):\n%s", diff)
	}
	if v := te.apcs.Get(apcs.C0Offset + 4); v != 0x501 {
		t.Errorf("c0 CFG = %#x, want 0x501", v)
	}
}

func TestRate_Usage(t *testing.T) {
	te := newTestEnv()
	tests := []struct {
		name string
		args []string
		want subcommands.ExitStatus
	}{
		{"no args", nil, subcommands.ExitUsageError},
		{"bad cluster", []string{"c7", "800M"}, subcommands.ExitFailure},
		{"bad rate", []string{"c0", "fast"}, subcommands.ExitFailure},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if st := run(t, te.Env, new(Rate), tt.args...); st != tt.want {
				t.Errorf("status = %v, want %v", st, tt.want)
			}
		})
	}
}

func TestReadback(t *testing.T) {
	te := newTestEnv()
	if st := run(t, te.Env, new(Readback)); st != subcommands.ExitSuccess {
		t.Fatalf("status = %v", st)
	}
	out := te.out.String()
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 5 {
		t.Fatalf("got %d lines, want header + 3 clusters + hfpll:\n%s", len(lines), out)
	}
	for _, want := range [][]string{
		{"c0", "4", "2", "gpll0_early", "800000000", "true", "false"},
		{"c1", "4", "2", "gpll0_early", "800000000", "true", "false"},
		{"cci", "4", "5", "gpll0_early", "320000000", "true", "false"},
		{"apcs-hfpll-c0", "768000000"},
	} {
		found := false
		for _, l := range lines {
			if cmp.Equal(strings.Fields(l), want) {
				found = true
			}
		}
		if !found {
			t.Errorf("no line %v in:\n%s", want, out)
		}
	}
}

func TestBoot(t *testing.T) {
	te := newTestEnv()
	if st := run(t, te.Env, new(Boot), "-init-pll"); st != subcommands.ExitSuccess {
		t.Fatalf("status = %v", st)
	}
	want := "c0: CFG 0x00000401 (src 4, div field 1)\n" +
		"c1: CFG 0x00000401 (src 4, div field 1)\n" +
		"cci: CFG 0x00000404 (src 4, div field 4)\n" +
		"apcs-hfpll-c0: 768000000 Hz\n"
	if diff := cmp.Diff(want, te.out.String()); diff != "" {
		t.Errorf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestGamma(t *testing.T) {
	zero := strings.Repeat("00", 32)
	t.Run("index", func(t *testing.T) {
		te := newTestEnv()
		if st := run(t, te.Env, new(Gamma), "-mtp", zero, "-index", "73"); st != subcommands.ExitSuccess {
			t.Fatalf("status = %v", st)
		}
		want := "73: 07 00 00 00 00 00" + strings.Repeat(" 80", 27) + "\n"
		if got := te.out.String(); got != want {
			t.Errorf("output = %q, want %q", got, want)
		}
	})
	t.Run("all from config", func(t *testing.T) {
		te := newTestEnv()
		te.Config.Panel.MTP = zero
		if st := run(t, te.Env, new(Gamma)); st != subcommands.ExitSuccess {
			t.Fatalf("status = %v", st)
		}
		if n := strings.Count(te.out.String(), "\n"); n != 74 {
			t.Errorf("got %d tables, want 74", n)
		}
	})
	t.Run("short mtp", func(t *testing.T) {
		te := newTestEnv()
		if st := run(t, te.Env, new(Gamma), "-mtp", strings.Repeat("00", 31)); st != subcommands.ExitFailure {
			t.Errorf("status = %v, want failure", st)
		}
	})
	t.Run("no mtp", func(t *testing.T) {
		te := newTestEnv()
		if st := run(t, te.Env, new(Gamma)); st != subcommands.ExitFailure {
			t.Errorf("status = %v, want failure", st)
		}
	})
}

func TestMeasure(t *testing.T) {
	t.Run("flat rejected", func(t *testing.T) {
		te := newTestEnv()
		if _, _, err := te.openMeasure(context.Background()); !errors.Is(err, ErrDryRun) {
			t.Errorf("err = %v, want ErrDryRun", err)
		}
	})
	t.Run("apcs through apcs window", func(t *testing.T) {
		te := newTestEnv()
		te.gcc = &counterGCC{Flat: regmap.NewFlat()}
		if st := run(t, te.Env, new(Measure), "apcs_c0_clk", "gcc_sdcc1_apps_clk"); st != subcommands.ExitSuccess {
			t.Fatalf("status = %v\n%s", st, te.out.String())
		}
		fields := strings.Fields(te.out.String())
		want := []string{"apcs_c0_clk", "153593552", "gcc_sdcc1_apps_clk", "9599597"}
		if diff := cmp.Diff(want, fields); diff != "" {
			t.Errorf("output mismatch (-want +got):\n%s", diff)
		}
		if te.apcs.Writes() != 1 {
			t.Errorf("apcs window writes = %d, want 1 (debug mux select)", te.apcs.Writes())
		}
	})
	t.Run("unknown clock", func(t *testing.T) {
		te := newTestEnv()
		if st := run(t, te.Env, new(Measure), "no_such_clk"); st != subcommands.ExitFailure {
			t.Errorf("status = %v, want failure", st)
		}
	})
}

func TestPorts(t *testing.T) {
	te := newTestEnv()
	te.Ports = func() ([]string, error) { return []string{"/dev/ttyUSB0", "/dev/ttyMSM0"}, nil }
	if st := run(t, te.Env, new(Ports)); st != subcommands.ExitSuccess {
		t.Fatalf("status = %v", st)
	}
	if got, want := te.out.String(), "/dev/ttyUSB0\n/dev/ttyMSM0\n"; got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestParseRate(t *testing.T) {
	tests := []struct {
		in   string
		want uint64
	}{
		{"1190400000", 1190400000},
		{"0x2faf0800", 800000000},
		{"800M", 800000000},
		{"800MHz", 800000000},
		{"1.2G", 1200000000},
		{"19.2m", 19200000},
		{"250k", 250000},
	}
	for _, tt := range tests {
		got, err := parseRate(tt.in)
		if err != nil || got != tt.want {
			t.Errorf("parseRate(%q) = %d, %v; want %d", tt.in, got, err, tt.want)
		}
	}
	for _, bad := range []string{"", "M", "-1G", "fast"} {
		if _, err := parseRate(bad); err == nil {
			t.Errorf("parseRate(%q) must fail", bad)
		}
	}
}

func TestRegister(t *testing.T) {
	var names []string
	Register(func(cmd subcommands.Command, _ string) { names = append(names, cmd.Name()) })
	want := []string{"help", "flags", "commands", "rate", "readback", "boot", "measure", "gamma", "ports"}
	if diff := cmp.Diff(want, names); diff != "" {
		t.Errorf("commands mismatch (-want +got):\n%s", diff)
	}
}

package cli

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"

	"github.com/msm8953-mainline/msm8953ctl/internal/apcs"
	"github.com/msm8953-mainline/msm8953ctl/internal/regmap"
)

// Boot implements subcommands.Command for the "boot" command.
type Boot struct {
	initPLL bool
}

// Name implements subcommands.Command.Name.
func (*Boot) Name() string { return "boot" }

// Synopsis implements subcommands.Command.Synopsis.
func (*Boot) Synopsis() string { return "ранняя конфигурация mux-div APCS (gpll0, 800/800/320 МГц)" }

// Usage implements subcommands.Command.Usage.
func (*Boot) Usage() string { return "boot [-init-pll]\n" }

// SetFlags implements subcommands.Command.SetFlags.
func (b *Boot) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&b.initPLL, "init-pll", false, "после конфигурации настроить и включить HFPLL")
}

// Execute implements subcommands.Command.Execute.
func (b *Boot) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	env := envFrom(args)
	cfg := env.Config.APCS
	m, err := env.open(ctx, cfg.Regmap)
	if err != nil {
		return failed("apcs regmap: %v", err)
	}
	defer m.Close()
	if fl, ok := m.(*regmap.Flat); ok {
		apcs.Simulate(fl, cfg.HFPLLOffset)
	}

	if err := apcs.EarlyConfigure(m); err != nil {
		return failed("early configure: %v", err)
	}
	for _, bc := range apcs.BootTable {
		v, err := m.Read(bc.Offset + 0x4)
		if err != nil {
			return failed("%s: %v", bc.Cluster, err)
		}
		fmt.Fprintf(env.Out, "%s: CFG 0x%08x (src %d, div field %d)\n", bc.Cluster, v, bc.Src, bc.Div)
	}

	if !b.initPLL {
		return subcommands.ExitSuccess
	}
	c, err := apcs.New(m, apcs.Options{
		XORate:      cfg.XORate,
		GPLL0Rate:   cfg.GPLL0Rate,
		HFPLLRate:   cfg.HFPLLRate,
		HFPLLOffset: cfg.HFPLLOffset,
	})
	if err != nil {
		return failed("%v", err)
	}
	if err := c.Init(); err != nil {
		return failed("hfpll: %v", err)
	}
	fmt.Fprintf(env.Out, "%s: %d Hz\n", c.HFPLL.Name(), c.HFPLL.Rate())
	return subcommands.ExitSuccess
}

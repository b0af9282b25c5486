package cli

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"

	"github.com/msm8953-mainline/msm8953ctl/internal/apcs"
)

// Rate implements subcommands.Command for the "rate" command.
type Rate struct {
	apply   bool
	initPLL bool
}

// Name implements subcommands.Command.Name.
func (*Rate) Name() string { return "rate" }

// Synopsis implements subcommands.Command.Synopsis.
func (*Rate) Synopsis() string { return "рассчитать (и применить) частоту кластера c0, c1 или cci" }

// Usage implements subcommands.Command.Usage.
func (*Rate) Usage() string {
	return `rate [-apply] [-init-pll] <c0|c1|cci> <rate>
  rate: Гц или с суффиксом k/M/G (1.2G, 800M).
`
}

// SetFlags implements subcommands.Command.SetFlags.
func (r *Rate) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&r.apply, "apply", false, "записать конфигурацию в регистры (иначе только расчёт)")
	f.BoolVar(&r.initPLL, "init-pll", false, "перед -apply настроить и включить HFPLL")
}

// Execute implements subcommands.Command.Execute.
func (r *Rate) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 2 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	env := envFrom(args)
	cl, err := apcs.ParseCluster(f.Arg(0))
	if err != nil {
		return failed("%v", err)
	}
	hz, err := parseRate(f.Arg(1))
	if err != nil {
		return failed("%v", err)
	}

	c, m, err := env.openAPCS(ctx)
	if err != nil {
		return failed("%v", err)
	}
	defer m.Close()

	if !r.apply {
		req, err := c.DetermineRate(cl, hz)
		if err != nil {
			return failed("%s: %v", cl, err)
		}
		fmt.Fprintf(env.Out, "%s: %d Hz (%s) via %s at %d Hz\n", cl, req.Rate, mhz(req.Rate), req.BestParent.Name(), req.BestParentRate)
		return subcommands.ExitSuccess
	}

	if r.initPLL {
		if err := c.Init(); err != nil {
			return failed("hfpll: %v", err)
		}
	}
	res, err := c.SetRate(cl, hz)
	for _, x := range res {
		fmt.Fprintf(env.Out, "%s: %d Hz (%s) via %s at %d Hz, div %d\n", x.Cluster, x.Rate, mhz(x.Rate), x.Parent, x.ParentRate, x.Div)
	}
	if err != nil {
		return failed("%s: %v", cl, err)
	}
	return subcommands.ExitSuccess
}

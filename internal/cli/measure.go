package cli

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/google/subcommands"

	"github.com/msm8953-mainline/msm8953ctl/internal/measure"
	"github.com/msm8953-mainline/msm8953ctl/internal/regmap"
)

// Measure implements subcommands.Command for the "measure" command.
type Measure struct {
	timeout time.Duration
	list    bool
}

// Name implements subcommands.Command.Name.
func (*Measure) Name() string { return "measure" }

// Synopsis implements subcommands.Command.Synopsis.
func (*Measure) Synopsis() string { return "измерить частоты клоков через debug mux GCC" }

// Usage implements subcommands.Command.Usage.
func (*Measure) Usage() string {
	return `measure [-timeout 1s] [-list] [clock ...]
  Без имён измеряются все клоки таблицы.
`
}

// SetFlags implements subcommands.Command.SetFlags.
func (ms *Measure) SetFlags(f *flag.FlagSet) {
	f.DurationVar(&ms.timeout, "timeout", measure.DefaultLimit, "ожидание счётчика на один замер")
	f.BoolVar(&ms.list, "list", false, "только вывести имена клоков")
}

// Execute implements subcommands.Command.Execute.
func (ms *Measure) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	env := envFrom(args)
	if ms.list {
		for _, it := range measure.DebugMux {
			fmt.Fprintln(env.Out, it.Name)
		}
		return subcommands.ExitSuccess
	}

	items := measure.DebugMux
	if f.NArg() > 0 {
		items = nil
		for _, name := range f.Args() {
			it, err := measure.Lookup(name)
			if err != nil {
				return failed("%v", err)
			}
			items = append(items, it)
		}
	}

	mc, closeAll, err := env.openMeasure(ctx)
	if err != nil {
		return failed("%v", err)
	}
	defer closeAll()
	mc.Timeout = ms.timeout

	status := subcommands.ExitSuccess
	for _, it := range items {
		if ctx.Err() != nil {
			return failed("%v", ctx.Err())
		}
		hz, err := mc.Measure(it)
		if err != nil {
			fmt.Fprintf(env.Out, "%-40s error: %v\n", it.Name, err)
			status = subcommands.ExitFailure
			continue
		}
		fmt.Fprintf(env.Out, "%-40s %d\n", it.Name, hz)
	}
	return status
}

// openMeasure открывает окно GCC и окно debug mux APCS: отдельное из
// apcs_debug_regmap или, если его нет, окно APCS целиком.
func (e *Env) openMeasure(ctx context.Context) (*measure.Context, func(), error) {
	gcc, err := e.open(ctx, e.Config.GCC.Regmap)
	if err != nil {
		return nil, nil, fmt.Errorf("gcc regmap: %w", err)
	}
	if _, ok := gcc.(*regmap.Flat); ok {
		gcc.Close()
		return nil, nil, ErrDryRun
	}

	apcsCfg := e.Config.APCS.Regmap
	if e.Config.GCC.APCSDebugRegmap != nil {
		apcsCfg = *e.Config.GCC.APCSDebugRegmap
	}
	am, err := e.open(ctx, apcsCfg)
	if err != nil {
		gcc.Close()
		return nil, nil, fmt.Errorf("apcs debug regmap: %w", err)
	}
	closeAll := func() {
		am.Close()
		gcc.Close()
	}
	return measure.NewContext(gcc, am, apcsCfg.Base), closeAll, nil
}

package cli

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"

	"github.com/msm8953-mainline/msm8953ctl/internal/config"
	"github.com/msm8953-mainline/msm8953ctl/internal/gamma"
)

// Gamma implements subcommands.Command for the "gamma" command.
type Gamma struct {
	mtp      string
	index    int
	voltages bool
}

// Name implements subcommands.Command.Name.
func (*Gamma) Name() string { return "gamma" }

// Synopsis implements subcommands.Command.Synopsis.
func (*Gamma) Synopsis() string { return "таблицы гаммы S6E3FA7 из MTP-калибровки" }

// Usage implements subcommands.Command.Usage.
func (*Gamma) Usage() string {
	return `gamma [-mtp <hex>] [-index n] [-voltages]
  MTP берётся из -mtp или секции panel конфига. Без -index выводятся все 74 таблицы.
`
}

// SetFlags implements subcommands.Command.SetFlags.
func (g *Gamma) SetFlags(f *flag.FlagSet) {
	f.StringVar(&g.mtp, "mtp", "", "32 байта MTP в hex (переопределяет конфиг)")
	f.IntVar(&g.index, "index", -1, "индекс яркости 0..73")
	f.BoolVar(&g.voltages, "voltages", false, "вывести смещения MTP и напряжения опорных точек")
}

// Execute implements subcommands.Command.Execute.
func (g *Gamma) Execute(_ context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	env := envFrom(args)
	var (
		mtp []byte
		err error
	)
	if g.mtp != "" {
		mtp, err = config.ParseHex(g.mtp)
	} else {
		mtp, err = env.Config.Panel.MTPBytes()
	}
	if err != nil {
		return failed("mtp: %v", err)
	}
	gc, err := gamma.New(mtp)
	if err != nil {
		return failed("%v", err)
	}

	if g.voltages {
		off, v := gc.Offsets(), gc.Voltages()
		for i, ch := range []string{"R", "G", "B"} {
			fmt.Fprintf(env.Out, "%s offsets  %v\n", ch, off[i*gamma.Green:(i+1)*gamma.Green])
			fmt.Fprintf(env.Out, "%s voltages %v\n", ch, v[i*gamma.Green:(i+1)*gamma.Green])
		}
	}

	if g.index >= 0 {
		if g.index >= gamma.LuminanceMax {
			return failed("index %d out of range 0..%d", g.index, gamma.LuminanceMax-1)
		}
		t := gc.Table(g.index)
		fmt.Fprintf(env.Out, "%2d: % x\n", g.index, t[:])
		return subcommands.ExitSuccess
	}
	for i := 0; i < gamma.LuminanceMax; i++ {
		t := gc.Table(i)
		fmt.Fprintf(env.Out, "%2d: % x\n", i, t[:])
	}
	return subcommands.ExitSuccess
}

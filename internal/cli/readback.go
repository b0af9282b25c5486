package cli

import (
	"context"
	"flag"
	"fmt"
	"text/tabwriter"

	"github.com/google/subcommands"

	"github.com/msm8953-mainline/msm8953ctl/internal/apcs"
)

// Readback implements subcommands.Command for the "readback" command.
type Readback struct {
	cluster string
}

// Name implements subcommands.Command.Name.
func (*Readback) Name() string { return "readback" }

// Synopsis implements subcommands.Command.Synopsis.
func (*Readback) Synopsis() string { return "источник, делитель и частота кластеров из регистров" }

// Usage implements subcommands.Command.Usage.
func (*Readback) Usage() string { return "readback [-cluster c0|c1|cci]\n" }

// SetFlags implements subcommands.Command.SetFlags.
func (rb *Readback) SetFlags(f *flag.FlagSet) {
	f.StringVar(&rb.cluster, "cluster", "", "только этот кластер")
}

// Execute implements subcommands.Command.Execute.
func (rb *Readback) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	env := envFrom(args)
	clusters := apcs.Clusters
	if rb.cluster != "" {
		cl, err := apcs.ParseCluster(rb.cluster)
		if err != nil {
			return failed("%v", err)
		}
		clusters = []apcs.Cluster{cl}
	}

	c, m, err := env.openAPCS(ctx)
	if err != nil {
		return failed("%v", err)
	}
	defer m.Close()

	status := subcommands.ExitSuccess
	w := tabwriter.NewWriter(env.Out, 0, 8, 2, ' ', 0)
	fmt.Fprintln(w, "CLUSTER\tSRC\tDIV\tPARENT\tRATE\tENABLED\tROOT_OFF")
	for _, cl := range clusters {
		st, err := c.Status(cl)
		if err != nil {
			fmt.Fprintf(w, "%s\t-\t-\t-\t%v\t-\t-\n", cl, err)
			status = subcommands.ExitFailure
			continue
		}
		fmt.Fprintf(w, "%s\t%d\t%d\t%s\t%d\t%t\t%t\n", cl, st.Src, st.Div, st.Parent, st.Rate, st.Enabled, st.RootOff)
	}
	fmt.Fprintf(w, "%s\t\t\t\t%d\t\t\n", c.HFPLL.Name(), c.HFPLL.Rate())
	w.Flush()
	return status
}

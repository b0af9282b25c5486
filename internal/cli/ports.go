package cli

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"

	"github.com/msm8953-mainline/msm8953ctl/internal/regmap"
)

// Ports implements subcommands.Command for the "ports" command.
type Ports struct{}

// Name implements subcommands.Command.Name.
func (*Ports) Name() string { return "ports" }

// Synopsis implements subcommands.Command.Synopsis.
func (*Ports) Synopsis() string { return "список последовательных портов (для backend console)" }

// Usage implements subcommands.Command.Usage.
func (*Ports) Usage() string { return "ports\n" }

// SetFlags implements subcommands.Command.SetFlags.
func (*Ports) SetFlags(*flag.FlagSet) {}

// Execute implements subcommands.Command.Execute.
func (*Ports) Execute(_ context.Context, _ *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	env := envFrom(args)
	list := env.Ports
	if list == nil {
		list = regmap.Ports
	}
	ports, err := list()
	if err != nil {
		return failed("%v", err)
	}
	if len(ports) == 0 {
		fmt.Fprintln(env.Out, "no serial ports found")
		return subcommands.ExitSuccess
	}
	for _, p := range ports {
		fmt.Fprintln(env.Out, p)
	}
	return subcommands.ExitSuccess
}

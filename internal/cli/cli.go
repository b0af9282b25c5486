// Package cli — команды msm8953ctl (google/subcommands): конфиг → окна регистров → APCS, измерение, гамма.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/google/subcommands"

	"github.com/msm8953-mainline/msm8953ctl/internal/apcs"
	"github.com/msm8953-mainline/msm8953ctl/internal/config"
	"github.com/msm8953-mainline/msm8953ctl/internal/logger"
	"github.com/msm8953-mainline/msm8953ctl/internal/regmap"
)

// ErrDryRun — команде нужно железо, а backend flat.
var ErrDryRun = errors.New("command needs a hardware backend, regmap is flat")

// Env передаётся каждой команде первым аргументом Execute.
type Env struct {
	Config *config.Config
	Out    io.Writer

	// Open открывает окно регистров; nil — regmap.Open.
	Open func(ctx context.Context, cfg config.Regmap) (regmap.Closer, error)
	// Ports перечисляет последовательные порты; nil — regmap.Ports.
	Ports func() ([]string, error)
}

// Register регистрирует все команды через cb (subcommands.Register или свой Commander).
func Register(cb func(cmd subcommands.Command, group string)) {
	cb(subcommands.HelpCommand(), "")
	cb(subcommands.FlagsCommand(), "")
	cb(subcommands.CommandsCommand(), "")

	cb(new(Rate), "clocks")
	cb(new(Readback), "clocks")
	cb(new(Boot), "clocks")
	cb(new(Measure), "clocks")

	cb(new(Gamma), "panel")

	cb(new(Ports), "helpers")
}

func envFrom(args []interface{}) *Env {
	var e *Env
	if len(args) > 0 {
		e, _ = args[0].(*Env)
	}
	if e == nil {
		e = &Env{}
	}
	if e.Config == nil {
		e.Config = config.Default()
	}
	if e.Out == nil {
		e.Out = os.Stdout
	}
	return e
}

func (e *Env) open(ctx context.Context, cfg config.Regmap) (regmap.Closer, error) {
	if e.Open != nil {
		return e.Open(ctx, cfg)
	}
	return regmap.Open(ctx, cfg)
}

// openAPCS открывает окно APCS и собирает контроллер. На flat окно сначала
// приводится в загрузочное состояние, как после первичного загрузчика.
func (e *Env) openAPCS(ctx context.Context) (*apcs.Controller, regmap.Closer, error) {
	cfg := e.Config.APCS
	m, err := e.open(ctx, cfg.Regmap)
	if err != nil {
		return nil, nil, fmt.Errorf("apcs regmap: %w", err)
	}
	c, err := apcs.New(m, apcs.Options{
		XORate:      cfg.XORate,
		GPLL0Rate:   cfg.GPLL0Rate,
		HFPLLRate:   cfg.HFPLLRate,
		HFPLLOffset: cfg.HFPLLOffset,
	})
	if err != nil {
		m.Close()
		return nil, nil, err
	}
	if f, ok := m.(*regmap.Flat); ok {
		if err := dryRun(f, c, cfg.HFPLLOffset); err != nil {
			m.Close()
			return nil, nil, err
		}
	}
	return c, m, nil
}

func dryRun(f *regmap.Flat, c *apcs.Controller, hfpllOffset uint32) error {
	apcs.Simulate(f, hfpllOffset)
	if err := apcs.EarlyConfigure(f); err != nil {
		return err
	}
	logger.NewLogger("cli").Debug("flat regmap: boot configuration simulated")
	return c.Init()
}

func failed(format string, args ...interface{}) subcommands.ExitStatus {
	logger.Error(format, args...)
	return subcommands.ExitFailure
}

// parseRate разбирает частоту: "1190400000", "800M", "1.2G", "19.2m" (суффиксы k, M, G без учёта регистра).
func parseRate(s string) (uint64, error) {
	s = strings.TrimSuffix(strings.TrimSuffix(strings.TrimSpace(s), "Hz"), "hz")
	mult := 1.0
	if n := len(s); n > 0 {
		switch s[n-1] {
		case 'k', 'K':
			mult = 1e3
		case 'm', 'M':
			mult = 1e6
		case 'g', 'G':
			mult = 1e9
		}
		if mult != 1 {
			s = s[:n-1]
		}
	}
	if mult == 1 {
		v, err := strconv.ParseUint(s, 0, 64)
		if err != nil {
			return 0, fmt.Errorf("rate %q: %w", s, err)
		}
		return v, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f < 0 {
		return 0, fmt.Errorf("rate %q: invalid", s)
	}
	return uint64(f*mult + 0.5), nil
}

func mhz(hz uint64) string {
	return strconv.FormatFloat(float64(hz)/1e6, 'f', -1, 64) + " MHz"
}

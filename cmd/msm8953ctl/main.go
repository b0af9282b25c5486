// msm8953ctl — клоки APCS MSM8953 (mux-div c0/c1/cci, HFPLL), измерение частот GCC
// и таблицы гаммы панели S6E3FA7 из MTP.
//
// Использование:
//
//	msm8953ctl readback                        — источник, делитель и частота кластеров
//	msm8953ctl rate -apply c0 1.2G             — перестроить кластер (CCI следует)
//	msm8953ctl boot                            — ранняя конфигурация mux-div
//	msm8953ctl measure apcs_c0_clk             — измерить клок через debug mux
//	msm8953ctl gamma -mtp <hex> -index 36      — таблица гаммы
//	msm8953ctl ports                           — последовательные порты для backend console
//
// По умолчанию регистры flat (dry-run в памяти); backend задаётся в msm8953ctl.yml.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/subcommands"

	"github.com/msm8953-mainline/msm8953ctl/internal/cli"
	"github.com/msm8953-mainline/msm8953ctl/internal/config"
	"github.com/msm8953-mainline/msm8953ctl/internal/logger"
)

func main() {
	configPath := flag.String("config", "", "путь к YAML конфигу (по умолчанию msm8953ctl.yml, если есть)")
	quiet := flag.Bool("quiet", false, "меньше вывода")
	debug := flag.Bool("debug", false, "отладочные сообщения")

	// Все команды регистрируются до разбора флагов.
	cli.Register(subcommands.Register)
	flag.Parse()

	logger.Quiet = *quiet
	logger.SetDebug(*debug)

	cfg, err := loadConfig(*configPath)
	if err != nil {
		logger.Error("config: %v", err)
		os.Exit(int(subcommands.ExitFailure))
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	status := subcommands.Execute(ctx, &cli.Env{Config: cfg, Out: os.Stdout})
	cancel()
	os.Exit(int(status))
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		path = "msm8953ctl.yml"
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return config.Default(), nil
		}
	}
	return config.Load(path)
}

package regmap

import (
	"context"
	"fmt"

	"go.bug.st/serial"

	"github.com/msm8953-mainline/msm8953ctl/internal/config"
)

// Open создаёт бэкенд по конфигу. Адреса возвращённой карты — смещения от cfg.Base.
func Open(ctx context.Context, cfg config.Regmap) (Closer, error) {
	switch cfg.Backend {
	case "", "flat":
		return NewFlat(), nil
	case "devmem":
		m, err := OpenDevMem(cfg.Base, cfg.Size)
		if err != nil {
			return nil, err
		}
		return m, nil
	case "i2c":
		m, err := OpenI2C(cfg.Bus, cfg.Addr, cfg.Base)
		if err != nil {
			return nil, err
		}
		return m, nil
	case "console":
		port, err := ResolvePort(cfg.Port)
		if err != nil {
			return nil, err
		}
		m, err := OpenConsole(ctx, port, cfg.Baud, cfg.Prompt, cfg.Base, cfg.OpTimeout())
		if err != nil {
			return nil, err
		}
		return m, nil
	case "ssh":
		m, err := DialSSH(ctx, SSHOptions{
			Host:       cfg.Host,
			User:       cfg.User,
			KeyFile:    cfg.KeyFile,
			KnownHosts: cfg.KnownHosts,
			Timeout:    cfg.OpTimeout(),
		}, cfg.Base)
		if err != nil {
			return nil, err
		}
		return m, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, cfg.Backend)
}

// Ports возвращает последовательные порты системы.
func Ports() ([]string, error) {
	ports, err := serial.GetPortsList()
	if err != nil {
		return nil, fmt.Errorf("list serial ports: %w", err)
	}
	return ports, nil
}

// ResolvePort подставляет первый найденный порт вместо "auto" или пустой строки.
func ResolvePort(port string) (string, error) {
	if port != "" && port != "auto" {
		return port, nil
	}
	ports, err := Ports()
	if err != nil {
		return "", err
	}
	if len(ports) == 0 {
		return "", fmt.Errorf("no serial ports found")
	}
	return ports[0], nil
}

package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config — конфигурация msm8953ctl: блоки регистров APCS/GCC и калибровка панели.
type Config struct {
	APCS  APCSConfig  `yaml:"apcs"`
	GCC   GCCConfig   `yaml:"gcc"`
	Panel PanelConfig `yaml:"panel"`
}

// Regmap — доступ к окну регистров.
// backend: flat (в памяти, dry-run), devmem (/dev/mem), i2c (мост I2C→AHB), console (U-Boot по UART), ssh (devmem на целевой плате).
type Regmap struct {
	Backend string `yaml:"backend"`
	// Физический адрес начала окна и его размер (devmem, console, ssh; для i2c — база моста)
	Base uint32 `yaml:"base"`
	Size uint32 `yaml:"size"`

	// I2C
	Bus  string `yaml:"bus"`
	Addr uint16 `yaml:"addr"`

	// Console (UART U-Boot); port: auto — первый найденный порт
	Port   string `yaml:"port"`
	Baud   int    `yaml:"baud"`
	Prompt string `yaml:"prompt"`

	// SSH
	Host       string `yaml:"host"`
	User       string `yaml:"user"`
	KeyFile    string `yaml:"key_file"`
	KnownHosts string `yaml:"known_hosts"`

	// Таймаут одной операции (console/ssh), например "2s"
	Timeout string `yaml:"timeout"`
}

// APCSConfig — кластерные клоки CPU (apcs-c0/c1/cci) и их источники.
type APCSConfig struct {
	Regmap      Regmap `yaml:"regmap"`
	XORate      uint64 `yaml:"xo_rate"`
	GPLL0Rate   uint64 `yaml:"gpll0_rate"`
	HFPLLRate   uint64 `yaml:"hfpll_rate"`
	HFPLLOffset uint32 `yaml:"hfpll_offset"`
}

// GCCConfig — блок GCC для измерения частот через debug mux.
type GCCConfig struct {
	Regmap Regmap `yaml:"regmap"`
	// Окно APCS debug mux (0x0b11101c); пусто — берётся окно apcs.regmap
	APCSDebugRegmap *Regmap `yaml:"apcs_debug_regmap"`
}

// PanelConfig — MTP-калибровка панели S6E3FA7 (32 байта hex или файл).
type PanelConfig struct {
	MTP     string `yaml:"mtp"`
	MTPFile string `yaml:"mtp_file"`
}

// Значения по умолчанию (MSM8953)
const (
	DefaultXORate      = 19200000
	DefaultGPLL0Rate   = 800000000
	DefaultHFPLLRate   = 768000000
	DefaultHFPLLOffset = 0x105000
	DefaultAPCSBase    = 0x0b011000
	DefaultAPCSSize    = 0x200000
	DefaultGCCBase     = 0x01800000
	DefaultGCCSize     = 0x80000
	DefaultBaud        = 115200
	DefaultPrompt      = "=> "
	DefaultTimeout     = 2 * time.Second
)

// Default возвращает конфиг по умолчанию (dry-run на flat-регистрах)
func Default() *Config {
	return &Config{
		APCS: APCSConfig{
			Regmap:      Regmap{Backend: "flat", Base: DefaultAPCSBase, Size: DefaultAPCSSize},
			XORate:      DefaultXORate,
			GPLL0Rate:   DefaultGPLL0Rate,
			HFPLLRate:   DefaultHFPLLRate,
			HFPLLOffset: DefaultHFPLLOffset,
		},
		GCC: GCCConfig{
			Regmap: Regmap{Backend: "flat", Base: DefaultGCCBase, Size: DefaultGCCSize},
		},
	}
}

// Load читает конфиг из YAML
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	return Parse(data)
}

// Parse разбирает YAML и подставляет значения по умолчанию
func Parse(data []byte) (*Config, error) {
	var c Config
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	applyDefaults(&c)
	return &c, nil
}

// OpTimeout возвращает таймаут операции; пусто или ошибка разбора → DefaultTimeout.
func (r Regmap) OpTimeout() time.Duration {
	if r.Timeout == "" {
		return DefaultTimeout
	}
	d, err := time.ParseDuration(r.Timeout)
	if err != nil || d <= 0 {
		return DefaultTimeout
	}
	return d
}

// MTPBytes возвращает MTP-блоб из mtp или mtp_file (hex, пробелы и "0x" допускаются).
func (p PanelConfig) MTPBytes() ([]byte, error) {
	s := p.MTP
	if s == "" && p.MTPFile != "" {
		data, err := os.ReadFile(p.MTPFile)
		if err != nil {
			return nil, fmt.Errorf("read mtp: %w", err)
		}
		s = string(data)
	}
	if s == "" {
		return nil, fmt.Errorf("panel: mtp not configured")
	}
	return ParseHex(s)
}

func applyDefaults(c *Config) {
	d := Default()
	if c.APCS.Regmap.Backend == "" {
		c.APCS.Regmap.Backend = d.APCS.Regmap.Backend
	}
	if c.APCS.Regmap.Base == 0 {
		c.APCS.Regmap.Base = d.APCS.Regmap.Base
	}
	if c.APCS.Regmap.Size == 0 {
		c.APCS.Regmap.Size = d.APCS.Regmap.Size
	}
	if c.APCS.XORate == 0 {
		c.APCS.XORate = d.APCS.XORate
	}
	if c.APCS.GPLL0Rate == 0 {
		c.APCS.GPLL0Rate = d.APCS.GPLL0Rate
	}
	if c.APCS.HFPLLRate == 0 {
		c.APCS.HFPLLRate = d.APCS.HFPLLRate
	}
	if c.APCS.HFPLLOffset == 0 {
		c.APCS.HFPLLOffset = d.APCS.HFPLLOffset
	}
	if c.GCC.Regmap.Backend == "" {
		c.GCC.Regmap.Backend = d.GCC.Regmap.Backend
	}
	if c.GCC.Regmap.Base == 0 {
		c.GCC.Regmap.Base = d.GCC.Regmap.Base
	}
	if c.GCC.Regmap.Size == 0 {
		c.GCC.Regmap.Size = d.GCC.Regmap.Size
	}
	regmapDefaults(&c.APCS.Regmap)
	regmapDefaults(&c.GCC.Regmap)
	if c.GCC.APCSDebugRegmap != nil {
		regmapDefaults(c.GCC.APCSDebugRegmap)
	}
}

func regmapDefaults(r *Regmap) {
	if r.Backend == "console" {
		if r.Baud == 0 {
			r.Baud = DefaultBaud
		}
		if r.Prompt == "" {
			r.Prompt = DefaultPrompt
		}
	}
	if r.Backend == "ssh" && r.User == "" {
		r.User = "root"
	}
	if r.Backend == "i2c" && r.Bus == "" {
		r.Bus = "/dev/i2c-1"
	}
}

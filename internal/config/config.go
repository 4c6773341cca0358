// internal/config/config.go
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the simulator configuration file.
type Config struct {
	Window   WindowConfig      `yaml:"window"`
	Channel  ChannelConfig     `yaml:"channel"`
	Scanner  ScannerConfig     `yaml:"scanner"`
	System   SystemConfig      `yaml:"system"`
	Terminal TerminalConfig    `yaml:"terminal"`
	GPIO     *GPIOConfig       `yaml:"gpio"`
	Bindings map[string]string `yaml:"bindings"` // input name -> key name, merged over the defaults
	Script   []ScriptStep      `yaml:"script"`
}

// ---- FRONTENDS ----

type WindowConfig struct {
	Scale  int  `yaml:"scale"`
	TPS    int  `yaml:"tps"`
	Invert bool `yaml:"invert"`
}

type TerminalConfig struct {
	HoldMs  int    `yaml:"hold_ms"`
	LogFile string `yaml:"log_file"`
}

type ScriptStep struct {
	Key    string `yaml:"key"`
	GapMs  int    `yaml:"gap_ms"`
	HoldMs int    `yaml:"hold_ms"`
}

// ---- CORE ----

type ChannelConfig struct {
	Depth int `yaml:"depth"`
}

type ScannerConfig struct {
	IntervalMs int `yaml:"interval_ms"`
}

type SystemConfig struct {
	Source       string `yaml:"source"` // sim | host
	MemoryTotal  uint64 `yaml:"memory_total"`
	BatteryStart uint8  `yaml:"battery_start"`
	BatteryDrain uint8  `yaml:"battery_drain"` // percent per hour
}

type GPIOConfig struct {
	Rows []string `yaml:"rows"`
	Cols []string `yaml:"cols"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Window:   WindowConfig{Scale: 3, TPS: 60, Invert: true},
		Channel:  ChannelConfig{Depth: 16},
		Scanner:  ScannerConfig{IntervalMs: 1},
		System:   SystemConfig{Source: "sim", MemoryTotal: 256 * 1024, BatteryStart: 100, BatteryDrain: 5},
		Terminal: TerminalConfig{HoldMs: 120},
	}
}

// Load reads path over the defaults, then validates and normalizes.
// Unknown keys are an error.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(b)
}

// Parse decodes YAML over the defaults, then validates and normalizes.
// Empty input yields the defaults.
func Parse(b []byte) (*Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := Validate(cfg); err != nil {
		return nil, err
	}
	Normalize(cfg)
	return cfg, nil
}

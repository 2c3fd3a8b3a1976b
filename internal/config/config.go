// Package config loads the YAML file that lists the buzzers to build.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/leandrodaf/buzzer/sdk/contracts"
	"gopkg.in/yaml.v3"
)

// Config is the top-level device file.
type Config struct {
	LogLevel string         `yaml:"log_level"`
	Buzzers  []BuzzerConfig `yaml:"buzzers"`
}

// BuzzerConfig describes one buzzer.
type BuzzerConfig struct {
	Name    string         `yaml:"name"`
	Backend string         `yaml:"backend"`
	Serial  *SerialConfig  `yaml:"serial,omitempty"`
	GPIO    *GPIOConfig    `yaml:"gpio,omitempty"`
	Synth   *SynthConfig   `yaml:"synth,omitempty"`
	MIDI    *MIDIConfig    `yaml:"midi,omitempty"`
	Virtual *VirtualConfig `yaml:"virtual,omitempty"`
}

type SerialConfig struct {
	Port     string `yaml:"port"`
	BaudRate int    `yaml:"baud_rate"`
}

type GPIOConfig struct {
	Pin string `yaml:"pin"`
}

type SynthConfig struct {
	SampleRate uint32  `yaml:"sample_rate"`
	Volume     float64 `yaml:"volume"`
}

type MIDIConfig struct {
	ClientName  string `yaml:"client_name"`
	Destination int    `yaml:"destination"`
	Velocity    uint8  `yaml:"velocity"`
}

type VirtualConfig struct {
	RealTime bool `yaml:"real_time"`
}

var knownBackends = map[contracts.Backend]bool{
	contracts.SystemBackend:  true,
	contracts.BeeepBackend:   true,
	contracts.SerialBackend:  true,
	contracts.GPIOBackend:    true,
	contracts.SynthBackend:   true,
	contracts.MIDIBackend:    true,
	contracts.VirtualBackend: true,
}

// Defaults returns a config with a single system buzzer.
func Defaults() *Config {
	return &Config{
		LogLevel: "info",
		Buzzers: []BuzzerConfig{
			{Name: "buzzer0", Backend: string(contracts.SystemBackend)},
		},
	}
}

// Load reads path. A missing file yields Defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return Defaults(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates a device file.
func Parse(data []byte) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if len(cfg.Buzzers) == 0 {
		cfg.Buzzers = Defaults().Buzzers
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks names are present and unique and backends are known.
func (c *Config) Validate() error {
	var errs []error
	seen := make(map[string]bool, len(c.Buzzers))
	for i, b := range c.Buzzers {
		if b.Name == "" {
			errs = append(errs, fmt.Errorf("buzzers[%d]: name is required", i))
		} else if seen[b.Name] {
			errs = append(errs, fmt.Errorf("buzzers[%d]: duplicate name %q", i, b.Name))
		}
		seen[b.Name] = true

		backend := contracts.Backend(b.Backend)
		switch {
		case b.Backend == "":
		case !knownBackends[backend]:
			errs = append(errs, fmt.Errorf("buzzers[%d]: unknown backend %q", i, b.Backend))
		case backend == contracts.SerialBackend && (b.Serial == nil || b.Serial.Port == ""):
			errs = append(errs, fmt.Errorf("buzzers[%d]: serial backend needs serial.port", i))
		}
	}
	return errors.Join(errs...)
}

// Level maps LogLevel to a contracts.LogLevel, defaulting to info.
func (c *Config) Level() contracts.LogLevel {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return contracts.DebugLevel
	case "warn", "warning":
		return contracts.WarnLevel
	case "error":
		return contracts.ErrorLevel
	default:
		return contracts.InfoLevel
	}
}

// Options converts b to buzzer options.
func (b BuzzerConfig) Options() []contracts.Option {
	opts := []contracts.Option{contracts.WithName(b.Name)}
	if b.Backend != "" {
		opts = append(opts, contracts.WithBackend(contracts.Backend(b.Backend)))
	}
	if b.Serial != nil {
		opts = append(opts, contracts.WithSerialConfig(contracts.SerialConfig{
			Port:     b.Serial.Port,
			BaudRate: b.Serial.BaudRate,
		}))
	}
	if b.GPIO != nil {
		opts = append(opts, contracts.WithGPIOConfig(contracts.GPIOConfig{Pin: b.GPIO.Pin}))
	}
	if b.Synth != nil {
		opts = append(opts, contracts.WithSynthConfig(contracts.SynthConfig{
			SampleRate: b.Synth.SampleRate,
			Volume:     b.Synth.Volume,
		}))
	}
	if b.MIDI != nil {
		opts = append(opts, contracts.WithMIDIConfig(contracts.MIDIConfig{
			ClientName:  b.MIDI.ClientName,
			Destination: b.MIDI.Destination,
			Velocity:    b.MIDI.Velocity,
		}))
	}
	if b.Virtual != nil {
		opts = append(opts, contracts.WithVirtualConfig(contracts.VirtualConfig{RealTime: b.Virtual.RealTime}))
	}
	return opts
}

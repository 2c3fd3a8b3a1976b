package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/leandrodaf/buzzer/sdk/contracts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `
log_level: debug
buzzers:
  - name: door
    backend: serial
    serial:
      port: /dev/ttyACM0
      baud_rate: 9600
  - name: speaker
    backend: synth
    synth:
      sample_rate: 48000
      volume: 0.5
  - name: test
    backend: virtual
    virtual:
      real_time: true
`

func TestParse(t *testing.T) {
	cfg, err := Parse([]byte(sample))
	require.NoError(t, err)

	assert.Equal(t, contracts.DebugLevel, cfg.Level())
	require.Len(t, cfg.Buzzers, 3)
	assert.Equal(t, "door", cfg.Buzzers[0].Name)
	assert.Equal(t, &SerialConfig{Port: "/dev/ttyACM0", BaudRate: 9600}, cfg.Buzzers[0].Serial)
	assert.Equal(t, &SynthConfig{SampleRate: 48000, Volume: 0.5}, cfg.Buzzers[1].Synth)
	assert.True(t, cfg.Buzzers[2].Virtual.RealTime)
	assert.Nil(t, cfg.Buzzers[2].Serial)
}

func TestParseFillsDefaults(t *testing.T) {
	cfg, err := Parse([]byte("{}"))
	require.NoError(t, err)
	assert.Equal(t, Defaults(), cfg)
}

func TestParseRejectsMalformedYAML(t *testing.T) {
	_, err := Parse([]byte("buzzers: [name: {"))
	assert.ErrorContains(t, err, "parse config")
}

func TestValidate(t *testing.T) {
	cfg := &Config{Buzzers: []BuzzerConfig{
		{Name: "a"},
		{Name: "a", Backend: "virtual"},
		{Backend: "beeep"},
		{Name: "b", Backend: "theremin"},
		{Name: "c", Backend: "serial"},
	}}

	err := cfg.Validate()
	require.Error(t, err)
	assert.ErrorContains(t, err, `buzzers[1]: duplicate name "a"`)
	assert.ErrorContains(t, err, "buzzers[2]: name is required")
	assert.ErrorContains(t, err, `buzzers[3]: unknown backend "theremin"`)
	assert.ErrorContains(t, err, "buzzers[4]: serial backend needs serial.port")
	assert.NoError(t, Defaults().Validate())
}

func TestLoad(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Defaults(), cfg)

	path := filepath.Join(t.TempDir(), "buzzers.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o600))
	cfg, err = Load(path)
	require.NoError(t, err)
	assert.Len(t, cfg.Buzzers, 3)
}

func TestLevel(t *testing.T) {
	tests := map[string]contracts.LogLevel{
		"debug":   contracts.DebugLevel,
		"INFO":    contracts.InfoLevel,
		"warn":    contracts.WarnLevel,
		"warning": contracts.WarnLevel,
		"error":   contracts.ErrorLevel,
		"verbose": contracts.InfoLevel,
		"":        contracts.InfoLevel,
	}
	for in, want := range tests {
		assert.Equal(t, want, (&Config{LogLevel: in}).Level(), in)
	}
}

func TestBuzzerOptions(t *testing.T) {
	cfg, err := Parse([]byte(sample))
	require.NoError(t, err)

	var opts contracts.Options
	for _, o := range cfg.Buzzers[0].Options() {
		o(&opts)
	}
	assert.Equal(t, "door", opts.Name)
	assert.Equal(t, contracts.SerialBackend, opts.Backend)
	assert.Equal(t, &contracts.SerialConfig{Port: "/dev/ttyACM0", BaudRate: 9600}, opts.Serial)
	assert.Nil(t, opts.Synth)

	opts = contracts.Options{}
	for _, o := range (BuzzerConfig{Name: "bare"}).Options() {
		o(&opts)
	}
	assert.Equal(t, contracts.Backend(""), opts.Backend)
}

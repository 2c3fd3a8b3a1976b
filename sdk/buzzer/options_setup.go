package buzzer

import (
	"time"

	"github.com/leandrodaf/buzzer/internal/logger"
	"github.com/leandrodaf/buzzer/sdk/contracts"
)

const (
	defaultName       = "buzzer0"
	defaultBaudRate   = 115200
	defaultPin        = "GPIO13"
	defaultSampleRate = 44100
	defaultVolume     = 0.3
	defaultVelocity   = 100
	defaultClientName = "GO Buzzer Client"
)

// applyDefaultOptions sets default values for Options if not explicitly provided.
//
// opts ...contracts.Option: A variadic list of option functions that can modify Options.
//
// Returns:
//   - contracts.Options: The finalized options with defaults applied.
//   - error: An error if there was an issue applying the options.
func applyDefaultOptions(opts ...contracts.Option) (contracts.Options, error) {
	options := &contracts.Options{}
	for _, opt := range opts {
		opt(options)
	}

	if options.Logger == nil {
		options.Logger = logger.NewZapLogger()
	}
	if options.Name == "" {
		options.Name = defaultName
	}
	if options.Backend == "" {
		options.Backend = contracts.SystemBackend
	}
	if options.Sleep == nil {
		options.Sleep = time.Sleep
	}

	if options.Serial == nil {
		options.Serial = &contracts.SerialConfig{}
	}
	if options.Serial.BaudRate == 0 {
		options.Serial.BaudRate = defaultBaudRate
	}
	if options.GPIO == nil {
		options.GPIO = &contracts.GPIOConfig{}
	}
	if options.GPIO.Pin == "" {
		options.GPIO.Pin = defaultPin
	}
	if options.Synth == nil {
		options.Synth = &contracts.SynthConfig{}
	}
	if options.Synth.SampleRate == 0 {
		options.Synth.SampleRate = defaultSampleRate
	}
	if options.Synth.Volume <= 0 || options.Synth.Volume > 1 {
		options.Synth.Volume = defaultVolume
	}
	if options.MIDI == nil {
		options.MIDI = &contracts.MIDIConfig{}
	}
	if options.MIDI.ClientName == "" {
		options.MIDI.ClientName = defaultClientName
	}
	if options.MIDI.Velocity == 0 {
		options.MIDI.Velocity = defaultVelocity
	}
	if options.Virtual == nil {
		options.Virtual = &contracts.VirtualConfig{}
	}

	options.Logger.SetLevel(options.LogLevel)
	return *options, nil
}

package contracts

import "time"

// Backend names a buzzer implementation.
type Backend string

const (
	// SystemBackend picks the native beeper of the running OS.
	SystemBackend Backend = "system"
	// BeeepBackend uses the portable beeep library.
	BeeepBackend Backend = "beeep"
	// SerialBackend drives a piezo attached to a microcontroller over a serial line.
	SerialBackend Backend = "serial"
	// GPIOBackend drives a piezo from a hardware PWM pin.
	GPIOBackend Backend = "gpio"
	// SynthBackend plays a square wave on the default audio output.
	SynthBackend Backend = "synth"
	// MIDIBackend sends tones as notes to a CoreMIDI destination (macOS).
	MIDIBackend Backend = "midi"
	// VirtualBackend records calls in memory and never makes a sound.
	VirtualBackend Backend = "virtual"
)

// SerialConfig holds configuration for the serial backend.
type SerialConfig struct {
	Port     string // Device path, e.g. /dev/ttyUSB0.
	BaudRate int    // Line speed, 115200 when zero.
}

// GPIOConfig holds configuration for the GPIO PWM backend.
type GPIOConfig struct {
	Pin string // periph.io pin name, e.g. GPIO13.
}

// SynthConfig holds configuration for the square-wave backend.
type SynthConfig struct {
	SampleRate uint32  // Output sample rate, 44100 when zero.
	Volume     float64 // Amplitude in (0,1], 0.3 when zero.
}

// MIDIConfig holds configuration for the CoreMIDI backend.
type MIDIConfig struct {
	ClientName  string // Name of the CoreMIDI client.
	Destination int    // Index into the list of CoreMIDI destinations.
	Velocity    uint8  // Note-on velocity, 100 when zero.
}

// VirtualConfig holds configuration for the virtual backend.
type VirtualConfig struct {
	RealTime bool // Sleep for every beep instead of returning immediately.
}

// Options defines the configuration used to build a buzzer.
type Options struct {
	Name     string   // Name the buzzer registers under.
	Backend  Backend  // Which implementation to build.
	Logger   Logger   // Logger for backend events and errors.
	LogLevel LogLevel // Level of logging to use.
	Serial   *SerialConfig
	GPIO     *GPIOConfig
	Synth    *SynthConfig
	MIDI     *MIDIConfig
	Virtual  *VirtualConfig

	// Sleep blocks for the duration of a beep. Backends that play
	// asynchronously use it to keep Beep synchronous.
	Sleep func(time.Duration)
}

// Option is a function that modifies Options.
type Option func(*Options)

// WithName sets the buzzer name.
func WithName(name string) Option {
	return func(opts *Options) {
		opts.Name = name
	}
}

// WithBackend selects the buzzer implementation.
func WithBackend(b Backend) Option {
	return func(opts *Options) {
		opts.Backend = b
	}
}

// WithLogger sets the logger for the buzzer.
func WithLogger(l Logger) Option {
	return func(opts *Options) {
		opts.Logger = l
	}
}

// WithLogLevel sets the logging level.
func WithLogLevel(level LogLevel) Option {
	return func(opts *Options) {
		opts.LogLevel = level
	}
}

// WithSerialConfig sets the serial backend configuration.
func WithSerialConfig(config SerialConfig) Option {
	return func(opts *Options) {
		opts.Serial = &config
	}
}

// WithGPIOConfig sets the GPIO backend configuration.
func WithGPIOConfig(config GPIOConfig) Option {
	return func(opts *Options) {
		opts.GPIO = &config
	}
}

// WithSynthConfig sets the square-wave backend configuration.
func WithSynthConfig(config SynthConfig) Option {
	return func(opts *Options) {
		opts.Synth = &config
	}
}

// WithMIDIConfig sets the CoreMIDI backend configuration.
func WithMIDIConfig(config MIDIConfig) Option {
	return func(opts *Options) {
		opts.MIDI = &config
	}
}

// WithVirtualConfig sets the virtual backend configuration.
func WithVirtualConfig(config VirtualConfig) Option {
	return func(opts *Options) {
		opts.Virtual = &config
	}
}

// WithSleep replaces the function backends use to wait out a beep.
func WithSleep(sleep func(time.Duration)) Option {
	return func(opts *Options) {
		opts.Sleep = sleep
	}
}

package buzzer

import (
	"testing"
	"time"

	"github.com/leandrodaf/buzzer/internal/buzzer/buzzervirtual"
	"github.com/leandrodaf/buzzer/internal/logger"
	"github.com/leandrodaf/buzzer/sdk/contracts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyDefaultOptions(t *testing.T) {
	opts, err := applyDefaultOptions()
	require.NoError(t, err)

	assert.NotNil(t, opts.Logger)
	assert.NotNil(t, opts.Sleep)
	assert.Equal(t, defaultName, opts.Name)
	assert.Equal(t, contracts.SystemBackend, opts.Backend)
	assert.Equal(t, defaultBaudRate, opts.Serial.BaudRate)
	assert.Equal(t, defaultPin, opts.GPIO.Pin)
	assert.Equal(t, uint32(defaultSampleRate), opts.Synth.SampleRate)
	assert.Equal(t, defaultVolume, opts.Synth.Volume)
	assert.Equal(t, defaultClientName, opts.MIDI.ClientName)
	assert.Equal(t, uint8(defaultVelocity), opts.MIDI.Velocity)
	assert.False(t, opts.Virtual.RealTime)
}

func TestApplyDefaultOptionsKeepsExplicitValues(t *testing.T) {
	opts, err := applyDefaultOptions(
		contracts.WithName("door"),
		contracts.WithBackend(contracts.SerialBackend),
		contracts.WithSerialConfig(contracts.SerialConfig{Port: "/dev/ttyACM0", BaudRate: 9600}),
		contracts.WithGPIOConfig(contracts.GPIOConfig{Pin: "GPIO18"}),
		contracts.WithSynthConfig(contracts.SynthConfig{SampleRate: 22050, Volume: 2}),
	)
	require.NoError(t, err)

	assert.Equal(t, "door", opts.Name)
	assert.Equal(t, contracts.SerialBackend, opts.Backend)
	assert.Equal(t, contracts.SerialConfig{Port: "/dev/ttyACM0", BaudRate: 9600}, *opts.Serial)
	assert.Equal(t, "GPIO18", opts.GPIO.Pin)
	assert.Equal(t, uint32(22050), opts.Synth.SampleRate)
	assert.Equal(t, defaultVolume, opts.Synth.Volume, "volume above 1 falls back to the default")
}

func TestNewBuzzerVirtual(t *testing.T) {
	var slept time.Duration
	b, err := NewBuzzer(
		contracts.WithName("v"),
		contracts.WithBackend(contracts.VirtualBackend),
		contracts.WithVirtualConfig(contracts.VirtualConfig{RealTime: true}),
		contracts.WithLogger(logger.NewNopLogger()),
		contracts.WithSleep(func(d time.Duration) { slept += d }),
	)
	require.NoError(t, err)
	require.IsType(t, &buzzervirtual.Buzzer{}, b)
	assert.Equal(t, "v", b.Name())

	Beep(b, 440, 25)
	assert.Equal(t, 25*time.Millisecond, slept)
}

func TestNewBuzzerUnknownBackend(t *testing.T) {
	_, err := NewBuzzer(
		contracts.WithBackend("theremin"),
		contracts.WithLogger(logger.NewNopLogger()),
	)
	assert.ErrorIs(t, err, ErrUnknownBackend)
}

func TestNewBuzzerSerialWithoutPort(t *testing.T) {
	_, err := NewBuzzer(
		contracts.WithBackend(contracts.SerialBackend),
		contracts.WithLogger(logger.NewNopLogger()),
	)
	assert.Error(t, err)
}

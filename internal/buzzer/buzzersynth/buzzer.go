// Package buzzersynth plays a square wave on the default audio output
// through miniaudio (gen2brain/malgo).
package buzzersynth

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gen2brain/malgo"
	"github.com/leandrodaf/buzzer/sdk/contracts"
)

// Buzzer keeps a playback device running and changes the oscillator
// frequency from the control calls.
type Buzzer struct {
	name   string
	logger contracts.Logger
	sleep  func(time.Duration)
	osc    *oscillator

	frequency atomic.Int64 // read by the audio callback

	mu      sync.Mutex
	ctx     *malgo.AllocatedContext
	device  *malgo.Device
	running bool
}

// NewBuzzer opens the default playback device.
func NewBuzzer(options *contracts.Options) (contracts.Buzzer, error) {
	b := newBuzzer(options)

	ctx, err := malgo.InitContext(nil, malgo.ContextConfig{}, nil)
	if err != nil {
		return nil, fmt.Errorf("init audio context: %w", err)
	}

	config := malgo.DefaultDeviceConfig(malgo.Playback)
	config.Playback.Format = malgo.FormatS16
	config.Playback.Channels = 1
	config.SampleRate = options.Synth.SampleRate

	device, err := malgo.InitDevice(ctx.Context, config, malgo.DeviceCallbacks{Data: b.dataCallback})
	if err != nil {
		_ = ctx.Uninit()
		ctx.Free()
		return nil, fmt.Errorf("init playback device: %w", err)
	}
	b.ctx = ctx
	b.device = device
	b.start()

	options.Logger.Info("Square-wave buzzer created",
		options.Logger.Field().Int("sampleRate", int(options.Synth.SampleRate)))
	return b, nil
}

func newBuzzer(options *contracts.Options) *Buzzer {
	sleep := options.Sleep
	if sleep == nil {
		sleep = time.Sleep
	}
	return &Buzzer{
		name:   options.Name,
		logger: options.Logger,
		sleep:  sleep,
		osc:    newOscillator(options.Synth.SampleRate, options.Synth.Volume),
	}
}

func (b *Buzzer) dataCallback(pOutput, _ []byte, _ uint32) {
	b.osc.fill(pOutput, int(b.frequency.Load()))
}

// Name implements contracts.Buzzer.
func (b *Buzzer) Name() string { return b.name }

// Resume restarts the playback device.
func (b *Buzzer) Resume() { b.start() }

// Suspend stops the playback device; the frequency is kept.
func (b *Buzzer) Suspend() { b.stop() }

// Exit stops the device and releases the audio context.
func (b *Buzzer) Exit() {
	b.stop()

	b.mu.Lock()
	defer b.mu.Unlock()
	if b.device != nil {
		b.device.Uninit()
		b.device = nil
	}
	if b.ctx != nil {
		if err := b.ctx.Uninit(); err != nil {
			b.logger.Warn("Failed to release audio context", b.logger.Field().Error("error", err))
		}
		b.ctx.Free()
		b.ctx = nil
	}
}

// SetFrequency implements contracts.FrequencySetter.
func (b *Buzzer) SetFrequency(hz int) {
	b.frequency.Store(int64(hz))
}

// Frequency implements contracts.FrequencyGetter.
func (b *Buzzer) Frequency() int {
	return int(b.frequency.Load())
}

// Beep implements contracts.Beeper.
func (b *Buzzer) Beep(hz, ms int) {
	b.frequency.Store(int64(hz))
	b.sleep(time.Duration(ms) * time.Millisecond)
	b.frequency.Store(0)
}

func (b *Buzzer) start() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.device == nil || b.running {
		return
	}
	if err := b.device.Start(); err != nil {
		b.logger.Error("Failed to start playback device", b.logger.Field().Error("error", err))
		return
	}
	b.running = true
}

func (b *Buzzer) stop() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.device == nil || !b.running {
		return
	}
	if err := b.device.Stop(); err != nil {
		b.logger.Warn("Failed to stop playback device", b.logger.Field().Error("error", err))
	}
	b.running = false
}

// Package buzzergpio drives a passive piezo from a hardware PWM pin using periph.io.
package buzzergpio

import (
	"fmt"
	"sync"
	"time"

	"github.com/leandrodaf/buzzer/sdk/contracts"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/host/v3"
)

// pwmPin is the part of gpio.PinOut the buzzer needs.
type pwmPin interface {
	Out(l gpio.Level) error
	PWM(duty gpio.Duty, f physic.Frequency) error
}

// Buzzer toggles a PWM pin at 50% duty to produce a square wave.
type Buzzer struct {
	name   string
	logger contracts.Logger
	sleep  func(time.Duration)

	mu        sync.Mutex
	pin       pwmPin
	frequency int
	suspended bool
}

// NewBuzzer initializes periph.io and resolves the configured pin.
func NewBuzzer(options *contracts.Options) (contracts.Buzzer, error) {
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("periph host init: %w", err)
	}

	name := options.GPIO.Pin
	p := gpioreg.ByName(name)
	if p == nil {
		return nil, fmt.Errorf("pin %s not found in hardware", name)
	}

	options.Logger.Info("GPIO buzzer created", options.Logger.Field().String("pin", name))
	return newBuzzer(options, p), nil
}

func newBuzzer(options *contracts.Options, pin pwmPin) *Buzzer {
	sleep := options.Sleep
	if sleep == nil {
		sleep = time.Sleep
	}
	return &Buzzer{
		name:   options.Name,
		logger: options.Logger,
		sleep:  sleep,
		pin:    pin,
	}
}

// Name implements contracts.Buzzer.
func (b *Buzzer) Name() string { return b.name }

// Init drives the pin low so the piezo starts silent.
func (b *Buzzer) Init() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.driveLocked(0)
}

// Exit silences the pin.
func (b *Buzzer) Exit() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.frequency = 0
	b.driveLocked(0)
}

// SetFrequency implements contracts.FrequencySetter.
func (b *Buzzer) SetFrequency(hz int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.frequency = hz
	if !b.suspended {
		b.driveLocked(hz)
	}
}

// Frequency implements contracts.FrequencyGetter.
func (b *Buzzer) Frequency() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.frequency
}

// Beep implements contracts.Beeper. A suspended buzzer stays silent but
// still waits out the duration.
func (b *Buzzer) Beep(hz, ms int) {
	b.mu.Lock()
	b.frequency = hz
	if !b.suspended {
		b.driveLocked(hz)
	}
	b.mu.Unlock()

	b.sleep(time.Duration(ms) * time.Millisecond)

	b.mu.Lock()
	b.frequency = 0
	if !b.suspended {
		b.driveLocked(0)
	}
	b.mu.Unlock()
}

// Suspend silences the pin and keeps the frequency for Resume.
func (b *Buzzer) Suspend() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.suspended = true
	b.driveLocked(0)
}

// Resume restores the frequency held before Suspend.
func (b *Buzzer) Resume() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.suspended = false
	b.driveLocked(b.frequency)
}

func (b *Buzzer) driveLocked(hz int) {
	var err error
	if hz > 0 {
		err = b.pin.PWM(gpio.DutyHalf, physic.Frequency(hz)*physic.Hertz)
	} else {
		err = b.pin.Out(gpio.Low)
	}
	if err != nil {
		b.logger.Warn("Failed to drive buzzer pin",
			b.logger.Field().Int("hz", hz),
			b.logger.Field().Error("error", err))
	}
}

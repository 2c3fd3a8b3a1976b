// Package buzzerbeeep drives the system beeper through gen2brain/beeep.
package buzzerbeeep

import (
	"sync"
	"time"

	"github.com/gen2brain/beeep"
	"github.com/leandrodaf/buzzer/sdk/contracts"
)

// beepFunc matches beeep.Beep.
type beepFunc func(freq float64, duration int) error

// Buzzer sounds tones on the default system beeper. beeep.Beep blocks on
// most platforms; when it returns early the remainder is slept so Beep is
// always synchronous.
type Buzzer struct {
	name   string
	logger contracts.Logger
	beep   beepFunc
	sleep  func(time.Duration)
	now    func() time.Time

	mu        sync.Mutex
	frequency int
}

// NewBuzzer creates a beeep-backed buzzer.
func NewBuzzer(options *contracts.Options) (contracts.Buzzer, error) {
	options.Logger.Info("beeep buzzer created")
	return newBuzzer(options, beeep.Beep), nil
}

func newBuzzer(options *contracts.Options, beep beepFunc) *Buzzer {
	sleep := options.Sleep
	if sleep == nil {
		sleep = time.Sleep
	}
	return &Buzzer{
		name:   options.Name,
		logger: options.Logger,
		beep:   beep,
		sleep:  sleep,
		now:    time.Now,
	}
}

// Name implements contracts.Buzzer.
func (b *Buzzer) Name() string { return b.name }

// SetFrequency stores the frequency used by Frequency. The system beeper
// cannot hold a tone indefinitely, so nothing sounds until the next Beep.
func (b *Buzzer) SetFrequency(hz int) {
	b.mu.Lock()
	b.frequency = hz
	b.mu.Unlock()
}

// Frequency implements contracts.FrequencyGetter.
func (b *Buzzer) Frequency() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.frequency
}

// Beep implements contracts.Beeper.
func (b *Buzzer) Beep(hz, ms int) {
	want := time.Duration(ms) * time.Millisecond
	if hz == 0 || ms == 0 {
		b.sleep(want)
		return
	}

	start := b.now()
	if err := b.beep(float64(hz), ms); err != nil {
		b.logger.Warn("beeep failed",
			b.logger.Field().Int("hz", hz),
			b.logger.Field().Int("ms", ms),
			b.logger.Field().Error("error", err))
	}
	if rest := want - b.now().Sub(start); rest > 0 {
		b.sleep(rest)
	}
}

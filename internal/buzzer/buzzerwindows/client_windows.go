//go:build windows
// +build windows

package buzzerwindows

import (
	"sync"
	"time"

	"github.com/leandrodaf/buzzer/sdk/contracts"
	"golang.org/x/sys/windows"
)

// Frequency range accepted by kernel32 Beep.
const (
	minBeepFrequency = 37
	maxBeepFrequency = 32767
)

// Load the kernel32.dll library and the Beep function
var (
	kernel32 = windows.NewLazySystemDLL("kernel32.dll")
	procBeep = kernel32.NewProc("Beep")
)

// Buzzer sounds tones on the PC speaker through kernel32 Beep, which blocks
// for the whole duration.
type Buzzer struct {
	name   string
	logger contracts.Logger
	sleep  func(time.Duration)

	mu        sync.Mutex
	frequency int
}

// NewBuzzer creates a buzzer for Windows
func NewBuzzer(options *contracts.Options) (contracts.Buzzer, error) {
	if err := procBeep.Find(); err != nil {
		return nil, err
	}
	options.Logger.Info("Buzzer created for Windows")

	sleep := options.Sleep
	if sleep == nil {
		sleep = time.Sleep
	}
	return &Buzzer{
		name:   options.Name,
		logger: options.Logger,
		sleep:  sleep,
	}, nil
}

// Name implements contracts.Buzzer.
func (b *Buzzer) Name() string { return b.name }

// SetFrequency stores the frequency; the PC speaker cannot hold a tone
// without blocking, so it only sounds through Beep.
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

// Beep implements contracts.Beeper. Frequencies the speaker cannot produce
// are played as silence of the same length.
func (b *Buzzer) Beep(hz, ms int) {
	if ms == 0 {
		return
	}
	if hz < minBeepFrequency || hz > maxBeepFrequency {
		if hz != 0 {
			b.logger.Debug("Frequency out of speaker range, resting", b.logger.Field().Int("hz", hz))
		}
		b.sleep(time.Duration(ms) * time.Millisecond)
		return
	}

	r1, _, err := procBeep.Call(uintptr(hz), uintptr(ms))
	if r1 == 0 {
		b.logger.Warn("kernel32 Beep failed",
			b.logger.Field().Int("hz", hz),
			b.logger.Field().Int("ms", ms),
			b.logger.Field().Error("error", err))
		b.sleep(time.Duration(ms) * time.Millisecond)
	}
}

// Package buzzervirtual provides an in-memory buzzer that records every call.
// It backs the "virtual" backend and the tests of the packages above it.
package buzzervirtual

import (
	"sync"
	"time"

	"github.com/leandrodaf/buzzer/internal/logger"
	"github.com/leandrodaf/buzzer/sdk/contracts"
)

// Op names a recorded call.
type Op string

const (
	OpSetFrequency Op = "set"
	OpBeep         Op = "beep"
	OpInit         Op = "init"
	OpExit         Op = "exit"
	OpSuspend      Op = "suspend"
	OpResume       Op = "resume"
)

// Call is one recorded operation. Hz and Ms are zero when they do not apply.
type Call struct {
	Op Op
	Hz int
	Ms int
}

// Buzzer records calls and keeps a frequency register. It binds every
// capability in contracts.
type Buzzer struct {
	name     string
	logger   contracts.Logger
	realTime bool
	sleep    func(time.Duration)

	mu        sync.Mutex
	frequency int
	suspended bool
	calls     []Call
}

// New returns a silent, non-sleeping virtual buzzer.
func New(name string) *Buzzer {
	return &Buzzer{name: name, logger: logger.NewNopLogger(), sleep: time.Sleep}
}

// NewBuzzer builds a virtual buzzer from options.
func NewBuzzer(options *contracts.Options) (contracts.Buzzer, error) {
	b := &Buzzer{
		name:   options.Name,
		logger: options.Logger,
		sleep:  options.Sleep,
	}
	if b.sleep == nil {
		b.sleep = time.Sleep
	}
	if options.Virtual != nil {
		b.realTime = options.Virtual.RealTime
	}
	options.Logger.Info("Virtual buzzer created", options.Logger.Field().Bool("realTime", b.realTime))
	return b, nil
}

// Name implements contracts.Buzzer.
func (b *Buzzer) Name() string { return b.name }

// SetFrequency implements contracts.FrequencySetter.
func (b *Buzzer) SetFrequency(hz int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.frequency = hz
	b.calls = append(b.calls, Call{Op: OpSetFrequency, Hz: hz})
}

// Frequency implements contracts.FrequencyGetter.
func (b *Buzzer) Frequency() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.frequency
}

// Beep implements contracts.Beeper. The register holds hz while the beep
// lasts and reads 0 afterwards.
func (b *Buzzer) Beep(hz, ms int) {
	b.mu.Lock()
	b.frequency = hz
	b.calls = append(b.calls, Call{Op: OpBeep, Hz: hz, Ms: ms})
	b.mu.Unlock()

	b.logger.Debug("Virtual beep",
		b.logger.Field().Int("hz", hz),
		b.logger.Field().Int("ms", ms))
	if b.realTime && ms > 0 {
		b.sleep(time.Duration(ms) * time.Millisecond)
	}

	b.mu.Lock()
	b.frequency = 0
	b.mu.Unlock()
}

// Init implements contracts.Initializer.
func (b *Buzzer) Init() { b.record(Call{Op: OpInit}) }

// Exit implements contracts.Exiter.
func (b *Buzzer) Exit() { b.record(Call{Op: OpExit}) }

// Suspend implements contracts.Suspender.
func (b *Buzzer) Suspend() {
	b.mu.Lock()
	b.suspended = true
	b.mu.Unlock()
	b.record(Call{Op: OpSuspend})
}

// Resume implements contracts.Resumer.
func (b *Buzzer) Resume() {
	b.mu.Lock()
	b.suspended = false
	b.mu.Unlock()
	b.record(Call{Op: OpResume})
}

// Suspended reports whether the last power notification was a suspend.
func (b *Buzzer) Suspended() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.suspended
}

// Calls returns a copy of every recorded call in order.
func (b *Buzzer) Calls() []Call {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]Call(nil), b.calls...)
}

// Beeps returns only the recorded beeps.
func (b *Buzzer) Beeps() []Call {
	var beeps []Call
	for _, c := range b.Calls() {
		if c.Op == OpBeep {
			beeps = append(beeps, c)
		}
	}
	return beeps
}

// Count returns how many times op was recorded.
func (b *Buzzer) Count(op Op) int {
	n := 0
	for _, c := range b.Calls() {
		if c.Op == op {
			n++
		}
	}
	return n
}

// Reset forgets recorded calls.
func (b *Buzzer) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.calls = nil
}

func (b *Buzzer) record(c Call) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.calls = append(b.calls, c)
}

package buzzer

import (
	"github.com/leandrodaf/buzzer/sdk/contracts"
)

// SetFrequency holds the buzzer at hz. Negative values are clamped to 0.
// It does nothing when b is nil or has no FrequencySetter.
func SetFrequency(b contracts.Buzzer, hz int) {
	if s, ok := b.(contracts.FrequencySetter); ok {
		s.SetFrequency(max(hz, 0))
	}
}

// Frequency reports the buzzer's current frequency, or 0 when b is nil or
// cannot report it.
func Frequency(b contracts.Buzzer) int {
	if g, ok := b.(contracts.FrequencyGetter); ok {
		return g.Frequency()
	}
	return 0
}

// Beep sounds hz for ms milliseconds and returns when the backend is done.
// Both arguments are clamped to 0. A zero hz is a rest.
func Beep(b contracts.Buzzer, hz, ms int) {
	if bp, ok := b.(contracts.Beeper); ok {
		bp.Beep(max(hz, 0), max(ms, 0))
	}
}

// Init relays the registration hook.
func Init(b contracts.Buzzer) {
	if i, ok := b.(contracts.Initializer); ok {
		i.Init()
	}
}

// Exit relays the unregistration hook.
func Exit(b contracts.Buzzer) {
	if e, ok := b.(contracts.Exiter); ok {
		e.Exit()
	}
}

// Suspend relays a power-down notification.
func Suspend(b contracts.Buzzer) {
	if s, ok := b.(contracts.Suspender); ok {
		s.Suspend()
	}
}

// Resume relays a power-up notification.
func Resume(b contracts.Buzzer) {
	if r, ok := b.(contracts.Resumer); ok {
		r.Resume()
	}
}

// Capabilities lists the operations b binds, in a fixed order.
func Capabilities(b contracts.Buzzer) []string {
	if b == nil {
		return nil
	}
	var caps []string
	if _, ok := b.(contracts.FrequencySetter); ok {
		caps = append(caps, contracts.CapSetFrequency)
	}
	if _, ok := b.(contracts.FrequencyGetter); ok {
		caps = append(caps, contracts.CapGetFrequency)
	}
	if _, ok := b.(contracts.Beeper); ok {
		caps = append(caps, contracts.CapBeep)
	}
	if _, ok := b.(contracts.Initializer); ok {
		caps = append(caps, contracts.CapInit)
	}
	if _, ok := b.(contracts.Exiter); ok {
		caps = append(caps, contracts.CapExit)
	}
	if _, ok := b.(contracts.Suspender); ok {
		caps = append(caps, contracts.CapSuspend)
	}
	if _, ok := b.(contracts.Resumer); ok {
		caps = append(caps, contracts.CapResume)
	}
	return caps
}

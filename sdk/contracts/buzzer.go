package contracts

// Buzzer is a handle to one tone-producing backend. The only thing every
// backend must provide is a name; each control operation lives in its own
// optional interface below and is discovered with a type assertion.
type Buzzer interface {
	Name() string // Name used by the registry for lookup.
}

// FrequencySetter is implemented by backends that can hold a tone at a frequency.
type FrequencySetter interface {
	SetFrequency(hz int)
}

// FrequencyGetter is implemented by backends that can report their current frequency.
type FrequencyGetter interface {
	Frequency() int
}

// Beeper is implemented by backends that can sound a tone for a duration.
// Beep must block for ms milliseconds; a zero hz means silence.
type Beeper interface {
	Beep(hz, ms int)
}

// Initializer is called once when the buzzer is registered.
type Initializer interface {
	Init()
}

// Exiter is called once when the buzzer is unregistered.
type Exiter interface {
	Exit()
}

// Suspender is called when the underlying device is suspended.
type Suspender interface {
	Suspend()
}

// Resumer is called when the underlying device is resumed.
type Resumer interface {
	Resume()
}

// Capability names reported by buzzer.Capabilities and DeviceInfo.
const (
	CapSetFrequency = "set-frequency"
	CapGetFrequency = "get-frequency"
	CapBeep         = "beep"
	CapInit         = "init"
	CapExit         = "exit"
	CapSuspend      = "suspend"
	CapResume       = "resume"
)

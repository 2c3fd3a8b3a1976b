package buzzer

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/leandrodaf/buzzer/internal/buzzer/buzzerbeeep"
	"github.com/leandrodaf/buzzer/internal/buzzer/buzzerdarwin"
	"github.com/leandrodaf/buzzer/internal/buzzer/buzzergpio"
	"github.com/leandrodaf/buzzer/internal/buzzer/buzzerserial"
	"github.com/leandrodaf/buzzer/internal/buzzer/buzzersynth"
	"github.com/leandrodaf/buzzer/internal/buzzer/buzzervirtual"
	"github.com/leandrodaf/buzzer/internal/buzzer/buzzerwindows"
	"github.com/leandrodaf/buzzer/sdk/contracts"
)

// ErrUnknownBackend is returned when Options.Backend names no implementation.
var ErrUnknownBackend = errors.New("unknown buzzer backend")

type initializer func(*contracts.Options) (contracts.Buzzer, error)

// systemInitializers maps OS names to the native beeper of that OS.
// Other systems fall back to beeep.
var systemInitializers = map[string]initializer{
	"windows": buzzerwindows.NewBuzzer, // kernel32 Beep.
}

// backendInitializers maps backend kinds to their constructors.
var backendInitializers = map[contracts.Backend]initializer{
	contracts.SystemBackend:  newSystemBuzzer,
	contracts.BeeepBackend:   buzzerbeeep.NewBuzzer,
	contracts.SerialBackend:  buzzerserial.NewBuzzer,
	contracts.GPIOBackend:    buzzergpio.NewBuzzer,
	contracts.SynthBackend:   buzzersynth.NewBuzzer,
	contracts.MIDIBackend:    buzzerdarwin.NewBuzzer,
	contracts.VirtualBackend: buzzervirtual.NewBuzzer,
}

// NewBackend builds the backend named by opts.Backend. Unlike NewBuzzer it
// applies no defaults.
//
// opts *contracts.Options: Fully populated options.
//
// Returns:
//   - contracts.Buzzer: The backend handle.
//   - error: ErrUnknownBackend, or the backend's own initialization error.
func NewBackend(opts *contracts.Options) (contracts.Buzzer, error) {
	if initializer, exists := backendInitializers[opts.Backend]; exists {
		return initializer(opts)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, opts.Backend)
}

func newSystemBuzzer(opts *contracts.Options) (contracts.Buzzer, error) {
	if initializer, exists := systemInitializers[runtime.GOOS]; exists {
		return initializer(opts)
	}
	return buzzerbeeep.NewBuzzer(opts)
}

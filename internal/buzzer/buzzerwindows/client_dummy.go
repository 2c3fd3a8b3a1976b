//go:build !windows
// +build !windows

package buzzerwindows

import (
	"github.com/leandrodaf/buzzer/sdk/contracts"
)

type dummyBuzzer struct {
	name   string
	logger contracts.Logger
}

// NewBuzzer initializes a dummy buzzer for non-Windows systems.
func NewBuzzer(options *contracts.Options) (contracts.Buzzer, error) {
	options.Logger.Info("Using dummy kernel32 buzzer for non-Windows system")
	return &dummyBuzzer{
		name:   options.Name,
		logger: options.Logger,
	}, nil
}

// Name returns the configured buzzer name.
func (b *dummyBuzzer) Name() string { return b.name }

// Beep logs a warning; the PC speaker is not reachable on this platform.
func (b *dummyBuzzer) Beep(hz, ms int) {
	b.logger.Warn("Beep called on dummy kernel32 buzzer",
		b.logger.Field().Int("hz", hz),
		b.logger.Field().Int("ms", ms))
}

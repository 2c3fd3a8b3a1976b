//go:build !darwin
// +build !darwin

package buzzerdarwin

import (
	"github.com/leandrodaf/buzzer/sdk/contracts"
)

type DummyBuzzer struct {
	name   string
	logger contracts.Logger
}

func NewBuzzer(options *contracts.Options) (contracts.Buzzer, error) {
	options.Logger.Info("Using dummy MIDI buzzer for non-macOS system")
	return &DummyBuzzer{
		name:   options.Name,
		logger: options.Logger,
	}, nil
}

func (b *DummyBuzzer) Name() string { return b.name }

func (b *DummyBuzzer) Beep(hz, ms int) {
	b.logger.Warn("Beep called on dummy MIDI buzzer",
		b.logger.Field().Int("hz", hz),
		b.logger.Field().Int("note", int(midiNote(hz))),
		b.logger.Field().Int("ms", ms))
}

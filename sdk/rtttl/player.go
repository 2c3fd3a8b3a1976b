package rtttl

import (
	"github.com/leandrodaf/buzzer/internal/logger"
	"github.com/leandrodaf/buzzer/sdk/buzzer"
	"github.com/leandrodaf/buzzer/sdk/contracts"
)

// GapMs is the silence inserted after every note so repeated notes stay
// distinct.
const GapMs = 10

// Player sequences decoded tones onto a buzzer. It keeps no state between
// calls; one Player may serve any number of buzzers, but a single buzzer
// must not be given two tunes at once.
type Player struct {
	logger contracts.Logger
}

// NewPlayer returns a Player that traces each tune and tone at debug level.
// A nil logger discards the traces.
func NewPlayer(l contracts.Logger) *Player {
	if l == nil {
		l = logger.NewNopLogger()
	}
	return &Player{logger: l}
}

var defaultPlayer = NewPlayer(nil)

// Play plays tune on b with a silent player. See Player.Play.
func Play(b contracts.Buzzer, tune string) {
	defaultPlayer.Play(b, tune)
}

// Play resets b to silence, then decodes tune one note at a time and beeps
// each note followed by a GapMs rest. It returns when the last note has
// finished. A nil buzzer or empty tune does nothing.
func (p *Player) Play(b contracts.Buzzer, tune string) {
	if b == nil || tune == "" {
		return
	}

	dec := NewDecoder(tune)
	ctrl := dec.Control()
	p.logger.Debug("Playing tune",
		p.logger.Field().String("buzzer", b.Name()),
		p.logger.Field().String("tune", dec.Name()),
		p.logger.Field().Int("divisor", ctrl.Divisor),
		p.logger.Field().Int("octave", ctrl.Octave),
		p.logger.Field().Int("bpm", ctrl.BPM))

	buzzer.Beep(b, 0, 0)

	notes := 0
	for tone := range dec.Tones() {
		p.logger.Debug("Tone",
			p.logger.Field().Int("hz", tone.Frequency),
			p.logger.Field().Int("ms", tone.Duration))
		buzzer.Beep(b, tone.Frequency, tone.Duration)
		buzzer.Beep(b, 0, GapMs)
		notes++
	}

	p.logger.Debug("Tune finished",
		p.logger.Field().String("tune", dec.Name()),
		p.logger.Field().Int("notes", notes))
}

// Package rtttl decodes RTTTL ringtones and plays them on a buzzer.
//
// A tune looks like
//
//	Simpsons:d=4,o=5,b=160:32p,c.6,e6,f#6,8a6,g.6
//
// that is a name, a control section of default duration (d), octave (o)
// and beats per minute (b), then comma-separated notes. Decoding is
// tolerant: anything it cannot make sense of falls back to a default or
// becomes a rest, and nothing is ever rejected.
package rtttl

import "iter"

// Built-in control defaults.
const (
	DefaultDivisor = 4
	DefaultOctave  = 6
	DefaultBPM     = 63
)

// Control octaves outside this range are ignored.
const (
	minControlOctave = 4
	maxControlOctave = 7
)

// maxFieldValue caps every decoded number. Longer digit runs saturate here
// instead of overflowing.
const maxFieldValue = 1 << 20

// Control holds the defaults declared in a tune's control section.
type Control struct {
	Divisor int // Default note length as a fraction of a whole note.
	Octave  int // Default octave.
	BPM     int // Beats per minute.
}

// DefaultControl returns the defaults used when the control section is
// missing or malformed.
func DefaultControl() Control {
	return Control{Divisor: DefaultDivisor, Octave: DefaultOctave, BPM: DefaultBPM}
}

// WholeNote returns the length of a whole note in milliseconds.
func (c Control) WholeNote() int {
	bpm := c.BPM
	if bpm <= 0 {
		bpm = DefaultBPM
	}
	return 4 * 60 * 1000 / bpm
}

// Command is one decoded note before it is resolved against the control
// section.
type Command struct {
	Divisor  int      // Explicit length divisor, 0 when absent.
	Pause    bool     // Rest; Semitone and Octave are ignored.
	Semitone Semitone // Pitch class including a sharp.
	Dotted   bool     // Length extended by half.
	Octave   int      // Explicit octave, 0 when absent.
}

// Tone is a command resolved to what the buzzer plays.
type Tone struct {
	Frequency int // Hz, 0 for a rest.
	Duration  int // Milliseconds.
}

// Resolve turns cmd into a frequency and duration using c for every value
// the command leaves out.
func (c Control) Resolve(cmd Command) Tone {
	div := c.Divisor
	if cmd.Divisor > 0 {
		div = cmd.Divisor
	}
	if div <= 0 {
		div = DefaultDivisor
	}

	ms := c.WholeNote() / div
	if cmd.Dotted {
		ms += ms / 2
	}
	if cmd.Pause {
		return Tone{Duration: ms}
	}

	octave := c.Octave
	if cmd.Octave >= MinOctave && cmd.Octave <= MaxOctave {
		octave = cmd.Octave
	}
	return Tone{Frequency: Frequency(octave, cmd.Semitone), Duration: ms}
}

// Decoder walks a tune left to right. The name and control section are
// read by NewDecoder; notes are decoded one at a time by Next.
type Decoder struct {
	src     string
	pos     int
	name    string
	control Control
}

// NewDecoder reads the header of tune and positions the decoder on the
// first note.
func NewDecoder(tune string) *Decoder {
	d := &Decoder{src: tune, control: DefaultControl()}
	d.readName()
	d.readControl()
	return d
}

// Name returns the tune's name.
func (d *Decoder) Name() string { return d.name }

// Control returns the defaults in effect for this tune.
func (d *Decoder) Control() Control { return d.control }

// Next decodes the next note. It returns false once the input is exhausted.
func (d *Decoder) Next() (Command, bool) {
	d.skipSeparators()
	if d.done() {
		return Command{}, false
	}

	var cmd Command
	cmd.Divisor = d.number()

	d.skipSpace()
	if d.done() {
		cmd.Pause = true
		return cmd, true
	}
	if s, ok := pitchLetters[d.src[d.pos]]; ok {
		cmd.Semitone = s
	} else {
		cmd.Pause = true
	}
	d.pos++

	if d.accept('#') && !cmd.Pause {
		cmd.Semitone++
	}
	if d.accept('.') {
		cmd.Dotted = true
	}
	if !d.done() && isDigit(d.src[d.pos]) {
		cmd.Octave = int(d.src[d.pos] - '0')
		d.pos++
	}
	if d.accept('.') {
		cmd.Dotted = true
	}
	d.skipSpace()
	d.accept(',')
	return cmd, true
}

// Commands yields the remaining notes as they are decoded.
func (d *Decoder) Commands() iter.Seq[Command] {
	return func(yield func(Command) bool) {
		for cmd, ok := d.Next(); ok; cmd, ok = d.Next() {
			if !yield(cmd) {
				return
			}
		}
	}
}

// Tones yields the remaining notes resolved against the control section.
func (d *Decoder) Tones() iter.Seq[Tone] {
	return func(yield func(Tone) bool) {
		for cmd := range d.Commands() {
			if !yield(d.control.Resolve(cmd)) {
				return
			}
		}
	}
}

// readName consumes everything up to and including the first ':'. A tune
// without one is all name and has no notes.
func (d *Decoder) readName() {
	for d.pos < len(d.src) && d.src[d.pos] != ':' {
		d.pos++
	}
	d.name = d.src[:d.pos]
	d.accept(':')
}

// readControl consumes "<letter>=<value>" pairs up to the ':' that opens
// the notes. Pairs may appear in any order; unknown letters and values out
// of range are skipped.
func (d *Decoder) readControl() {
	for {
		d.skipSpace()
		if d.pos+1 >= len(d.src) || !isLower(d.src[d.pos]) || d.src[d.pos+1] != '=' {
			break
		}
		tag := d.src[d.pos]
		d.pos += 2
		d.skipSpace()

		switch tag {
		case 'd':
			if n := d.number(); n > 0 {
				d.control.Divisor = n
			}
		case 'o':
			if !d.done() && isDigit(d.src[d.pos]) {
				n := int(d.src[d.pos] - '0')
				d.pos++
				if n >= minControlOctave && n <= maxControlOctave {
					d.control.Octave = n
				}
			}
		case 'b':
			if n := d.number(); n > 0 {
				d.control.BPM = n
			}
		}

		for !d.done() && d.src[d.pos] != ',' && d.src[d.pos] != ':' {
			d.pos++
		}
		if !d.accept(',') {
			break
		}
	}
	d.skipSpace()
	d.accept(':')
}

// number reads a run of digits, saturating at maxFieldValue. It returns 0
// when there are none.
func (d *Decoder) number() int {
	n := 0
	for !d.done() && isDigit(d.src[d.pos]) {
		n = min(n*10+int(d.src[d.pos]-'0'), maxFieldValue)
		d.pos++
	}
	return n
}

func (d *Decoder) accept(c byte) bool {
	if !d.done() && d.src[d.pos] == c {
		d.pos++
		return true
	}
	return false
}

func (d *Decoder) skipSpace() {
	for !d.done() && isSpace(d.src[d.pos]) {
		d.pos++
	}
}

// skipSeparators skips whitespace and empty fields between notes.
func (d *Decoder) skipSeparators() {
	for !d.done() && (isSpace(d.src[d.pos]) || d.src[d.pos] == ',') {
		d.pos++
	}
}

func (d *Decoder) done() bool { return d.pos >= len(d.src) }

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isLower(c byte) bool { return c >= 'a' && c <= 'z' }

func isSpace(c byte) bool { return c == ' ' || c == '\t' || c == '\r' || c == '\n' }

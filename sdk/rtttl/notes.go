package rtttl

// Semitone is a pitch class within an octave, C = 0 through B = 11.
// A sharpened B is 12 and carries into the next octave's C.
type Semitone int

const (
	C Semitone = iota
	CSharp
	D
	DSharp
	E
	F
	FSharp
	G
	GSharp
	A
	ASharp
	B
)

// Octave range covered by the frequency table.
const (
	MinOctave = 4
	MaxOctave = 8
)

// noteTable holds equal-tempered frequencies (A4 = 440 Hz) rounded to the
// nearest hertz.
var noteTable = [MaxOctave - MinOctave + 1][12]int{
	{262, 277, 294, 311, 330, 349, 370, 392, 415, 440, 466, 494},
	{523, 554, 587, 622, 659, 698, 740, 784, 831, 880, 932, 988},
	{1047, 1109, 1175, 1245, 1319, 1397, 1480, 1568, 1661, 1760, 1865, 1976},
	{2093, 2217, 2349, 2489, 2637, 2794, 2960, 3136, 3322, 3520, 3729, 3951},
	{4186, 4435, 4699, 4978, 5274, 5588, 5920, 6272, 6645, 7040, 7459, 7902},
}

// pitchLetters maps lowercase note letters to their natural semitone.
var pitchLetters = map[byte]Semitone{
	'c': C,
	'd': D,
	'e': E,
	'f': F,
	'g': G,
	'a': A,
	'b': B,
}

// Frequency returns the frequency in Hz of semitone s in octave, or 0 when
// the note falls outside the table.
func Frequency(octave int, s Semitone) int {
	if s < 0 {
		return 0
	}
	octave += int(s) / 12
	s %= 12
	if octave < MinOctave || octave > MaxOctave {
		return 0
	}
	return noteTable[octave-MinOctave][s]
}

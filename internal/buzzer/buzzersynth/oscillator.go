package buzzersynth

import (
	"encoding/binary"
	"math"
)

// oscillator renders a square wave into signed 16-bit little-endian mono
// frames. It is not safe for concurrent use; the device callback owns it.
type oscillator struct {
	sampleRate float64
	amplitude  int16
	phase      float64 // position within the current period, [0,1)
}

func newOscillator(sampleRate uint32, volume float64) *oscillator {
	return &oscillator{
		sampleRate: float64(sampleRate),
		amplitude:  int16(math.Round(volume * math.MaxInt16)),
	}
}

// fill writes len(out)/2 frames of a square wave at hz. A zero hz writes
// silence and restarts the period so the next tone begins on a rising edge.
func (o *oscillator) fill(out []byte, hz int) {
	frames := len(out) / 2
	if hz <= 0 {
		clear(out)
		o.phase = 0
		return
	}

	step := float64(hz) / o.sampleRate
	for i := 0; i < frames; i++ {
		s := o.amplitude
		if o.phase >= 0.5 {
			s = -o.amplitude
		}
		binary.LittleEndian.PutUint16(out[i*2:], uint16(s))
		o.phase += step
		if o.phase >= 1 {
			o.phase -= math.Floor(o.phase)
		}
	}
}

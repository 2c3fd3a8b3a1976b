package buzzerdarwin

import "math"

// MIDI status bytes on channel 1.
const (
	noteOn  byte = 0x90
	noteOff byte = 0x80
)

// midiNote returns the MIDI note nearest to hz (A4 = 440 Hz = 69), limited
// to the 0..127 range.
func midiNote(hz int) byte {
	if hz <= 0 {
		return 0
	}
	n := math.Round(69 + 12*math.Log2(float64(hz)/440))
	return byte(min(max(n, 0), 127))
}

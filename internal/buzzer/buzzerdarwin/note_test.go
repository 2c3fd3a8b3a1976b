package buzzerdarwin

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMIDINote(t *testing.T) {
	tests := []struct {
		hz   int
		want byte
	}{
		{440, 69},
		{880, 81},
		{220, 57},
		{262, 60},
		{523, 72},
		{4186, 108},
		{0, 0},
		{-440, 0},
		{1, 0},
		{100000, 127},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, midiNote(tt.hz), "%d Hz", tt.hz)
	}
}

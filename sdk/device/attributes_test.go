package device

import (
	"testing"

	"github.com/leandrodaf/buzzer/internal/buzzer/buzzervirtual"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseInteger(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"440", 440},
		{"  440\n", 440},
		{"+12", 12},
		{"-12", -12},
		{"0x1B8", 440},
		{"0X1b8", 440},
		{"-0x10", -16},
		{"0670", 440},
		{"08", 0},
		{"0x", 0},
		{"0b101", 0},
		{"440Hz", 440},
		{"1_000", 1},
		{"", 0},
		{"abc", 0},
		{"-", 0},
		{"99999999999999999999", 2147483647},
		{"-99999999999999999999", -2147483648},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, parseInteger(tt.in), "%q", tt.in)
	}
}

func TestFrequencyAttribute(t *testing.T) {
	r := NewRegistry(nil)
	b := buzzervirtual.New("piezo")
	require.NoError(t, r.Register(b))

	got, err := r.Read("piezo", AttrFrequency)
	require.NoError(t, err)
	assert.Equal(t, "0", got)

	n, err := r.Write("piezo", AttrFrequency, []byte("0x1b8\n"))
	require.NoError(t, err)
	assert.Equal(t, 6, n)
	assert.Equal(t, 440, b.Frequency())

	got, err = r.Read("piezo", AttrFrequency)
	require.NoError(t, err)
	assert.Equal(t, "440", got)

	_, err = r.Write("piezo", AttrFrequency, []byte("-20"))
	require.NoError(t, err)
	assert.Equal(t, 0, b.Frequency(), "negative writes clamp to 0")
}

func TestPlayAttribute(t *testing.T) {
	r := NewRegistry(nil)
	b := buzzervirtual.New("piezo")
	require.NoError(t, r.Register(b))

	tune := []byte("T:d=4,o=5,b=120:c\n\x00garbage")
	n, err := r.Write("piezo", AttrPlay, tune)
	require.NoError(t, err)
	assert.Equal(t, len(tune), n)

	assert.Equal(t, []buzzervirtual.Call{
		{Op: buzzervirtual.OpBeep, Hz: 0, Ms: 0},
		{Op: buzzervirtual.OpBeep, Hz: 523, Ms: 500},
		{Op: buzzervirtual.OpBeep, Hz: 0, Ms: 10},
	}, b.Beeps())

	_, err = r.Read("piezo", AttrPlay)
	assert.ErrorIs(t, err, ErrWriteOnly)
}

func TestAttributeErrors(t *testing.T) {
	r := NewRegistry(nil)
	require.NoError(t, r.Register(buzzervirtual.New("piezo")))

	_, err := r.Read("missing", AttrFrequency)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = r.Write("piezo", "volume", []byte("3"))
	assert.ErrorIs(t, err, ErrNoAttribute)
}

func TestAttributesOnBareBuzzer(t *testing.T) {
	r := NewRegistry(nil)
	require.NoError(t, r.Register(named("bare")))

	got, err := r.Read("bare", AttrFrequency)
	require.NoError(t, err)
	assert.Equal(t, "0", got)

	_, err = r.Write("bare", AttrFrequency, []byte("440"))
	assert.NoError(t, err)
	_, err = r.Write("bare", AttrPlay, []byte("T::c,d,e"))
	assert.NoError(t, err)
}

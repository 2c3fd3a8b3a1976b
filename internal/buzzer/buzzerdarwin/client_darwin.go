//go:build darwin
// +build darwin

package buzzerdarwin

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/leandrodaf/buzzer/sdk/contracts"
	"github.com/youpy/go-coremidi"
)

// Error definitions for CoreMIDI setup.
var (
	ErrNoMIDIDestinations     = errors.New("no MIDI destinations found")
	ErrInvalidMIDIDestination = errors.New("invalid MIDI destination")
	ErrCreateOutputPort       = errors.New("error creating output port")
)

// Buzzer plays tones as notes on a CoreMIDI destination, e.g. a software
// synth or a hardware sound module. Frequencies snap to the nearest note.
type Buzzer struct {
	name     string
	logger   contracts.Logger
	sleep    func(time.Duration)
	velocity byte

	mu          sync.Mutex
	client      coremidi.Client
	outputPort  coremidi.OutputPort
	destination coremidi.Destination
	frequency   int
	held        byte // note sounding from SetFrequency, 0 when none
}

// NewBuzzer connects to the configured CoreMIDI destination.
func NewBuzzer(options *contracts.Options) (contracts.Buzzer, error) {
	client, err := coremidi.NewClient(options.MIDI.ClientName)
	if err != nil {
		return nil, err
	}

	destinations, err := coremidi.AllDestinations()
	if err != nil {
		return nil, fmt.Errorf("error listing MIDI destinations: %w", err)
	}
	if len(destinations) == 0 {
		options.Logger.Warn(ErrNoMIDIDestinations.Error())
		return nil, ErrNoMIDIDestinations
	}
	idx := options.MIDI.Destination
	if idx < 0 || idx >= len(destinations) {
		options.Logger.Error(ErrInvalidMIDIDestination.Error(), options.Logger.Field().Int("destination", idx))
		return nil, ErrInvalidMIDIDestination
	}

	outputPort, err := coremidi.NewOutputPort(client, "Buzzer Output")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCreateOutputPort, err)
	}

	sleep := options.Sleep
	if sleep == nil {
		sleep = time.Sleep
	}
	destination := destinations[idx]
	options.Logger.Info("MIDI buzzer connected",
		options.Logger.Field().Int("destination", idx),
		options.Logger.Field().String("destinationName", destination.Name()))

	return &Buzzer{
		name:        options.Name,
		logger:      options.Logger,
		sleep:       sleep,
		velocity:    options.MIDI.Velocity,
		client:      client,
		outputPort:  outputPort,
		destination: destination,
	}, nil
}

// Name implements contracts.Buzzer.
func (b *Buzzer) Name() string { return b.name }

// SetFrequency holds the nearest note until the frequency changes.
func (b *Buzzer) SetFrequency(hz int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.releaseLocked()
	b.frequency = hz
	if hz > 0 {
		b.held = midiNote(hz)
		b.sendLocked(noteOn, b.held, b.velocity)
	}
}

// Frequency implements contracts.FrequencyGetter.
func (b *Buzzer) Frequency() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.frequency
}

// Beep implements contracts.Beeper.
func (b *Buzzer) Beep(hz, ms int) {
	if hz == 0 {
		b.sleep(time.Duration(ms) * time.Millisecond)
		return
	}
	note := midiNote(hz)

	b.mu.Lock()
	b.sendLocked(noteOn, note, b.velocity)
	b.mu.Unlock()

	b.sleep(time.Duration(ms) * time.Millisecond)

	b.mu.Lock()
	b.sendLocked(noteOff, note, 0)
	b.mu.Unlock()
}

// Suspend releases a held note.
func (b *Buzzer) Suspend() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.releaseLocked()
}

// Resume sounds the held frequency again.
func (b *Buzzer) Resume() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.frequency > 0 && b.held == 0 {
		b.held = midiNote(b.frequency)
		b.sendLocked(noteOn, b.held, b.velocity)
	}
}

// Exit releases any held note.
func (b *Buzzer) Exit() {
	b.Suspend()
}

func (b *Buzzer) releaseLocked() {
	if b.held != 0 {
		b.sendLocked(noteOff, b.held, 0)
		b.held = 0
	}
}

func (b *Buzzer) sendLocked(status, note, velocity byte) {
	packet := coremidi.NewPacket([]byte{status, note, velocity}, uint64(time.Now().UnixNano()))
	if err := packet.Send(&b.outputPort, &b.destination); err != nil {
		b.logger.Warn("Failed to send MIDI packet",
			b.logger.Field().Int("note", int(note)),
			b.logger.Field().Error("error", err))
	}
}

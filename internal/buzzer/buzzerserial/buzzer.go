// Package buzzerserial drives a piezo attached to a microcontroller over a
// serial line.
//
// The firmware understands one command per line:
//
//	F<hz>        hold a tone (F0 mutes)
//	B<hz>,<ms>   play a tone for ms milliseconds, then mute
//
// The firmware plays B commands asynchronously, so Beep sleeps for the
// duration after writing to keep calls synchronous.
package buzzerserial

import (
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/leandrodaf/buzzer/sdk/contracts"
	"go.bug.st/serial"
)

// ErrNoPort is returned when the serial configuration has no port path.
var ErrNoPort = errors.New("serial port not configured")

// Buzzer writes tone commands to a serial port.
type Buzzer struct {
	name   string
	logger contracts.Logger
	sleep  func(time.Duration)

	mu        sync.Mutex
	port      io.WriteCloser
	frequency int
	closed    bool
}

// NewBuzzer opens the configured serial port.
func NewBuzzer(options *contracts.Options) (contracts.Buzzer, error) {
	if options.Serial == nil || options.Serial.Port == "" {
		return nil, ErrNoPort
	}

	mode := &serial.Mode{
		BaudRate: options.Serial.BaudRate,
		DataBits: 8,
		Parity:   serial.NoParity,
		StopBits: serial.OneStopBit,
	}
	port, err := serial.Open(options.Serial.Port, mode)
	if err != nil {
		return nil, fmt.Errorf("open serial port %s: %w", options.Serial.Port, err)
	}

	options.Logger.Info("Serial buzzer created",
		options.Logger.Field().String("port", options.Serial.Port),
		options.Logger.Field().Int("baudRate", options.Serial.BaudRate))
	return newBuzzer(options, port), nil
}

func newBuzzer(options *contracts.Options, port io.WriteCloser) *Buzzer {
	sleep := options.Sleep
	if sleep == nil {
		sleep = time.Sleep
	}
	return &Buzzer{
		name:   options.Name,
		logger: options.Logger,
		sleep:  sleep,
		port:   port,
	}
}

// Name implements contracts.Buzzer.
func (b *Buzzer) Name() string { return b.name }

// SetFrequency implements contracts.FrequencySetter.
func (b *Buzzer) SetFrequency(hz int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.frequency = hz
	b.writeLocked(fmt.Sprintf("F%d\n", hz))
}

// Frequency returns the last frequency sent; the firmware cannot be queried.
func (b *Buzzer) Frequency() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.frequency
}

// Beep implements contracts.Beeper.
func (b *Buzzer) Beep(hz, ms int) {
	b.mu.Lock()
	b.frequency = 0
	b.writeLocked(fmt.Sprintf("B%d,%d\n", hz, ms))
	b.mu.Unlock()

	if ms > 0 {
		b.sleep(time.Duration(ms) * time.Millisecond)
	}
}

// Suspend mutes the piezo and keeps the frequency for Resume.
func (b *Buzzer) Suspend() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.writeLocked("F0\n")
}

// Resume restores the frequency held before Suspend.
func (b *Buzzer) Resume() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.writeLocked(fmt.Sprintf("F%d\n", b.frequency))
}

// Exit mutes the piezo and closes the port.
func (b *Buzzer) Exit() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}
	b.writeLocked("F0\n")
	if err := b.port.Close(); err != nil {
		b.logger.Warn("Failed to close serial port", b.logger.Field().Error("error", err))
	}
	b.closed = true
}

func (b *Buzzer) writeLocked(cmd string) {
	if b.closed {
		return
	}
	if _, err := io.WriteString(b.port, cmd); err != nil {
		b.logger.Warn("Failed to write buzzer command",
			b.logger.Field().String("command", cmd),
			b.logger.Field().Error("error", err))
	}
}

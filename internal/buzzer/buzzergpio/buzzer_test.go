package buzzergpio

import (
	"fmt"
	"testing"
	"time"

	"github.com/leandrodaf/buzzer/internal/logger"
	"github.com/leandrodaf/buzzer/sdk/contracts"
	"github.com/stretchr/testify/assert"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/physic"
)

// fakePin records pin writes as "low" or "pwm <freq>".
type fakePin struct {
	writes []string
}

func (p *fakePin) Out(l gpio.Level) error {
	if l == gpio.Low {
		p.writes = append(p.writes, "low")
	} else {
		p.writes = append(p.writes, "high")
	}
	return nil
}

func (p *fakePin) PWM(duty gpio.Duty, f physic.Frequency) error {
	if duty != gpio.DutyHalf {
		return fmt.Errorf("unexpected duty %s", duty)
	}
	p.writes = append(p.writes, fmt.Sprintf("pwm %d", f/physic.Hertz))
	return nil
}

func newTestBuzzer(pin *fakePin, slept *[]time.Duration) *Buzzer {
	return newBuzzer(&contracts.Options{
		Name:   "pwm",
		Logger: logger.NewNopLogger(),
		Sleep:  func(d time.Duration) { *slept = append(*slept, d) },
	}, pin)
}

func TestBeepDrivesAndReleasesPin(t *testing.T) {
	pin := &fakePin{}
	var slept []time.Duration
	b := newTestBuzzer(pin, &slept)

	b.Init()
	b.Beep(440, 100)

	assert.Equal(t, []string{"low", "pwm 440", "low"}, pin.writes)
	assert.Equal(t, []time.Duration{100 * time.Millisecond}, slept)
	assert.Zero(t, b.Frequency())
}

func TestSetFrequencyHoldsTone(t *testing.T) {
	pin := &fakePin{}
	var slept []time.Duration
	b := newTestBuzzer(pin, &slept)

	b.SetFrequency(880)
	assert.Equal(t, 880, b.Frequency())
	b.SetFrequency(0)

	assert.Equal(t, []string{"pwm 880", "low"}, pin.writes)
}

func TestSuspendKeepsFrequencyForResume(t *testing.T) {
	pin := &fakePin{}
	var slept []time.Duration
	b := newTestBuzzer(pin, &slept)

	b.SetFrequency(440)
	b.Suspend()
	b.SetFrequency(523)
	b.Beep(660, 20)
	assert.Equal(t, []string{"pwm 440", "low"}, pin.writes)
	assert.Equal(t, []time.Duration{20 * time.Millisecond}, slept)

	b.SetFrequency(523)
	b.Resume()
	assert.Equal(t, []string{"pwm 440", "low", "pwm 523"}, pin.writes)
}

func TestExitSilences(t *testing.T) {
	pin := &fakePin{}
	var slept []time.Duration
	b := newTestBuzzer(pin, &slept)

	b.SetFrequency(440)
	b.Exit()

	assert.Equal(t, []string{"pwm 440", "low"}, pin.writes)
	assert.Zero(t, b.Frequency())
	assert.Equal(t, "pwm", b.Name())
}

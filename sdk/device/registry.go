// Package device keeps registered buzzers reachable by name, relays their
// lifecycle and power hooks, and exposes each one through text attributes.
package device

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/leandrodaf/buzzer/internal/logger"
	"github.com/leandrodaf/buzzer/sdk/buzzer"
	"github.com/leandrodaf/buzzer/sdk/contracts"
	"github.com/leandrodaf/buzzer/sdk/rtttl"
)

// Error definitions for registry operations.
var (
	ErrInvalidBuzzer     = errors.New("buzzer must be non-nil and named")
	ErrAlreadyRegistered = errors.New("buzzer already registered")
	ErrNotFound          = errors.New("buzzer not found")
	ErrNoAttribute       = errors.New("no such attribute")
	ErrWriteOnly         = errors.New("attribute is write-only")
	ErrReadOnly          = errors.New("attribute is read-only")
)

// Kind tells device records apart. Power notifications are only relayed to
// buzzer records.
type Kind int

const (
	KindUnknown Kind = iota
	KindBuzzer
)

// Device is the registry's record for one buzzer.
type Device struct {
	Name   string
	Kind   Kind
	Driver contracts.Buzzer
	attrs  map[string]attribute
}

// SuspendDevice relays a suspend notification to dev's buzzer. Records that
// are nil, of another kind or without a driver are ignored.
func SuspendDevice(dev *Device) {
	if dev == nil || dev.Kind != KindBuzzer || dev.Driver == nil {
		return
	}
	buzzer.Suspend(dev.Driver)
}

// ResumeDevice relays a resume notification to dev's buzzer. Records that
// are nil, of another kind or without a driver are ignored.
func ResumeDevice(dev *Device) {
	if dev == nil || dev.Kind != KindBuzzer || dev.Driver == nil {
		return
	}
	buzzer.Resume(dev.Driver)
}

// Registry holds buzzers in registration order.
type Registry struct {
	logger contracts.Logger
	player *rtttl.Player

	mu      sync.RWMutex
	devices []*Device
}

// NewRegistry creates an empty registry. A nil logger discards messages.
func NewRegistry(l contracts.Logger) *Registry {
	if l == nil {
		l = logger.NewNopLogger()
	}
	return &Registry{logger: l, player: rtttl.NewPlayer(l)}
}

// Register adds b under its name and calls its Init hook once.
func (r *Registry) Register(b contracts.Buzzer) error {
	if b == nil || b.Name() == "" {
		return ErrInvalidBuzzer
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.findLocked(b.Name()) != nil {
		return fmt.Errorf("%w: %s", ErrAlreadyRegistered, b.Name())
	}

	dev := &Device{Name: b.Name(), Kind: KindBuzzer, Driver: b}
	dev.attrs = buzzerAttributes(dev, r.player)

	buzzer.Init(b)
	r.devices = append(r.devices, dev)

	r.logger.Info("Buzzer registered",
		r.logger.Field().String("name", dev.Name),
		r.logger.Field().Strings("capabilities", buzzer.Capabilities(b)))
	return nil
}

// Unregister removes the buzzer registered under b's name and calls its
// Exit hook once.
func (r *Registry) Unregister(b contracts.Buzzer) error {
	if b == nil || b.Name() == "" {
		return ErrInvalidBuzzer
	}

	r.mu.Lock()
	idx := -1
	for i, dev := range r.devices {
		if dev.Name == b.Name() {
			idx = i
			break
		}
	}
	if idx < 0 {
		r.mu.Unlock()
		return fmt.Errorf("%w: %s", ErrNotFound, b.Name())
	}
	dev := r.devices[idx]
	r.devices = append(r.devices[:idx], r.devices[idx+1:]...)
	r.mu.Unlock()

	buzzer.Exit(dev.Driver)
	r.logger.Info("Buzzer unregistered", r.logger.Field().String("name", dev.Name))
	return nil
}

// Search returns the buzzer registered under name, or nil.
func (r *Registry) Search(name string) contracts.Buzzer {
	if dev := r.Device(name); dev != nil {
		return dev.Driver
	}
	return nil
}

// SearchFirst returns the earliest registered buzzer, or nil.
func (r *Registry) SearchFirst() contracts.Buzzer {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if len(r.devices) == 0 {
		return nil
	}
	return r.devices[0].Driver
}

// Device returns the record registered under name, or nil.
func (r *Registry) Device(name string) *Device {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.findLocked(name)
}

// Devices describes every registered buzzer in registration order.
func (r *Registry) Devices() []contracts.DeviceInfo {
	r.mu.RLock()
	defer r.mu.RUnlock()

	infos := make([]contracts.DeviceInfo, 0, len(r.devices))
	for _, dev := range r.devices {
		infos = append(infos, contracts.DeviceInfo{
			Name:         dev.Name,
			Capabilities: buzzer.Capabilities(dev.Driver),
			Attributes:   attributeNames(dev),
		})
	}
	return infos
}

// Suspend routes a suspend notification to the named buzzer.
func (r *Registry) Suspend(name string) error {
	dev := r.Device(name)
	if dev == nil {
		return fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	SuspendDevice(dev)
	return nil
}

// Resume routes a resume notification to the named buzzer.
func (r *Registry) Resume(name string) error {
	dev := r.Device(name)
	if dev == nil {
		return fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	ResumeDevice(dev)
	return nil
}

// SuspendAll suspends every buzzer, newest first.
func (r *Registry) SuspendAll() {
	devs := r.snapshot()
	for i := len(devs) - 1; i >= 0; i-- {
		SuspendDevice(devs[i])
	}
}

// ResumeAll resumes every buzzer in registration order.
func (r *Registry) ResumeAll() {
	for _, dev := range r.snapshot() {
		ResumeDevice(dev)
	}
}

// Read renders an attribute of the named buzzer.
func (r *Registry) Read(name, attr string) (string, error) {
	a, err := r.attribute(name, attr)
	if err != nil {
		return "", err
	}
	if a.read == nil {
		return "", fmt.Errorf("%w: %s/%s", ErrWriteOnly, name, attr)
	}
	return a.read(), nil
}

// Write passes buf to an attribute of the named buzzer and reports the
// whole buffer as consumed. Writing "play" blocks until the tune ends.
func (r *Registry) Write(name, attr string, buf []byte) (int, error) {
	a, err := r.attribute(name, attr)
	if err != nil {
		return 0, err
	}
	if a.write == nil {
		return 0, fmt.Errorf("%w: %s/%s", ErrReadOnly, name, attr)
	}
	a.write(buf)
	return len(buf), nil
}

func (r *Registry) attribute(name, attr string) (attribute, error) {
	dev := r.Device(name)
	if dev == nil {
		return attribute{}, fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	a, ok := dev.attrs[attr]
	if !ok {
		return attribute{}, fmt.Errorf("%w: %s/%s", ErrNoAttribute, name, attr)
	}
	return a, nil
}

func (r *Registry) findLocked(name string) *Device {
	for _, dev := range r.devices {
		if dev.Name == name {
			return dev
		}
	}
	return nil
}

func (r *Registry) snapshot() []*Device {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]*Device(nil), r.devices...)
}

func attributeNames(dev *Device) []string {
	names := make([]string, 0, len(dev.attrs))
	for name := range dev.attrs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

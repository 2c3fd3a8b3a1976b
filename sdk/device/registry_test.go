package device

import (
	"testing"

	"github.com/leandrodaf/buzzer/internal/buzzer/buzzervirtual"
	"github.com/leandrodaf/buzzer/sdk/contracts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type named string

func (n named) Name() string { return string(n) }

func TestRegisterCallsInitOnce(t *testing.T) {
	r := NewRegistry(nil)
	b := buzzervirtual.New("piezo")

	require.NoError(t, r.Register(b))
	assert.Equal(t, 1, b.Count(buzzervirtual.OpInit))

	err := r.Register(b)
	assert.ErrorIs(t, err, ErrAlreadyRegistered)
	assert.Equal(t, 1, b.Count(buzzervirtual.OpInit))
}

func TestRegisterRejectsInvalid(t *testing.T) {
	r := NewRegistry(nil)
	assert.ErrorIs(t, r.Register(nil), ErrInvalidBuzzer)
	assert.ErrorIs(t, r.Register(named("")), ErrInvalidBuzzer)
	assert.Empty(t, r.Devices())
}

func TestUnregisterCallsExitOnce(t *testing.T) {
	r := NewRegistry(nil)
	b := buzzervirtual.New("piezo")
	require.NoError(t, r.Register(b))

	require.NoError(t, r.Unregister(b))
	assert.Equal(t, 1, b.Count(buzzervirtual.OpExit))
	assert.Nil(t, r.Search("piezo"))

	assert.ErrorIs(t, r.Unregister(b), ErrNotFound)
	assert.Equal(t, 1, b.Count(buzzervirtual.OpExit))
	assert.ErrorIs(t, r.Unregister(nil), ErrInvalidBuzzer)
}

func TestSearch(t *testing.T) {
	r := NewRegistry(nil)
	assert.Nil(t, r.SearchFirst())

	first := buzzervirtual.New("first")
	second := buzzervirtual.New("second")
	require.NoError(t, r.Register(first))
	require.NoError(t, r.Register(second))

	assert.Same(t, first, r.SearchFirst())
	assert.Same(t, second, r.Search("second"))
	assert.Nil(t, r.Search("third"))

	require.NoError(t, r.Unregister(first))
	assert.Same(t, second, r.SearchFirst())
}

func TestDevices(t *testing.T) {
	r := NewRegistry(nil)
	require.NoError(t, r.Register(buzzervirtual.New("v")))
	require.NoError(t, r.Register(named("plain")))

	infos := r.Devices()
	require.Len(t, infos, 2)
	assert.Equal(t, "v", infos[0].Name)
	assert.Contains(t, infos[0].Capabilities, contracts.CapBeep)
	assert.Equal(t, []string{AttrFrequency, AttrPlay}, infos[0].Attributes)
	assert.Equal(t, "plain", infos[1].Name)
	assert.Empty(t, infos[1].Capabilities)
}

func TestPowerRouting(t *testing.T) {
	r := NewRegistry(nil)
	a := buzzervirtual.New("a")
	b := buzzervirtual.New("b")
	require.NoError(t, r.Register(a))
	require.NoError(t, r.Register(b))

	require.NoError(t, r.Suspend("a"))
	assert.True(t, a.Suspended())
	assert.False(t, b.Suspended())
	require.NoError(t, r.Resume("a"))
	assert.False(t, a.Suspended())

	r.SuspendAll()
	assert.True(t, a.Suspended())
	assert.True(t, b.Suspended())
	r.ResumeAll()
	assert.False(t, a.Suspended())
	assert.False(t, b.Suspended())

	assert.ErrorIs(t, r.Suspend("missing"), ErrNotFound)
	assert.ErrorIs(t, r.Resume("missing"), ErrNotFound)
}

func TestPowerRelayIgnoresMalformedRecords(t *testing.T) {
	v := buzzervirtual.New("v")

	assert.NotPanics(t, func() {
		SuspendDevice(nil)
		ResumeDevice(nil)
		SuspendDevice(&Device{Name: "x", Kind: KindBuzzer})
		ResumeDevice(&Device{Name: "x", Kind: KindBuzzer})
	})

	SuspendDevice(&Device{Name: "v", Kind: KindUnknown, Driver: v})
	ResumeDevice(&Device{Name: "v", Kind: KindUnknown, Driver: v})
	assert.Empty(t, v.Calls())

	SuspendDevice(&Device{Name: "v", Kind: KindBuzzer, Driver: v})
	assert.True(t, v.Suspended())
}

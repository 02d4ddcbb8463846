package operator

import (
	"atomicgo.dev/keyboard/keys"
	"github.com/markusressel/pid2go/internal/tuning"
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestChannelSource_PollEmpty(t *testing.T) {
	// GIVEN
	source := NewChannelSource(2)

	// WHEN
	_, ok := source.Poll()

	// THEN
	assert.False(t, ok)
}

func TestChannelSource_FifoAndCapacity(t *testing.T) {
	// GIVEN
	source := NewChannelSource(2)

	// WHEN
	first := source.Send(tuning.Step(1))
	second := source.Send(tuning.Event{Kind: tuning.EventAutomatic})
	third := source.Send(tuning.Event{Kind: tuning.EventStop})

	// THEN
	assert.True(t, first)
	assert.True(t, second)
	assert.False(t, third)

	event, ok := source.Poll()
	assert.True(t, ok)
	assert.Equal(t, tuning.Step(1), event)
	event, ok = source.Poll()
	assert.True(t, ok)
	assert.Equal(t, tuning.EventAutomatic, event.Kind)
	_, ok = source.Poll()
	assert.False(t, ok)
}

func TestKeyEvent_FunctionKeys(t *testing.T) {
	tests := []struct {
		code     keys.KeyCode
		expected tuning.Event
	}{
		{keys.F1, tuning.Event{Kind: tuning.EventManual}},
		{keys.F2, tuning.Event{Kind: tuning.EventAutomatic}},
		{keys.F4, tuning.Step(-10)},
		{keys.PgDown, tuning.Step(-10)},
		{keys.F5, tuning.Step(-1)},
		{keys.Down, tuning.Step(-1)},
		{keys.F6, tuning.Step(-0.1)},
		{keys.Left, tuning.Step(-0.1)},
		{keys.F7, tuning.Step(0.1)},
		{keys.Right, tuning.Step(0.1)},
		{keys.F8, tuning.Step(1)},
		{keys.Up, tuning.Step(1)},
		{keys.F9, tuning.Step(10)},
		{keys.PgUp, tuning.Step(10)},
		{keys.F11, tuning.Event{Kind: tuning.EventSelectNext}},
		{keys.F12, tuning.Event{Kind: tuning.EventExport}},
		{keys.CtrlC, tuning.Event{Kind: tuning.EventStop}},
	}

	for _, test := range tests {
		// WHEN
		event, ok := KeyEvent(keys.Key{Code: test.code})

		// THEN
		assert.True(t, ok, test.code.String())
		assert.Equal(t, test.expected, event, test.code.String())
	}
}

func TestKeyEvent_Runes(t *testing.T) {
	tests := []struct {
		r        rune
		expected tuning.EventKind
	}{
		{'m', tuning.EventManual},
		{'M', tuning.EventManual},
		{'a', tuning.EventAutomatic},
		{'s', tuning.EventSelectNext},
		{'T', tuning.EventExport},
		{'q', tuning.EventStop},
	}

	for _, test := range tests {
		// WHEN
		event, ok := KeyEvent(keys.Key{Code: keys.RuneKey, Runes: []rune{test.r}})

		// THEN
		assert.True(t, ok, string(test.r))
		assert.Equal(t, test.expected, event.Kind, string(test.r))
	}
}

func TestKeyEvent_Unmapped(t *testing.T) {
	// WHEN
	_, ok := KeyEvent(keys.Key{Code: keys.RuneKey, Runes: []rune{'x'}})
	_, okF3 := KeyEvent(keys.Key{Code: keys.F3})

	// THEN
	assert.False(t, ok)
	assert.False(t, okF3)
}

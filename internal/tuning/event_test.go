package tuning

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestParseEvent(t *testing.T) {
	tests := []struct {
		text     string
		expected Event
	}{
		{"auto", Event{Kind: EventAutomatic}},
		{" Manual ", Event{Kind: EventManual}},
		{"select", Event{Kind: EventSelectNext}},
		{"export", Event{Kind: EventExport}},
		{"stop", Event{Kind: EventStop}},
		{"step -0.1", Step(-0.1)},
		{"step 10", Step(10)},
	}

	for _, test := range tests {
		// WHEN
		event, err := ParseEvent(test.text)

		// THEN
		assert.NoError(t, err, test.text)
		assert.Equal(t, test.expected, event, test.text)
	}
}

func TestParseEvent_Errors(t *testing.T) {
	tests := []struct {
		text     string
		expected string
	}{
		{"", "empty event"},
		{"none", "unsupported event 'none'"},
		{"jump", "unsupported event 'jump'"},
		{"auto 1", "event 'auto' takes no argument"},
		{"step", "event 'step' requires a single step value"},
		{"step 5", "unsupported step value '5', use one of: -10 | -1 | -0.1 | 0.1 | 1 | 10"},
	}

	for _, test := range tests {
		// WHEN
		_, err := ParseEvent(test.text)

		// THEN
		assert.EqualError(t, err, test.expected, test.text)
	}
}

func TestEvent_String(t *testing.T) {
	assert.Equal(t, "step -0.1", Step(-0.1).String())
	assert.Equal(t, "step +10", Step(10).String())
	assert.Equal(t, "auto", Event{Kind: EventAutomatic}.String())
}

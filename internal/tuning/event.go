package tuning

import (
	"fmt"
	"strconv"
	"strings"
)

type EventKind int

const (
	EventNone EventKind = iota
	EventStep
	EventSelectNext
	EventManual
	EventAutomatic
	EventExport
	EventStop
)

var eventKindNames = map[EventKind]string{
	EventNone:       "none",
	EventStep:       "step",
	EventSelectNext: "select",
	EventManual:     "manual",
	EventAutomatic:  "auto",
	EventExport:     "export",
	EventStop:       "stop",
}

// Steps are the increments an operator can apply to the selected parameter
var Steps = []float64{-10, -1, -0.1, 0.1, 1, 10}

// Event is a single operator interaction
type Event struct {
	Kind EventKind `json:"kind"`
	// Step is only used by EventStep
	Step float64 `json:"step"`
}

func Step(step float64) Event {
	return Event{Kind: EventStep, Step: step}
}

func (k EventKind) String() string {
	return eventKindNames[k]
}

func (e Event) String() string {
	if e.Kind == EventStep {
		return fmt.Sprintf("%s %+g", e.Kind, e.Step)
	}
	return e.Kind.String()
}

// ParseEvent parses the textual form of an event, f.ex. "auto" or "step -0.1"
func ParseEvent(text string) (Event, error) {
	fields := strings.Fields(strings.ToLower(text))
	if len(fields) == 0 {
		return Event{}, fmt.Errorf("empty event")
	}

	var kind = EventNone
	for k, name := range eventKindNames {
		if name == fields[0] && k != EventNone {
			kind = k
		}
	}
	if kind == EventNone {
		return Event{}, fmt.Errorf("unsupported event '%s'", fields[0])
	}

	if kind != EventStep {
		if len(fields) > 1 {
			return Event{}, fmt.Errorf("event '%s' takes no argument", fields[0])
		}
		return Event{Kind: kind}, nil
	}

	if len(fields) != 2 {
		return Event{}, fmt.Errorf("event 'step' requires a single step value")
	}
	step, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return Event{}, fmt.Errorf("invalid step value '%s': %w", fields[1], err)
	}
	if !IsValidStep(step) {
		return Event{}, fmt.Errorf("unsupported step value '%s', use one of: %s", fields[1], stepNames())
	}
	return Step(step), nil
}

func IsValidStep(step float64) bool {
	for _, s := range Steps {
		if s == step {
			return true
		}
	}
	return false
}

func stepNames() string {
	var names []string
	for _, s := range Steps {
		names = append(names, strconv.FormatFloat(s, 'f', -1, 64))
	}
	return strings.Join(names, " | ")
}

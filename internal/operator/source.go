package operator

import (
	"github.com/markusressel/pid2go/internal/tuning"
)

const DefaultQueueSize = 16

// EventSource provides operator interactions to a loop controller
type EventSource interface {
	// Poll returns the next pending event without blocking
	Poll() (tuning.Event, bool)
}

// ChannelSource is an EventSource fed by any number of producers
type ChannelSource struct {
	events chan tuning.Event
}

func NewChannelSource(size int) *ChannelSource {
	if size <= 0 {
		size = DefaultQueueSize
	}
	return &ChannelSource{
		events: make(chan tuning.Event, size),
	}
}

// Send enqueues an event, it returns false if the queue is full
func (s *ChannelSource) Send(event tuning.Event) bool {
	select {
	case s.events <- event:
		return true
	default:
		return false
	}
}

func (s *ChannelSource) Poll() (tuning.Event, bool) {
	select {
	case event := <-s.events:
		return event, true
	default:
		return tuning.Event{}, false
	}
}

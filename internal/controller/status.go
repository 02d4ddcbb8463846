package controller

import (
	"errors"
	"fmt"
	"github.com/markusressel/pid2go/internal/operator"
	"github.com/markusressel/pid2go/internal/pid"
	"github.com/markusressel/pid2go/internal/sequencer"
	"github.com/markusressel/pid2go/internal/trend"
	"github.com/markusressel/pid2go/internal/tuning"
	cmap "github.com/orcaman/concurrent-map/v2"
)

var (
	ErrUnknownLoop = errors.New("unknown loop")
	ErrQueueFull   = errors.New("event queue is full")

	// StatusMap holds the status published by each loop controller after every scan
	StatusMap = cmap.New[Status]()
	// EventSourceMap holds the operator event queue of each loop controller
	EventSourceMap = cmap.New[*operator.ChannelSource]()
)

// Status is a read-only copy of the state of a loop controller
type Status struct {
	Loop     pid.Snapshot `json:"loop"`
	Timebase pid.Timebase `json:"timebase"`

	SelectMode    string `json:"selectMode"`
	TrendInterval int    `json:"trendInterval"`
	// Pens are the trend samples, newest first
	Pens []trend.Sample `json:"pens"`

	Sequence string            `json:"sequence"`
	Signals  sequencer.Signals `json:"signals"`

	// ScanDurationAvg and ScanDurationMax are in seconds
	ScanDurationAvg float64 `json:"scanDurationAvg"`
	ScanDurationMax float64 `json:"scanDurationMax"`

	InputErrors    int64 `json:"inputErrors"`
	OutputErrors   int64 `json:"outputErrors"`
	ExportFailures int64 `json:"exportFailures"`

	Running bool `json:"running"`
}

// SendEvent enqueues an operator event for the given loop
func SendEvent(loopId string, event tuning.Event) error {
	source, ok := EventSourceMap.Get(loopId)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownLoop, loopId)
	}
	if !source.Send(event) {
		return fmt.Errorf("%w: %s", ErrQueueFull, loopId)
	}
	return nil
}

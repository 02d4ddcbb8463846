package controller

import (
	"context"
	"errors"
	"github.com/asecurityteam/rolling"
	"github.com/markusressel/pid2go/internal/display"
	"github.com/markusressel/pid2go/internal/inputs"
	"github.com/markusressel/pid2go/internal/operator"
	"github.com/markusressel/pid2go/internal/outputs"
	"github.com/markusressel/pid2go/internal/persistence"
	"github.com/markusressel/pid2go/internal/pid"
	"github.com/markusressel/pid2go/internal/sequencer"
	"github.com/markusressel/pid2go/internal/simulation"
	"github.com/markusressel/pid2go/internal/trend"
	"github.com/markusressel/pid2go/internal/tuning"
	"github.com/markusressel/pid2go/internal/ui"
	"github.com/markusressel/pid2go/internal/util"
	"os"
	"time"
)

const (
	DefaultScanDelay = 100 * time.Millisecond

	scanDurationWindowSize = 50
)

type LoopController interface {
	// Run executes scans until the context is cancelled or a stop event is received
	Run(ctx context.Context) error
	// Scan executes a single scan and returns true if the loop was asked to stop
	Scan() (stop bool)
	GetId() string
}

// Dependencies are the collaborators of a loop controller.
// Only Loop, Trend and PV are required.
type Dependencies struct {
	Loop  *pid.Loop
	Trend *trend.Buffer

	PV   inputs.Input
	Load inputs.Input

	Sequence sequencer.Policy
	Outputs  []outputs.Output
	// Process is driven with the controller output of simulation loops
	Process *simulation.Process

	Display     display.Display
	Events      operator.EventSource
	Exporter    trend.Exporter
	Persistence persistence.Persistence
	// Persist enables saving tuning and trend to Persistence
	Persist bool

	ScanDelay time.Duration
	Clock     func() time.Time
}

type loopController struct {
	loop     *pid.Loop
	timebase *pid.Timebase
	trend    *trend.Buffer
	tuning   tuning.State

	pv   inputs.Input
	load inputs.Input

	sequence sequencer.Policy
	outputs  []outputs.Output
	signals  sequencer.Signals
	process  *simulation.Process

	display     display.Display
	events      operator.EventSource
	exporter    trend.Exporter
	persistence persistence.Persistence
	persist     bool

	scanDelay time.Duration
	clock     func() time.Time

	scanDurations *rolling.PointPolicy
	lastAlarm     pid.Alarm

	inputErrors    int64
	outputErrors   int64
	exportFailures int64
}

func NewLoopController(deps Dependencies) LoopController {
	clock := deps.Clock
	if clock == nil {
		clock = time.Now
	}
	scanDelay := deps.ScanDelay
	if scanDelay <= 0 {
		scanDelay = DefaultScanDelay
	}
	var disp display.Display = display.NoopDisplay{}
	if deps.Display != nil {
		disp = deps.Display
	}
	sequence := deps.Sequence
	if !sequence.IsValid() {
		sequence = sequencer.PolicyParallel
	}

	return &loopController{
		loop:          deps.Loop,
		timebase:      pid.NewTimebase(clock()),
		trend:         deps.Trend,
		pv:            deps.PV,
		load:          deps.Load,
		sequence:      sequence,
		outputs:       deps.Outputs,
		process:       deps.Process,
		display:       disp,
		events:        deps.Events,
		exporter:      deps.Exporter,
		persistence:   deps.Persistence,
		persist:       deps.Persist && deps.Persistence != nil,
		scanDelay:     scanDelay,
		clock:         clock,
		scanDurations: util.CreateRollingWindow(scanDurationWindowSize),
	}
}

func (c *loopController) GetId() string {
	return c.loop.ID
}

func (c *loopController) Run(ctx context.Context) error {
	c.restore()

	ui.Info("Starting controller loop for '%s'", c.loop.ID)

	for {
		select {
		case <-ctx.Done():
			return c.shutdown()
		default:
		}

		start := time.Now()
		stop := c.Scan()
		c.scanDurations.Append(time.Since(start).Seconds())

		if stop {
			ui.Info("Stop requested for loop '%s'", c.loop.ID)
			return c.shutdown()
		}

		timer := time.NewTimer(c.scanDelay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return c.shutdown()
		case <-timer.C:
		}
	}
}

func (c *loopController) Scan() (stop bool) {
	loop := c.loop

	c.acquireInputs()

	c.timebase.BeginScan(c.clock())
	loop.Compute(c.timebase.ScansPerSecond)

	if c.trend.ShouldCapture(c.timebase.ScanCount) {
		c.trend.Capture(trend.Sample{
			PV:   loop.PV,
			SP:   loop.SP,
			Out:  loop.Out,
			Load: loop.Load,
		})
	}

	c.checkAlarm()

	err := c.display.Render(c.view())
	if err != nil {
		ui.Warning("Cannot render loop %s: %v", loop.ID, err)
	}

	stop = c.handleEvent()

	c.writeOutputs()

	c.timebase.EndScan()
	c.publish(true)

	return stop
}

// acquireInputs reads PV and load, keeping the previous values on error
func (c *loopController) acquireInputs() {
	loop := c.loop

	var pvInput inputs.Input = c.pv
	if c.process != nil {
		pvInput = c.process
	}
	if pvInput != nil {
		value, err := pvInput.GetValue()
		if err != nil {
			c.inputErrors++
			ui.Warning("Cannot read PV of loop %s: %v", loop.ID, err)
		} else {
			loop.PV = value
		}
	}

	if c.load != nil {
		value, err := c.load.GetValue()
		if err != nil {
			c.inputErrors++
			ui.Warning("Cannot read load of loop %s: %v", loop.ID, err)
		} else {
			loop.FFLoad = value
		}
	}
	loop.Load = loop.FFLoad
}

func (c *loopController) checkAlarm() {
	alarm := c.loop.Alarm()
	if alarm == c.lastAlarm {
		return
	}

	switch {
	case alarm == pid.AlarmNone:
		ui.Info("Loop %s: alarm cleared", c.loop.ID)
	case alarm.IsCritical():
		ui.Error("Loop %s: %s", c.loop.ID, alarm)
	default:
		ui.Warning("Loop %s: %s", c.loop.ID, alarm)
	}
	c.lastAlarm = alarm
}

// handleEvent applies at most one pending operator event
func (c *loopController) handleEvent() (stop bool) {
	if c.events == nil {
		return false
	}
	event, ok := c.events.Poll()
	if !ok {
		return false
	}

	ui.Debug("Loop %s: operator event '%s'", c.loop.ID, event)
	result := c.tuning.Apply(c.loop, c.trend, event)

	if result.Export {
		c.exportTrend()
	}
	if event.Kind == tuning.EventStep || event.Kind == tuning.EventManual || event.Kind == tuning.EventAutomatic {
		c.saveSettings()
	}

	return result.Stop
}

func (c *loopController) writeOutputs() {
	c.signals = c.sequence.Sequence(c.loop.Out)

	if c.process != nil {
		c.process.Drive(c.loop.Out)
	}

	for i, output := range c.outputs {
		if i >= sequencer.Channels || output == nil {
			continue
		}
		err := output.Write(c.signals[i])
		if err != nil {
			c.outputErrors++
			ui.Warning("Cannot write output %d of loop %s: %v", i, c.loop.ID, err)
		}
	}
}

func (c *loopController) exportTrend() {
	if c.exporter == nil {
		ui.Warning("Loop %s: trend export is not available", c.loop.ID)
		return
	}

	path, err := c.exporter.Export(c.loop.ID, c.trend.Export())
	if err != nil {
		c.exportFailures++
		ui.Warning("Cannot export trend of loop %s: %v", c.loop.ID, err)
		return
	}
	ui.Info("Exported trend of loop %s to %s", c.loop.ID, path)

	c.saveTrend()
}

func (c *loopController) view() display.View {
	return display.View{
		Loop:           c.loop.Snapshot(),
		SelectMode:     c.tuning.SelectMode,
		ScansPerSecond: c.timebase.ScansPerSecond,
		TrendInterval:  c.trend.Interval(),
		Pens:           c.trend.Pens(),
		Sequence:       c.sequence,
		Signals:        c.signals,
		ShowLoad:       c.loop.FeedforwardActive(),
	}
}

func (c *loopController) publish(running bool) {
	mode := c.loop.Mode
	StatusMap.Set(c.loop.ID, Status{
		Loop:            c.loop.Snapshot(),
		Timebase:        *c.timebase,
		SelectMode:      c.tuning.SelectMode.Label(mode),
		TrendInterval:   c.trend.Interval(),
		Pens:            c.trend.Pens(),
		Sequence:        c.sequence.String(),
		Signals:         c.signals,
		ScanDurationAvg: util.GetWindowAvg(c.scanDurations),
		ScanDurationMax: util.GetWindowMax(c.scanDurations),
		InputErrors:     c.inputErrors,
		OutputErrors:    c.outputErrors,
		ExportFailures:  c.exportFailures,
		Running:         running,
	})
}

// restore loads persisted tuning and trend of the loop, if enabled
func (c *loopController) restore() {
	if !c.persist {
		return
	}

	settings, err := c.persistence.LoadLoopSettings(c.loop.ID)
	if err == nil {
		ui.Info("Restoring tuning of loop '%s' from %s", c.loop.ID, settings.SavedAt.Format(time.RFC3339))
		c.loop.ApplyTuning(settings.Tuning)
		c.trend.SetInterval(settings.TrendInterval)
	} else if !errors.Is(err, os.ErrNotExist) {
		ui.Warning("Cannot load tuning of loop %s: %v", c.loop.ID, err)
	}

	pens, err := c.persistence.LoadTrend(c.loop.ID)
	if err == nil {
		c.trend.Restore(pens)
	} else if !errors.Is(err, os.ErrNotExist) {
		ui.Warning("Cannot load trend of loop %s: %v", c.loop.ID, err)
	}
}

func (c *loopController) saveSettings() {
	if !c.persist {
		return
	}
	err := c.persistence.SaveLoopSettings(c.loop.ID, persistence.LoopSettings{
		Tuning:        c.loop.Tuning(),
		TrendInterval: c.trend.Interval(),
		SavedAt:       c.clock(),
	})
	if err != nil {
		ui.Warning("Cannot save tuning of loop %s: %v", c.loop.ID, err)
	}
}

func (c *loopController) saveTrend() {
	if !c.persist {
		return
	}
	err := c.persistence.SaveTrend(c.loop.ID, c.trend.Pens())
	if err != nil {
		ui.Warning("Cannot save trend of loop %s: %v", c.loop.ID, err)
	}
}

func (c *loopController) shutdown() error {
	ui.Info("Stopping controller loop for '%s'", c.loop.ID)

	c.saveSettings()
	c.saveTrend()
	c.publish(false)

	return c.display.Close()
}

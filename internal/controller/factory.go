package controller

import (
	"fmt"
	"github.com/markusressel/pid2go/internal/configuration"
	"github.com/markusressel/pid2go/internal/inputs"
	"github.com/markusressel/pid2go/internal/outputs"
	"github.com/markusressel/pid2go/internal/pid"
	"github.com/markusressel/pid2go/internal/sequencer"
	"github.com/markusressel/pid2go/internal/simulation"
	"github.com/markusressel/pid2go/internal/trend"
)

// NewLoop creates a loop with the controller defaults, overridden by the given configuration
func NewLoop(config configuration.LoopConfig) (*pid.Loop, error) {
	loop := pid.NewLoop(config.ID)

	loopType, err := config.Type.Parse()
	if err != nil {
		return nil, err
	}
	action, err := config.Action.Parse()
	if err != nil {
		return nil, err
	}
	equation, err := config.Equation.Parse()
	if err != nil {
		return nil, err
	}
	mode, err := config.Mode.Parse()
	if err != nil {
		return nil, err
	}
	loop.Type = loopType
	loop.Action = action
	loop.Equation = equation
	loop.Mode = mode

	overrides := []struct {
		value  *float64
		target *float64
	}{
		{config.SP, &loop.SP},
		{config.Bias, &loop.Bias},
		{config.KP, &loop.KP},
		{config.KI, &loop.KI},
		{config.KD, &loop.KD},
		{config.IDeadband, &loop.IDeadband},
		{config.FFGain, &loop.FFGain},
		{config.FFBias, &loop.FFBias},
	}
	for _, override := range overrides {
		if override.value != nil {
			*override.target = *override.value
		}
	}

	if config.Windup != nil {
		loop.WindupHigh = config.Windup.High
		loop.WindupLow = config.Windup.Low
	}
	if config.Alarms != nil {
		loop.Alarms = pid.AlarmLimits{
			HiHi: config.Alarms.HiHi,
			Hi:   config.Alarms.Hi,
			Lo:   config.Alarms.Lo,
			LoLo: config.Alarms.LoLo,
		}
	}
	if config.Range != nil {
		loop.Range = pid.Range{
			URV:  config.Range.URV,
			LRV:  config.Range.LRV,
			Unit: config.Range.Unit,
		}
	}
	if config.Simulation != nil {
		loop.FFLoad = config.Simulation.Load
		loop.Load = loop.FFLoad
	}

	// manual startup holds the configured bias
	loop.Out = loop.Bias

	return loop, nil
}

// NewDependencies creates the loop, trend, inputs and outputs of the given loop configuration.
// Display, events, exporter and persistence are left to the caller.
func NewDependencies(config configuration.LoopConfig, trendWidth int) (Dependencies, error) {
	loop, err := NewLoop(config)
	if err != nil {
		return Dependencies{}, err
	}

	interval := trend.DefaultInterval
	if config.TrendInterval != nil {
		interval = *config.TrendInterval
	}

	deps := Dependencies{
		Loop:    loop,
		Trend:   trend.NewBuffer(trendWidth, interval),
		Persist: config.Persist,
	}

	if loop.Type == pid.LoopTypeSimulation {
		deps.Process = simulation.NewProcess(config.ID, config.Simulation, loop.Out)
	} else if config.Input.PV != nil {
		deps.PV, err = inputs.NewInput(fmt.Sprintf("%s/pv", config.ID), *config.Input.PV)
		if err != nil {
			return Dependencies{}, err
		}
	}

	if config.Input.Load != nil {
		deps.Load, err = inputs.NewInput(fmt.Sprintf("%s/load", config.ID), *config.Input.Load)
		if err != nil {
			return Dependencies{}, err
		}
	} else if config.Simulation != nil {
		deps.Load = inputs.StaticInput{Id: fmt.Sprintf("%s/load", config.ID), Value: config.Simulation.Load}
	}

	deps.Sequence, err = config.Output.Sequence.Parse()
	if err != nil {
		return Dependencies{}, err
	}

	deps.Outputs = make([]outputs.Output, sequencer.Channels)
	for i := range deps.Outputs {
		id := fmt.Sprintf("%s/aout%d", config.ID, i+1)
		if i >= len(config.Output.Channels) {
			deps.Outputs[i] = outputs.DiscardOutput{Id: id}
			continue
		}
		deps.Outputs[i], err = outputs.NewOutput(id, i, config.Output.Channels[i])
		if err != nil {
			return Dependencies{}, err
		}
	}

	return deps, nil
}

package configuration

import (
	"errors"
	"fmt"
	"github.com/looplab/tarjan"
	"github.com/markusressel/pid2go/internal/pid"
	"github.com/markusressel/pid2go/internal/sequencer"
	"github.com/markusressel/pid2go/internal/trend"
	"github.com/markusressel/pid2go/internal/util"
	"golang.org/x/exp/slices"
)

func Validate(configPath string) error {
	return validateConfig(&CurrentConfig, configPath)
}

func validateConfig(config *Configuration, path string) error {
	err := validateLoops(config)
	if err != nil {
		return err
	}

	err = validateConsole(config)
	if err != nil {
		return err
	}

	if containsCmdIO(config) {
		if _, err := util.CheckFilePermissionsForExecution(path); err != nil {
			return errors.New(fmt.Sprintf("Config file '%s' has invalid permissions: %s", path, err))
		}
	}

	return nil
}

func containsCmdIO(config *Configuration) bool {
	for _, loopConfig := range config.Loops {
		for _, input := range []*InputConfig{loopConfig.Input.PV, loopConfig.Input.Load} {
			if input != nil && input.Cmd != nil {
				return true
			}
		}
		for _, channel := range loopConfig.Output.Channels {
			if channel.Cmd != nil {
				return true
			}
		}
	}

	return false
}

func validateConsole(config *Configuration) error {
	if !config.Console.Enabled || len(config.Console.Loop) <= 0 {
		return nil
	}
	if !loopIdExists(config.Console.Loop, config) {
		return errors.New(fmt.Sprintf("Console: no loop definition with id '%s' found", config.Console.Loop))
	}
	return nil
}

func validateLoops(config *Configuration) error {
	if len(config.Loops) <= 0 {
		return errors.New("no loop definition found")
	}

	var ids []string
	graph := make(map[interface{}][]interface{})

	for _, loopConfig := range config.Loops {
		if len(loopConfig.ID) <= 0 {
			return errors.New("loop id must not be empty")
		}
		if slices.Contains(ids, loopConfig.ID) {
			return errors.New(fmt.Sprintf("duplicate loop id detected: %s", loopConfig.ID))
		}
		ids = append(ids, loopConfig.ID)

		loopType, err := loopConfig.Type.Parse()
		if err != nil {
			return errors.New(fmt.Sprintf("Loop %s: %v", loopConfig.ID, err))
		}
		if _, err := loopConfig.Action.Parse(); err != nil {
			return errors.New(fmt.Sprintf("Loop %s: %v", loopConfig.ID, err))
		}
		if _, err := loopConfig.Equation.Parse(); err != nil {
			return errors.New(fmt.Sprintf("Loop %s: %v", loopConfig.ID, err))
		}
		if _, err := loopConfig.Mode.Parse(); err != nil {
			return errors.New(fmt.Sprintf("Loop %s: %v", loopConfig.ID, err))
		}

		err = validateLoopSettings(loopConfig)
		if err != nil {
			return err
		}

		switch loopType {
		case pid.LoopTypeCascade, pid.LoopTypeRatio:
			if len(loopConfig.Primary) <= 0 {
				return errors.New(fmt.Sprintf("Loop %s: missing primary loop reference", loopConfig.ID))
			}
			if loopConfig.Primary == loopConfig.ID {
				return errors.New(fmt.Sprintf("Loop %s: a loop cannot reference itself", loopConfig.ID))
			}
			if !loopIdExists(loopConfig.Primary, config) {
				return errors.New(fmt.Sprintf("Loop %s: no loop definition with id '%s' found", loopConfig.ID, loopConfig.Primary))
			}
			graph[loopConfig.ID] = []interface{}{loopConfig.Primary}
		case pid.LoopTypeSimulation:
			if loopConfig.Input.PV != nil {
				return errors.New(fmt.Sprintf("Loop %s: a simulation loop cannot have a pv input", loopConfig.ID))
			}
		case pid.LoopTypeSingleLoop:
			if loopConfig.Input.PV == nil {
				return errors.New(fmt.Sprintf("Loop %s: missing pv input", loopConfig.ID))
			}
		}

		if loopConfig.Input.PV != nil {
			err = validateInput(loopConfig.ID, "pv", loopConfig.Input.PV)
			if err != nil {
				return err
			}
		}
		if loopConfig.Input.Load != nil {
			err = validateInput(loopConfig.ID, "load", loopConfig.Input.Load)
			if err != nil {
				return err
			}
		}

		err = validateOutput(loopConfig.ID, loopConfig.Output)
		if err != nil {
			return err
		}
	}

	return validateNoLoops(graph)
}

func validateLoopSettings(loopConfig LoopConfig) error {
	bounds := []struct {
		name  string
		value *float64
		min   float64
		max   float64
	}{
		{"sp", loopConfig.SP, pid.PercentMin, pid.PercentMax},
		{"bias", loopConfig.Bias, pid.PercentMin, pid.PercentMax},
		{"kp", loopConfig.KP, 0, pid.GainMax},
		{"ki", loopConfig.KI, 0, pid.IntegralMax},
		{"kd", loopConfig.KD, 0, pid.DerivativeMax},
		{"iDeadband", loopConfig.IDeadband, 0, pid.DeadbandMax},
		{"ffGain", loopConfig.FFGain, -pid.FFGainMax, pid.FFGainMax},
		{"ffBias", loopConfig.FFBias, -pid.FFBiasMax, pid.FFBiasMax},
	}
	for _, bound := range bounds {
		if bound.value == nil {
			continue
		}
		if *bound.value < bound.min || *bound.value > bound.max {
			return errors.New(fmt.Sprintf("Loop %s: %s must be within [%g..%g], got %g", loopConfig.ID, bound.name, bound.min, bound.max, *bound.value))
		}
	}

	if loopConfig.TrendInterval != nil {
		interval := *loopConfig.TrendInterval
		if interval < trend.MinInterval || interval > trend.MaxInterval {
			return errors.New(fmt.Sprintf("Loop %s: trendInterval must be within [%d..%d], got %d", loopConfig.ID, trend.MinInterval, trend.MaxInterval, interval))
		}
	}

	if loopConfig.Windup != nil && loopConfig.Windup.High <= loopConfig.Windup.Low {
		return errors.New(fmt.Sprintf("Loop %s: windup high must be greater than windup low", loopConfig.ID))
	}

	if loopConfig.Alarms != nil {
		alarms := loopConfig.Alarms
		if !(alarms.HiHi > alarms.Hi && alarms.Hi > alarms.Lo && alarms.Lo > alarms.LoLo) {
			return errors.New(fmt.Sprintf("Loop %s: alarm limits must satisfy hihi > hi > lo > lolo", loopConfig.ID))
		}
	}

	if loopConfig.Range != nil && loopConfig.Range.URV == loopConfig.Range.LRV {
		return errors.New(fmt.Sprintf("Loop %s: range urv and lrv must not be equal", loopConfig.ID))
	}

	return nil
}

func validateInput(loopId string, name string, input *InputConfig) error {
	subConfigs := 0
	if input.File != nil {
		subConfigs++
	}
	if input.Cmd != nil {
		subConfigs++
	}
	if input.Serial != nil {
		subConfigs++
	}
	if subConfigs > 1 {
		return errors.New(fmt.Sprintf("Loop %s: %s input: only one input type can be used per input definition block", loopId, name))
	}
	if subConfigs <= 0 {
		return errors.New(fmt.Sprintf("Loop %s: %s input: sub-configuration for input is missing, use one of: file | cmd | serial", loopId, name))
	}

	if input.File != nil && len(input.File.Path) <= 0 {
		return errors.New(fmt.Sprintf("Loop %s: %s input: no file path provided", loopId, name))
	}
	if input.Cmd != nil && len(input.Cmd.Exec) <= 0 {
		return errors.New(fmt.Sprintf("Loop %s: %s input: executable is missing", loopId, name))
	}
	if input.Serial != nil && len(input.Serial.Port) <= 0 {
		return errors.New(fmt.Sprintf("Loop %s: %s input: no serial port provided", loopId, name))
	}
	if input.Scale != nil && input.Scale.Min == input.Scale.Max {
		return errors.New(fmt.Sprintf("Loop %s: %s input: scale min and max must not be equal", loopId, name))
	}

	return nil
}

func validateOutput(loopId string, output LoopOutputConfig) error {
	if _, err := output.Sequence.Parse(); err != nil {
		return errors.New(fmt.Sprintf("Loop %s: %v", loopId, err))
	}

	if len(output.Channels) > sequencer.Channels {
		return errors.New(fmt.Sprintf("Loop %s: at most %d output channels are supported", loopId, sequencer.Channels))
	}

	for i, channel := range output.Channels {
		subConfigs := 0
		if channel.File != nil {
			subConfigs++
		}
		if channel.Cmd != nil {
			subConfigs++
		}
		if channel.Serial != nil {
			subConfigs++
		}
		if subConfigs > 1 {
			return errors.New(fmt.Sprintf("Loop %s: output channel %d: only one output type can be used per channel definition block", loopId, i))
		}
		if subConfigs <= 0 {
			return errors.New(fmt.Sprintf("Loop %s: output channel %d: sub-configuration for channel is missing, use one of: file | cmd | serial", loopId, i))
		}

		if channel.File != nil && len(channel.File.Path) <= 0 {
			return errors.New(fmt.Sprintf("Loop %s: output channel %d: no file path provided", loopId, i))
		}
		if channel.Cmd != nil && len(channel.Cmd.Exec) <= 0 {
			return errors.New(fmt.Sprintf("Loop %s: output channel %d: executable is missing", loopId, i))
		}
		if channel.Serial != nil && len(channel.Serial.Port) <= 0 {
			return errors.New(fmt.Sprintf("Loop %s: output channel %d: no serial port provided", loopId, i))
		}
	}

	return nil
}

func loopIdExists(loopId string, config *Configuration) bool {
	for _, loop := range config.Loops {
		if loop.ID == loopId {
			return true
		}
	}

	return false
}

func validateNoLoops(graph map[interface{}][]interface{}) error {
	output := tarjan.Connections(graph)
	for _, items := range output {
		if len(items) > 1 {
			return errors.New(fmt.Sprintf("You have created a loop dependency cycle: %v", items))
		}
	}
	return nil
}

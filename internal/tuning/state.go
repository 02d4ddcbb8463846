package tuning

import (
	"github.com/markusressel/pid2go/internal/pid"
	"github.com/markusressel/pid2go/internal/util"
	"math"
)

// SelectMode identifies the parameter adjusted by step events
type SelectMode int

const (
	SelectOutput SelectMode = iota
	SelectKP
	SelectFFGain
	SelectKI
	SelectIDeadband
	SelectKD
	SelectFFBias
	SelectAction
	SelectEquation
	SelectTrendInterval
)

// nextSelectMode is the rotation order of the select-next event
var nextSelectMode = map[SelectMode]SelectMode{
	SelectOutput:        SelectKP,
	SelectKP:            SelectFFGain,
	SelectFFGain:        SelectKI,
	SelectKI:            SelectIDeadband,
	SelectIDeadband:     SelectKD,
	SelectKD:            SelectFFBias,
	SelectFFBias:        SelectAction,
	SelectAction:        SelectEquation,
	SelectEquation:      SelectTrendInterval,
	SelectTrendInterval: SelectOutput,
}

var selectModeLabels = map[SelectMode]string{
	SelectKP:            "KP",
	SelectFFGain:        "FF Gain",
	SelectKI:            "KI",
	SelectIDeadband:     "I Deadband",
	SelectKD:            "KD",
	SelectFFBias:        "FF Bias",
	SelectAction:        "Action",
	SelectEquation:      "Equation",
	SelectTrendInterval: "Trend Interval",
}

// Label returns the display name of the selected parameter, which
// depends on the loop mode for SelectOutput.
func (s SelectMode) Label(mode pid.Mode) string {
	if s == SelectOutput {
		if mode == pid.ModeAutomatic {
			return "SP"
		}
		return "OUT"
	}
	return selectModeLabels[s]
}

// IntervalAdjuster changes the trend capture interval
type IntervalAdjuster interface {
	AdjustInterval(delta int)
}

// Result tells the orchestrator about requests that cannot be handled by the state machine itself
type Result struct {
	Export bool
	Stop   bool
}

// State is the operator interaction state of a single loop
type State struct {
	SelectMode SelectMode `json:"selectMode"`
}

// Apply mutates the loop according to the given event
func (s *State) Apply(loop *pid.Loop, trend IntervalAdjuster, event Event) Result {
	switch event.Kind {
	case EventStep:
		s.step(loop, trend, event.Step)
	case EventSelectNext:
		s.SelectMode = nextSelectMode[s.SelectMode]
	case EventManual:
		loop.SetMode(pid.ModeManual)
		s.SelectMode = SelectOutput
	case EventAutomatic:
		loop.SetMode(pid.ModeAutomatic)
		s.SelectMode = SelectOutput
	case EventExport:
		return Result{Export: true}
	case EventStop:
		return Result{Stop: true}
	}
	return Result{}
}

func (s *State) step(loop *pid.Loop, trend IntervalAdjuster, step float64) {
	switch s.SelectMode {
	case SelectOutput:
		if loop.Mode == pid.ModeManual {
			loop.Bias = util.Coerce(loop.Bias+step, pid.PercentMin, pid.PercentMax)
		} else {
			loop.SP = util.Coerce(loop.SP+step, pid.PercentMin, pid.PercentMax)
		}
	case SelectKP:
		loop.KP += step
	case SelectFFGain:
		loop.FFGain += step
	case SelectKI:
		loop.KI += step
	case SelectIDeadband:
		loop.IDeadband += step
	case SelectKD:
		loop.KD += step
	case SelectFFBias:
		loop.FFBias += step
	case SelectAction:
		// structural changes are only allowed in manual mode
		if loop.Mode != pid.ModeManual {
			return
		}
		if step > 0 {
			loop.Action = pid.ActionDirect
		} else if step < 0 {
			loop.Action = pid.ActionReverse
		}
	case SelectEquation:
		if loop.Mode != pid.ModeManual {
			return
		}
		if step > 0 {
			loop.Equation = pid.EquationParallel
		} else if step < 0 {
			loop.Equation = pid.EquationIdeal
		}
	case SelectTrendInterval:
		if trend != nil {
			trend.AdjustInterval(int(math.Floor(step)))
		}
	}
}

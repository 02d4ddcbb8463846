package pid

import (
	"github.com/markusressel/pid2go/internal/util"
	"math"
)

// Compute advances the loop by one scan using the position form of the PID algorithm.
// scansPerSecond scales the integral and derivative terms to physical time.
func (l *Loop) Compute(scansPerSecond float64) {
	l.normalize()

	l.history.Set(l.PV)

	// always computed, it is needed for bumpless transfer even if inactive
	l.FF = l.FFLoad*l.FFGain + l.FFBias

	switch l.Mode {
	case ModeAutomatic:
		err := l.Error()

		// the integral accumulates in the bias
		if !l.integralInhibited(err) {
			l.Bias += l.integralStep(err, scansPerSecond)
		}

		l.Out = l.KP*err + l.Bias + l.derivative(scansPerSecond) + l.feedforward()
	case ModeManual:
		// setpoint and output tracking
		l.SP = l.PV
		l.Out = l.Bias
	}

	l.Out = util.Coerce(l.Out, PercentMin, PercentMax)
	l.Bias = util.Coerce(l.Bias, PercentMin, PercentMax)

	l.history.Shift()
}

// Error returns the control error with respect to the action of this loop
func (l *Loop) Error() float64 {
	if l.Action == ActionDirect {
		return l.PV - l.SP
	}
	return l.SP - l.PV
}

// SetMode switches between manual and automatic mode without
// a step change of the output.
func (l *Loop) SetMode(mode Mode) {
	if mode == l.Mode {
		return
	}

	switch mode {
	case ModeManual:
		l.Bias = l.Out
	case ModeAutomatic:
		l.Bias = l.Out - l.feedforward()
	}

	l.Mode = mode
}

// integralInhibited checks the windup limits against the output of the previous scan
func (l *Loop) integralInhibited(err float64) bool {
	switch {
	case (l.Out > l.WindupHigh || l.Out > 100) && err > 0:
		return true
	case (l.Out < l.WindupLow || l.Out < 0) && err < 0:
		return true
	case math.Abs(err) < math.Abs(l.IDeadband):
		return true
	default:
		return false
	}
}

func (l *Loop) integralStep(err float64, scansPerSecond float64) float64 {
	switch l.Equation {
	case EquationParallel:
		return err * l.KI / (60 * scansPerSecond)
	default:
		return l.KP * err * l.KI / (60 * scansPerSecond)
	}
}

// derivative acts on the PV only, measured over DerivativeSpan scans
func (l *Loop) derivative(scansPerSecond float64) float64 {
	slope := (l.history.At(DerivativeSpan) - l.history.At(0)) * scansPerSecond / DerivativeSpan

	var result float64
	switch l.Equation {
	case EquationParallel:
		result = l.KD * slope
	default:
		result = l.KP * l.KD * slope
	}

	if l.Action == ActionDirect {
		result = -result
	}
	return result
}

func (l *Loop) feedforward() float64 {
	if l.FeedforwardActive() {
		return l.FF
	}
	return 0
}

func (l *Loop) normalize() {
	l.PV = util.Coerce(l.PV, PercentMin, PercentMax)
	l.SP = util.Coerce(l.SP, PercentMin, PercentMax)
	l.Bias = util.Coerce(l.Bias, PercentMin, PercentMax)

	l.KP = util.Coerce(l.KP, 0, GainMax)
	l.KI = util.Coerce(l.KI, 0, IntegralMax)
	l.KD = util.Coerce(l.KD, 0, DerivativeMax)
	l.IDeadband = util.Coerce(l.IDeadband, 0, DeadbandMax)
	l.FFGain = util.Coerce(l.FFGain, -FFGainMax, FFGainMax)
	l.FFBias = util.Coerce(l.FFBias, -FFBiasMax, FFBiasMax)
}

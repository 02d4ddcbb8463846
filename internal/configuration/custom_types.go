package configuration

import (
	"github.com/markusressel/pid2go/internal/pid"
	"github.com/markusressel/pid2go/internal/sequencer"
	"github.com/mitchellh/mapstructure"
	"reflect"
	"strconv"
)

// LoopTypeValue is the configured loop type, empty selects single-loop
type LoopTypeValue string

// ActionValue is the configured controller action, empty selects reverse
type ActionValue string

// EquationValue is the configured PID equation, empty selects ideal
type EquationValue string

// ModeValue is the configured startup mode, empty selects manual
type ModeValue string

// SequenceValue is the configured output sequence, empty selects parallel
type SequenceValue string

func (v LoopTypeValue) Parse() (pid.LoopType, error) {
	if len(v) <= 0 {
		return pid.LoopTypeSingleLoop, nil
	}
	return pid.ParseLoopType(string(v))
}

func (v ActionValue) Parse() (pid.Action, error) {
	if len(v) <= 0 {
		return pid.ActionReverse, nil
	}
	return pid.ParseAction(string(v))
}

func (v EquationValue) Parse() (pid.Equation, error) {
	if len(v) <= 0 {
		return pid.EquationIdeal, nil
	}
	return pid.ParseEquation(string(v))
}

func (v ModeValue) Parse() (pid.Mode, error) {
	if len(v) <= 0 {
		return pid.ModeManual, nil
	}
	return pid.ParseMode(string(v))
}

func (v SequenceValue) Parse() (sequencer.Policy, error) {
	if len(v) <= 0 {
		return sequencer.PolicyParallel, nil
	}
	return sequencer.ParsePolicy(string(v))
}

// LegacyEnumHookFunc returns a mapstructure decode hook that allows enum
// values to be configured with their numeric codes, f.ex. "action: 1".
func LegacyEnumHookFunc() mapstructure.DecodeHookFuncType {
	loopTypeType := reflect.TypeOf(LoopTypeValue(""))
	actionType := reflect.TypeOf(ActionValue(""))
	equationType := reflect.TypeOf(EquationValue(""))
	modeType := reflect.TypeOf(ModeValue(""))
	sequenceType := reflect.TypeOf(SequenceValue(""))

	return func(
		f reflect.Type,
		t reflect.Type,
		data interface{},
	) (interface{}, error) {
		code, ok := anyToCode(data)
		if !ok {
			return data, nil
		}

		switch t {
		case loopTypeType:
			return LoopTypeValue(codeToName(pid.LoopTypeNames(), code)), nil
		case actionType:
			return ActionValue(codeToName(pid.ActionNames(), code)), nil
		case equationType:
			return EquationValue(codeToName(pid.EquationNames(), code)), nil
		case modeType:
			return ModeValue(codeToName(pid.ModeNames(), code)), nil
		case sequenceType:
			policy := sequencer.Policy(code)
			if !policy.IsValid() {
				return SequenceValue(strconv.Itoa(code)), nil
			}
			return SequenceValue(policy.String()), nil
		}

		return data, nil
	}
}

// codeToName returns the name at index code, or the code itself if out of range
// so that validation can report it.
func codeToName(names []string, code int) string {
	if code < 0 || code >= len(names) {
		return strconv.Itoa(code)
	}
	return names[code]
}

// anyToCode converts numeric values to an enum code
func anyToCode(v interface{}) (int, bool) {
	switch val := v.(type) {
	case int:
		return val, true
	case int64:
		return int(val), true
	case uint64:
		return int(val), true
	case float64:
		if val != float64(int(val)) {
			return 0, false
		}
		return int(val), true
	default:
		return 0, false
	}
}

package pid

import (
	"fmt"
	"strings"
)

type Action int

const (
	ActionReverse Action = iota
	ActionDirect
)

type Equation int

const (
	EquationIdeal Equation = iota
	EquationParallel
)

type Mode int

const (
	ModeManual Mode = iota
	ModeAutomatic
)

// LoopType classifies a loop. Only Simulation and SingleLoop are executed,
// Ratio and Cascade exist for configuration compatibility.
type LoopType int

const (
	LoopTypeSimulation LoopType = iota
	LoopTypeSingleLoop
	LoopTypeRatio
	LoopTypeCascade
)

var (
	actionNames   = map[Action]string{ActionReverse: "reverse", ActionDirect: "direct"}
	equationNames = map[Equation]string{EquationIdeal: "ideal", EquationParallel: "parallel"}
	modeNames     = map[Mode]string{ModeManual: "manual", ModeAutomatic: "automatic"}
	loopTypeNames = map[LoopType]string{
		LoopTypeSimulation: "simulation",
		LoopTypeSingleLoop: "single-loop",
		LoopTypeRatio:      "ratio",
		LoopTypeCascade:    "cascade",
	}
)

func (a Action) String() string     { return actionNames[a] }
func (e Equation) String() string   { return equationNames[e] }
func (m Mode) String() string       { return modeNames[m] }
func (t LoopType) String() string   { return loopTypeNames[t] }
func (t LoopType) IsExecuted() bool { return t == LoopTypeSimulation || t == LoopTypeSingleLoop }

func ParseAction(value string) (Action, error) {
	return parseEnum(actionNames, "action", value)
}

func ParseEquation(value string) (Equation, error) {
	return parseEnum(equationNames, "equation", value)
}

func ParseMode(value string) (Mode, error) {
	return parseEnum(modeNames, "mode", value)
}

func ParseLoopType(value string) (LoopType, error) {
	return parseEnum(loopTypeNames, "loop type", value)
}

// ActionNames returns the configuration names of all actions in declaration order
func ActionNames() []string { return enumNames(actionNames) }

func EquationNames() []string { return enumNames(equationNames) }

func ModeNames() []string { return enumNames(modeNames) }

func LoopTypeNames() []string { return enumNames(loopTypeNames) }

func parseEnum[T ~int](names map[T]string, kind string, value string) (T, error) {
	normalized := strings.ToLower(strings.TrimSpace(value))
	for key, name := range names {
		if name == normalized {
			return key, nil
		}
	}
	var zero T
	return zero, fmt.Errorf("unsupported %s '%s', use one of: %s", kind, value, strings.Join(enumNames(names), " | "))
}

func enumNames[T ~int](names map[T]string) []string {
	result := make([]string, len(names))
	for key, name := range names {
		result[int(key)] = name
	}
	return result
}

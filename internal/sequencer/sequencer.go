package sequencer

import (
	"fmt"
	"github.com/markusressel/pid2go/internal/util"
	"strings"
)

const (
	Channels = 2

	SignalMin = 0.0
	SignalMax = 5.0
)

// Policy selects how a single controller output is split across both output channels
type Policy int

const (
	PolicyParallel      Policy = 1
	PolicyComplementary Policy = 2
	PolicyExclusive     Policy = 3
	PolicyProgressive   Policy = 4
)

// Signals are the values of both output channels, in the range [SignalMin..SignalMax]
type Signals [Channels]float64

// line maps the controller output onto a channel signal: out/divisor + offset
type line struct {
	divisor float64
	offset  float64
}

func (l line) apply(out float64) float64 {
	return util.Coerce(out/l.divisor+l.offset, SignalMin, SignalMax)
}

var policies = map[Policy][Channels]line{
	PolicyParallel:      {{divisor: 25, offset: 1}, {divisor: 25, offset: 1}},
	PolicyComplementary: {{divisor: 25, offset: 1}, {divisor: -25, offset: 5}},
	PolicyExclusive:     {{divisor: 12.5, offset: -3}, {divisor: -12.5, offset: 5}},
	PolicyProgressive:   {{divisor: 12.5, offset: 1}, {divisor: 12.5, offset: -3}},
}

var policyNames = map[Policy]string{
	PolicyParallel:      "parallel",
	PolicyComplementary: "complementary",
	PolicyExclusive:     "exclusive",
	PolicyProgressive:   "progressive",
}

// Policies returns all policies in ascending order
func Policies() []Policy {
	return []Policy{PolicyParallel, PolicyComplementary, PolicyExclusive, PolicyProgressive}
}

func (p Policy) String() string {
	return policyNames[p]
}

func (p Policy) IsValid() bool {
	_, ok := policies[p]
	return ok
}

// Sequence splits the controller output out (percent) into both channel signals.
// An unknown policy results in both channels at SignalMin.
func (p Policy) Sequence(out float64) Signals {
	lines, ok := policies[p]
	if !ok {
		return Signals{SignalMin, SignalMin}
	}
	var result Signals
	for i, l := range lines {
		result[i] = l.apply(out)
	}
	return result
}

func ParsePolicy(value string) (Policy, error) {
	normalized := strings.ToLower(strings.TrimSpace(value))
	for _, p := range Policies() {
		if policyNames[p] == normalized {
			return p, nil
		}
	}
	return 0, fmt.Errorf("unsupported sequence '%s', use one of: %s", value, strings.Join(Names(), " | "))
}

func Names() []string {
	var result []string
	for _, p := range Policies() {
		result = append(result, p.String())
	}
	return result
}

package simulation

import (
	"github.com/markusressel/pid2go/internal/configuration"
	"math"
	"sync"
	"time"
)

const (
	DefaultGain         = 1.0
	DefaultTimeConstant = 5 * time.Second
)

// Process is a first order lag process model. It is driven by the
// controller output and provides the resulting process value.
type Process struct {
	Id           string
	Gain         float64
	Offset       float64
	TimeConstant time.Duration

	mu    sync.Mutex
	pv    float64
	drive float64
	last  time.Time
	clock func() time.Time
}

func NewProcess(id string, config *configuration.SimulationConfig, initialPV float64) *Process {
	process := &Process{
		Id:           id,
		Gain:         DefaultGain,
		TimeConstant: DefaultTimeConstant,
		pv:           initialPV,
		drive:        initialPV,
		clock:        time.Now,
	}
	if config != nil {
		if config.Gain != 0 {
			process.Gain = config.Gain
		}
		if config.TimeConstant > 0 {
			process.TimeConstant = config.TimeConstant
		}
		process.Offset = config.Offset
	}
	process.last = process.clock()
	return process
}

func (p *Process) GetId() string {
	return p.Id
}

// GetValue advances the model to the current time and returns the process value
func (p *Process) GetValue() (float64, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.advance(p.clock())
	return p.pv, nil
}

// Drive sets the controller output acting on the process, in percent
func (p *Process) Drive(out float64) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.advance(p.clock())
	p.drive = out
}

// Target is the steady state process value of the current drive
func (p *Process) Target() float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.target()
}

func (p *Process) target() float64 {
	return p.Gain*p.drive + p.Offset
}

func (p *Process) advance(now time.Time) {
	elapsed := now.Sub(p.last)
	if elapsed <= 0 {
		return
	}
	p.last = now

	alpha := 1 - math.Exp(-elapsed.Seconds()/p.TimeConstant.Seconds())
	p.pv += (p.target() - p.pv) * alpha
}

package simulation

import (
	"github.com/markusressel/pid2go/internal/configuration"
	"github.com/stretchr/testify/assert"
	"math"
	"testing"
	"time"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}

func createProcess(config *configuration.SimulationConfig, initialPV float64) (*Process, *fakeClock) {
	clock := &fakeClock{now: time.Unix(1000, 0)}
	process := NewProcess("sim", config, initialPV)
	process.clock = clock.Now
	process.last = clock.Now()
	return process, clock
}

func TestProcess_Defaults(t *testing.T) {
	// WHEN
	process := NewProcess("sim", nil, 30)

	// THEN
	assert.Equal(t, DefaultGain, process.Gain)
	assert.Equal(t, DefaultTimeConstant, process.TimeConstant)
	assert.Equal(t, 30.0, process.Target())
}

func TestProcess_SteadyStateWithoutTime(t *testing.T) {
	// GIVEN
	process, _ := createProcess(nil, 40)

	// WHEN
	process.Drive(80)
	value, err := process.GetValue()

	// THEN
	assert.NoError(t, err)
	assert.Equal(t, 40.0, value)
}

func TestProcess_FirstOrderLag(t *testing.T) {
	// GIVEN
	process, clock := createProcess(&configuration.SimulationConfig{
		Gain:         1,
		TimeConstant: 2 * time.Second,
	}, 0)
	process.Drive(100)

	// WHEN
	clock.Advance(2 * time.Second)
	value, _ := process.GetValue()

	// THEN
	assert.InDelta(t, 100*(1-math.Exp(-1)), value, 0.000001)

	// WHEN
	clock.Advance(time.Minute)
	value, _ = process.GetValue()

	// THEN
	assert.InDelta(t, 100, value, 0.0001)
}

func TestProcess_GainAndOffset(t *testing.T) {
	// GIVEN
	process, clock := createProcess(&configuration.SimulationConfig{
		Gain:         0.5,
		Offset:       10,
		TimeConstant: time.Second,
	}, 0)

	// WHEN
	process.Drive(60)
	clock.Advance(time.Hour)
	value, _ := process.GetValue()

	// THEN
	assert.InDelta(t, 40, value, 0.000001)
	assert.Equal(t, 40.0, process.Target())
}

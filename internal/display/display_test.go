package display

import (
	"github.com/markusressel/pid2go/internal/pid"
	"github.com/markusressel/pid2go/internal/sequencer"
	"github.com/markusressel/pid2go/internal/trend"
	"github.com/markusressel/pid2go/internal/tuning"
	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
	"testing"
)

func createView() View {
	loop := pid.NewLoop("loop0")
	loop.PV = 50
	loop.Compute(5)
	return View{
		Loop:           loop.Snapshot(),
		SelectMode:     tuning.SelectKP,
		ScansPerSecond: 10,
		TrendInterval:  5,
		Pens:           []trend.Sample{{PV: 50, SP: 50, Out: 50}, {PV: 40, SP: 50, Out: 60}},
		Sequence:       sequencer.PolicyParallel,
		Signals:        sequencer.Signals{3, 3},
	}
}

func TestView_TrendTimebase(t *testing.T) {
	// GIVEN
	view := View{ScansPerSecond: 10, TrendInterval: 4}

	// THEN
	assert.Equal(t, 2.5, view.TrendTimebase())
	assert.Equal(t, 0.0, View{ScansPerSecond: 10}.TrendTimebase())
}

func TestFormat(t *testing.T) {
	// GIVEN
	pterm.DisableColor()
	pterm.DisableStyling()
	defer pterm.EnableColor()
	defer pterm.EnableStyling()
	view := createView()

	// WHEN
	result := Format(view)

	// THEN
	assert.Contains(t, result, "Loop loop0 (single-loop)")
	assert.Contains(t, result, "Mode: manual")
	assert.Contains(t, result, "(6.00 PSI)")
	assert.Contains(t, result, "[KP=0.50]")
	assert.Contains(t, result, "OUT=50.00")
	assert.Contains(t, result, "Trend: 2.00 samples/s")
	assert.Contains(t, result, "AOUT0: 3.00")
	assert.NotContains(t, result, "LOAD")
}

func TestFormat_Alarm(t *testing.T) {
	// GIVEN
	pterm.DisableColor()
	defer pterm.EnableColor()
	loop := pid.NewLoop("loop0")
	loop.PV = 99
	view := createView()
	view.Loop = loop.Snapshot()

	// WHEN
	result := Format(view)

	// THEN
	assert.Contains(t, result, "PV high-high alarm!")
}

func TestPlot_LoadPenOnlyWhenEnabled(t *testing.T) {
	// GIVEN
	pens := []trend.Sample{{PV: 10, Load: 20}, {PV: 20, Load: 30}}

	// WHEN
	without := Plot(pens, false, 10)
	with := Plot(pens, true, 10)

	// THEN
	assert.NotContains(t, without, "LOAD")
	assert.Contains(t, with, "LOAD")
	assert.Contains(t, with, "PV")
}

func TestNoopDisplay(t *testing.T) {
	display := NoopDisplay{}
	assert.NoError(t, display.Render(View{}))
	assert.NoError(t, display.Close())
}

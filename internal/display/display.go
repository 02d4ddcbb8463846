package display

import (
	"fmt"
	"github.com/guptarohit/asciigraph"
	"github.com/markusressel/pid2go/internal/pid"
	"github.com/markusressel/pid2go/internal/sequencer"
	"github.com/markusressel/pid2go/internal/trend"
	"github.com/markusressel/pid2go/internal/tuning"
	"github.com/pterm/pterm"
	"strings"
)

const plotHeight = 15

// View is everything shown about a loop, captured at the end of a scan
type View struct {
	Loop           pid.Snapshot
	SelectMode     tuning.SelectMode
	ScansPerSecond float64
	TrendInterval  int
	// Pens are the trend samples, newest first
	Pens     []trend.Sample
	Sequence sequencer.Policy
	Signals  sequencer.Signals
	// ShowLoad enables the load pen, it is only meaningful with active feedforward
	ShowLoad bool
}

// TrendTimebase is the number of trend samples captured per second
func (v View) TrendTimebase() float64 {
	if v.TrendInterval <= 0 {
		return 0
	}
	return v.ScansPerSecond / float64(v.TrendInterval)
}

// Display presents loop views to an operator
type Display interface {
	Render(view View) error
	Close() error
}

// NoopDisplay discards all views
type NoopDisplay struct{}

func (NoopDisplay) Render(view View) error { return nil }

func (NoopDisplay) Close() error { return nil }

// TerminalDisplay redraws the loop view in place on the terminal
type TerminalDisplay struct {
	area *pterm.AreaPrinter
}

func NewTerminalDisplay() (*TerminalDisplay, error) {
	area, err := pterm.DefaultArea.Start()
	if err != nil {
		return nil, err
	}
	return &TerminalDisplay{area: area}, nil
}

func (d *TerminalDisplay) Render(view View) error {
	d.area.Update(Format(view))
	return nil
}

func (d *TerminalDisplay) Close() error {
	return d.area.Stop()
}

// Format renders the given view as text
func Format(view View) string {
	var b strings.Builder
	loop := view.Loop

	b.WriteString(pterm.LightBlue(fmt.Sprintf("Loop %s (%s)", loop.ID, loop.Type)))
	b.WriteString(fmt.Sprintf("  Mode: %s  Action: %s  Equation: %s\n", loop.Mode, loop.Action, loop.Equation))

	b.WriteString(fmt.Sprintf("PV: %6.2f %%  (%s)   SP: %6.2f %%   OUT: %6.2f %%   BIAS: %6.2f %%\n",
		loop.PV, formatEngineering(loop.PV, loop.Range), loop.SP, loop.Out, loop.Bias))

	if len(loop.Alarm) > 0 {
		b.WriteString(pterm.Red(loop.Alarm))
		b.WriteString("\n")
	}

	params := []struct {
		mode  tuning.SelectMode
		value string
	}{
		{tuning.SelectOutput, formatOutputParam(loop)},
		{tuning.SelectKP, fmt.Sprintf("%.2f", loop.Tuning.KP)},
		{tuning.SelectFFGain, fmt.Sprintf("%.2f", loop.Tuning.FFGain)},
		{tuning.SelectKI, fmt.Sprintf("%.2f", loop.Tuning.KI)},
		{tuning.SelectIDeadband, fmt.Sprintf("%.2f", loop.Tuning.IDeadband)},
		{tuning.SelectKD, fmt.Sprintf("%.2f", loop.Tuning.KD)},
		{tuning.SelectFFBias, fmt.Sprintf("%.2f", loop.Tuning.FFBias)},
		{tuning.SelectAction, loop.Action},
		{tuning.SelectEquation, loop.Equation},
		{tuning.SelectTrendInterval, fmt.Sprintf("%d", view.TrendInterval)},
	}
	mode, _ := pid.ParseMode(loop.Mode)
	var cells []string
	for _, param := range params {
		cell := fmt.Sprintf("%s=%s", param.mode.Label(mode), param.value)
		if param.mode == view.SelectMode {
			cell = pterm.Bold.Sprint(pterm.Yellow("[" + cell + "]"))
		}
		cells = append(cells, cell)
	}
	b.WriteString(strings.Join(cells, "  "))
	b.WriteString("\n")

	b.WriteString(fmt.Sprintf("Scan rate: %.1f/s  Trend: %.2f samples/s  Sequence: %s  AOUT0: %.2f  AOUT1: %.2f\n",
		view.ScansPerSecond, view.TrendTimebase(), view.Sequence, view.Signals[0], view.Signals[1]))

	if len(view.Pens) > 0 {
		b.WriteString(Plot(view.Pens, view.ShowLoad, len(view.Pens)))
		b.WriteString("\n")
	}

	return b.String()
}

// Plot renders the given pens, newest first, as a graph with time increasing to the right
func Plot(pens []trend.Sample, showLoad bool, width int) string {
	count := len(pens)
	pv := make([]float64, count)
	sp := make([]float64, count)
	out := make([]float64, count)
	load := make([]float64, count)
	for i, sample := range pens {
		j := count - 1 - i
		pv[j] = sample.PV
		sp[j] = sample.SP
		out[j] = sample.Out
		load[j] = sample.Load
	}

	series := [][]float64{pv, sp, out}
	colors := []asciigraph.AnsiColor{asciigraph.Red, asciigraph.Green, asciigraph.Blue}
	legends := []string{"PV", "SP", "OUT"}
	if showLoad {
		series = append(series, load)
		colors = append(colors, asciigraph.Yellow)
		legends = append(legends, "LOAD")
	}

	return asciigraph.PlotMany(series,
		asciigraph.Height(plotHeight),
		asciigraph.Width(width),
		asciigraph.LowerBound(trend.PenMin),
		asciigraph.UpperBound(trend.PenMax),
		asciigraph.SeriesColors(colors...),
		asciigraph.SeriesLegends(legends...),
	)
}

func formatOutputParam(loop pid.Snapshot) string {
	if loop.Mode == pid.ModeAutomatic.String() {
		return fmt.Sprintf("%.2f", loop.SP)
	}
	return fmt.Sprintf("%.2f", loop.Bias)
}

// formatEngineering converts a percent value into the engineering units of the loop
func formatEngineering(percent float64, r pid.Range) string {
	value := r.LRV + percent/100*(r.URV-r.LRV)
	return fmt.Sprintf("%.2f %s", value, r.Unit)
}

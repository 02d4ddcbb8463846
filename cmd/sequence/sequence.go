package sequence

import (
	"fmt"
	"github.com/guptarohit/asciigraph"
	"github.com/markusressel/pid2go/cmd/global"
	"github.com/markusressel/pid2go/internal/sequencer"
	"github.com/markusressel/pid2go/internal/ui"
	"github.com/spf13/cobra"
)

const outputStep = 10

var plot bool

var Command = &cobra.Command{
	Use:   "sequence [policy]",
	Short: "Print the output channel signals of the split range policies",
	Long: `Prints the signal of both output channels for the full controller output range.
If no policy is given, all policies are printed.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		policies := sequencer.Policies()
		if len(args) > 0 {
			policy, err := sequencer.ParsePolicy(args[0])
			if err != nil {
				return err
			}
			policies = []sequencer.Policy{policy}
		}

		for idx, policy := range policies {
			if idx > 0 {
				ui.Printfln("")
			}
			text, err := renderPolicy(policy)
			if err != nil {
				return err
			}
			ui.Printfln(text)
		}
		return nil
	},
}

func renderPolicy(policy sequencer.Policy) (string, error) {
	var rows [][]string
	var aout1, aout2 []float64
	for out := 0; out <= 100; out += outputStep {
		signals := policy.Sequence(float64(out))
		rows = append(rows, []string{
			fmt.Sprintf("%d", out),
			fmt.Sprintf("%.2f", signals[0]),
			fmt.Sprintf("%.2f", signals[1]),
		})
	}
	for out := 0; out <= 100; out++ {
		signals := policy.Sequence(float64(out))
		aout1 = append(aout1, signals[0])
		aout2 = append(aout2, signals[1])
	}

	text, err := global.RenderTable([]string{"OUT %", "AOUT1", "AOUT2"}, rows)
	if err != nil {
		return "", err
	}
	text = fmt.Sprintf("Sequence: %s\n%s", policy, text)

	if plot {
		graph := asciigraph.PlotMany([][]float64{aout1, aout2},
			asciigraph.Height(10),
			asciigraph.LowerBound(sequencer.SignalMin),
			asciigraph.UpperBound(sequencer.SignalMax),
			asciigraph.SeriesColors(asciigraph.Red, asciigraph.Blue),
			asciigraph.SeriesLegends("AOUT1", "AOUT2"),
			asciigraph.Caption("Signal / OUT %"),
		)
		text += "\n" + graph
	}
	return text, nil
}

func init() {
	Command.Flags().BoolVarP(&plot, "plot", "p", false, "Plot the signals over the output range")
}

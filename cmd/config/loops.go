package config

import (
	"fmt"
	"github.com/markusressel/pid2go/cmd/global"
	"github.com/markusressel/pid2go/internal/configuration"
	"github.com/markusressel/pid2go/internal/controller"
	"github.com/markusressel/pid2go/internal/ui"
	"github.com/spf13/cobra"
)

var loopsCmd = &cobra.Command{
	Use:   "loops",
	Short: "Print the effective settings of all configured loops",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		configuration.DetectAndReadConfigFile()

		var rows [][]string
		for _, loopConfig := range configuration.CurrentConfig.Loops {
			loop, err := controller.NewLoop(loopConfig)
			if err != nil {
				return err
			}
			sequence, err := loopConfig.Output.Sequence.Parse()
			if err != nil {
				return err
			}
			rows = append(rows, []string{
				loop.ID,
				loop.Type.String(),
				loop.Mode.String(),
				loop.Action.String(),
				loop.Equation.String(),
				fmt.Sprintf("%.2f", loop.KP),
				fmt.Sprintf("%.2f", loop.KI),
				fmt.Sprintf("%.2f", loop.KD),
				sequence.String(),
				fmt.Sprintf("%t", loopConfig.Persist),
			})
		}

		text, err := global.RenderTable(
			[]string{"ID", "Type", "Mode", "Action", "Equation", "KP", "KI", "KD", "Sequence", "Persist"},
			rows,
		)
		if err != nil {
			return err
		}
		ui.Printfln(text)
		return nil
	},
}

func init() {
	Command.AddCommand(loopsCmd)
}

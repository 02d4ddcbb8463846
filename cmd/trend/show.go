package trend

import (
	"errors"
	"github.com/markusressel/pid2go/internal/display"
	"github.com/markusressel/pid2go/internal/ui"
	"github.com/spf13/cobra"
	"os"
)

var showLoad bool

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Plot the persisted trend of a loop",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		pens, err := loadTrend(loopId)
		if errors.Is(err, os.ErrNotExist) {
			ui.Warning("No persisted trend for loop %s", loopId)
			return nil
		} else if err != nil {
			return err
		}

		ui.Printfln(display.Plot(pens, showLoad, len(pens)))
		return nil
	},
}

func init() {
	showCmd.Flags().BoolVarP(&showLoad, "load", "l", false, "Include the load pen")
	Command.AddCommand(showCmd)
}

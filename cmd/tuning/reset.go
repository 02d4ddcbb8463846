package tuning

import (
	"github.com/markusressel/pid2go/internal/configuration"
	"github.com/markusressel/pid2go/internal/persistence"
	"github.com/markusressel/pid2go/internal/ui"
	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete the persisted tuning of a loop, the configured tuning is used on next start",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := getLoopConfig(loopId); err != nil {
			return err
		}

		p := persistence.NewPersistence(configuration.CurrentConfig.DbPath)
		if err := p.DeleteLoopSettings(loopId); err != nil {
			return err
		}

		ui.Success("Deleted persisted tuning of loop %s", loopId)
		return nil
	},
}

func init() {
	Command.AddCommand(resetCmd)
}

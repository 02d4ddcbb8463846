package trend

import (
	"errors"
	"github.com/markusressel/pid2go/internal/configuration"
	"github.com/markusressel/pid2go/internal/trend"
	"github.com/markusressel/pid2go/internal/ui"
	"github.com/spf13/cobra"
	"os"
)

var exportDir string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the persisted trend of a loop to a CSV file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		pens, err := loadTrend(loopId)
		if errors.Is(err, os.ErrNotExist) {
			ui.Warning("No persisted trend for loop %s", loopId)
			return nil
		} else if err != nil {
			return err
		}

		dir := exportDir
		if len(dir) <= 0 {
			dir = configuration.CurrentConfig.ExportDir
		}

		path, err := trend.NewCsvExporter(dir).Export(loopId, trend.Rows(pens))
		if err != nil {
			return err
		}
		ui.Success("Exported trend of loop %s to %s", loopId, path)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportDir, "dir", "d", "", "Target directory (default is the configured exportDir)")
	Command.AddCommand(exportCmd)
}

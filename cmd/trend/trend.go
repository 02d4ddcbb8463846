package trend

import (
	"github.com/markusressel/pid2go/internal/configuration"
	"github.com/markusressel/pid2go/internal/persistence"
	"github.com/markusressel/pid2go/internal/trend"
	"github.com/spf13/cobra"
)

var loopId string

var Command = &cobra.Command{
	Use:              "trend",
	Short:            "Commands for the persisted trend of a loop",
	Long:             ``,
	TraverseChildren: true,
}

func init() {
	Command.PersistentFlags().StringVarP(
		&loopId,
		"id", "i",
		"",
		"Loop ID as specified in the config",
	)
	_ = Command.MarkPersistentFlagRequired("id")
}

// loadTrend returns the persisted trend of the given loop, newest sample first
func loadTrend(id string) ([]trend.Sample, error) {
	configuration.DetectAndReadConfigFile()

	p := persistence.NewPersistence(configuration.CurrentConfig.DbPath)
	return p.LoadTrend(id)
}

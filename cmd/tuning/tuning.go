package tuning

import (
	"errors"
	"fmt"
	"github.com/markusressel/pid2go/internal/configuration"
	"github.com/spf13/cobra"
)

var loopId string

var Command = &cobra.Command{
	Use:              "tuning",
	Short:            "Commands for the persisted tuning of a loop",
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

func getLoopConfig(id string) (configuration.LoopConfig, error) {
	configuration.DetectAndReadConfigFile()

	for _, config := range configuration.CurrentConfig.Loops {
		if config.ID == id {
			return config, nil
		}
	}

	return configuration.LoopConfig{}, errors.New(fmt.Sprintf("No loop with id found: %s", id))
}

package tuning

import (
	"errors"
	"fmt"
	"github.com/markusressel/pid2go/cmd/global"
	"github.com/markusressel/pid2go/internal/configuration"
	"github.com/markusressel/pid2go/internal/controller"
	"github.com/markusressel/pid2go/internal/persistence"
	"github.com/markusressel/pid2go/internal/pid"
	"github.com/markusressel/pid2go/internal/ui"
	"github.com/spf13/cobra"
	"os"
	"time"
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the configured and the persisted tuning of a loop",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		loopConfig, err := getLoopConfig(loopId)
		if err != nil {
			return err
		}
		loop, err := controller.NewLoop(loopConfig)
		if err != nil {
			return err
		}
		configured := loop.Tuning()

		p := persistence.NewPersistence(configuration.CurrentConfig.DbPath)
		settings, err := p.LoadLoopSettings(loopId)
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return err
		}
		persisted := err == nil

		headers := []string{"Parameter", "Configured"}
		if persisted {
			headers = append(headers, "Persisted")
		}
		rows := tuningRows(configured, settings.Tuning, persisted)

		text, err := global.RenderTable(headers, rows)
		if err != nil {
			return err
		}
		ui.Printfln(text)

		if persisted {
			ui.Printfln("Persisted at %s, trend interval: %d", settings.SavedAt.Format(time.RFC3339), settings.TrendInterval)
		} else {
			ui.Printfln("No persisted tuning for loop %s", loopId)
		}
		return nil
	},
}

func tuningRows(configured pid.Tuning, persisted pid.Tuning, withPersisted bool) [][]string {
	params := []struct {
		name       string
		configured string
		persisted  string
	}{
		{"KP", fmt.Sprintf("%.2f", configured.KP), fmt.Sprintf("%.2f", persisted.KP)},
		{"KI", fmt.Sprintf("%.2f", configured.KI), fmt.Sprintf("%.2f", persisted.KI)},
		{"KD", fmt.Sprintf("%.2f", configured.KD), fmt.Sprintf("%.2f", persisted.KD)},
		{"I Deadband", fmt.Sprintf("%.1f", configured.IDeadband), fmt.Sprintf("%.1f", persisted.IDeadband)},
		{"FF Gain", fmt.Sprintf("%.2f", configured.FFGain), fmt.Sprintf("%.2f", persisted.FFGain)},
		{"FF Bias", fmt.Sprintf("%.2f", configured.FFBias), fmt.Sprintf("%.2f", persisted.FFBias)},
		{"Action", configured.Action.String(), persisted.Action.String()},
		{"Equation", configured.Equation.String(), persisted.Equation.String()},
	}

	var rows [][]string
	for _, param := range params {
		row := []string{param.name, param.configured}
		if withPersisted {
			row = append(row, param.persisted)
		}
		rows = append(rows, row)
	}
	return rows
}

func init() {
	Command.AddCommand(showCmd)
}

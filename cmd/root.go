package cmd

import (
	"fmt"
	"github.com/markusressel/pid2go/cmd/config"
	"github.com/markusressel/pid2go/cmd/global"
	"github.com/markusressel/pid2go/cmd/sequence"
	"github.com/markusressel/pid2go/cmd/trend"
	"github.com/markusressel/pid2go/cmd/tuning"
	"github.com/markusressel/pid2go/internal"
	"github.com/markusressel/pid2go/internal/configuration"
	"github.com/markusressel/pid2go/internal/ui"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"os"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "pid2go",
	Short: "A PID controller for single loop processes.",
	Long: `pid2go is a position form PID controller that reads a process
variable, computes a controller output and drives up to two
split range output channels.`,
	// this is the default command to run when no subcommand is specified
	Run: func(cmd *cobra.Command, args []string) {
		printHeader()

		configuration.DetectAndReadConfigFile()

		internal.RunDaemon()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&global.CfgFile, "config", "c", "", "config file (default is $HOME/pid2go.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&global.NoColor, "no-color", "", false, "Disable all terminal output coloration")
	rootCmd.PersistentFlags().BoolVarP(&global.NoStyle, "no-style", "", false, "Disable all terminal output styling")
	rootCmd.PersistentFlags().BoolVarP(&global.Verbose, "verbose", "v", false, "More verbose output")

	rootCmd.AddCommand(config.Command)

	rootCmd.AddCommand(tuning.Command)
	rootCmd.AddCommand(trend.Command)
	rootCmd.AddCommand(sequence.Command)
}

func setupUi() {
	ui.SetDebugEnabled(global.Verbose)

	if global.NoColor {
		pterm.DisableColor()
	}
	if global.NoStyle {
		pterm.DisableStyling()
	}
}

// Print a large text with the LetterStyle from the standard theme.
func printHeader() {
	err := pterm.DefaultBigText.WithLetters(
		pterm.NewLettersFromStringWithStyle("pid", pterm.NewStyle(pterm.FgLightBlue)),
		pterm.NewLettersFromStringWithStyle("2", pterm.NewStyle(pterm.FgWhite)),
		pterm.NewLettersFromStringWithStyle("go", pterm.NewStyle(pterm.FgLightBlue)),
	).Render()
	if err != nil {
		fmt.Println("pid2go")
	}
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	cobra.OnInitialize(func() {
		setupUi()
		configuration.InitConfig(global.CfgFile)
	})

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

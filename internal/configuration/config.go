package configuration

import (
	"github.com/markusressel/pid2go/internal/ui"
	"github.com/mitchellh/go-homedir"
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
	"os"
	"time"
)

type Configuration struct {
	DbPath string `json:"dbPath"`

	// ScanDelay is the pacing delay between two scans of a loop
	ScanDelay time.Duration `json:"scanDelay"`

	TrendWidth int    `json:"trendWidth"`
	ExportDir  string `json:"exportDir"`

	Console    ConsoleConfig    `json:"console"`
	Statistics StatisticsConfig `json:"statistics"`
	Api        ApiConfig        `json:"api"`

	Loops []LoopConfig `json:"loops"`
}

var CurrentConfig Configuration

// InitConfig reads in config file and ENV variables if set.
func InitConfig(cfgFile string) {
	viper.SetConfigName("pid2go")

	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := homedir.Dir()
		if err != nil {
			ui.Error("Couldn't detect home directory: %v", err)
			os.Exit(1)
		}

		viper.AddConfigPath(".")
		viper.AddConfigPath(home)
		viper.AddConfigPath("/etc/pid2go/")
	}

	viper.AutomaticEnv() // read in environment variables that match

	setDefaultValues()
}

func setDefaultValues() {
	viper.SetDefault("dbpath", "/etc/pid2go/pid2go.db")
	viper.SetDefault("ScanDelay", 100*time.Millisecond)
	viper.SetDefault("TrendWidth", 80)
	viper.SetDefault("ExportDir", ".")

	viper.SetDefault("console.enabled", true)
	viper.SetDefault("console.loop", "")

	viper.SetDefault("statistics.enabled", false)
	viper.SetDefault("statistics.port", 9000)

	viper.SetDefault("api.enabled", false)
	viper.SetDefault("api.host", "localhost")
	viper.SetDefault("api.port", 9001)

	viper.SetDefault("loops", []LoopConfig{})
}

// DetectConfigFile reads in the configuration file and returns its path
func DetectConfigFile() string {
	if err := viper.ReadInConfig(); err != nil {
		// config file is required, so we fail here
		ui.Fatal("Error reading config file, %s", err)
	}
	// this is only populated _after_ ReadInConfig()
	return viper.ConfigFileUsed()
}

// DetectAndReadConfigFile reads, decodes and validates the configuration file.
// It returns the path of the file that was used.
func DetectAndReadConfigFile() string {
	configPath := DetectConfigFile()
	ui.Info("Using configuration file at: %s", configPath)
	LoadConfig()

	err := Validate(configPath)
	if err != nil {
		ui.Fatal("Config Validation Error: %v", err)
	}
	return configPath
}

func LoadConfig() {
	err := viper.Unmarshal(&CurrentConfig, viper.DecodeHook(decodeHook()))
	if err != nil {
		ui.Fatal("unable to decode into struct, %v", err)
	}
}

func decodeHook() mapstructure.DecodeHookFunc {
	return mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
		LegacyEnumHookFunc(),
	)
}

package configuration

type ApiConfig struct {
	Enabled bool   `json:"enabled"`
	Host    string `json:"host"`
	Port    int    `json:"port"`
}

type StatisticsConfig struct {
	Enabled bool `json:"enabled"`
	Port    int  `json:"port"`
}

// ConsoleConfig enables the interactive terminal for a single loop
type ConsoleConfig struct {
	Enabled bool `json:"enabled"`
	// Loop is the id of the loop shown on the console, the first loop if empty
	Loop string `json:"loop"`
}

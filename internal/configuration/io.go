package configuration

import "time"

type LoopInputConfig struct {
	PV   *InputConfig `json:"pv,omitempty"`
	Load *InputConfig `json:"load,omitempty"`
}

// InputConfig describes where a process value is acquired from.
// Exactly one of File, Cmd or Serial must be set.
type InputConfig struct {
	File   *FileInputConfig   `json:"file,omitempty"`
	Cmd    *CmdInputConfig    `json:"cmd,omitempty"`
	Serial *SerialInputConfig `json:"serial,omitempty"`

	// Scale maps the raw value onto percent, values are used as is if not set
	Scale *ScaleConfig `json:"scale,omitempty"`
}

type FileInputConfig struct {
	Path string `json:"path"`
}

type CmdInputConfig struct {
	Exec string   `json:"exec"`
	Args []string `json:"args"`
}

type SerialInputConfig struct {
	Port     string `json:"port"`
	BaudRate int    `json:"baudRate"`
	// Request is written before every read, if set
	Request string        `json:"request,omitempty"`
	Timeout time.Duration `json:"timeout,omitempty"`
}

// ScaleConfig is the raw value range corresponding to 0..100 percent
type ScaleConfig struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

type LoopOutputConfig struct {
	Sequence SequenceValue         `json:"sequence"`
	Channels []OutputChannelConfig `json:"channels"`
}

// OutputChannelConfig describes where a sequenced 0..5 signal is written to.
// Exactly one of File, Cmd or Serial must be set.
type OutputChannelConfig struct {
	File   *FileOutputConfig   `json:"file,omitempty"`
	Cmd    *CmdOutputConfig    `json:"cmd,omitempty"`
	Serial *SerialOutputConfig `json:"serial,omitempty"`
}

type FileOutputConfig struct {
	Path string `json:"path"`
}

// CmdOutputConfig executes a command per write, "%value%" in Args is replaced with the signal
type CmdOutputConfig struct {
	Exec string   `json:"exec"`
	Args []string `json:"args"`
}

type SerialOutputConfig struct {
	Port     string `json:"port"`
	BaudRate int    `json:"baudRate"`
	// Format is a fmt format string receiving the channel index and the signal value
	Format string `json:"format,omitempty"`
}

// SimulationConfig parameterizes the simulated process of a simulation loop
type SimulationConfig struct {
	// Gain of the process from output to PV
	Gain float64 `json:"gain"`
	// TimeConstant of the first order lag
	TimeConstant time.Duration `json:"timeConstant"`
	// Offset is added to the process response, in percent
	Offset float64 `json:"offset"`
	// Load is a constant load variable fed into the feedforward path, in percent
	Load float64 `json:"load"`
}

package outputs

import (
	"fmt"
	"github.com/markusressel/pid2go/internal/configuration"
)

// Output transmits the signal of a single output channel
type Output interface {
	GetId() string

	// Write sends the given signal value to the output
	Write(signal float64) error
}

// NewOutput creates the output of the given channel index
func NewOutput(id string, channel int, config configuration.OutputChannelConfig) (Output, error) {
	if config.File != nil {
		return &FileOutput{
			Id:     id,
			Config: *config.File,
		}, nil
	}

	if config.Cmd != nil {
		return &CmdOutput{
			Id:     id,
			Config: *config.Cmd,
		}, nil
	}

	if config.Serial != nil {
		return &SerialOutput{
			Id:      id,
			Channel: channel,
			Config:  *config.Serial,
		}, nil
	}

	return nil, fmt.Errorf("no matching output type for output: %s", id)
}

// DiscardOutput drops all signals, it is used for unconfigured channels
type DiscardOutput struct {
	Id string `json:"id"`
}

func (output DiscardOutput) GetId() string {
	return output.Id
}

func (output DiscardOutput) Write(signal float64) error {
	return nil
}

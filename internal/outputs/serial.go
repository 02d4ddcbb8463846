package outputs

import (
	"fmt"
	"github.com/markusressel/pid2go/internal/configuration"
	"github.com/markusressel/pid2go/internal/serialport"
)

// DefaultSerialFormat writes f.ex. "A0 2.50" for channel 0
const DefaultSerialFormat = "A%d %.2f"

type SerialOutput struct {
	Id      string                           `json:"id"`
	Channel int                              `json:"channel"`
	Config  configuration.SerialOutputConfig `json:"config"`

	open serialport.Opener
}

func (output *SerialOutput) GetId() string {
	return output.Id
}

func (output *SerialOutput) Write(signal float64) error {
	line, err := serialport.Get(output.Config.Port, output.Config.BaudRate, output.open)
	if err != nil {
		return fmt.Errorf("output %s: %w", output.Id, err)
	}

	format := output.Config.Format
	if len(format) <= 0 {
		format = DefaultSerialFormat
	}

	err = line.WriteLine(fmt.Sprintf(format, output.Channel, signal))
	if err != nil {
		return fmt.Errorf("output %s: %w", output.Id, err)
	}
	return nil
}

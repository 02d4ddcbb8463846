package inputs

import (
	"fmt"
	"github.com/markusressel/pid2go/internal/configuration"
	"github.com/markusressel/pid2go/internal/serialport"
	"strconv"
)

// SerialInput reads the latest value a device sent over a serial line.
// If a request is configured, it is sent on every read to trigger the next value.
type SerialInput struct {
	Id     string                          `json:"id"`
	Config configuration.SerialInputConfig `json:"config"`

	open serialport.Opener
}

func (input *SerialInput) GetId() string {
	return input.Id
}

func (input *SerialInput) GetValue() (float64, error) {
	line, err := serialport.Get(input.Config.Port, input.Config.BaudRate, input.open)
	if err != nil {
		return 0, fmt.Errorf("input %s: %w", input.Id, err)
	}

	if len(input.Config.Request) > 0 {
		if err := line.WriteLine(input.Config.Request); err != nil {
			return 0, fmt.Errorf("input %s: %w", input.Id, err)
		}
	}

	text, err := line.Latest()
	if err != nil {
		return 0, fmt.Errorf("input %s: %w", input.Id, err)
	}

	value, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, fmt.Errorf("input %s: unable to parse serial data '%s': %w", input.Id, text, err)
	}
	return value, nil
}

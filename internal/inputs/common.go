package inputs

import (
	"fmt"
	"github.com/markusressel/pid2go/internal/configuration"
	"github.com/markusressel/pid2go/internal/util"
)

// Input acquires a single process value in percent
type Input interface {
	GetId() string

	// GetValue returns the current value of this input
	GetValue() (float64, error)
}

// NewInput creates the input described by config. id is used in log and error messages.
func NewInput(id string, config configuration.InputConfig) (Input, error) {
	var input Input
	switch {
	case config.File != nil:
		input = &FileInput{Id: id, Config: *config.File}
	case config.Cmd != nil:
		input = &CmdInput{Id: id, Config: *config.Cmd}
	case config.Serial != nil:
		input = &SerialInput{Id: id, Config: *config.Serial}
	default:
		return nil, fmt.Errorf("no matching input type for input: %s", id)
	}

	if config.Scale != nil {
		return &ScaledInput{
			Input: input,
			Min:   config.Scale.Min,
			Max:   config.Scale.Max,
		}, nil
	}
	return input, nil
}

// ScaledInput maps the raw value of another input linearly onto percent
type ScaledInput struct {
	Input
	Min float64
	Max float64
}

func (input ScaledInput) GetValue() (float64, error) {
	raw, err := input.Input.GetValue()
	if err != nil {
		return 0, err
	}
	return util.ScaleToPercent(raw, input.Min, input.Max), nil
}

// StaticInput always returns the same value
type StaticInput struct {
	Id    string  `json:"id"`
	Value float64 `json:"value"`
}

func (input StaticInput) GetId() string {
	return input.Id
}

func (input StaticInput) GetValue() (float64, error) {
	return input.Value, nil
}

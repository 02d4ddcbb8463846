package inputs

import (
	"fmt"
	"github.com/markusressel/pid2go/internal/configuration"
	"github.com/markusressel/pid2go/internal/util"
)

type FileInput struct {
	Id     string                        `json:"id"`
	Config configuration.FileInputConfig `json:"config"`
}

func (input FileInput) GetId() string {
	return input.Id
}

func (input FileInput) GetValue() (float64, error) {
	value, err := util.ReadFloatFromFile(input.Config.Path)
	if err != nil {
		return 0, fmt.Errorf("input %s: %w", input.Id, err)
	}
	return value, nil
}

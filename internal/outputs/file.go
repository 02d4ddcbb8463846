package outputs

import (
	"fmt"
	"github.com/markusressel/pid2go/internal/configuration"
	"github.com/markusressel/pid2go/internal/util"
)

type FileOutput struct {
	Id     string                         `json:"id"`
	Config configuration.FileOutputConfig `json:"config"`
}

func (output FileOutput) GetId() string {
	return output.Id
}

func (output FileOutput) Write(signal float64) error {
	err := util.WriteFloatToFileAtomic(signal, output.Config.Path)
	if err != nil {
		return fmt.Errorf("output %s: %w", output.Id, err)
	}
	return nil
}

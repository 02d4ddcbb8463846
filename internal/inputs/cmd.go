package inputs

import (
	"fmt"
	"github.com/markusressel/pid2go/internal/configuration"
	"github.com/markusressel/pid2go/internal/util"
	"strconv"
	"time"
)

const cmdTimeout = 2 * time.Second

type CmdInput struct {
	Id     string                       `json:"id"`
	Config configuration.CmdInputConfig `json:"config"`
}

func (input CmdInput) GetId() string {
	return input.Id
}

func (input CmdInput) GetValue() (float64, error) {
	result, err := util.SafeCmdExecution(input.Config.Exec, input.Config.Args, cmdTimeout)
	if err != nil {
		return 0, fmt.Errorf("input %s: %s", input.Id, err.Error())
	}

	value, err := strconv.ParseFloat(result, 64)
	if err != nil {
		return 0, fmt.Errorf("input %s: unable to parse command output '%s': %w", input.Id, result, err)
	}

	return value, nil
}

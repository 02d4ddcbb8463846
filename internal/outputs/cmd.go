package outputs

import (
	"fmt"
	"github.com/markusressel/pid2go/internal/configuration"
	"github.com/markusressel/pid2go/internal/util"
	"strconv"
	"strings"
	"time"
)

const cmdTimeout = 2 * time.Second

type CmdOutput struct {
	Id     string                        `json:"id"`
	Config configuration.CmdOutputConfig `json:"config"`
}

func (output CmdOutput) GetId() string {
	return output.Id
}

func (output CmdOutput) Write(signal float64) error {
	var args = []string{}
	for _, arg := range output.Config.Args {
		replaced := strings.ReplaceAll(arg, "%value%", strconv.FormatFloat(signal, 'f', 2, 64))
		args = append(args, replaced)
	}

	_, err := util.SafeCmdExecution(output.Config.Exec, args, cmdTimeout)
	if err != nil {
		return fmt.Errorf("output %s: %s", output.Id, err.Error())
	}

	return nil
}

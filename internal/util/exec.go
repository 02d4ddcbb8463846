package util

import (
	"context"
	"errors"
	"fmt"
	"github.com/markusressel/pid2go/internal/ui"
	"os/exec"
	"strings"
	"time"
)

// SafeCmdExecution runs the given executable with a timeout and returns its trimmed stdout
func SafeCmdExecution(executable string, args []string, timeout time.Duration) (string, error) {
	if _, err := CheckFilePermissionsForExecution(executable); err != nil {
		return "", fmt.Errorf("cannot execute %s: %w", executable, err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, executable, args...)
	out, err := cmd.Output()

	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		ui.Warning("Command timed out: %s", executable)
		return "", ctx.Err()
	}

	if err != nil {
		ui.Warning("Command failed to execute: %s", executable)
		return "", err
	}

	strout := string(out)
	strout = strings.TrimSpace(strout)

	return strout, nil
}

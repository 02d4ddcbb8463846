package ui

import (
	"github.com/pterm/pterm"
	"os"
)

func ExamplePrintfln() {
	pterm.SetDefaultOutput(os.Stdout)
	pterm.DisableStyling()

	Printfln("Scan rate: %.1f/sec", 9.5)
	// Output:
	// Scan rate: 9.5/sec
}

func ExampleDebug() {
	pterm.SetDefaultOutput(os.Stdout)
	pterm.DisableStyling()
	SetDebugEnabled(true)

	Debug("Loop %s: OUT=%.2f", "loop0", 53.0)
	// Output:
	// DEBUG: Loop loop0: OUT=53.00
}

func ExampleInfo() {
	pterm.SetDefaultOutput(os.Stdout)
	pterm.DisableStyling()

	Info("Starting control loop '%s'", "loop0")
	// Output:
	// INFO: Starting control loop 'loop0'
}

func ExampleWarning() {
	pterm.SetDefaultOutput(os.Stdout)
	pterm.DisableStyling()

	Warning("Loop %s: PV high alarm", "loop0")
	// Output:
	// WARNING: Loop loop0: PV high alarm
}

func ExampleError() {
	pterm.SetDefaultOutput(os.Stdout)
	pterm.DisableStyling()

	Error("Cannot export trend: %v", os.ErrPermission)
	// Output:
	// ERROR: Cannot export trend: permission denied
}

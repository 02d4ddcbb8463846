package inputs

import (
	"github.com/markusressel/pid2go/internal/configuration"
	"github.com/markusressel/pid2go/internal/serialport"
	"github.com/stretchr/testify/assert"
	"io"
	"testing"
	"time"
)

type loopbackDevice struct {
	reader *io.PipeReader
	writer *io.PipeWriter
}

func (d *loopbackDevice) Read(p []byte) (int, error) { return d.reader.Read(p) }

// Write answers every request with a fixed measurement
func (d *loopbackDevice) Write(p []byte) (int, error) {
	go func() { _, _ = d.writer.Write([]byte("61.25\n")) }()
	return len(p), nil
}

func (d *loopbackDevice) Close() error { return d.writer.Close() }

func TestSerialInput_GetValue(t *testing.T) {
	// GIVEN
	reader, writer := io.Pipe()
	device := &loopbackDevice{reader: reader, writer: writer}
	input := &SerialInput{
		Id: "loop0/pv",
		Config: configuration.SerialInputConfig{
			Port:    "/dev/ttyINPUT0",
			Request: "PV?",
		},
		open: func(name string, baudRate int) (io.ReadWriteCloser, error) {
			return device, nil
		},
	}
	defer serialport.CloseAll()

	// THEN
	assert.Eventually(t, func() bool {
		value, err := input.GetValue()
		return err == nil && value == 61.25
	}, time.Second, 5*time.Millisecond)
}

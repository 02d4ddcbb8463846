package serialport

import (
	"errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"io"
	"sync"
	"testing"
	"time"
)

// pipeDevice feeds written lines back to the reader side of a pipe
type pipeDevice struct {
	reader *io.PipeReader
	writer *io.PipeWriter

	mu      sync.Mutex
	written []string
}

func newPipeDevice() *pipeDevice {
	reader, writer := io.Pipe()
	return &pipeDevice{reader: reader, writer: writer}
}

func (d *pipeDevice) Read(p []byte) (int, error) {
	return d.reader.Read(p)
}

func (d *pipeDevice) Write(p []byte) (int, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.written = append(d.written, string(p))
	return len(p), nil
}

func (d *pipeDevice) Close() error {
	return d.writer.Close()
}

func (d *pipeDevice) send(text string) {
	_, _ = d.writer.Write([]byte(text))
}

func (d *pipeDevice) Written() []string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]string{}, d.written...)
}

func openerFor(device *pipeDevice) Opener {
	return func(name string, baudRate int) (io.ReadWriteCloser, error) {
		return device, nil
	}
}

func TestLine_LatestBeforeData(t *testing.T) {
	// GIVEN
	device := newPipeDevice()
	line, err := Connect("/dev/ttyTEST0", 0, openerFor(device))
	require.NoError(t, err)
	defer line.Close()

	// WHEN
	_, err = line.Latest()

	// THEN
	assert.ErrorIs(t, err, ErrNoData)
}

func TestLine_LatestReturnsNewestLine(t *testing.T) {
	// GIVEN
	device := newPipeDevice()
	line, err := Connect("/dev/ttyTEST0", 0, openerFor(device))
	require.NoError(t, err)
	defer line.Close()

	// WHEN
	device.send("1.5\n\n 2.75 \n")

	// THEN
	assert.Eventually(t, func() bool {
		value, err := line.Latest()
		return err == nil && value == "2.75"
	}, time.Second, time.Millisecond)
}

func TestLine_WriteLine(t *testing.T) {
	// GIVEN
	device := newPipeDevice()
	line, err := Connect("/dev/ttyTEST0", 0, openerFor(device))
	require.NoError(t, err)

	// WHEN
	err = line.WriteLine("A0 2.50")

	// THEN
	assert.NoError(t, err)
	assert.Equal(t, []string{"A0 2.50\n"}, device.Written())

	// WHEN
	require.NoError(t, line.Close())
	err = line.WriteLine("A0 2.50")

	// THEN
	assert.EqualError(t, err, "serial port /dev/ttyTEST0 is closed")
}

func TestConnect_OpenError(t *testing.T) {
	// GIVEN
	opener := func(name string, baudRate int) (io.ReadWriteCloser, error) {
		return nil, errors.New("no such device")
	}

	// WHEN
	_, err := Connect("/dev/ttyTEST0", 0, opener)

	// THEN
	assert.EqualError(t, err, "no such device")
}

func TestGet_SharesLines(t *testing.T) {
	// GIVEN
	device := newPipeDevice()
	defer CloseAll()

	// WHEN
	first, err := Get("/dev/ttyTEST1", 9600, openerFor(device))
	require.NoError(t, err)
	second, err := Get("/dev/ttyTEST1", 9600, nil)
	require.NoError(t, err)

	// THEN
	assert.Same(t, first, second)
}

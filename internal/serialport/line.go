package serialport

import (
	"bufio"
	"errors"
	"fmt"
	"github.com/markusressel/pid2go/internal/ui"
	cmap "github.com/orcaman/concurrent-map/v2"
	"go.bug.st/serial"
	"io"
	"strings"
	"sync"
)

const DefaultBaudRate = 9600

var (
	ErrNoData = errors.New("no data received yet")

	lines   = cmap.New[*Line]()
	linesMu sync.Mutex
)

// Opener opens the named port
type Opener func(name string, baudRate int) (io.ReadWriteCloser, error)

// Open opens a serial port with 8N1 framing
func Open(name string, baudRate int) (io.ReadWriteCloser, error) {
	if baudRate <= 0 {
		baudRate = DefaultBaudRate
	}
	port, err := serial.Open(name, &serial.Mode{
		BaudRate: baudRate,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open serial port %s: %w", name, err)
	}
	return port, nil
}

// Line is a line based connection to a device. Received lines are consumed
// by a background reader, so reading the latest line never blocks.
type Line struct {
	name string
	conn io.ReadWriteCloser

	mu     sync.RWMutex
	latest string
	err    error
	closed bool
}

// Get returns the shared line of the given port, connecting it if necessary
func Get(name string, baudRate int, open Opener) (*Line, error) {
	linesMu.Lock()
	defer linesMu.Unlock()

	if line, ok := lines.Get(name); ok {
		return line, nil
	}

	line, err := Connect(name, baudRate, open)
	if err != nil {
		return nil, err
	}
	lines.Set(name, line)
	return line, nil
}

// CloseAll closes all shared lines
func CloseAll() {
	linesMu.Lock()
	defer linesMu.Unlock()

	for _, name := range lines.Keys() {
		line, ok := lines.Pop(name)
		if !ok {
			continue
		}
		if err := line.Close(); err != nil {
			ui.Warning("Error closing serial port %s: %v", name, err)
		}
	}
}

// Connect opens the given port and starts reading lines from it
func Connect(name string, baudRate int, open Opener) (*Line, error) {
	if open == nil {
		open = Open
	}
	conn, err := open(name, baudRate)
	if err != nil {
		return nil, err
	}

	line := &Line{
		name: name,
		conn: conn,
		err:  ErrNoData,
	}
	go line.read()
	return line, nil
}

func (l *Line) Name() string {
	return l.name
}

// Latest returns the most recently received non-empty line
func (l *Line) Latest() (string, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.latest, l.err
}

// WriteLine sends text terminated by a newline
func (l *Line) WriteLine(text string) error {
	l.mu.RLock()
	closed := l.closed
	l.mu.RUnlock()
	if closed {
		return fmt.Errorf("serial port %s is closed", l.name)
	}

	_, err := l.conn.Write([]byte(text + "\n"))
	if err != nil {
		return fmt.Errorf("failed to write to serial port %s: %w", l.name, err)
	}
	return nil
}

func (l *Line) Close() error {
	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		return nil
	}
	l.closed = true
	l.mu.Unlock()

	return l.conn.Close()
}

func (l *Line) read() {
	scanner := bufio.NewScanner(l.conn)
	for scanner.Scan() {
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		l.mu.Lock()
		l.latest = text
		l.err = nil
		l.mu.Unlock()
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed {
		l.err = fmt.Errorf("serial port %s is closed", l.name)
		return
	}
	err := scanner.Err()
	if err == nil {
		err = io.EOF
	}
	l.err = fmt.Errorf("serial port %s: %w", l.name, err)
	ui.Warning("Stopped reading from serial port %s: %v", l.name, err)
}

package trend

import (
	"github.com/markusressel/pid2go/internal/util"
)

const (
	DefaultWidth    = 80
	DefaultInterval = 5

	MinInterval = 1
	MaxInterval = 9999

	PenMin = 0.0
	PenMax = 100.0
)

// Sample is a single trend slot
type Sample struct {
	PV   float64 `json:"pv"`
	SP   float64 `json:"sp"`
	Out  float64 `json:"out"`
	Load float64 `json:"load"`
}

// Row is an exported trend slot, labeled with its position in time
type Row struct {
	Index int `json:"index"`
	Sample
}

// Buffer is a fixed width, time decimated history of loop samples.
// Index 0 holds the newest sample.
type Buffer struct {
	pens     []Sample
	interval int
}

func NewBuffer(width int, interval int) *Buffer {
	if width <= 0 {
		width = DefaultWidth
	}
	return &Buffer{
		pens:     make([]Sample, width),
		interval: util.Coerce(interval, MinInterval, MaxInterval),
	}
}

// Width is the number of retained samples
func (b *Buffer) Width() int {
	return len(b.pens)
}

// Interval is the number of scans between two captured samples
func (b *Buffer) Interval() int {
	return b.interval
}

func (b *Buffer) SetInterval(interval int) {
	b.interval = util.Coerce(interval, MinInterval, MaxInterval)
}

// AdjustInterval changes the capture interval by delta scans
func (b *Buffer) AdjustInterval(delta int) {
	b.SetInterval(b.interval + delta)
}

// ShouldCapture is true for every scan that is a multiple of the interval
func (b *Buffer) ShouldCapture(scanCount int64) bool {
	return scanCount%int64(b.interval) == 0
}

// Capture shifts all samples toward the tail, dropping the oldest one,
// and stores the given sample in slot 0.
func (b *Buffer) Capture(sample Sample) {
	copy(b.pens[1:], b.pens[:len(b.pens)-1])
	b.pens[0] = Sample{
		PV:   clampPen(sample.PV),
		SP:   clampPen(sample.SP),
		Out:  clampPen(sample.Out),
		Load: clampPen(sample.Load),
	}
}

// Pens returns a copy of all samples, newest first
func (b *Buffer) Pens() []Sample {
	result := make([]Sample, len(b.pens))
	copy(result, b.pens)
	return result
}

// Restore replaces the buffer content with the given samples, newest first.
// Samples exceeding the width are dropped.
func (b *Buffer) Restore(pens []Sample) {
	for i := range b.pens {
		if i < len(pens) {
			b.pens[i] = pens[i]
		} else {
			b.pens[i] = Sample{}
		}
	}
}

// Export returns all samples oldest first, indexed from 1
func (b *Buffer) Export() []Row {
	return Rows(b.pens)
}

// Rows converts pens, newest first, into rows ordered oldest first and indexed from 1
func Rows(pens []Sample) []Row {
	width := len(pens)
	result := make([]Row, width)
	for i := 0; i < width; i++ {
		result[i] = Row{
			Index:  i + 1,
			Sample: pens[width-1-i],
		}
	}
	return result
}

func clampPen(value float64) float64 {
	return util.Coerce(value, PenMin, PenMax)
}

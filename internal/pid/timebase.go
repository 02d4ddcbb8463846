package pid

import "time"

// MinScansPerSecond is the lower bound of the measured scan rate
const MinScansPerSecond = 5.0

// Timebase estimates the real scan rate of the control loop, which is used
// to scale the time dependent integral and derivative terms.
type Timebase struct {
	ScanCount      int64   `json:"scanCount"`
	ScansPerSecond float64 `json:"scansPerSecond"`
	TimeCurrent    int64   `json:"timeCurrent"`
	TimeLastScan   int64   `json:"timeLastScan"`

	scanCountLast int64
}

func NewTimebase(start time.Time) *Timebase {
	return &Timebase{
		ScansPerSecond: MinScansPerSecond,
		TimeCurrent:    start.Unix(),
		TimeLastScan:   start.Unix(),
	}
}

// BeginScan counts a new scan and recomputes the scan rate whenever
// the wall clock second changed since the last scan.
func (t *Timebase) BeginScan(now time.Time) {
	t.ScanCount++
	t.TimeCurrent = now.Unix()

	elapsed := t.TimeCurrent - t.TimeLastScan
	if elapsed == 0 {
		return
	}

	t.ScansPerSecond = float64(t.ScanCount-t.scanCountLast) / float64(elapsed)
	t.scanCountLast = t.ScanCount

	if t.ScansPerSecond < MinScansPerSecond {
		t.ScansPerSecond = MinScansPerSecond
	}
}

// EndScan records the time of the scan that just completed
func (t *Timebase) EndScan() {
	t.TimeLastScan = t.TimeCurrent
}

package pid

import (
	"github.com/stretchr/testify/assert"
	"testing"
	"time"
)

func TestTimebase_InitialRate(t *testing.T) {
	// WHEN
	timebase := NewTimebase(time.Unix(1000, 0))

	// THEN
	assert.Equal(t, MinScansPerSecond, timebase.ScansPerSecond)
	assert.EqualValues(t, 0, timebase.ScanCount)
}

func TestTimebase_FirstScanWithinSameSecond(t *testing.T) {
	// GIVEN
	timebase := NewTimebase(time.Unix(1000, 0))

	// WHEN
	timebase.BeginScan(time.Unix(1000, 500))
	timebase.EndScan()

	// THEN
	assert.EqualValues(t, 1, timebase.ScanCount)
	assert.Equal(t, MinScansPerSecond, timebase.ScansPerSecond)
}

func TestTimebase_RecomputesOnSecondBoundary(t *testing.T) {
	// GIVEN
	timebase := NewTimebase(time.Unix(1000, 0))
	for i := 0; i < 20; i++ {
		timebase.BeginScan(time.Unix(1000, int64(i)*int64(time.Millisecond)))
		timebase.EndScan()
	}

	// WHEN
	timebase.BeginScan(time.Unix(1001, 0))
	timebase.EndScan()

	// THEN
	assert.EqualValues(t, 21, timebase.ScanCount)
	assert.Equal(t, 21.0, timebase.ScansPerSecond)

	// WHEN
	for i := 0; i < 9; i++ {
		timebase.BeginScan(time.Unix(1001, int64(i+1)*int64(time.Millisecond)))
		timebase.EndScan()
	}
	timebase.BeginScan(time.Unix(1002, 0))
	timebase.EndScan()

	// THEN
	assert.Equal(t, 10.0, timebase.ScansPerSecond)
}

func TestTimebase_RateIsFloored(t *testing.T) {
	// GIVEN
	timebase := NewTimebase(time.Unix(1000, 0))

	// WHEN
	timebase.BeginScan(time.Unix(1002, 0))
	timebase.EndScan()

	// THEN
	assert.Equal(t, MinScansPerSecond, timebase.ScansPerSecond)
}

func TestTimebase_ClockGoingBackwards(t *testing.T) {
	// GIVEN
	timebase := NewTimebase(time.Unix(1000, 0))

	// WHEN
	timebase.BeginScan(time.Unix(999, 0))
	timebase.EndScan()

	// THEN
	assert.Equal(t, MinScansPerSecond, timebase.ScansPerSecond)
	assert.EqualValues(t, 999, timebase.TimeLastScan)
}

package pid

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestAlarm_Classification(t *testing.T) {
	tests := []struct {
		pv       float64
		expected Alarm
	}{
		{pv: 50, expected: AlarmNone},
		{pv: 75, expected: AlarmNone},
		{pv: 76, expected: AlarmHi},
		{pv: 96, expected: AlarmHiHi},
		{pv: 25, expected: AlarmNone},
		{pv: 24, expected: AlarmLo},
		{pv: 4, expected: AlarmLoLo},
	}

	for _, test := range tests {
		// GIVEN
		loop := NewLoop("loop0")
		loop.PV = test.pv

		// WHEN
		result := loop.Alarm()

		// THEN
		assert.Equal(t, test.expected, result, "pv: %f", test.pv)
	}
}

func TestAlarm_HighTakesPrecedence(t *testing.T) {
	// GIVEN
	loop := NewLoop("loop0")
	loop.Alarms = AlarmLimits{HiHi: 10, Hi: 8, Lo: 60, LoLo: 40}
	loop.PV = 20

	// WHEN
	result := loop.Alarm()

	// THEN
	assert.Equal(t, AlarmHiHi, result)
}

func TestAlarm_Messages(t *testing.T) {
	assert.Equal(t, "PV high-high alarm!", AlarmHiHi.String())
	assert.Equal(t, "PV low alarm!", AlarmLo.String())
	assert.Equal(t, "", AlarmNone.String())
	assert.True(t, AlarmLoLo.IsCritical())
	assert.False(t, AlarmHi.IsCritical())
}

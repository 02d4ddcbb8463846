package pid

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestHistory_FirstSampleFillsAllSlots(t *testing.T) {
	// GIVEN
	history := History{}

	// WHEN
	history.Set(42)

	// THEN
	for _, value := range history.Values() {
		assert.Equal(t, 42.0, value)
	}
}

func TestHistory_ShiftAgesSamples(t *testing.T) {
	// GIVEN
	history := History{}

	// WHEN
	for i := 1; i <= 12; i++ {
		history.Set(float64(i))
		history.Shift()
	}

	// THEN
	// after a shift, index 0 still holds the newest value until replaced
	assert.Equal(t, 12.0, history.At(0))
	assert.Equal(t, 12.0, history.At(1))
	assert.Equal(t, 11.0, history.At(2))
	assert.Equal(t, 4.0, history.At(9))
}

func TestHistory_SetOnlyReplacesNewest(t *testing.T) {
	// GIVEN
	history := History{}
	history.Set(1)
	history.Shift()

	// WHEN
	history.Set(5)
	history.Set(7)

	// THEN
	assert.Equal(t, 7.0, history.At(0))
	assert.Equal(t, 1.0, history.At(1))
}

func TestHistory_ValuesIsCopy(t *testing.T) {
	// GIVEN
	history := History{}
	history.Set(3)

	// WHEN
	values := history.Values()
	values[0] = 99

	// THEN
	assert.Len(t, values, HistorySize)
	assert.Equal(t, 3.0, history.At(0))
}

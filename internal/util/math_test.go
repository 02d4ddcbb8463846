package util

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestCoerce(t *testing.T) {
	// GIVEN
	min, max := -5.0, 105.0

	// WHEN/THEN
	assert.Equal(t, 105.0, Coerce(130.0, min, max))
	assert.Equal(t, -5.0, Coerce(-7.5, min, max))
	assert.Equal(t, 42.0, Coerce(42.0, min, max))
	assert.Equal(t, 9999, Coerce(12000, 1, 9999))
}

func TestRatio(t *testing.T) {
	// GIVEN
	a := 0.0
	b := 100.0
	c := 50.0

	expected := 0.5

	// WHEN
	result := Ratio(c, a, b)

	// THEN
	assert.Equal(t, expected, result)
}

func TestScaleToPercent_OneToFiveVolts(t *testing.T) {
	// GIVEN
	expectedInputOutput := map[float64]float64{
		1.0: 0.0,
		2.0: 25.0,
		3.0: 50.0,
		5.0: 100.0,
		0.8: -5.0,
	}

	for input, output := range expectedInputOutput {
		// WHEN
		result := ScaleToPercent(input, 1, 5)

		// THEN
		assert.InDelta(t, output, result, 0.000001, "input: %f", input)
	}
}

func TestScaleToPercent_EmptyRange(t *testing.T) {
	// WHEN
	result := ScaleToPercent(42, 0, 0)

	// THEN
	assert.Equal(t, 42.0, result)
}

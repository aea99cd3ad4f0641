package mocks

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDataGenerator_Generate(t *testing.T) {
	gen := NewDataGenerator(42)
	config := DefaultConfig()
	config.Count = 100

	bars := gen.Generate(config)
	require.Len(t, bars, 100)

	for i, b := range bars {
		assert.Equal(t, config.Symbol, b.Symbol)
		assert.Positive(t, b.Open, "open at %d", i)
		assert.Positive(t, b.Close, "close at %d", i)
		assert.GreaterOrEqual(t, b.High, b.Low, "high < low at %d", i)
		assert.GreaterOrEqual(t, b.Volume, 0.0)

		if i > 0 {
			assert.Equal(t, config.Interval, b.Time.Sub(bars[i-1].Time))
		}
	}
}

func TestDataGenerator_Reproducibility(t *testing.T) {
	config := DefaultConfig()
	config.Count = 10

	assert.Equal(t, NewDataGenerator(42).Generate(config), NewDataGenerator(42).Generate(config))
	assert.NotEqual(t, NewDataGenerator(42).Generate(config), NewDataGenerator(123).Generate(config))
}

func TestBarsFromCloses(t *testing.T) {
	bars := BarsFromCloses(10, 11, 12)
	require.Len(t, bars, 3)

	for i, b := range bars {
		assert.Equal(t, b.Close, b.TypicalPrice())
		if i > 0 {
			assert.True(t, b.Time.After(bars[i-1].Time))
		}
	}
}

func TestCloseHelpers(t *testing.T) {
	assert.Equal(t, []float64{5, 5, 5}, Repeat(5, 3))
	assert.Equal(t, []float64{1, 3, 5}, Ramp(1, 2, 3))
	assert.Equal(t, []float64{1, 2, 3}, Concat([]float64{1}, []float64{2, 3}))
	assert.Empty(t, Concat())
}

package renderer

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClearColorInUnitRange(t *testing.T) {
	for i := 0; i <= 10000; i++ {
		elapsed := float64(i) * 0.0137
		c := ClearColor(elapsed)
		for ch, v := range c[:3] {
			assert.GreaterOrEqual(t, v, float32(0), "t=%v channel %d", elapsed, ch)
			assert.LessOrEqual(t, v, float32(1), "t=%v channel %d", elapsed, ch)
		}
		assert.Equal(t, float32(1), c[3])
	}
}

func TestClearColorPeriodic(t *testing.T) {
	for _, elapsed := range []float64{0, 0.25, 1, 3.3, 10} {
		a := ClearColor(elapsed)
		b := ClearColor(elapsed + 2*math.Pi)
		for ch := 0; ch < 3; ch++ {
			assert.InDelta(t, a[ch], b[ch], 1e-4, "t=%v channel %d", elapsed, ch)
		}
	}
}

func TestClearColorAtZero(t *testing.T) {
	c := ClearColor(0)
	assert.InDelta(t, 0.5, c[0], 1e-6)
	assert.InDelta(t, math.Sin(1)*0.5+0.5, c[1], 1e-6)
	assert.InDelta(t, math.Sin(0.5)*0.5+0.5, c[2], 1e-6)
}

func TestWave(t *testing.T) {
	assert.InDelta(t, 1.0, Wave(math.Pi/2, 0), 1e-6)
	assert.InDelta(t, 0.0, Wave(0, -math.Pi/2), 1e-6)
}

func TestClearColorDiffersOneSecondApart(t *testing.T) {
	assert.NotEqual(t, ClearColor(0), ClearColor(1))
	assert.NotEqual(t, ClearColor(5), ClearColor(6))
}

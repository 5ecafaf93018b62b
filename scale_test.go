package pic2ascii

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScaledSize(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		maxSize       int
		wantW, wantH  int
	}{
		{"landscape", 800, 400, 50, 50, 10},
		{"portrait", 400, 800, 50, 25, 20},
		{"integer scale", 1000, 300, 300, 333, 40},
		{"never upscales", 20, 10, 100, 20, 4},
		{"height floor", 100, 1, 10, 10, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h, err := ScaledSize(tt.width, tt.height, tt.maxSize, DefaultAspectFactor)
			require.NoError(t, err)
			assert.Equal(t, tt.wantW, w)
			assert.Equal(t, tt.wantH, h)
		})
	}
}

func TestScaledSize_CustomAspect(t *testing.T) {
	w, h, err := ScaledSize(800, 400, 50, 2)
	require.NoError(t, err)
	assert.Equal(t, 50, w)
	assert.Equal(t, 12, h)
}

func TestScaledSize_Invalid(t *testing.T) {
	_, _, err := ScaledSize(800, 400, 0, DefaultAspectFactor)
	assert.ErrorIs(t, err, ErrInvalidConfig)

	_, _, err = ScaledSize(800, 400, 50, 0)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestScaledSize_NonFiniteAspect(t *testing.T) {
	for _, aspect := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, _, err := ScaledSize(800, 400, 50, aspect)
		assert.ErrorIsf(t, err, ErrInvalidConfig, "aspect %g", aspect)
	}
}

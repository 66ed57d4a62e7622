package shape_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/csskit/pkg/shape"
)

func TestRectangle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		width     float64
		height    float64
		area      float64
		perimeter float64
	}{
		{
			name:      "integer sides",
			width:     10,
			height:    20,
			area:      200,
			perimeter: 60,
		},
		{
			name:      "square",
			width:     5,
			height:    5,
			area:      25,
			perimeter: 20,
		},
		{
			name:      "fractional sides",
			width:     3.2,
			height:    8.4,
			area:      26.88,
			perimeter: 23.2,
		},
		{
			name:      "zero width",
			width:     0,
			height:    7,
			area:      0,
			perimeter: 14,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := shape.NewRectangle(tt.width, tt.height)
			assert.Equal(t, tt.width, r.Width)
			assert.Equal(t, tt.height, r.Height)
			assert.InDelta(t, tt.area, r.Area(), 1e-9)
			assert.InDelta(t, tt.perimeter, r.Perimeter(), 1e-9)
		})
	}
}

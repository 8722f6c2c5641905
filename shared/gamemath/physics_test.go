package gamemath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClampHorizontalSpeed(t *testing.T) {
	tests := []struct {
		name         string
		x, z, max    float64
		wantX, wantZ float64
	}{
		{"under", 3, 4, 10, 3, 4},
		{"at", 3, 4, 5, 3, 4},
		{"over keeps direction", 6, 8, 5, 3, 4},
		{"zero", 0, 0, 5, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, z := ClampHorizontalSpeed(tt.x, tt.z, tt.max)
			assert.InDelta(t, tt.wantX, x, eps)
			assert.InDelta(t, tt.wantZ, z, eps)
		})
	}
}

func TestClampLength2(t *testing.T) {
	x, y := ClampLength2(1, 1, 1)
	assert.InDelta(t, 1, math.Hypot(x, y), eps)
	assert.InDelta(t, x, y, eps, "direction kept")

	x, y = ClampLength2(0.2, 0.1, 1)
	assert.Equal(t, 0.2, x, "short vector unchanged")
	assert.Equal(t, 0.1, y, "short vector unchanged")

	x, y = ClampLength2(0, 0, 1)
	assert.Zero(t, x)
	assert.Zero(t, y)
}

func TestRate(t *testing.T) {
	assert.InDelta(t, 5.0/60.0, Rate(5, 1.0/60.0), eps)
	assert.Equal(t, 1.0, Rate(120, 1.0/60.0), "clamps to 1")
}

func TestApproachVelocity(t *testing.T) {
	v := ApproachVelocity(NewVec3(0, 0, 0), NewVec3(0, 0, 10), 3)
	assert.InDelta(t, 0, v.Distance(NewVec3(0, 0, 3)), eps, "velocity = %+v", v)

	assert.Equal(t, Vec3{}, ApproachVelocity(NewVec3(1, 1, 1), NewVec3(1, 1, 1), 3), "coincident points")
}

func TestVec3(t *testing.T) {
	v := NewVec3(3, 12, 4)
	assert.Equal(t, 5.0, v.HorizontalLength())
	assert.Equal(t, 13.0, v.Length())
	assert.InDelta(t, 1, v.Normalized().Length(), eps)
	assert.Equal(t, NewVec3(1, 2, 3), NewVec3(0, 0, 0).Lerp(NewVec3(2, 4, 6), 0.5))
}

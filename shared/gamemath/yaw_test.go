package gamemath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

const eps = 1e-9

func TestForwardRight(t *testing.T) {
	tests := []struct {
		yaw            float64
		forward, right Vec3
	}{
		{0, NewVec3(0, 0, -1), NewVec3(1, 0, 0)},
		{math.Pi / 2, NewVec3(-1, 0, 0), NewVec3(0, 0, -1)},
		{math.Pi, NewVec3(0, 0, 1), NewVec3(-1, 0, 0)},
	}
	for _, tt := range tests {
		f, r := Forward(tt.yaw), Right(tt.yaw)
		assert.InDelta(t, 0, f.Distance(tt.forward), eps, "Forward(%v) = %+v", tt.yaw, f)
		assert.InDelta(t, 0, r.Distance(tt.right), eps, "Right(%v) = %+v", tt.yaw, r)
	}
}

func TestYawFacing(t *testing.T) {
	tests := []struct {
		dir    Vec3
		want   float64
		wantOK bool
	}{
		{NewVec3(0, 0, 1), 0, true},
		{NewVec3(1, 0, 0), math.Pi / 2, true},
		{NewVec3(0, 5, -2), math.Pi, true},
		{NewVec3(0, 3, 0), 0, false},
	}
	for _, tt := range tests {
		got, ok := YawFacing(tt.dir)
		assert.Equal(t, tt.wantOK, ok, "YawFacing(%+v)", tt.dir)
		assert.InDelta(t, tt.want, got, eps, "YawFacing(%+v)", tt.dir)
	}
}

func TestWrapAngle(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{math.Pi, math.Pi},
		{-math.Pi, math.Pi},
		{3 * math.Pi / 2, -math.Pi / 2},
		{-5 * math.Pi / 2, -math.Pi / 2},
		{4 * math.Pi, 0},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.want, WrapAngle(tt.in), eps, "WrapAngle(%v)", tt.in)
	}
}

func TestSlerpYawShortestArc(t *testing.T) {
	from := 3 * math.Pi / 4
	to := -3 * math.Pi / 4

	assert.InDelta(t, math.Pi, math.Abs(SlerpYaw(from, to, 0.5)), eps, "halfway crosses the seam")
	assert.InDelta(t, to, SlerpYaw(from, to, 1), eps)
	assert.InDelta(t, to, SlerpYaw(from, to, 2), eps, "t is clamped")
}

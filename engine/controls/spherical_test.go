package controls

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestSphericalRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		v    mgl64.Vec3
	}{
		{"on +Z", mgl64.Vec3{0, 0, 10}},
		{"on +X", mgl64.Vec3{10, 0, 0}},
		{"on -Z", mgl64.Vec3{0, 0, -10}},
		{"general", mgl64.Vec3{3, 4, 5}},
		{"below horizon", mgl64.Vec3{-2, -6, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var s spherical
			s.setFromVector3(tt.v)
			got := s.vector3()
			if !vecAlmostEqual(got, tt.v, 1e-9) {
				t.Errorf("round trip = %v, want %v", got, tt.v)
			}
		})
	}
}

func TestSphericalZeroVector(t *testing.T) {
	var s spherical
	s.setFromVector3(mgl64.Vec3{})
	if s.radius != 0 || s.phi != 0 || s.theta != 0 {
		t.Errorf("zero vector produced (%v, %v, %v), want all zero", s.radius, s.phi, s.theta)
	}
}

func TestMakeSafeClampsPoles(t *testing.T) {
	tests := []struct {
		name string
		phi  float64
		want float64
	}{
		{"upper pole", 0, polarEpsilon},
		{"past upper pole", -1, polarEpsilon},
		{"lower pole", math.Pi, math.Pi - polarEpsilon},
		{"past lower pole", math.Pi + 1, math.Pi - polarEpsilon},
		{"interior untouched", math.Pi / 3, math.Pi / 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := spherical{radius: 1, phi: tt.phi}
			s.makeSafe()
			if !almostEqual(s.phi, tt.want, 1e-15) {
				t.Errorf("makeSafe(%v) = %v, want %v", tt.phi, s.phi, tt.want)
			}
		})
	}
}

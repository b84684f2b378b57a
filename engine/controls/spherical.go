package controls

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/Carmen-Shannon/orbit-go/common"
)

// polarEpsilon keeps the polar angle strictly inside (0, pi) so the
// spherical-to-Cartesian conversion never degenerates at the poles.
const polarEpsilon = 1e-6

// spherical is a position relative to the orbit target expressed as
// (radius, polar angle from +Y, azimuth angle around +Y). Angles assume the
// canonical up axis; callers apply the basis-change quaternion first when the
// camera's up vector is not +Y.
type spherical struct {
	radius float64
	phi    float64 // polar angle, 0 at +Y
	theta  float64 // azimuth angle around +Y, 0 at +Z
}

// setFromVector3 overwrites the spherical coordinates from a Cartesian offset.
func (s *spherical) setFromVector3(v mgl64.Vec3) {
	s.radius = v.Len()
	if s.radius == 0 {
		s.theta = 0
		s.phi = 0
		return
	}
	s.theta = math.Atan2(v.X(), v.Z())
	s.phi = math.Acos(common.Clamp(v.Y()/s.radius, -1, 1))
}

// vector3 converts back to a Cartesian offset in the canonical-up frame.
func (s spherical) vector3() mgl64.Vec3 {
	sinPhi := math.Sin(s.phi)
	return mgl64.Vec3{
		s.radius * sinPhi * math.Sin(s.theta),
		s.radius * math.Cos(s.phi),
		s.radius * sinPhi * math.Cos(s.theta),
	}
}

// makeSafe clamps phi away from the exact poles where azimuth is undefined.
func (s *spherical) makeSafe() {
	s.phi = common.Clamp(s.phi, polarEpsilon, math.Pi-polarEpsilon)
}

// sphericalDelta holds pending, not-yet-applied rotation deltas. Input
// handlers accumulate into it; Update drains it (decayed when damping is
// enabled, zeroed otherwise).
type sphericalDelta struct {
	theta float64
	phi   float64
}

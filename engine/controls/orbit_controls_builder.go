package controls

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/Carmen-Shannon/orbit-go/common"
)

// OrbitControlsOption is a functional option for configuring OrbitControls.
type OrbitControlsOption func(*orbitControlsImpl)

// WithTarget sets the initial orbit target.
//
// Parameters:
//   - x, y, z: world-space coordinates of the target
//
// Returns:
//   - OrbitControlsOption: functional option to set the target
func WithTarget(x, y, z float64) OrbitControlsOption {
	return func(oc *orbitControlsImpl) {
		oc.target = mgl64.Vec3{x, y, z}
	}
}

// WithDistanceBounds sets the minimum and maximum orbit distance
// (perspective dolly limits).
//
// Parameters:
//   - min: minimum distance from the target
//   - max: maximum distance from the target
//
// Returns:
//   - OrbitControlsOption: functional option to set distance bounds
func WithDistanceBounds(min, max float64) OrbitControlsOption {
	return func(oc *orbitControlsImpl) {
		oc.minDistance = min
		oc.maxDistance = max
	}
}

// WithZoomBounds sets the minimum and maximum zoom scalar
// (orthographic dolly limits).
//
// Parameters:
//   - min: minimum zoom scalar
//   - max: maximum zoom scalar
//
// Returns:
//   - OrbitControlsOption: functional option to set zoom bounds
func WithZoomBounds(min, max float64) OrbitControlsOption {
	return func(oc *orbitControlsImpl) {
		oc.minZoom = min
		oc.maxZoom = max
	}
}

// WithPolarAngleBounds sets the vertical orbit limits. Both values must lie
// within [0, pi]; construction fails otherwise.
//
// Parameters:
//   - min: minimum polar angle in radians
//   - max: maximum polar angle in radians
//
// Returns:
//   - OrbitControlsOption: functional option to set polar bounds
func WithPolarAngleBounds(min, max float64) OrbitControlsOption {
	return func(oc *orbitControlsImpl) {
		oc.minPolarAngle = min
		oc.maxPolarAngle = max
	}
}

// WithAzimuthAngleBounds sets the horizontal orbit limits. Use infinities for
// an unbounded orbit (the default).
//
// Parameters:
//   - min: minimum azimuth angle in radians
//   - max: maximum azimuth angle in radians
//
// Returns:
//   - OrbitControlsOption: functional option to set azimuth bounds
func WithAzimuthAngleBounds(min, max float64) OrbitControlsOption {
	return func(oc *orbitControlsImpl) {
		oc.minAzimuthAngle = min
		oc.maxAzimuthAngle = max
	}
}

// WithDamping enables exponential decay of residual motion after input ends.
//
// Parameters:
//   - factor: damping factor in (0, 1]; larger stops faster
//
// Returns:
//   - OrbitControlsOption: functional option to enable damping
func WithDamping(factor float64) OrbitControlsOption {
	return func(oc *orbitControlsImpl) {
		oc.enableDamping = true
		oc.dampingFactor = factor
	}
}

// WithRotateSpeed sets the rotate speed multiplier.
//
// Parameters:
//   - speed: multiplier for pointer rotation
//
// Returns:
//   - OrbitControlsOption: functional option to set rotate speed
func WithRotateSpeed(speed float64) OrbitControlsOption {
	return func(oc *orbitControlsImpl) {
		oc.rotateSpeed = speed
	}
}

// WithZoomSpeed sets the dolly speed multiplier.
//
// Parameters:
//   - speed: multiplier for wheel and pinch zoom
//
// Returns:
//   - OrbitControlsOption: functional option to set zoom speed
func WithZoomSpeed(speed float64) OrbitControlsOption {
	return func(oc *orbitControlsImpl) {
		oc.zoomSpeed = speed
	}
}

// WithPanSpeed sets the pan speed multiplier.
//
// Parameters:
//   - speed: multiplier for pointer panning
//
// Returns:
//   - OrbitControlsOption: functional option to set pan speed
func WithPanSpeed(speed float64) OrbitControlsOption {
	return func(oc *orbitControlsImpl) {
		oc.panSpeed = speed
	}
}

// WithKeyPanSpeed sets how many pixels of pan one arrow-key press is worth.
//
// Parameters:
//   - pixels: pan step per key press
//
// Returns:
//   - OrbitControlsOption: functional option to set the key pan step
func WithKeyPanSpeed(pixels float64) OrbitControlsOption {
	return func(oc *orbitControlsImpl) {
		oc.keyPanSpeed = pixels
	}
}

// WithAutoRotate enables idle auto-rotation at the given speed.
//
// Parameters:
//   - speed: 2.0 is one full orbit every 30 seconds at 60 ticks per second
//
// Returns:
//   - OrbitControlsOption: functional option to enable auto-rotation
func WithAutoRotate(speed float64) OrbitControlsOption {
	return func(oc *orbitControlsImpl) {
		oc.autoRotate = true
		oc.autoRotateSpeed = speed
	}
}

// WithMouseButtons sets the button-to-gesture mapping. The default is
// left=rotate, middle=dolly, right=pan. Use ActionNone to ignore a button.
//
// Parameters:
//   - left: gesture for the left button
//   - middle: gesture for the middle button
//   - right: gesture for the right button
//
// Returns:
//   - OrbitControlsOption: functional option to set the button mapping
func WithMouseButtons(left, middle, right Action) OrbitControlsOption {
	return func(oc *orbitControlsImpl) {
		oc.mouseActions = map[common.MouseButton]Action{
			common.MouseButtonLeft:   left,
			common.MouseButtonMiddle: middle,
			common.MouseButtonRight:  right,
		}
	}
}

// WithEnableRotate toggles the rotate capability at construction.
//
// Parameters:
//   - enabled: false to ignore rotate gestures
//
// Returns:
//   - OrbitControlsOption: functional option to toggle rotation
func WithEnableRotate(enabled bool) OrbitControlsOption {
	return func(oc *orbitControlsImpl) {
		oc.enableRotate = enabled
	}
}

// WithEnableZoom toggles the dolly/zoom capability at construction.
//
// Parameters:
//   - enabled: false to ignore wheel and pinch input
//
// Returns:
//   - OrbitControlsOption: functional option to toggle zoom
func WithEnableZoom(enabled bool) OrbitControlsOption {
	return func(oc *orbitControlsImpl) {
		oc.enableZoom = enabled
	}
}

// WithEnablePan toggles the pan capability at construction.
//
// Parameters:
//   - enabled: false to ignore pan gestures and arrow keys
//
// Returns:
//   - OrbitControlsOption: functional option to toggle panning
func WithEnablePan(enabled bool) OrbitControlsOption {
	return func(oc *orbitControlsImpl) {
		oc.enablePan = enabled
	}
}

// WithEnableKeys toggles arrow-key panning at construction.
//
// Parameters:
//   - enabled: false to ignore key input
//
// Returns:
//   - OrbitControlsOption: functional option to toggle key panning
func WithEnableKeys(enabled bool) OrbitControlsOption {
	return func(oc *orbitControlsImpl) {
		oc.enableKeys = enabled
	}
}

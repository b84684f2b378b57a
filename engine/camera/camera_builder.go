package camera

import "github.com/go-gl/mathgl/mgl64"

// CameraBuilderOption is a functional option for configuring a Camera.
type CameraBuilderOption func(*cameraImpl)

// WithPosition sets the camera's initial world-space position.
//
// Parameters:
//   - x, y, z: world-space coordinates
//
// Returns:
//   - CameraBuilderOption: functional option to set the position
func WithPosition(x, y, z float64) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.position = mgl64.Vec3{x, y, z}
	}
}

// WithUp sets the camera's up vector.
//
// Parameters:
//   - x, y, z: up vector components
//
// Returns:
//   - CameraBuilderOption: functional option to set the up vector
func WithUp(x, y, z float64) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.up = mgl64.Vec3{x, y, z}
	}
}

// WithFov sets the vertical field of view in radians (perspective cameras).
//
// Parameters:
//   - fov: field of view in radians
//
// Returns:
//   - CameraBuilderOption: functional option to set the field of view
func WithFov(fov float64) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.fov = fov
	}
}

// WithAspect sets the aspect ratio (width / height).
//
// Parameters:
//   - aspect: the aspect ratio to set
//
// Returns:
//   - CameraBuilderOption: functional option to set the aspect ratio
func WithAspect(aspect float64) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.aspect = aspect
	}
}

// WithNear sets the near clipping plane distance.
//
// Parameters:
//   - near: near plane distance
//
// Returns:
//   - CameraBuilderOption: functional option to set the near plane
func WithNear(near float64) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.near = near
	}
}

// WithFar sets the far clipping plane distance.
//
// Parameters:
//   - far: far plane distance
//
// Returns:
//   - CameraBuilderOption: functional option to set the far plane
func WithFar(far float64) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.far = far
	}
}

// WithExtents sets the orthographic view volume before zoom is applied.
//
// Parameters:
//   - left, right, top, bottom: frustum extents
//
// Returns:
//   - CameraBuilderOption: functional option to set the extents
func WithExtents(left, right, top, bottom float64) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.left = left
		c.right = right
		c.top = top
		c.bottom = bottom
	}
}

// WithZoom sets the initial zoom scalar (orthographic cameras).
//
// Parameters:
//   - zoom: the zoom scalar (> 0)
//
// Returns:
//   - CameraBuilderOption: functional option to set the zoom
func WithZoom(zoom float64) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.zoom = zoom
	}
}

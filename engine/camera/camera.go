package camera

import (
	"math"
	"sync"

	"github.com/go-gl/mathgl/mgl64"
)

// Kind tags a camera with its projection capability. Dolly semantics depend on
// the kind: perspective cameras dolly by changing the orbit distance, while
// orthographic cameras dolly by changing the zoom scalar.
type Kind int

const (
	// KindPerspective is a perspective-projection camera.
	KindPerspective Kind = iota
	// KindOrthographic is an orthographic-projection camera.
	KindOrthographic
)

type cameraImpl struct {
	mu *sync.Mutex

	kind Kind

	position    mgl64.Vec3
	up          mgl64.Vec3
	orientation mgl64.Quat

	// Perspective parameters.
	fov    float64
	aspect float64

	// Orthographic view volume, pre-zoom.
	left   float64
	right  float64
	top    float64
	bottom float64

	near float64
	far  float64
	zoom float64

	viewMatrix       mgl64.Mat4
	projectionMatrix mgl64.Mat4
}

// Camera is the abstraction the orbit controls drive. It owns world-space
// position and orientation and computes view/projection matrices for the host
// renderer. Controls read the live position every update, so hosts may also
// reposition the camera directly between updates.
type Camera interface {
	// Kind returns the camera's projection kind.
	//
	// Returns:
	//   - Kind: KindPerspective or KindOrthographic
	Kind() Kind

	// Position returns the camera's world-space position.
	//
	// Returns:
	//   - mgl64.Vec3: world-space camera position
	Position() mgl64.Vec3

	// SetPosition sets the camera's world-space position.
	// The view matrix is not recomputed until the next LookAt call.
	//
	// Parameters:
	//   - p: world-space coordinates
	SetPosition(p mgl64.Vec3)

	// Up returns the camera's up vector.
	//
	// Returns:
	//   - mgl64.Vec3: the up vector
	Up() mgl64.Vec3

	// SetUp sets the camera's up vector.
	//
	// Parameters:
	//   - up: the new up vector (need not be normalized)
	SetUp(up mgl64.Vec3)

	// LookAt orients the camera toward the given target point using the
	// camera's up vector, recomputing orientation and the view matrix.
	//
	// Parameters:
	//   - target: world-space point to look at
	LookAt(target mgl64.Vec3)

	// Orientation returns the camera's current orientation as a unit quaternion.
	//
	// Returns:
	//   - mgl64.Quat: the orientation set by the last LookAt call
	Orientation() mgl64.Quat

	// Zoom returns the zoom scalar. Meaningful for orthographic cameras;
	// perspective cameras keep it at 1.
	//
	// Returns:
	//   - float64: the current zoom scalar
	Zoom() float64

	// SetZoom sets the zoom scalar. Callers must invoke UpdateProjection for
	// the change to reach the projection matrix.
	//
	// Parameters:
	//   - zoom: the new zoom scalar (> 0)
	SetZoom(zoom float64)

	// UpdateProjection recomputes the projection matrix from the current
	// parameters (fov/aspect for perspective, extents/zoom for orthographic).
	UpdateProjection()

	// Fov returns the vertical field of view in radians (perspective only).
	//
	// Returns:
	//   - float64: field of view in radians
	Fov() float64

	// Aspect returns the aspect ratio (width / height).
	//
	// Returns:
	//   - float64: the aspect ratio
	Aspect() float64

	// SetAspect sets the aspect ratio and recomputes the projection matrix.
	//
	// Parameters:
	//   - aspect: the aspect ratio
	SetAspect(aspect float64)

	// Extents returns the orthographic view volume before zoom is applied.
	//
	// Returns:
	//   - left, right, top, bottom: the pre-zoom frustum extents
	Extents() (left, right, top, bottom float64)

	// ViewMatrix returns the current view matrix.
	//
	// Returns:
	//   - mgl64.Mat4: world-to-camera transform from the last LookAt call
	ViewMatrix() mgl64.Mat4

	// ProjectionMatrix returns the current projection matrix.
	//
	// Returns:
	//   - mgl64.Mat4: the projection matrix
	ProjectionMatrix() mgl64.Mat4
}

var _ Camera = &cameraImpl{}

// NewPerspectiveCamera creates a perspective camera with sensible defaults:
// 45 degree vertical fov, aspect 1.0, near 0.1, far 100, positioned at
// (0, 0, 10) looking at the origin with +Y up.
//
// Parameters:
//   - options: functional options to configure the camera
//
// Returns:
//   - Camera: the newly created camera
func NewPerspectiveCamera(options ...CameraBuilderOption) Camera {
	c := newDefaultCamera(KindPerspective)
	for _, option := range options {
		option(c)
	}
	c.updateProjection()
	c.lookAt(mgl64.Vec3{0, 0, 0})
	return c
}

// NewOrthographicCamera creates an orthographic camera with a [-1, 1] view
// volume, near 0.1, far 100, zoom 1, positioned at (0, 0, 10) looking at the
// origin with +Y up.
//
// Parameters:
//   - options: functional options to configure the camera
//
// Returns:
//   - Camera: the newly created camera
func NewOrthographicCamera(options ...CameraBuilderOption) Camera {
	c := newDefaultCamera(KindOrthographic)
	for _, option := range options {
		option(c)
	}
	c.updateProjection()
	c.lookAt(mgl64.Vec3{0, 0, 0})
	return c
}

func newDefaultCamera(kind Kind) *cameraImpl {
	return &cameraImpl{
		mu:          &sync.Mutex{},
		kind:        kind,
		position:    mgl64.Vec3{0, 0, 10},
		up:          mgl64.Vec3{0, 1, 0},
		orientation: mgl64.QuatIdent(),
		fov:         45.0 * (math.Pi / 180.0),
		aspect:      1.0,
		left:        -1,
		right:       1,
		top:         1,
		bottom:      -1,
		near:        0.1,
		far:         100.0,
		zoom:        1.0,
		viewMatrix:  mgl64.Ident4(),
	}
}

func (c *cameraImpl) Kind() Kind {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.kind
}

func (c *cameraImpl) Position() mgl64.Vec3 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.position
}

func (c *cameraImpl) SetPosition(p mgl64.Vec3) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.position = p
}

func (c *cameraImpl) Up() mgl64.Vec3 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.up
}

func (c *cameraImpl) SetUp(up mgl64.Vec3) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.up = up
}

func (c *cameraImpl) LookAt(target mgl64.Vec3) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lookAt(target)
}

// lookAt recomputes orientation and the view matrix toward target.
// Caller must hold the mutex.
func (c *cameraImpl) lookAt(target mgl64.Vec3) {
	if c.position.Sub(target).Len() < 1e-12 {
		// Degenerate look direction; keep the previous orientation.
		return
	}
	c.orientation = mgl64.QuatLookAtV(c.position, target, c.up)
	c.viewMatrix = mgl64.LookAtV(c.position, target, c.up)
}

func (c *cameraImpl) Orientation() mgl64.Quat {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.orientation
}

func (c *cameraImpl) Zoom() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.zoom
}

func (c *cameraImpl) SetZoom(zoom float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.zoom = zoom
}

func (c *cameraImpl) UpdateProjection() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.updateProjection()
}

// updateProjection recomputes the projection matrix. For orthographic cameras
// the zoom scalar shrinks the view volume symmetrically. Caller must hold the mutex.
func (c *cameraImpl) updateProjection() {
	switch c.kind {
	case KindOrthographic:
		c.projectionMatrix = mgl64.Ortho(
			c.left/c.zoom, c.right/c.zoom,
			c.bottom/c.zoom, c.top/c.zoom,
			c.near, c.far,
		)
	default:
		c.projectionMatrix = mgl64.Perspective(c.fov, c.aspect, c.near, c.far)
	}
}

func (c *cameraImpl) Fov() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.fov
}

func (c *cameraImpl) Aspect() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.aspect
}

func (c *cameraImpl) SetAspect(aspect float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.aspect = aspect
	c.updateProjection()
}

func (c *cameraImpl) Extents() (left, right, top, bottom float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.left, c.right, c.top, c.bottom
}

func (c *cameraImpl) ViewMatrix() mgl64.Mat4 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.viewMatrix
}

func (c *cameraImpl) ProjectionMatrix() mgl64.Mat4 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.projectionMatrix
}

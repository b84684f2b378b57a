package controls

import (
	"math"
	"sync"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/joomcode/errorx"

	"github.com/Carmen-Shannon/orbit-go/common"
	"github.com/Carmen-Shannon/orbit-go/engine/camera"
)

// changeEpsilon is the squared-distance / orientation threshold below which an
// update is reported as "no visible change".
const changeEpsilon = 1e-6

// orbitControlsImpl is the single implementation of OrbitControls.
// Input handlers only accumulate deltas; the camera and the target are mutated
// exclusively inside Update, under the same mutex the handlers take. That keeps
// the accumulate phase and the apply phase from ever interleaving.
type orbitControlsImpl struct {
	mu *sync.Mutex

	camera  camera.Camera
	surface Surface

	enabled bool

	// Orbit target; panning translates it.
	target mgl64.Vec3

	// Distance limits (perspective dolly).
	minDistance float64
	maxDistance float64

	// Zoom limits (orthographic dolly).
	minZoom float64
	maxZoom float64

	// Angle limits. Polar is [0, pi]; azimuth is unbounded unless both finite.
	minPolarAngle   float64
	maxPolarAngle   float64
	minAzimuthAngle float64
	maxAzimuthAngle float64

	enableDamping bool
	dampingFactor float64

	enableRotate bool
	enableZoom   bool
	enablePan    bool
	enableKeys   bool

	rotateSpeed float64
	zoomSpeed   float64
	panSpeed    float64
	keyPanSpeed float64 // pixels per arrow-key press

	autoRotate      bool
	autoRotateSpeed float64 // 2.0 is one orbit per 30 seconds at 60 ticks/s

	mouseActions map[common.MouseButton]Action

	state interactionState

	// Working spherical state, rebuilt from the live camera each Update.
	spherical      spherical
	sphericalDelta sphericalDelta
	scale          float64
	panOffset      mgl64.Vec3
	zoomChanged    bool

	// Gesture tracking: only the most recent positions are kept, so event
	// bursts collapse into one net delta per Update.
	rotateStart mgl64.Vec2
	panStart    mgl64.Vec2
	dollyPrevY  float64
	pinchDist   float64

	// Saved snapshot for Reset.
	target0   mgl64.Vec3
	position0 mgl64.Vec3
	zoom0     float64

	// Basis change aligning the camera's up vector with canonical +Y, so the
	// spherical conversion stays valid for tilted cameras.
	quat        mgl64.Quat
	quatInverse mgl64.Quat

	lastPosition   mgl64.Vec3
	lastQuaternion mgl64.Quat

	disposed bool
}

// OrbitControls converts pointer, touch, and keyboard input into smooth,
// constrained camera motion around a focus point. The host calls Update once
// per render tick; everything else accumulates between ticks.
type OrbitControls interface {
	// Update applies all pending input to the camera. Call once per render
	// tick. When damping is enabled, residual motion keeps decaying across
	// subsequent calls.
	//
	// Returns:
	//   - bool: true if the camera moved enough that a re-render is warranted
	Update() bool

	// Save snapshots the current target, camera position, and zoom for Reset.
	Save()

	// Reset restores the last saved snapshot (or the construction-time state),
	// returns the interaction state to idle, and applies one Update so the
	// camera reflects the restored state immediately.
	Reset()

	// Dispose unregisters every input callback from the surface. Safe to call
	// multiple times. The controls stop responding to input afterwards;
	// Update remains callable but receives no new deltas.
	Dispose()

	// GetPolarAngle returns the current polar angle from the up axis.
	//
	// Returns:
	//   - float64: polar angle in radians
	GetPolarAngle() float64

	// GetAzimuthalAngle returns the current azimuth angle around the up axis.
	//
	// Returns:
	//   - float64: azimuth angle in radians
	GetAzimuthalAngle() float64

	// Target returns the point the camera orbits.
	//
	// Returns:
	//   - mgl64.Vec3: the orbit target
	Target() mgl64.Vec3

	// SetTarget moves the orbit target directly.
	//
	// Parameters:
	//   - target: the new orbit target
	SetTarget(target mgl64.Vec3)

	// Enabled reports whether the controls respond to input.
	//
	// Returns:
	//   - bool: true when input is processed
	Enabled() bool

	// SetEnabled toggles all input handling without unregistering listeners.
	//
	// Parameters:
	//   - enabled: false to ignore all input
	SetEnabled(enabled bool)

	// SetEnableRotate toggles the rotate capability.
	//
	// Parameters:
	//   - enabled: false to ignore rotate gestures
	SetEnableRotate(enabled bool)

	// SetEnableZoom toggles the dolly/zoom capability.
	//
	// Parameters:
	//   - enabled: false to ignore wheel and pinch input
	SetEnableZoom(enabled bool)

	// SetEnablePan toggles the pan capability.
	//
	// Parameters:
	//   - enabled: false to ignore pan gestures and arrow keys
	SetEnablePan(enabled bool)

	// SetEnableKeys toggles arrow-key panning.
	//
	// Parameters:
	//   - enabled: false to ignore key input
	SetEnableKeys(enabled bool)

	// SetEnableDamping toggles exponential decay of residual motion. When off,
	// motion stops the instant input stops.
	//
	// Parameters:
	//   - enabled: true to coast after gestures end
	SetEnableDamping(enabled bool)

	// SetAutoRotate toggles the idle auto-rotation of the azimuth angle.
	//
	// Parameters:
	//   - enabled: true to rotate while no gesture is active
	SetAutoRotate(enabled bool)

	// RotateLeft queues a rotation around the up axis, device-independent.
	//
	// Parameters:
	//   - angle: rotation in radians
	RotateLeft(angle float64)

	// RotateUp queues a rotation toward the up axis, device-independent.
	//
	// Parameters:
	//   - angle: rotation in radians
	RotateUp(angle float64)

	// PanLeft queues a translation of the target along the camera's local
	// -X axis, in world units.
	//
	// Parameters:
	//   - distance: translation in world units
	PanLeft(distance float64)

	// PanUp queues a translation of the target along the camera's local
	// +Y axis, in world units.
	//
	// Parameters:
	//   - distance: translation in world units
	PanUp(distance float64)

	// DollyIn queues a move toward the target by the given multiplicative
	// factor; values below 1 move closer. Orthographic cameras change their
	// zoom scalar instead of the orbit distance.
	//
	// Parameters:
	//   - dollyScale: multiplicative factor applied on the next Update
	DollyIn(dollyScale float64)

	// DollyOut queues a move away from the target by the given multiplicative
	// factor; values below 1 move farther.
	//
	// Parameters:
	//   - dollyScale: multiplicative factor applied on the next Update
	DollyOut(dollyScale float64)
}

var _ OrbitControls = &orbitControlsImpl{}

// NewOrbitControls creates orbit controls for the given camera and input
// surface. Configuration ranges are validated before any listener is
// registered, so a failed construction leaves the surface untouched.
//
// Parameters:
//   - cam: the camera to drive (must not be nil)
//   - surface: the input surface to attach to (must not be nil)
//   - options: functional options to configure limits, speeds, and capabilities
//
// Returns:
//   - OrbitControls: the newly created controls
//   - error: a descriptive error when a configuration range is invalid
func NewOrbitControls(cam camera.Camera, surface Surface, options ...OrbitControlsOption) (OrbitControls, error) {
	if cam == nil {
		return nil, errorx.IllegalArgument.New("orbit controls require a non-nil camera")
	}
	if surface == nil {
		return nil, errorx.IllegalArgument.New("orbit controls require a non-nil input surface")
	}

	oc := &orbitControlsImpl{
		mu:      &sync.Mutex{},
		camera:  cam,
		surface: surface,

		enabled: true,

		minDistance: 0,
		maxDistance: math.Inf(1),
		minZoom:     0,
		maxZoom:     math.Inf(1),

		minPolarAngle:   0,
		maxPolarAngle:   math.Pi,
		minAzimuthAngle: math.Inf(-1),
		maxAzimuthAngle: math.Inf(1),

		enableDamping: false,
		dampingFactor: 0.25,

		enableRotate: true,
		enableZoom:   true,
		enablePan:    true,
		enableKeys:   true,

		rotateSpeed: 1.0,
		zoomSpeed:   1.0,
		panSpeed:    1.0,
		keyPanSpeed: 7.0,

		autoRotate:      false,
		autoRotateSpeed: 2.0,

		mouseActions: defaultMouseActions(),

		state: stateIdle,
		scale: 1.0,
	}

	for _, option := range options {
		option(oc)
	}

	if err := oc.validate(); err != nil {
		return nil, err
	}

	oc.quat = mgl64.QuatBetweenVectors(cam.Up(), mgl64.Vec3{0, 1, 0})
	oc.quatInverse = oc.quat.Inverse()

	oc.target0 = oc.target
	oc.position0 = cam.Position()
	oc.zoom0 = cam.Zoom()
	oc.lastPosition = cam.Position()
	oc.lastQuaternion = cam.Orientation()

	oc.bindSurface()
	return oc, nil
}

// validate checks every configured range and reports the first violation.
// Bounds are never silently swapped.
func (oc *orbitControlsImpl) validate() error {
	if oc.minDistance > oc.maxDistance {
		return errorx.IllegalArgument.New("minDistance (%v) must not exceed maxDistance (%v)", oc.minDistance, oc.maxDistance)
	}
	if oc.minZoom > oc.maxZoom {
		return errorx.IllegalArgument.New("minZoom (%v) must not exceed maxZoom (%v)", oc.minZoom, oc.maxZoom)
	}
	if oc.minPolarAngle < 0 || oc.maxPolarAngle > math.Pi || oc.minPolarAngle > oc.maxPolarAngle {
		return errorx.IllegalArgument.New("polar angle bounds [%v, %v] must be an ordered sub-range of [0, pi]", oc.minPolarAngle, oc.maxPolarAngle)
	}
	if oc.minAzimuthAngle > oc.maxAzimuthAngle {
		return errorx.IllegalArgument.New("minAzimuthAngle (%v) must not exceed maxAzimuthAngle (%v)", oc.minAzimuthAngle, oc.maxAzimuthAngle)
	}
	if oc.dampingFactor <= 0 || oc.dampingFactor > 1 {
		return errorx.IllegalArgument.New("dampingFactor (%v) must be in (0, 1]", oc.dampingFactor)
	}
	return nil
}

// bindSurface registers every input handler on the surface.
func (oc *orbitControlsImpl) bindSurface() {
	oc.surface.SetMouseDownCallback(oc.onMouseDown)
	oc.surface.SetMouseUpCallback(oc.onMouseUp)
	oc.surface.SetMouseMoveCallback(oc.onMouseMove)
	oc.surface.SetScrollCallback(oc.onScroll)
	oc.surface.SetTouchStartCallback(oc.onTouchStart)
	oc.surface.SetTouchMoveCallback(oc.onTouchMove)
	oc.surface.SetTouchEndCallback(oc.onTouchEnd)
	oc.surface.SetKeyDownCallback(oc.onKeyDown)
}

func (oc *orbitControlsImpl) Dispose() {
	oc.mu.Lock()
	defer oc.mu.Unlock()
	if oc.disposed {
		return
	}
	oc.surface.SetMouseDownCallback(nil)
	oc.surface.SetMouseUpCallback(nil)
	oc.surface.SetMouseMoveCallback(nil)
	oc.surface.SetScrollCallback(nil)
	oc.surface.SetTouchStartCallback(nil)
	oc.surface.SetTouchMoveCallback(nil)
	oc.surface.SetTouchEndCallback(nil)
	oc.surface.SetKeyDownCallback(nil)
	oc.state = stateIdle
	oc.disposed = true
}

// --- per-tick integration ---

func (oc *orbitControlsImpl) Update() bool {
	oc.mu.Lock()
	defer oc.mu.Unlock()
	return oc.update()
}

// update applies pending deltas to the spherical state, clamps to the
// configured bounds, repositions the camera, and reports whether anything
// visibly changed. Caller must hold the mutex.
func (oc *orbitControlsImpl) update() bool {
	pos := oc.camera.Position()

	// Rebuild the working spherical state from the live camera position so
	// external repositioning between ticks is respected.
	offset := oc.quat.Rotate(pos.Sub(oc.target))
	oc.spherical.setFromVector3(offset)

	if oc.autoRotate && oc.state == stateIdle {
		oc.rotateLeft(oc.autoRotationAngle())
	}

	oc.spherical.theta += oc.sphericalDelta.theta
	oc.spherical.phi += oc.sphericalDelta.phi

	oc.spherical.theta = common.Clamp(oc.spherical.theta, oc.minAzimuthAngle, oc.maxAzimuthAngle)
	oc.spherical.phi = common.Clamp(oc.spherical.phi, oc.minPolarAngle, oc.maxPolarAngle)
	oc.spherical.makeSafe()

	switch oc.camera.Kind() {
	case camera.KindOrthographic:
		// Orthographic cameras dolly by zoom; the orbit radius is unscaled.
		if oc.scale != 1 {
			newZoom := common.Clamp(oc.camera.Zoom()/oc.scale, oc.minZoom, oc.maxZoom)
			if newZoom != oc.camera.Zoom() {
				oc.camera.SetZoom(newZoom)
				oc.camera.UpdateProjection()
				oc.zoomChanged = true
			}
		}
		oc.spherical.radius = common.Clamp(oc.spherical.radius, oc.minDistance, oc.maxDistance)
	default:
		oc.spherical.radius = common.Clamp(oc.spherical.radius*oc.scale, oc.minDistance, oc.maxDistance)
	}

	oc.target = oc.target.Add(oc.panOffset)

	offset = oc.quatInverse.Rotate(oc.spherical.vector3())
	oc.camera.SetPosition(oc.target.Add(offset))
	oc.camera.LookAt(oc.target)

	if oc.enableDamping {
		decay := 1 - oc.dampingFactor
		oc.sphericalDelta.theta *= decay
		oc.sphericalDelta.phi *= decay
		oc.panOffset = oc.panOffset.Mul(decay)
	} else {
		oc.sphericalDelta = sphericalDelta{}
		oc.panOffset = mgl64.Vec3{}
	}
	oc.scale = 1

	newPos := oc.camera.Position()
	newQuat := oc.camera.Orientation()
	if oc.zoomChanged ||
		oc.lastPosition.Sub(newPos).LenSqr() > changeEpsilon ||
		8*(1-oc.lastQuaternion.Dot(newQuat)) > changeEpsilon {
		oc.lastPosition = newPos
		oc.lastQuaternion = newQuat
		oc.zoomChanged = false
		return true
	}
	return false
}

// autoRotationAngle is the azimuth increment for one tick of idle
// auto-rotation: a full orbit every 30 seconds at 60 ticks/s for speed 2.0.
func (oc *orbitControlsImpl) autoRotationAngle() float64 {
	return 2 * math.Pi / 60 / 60 * oc.autoRotateSpeed
}

// zoomScale is the multiplicative magnitude of one discrete dolly step.
func (oc *orbitControlsImpl) zoomScale() float64 {
	return math.Pow(0.95, oc.zoomSpeed)
}

// --- lifecycle ---

func (oc *orbitControlsImpl) Save() {
	oc.mu.Lock()
	defer oc.mu.Unlock()
	oc.target0 = oc.target
	oc.position0 = oc.camera.Position()
	oc.zoom0 = oc.camera.Zoom()
}

func (oc *orbitControlsImpl) Reset() {
	oc.mu.Lock()
	defer oc.mu.Unlock()
	oc.target = oc.target0
	oc.camera.SetPosition(oc.position0)
	oc.camera.SetZoom(oc.zoom0)
	oc.camera.UpdateProjection()
	oc.zoomChanged = true

	oc.state = stateIdle
	oc.sphericalDelta = sphericalDelta{}
	oc.panOffset = mgl64.Vec3{}
	oc.scale = 1

	oc.update()
}

// --- introspection and runtime configuration ---

func (oc *orbitControlsImpl) GetPolarAngle() float64 {
	oc.mu.Lock()
	defer oc.mu.Unlock()
	return oc.spherical.phi
}

func (oc *orbitControlsImpl) GetAzimuthalAngle() float64 {
	oc.mu.Lock()
	defer oc.mu.Unlock()
	return oc.spherical.theta
}

func (oc *orbitControlsImpl) Target() mgl64.Vec3 {
	oc.mu.Lock()
	defer oc.mu.Unlock()
	return oc.target
}

func (oc *orbitControlsImpl) SetTarget(target mgl64.Vec3) {
	oc.mu.Lock()
	defer oc.mu.Unlock()
	oc.target = target
}

func (oc *orbitControlsImpl) Enabled() bool {
	oc.mu.Lock()
	defer oc.mu.Unlock()
	return oc.enabled
}

func (oc *orbitControlsImpl) SetEnabled(enabled bool) {
	oc.mu.Lock()
	defer oc.mu.Unlock()
	oc.enabled = enabled
}

func (oc *orbitControlsImpl) SetEnableRotate(enabled bool) {
	oc.mu.Lock()
	defer oc.mu.Unlock()
	oc.enableRotate = enabled
}

func (oc *orbitControlsImpl) SetEnableZoom(enabled bool) {
	oc.mu.Lock()
	defer oc.mu.Unlock()
	oc.enableZoom = enabled
}

func (oc *orbitControlsImpl) SetEnablePan(enabled bool) {
	oc.mu.Lock()
	defer oc.mu.Unlock()
	oc.enablePan = enabled
}

func (oc *orbitControlsImpl) SetEnableKeys(enabled bool) {
	oc.mu.Lock()
	defer oc.mu.Unlock()
	oc.enableKeys = enabled
}

func (oc *orbitControlsImpl) SetEnableDamping(enabled bool) {
	oc.mu.Lock()
	defer oc.mu.Unlock()
	oc.enableDamping = enabled
}

func (oc *orbitControlsImpl) SetAutoRotate(enabled bool) {
	oc.mu.Lock()
	defer oc.mu.Unlock()
	oc.autoRotate = enabled
}

// --- device-independent primitives ---

func (oc *orbitControlsImpl) RotateLeft(angle float64) {
	oc.mu.Lock()
	defer oc.mu.Unlock()
	oc.rotateLeft(angle)
}

func (oc *orbitControlsImpl) RotateUp(angle float64) {
	oc.mu.Lock()
	defer oc.mu.Unlock()
	oc.rotateUp(angle)
}

func (oc *orbitControlsImpl) PanLeft(distance float64) {
	oc.mu.Lock()
	defer oc.mu.Unlock()
	oc.panLeft(distance)
}

func (oc *orbitControlsImpl) PanUp(distance float64) {
	oc.mu.Lock()
	defer oc.mu.Unlock()
	oc.panUp(distance)
}

func (oc *orbitControlsImpl) DollyIn(dollyScale float64) {
	oc.mu.Lock()
	defer oc.mu.Unlock()
	oc.dollyIn(dollyScale)
}

func (oc *orbitControlsImpl) DollyOut(dollyScale float64) {
	oc.mu.Lock()
	defer oc.mu.Unlock()
	oc.dollyOut(dollyScale)
}

// rotateLeft queues a negative azimuth delta. Caller must hold the mutex.
func (oc *orbitControlsImpl) rotateLeft(angle float64) {
	oc.sphericalDelta.theta -= angle
}

// rotateUp queues a negative polar delta. Caller must hold the mutex.
func (oc *orbitControlsImpl) rotateUp(angle float64) {
	oc.sphericalDelta.phi -= angle
}

// panLeft queues a target translation along the camera's local -X axis.
// Caller must hold the mutex.
func (oc *orbitControlsImpl) panLeft(distance float64) {
	right := oc.camera.Orientation().Rotate(mgl64.Vec3{1, 0, 0})
	oc.panOffset = oc.panOffset.Add(right.Mul(-distance))
}

// panUp queues a target translation along the camera's local +Y axis.
// Caller must hold the mutex.
func (oc *orbitControlsImpl) panUp(distance float64) {
	up := oc.camera.Orientation().Rotate(mgl64.Vec3{0, 1, 0})
	oc.panOffset = oc.panOffset.Add(up.Mul(distance))
}

// pan converts a screen-pixel delta into a world-space target translation.
// Perspective cameras scale by the distance-dependent view height; orthographic
// cameras scale by the zoomed view volume. Caller must hold the mutex.
func (oc *orbitControlsImpl) pan(deltaX, deltaY float64) {
	w := float64(oc.surface.Width())
	h := float64(oc.surface.Height())
	if w <= 0 || h <= 0 {
		return
	}
	switch oc.camera.Kind() {
	case camera.KindOrthographic:
		left, right, top, bottom := oc.camera.Extents()
		zoom := oc.camera.Zoom()
		if zoom <= 0 {
			return
		}
		oc.panLeft(deltaX * (right - left) / zoom / w)
		oc.panUp(deltaY * (top - bottom) / zoom / h)
	default:
		offset := oc.camera.Position().Sub(oc.target)
		// Half the visible height at the target's distance.
		targetDistance := offset.Len() * math.Tan(oc.camera.Fov()/2)
		oc.panLeft(2 * deltaX * targetDistance / h)
		oc.panUp(2 * deltaY * targetDistance / h)
	}
}

// dollyIn queues a move toward the target. Caller must hold the mutex.
func (oc *orbitControlsImpl) dollyIn(dollyScale float64) {
	oc.scale *= dollyScale
}

// dollyOut queues a move away from the target. Caller must hold the mutex.
func (oc *orbitControlsImpl) dollyOut(dollyScale float64) {
	oc.scale /= dollyScale
}

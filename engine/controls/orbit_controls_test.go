package controls

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/Carmen-Shannon/orbit-go/common"
	"github.com/Carmen-Shannon/orbit-go/engine/camera"
)

// fakeSurface is an in-memory Surface for driving input in tests.
type fakeSurface struct {
	width  int
	height int

	onMouseDown  func(button common.MouseButton, x, y float64)
	onMouseUp    func(button common.MouseButton, x, y float64)
	onMouseMove  func(x, y float64)
	onScroll     func(delta float64)
	onTouchStart func(points []common.TouchPoint)
	onTouchMove  func(points []common.TouchPoint)
	onTouchEnd   func(points []common.TouchPoint)
	onKeyDown    func(keyCode uint32)
}

var _ Surface = &fakeSurface{}

func newFakeSurface() *fakeSurface {
	return &fakeSurface{width: 800, height: 600}
}

func (s *fakeSurface) Width() int  { return s.width }
func (s *fakeSurface) Height() int { return s.height }

func (s *fakeSurface) SetMouseDownCallback(callback func(button common.MouseButton, x, y float64)) {
	s.onMouseDown = callback
}

func (s *fakeSurface) SetMouseUpCallback(callback func(button common.MouseButton, x, y float64)) {
	s.onMouseUp = callback
}

func (s *fakeSurface) SetMouseMoveCallback(callback func(x, y float64)) {
	s.onMouseMove = callback
}

func (s *fakeSurface) SetScrollCallback(callback func(delta float64)) {
	s.onScroll = callback
}

func (s *fakeSurface) SetTouchStartCallback(callback func(points []common.TouchPoint)) {
	s.onTouchStart = callback
}

func (s *fakeSurface) SetTouchMoveCallback(callback func(points []common.TouchPoint)) {
	s.onTouchMove = callback
}

func (s *fakeSurface) SetTouchEndCallback(callback func(points []common.TouchPoint)) {
	s.onTouchEnd = callback
}

func (s *fakeSurface) SetKeyDownCallback(callback func(keyCode uint32)) {
	s.onKeyDown = callback
}

func (s *fakeSurface) mouseDown(b common.MouseButton, x, y float64) {
	if s.onMouseDown != nil {
		s.onMouseDown(b, x, y)
	}
}

func (s *fakeSurface) mouseUp(b common.MouseButton, x, y float64) {
	if s.onMouseUp != nil {
		s.onMouseUp(b, x, y)
	}
}

func (s *fakeSurface) mouseMove(x, y float64) {
	if s.onMouseMove != nil {
		s.onMouseMove(x, y)
	}
}

func (s *fakeSurface) scroll(delta float64) {
	if s.onScroll != nil {
		s.onScroll(delta)
	}
}

func (s *fakeSurface) touchStart(points ...common.TouchPoint) {
	if s.onTouchStart != nil {
		s.onTouchStart(points)
	}
}

func (s *fakeSurface) touchMove(points ...common.TouchPoint) {
	if s.onTouchMove != nil {
		s.onTouchMove(points)
	}
}

func (s *fakeSurface) touchEnd(points ...common.TouchPoint) {
	if s.onTouchEnd != nil {
		s.onTouchEnd(points)
	}
}

func (s *fakeSurface) keyDown(keyCode uint32) {
	if s.onKeyDown != nil {
		s.onKeyDown(keyCode)
	}
}

func almostEqual(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}

func vecAlmostEqual(a, b mgl64.Vec3, eps float64) bool {
	return a.Sub(b).Len() <= eps
}

// newTestControls builds a perspective camera at (0, 0, 10) orbiting the
// origin, bound to a fresh fake surface.
func newTestControls(t *testing.T, options ...OrbitControlsOption) (OrbitControls, *fakeSurface, camera.Camera) {
	t.Helper()
	cam := camera.NewPerspectiveCamera(
		camera.WithPosition(0, 0, 10),
		camera.WithAspect(800.0/600.0),
	)
	surface := newFakeSurface()
	ctrl, err := NewOrbitControls(cam, surface, options...)
	if err != nil {
		t.Fatalf("NewOrbitControls returned error: %v", err)
	}
	return ctrl, surface, cam
}

func TestNewOrbitControlsValidation(t *testing.T) {
	cam := camera.NewPerspectiveCamera()

	tests := []struct {
		name    string
		options []OrbitControlsOption
	}{
		{"inverted distance bounds", []OrbitControlsOption{WithDistanceBounds(10, 5)}},
		{"inverted zoom bounds", []OrbitControlsOption{WithZoomBounds(4, 2)}},
		{"polar below zero", []OrbitControlsOption{WithPolarAngleBounds(-0.1, math.Pi)}},
		{"polar above pi", []OrbitControlsOption{WithPolarAngleBounds(0, math.Pi+0.1)}},
		{"inverted polar bounds", []OrbitControlsOption{WithPolarAngleBounds(2, 1)}},
		{"inverted azimuth bounds", []OrbitControlsOption{WithAzimuthAngleBounds(1, -1)}},
		{"damping factor zero", []OrbitControlsOption{WithDamping(0)}},
		{"damping factor above one", []OrbitControlsOption{WithDamping(1.5)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			surface := newFakeSurface()
			if _, err := NewOrbitControls(cam, surface, tt.options...); err == nil {
				t.Fatalf("expected configuration error, got nil")
			}
			// A failed construction must leave the surface untouched.
			if surface.onMouseDown != nil || surface.onScroll != nil || surface.onKeyDown != nil {
				t.Errorf("failed construction registered callbacks on the surface")
			}
		})
	}

	if _, err := NewOrbitControls(nil, newFakeSurface()); err == nil {
		t.Errorf("expected error for nil camera")
	}
	if _, err := NewOrbitControls(cam, nil); err == nil {
		t.Errorf("expected error for nil surface")
	}
}

func TestUpdateWithoutInputReportsNoChange(t *testing.T) {
	ctrl, _, _ := newTestControls(t)
	if ctrl.Update() {
		t.Errorf("Update with no pending input reported a change")
	}
}

func TestRotateLeftQuarterTurn(t *testing.T) {
	ctrl, _, cam := newTestControls(t)

	ctrl.RotateLeft(math.Pi / 2)
	if !ctrl.Update() {
		t.Fatalf("Update after RotateLeft reported no change")
	}

	if !almostEqual(ctrl.GetAzimuthalAngle(), -math.Pi/2, 1e-9) {
		t.Errorf("azimuth = %v, want %v", ctrl.GetAzimuthalAngle(), -math.Pi/2)
	}
	if !vecAlmostEqual(cam.Position(), mgl64.Vec3{-10, 0, 0}, 1e-9) {
		t.Errorf("position = %v, want (-10, 0, 0)", cam.Position())
	}
	// Radius must be preserved by pure rotation.
	if !almostEqual(cam.Position().Len(), 10, 1e-9) {
		t.Errorf("orbit distance = %v, want 10", cam.Position().Len())
	}
}

func TestRotationStopsWithoutDamping(t *testing.T) {
	ctrl, _, _ := newTestControls(t)

	ctrl.RotateLeft(0.3)
	if !ctrl.Update() {
		t.Fatalf("first Update reported no change")
	}
	azimuth := ctrl.GetAzimuthalAngle()

	if ctrl.Update() {
		t.Errorf("second Update reported a change with damping disabled")
	}
	if !almostEqual(ctrl.GetAzimuthalAngle(), azimuth, 1e-12) {
		t.Errorf("azimuth drifted from %v to %v after input stopped", azimuth, ctrl.GetAzimuthalAngle())
	}
}

func TestDampingDecaysResidualMotion(t *testing.T) {
	ctrl, _, _ := newTestControls(t, WithDamping(0.25))

	ctrl.RotateLeft(0.1)

	prevAzimuth := ctrl.GetAzimuthalAngle()
	prevStep := math.Inf(1)
	converged := false
	for i := 0; i < 500; i++ {
		if !ctrl.Update() {
			converged = true
			break
		}
		azimuth := ctrl.GetAzimuthalAngle()
		step := prevAzimuth - azimuth
		if step < 0 {
			t.Fatalf("azimuth moved backwards on tick %d", i)
		}
		if step > prevStep+1e-12 {
			t.Fatalf("damped step grew on tick %d: %v > %v", i, step, prevStep)
		}
		prevStep = step
		prevAzimuth = azimuth
	}
	if !converged {
		t.Errorf("damped motion never converged to a no-change Update")
	}
}

func TestDollyClampsToMinDistance(t *testing.T) {
	cam := camera.NewPerspectiveCamera(camera.WithPosition(0, 0, 20))
	surface := newFakeSurface()
	ctrl, err := NewOrbitControls(cam, surface, WithDistanceBounds(5, 100))
	if err != nil {
		t.Fatalf("NewOrbitControls returned error: %v", err)
	}

	// A huge zoom-in request from distance 20 must stop exactly at the bound.
	ctrl.DollyIn(0.01)
	if !ctrl.Update() {
		t.Fatalf("Update after DollyIn reported no change")
	}
	if dist := cam.Position().Len(); !almostEqual(dist, 5, 1e-9) {
		t.Errorf("orbit distance = %v, want exactly 5", dist)
	}
}

func TestPolarAngleClamping(t *testing.T) {
	ctrl, _, _ := newTestControls(t, WithPolarAngleBounds(math.Pi/4, math.Pi/2))

	// Drive far past the upper pole; the bound must hold.
	ctrl.RotateUp(10)
	ctrl.Update()
	if !almostEqual(ctrl.GetPolarAngle(), math.Pi/4, 1e-9) {
		t.Errorf("polar angle = %v, want %v", ctrl.GetPolarAngle(), math.Pi/4)
	}

	ctrl.RotateUp(-10)
	ctrl.Update()
	if !almostEqual(ctrl.GetPolarAngle(), math.Pi/2, 1e-9) {
		t.Errorf("polar angle = %v, want %v", ctrl.GetPolarAngle(), math.Pi/2)
	}
}

func TestPolarAngleNeverReachesPoles(t *testing.T) {
	ctrl, _, _ := newTestControls(t)

	ctrl.RotateUp(100)
	ctrl.Update()
	if phi := ctrl.GetPolarAngle(); phi <= 0 {
		t.Errorf("polar angle %v reached the upper pole", phi)
	}

	ctrl.RotateUp(-200)
	ctrl.Update()
	if phi := ctrl.GetPolarAngle(); phi >= math.Pi {
		t.Errorf("polar angle %v reached the lower pole", phi)
	}
}

func TestAzimuthClamping(t *testing.T) {
	ctrl, _, _ := newTestControls(t, WithAzimuthAngleBounds(-1, 1))

	ctrl.RotateLeft(5)
	ctrl.Update()
	if !almostEqual(ctrl.GetAzimuthalAngle(), -1, 1e-9) {
		t.Errorf("azimuth = %v, want -1", ctrl.GetAzimuthalAngle())
	}

	ctrl.RotateLeft(-10)
	ctrl.Update()
	if !almostEqual(ctrl.GetAzimuthalAngle(), 1, 1e-9) {
		t.Errorf("azimuth = %v, want 1", ctrl.GetAzimuthalAngle())
	}
}

func TestSaveAndReset(t *testing.T) {
	ctrl, _, cam := newTestControls(t)

	ctrl.Save()
	savedPos := cam.Position()
	savedTarget := ctrl.Target()

	ctrl.RotateLeft(1.2)
	ctrl.RotateUp(0.4)
	ctrl.DollyIn(0.5)
	ctrl.PanLeft(3)
	ctrl.Update()
	if vecAlmostEqual(cam.Position(), savedPos, 1e-6) {
		t.Fatalf("camera did not move before Reset")
	}

	ctrl.Reset()
	if !vecAlmostEqual(cam.Position(), savedPos, 1e-9) {
		t.Errorf("position after Reset = %v, want %v", cam.Position(), savedPos)
	}
	if !vecAlmostEqual(ctrl.Target(), savedTarget, 1e-9) {
		t.Errorf("target after Reset = %v, want %v", ctrl.Target(), savedTarget)
	}
	if !almostEqual(cam.Zoom(), 1, 1e-12) {
		t.Errorf("zoom after Reset = %v, want 1", cam.Zoom())
	}
}

func TestMouseRotateDrag(t *testing.T) {
	ctrl, surface, cam := newTestControls(t)

	// A quarter-height horizontal drag is a quarter orbit.
	surface.mouseDown(common.MouseButtonLeft, 400, 300)
	surface.mouseMove(550, 300)
	surface.mouseUp(common.MouseButtonLeft, 550, 300)
	ctrl.Update()

	if !almostEqual(ctrl.GetAzimuthalAngle(), -math.Pi/2, 1e-9) {
		t.Errorf("azimuth = %v, want %v", ctrl.GetAzimuthalAngle(), -math.Pi/2)
	}
	if !vecAlmostEqual(cam.Position(), mgl64.Vec3{-10, 0, 0}, 1e-9) {
		t.Errorf("position = %v, want (-10, 0, 0)", cam.Position())
	}
}

func TestMouseDollyDrag(t *testing.T) {
	ctrl, surface, cam := newTestControls(t)

	surface.mouseDown(common.MouseButtonMiddle, 100, 100)
	surface.mouseMove(100, 130)
	surface.mouseUp(common.MouseButtonMiddle, 100, 130)
	ctrl.Update()

	// One downward move is one discrete dolly-in step.
	if dist := cam.Position().Len(); !almostEqual(dist, 10*0.95, 1e-9) {
		t.Errorf("orbit distance = %v, want %v", dist, 10*0.95)
	}
}

func TestMousePanDragMovesTargetAndCameraTogether(t *testing.T) {
	ctrl, surface, cam := newTestControls(t)

	surface.mouseDown(common.MouseButtonRight, 200, 200)
	surface.mouseMove(190, 200)
	surface.mouseUp(common.MouseButtonRight, 190, 200)
	ctrl.Update()

	target := ctrl.Target()
	if target.X() <= 0 {
		t.Errorf("target.X = %v, want > 0 after leftward pan drag", target.X())
	}
	if !almostEqual(target.Y(), 0, 1e-9) || !almostEqual(target.Z(), 0, 1e-9) {
		t.Errorf("pan drag leaked into Y/Z: target = %v", target)
	}
	// The camera translates with the target; the offset between them is fixed.
	if !vecAlmostEqual(cam.Position().Sub(target), mgl64.Vec3{0, 0, 10}, 1e-9) {
		t.Errorf("camera-target offset = %v, want (0, 0, 10)", cam.Position().Sub(target))
	}
}

func TestScrollWheelDolly(t *testing.T) {
	ctrl, surface, cam := newTestControls(t)

	surface.scroll(1)
	ctrl.Update()
	if dist := cam.Position().Len(); !almostEqual(dist, 10*0.95, 1e-9) {
		t.Errorf("distance after scroll up = %v, want %v", dist, 10*0.95)
	}

	surface.scroll(-1)
	ctrl.Update()
	if dist := cam.Position().Len(); !almostEqual(dist, 10, 1e-9) {
		t.Errorf("distance after scroll down = %v, want 10", dist)
	}
}

func TestMouseStateMachine(t *testing.T) {
	tests := []struct {
		name   string
		button common.MouseButton
		want   interactionState
	}{
		{"left rotates", common.MouseButtonLeft, stateRotate},
		{"middle dollies", common.MouseButtonMiddle, stateDolly},
		{"right pans", common.MouseButtonRight, statePan},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl, surface, _ := newTestControls(t)
			impl := ctrl.(*orbitControlsImpl)

			surface.mouseDown(tt.button, 10, 10)
			if impl.state != tt.want {
				t.Fatalf("state after down = %v, want %v", impl.state, tt.want)
			}

			// A second button while a gesture is active must be ignored.
			surface.mouseDown(common.MouseButtonLeft, 20, 20)
			if impl.state != tt.want {
				t.Errorf("state after second down = %v, want %v", impl.state, tt.want)
			}

			surface.mouseUp(tt.button, 10, 10)
			if impl.state != stateIdle {
				t.Errorf("state after up = %v, want idle", impl.state)
			}
		})
	}
}

func TestCustomMouseButtonMapping(t *testing.T) {
	ctrl, surface, _ := newTestControls(t,
		WithMouseButtons(ActionPan, ActionNone, ActionRotate),
	)
	impl := ctrl.(*orbitControlsImpl)

	surface.mouseDown(common.MouseButtonLeft, 10, 10)
	if impl.state != statePan {
		t.Errorf("left button state = %v, want pan", impl.state)
	}
	surface.mouseUp(common.MouseButtonLeft, 10, 10)

	surface.mouseDown(common.MouseButtonMiddle, 10, 10)
	if impl.state != stateIdle {
		t.Errorf("unmapped middle button state = %v, want idle", impl.state)
	}

	surface.mouseDown(common.MouseButtonRight, 10, 10)
	if impl.state != stateRotate {
		t.Errorf("right button state = %v, want rotate", impl.state)
	}
}

func TestDisabledCapabilityKeepsIdle(t *testing.T) {
	ctrl, surface, _ := newTestControls(t, WithEnablePan(false))
	impl := ctrl.(*orbitControlsImpl)

	surface.mouseDown(common.MouseButtonRight, 100, 100)
	if impl.state != stateIdle {
		t.Fatalf("state = %v, want idle with pan disabled", impl.state)
	}
	surface.mouseMove(150, 100)
	if ctrl.Update() {
		t.Errorf("Update reported a change from a disabled gesture")
	}
}

func TestDisabledControlsIgnoreAllInput(t *testing.T) {
	ctrl, surface, _ := newTestControls(t)
	ctrl.SetEnabled(false)

	surface.mouseDown(common.MouseButtonLeft, 100, 100)
	surface.mouseMove(400, 100)
	surface.scroll(5)
	surface.keyDown(common.KeyUp)
	if ctrl.Update() {
		t.Errorf("Update reported a change while controls were disabled")
	}
}

func TestTouchRotate(t *testing.T) {
	ctrl, surface, _ := newTestControls(t)
	impl := ctrl.(*orbitControlsImpl)

	surface.touchStart(common.TouchPoint{ID: 0, X: 400, Y: 300})
	if impl.state != stateTouchRotate {
		t.Fatalf("state = %v, want touch-rotate", impl.state)
	}
	surface.touchMove(common.TouchPoint{ID: 0, X: 550, Y: 300})
	surface.touchEnd()
	ctrl.Update()

	if !almostEqual(ctrl.GetAzimuthalAngle(), -math.Pi/2, 1e-9) {
		t.Errorf("azimuth = %v, want %v", ctrl.GetAzimuthalAngle(), -math.Pi/2)
	}
	if impl.state != stateIdle {
		t.Errorf("state after touch end = %v, want idle", impl.state)
	}
}

func TestPinchZoom(t *testing.T) {
	ctrl, surface, cam := newTestControls(t)

	// Fingers spreading from 100px to 200px apart halves the distance.
	surface.touchStart(
		common.TouchPoint{ID: 0, X: 350, Y: 300},
		common.TouchPoint{ID: 1, X: 450, Y: 300},
	)
	surface.touchMove(
		common.TouchPoint{ID: 0, X: 300, Y: 300},
		common.TouchPoint{ID: 1, X: 500, Y: 300},
	)
	surface.touchEnd()
	ctrl.Update()

	if dist := cam.Position().Len(); !almostEqual(dist, 5, 1e-9) {
		t.Errorf("orbit distance = %v, want 5", dist)
	}
}

func TestTwoFingerZeroMotionIsNoOp(t *testing.T) {
	ctrl, surface, _ := newTestControls(t)

	points := []common.TouchPoint{
		{ID: 0, X: 350, Y: 300},
		{ID: 1, X: 450, Y: 300},
	}
	surface.touchStart(points...)
	surface.touchMove(points...)
	if ctrl.Update() {
		t.Errorf("Update reported a change from a motionless two-finger gesture")
	}
}

func TestTwoFingerPanOnly(t *testing.T) {
	ctrl, surface, cam := newTestControls(t)

	// Constant pinch distance, translated midpoint: pure pan, no dolly.
	surface.touchStart(
		common.TouchPoint{ID: 0, X: 350, Y: 300},
		common.TouchPoint{ID: 1, X: 450, Y: 300},
	)
	surface.touchMove(
		common.TouchPoint{ID: 0, X: 330, Y: 300},
		common.TouchPoint{ID: 1, X: 430, Y: 300},
	)
	ctrl.Update()

	target := ctrl.Target()
	if target.X() <= 0 {
		t.Errorf("target.X = %v, want > 0 after two-finger pan", target.X())
	}
	// Distance from camera to target must be unchanged.
	if dist := cam.Position().Sub(target).Len(); !almostEqual(dist, 10, 1e-9) {
		t.Errorf("orbit distance = %v, want 10", dist)
	}
}

func TestTransientTouchAnomalyIsNoOp(t *testing.T) {
	ctrl, surface, _ := newTestControls(t)

	surface.touchStart(
		common.TouchPoint{ID: 0, X: 350, Y: 300},
		common.TouchPoint{ID: 1, X: 450, Y: 300},
	)
	// A move burst with a missing contact must not corrupt the gesture.
	surface.touchMove(common.TouchPoint{ID: 0, X: 350, Y: 300})
	if ctrl.Update() {
		t.Errorf("Update reported a change from a degenerate touch burst")
	}
}

func TestKeyboardPanBypassesStateMachine(t *testing.T) {
	ctrl, surface, _ := newTestControls(t)
	impl := ctrl.(*orbitControlsImpl)

	surface.keyDown(common.KeyUp)
	if impl.state != stateIdle {
		t.Fatalf("state after key press = %v, want idle", impl.state)
	}
	ctrl.Update()

	target := ctrl.Target()
	if target.Y() <= 0 {
		t.Errorf("target.Y = %v, want > 0 after up-arrow pan", target.Y())
	}

	surface.keyDown(common.KeyDown)
	ctrl.Update()
	if !vecAlmostEqual(ctrl.Target(), mgl64.Vec3{}, 1e-9) {
		t.Errorf("target = %v, want origin after opposite key press", ctrl.Target())
	}
}

func TestKeyboardPanRespectsEnablePan(t *testing.T) {
	ctrl, surface, _ := newTestControls(t, WithEnablePan(false))

	surface.keyDown(common.KeyLeft)
	ctrl.Update()
	if !vecAlmostEqual(ctrl.Target(), mgl64.Vec3{}, 1e-12) {
		t.Errorf("target moved with panning disabled: %v", ctrl.Target())
	}
}

func TestAutoRotate(t *testing.T) {
	ctrl, _, _ := newTestControls(t, WithAutoRotate(2.0))

	for i := 0; i < 60; i++ {
		ctrl.Update()
	}

	// One second at 60 ticks/s and speed 2.0 is 1/30 of a full orbit.
	want := -2 * math.Pi / 30
	if !almostEqual(ctrl.GetAzimuthalAngle(), want, 1e-9) {
		t.Errorf("azimuth after 60 ticks = %v, want %v", ctrl.GetAzimuthalAngle(), want)
	}
}

func TestAutoRotatePausesDuringGesture(t *testing.T) {
	ctrl, surface, _ := newTestControls(t, WithAutoRotate(2.0))

	surface.mouseDown(common.MouseButtonLeft, 400, 300)
	if ctrl.Update() {
		t.Errorf("Update reported a change while a motionless gesture held auto-rotation")
	}
	if !almostEqual(ctrl.GetAzimuthalAngle(), 0, 1e-12) {
		t.Errorf("azimuth advanced during an active gesture: %v", ctrl.GetAzimuthalAngle())
	}
}

func TestOrthographicDollyChangesZoomNotRadius(t *testing.T) {
	cam := camera.NewOrthographicCamera(
		camera.WithPosition(0, 0, 10),
		camera.WithExtents(-4, 4, 3, -3),
	)
	surface := newFakeSurface()
	ctrl, err := NewOrbitControls(cam, surface)
	if err != nil {
		t.Fatalf("NewOrbitControls returned error: %v", err)
	}

	surface.scroll(1)
	if !ctrl.Update() {
		t.Fatalf("Update after ortho dolly reported no change")
	}

	if !almostEqual(cam.Zoom(), 1/0.95, 1e-9) {
		t.Errorf("zoom = %v, want %v", cam.Zoom(), 1/0.95)
	}
	if dist := cam.Position().Len(); !almostEqual(dist, 10, 1e-9) {
		t.Errorf("orbit distance = %v, want unchanged 10", dist)
	}
}

func TestOrthographicZoomClamp(t *testing.T) {
	cam := camera.NewOrthographicCamera(camera.WithPosition(0, 0, 10))
	surface := newFakeSurface()
	ctrl, err := NewOrbitControls(cam, surface, WithZoomBounds(0.5, 2))
	if err != nil {
		t.Fatalf("NewOrbitControls returned error: %v", err)
	}

	ctrl.DollyIn(0.01)
	ctrl.Update()
	if !almostEqual(cam.Zoom(), 2, 1e-9) {
		t.Errorf("zoom = %v, want clamped to 2", cam.Zoom())
	}

	ctrl.DollyOut(0.01)
	ctrl.Update()
	if !almostEqual(cam.Zoom(), 0.5, 1e-9) {
		t.Errorf("zoom = %v, want clamped to 0.5", cam.Zoom())
	}
}

func TestTiltedUpAxisOrbitsInUpPlane(t *testing.T) {
	// With +Z up the orbit plane at polar pi/2 is the Z=0 plane.
	cam := camera.NewPerspectiveCamera(
		camera.WithPosition(0, 10, 0),
		camera.WithUp(0, 0, 1),
	)
	surface := newFakeSurface()
	ctrl, err := NewOrbitControls(cam, surface)
	if err != nil {
		t.Fatalf("NewOrbitControls returned error: %v", err)
	}

	ctrl.RotateLeft(math.Pi / 2)
	ctrl.Update()

	pos := cam.Position()
	if !almostEqual(pos.Z(), 0, 1e-9) {
		t.Errorf("position left the orbit plane: Z = %v", pos.Z())
	}
	if !almostEqual(pos.Len(), 10, 1e-9) {
		t.Errorf("orbit distance = %v, want 10", pos.Len())
	}
}

func TestExternalRepositionIsRespected(t *testing.T) {
	ctrl, _, cam := newTestControls(t)
	ctrl.Update()

	// Hosts may move the camera directly between ticks; the next Update must
	// rebuild its orbit state from the live position rather than overwrite it.
	cam.SetPosition(mgl64.Vec3{0, 0, 25})
	if !ctrl.Update() {
		t.Fatalf("Update did not report the external reposition")
	}
	if dist := cam.Position().Len(); !almostEqual(dist, 25, 1e-9) {
		t.Errorf("orbit distance = %v, want 25", dist)
	}
}

func TestDisposeUnregistersAndIsIdempotent(t *testing.T) {
	ctrl, surface, _ := newTestControls(t)

	if surface.onMouseDown == nil || surface.onScroll == nil || surface.onKeyDown == nil {
		t.Fatalf("construction did not register surface callbacks")
	}

	ctrl.Dispose()
	ctrl.Dispose()

	if surface.onMouseDown != nil || surface.onMouseUp != nil || surface.onMouseMove != nil ||
		surface.onScroll != nil || surface.onTouchStart != nil || surface.onTouchMove != nil ||
		surface.onTouchEnd != nil || surface.onKeyDown != nil {
		t.Errorf("Dispose left callbacks registered on the surface")
	}

	// Update stays callable after Dispose.
	if ctrl.Update() {
		t.Errorf("Update reported a change after Dispose with no pending input")
	}
}

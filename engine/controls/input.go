package controls

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/Carmen-Shannon/orbit-go/common"
)

// Input normalization: every handler translates device coordinates into
// rotate/pan/dolly deltas and returns immediately. Nothing below mutates the
// camera or the target; that happens only in update.

func (oc *orbitControlsImpl) onMouseDown(button common.MouseButton, x, y float64) {
	oc.mu.Lock()
	defer oc.mu.Unlock()
	if !oc.enabled || oc.state != stateIdle {
		return
	}
	switch oc.mouseActions[button] {
	case ActionRotate:
		if !oc.enableRotate {
			return
		}
		oc.rotateStart = mgl64.Vec2{x, y}
		oc.state = stateRotate
	case ActionDolly:
		if !oc.enableZoom {
			return
		}
		oc.dollyPrevY = y
		oc.state = stateDolly
	case ActionPan:
		if !oc.enablePan {
			return
		}
		oc.panStart = mgl64.Vec2{x, y}
		oc.state = statePan
	}
}

func (oc *orbitControlsImpl) onMouseMove(x, y float64) {
	oc.mu.Lock()
	defer oc.mu.Unlock()
	if !oc.enabled {
		return
	}
	switch oc.state {
	case stateRotate:
		oc.handleMoveRotate(mgl64.Vec2{x, y})
	case stateDolly:
		if y > oc.dollyPrevY {
			oc.dollyIn(oc.zoomScale())
		} else if y < oc.dollyPrevY {
			oc.dollyOut(oc.zoomScale())
		}
		oc.dollyPrevY = y
	case statePan:
		end := mgl64.Vec2{x, y}
		delta := end.Sub(oc.panStart).Mul(oc.panSpeed)
		oc.pan(delta.X(), delta.Y())
		oc.panStart = end
	}
}

func (oc *orbitControlsImpl) onMouseUp(_ common.MouseButton, _, _ float64) {
	oc.mu.Lock()
	defer oc.mu.Unlock()
	switch oc.state {
	case stateRotate, stateDolly, statePan:
		oc.state = stateIdle
	}
}

func (oc *orbitControlsImpl) onScroll(delta float64) {
	oc.mu.Lock()
	defer oc.mu.Unlock()
	if !oc.enabled || !oc.enableZoom {
		return
	}
	// One discrete step per wheel event; wheel deltas are already frame-scale.
	if delta > 0 {
		oc.dollyIn(oc.zoomScale())
	} else if delta < 0 {
		oc.dollyOut(oc.zoomScale())
	}
}

// handleMoveRotate converts a pointer move into angular deltas. A full drag
// across the surface height is one full orbit, scaled by rotateSpeed.
// Caller must hold the mutex.
func (oc *orbitControlsImpl) handleMoveRotate(end mgl64.Vec2) {
	h := float64(oc.surface.Height())
	if h <= 0 {
		return
	}
	delta := end.Sub(oc.rotateStart).Mul(oc.rotateSpeed)
	oc.rotateLeft(2 * math.Pi * delta.X() / h)
	oc.rotateUp(2 * math.Pi * delta.Y() / h)
	oc.rotateStart = end
}

// --- touch ---

func (oc *orbitControlsImpl) onTouchStart(points []common.TouchPoint) {
	oc.mu.Lock()
	defer oc.mu.Unlock()
	if !oc.enabled || oc.state != stateIdle {
		return
	}
	switch len(points) {
	case 1:
		if !oc.enableRotate {
			return
		}
		oc.rotateStart = mgl64.Vec2{points[0].X, points[0].Y}
		oc.state = stateTouchRotate
	case 2:
		if !oc.enableZoom && !oc.enablePan {
			return
		}
		oc.pinchDist = pinchDistance(points)
		oc.panStart = pinchMidpoint(points)
		oc.state = stateTouchDollyPan
	}
}

func (oc *orbitControlsImpl) onTouchMove(points []common.TouchPoint) {
	oc.mu.Lock()
	defer oc.mu.Unlock()
	if !oc.enabled {
		return
	}
	switch oc.state {
	case stateTouchRotate:
		if len(points) < 1 {
			return
		}
		oc.handleMoveRotate(mgl64.Vec2{points[0].X, points[0].Y})
	case stateTouchDollyPan:
		// Both outputs come from the same two-finger gesture in the same tick.
		if len(points) < 2 {
			// Transient anomaly; treat this tick as a no-op.
			return
		}
		if oc.enableZoom {
			d := pinchDistance(points)
			if oc.pinchDist > 0 && d > 0 {
				oc.dollyIn(math.Pow(oc.pinchDist/d, oc.zoomSpeed))
			}
			oc.pinchDist = d
		}
		if oc.enablePan {
			mid := pinchMidpoint(points)
			delta := mid.Sub(oc.panStart).Mul(oc.panSpeed)
			oc.pan(delta.X(), delta.Y())
			oc.panStart = mid
		}
	}
}

func (oc *orbitControlsImpl) onTouchEnd(_ []common.TouchPoint) {
	oc.mu.Lock()
	defer oc.mu.Unlock()
	switch oc.state {
	case stateTouchRotate, stateTouchPan, stateTouchDollyPan, stateTouchDollyRotate:
		oc.state = stateIdle
	}
}

// --- keyboard ---

// onKeyDown pans one discrete keyPanSpeed step per arrow press. Key panning
// bypasses the gesture state machine: each press is a complete, atomic pan.
func (oc *orbitControlsImpl) onKeyDown(keyCode uint32) {
	oc.mu.Lock()
	defer oc.mu.Unlock()
	if !oc.enabled || !oc.enableKeys || !oc.enablePan {
		return
	}
	switch keyCode {
	case common.KeyUp:
		oc.pan(0, oc.keyPanSpeed)
	case common.KeyDown:
		oc.pan(0, -oc.keyPanSpeed)
	case common.KeyLeft:
		oc.pan(oc.keyPanSpeed, 0)
	case common.KeyRight:
		oc.pan(-oc.keyPanSpeed, 0)
	}
}

func pinchDistance(points []common.TouchPoint) float64 {
	dx := points[0].X - points[1].X
	dy := points[0].Y - points[1].Y
	return math.Sqrt(dx*dx + dy*dy)
}

func pinchMidpoint(points []common.TouchPoint) mgl64.Vec2 {
	return mgl64.Vec2{
		(points[0].X + points[1].X) / 2,
		(points[0].Y + points[1].Y) / 2,
	}
}

package controls

import "github.com/Carmen-Shannon/orbit-go/common"

// Action is the semantic gesture a pointer button maps to.
type Action int

const (
	// ActionNone ignores the button entirely.
	ActionNone Action = iota
	// ActionRotate orbits the camera around the target.
	ActionRotate
	// ActionDolly moves the camera toward or away from the target.
	ActionDolly
	// ActionPan translates the target in the view plane.
	ActionPan
)

// interactionState identifies the active gesture. Exactly one value is active
// at a time; transitions happen only on device-down/device-up edges.
type interactionState int

const (
	stateIdle interactionState = iota
	stateRotate
	stateDolly
	statePan
	stateTouchRotate
	stateTouchPan
	stateTouchDollyPan
	stateTouchDollyRotate
)

// String returns a short name for logging and test failure messages.
func (s interactionState) String() string {
	switch s {
	case stateIdle:
		return "idle"
	case stateRotate:
		return "rotate"
	case stateDolly:
		return "dolly"
	case statePan:
		return "pan"
	case stateTouchRotate:
		return "touch-rotate"
	case stateTouchPan:
		return "touch-pan"
	case stateTouchDollyPan:
		return "touch-dolly-pan"
	case stateTouchDollyRotate:
		return "touch-dolly-rotate"
	default:
		return "unknown"
	}
}

// defaultMouseActions is the default button-to-gesture mapping:
// left rotates, middle dollies, right pans.
func defaultMouseActions() map[common.MouseButton]Action {
	return map[common.MouseButton]Action{
		common.MouseButtonLeft:   ActionRotate,
		common.MouseButtonMiddle: ActionDolly,
		common.MouseButtonRight:  ActionPan,
	}
}

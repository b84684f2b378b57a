// package common contains common types that are used throughout this module. They are not interface-wrapped structs, just plain values that express
// commonly used input and math primitives shared between the window layer and the camera controls.
package common

// MouseButton identifies a pointer button in input callbacks.
// Values match GLFW mouse button codes.
// Reference: https://pkg.go.dev/github.com/go-gl/glfw/v3.3/glfw#MouseButton
type MouseButton int

const (
	// MouseButtonLeft is the primary pointer button.
	MouseButtonLeft MouseButton = 0
	// MouseButtonRight is the secondary pointer button.
	MouseButtonRight MouseButton = 1
	// MouseButtonMiddle is the wheel/middle pointer button.
	MouseButtonMiddle MouseButton = 2
)

// TouchPoint is a single active touch contact in surface-local pixel coordinates.
// Touch callbacks deliver the full set of active contacts on every event, most
// recent positions first-to-last in contact order.
type TouchPoint struct {
	// ID distinguishes contacts across a gesture; stable for the lifetime of the contact.
	ID int
	// X is the horizontal position in pixels from the surface's left edge.
	X float64
	// Y is the vertical position in pixels from the surface's top edge.
	Y float64
}

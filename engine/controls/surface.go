package controls

import "github.com/Carmen-Shannon/orbit-go/common"

// Surface is the input surface the controls attach to. It mirrors the window
// package's callback registration style so a window.Window satisfies it
// directly; tests use an in-memory fake.
//
// Passing nil to any Set*Callback unregisters the previous callback. The
// controls register their handlers at construction and unregister them on
// Dispose. All callbacks fire on the thread that owns the surface.
type Surface interface {
	// Width returns the surface width in pixels.
	//
	// Returns:
	//   - int: width in pixels
	Width() int

	// Height returns the surface height in pixels.
	//
	// Returns:
	//   - int: height in pixels
	Height() int

	// SetMouseDownCallback sets the callback for pointer button press.
	//
	// Parameters:
	//   - callback: function receiving the button and cursor position in pixels
	SetMouseDownCallback(callback func(button common.MouseButton, x, y float64))

	// SetMouseUpCallback sets the callback for pointer button release.
	//
	// Parameters:
	//   - callback: function receiving the button and cursor position in pixels
	SetMouseUpCallback(callback func(button common.MouseButton, x, y float64))

	// SetMouseMoveCallback sets the callback for pointer movement.
	//
	// Parameters:
	//   - callback: function receiving the cursor position in pixels
	SetMouseMoveCallback(callback func(x, y float64))

	// SetScrollCallback sets the callback for wheel events.
	//
	// Parameters:
	//   - callback: function receiving the scroll delta (positive = up/zoom in)
	SetScrollCallback(callback func(delta float64))

	// SetTouchStartCallback sets the callback for a new touch contact.
	// The callback receives every active contact, including the new one.
	//
	// Parameters:
	//   - callback: function receiving all active touch points
	SetTouchStartCallback(callback func(points []common.TouchPoint))

	// SetTouchMoveCallback sets the callback for touch movement.
	//
	// Parameters:
	//   - callback: function receiving all active touch points
	SetTouchMoveCallback(callback func(points []common.TouchPoint))

	// SetTouchEndCallback sets the callback for a lifted touch contact.
	// The callback receives the contacts that remain active.
	//
	// Parameters:
	//   - callback: function receiving the remaining touch points
	SetTouchEndCallback(callback func(points []common.TouchPoint))

	// SetKeyDownCallback sets the callback for key press events.
	//
	// Parameters:
	//   - callback: function receiving the virtual key code
	SetKeyDownCallback(callback func(keyCode uint32))
}

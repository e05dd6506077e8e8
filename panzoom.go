package panzoom

// Vec2 is a 2D vector used for positions and deltas throughout the API.
type Vec2 struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// ContactID identifies one touch contact for as long as it stays on the
// surface. Values are assigned by the host (Ebitengine TouchID, DOM
// Touch.identifier) and are opaque to the tracker.
type ContactID int

// Contact is an active touch point with its last known surface-local position.
type Contact struct {
	ID   ContactID
	X, Y float64
}

// TouchPoint is a raw contact as delivered by the host, in page coordinates.
type TouchPoint struct {
	ID           ContactID
	PageX, PageY float64
}

// TouchEvent carries one touch-start, touch-move, touch-end or touch-cancel
// notification.
type TouchEvent struct {
	// Changed lists the contacts that went down, moved, or lifted.
	Changed []TouchPoint
	// Active lists every contact still on the surface after this event.
	// A nil Active makes the tracker derive the list from its own state.
	Active []TouchPoint
	// PreventDefault suppresses the platform's default scroll/zoom handling.
	// Optional.
	PreventDefault func()
}

// ButtonMask is a bitmask of held pointer buttons.
type ButtonMask uint8

const (
	ButtonPrimary   ButtonMask = 1 << iota // left mouse button / pen tip
	ButtonSecondary                        // right mouse button
	ButtonMiddle                           // middle mouse button (wheel click)
)

// PointerEvent is a mouse/pen event in page coordinates. MovementX and
// MovementY hold the movement since the previous pointer event.
type PointerEvent struct {
	PageX, PageY         float64
	MovementX, MovementY float64
	Buttons              ButtonMask
}

// WheelEvent is a scroll-wheel event. Delta is positive for wheel-up
// (zoom in) and negative for wheel-down; only its sign is used.
type WheelEvent struct {
	PageX, PageY float64
	Delta        float64
	// PreventDefault suppresses the platform's default scrolling. Optional.
	PreventDefault func()
}

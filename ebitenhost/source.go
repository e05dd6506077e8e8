package ebitenhost

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/phanxgames/panzoom"
)

// defaultClickSlop is how far the cursor may travel between press and
// release and still count as a click, in pixels.
const defaultClickSlop = 4.0

// touchFrame is the touch state polled for one tick.
type touchFrame struct {
	active   []panzoom.TouchPoint
	pressed  []panzoom.TouchPoint
	released []panzoom.TouchPoint
}

// mouseFrame is the mouse state polled for one tick.
type mouseFrame struct {
	x, y         float64
	left         bool
	justPressed  bool
	justReleased bool
	wheel        float64
}

// Source polls Ebitengine input once per tick and feeds it to a Tracker as
// touch-start/move/end, drag, tap and wheel events.
type Source struct {
	tracker   *panzoom.Tracker
	clickSlop float64

	prevTouches map[panzoom.ContactID]panzoom.TouchPoint

	mouseDown    bool
	lastX, lastY float64
	travel       float64

	idBuf       []ebiten.TouchID
	pressedBuf  []ebiten.TouchID
	releasedBuf []ebiten.TouchID
	frame       touchFrame
}

// NewSource creates a Source feeding t. A non-positive clickSlop uses the
// 4px default.
func NewSource(t *panzoom.Tracker, clickSlop float64) *Source {
	if clickSlop <= 0 {
		clickSlop = defaultClickSlop
	}
	return &Source{
		tracker:     t,
		clickSlop:   clickSlop,
		prevTouches: make(map[panzoom.ContactID]panzoom.TouchPoint),
	}
}

// Poll reads the current Ebitengine input state and emits events.
// Call it once from ebiten.Game.Update.
func (s *Source) Poll() {
	s.applyTouches(s.readTouches())

	mx, my := ebiten.CursorPosition()
	_, wy := ebiten.Wheel()
	s.applyMouse(mouseFrame{
		x:            float64(mx),
		y:            float64(my),
		left:         ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		justPressed:  inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		justReleased: inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft),
		wheel:        wy,
	})
}

func (s *Source) readTouches() touchFrame {
	s.idBuf = ebiten.AppendTouchIDs(s.idBuf[:0])
	s.pressedBuf = inpututil.AppendJustPressedTouchIDs(s.pressedBuf[:0])
	s.releasedBuf = inpututil.AppendJustReleasedTouchIDs(s.releasedBuf[:0])

	f := &s.frame
	f.active = make([]panzoom.TouchPoint, 0, len(s.idBuf))
	for _, id := range s.idBuf {
		x, y := ebiten.TouchPosition(id)
		f.active = append(f.active, touchPoint(id, x, y))
	}
	f.pressed = f.pressed[:0]
	for _, id := range s.pressedBuf {
		x, y := ebiten.TouchPosition(id)
		f.pressed = append(f.pressed, touchPoint(id, x, y))
	}
	f.released = f.released[:0]
	for _, id := range s.releasedBuf {
		x, y := inpututil.TouchPositionInPreviousTick(id)
		f.released = append(f.released, touchPoint(id, x, y))
	}
	return *f
}

func touchPoint(id ebiten.TouchID, x, y int) panzoom.TouchPoint {
	return panzoom.TouchPoint{ID: panzoom.ContactID(id), PageX: float64(x), PageY: float64(y)}
}

// applyTouches turns one tick of touch state into tracker events: lifts
// first, then new contacts, then a move if any held contact changed position.
func (s *Source) applyTouches(f touchFrame) {
	if len(f.released) > 0 {
		s.tracker.TouchEnd(panzoom.TouchEvent{Changed: f.released, Active: f.active})
	}
	if len(f.pressed) > 0 {
		s.tracker.TouchStart(panzoom.TouchEvent{Changed: f.pressed, Active: f.active})
	}

	var moved []panzoom.TouchPoint
	for _, p := range f.active {
		if prev, ok := s.prevTouches[p.ID]; ok && (prev.PageX != p.PageX || prev.PageY != p.PageY) {
			moved = append(moved, p)
		}
	}
	if len(moved) > 0 {
		s.tracker.TouchMove(panzoom.TouchEvent{Changed: moved, Active: f.active})
	}

	clear(s.prevTouches)
	for _, p := range f.active {
		s.prevTouches[p.ID] = p
	}
}

// applyMouse turns one tick of mouse state into drag, tap and wheel events.
// A press followed by a release within the click slop is a tap.
func (s *Source) applyMouse(f mouseFrame) {
	switch {
	case f.justPressed:
		s.mouseDown = true
		s.travel = 0
	case f.left && s.mouseDown:
		dx, dy := f.x-s.lastX, f.y-s.lastY
		if dx != 0 || dy != 0 {
			s.travel += math.Hypot(dx, dy)
			s.tracker.PrimaryDrag(panzoom.PointerEvent{
				PageX: f.x, PageY: f.y,
				MovementX: dx, MovementY: dy,
				Buttons: panzoom.ButtonPrimary,
			})
		}
	case f.justReleased && s.mouseDown:
		s.mouseDown = false
		if s.travel <= s.clickSlop {
			s.tracker.PointerTap(panzoom.PointerEvent{PageX: f.x, PageY: f.y})
		}
	}
	s.lastX, s.lastY = f.x, f.y

	if f.wheel != 0 {
		s.tracker.Wheel(panzoom.WheelEvent{PageX: f.x, PageY: f.y, Delta: f.wheel})
	}
}

// Reset forgets all polled state, e.g. when the window loses focus.
// Contacts still held are reported to the tracker as cancelled.
func (s *Source) Reset() {
	if len(s.prevTouches) > 0 {
		cancelled := make([]panzoom.TouchPoint, 0, len(s.prevTouches))
		for _, p := range s.prevTouches {
			cancelled = append(cancelled, p)
		}
		s.tracker.TouchCancel(panzoom.TouchEvent{Changed: cancelled, Active: []panzoom.TouchPoint{}})
		clear(s.prevTouches)
	}
	s.mouseDown = false
	s.travel = 0
}

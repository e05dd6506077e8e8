package panzoom

import (
	"encoding/json"
	"errors"
	"fmt"
)

var (
	// ErrEmptyScript is returned by LoadScript for a script without steps.
	ErrEmptyScript = errors.New("script has no steps")
	// ErrUnknownStep is returned by LoadScript for an unrecognized action.
	ErrUnknownStep = errors.New("unknown step action")
)

// scriptContact is one contact in a touch step, in page coordinates.
type scriptContact struct {
	ID ContactID `json:"id"`
	X  float64   `json:"x"`
	Y  float64   `json:"y"`
}

// scriptStep is a single action in a gesture script.
type scriptStep struct {
	Action string  `json:"action"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	DX     float64 `json:"dx,omitempty"`
	DY     float64 `json:"dy,omitempty"`
	Delta  float64 `json:"delta,omitempty"`
	// Changed and Active map to TouchEvent. An omitted "active" lets the
	// tracker derive the active set; an empty list means no contacts remain.
	Changed []scriptContact `json:"changed,omitempty"`
	Active  []scriptContact `json:"active"`
}

type scriptFile struct {
	Steps []scriptStep `json:"steps"`
}

// Script is a recorded sequence of input events that can be replayed into
// a Tracker. Scripts are JSON:
//
//	{"steps": [
//	  {"action": "offset", "x": 0, "y": 40},
//	  {"action": "touchstart", "changed": [{"id": 1, "x": 0, "y": 40}]},
//	  {"action": "touchmove", "changed": [{"id": 1, "x": 5, "y": 40}]},
//	  {"action": "touchend", "changed": [{"id": 1, "x": 5, "y": 40}], "active": []},
//	  {"action": "wheel", "x": 10, "y": 10, "delta": 120}
//	]}
//
// Actions: offset, touchstart, touchmove, touchend, touchcancel,
// drag (primary button held, dx/dy movement), hover (no button),
// tap, wheel.
type Script struct {
	steps []scriptStep
}

// LoadScript parses a JSON gesture script.
func LoadScript(jsonData []byte) (*Script, error) {
	var f scriptFile
	if err := json.Unmarshal(jsonData, &f); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	if len(f.Steps) == 0 {
		return nil, fmt.Errorf("parse script: %w", ErrEmptyScript)
	}
	for i, st := range f.Steps {
		switch st.Action {
		case "offset", "touchstart", "touchmove", "touchend", "touchcancel",
			"drag", "hover", "tap", "wheel":
		default:
			return nil, fmt.Errorf("parse script: step %d: %w %q", i, ErrUnknownStep, st.Action)
		}
	}
	return &Script{steps: f.Steps}, nil
}

// Len returns the number of steps.
func (s *Script) Len() int {
	return len(s.steps)
}

// Replay feeds every step into t in order.
func (s *Script) Replay(t *Tracker) {
	for _, st := range s.steps {
		s.apply(t, st)
	}
}

func (s *Script) apply(t *Tracker, st scriptStep) {
	switch st.Action {
	case "offset":
		t.SetSurfaceOffset(st.X, st.Y)
	case "touchstart":
		t.TouchStart(st.touchEvent())
	case "touchmove":
		t.TouchMove(st.touchEvent())
	case "touchend":
		t.TouchEnd(st.touchEvent())
	case "touchcancel":
		t.TouchCancel(st.touchEvent())
	case "drag":
		t.PrimaryDrag(PointerEvent{PageX: st.X, PageY: st.Y, MovementX: st.DX, MovementY: st.DY, Buttons: ButtonPrimary})
	case "hover":
		t.PrimaryDrag(PointerEvent{PageX: st.X, PageY: st.Y, MovementX: st.DX, MovementY: st.DY})
	case "tap":
		t.PointerTap(PointerEvent{PageX: st.X, PageY: st.Y})
	case "wheel":
		t.Wheel(WheelEvent{PageX: st.X, PageY: st.Y, Delta: st.Delta})
	}
}

func (st scriptStep) touchEvent() TouchEvent {
	e := TouchEvent{Changed: touchPoints(st.Changed)}
	if st.Active != nil {
		e.Active = touchPoints(st.Active)
		if e.Active == nil {
			e.Active = []TouchPoint{}
		}
	}
	return e
}

func touchPoints(cs []scriptContact) []TouchPoint {
	if len(cs) == 0 {
		return nil
	}
	out := make([]TouchPoint, len(cs))
	for i, c := range cs {
		out[i] = TouchPoint{ID: c.ID, PageX: c.X, PageY: c.Y}
	}
	return out
}

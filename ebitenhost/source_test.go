package ebitenhost

import (
	"io"
	"log/slog"
	"testing"

	"github.com/phanxgames/panzoom"
)

func newTestSource() (*Source, *panzoom.Recorder, *panzoom.Tracker) {
	rec := &panzoom.Recorder{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	tr := panzoom.NewTracker(rec, panzoom.WithLogger(logger))
	return NewSource(tr, 0), rec, tr
}

func pt(id int, x, y float64) panzoom.TouchPoint {
	return panzoom.TouchPoint{ID: panzoom.ContactID(id), PageX: x, PageY: y}
}

func commandTypes(cmds []panzoom.Command) []panzoom.CommandType {
	out := make([]panzoom.CommandType, len(cmds))
	for i, c := range cmds {
		out[i] = c.Type
	}
	return out
}

func TestSourcePinchFrames(t *testing.T) {
	s, rec, tr := newTestSource()

	// Tick 1: both fingers land.
	a, b := pt(1, 0, 0), pt(2, 10, 0)
	s.applyTouches(touchFrame{
		active:  []panzoom.TouchPoint{a, b},
		pressed: []panzoom.TouchPoint{a, b},
	})
	if tr.ContactCount() != 2 {
		t.Fatalf("ContactCount = %d, want 2", tr.ContactCount())
	}
	if len(rec.Commands) != 0 {
		t.Fatalf("landing should not emit, got %v", rec.Commands)
	}

	// Tick 2: nothing moved.
	s.applyTouches(touchFrame{active: []panzoom.TouchPoint{a, b}})
	if len(rec.Commands) != 0 {
		t.Fatalf("idle tick should not emit, got %v", rec.Commands)
	}

	// Tick 3: finger 2 moves.
	b2 := pt(2, 20, 0)
	s.applyTouches(touchFrame{active: []panzoom.TouchPoint{a, b2}})
	if len(rec.Commands) != 2 {
		t.Fatalf("commands = %v, want pan and zoom", rec.Commands)
	}
	if rec.Commands[0] != (panzoom.Command{Type: panzoom.CommandPan, X: 5}) {
		t.Errorf("command[0] = %v, want pan(5, 0)", rec.Commands[0])
	}
	if rec.Commands[1] != (panzoom.Command{Type: panzoom.CommandZoomAbout, X: 10, Ratio: 2}) {
		t.Errorf("command[1] = %v, want zoomabout(10, 0, 2)", rec.Commands[1])
	}

	// Tick 4: both lift.
	s.applyTouches(touchFrame{
		active:   []panzoom.TouchPoint{},
		released: []panzoom.TouchPoint{a, b2},
	})
	if tr.ContactCount() != 0 {
		t.Errorf("ContactCount = %d, want 0", tr.ContactCount())
	}
	if tr.Warnings() != 0 {
		t.Errorf("Warnings = %d, want 0", tr.Warnings())
	}
}

func TestSourceMouseDragAndClick(t *testing.T) {
	tests := []struct {
		name  string
		moves [][2]float64
		want  []panzoom.CommandType
	}{
		{"click in place", nil, []panzoom.CommandType{panzoom.CommandTap}},
		{"jitter within slop", [][2]float64{{102, 101}}, []panzoom.CommandType{panzoom.CommandPan, panzoom.CommandTap}},
		{"drag", [][2]float64{{110, 100}, {130, 100}}, []panzoom.CommandType{panzoom.CommandPan, panzoom.CommandPan}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, rec, _ := newTestSource()
			s.applyMouse(mouseFrame{x: 100, y: 100})
			s.applyMouse(mouseFrame{x: 100, y: 100, left: true, justPressed: true})
			last := [2]float64{100, 100}
			for _, m := range tt.moves {
				s.applyMouse(mouseFrame{x: m[0], y: m[1], left: true})
				last = m
			}
			s.applyMouse(mouseFrame{x: last[0], y: last[1], justReleased: true})

			got := commandTypes(rec.Commands)
			if len(got) != len(tt.want) {
				t.Fatalf("commands = %v, want types %v", rec.Commands, tt.want)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("command[%d] = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestSourceDragDelta(t *testing.T) {
	s, rec, _ := newTestSource()
	s.applyMouse(mouseFrame{x: 10, y: 10, left: true, justPressed: true})
	s.applyMouse(mouseFrame{x: 13, y: 6, left: true})
	if len(rec.Commands) != 1 || rec.Commands[0].X != 3 || rec.Commands[0].Y != -4 {
		t.Errorf("commands = %v, want pan(3, -4)", rec.Commands)
	}
}

func TestSourceHoverDoesNotPan(t *testing.T) {
	s, rec, _ := newTestSource()
	s.applyMouse(mouseFrame{x: 10, y: 10})
	s.applyMouse(mouseFrame{x: 50, y: 50})
	if len(rec.Commands) != 0 {
		t.Errorf("hover emitted %v", rec.Commands)
	}
}

func TestSourceWheel(t *testing.T) {
	s, rec, _ := newTestSource()
	s.applyMouse(mouseFrame{x: 40, y: 30, wheel: 1})
	s.applyMouse(mouseFrame{x: 40, y: 30, wheel: -0.5})
	want := []panzoom.Command{
		{Type: panzoom.CommandWheelZoom, X: 40, Y: 30, Dir: 1},
		{Type: panzoom.CommandWheelZoom, X: 40, Y: 30, Dir: -1},
	}
	if len(rec.Commands) != len(want) {
		t.Fatalf("commands = %v, want %v", rec.Commands, want)
	}
	for i := range want {
		if rec.Commands[i] != want[i] {
			t.Errorf("command[%d] = %v, want %v", i, rec.Commands[i], want[i])
		}
	}
}

func TestSourceResetCancelsTouches(t *testing.T) {
	s, _, tr := newTestSource()
	a, b := pt(1, 0, 0), pt(2, 10, 0)
	s.applyTouches(touchFrame{active: []panzoom.TouchPoint{a, b}, pressed: []panzoom.TouchPoint{a, b}})
	s.Reset()
	if tr.ContactCount() != 0 {
		t.Errorf("ContactCount = %d after Reset, want 0", tr.ContactCount())
	}
	if _, ok := tr.Centroid(); ok {
		t.Error("centroid should be cleared after Reset")
	}
	if tr.Warnings() != 0 {
		t.Errorf("Warnings = %d, want 0", tr.Warnings())
	}
}

func TestNewGameUsesDefaults(t *testing.T) {
	g, err := NewGame(ViewFunc(nil), RunConfig{Width: 320, Height: 240})
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}
	if g.Camera().Viewport.Width != 320 || g.Camera().Viewport.Height != 240 {
		t.Errorf("Viewport = %v, want 320x240", g.Camera().Viewport)
	}
	if w, h := g.Layout(800, 600); w != 800 || h != 600 {
		t.Errorf("Layout = %dx%d, want 800x600", w, h)
	}
	if g.Camera().Viewport.Width != 800 {
		t.Errorf("Layout did not resize viewport: %v", g.Camera().Viewport)
	}
}

func TestNewGameRejectsInvalidConfig(t *testing.T) {
	cfg := panzoom.DefaultConfig()
	cfg.MinZoom = -1
	if _, err := NewGame(ViewFunc(nil), RunConfig{Config: cfg}); err == nil {
		t.Error("expected invalid config error")
	}
}

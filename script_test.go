package panzoom

import (
	"errors"
	"testing"
)

const pinchScript = `{"steps": [
	{"action": "offset", "x": 100, "y": 50},
	{"action": "touchstart", "changed": [{"id": 1, "x": 100, "y": 50}, {"id": 2, "x": 110, "y": 50}],
	 "active": [{"id": 1, "x": 100, "y": 50}, {"id": 2, "x": 110, "y": 50}]},
	{"action": "touchmove", "changed": [{"id": 2, "x": 120, "y": 50}],
	 "active": [{"id": 1, "x": 100, "y": 50}, {"id": 2, "x": 120, "y": 50}]},
	{"action": "touchend", "changed": [{"id": 1, "x": 100, "y": 50}, {"id": 2, "x": 120, "y": 50}], "active": []},
	{"action": "wheel", "x": 110, "y": 60, "delta": 120},
	{"action": "wheel", "x": 110, "y": 60, "delta": -3},
	{"action": "drag", "x": 150, "y": 150, "dx": 2, "dy": 3},
	{"action": "hover", "x": 150, "y": 150, "dx": 2, "dy": 3},
	{"action": "tap", "x": 101, "y": 52}
]}`

func TestScriptReplay(t *testing.T) {
	s, err := LoadScript([]byte(pinchScript))
	if err != nil {
		t.Fatalf("LoadScript: %v", err)
	}
	if s.Len() != 9 {
		t.Errorf("Len = %d, want 9", s.Len())
	}

	tr, rec, _ := newTestTracker()
	s.Replay(tr)

	assertCommands(t, rec.Commands, []Command{
		{Type: CommandPan, X: 5, Y: 0},
		{Type: CommandZoomAbout, X: 10, Y: 0, Ratio: 2},
		{Type: CommandWheelZoom, X: 10, Y: 10, Dir: 1},
		{Type: CommandWheelZoom, X: 10, Y: 10, Dir: -1},
		{Type: CommandPan, X: 2, Y: 3},
		{Type: CommandTap, X: 1, Y: 2},
	})
	if tr.ContactCount() != 0 {
		t.Errorf("ContactCount = %d, want 0", tr.ContactCount())
	}
	if tr.Warnings() != 0 {
		t.Errorf("Warnings = %d, want 0", tr.Warnings())
	}
}

func TestScriptDerivedActive(t *testing.T) {
	s, err := LoadScript([]byte(`{"steps": [
		{"action": "touchstart", "changed": [{"id": 1, "x": 0, "y": 0}]},
		{"action": "touchstart", "changed": [{"id": 2, "x": 10, "y": 0}]},
		{"action": "touchmove", "changed": [{"id": 2, "x": 20, "y": 0}]},
		{"action": "touchcancel", "changed": [{"id": 1, "x": 0, "y": 0}, {"id": 2, "x": 20, "y": 0}]}
	]}`))
	if err != nil {
		t.Fatalf("LoadScript: %v", err)
	}
	tr, rec, _ := newTestTracker()
	s.Replay(tr)
	assertCommands(t, rec.Commands, []Command{
		{Type: CommandPan, X: 5, Y: 0},
		{Type: CommandZoomAbout, X: 10, Y: 0, Ratio: 2},
	})
	if _, ok := tr.Centroid(); ok {
		t.Error("centroid should be cleared after cancel")
	}
}

func TestLoadScriptErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
		want error
	}{
		{"empty", `{"steps": []}`, ErrEmptyScript},
		{"unknown action", `{"steps": [{"action": "rotate"}]}`, ErrUnknownStep},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadScript([]byte(tt.data))
			if !errors.Is(err, tt.want) {
				t.Errorf("LoadScript error = %v, want %v", err, tt.want)
			}
		})
	}

	if _, err := LoadScript([]byte(`{not json`)); err == nil {
		t.Error("expected error for malformed JSON")
	}
}

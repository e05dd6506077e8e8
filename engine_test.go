package panzoom

import "testing"

func TestEngineFuncsNilSafe(t *testing.T) {
	var f EngineFuncs
	f.Tap(1, 2)
	f.Pan(1, 2)
	f.WheelZoom(1, 2, 1)
	f.ZoomAbout(1, 2, 3)
}

func TestEngineFuncsDispatch(t *testing.T) {
	var got []string
	f := EngineFuncs{
		OnTap:       func(x, y float64) { got = append(got, "tap") },
		OnPan:       func(dx, dy float64) { got = append(got, "pan") },
		OnWheelZoom: func(x, y float64, dir int) { got = append(got, "wheel") },
		OnZoomAbout: func(x, y, r float64) { got = append(got, "zoom") },
	}
	f.Tap(0, 0)
	f.Pan(0, 0)
	f.WheelZoom(0, 0, 1)
	f.ZoomAbout(0, 0, 1)
	want := []string{"tap", "pan", "wheel", "zoom"}
	for i := range want {
		if i >= len(got) || got[i] != want[i] {
			t.Fatalf("dispatch = %v, want %v", got, want)
		}
	}
}

func TestRecorderForwards(t *testing.T) {
	inner := &Recorder{}
	rec := &Recorder{Next: inner}
	rec.Pan(1, 2)
	rec.ZoomAbout(3, 4, 1.5)
	if len(rec.Commands) != 2 || len(inner.Commands) != 2 {
		t.Fatalf("recorded %d, forwarded %d; want 2 and 2", len(rec.Commands), len(inner.Commands))
	}
	rec.Reset()
	if len(rec.Commands) != 0 {
		t.Errorf("Reset left %d commands", len(rec.Commands))
	}
}

func TestCommandString(t *testing.T) {
	tests := []struct {
		cmd  Command
		want string
	}{
		{Command{Type: CommandTap, X: 1, Y: 2}, "tap(1, 2)"},
		{Command{Type: CommandPan, X: 5, Y: 0}, "pan(5, 0)"},
		{Command{Type: CommandWheelZoom, X: 3, Y: 4, Dir: -1}, "wheelzoom(3, 4, -1)"},
		{Command{Type: CommandZoomAbout, X: 10, Y: 0, Ratio: 2}, "zoomabout(10, 0, 2)"},
		{Command{Type: CommandType(9)}, "CommandType(9)(0, 0)"},
	}
	for _, tt := range tests {
		if got := tt.cmd.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

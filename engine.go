package panzoom

import "fmt"

// Engine receives the normalized gesture commands produced by a Tracker.
// All coordinates are surface-local. Calls are fire-and-forget.
type Engine interface {
	// Tap reports a discrete activation at (x, y).
	Tap(x, y float64)
	// Pan reports a relative translation since the last sample.
	Pan(dx, dy float64)
	// WheelZoom reports one zoom step centered at (x, y). dir is -1, 0 or 1.
	WheelZoom(x, y float64, dir int)
	// ZoomAbout reports a continuous zoom by ratio (> 0) centered at (x, y).
	ZoomAbout(x, y, ratio float64)
}

// EngineFuncs adapts plain functions to the Engine interface.
// Nil fields are ignored.
type EngineFuncs struct {
	OnTap       func(x, y float64)
	OnPan       func(dx, dy float64)
	OnWheelZoom func(x, y float64, dir int)
	OnZoomAbout func(x, y, ratio float64)
}

func (f EngineFuncs) Tap(x, y float64) {
	if f.OnTap != nil {
		f.OnTap(x, y)
	}
}

func (f EngineFuncs) Pan(dx, dy float64) {
	if f.OnPan != nil {
		f.OnPan(dx, dy)
	}
}

func (f EngineFuncs) WheelZoom(x, y float64, dir int) {
	if f.OnWheelZoom != nil {
		f.OnWheelZoom(x, y, dir)
	}
}

func (f EngineFuncs) ZoomAbout(x, y, ratio float64) {
	if f.OnZoomAbout != nil {
		f.OnZoomAbout(x, y, ratio)
	}
}

// CommandType identifies a kind of engine command.
type CommandType uint8

const (
	CommandTap       CommandType = iota // discrete activation
	CommandPan                          // relative translation
	CommandWheelZoom                    // stepped zoom about a point
	CommandZoomAbout                    // continuous zoom about a point
)

func (t CommandType) String() string {
	switch t {
	case CommandTap:
		return "tap"
	case CommandPan:
		return "pan"
	case CommandWheelZoom:
		return "wheelzoom"
	case CommandZoomAbout:
		return "zoomabout"
	default:
		return fmt.Sprintf("CommandType(%d)", uint8(t))
	}
}

// Command is one recorded engine call. For CommandPan, X and Y hold the
// delta. Dir is valid for CommandWheelZoom, Ratio for CommandZoomAbout.
type Command struct {
	Type  CommandType
	X, Y  float64
	Dir   int
	Ratio float64
}

func (c Command) String() string {
	switch c.Type {
	case CommandWheelZoom:
		return fmt.Sprintf("%s(%g, %g, %d)", c.Type, c.X, c.Y, c.Dir)
	case CommandZoomAbout:
		return fmt.Sprintf("%s(%g, %g, %g)", c.Type, c.X, c.Y, c.Ratio)
	default:
		return fmt.Sprintf("%s(%g, %g)", c.Type, c.X, c.Y)
	}
}

// Recorder is an Engine that appends every command it receives to Commands
// and then forwards it to Next, if set.
type Recorder struct {
	Commands []Command
	Next     Engine
}

func (r *Recorder) Tap(x, y float64) {
	r.Commands = append(r.Commands, Command{Type: CommandTap, X: x, Y: y})
	if r.Next != nil {
		r.Next.Tap(x, y)
	}
}

func (r *Recorder) Pan(dx, dy float64) {
	r.Commands = append(r.Commands, Command{Type: CommandPan, X: dx, Y: dy})
	if r.Next != nil {
		r.Next.Pan(dx, dy)
	}
}

func (r *Recorder) WheelZoom(x, y float64, dir int) {
	r.Commands = append(r.Commands, Command{Type: CommandWheelZoom, X: x, Y: y, Dir: dir})
	if r.Next != nil {
		r.Next.WheelZoom(x, y, dir)
	}
}

func (r *Recorder) ZoomAbout(x, y, ratio float64) {
	r.Commands = append(r.Commands, Command{Type: CommandZoomAbout, X: x, Y: y, Ratio: ratio})
	if r.Next != nil {
		r.Next.ZoomAbout(x, y, ratio)
	}
}

// Reset drops all recorded commands.
func (r *Recorder) Reset() {
	r.Commands = r.Commands[:0]
}

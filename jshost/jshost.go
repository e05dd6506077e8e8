//go:build js && wasm

// Package jshost binds a browser canvas to a panzoom.Tracker when compiled
// to WebAssembly. It registers the DOM listeners, keeps the surface offset
// current across window resizes, and exposes requestAnimationFrame.
package jshost

import (
	"syscall/js"

	"github.com/phanxgames/panzoom"
)

// Binding holds the listeners registered by Bind.
type Binding struct {
	canvas   js.Value
	window   js.Value
	tracker  *panzoom.Tracker
	onResize func(width, height int)
	funcs    []listener
}

type listener struct {
	target js.Value
	event  string
	fn     js.Func
}

// Bind sizes canvas to the window, computes the surface offset, and routes
// mouse, wheel and touch events on canvas into t. onResize, if non-nil, is
// called with the new canvas size on start and after every window resize.
// Call Release to remove the listeners.
func Bind(canvas js.Value, t *panzoom.Tracker, onResize func(width, height int)) *Binding {
	b := &Binding{
		canvas:   canvas,
		window:   js.Global(),
		tracker:  t,
		onResize: onResize,
	}
	b.resize()

	b.listen(b.window, "resize", func(js.Value) { b.resize() })
	b.listen(canvas, "mousemove", b.mouseMove)
	b.listen(canvas, "click", b.click)
	b.listen(canvas, "touchstart", func(e js.Value) { t.TouchStart(touchEvent(e)) })
	b.listen(canvas, "touchmove", func(e js.Value) { t.TouchMove(touchEvent(e)) })
	b.listen(canvas, "touchend", func(e js.Value) { t.TouchEnd(touchEvent(e)) })
	b.listen(canvas, "touchcancel", func(e js.Value) { t.TouchCancel(touchEvent(e)) })
	b.listen(canvas, "wheel", b.wheel)
	b.listen(canvas, "mousewheel", b.wheel)
	b.listen(canvas, "DOMMouseScroll", b.wheel)
	return b
}

func (b *Binding) listen(target js.Value, event string, handle func(e js.Value)) {
	fn := js.FuncOf(func(this js.Value, args []js.Value) any {
		if len(args) > 0 {
			handle(args[0])
		}
		return nil
	})
	// Touch and wheel listeners call preventDefault, so they must not be passive.
	target.Call("addEventListener", event, fn, map[string]any{"passive": false})
	b.funcs = append(b.funcs, listener{target: target, event: event, fn: fn})
}

// Release removes every listener registered by Bind and resets the tracker.
func (b *Binding) Release() {
	for _, l := range b.funcs {
		l.target.Call("removeEventListener", l.event, l.fn)
		l.fn.Release()
	}
	b.funcs = nil
	b.tracker.Reset()
}

// resize matches the canvas to the window and refreshes the surface offset.
func (b *Binding) resize() {
	w := b.window.Get("innerWidth").Int()
	h := b.window.Get("innerHeight").Int()
	b.canvas.Set("width", w)
	b.canvas.Set("height", h)
	b.tracker.SetSurfaceOffset(
		b.canvas.Get("offsetLeft").Float(),
		b.canvas.Get("offsetTop").Float(),
	)
	if b.onResize != nil {
		b.onResize(w, h)
	}
}

func (b *Binding) mouseMove(e js.Value) {
	b.tracker.PrimaryDrag(panzoom.PointerEvent{
		PageX:     e.Get("clientX").Float(),
		PageY:     e.Get("clientY").Float(),
		MovementX: e.Get("movementX").Float(),
		MovementY: e.Get("movementY").Float(),
		Buttons:   panzoom.ButtonMask(e.Get("buttons").Int()),
	})
}

func (b *Binding) click(e js.Value) {
	b.tracker.PointerTap(panzoom.PointerEvent{
		PageX: e.Get("clientX").Float(),
		PageY: e.Get("clientY").Float(),
	})
}

// wheel normalizes the three wheel event flavors to "positive = zoom in":
// standard wheel (deltaY, down positive), legacy mousewheel (wheelDelta,
// up positive) and Firefox DOMMouseScroll (detail, down positive).
func (b *Binding) wheel(e js.Value) {
	var delta float64
	switch e.Get("type").String() {
	case "wheel":
		delta = -e.Get("deltaY").Float()
	case "mousewheel":
		delta = e.Get("wheelDelta").Float()
	default:
		delta = -e.Get("detail").Float()
	}
	b.tracker.Wheel(panzoom.WheelEvent{
		PageX:          e.Get("clientX").Float(),
		PageY:          e.Get("clientY").Float(),
		Delta:          delta,
		PreventDefault: func() { e.Call("preventDefault") },
	})
}

func touchEvent(e js.Value) panzoom.TouchEvent {
	return panzoom.TouchEvent{
		Changed:        touchList(e.Get("changedTouches")),
		Active:         touchList(e.Get("targetTouches")),
		PreventDefault: func() { e.Call("preventDefault") },
	}
}

// touchList converts a DOM TouchList. The result is never nil, so the
// tracker treats it as authoritative.
func touchList(list js.Value) []panzoom.TouchPoint {
	n := list.Get("length").Int()
	out := make([]panzoom.TouchPoint, 0, n)
	for i := 0; i < n; i++ {
		t := list.Call("item", i)
		out = append(out, panzoom.TouchPoint{
			ID:    panzoom.ContactID(t.Get("identifier").Int()),
			PageX: t.Get("clientX").Float(),
			PageY: t.Get("clientY").Float(),
		})
	}
	return out
}

// ScheduleFrame runs cb on the next animation frame, falling back to a
// 60 Hz timer where requestAnimationFrame is unavailable.
func ScheduleFrame(cb func()) {
	var fn js.Func
	fn = js.FuncOf(func(this js.Value, args []js.Value) any {
		fn.Release()
		cb()
		return nil
	})
	w := js.Global()
	if raf := w.Get("requestAnimationFrame"); raf.Truthy() {
		w.Call("requestAnimationFrame", fn)
		return
	}
	w.Call("setTimeout", fn, 1000/60)
}

// Loop calls tick on every animation frame until stop returns true.
func Loop(tick func(), stop func() bool) {
	var step func()
	step = func() {
		if stop != nil && stop() {
			return
		}
		tick()
		ScheduleFrame(step)
	}
	ScheduleFrame(step)
}

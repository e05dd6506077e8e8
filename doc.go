// Package panzoom turns raw pointer, wheel and touch input from a rendering
// surface into four normalized gesture commands: tap, pan, wheel zoom and
// pinch zoom about a point.
//
// # Quick start
//
// Create a [Tracker] with an [Engine] that consumes the commands. [Camera]
// is a ready-made engine that pans and zooms a 2D view:
//
//	cam := panzoom.NewCamera(panzoom.Rect{Width: 640, Height: 480})
//	tracker := panzoom.NewTracker(cam)
//
// Then feed host events into the tracker, from a single goroutine:
//
//	tracker.TouchStart(panzoom.TouchEvent{Changed: down, Active: all})
//	tracker.TouchMove(panzoom.TouchEvent{Changed: moved, Active: all})
//	tracker.TouchEnd(panzoom.TouchEvent{Changed: up, Active: all})
//	tracker.Wheel(panzoom.WheelEvent{PageX: x, PageY: y, Delta: 120})
//
// The ebitenhost package does this for an [Ebitengine] game and jshost
// does it for a browser canvas.
//
// # Gestures
//
// One active contact pans by its own movement. Two or more contacts pan by
// the movement of their centroid and zoom by the change in mean distance
// from the contacts to that centroid. The centroid and mean distance are
// re-sampled whenever a finger is added or lifted, so changing the number of
// fingers mid-gesture never produces a jump.
//
// Inconsistent host input, such as a contact going down twice or lifting a
// contact that was never seen, is logged at warn level through [log/slog]
// and otherwise ignored.
//
// [Ebitengine]: https://ebitengine.org
package panzoom

package panzoom

import (
	"cmp"
	"log/slog"
	"math"
	"os"
	"slices"
)

// defaultZoomEpsilon is the smallest mean contact distance, in pixels, that
// still yields a pinch ratio. Below it ZoomAbout is not emitted.
const defaultZoomEpsilon = 1e-6

// Tracker turns raw pointer, wheel and touch events into Engine commands.
//
// It owns the per-contact state of one rendering surface. A Tracker is not
// safe for concurrent use: all methods must be called from the single
// goroutine that delivers input, in arrival order.
type Tracker struct {
	engine  Engine
	logger  *slog.Logger
	epsilon float64

	offset   Vec2
	contacts map[ContactID]Contact

	// Pinch state. centroid is non-nil iff two or more contacts are active.
	centroid    *Vec2
	lastAvgDist float64

	warnings  int
	activeBuf []Contact
}

// Option configures a Tracker.
type Option func(*Tracker)

// WithLogger sets the logger used for consistency warnings.
func WithLogger(l *slog.Logger) Option {
	return func(t *Tracker) {
		if l != nil {
			t.logger = l
		}
	}
}

// WithZoomEpsilon sets the minimum mean contact distance for pinch zoom.
func WithZoomEpsilon(eps float64) Option {
	return func(t *Tracker) {
		if eps >= 0 {
			t.epsilon = eps
		}
	}
}

// WithConfig applies the tracker-related fields of cfg.
func WithConfig(cfg Config) Option {
	return WithZoomEpsilon(cfg.ZoomEpsilon)
}

// NewTracker creates a Tracker that emits commands to engine.
// A nil engine discards all commands.
func NewTracker(engine Engine, opts ...Option) *Tracker {
	if engine == nil {
		engine = EngineFuncs{}
	}
	t := &Tracker{
		engine:   engine,
		epsilon:  defaultZoomEpsilon,
		contacts: make(map[ContactID]Contact),
		logger: slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelWarn,
		})),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// SetSurfaceOffset sets the page position of the surface's top-left corner.
// Hosts call this whenever the surface is created or resized.
func (t *Tracker) SetSurfaceOffset(x, y float64) {
	t.offset = Vec2{X: x, Y: y}
}

// SurfaceOffset returns the current surface offset.
func (t *Tracker) SurfaceOffset() Vec2 {
	return t.offset
}

// --- Pointer and wheel ---

// PrimaryDrag handles a pointer move. It emits Pan with the event's own
// movement delta while the primary button is held, and does nothing otherwise.
func (t *Tracker) PrimaryDrag(e PointerEvent) {
	if e.Buttons&ButtonPrimary == 0 {
		return
	}
	t.engine.Pan(e.MovementX, e.MovementY)
}

// PointerTap handles a discrete click and emits Tap at the surface-local
// position.
func (t *Tracker) PointerTap(e PointerEvent) {
	x, y := t.local(e.PageX, e.PageY)
	t.engine.Tap(x, y)
}

// Wheel handles a scroll-wheel event. The raw delta is reduced to its sign so
// that devices reporting 3, 120 or 0.5 per notch all produce one step.
func (t *Tracker) Wheel(e WheelEvent) {
	x, y := t.local(e.PageX, e.PageY)
	t.engine.WheelZoom(x, y, wheelDirection(e.Delta))
	if e.PreventDefault != nil {
		e.PreventDefault()
	}
}

func wheelDirection(delta float64) int {
	switch {
	case delta > 0:
		return 1
	case delta < 0:
		return -1
	default:
		return 0 // also NaN
	}
}

// --- Touch ---

// TouchStart records newly placed contacts. A contact that is already
// tracked is reported and overwritten.
func (t *Tracker) TouchStart(e TouchEvent) {
	for _, p := range e.Changed {
		if _, ok := t.contacts[p.ID]; ok {
			t.warn("contact already down", p.ID, "touchstart")
		}
		t.contacts[p.ID] = t.contact(p)
	}
	t.syncPinch(t.active(e, false))
}

// TouchMove emits Pan for a single contact, or Pan followed by ZoomAbout for
// two or more contacts, then stores the new position of every active contact.
func (t *Tracker) TouchMove(e TouchEvent) {
	if e.PreventDefault != nil {
		e.PreventDefault()
	}
	active := t.active(e, true)

	switch {
	case len(active) == 1:
		c := active[0]
		if last, ok := t.contacts[c.ID]; ok {
			t.engine.Pan(c.X-last.X, c.Y-last.Y)
		}
	case len(active) > 1:
		t.pinch(active)
	}

	for _, c := range active {
		t.contacts[c.ID] = c
	}
}

// TouchEnd forgets lifted contacts. Lifting an untracked contact is reported
// and skipped.
func (t *Tracker) TouchEnd(e TouchEvent) {
	t.lift(e, "touchend")
}

// TouchCancel handles contacts the platform took away (e.g. focus loss).
// It behaves exactly like TouchEnd.
func (t *Tracker) TouchCancel(e TouchEvent) {
	t.lift(e, "touchcancel")
}

func (t *Tracker) lift(e TouchEvent, event string) {
	for _, p := range e.Changed {
		if _, ok := t.contacts[p.ID]; !ok {
			t.warn("no contact to lift", p.ID, event)
			continue
		}
		delete(t.contacts, p.ID)
	}
	t.syncPinch(t.active(e, false))
}

// pinch emits the centroid translation and the pinch ratio for a
// multi-contact move and advances the pinch state.
func (t *Tracker) pinch(active []Contact) {
	center, avg := centroidOf(active)
	if t.centroid == nil {
		// Host skipped the touchstart that should have seeded pinch state.
		t.logger.Debug("pinch state seeded on move", slog.Int("contacts", len(active)))
		t.centroid, t.lastAvgDist = &center, avg
		return
	}

	t.engine.Pan(center.X-t.centroid.X, center.Y-t.centroid.Y)
	if t.lastAvgDist >= t.epsilon && avg >= t.epsilon {
		t.engine.ZoomAbout(center.X, center.Y, avg/t.lastAvgDist)
	} else {
		t.logger.Debug("pinch zoom skipped",
			slog.Float64("last_avg_dist", t.lastAvgDist),
			slog.Float64("avg_dist", avg))
	}

	t.centroid, t.lastAvgDist = &center, avg
}

// syncPinch resets pinch state from the active contacts when two or more are
// down, and clears it otherwise.
func (t *Tracker) syncPinch(active []Contact) {
	if len(active) > 1 {
		t.resetCentroid(active)
		return
	}
	t.centroid = nil
	t.lastAvgDist = 0
}

// resetCentroid resynchronizes pinch state after the contact set changed
// size, so the next move compares against the current finger spread.
func (t *Tracker) resetCentroid(active []Contact) {
	center, avg := centroidOf(active)
	t.centroid = &center
	t.lastAvgDist = avg
}

// centroidOf returns the mean position of cs and the mean distance from
// each contact to it. cs must not be empty.
func centroidOf(cs []Contact) (Vec2, float64) {
	n := float64(len(cs))
	var center Vec2
	for _, c := range cs {
		center.X += c.X
		center.Y += c.Y
	}
	center.X /= n
	center.Y /= n

	var total float64
	for _, c := range cs {
		total += math.Hypot(c.X-center.X, c.Y-center.Y)
	}
	return center, total / n
}

// active returns the surface-local contacts on the surface after e.
// When the host supplied no Active list it is derived from tracked state;
// withChanged overlays the positions carried in e.Changed (for moves).
func (t *Tracker) active(e TouchEvent, withChanged bool) []Contact {
	buf := t.activeBuf[:0]
	if e.Active != nil {
		for _, p := range e.Active {
			buf = append(buf, t.contact(p))
		}
		t.activeBuf = buf
		return buf
	}

	for _, c := range t.contacts {
		buf = append(buf, c)
	}
	slices.SortFunc(buf, func(a, b Contact) int { return cmp.Compare(a.ID, b.ID) })
	if withChanged {
		for _, p := range e.Changed {
			if i, ok := slices.BinarySearchFunc(buf, p.ID, func(c Contact, id ContactID) int {
				return cmp.Compare(c.ID, id)
			}); ok {
				buf[i] = t.contact(p)
			}
		}
	}
	t.activeBuf = buf
	return buf
}

func (t *Tracker) contact(p TouchPoint) Contact {
	x, y := t.local(p.PageX, p.PageY)
	return Contact{ID: p.ID, X: x, Y: y}
}

func (t *Tracker) local(pageX, pageY float64) (float64, float64) {
	return pageX - t.offset.X, pageY - t.offset.Y
}

func (t *Tracker) warn(msg string, id ContactID, event string) {
	t.warnings++
	t.logger.Warn(msg, slog.Int("contact", int(id)), slog.String("event", event))
}

// --- Introspection ---

// ContactCount returns the number of tracked contacts.
func (t *Tracker) ContactCount() int {
	return len(t.contacts)
}

// Contact returns the tracked state of contact id.
func (t *Tracker) Contact(id ContactID) (Contact, bool) {
	c, ok := t.contacts[id]
	return c, ok
}

// Contacts returns all tracked contacts ordered by ID.
func (t *Tracker) Contacts() []Contact {
	out := make([]Contact, 0, len(t.contacts))
	for _, c := range t.contacts {
		out = append(out, c)
	}
	slices.SortFunc(out, func(a, b Contact) int { return cmp.Compare(a.ID, b.ID) })
	return out
}

// Centroid returns the stored centroid of a multi-contact gesture. ok is
// false when fewer than two contacts are active.
func (t *Tracker) Centroid() (c Vec2, ok bool) {
	if t.centroid == nil {
		return Vec2{}, false
	}
	return *t.centroid, true
}

// AverageDistance returns the stored mean contact-to-centroid distance,
// or 0 when fewer than two contacts are active.
func (t *Tracker) AverageDistance() float64 {
	return t.lastAvgDist
}

// Warnings returns how many consistency violations have been reported.
func (t *Tracker) Warnings() int {
	return t.warnings
}

// Reset forgets all contacts and pinch state. The surface offset is kept.
func (t *Tracker) Reset() {
	clear(t.contacts)
	t.centroid = nil
	t.lastAvgDist = 0
}

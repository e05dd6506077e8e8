package panzoom

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

const (
	defaultMinZoom           = 0.05
	defaultMaxZoom           = 20.0
	defaultWheelZoomStep     = 1.1
	defaultWheelZoomDuration = 0.12 // seconds
)

// scrollAnim holds active scroll-to tweens for camera X and Y.
type scrollAnim struct {
	tweenX *gween.Tween
	tweenY *gween.Tween
	doneX  bool
	doneY  bool
}

// zoomAnim animates a wheel zoom while keeping the screen anchor fixed.
type zoomAnim struct {
	tween            *gween.Tween
	target           float64
	anchorX, anchorY float64
}

// Camera is an Engine that applies gesture commands to a 2D view:
// pans follow the finger, zooms keep the point under the gesture fixed.
type Camera struct {
	// X and Y are the world-space position the camera centers on.
	X, Y float64
	// Zoom is the scale factor (1.0 = no zoom, >1 = zoom in, <1 = zoom out).
	Zoom float64
	// Rotation is the camera rotation in radians (clockwise).
	Rotation float64
	// Viewport is the surface-local rectangle this camera renders into.
	Viewport Rect

	// MinZoom and MaxZoom clamp Zoom. Zero disables the respective limit.
	MinZoom, MaxZoom float64

	// WheelZoomStep is the zoom factor applied per wheel notch.
	WheelZoomStep float64
	// WheelZoomDuration is the wheel zoom animation length in seconds.
	// Zero applies wheel zoom immediately.
	WheelZoomDuration float32
	// WheelEase shapes the wheel zoom animation.
	WheelEase ease.TweenFunc

	// OnTap is called with world coordinates when a Tap command arrives.
	OnTap func(worldX, worldY float64)

	// BoundsEnabled clamps the camera position so the visible area stays
	// within Bounds.
	BoundsEnabled bool
	// Bounds is the world-space rectangle the camera is clamped to when
	// BoundsEnabled is true.
	Bounds Rect

	viewMatrix    [6]float64
	invViewMatrix [6]float64
	dirty         bool

	scrollTween *scrollAnim
	zoomTween   *zoomAnim
}

// NewCamera creates a Camera with default limits and the given viewport.
func NewCamera(viewport Rect) *Camera {
	return &Camera{
		Zoom:              1.0,
		Viewport:          viewport,
		MinZoom:           defaultMinZoom,
		MaxZoom:           defaultMaxZoom,
		WheelZoomStep:     defaultWheelZoomStep,
		WheelZoomDuration: defaultWheelZoomDuration,
		WheelEase:         ease.OutQuad,
		dirty:             true,
	}
}

// NewCameraFromConfig creates a Camera whose zoom limits and wheel behavior
// come from cfg.
func NewCameraFromConfig(viewport Rect, cfg Config) *Camera {
	c := NewCamera(viewport)
	c.MinZoom = cfg.MinZoom
	c.MaxZoom = cfg.MaxZoom
	c.WheelZoomStep = cfg.WheelZoomStep
	c.WheelZoomDuration = float32(cfg.WheelZoomDuration.Seconds())
	return c
}

// SetViewport replaces the viewport, e.g. after the surface was resized.
func (c *Camera) SetViewport(viewport Rect) {
	if c.Viewport != viewport {
		c.Viewport = viewport
		c.dirty = true
	}
}

// --- Engine ---

// Tap converts (x, y) to world space and reports it through OnTap.
func (c *Camera) Tap(x, y float64) {
	if c.OnTap == nil {
		return
	}
	c.OnTap(c.ScreenToWorld(x, y))
}

// Pan moves the view so that content follows a screen-space drag of (dx, dy).
// A running ScrollTo is cancelled.
func (c *Camera) Pan(dx, dy float64) {
	c.computeViewMatrix()
	wx, wy := transformVector(c.invViewMatrix, dx, dy)
	c.scrollTween = nil
	c.X -= wx
	c.Y -= wy
	c.dirty = true
	c.ClampToBounds()
}

// ZoomAbout multiplies Zoom by ratio, keeping the world point under screen
// position (x, y) in place. Non-positive or non-finite ratios are ignored.
// A running wheel zoom is cancelled.
func (c *Camera) ZoomAbout(x, y, ratio float64) {
	if !(ratio > 0) || math.IsInf(ratio, 0) {
		return
	}
	c.zoomTween = nil
	wx, wy := c.ScreenToWorld(x, y)
	c.Zoom = c.clampZoom(c.Zoom * ratio)
	c.dirty = true
	c.anchor(x, y, wx, wy)
}

// WheelZoom zooms one WheelZoomStep in (dir > 0) or out (dir < 0) about
// (x, y). Successive notches during an animation accumulate.
func (c *Camera) WheelZoom(x, y float64, dir int) {
	if dir == 0 {
		return
	}
	from := c.Zoom
	if c.zoomTween != nil {
		from = c.zoomTween.target
	}
	target := c.clampZoom(from * math.Pow(c.WheelZoomStep, float64(dir)))

	if c.WheelZoomDuration <= 0 {
		c.ZoomAbout(x, y, target/c.Zoom)
		return
	}
	easeFn := c.WheelEase
	if easeFn == nil {
		easeFn = ease.Linear
	}
	c.zoomTween = &zoomAnim{
		tween:   gween.New(float32(c.Zoom), float32(target), c.WheelZoomDuration, easeFn),
		target:  target,
		anchorX: x,
		anchorY: y,
	}
}

// ScrollTo animates the camera to the given world position over duration seconds.
func (c *Camera) ScrollTo(x, y float64, duration float32, easeFn ease.TweenFunc) {
	c.scrollTween = &scrollAnim{
		tweenX: gween.New(float32(c.X), float32(x), duration, easeFn),
		tweenY: gween.New(float32(c.Y), float32(y), duration, easeFn),
	}
}

// Animating reports whether a scroll or wheel zoom animation is running.
func (c *Camera) Animating() bool {
	return c.scrollTween != nil || c.zoomTween != nil
}

// Update advances scroll and zoom animations by dt seconds and applies
// bounds clamping. Call once per frame.
func (c *Camera) Update(dt float32) {
	prevX, prevY, prevZoom := c.X, c.Y, c.Zoom

	if c.scrollTween != nil {
		if !c.scrollTween.doneX {
			val, done := c.scrollTween.tweenX.Update(dt)
			c.X = float64(val)
			c.scrollTween.doneX = done
		}
		if !c.scrollTween.doneY {
			val, done := c.scrollTween.tweenY.Update(dt)
			c.Y = float64(val)
			c.scrollTween.doneY = done
		}
		if c.scrollTween.doneX && c.scrollTween.doneY {
			c.scrollTween = nil
		}
		c.dirty = true
	}

	if z := c.zoomTween; z != nil {
		wx, wy := c.ScreenToWorld(z.anchorX, z.anchorY)
		val, done := z.tween.Update(dt)
		if done {
			c.Zoom = z.target
			c.zoomTween = nil
		} else {
			c.Zoom = c.clampZoom(float64(val))
		}
		c.dirty = true
		c.anchor(z.anchorX, z.anchorY, wx, wy)
	}

	if c.BoundsEnabled {
		c.clampToBounds()
	}

	if c.X != prevX || c.Y != prevY || c.Zoom != prevZoom {
		c.dirty = true
	}
}

// anchor shifts the camera so that world point (wx, wy) appears at screen
// position (sx, sy) under the current zoom.
func (c *Camera) anchor(sx, sy, wx, wy float64) {
	nx, ny := c.ScreenToWorld(sx, sy)
	c.X += wx - nx
	c.Y += wy - ny
	c.dirty = true
	c.ClampToBounds()
}

func (c *Camera) clampZoom(z float64) float64 {
	if c.MinZoom > 0 && z < c.MinZoom {
		z = c.MinZoom
	}
	if c.MaxZoom > 0 && z > c.MaxZoom {
		z = c.MaxZoom
	}
	return z
}

// --- Bounds ---

// SetBounds enables camera bounds clamping.
func (c *Camera) SetBounds(bounds Rect) {
	c.BoundsEnabled = true
	c.Bounds = bounds
}

// ClearBounds disables camera bounds clamping.
func (c *Camera) ClearBounds() {
	c.BoundsEnabled = false
}

// ClampToBounds immediately clamps the camera position so the visible area
// stays within Bounds. No-op if BoundsEnabled is false.
func (c *Camera) ClampToBounds() {
	if c.BoundsEnabled {
		c.clampToBounds()
	}
}

// clampToBounds restricts camera position so the visible area stays within Bounds.
func (c *Camera) clampToBounds() {
	halfW := c.Viewport.Width / (2 * c.Zoom)
	halfH := c.Viewport.Height / (2 * c.Zoom)

	minX := c.Bounds.X + halfW
	maxX := c.Bounds.X + c.Bounds.Width - halfW
	minY := c.Bounds.Y + halfH
	maxY := c.Bounds.Y + c.Bounds.Height - halfH

	// If bounds are smaller than visible area, center the camera.
	if minX > maxX {
		c.X = c.Bounds.X + c.Bounds.Width/2
	} else {
		c.X = math.Max(minX, math.Min(c.X, maxX))
	}
	if minY > maxY {
		c.Y = c.Bounds.Y + c.Bounds.Height/2
	} else {
		c.Y = math.Max(minY, math.Min(c.Y, maxY))
	}
	c.dirty = true
}

// --- View matrix ---

// computeViewMatrix recomputes the cached view matrix if dirty.
//
// viewMatrix = Translate(cx, cy) * Scale(zoom) * Rotate(-rotation) * Translate(-X, -Y)
// where cx, cy = viewport center.
func (c *Camera) computeViewMatrix() [6]float64 {
	if !c.dirty {
		return c.viewMatrix
	}
	c.dirty = false

	cx := c.Viewport.X + c.Viewport.Width/2
	cy := c.Viewport.Y + c.Viewport.Height/2

	sin, cos := math.Sincos(-c.Rotation)
	z := c.Zoom

	a := z * cos
	b := -z * sin
	cc := z * sin
	d := z * cos
	tx := cx + z*(-cos*c.X+sin*c.Y)
	ty := cy + z*(-sin*c.X-cos*c.Y)

	c.viewMatrix = [6]float64{a, cc, b, d, tx, ty}
	c.invViewMatrix = invertAffine(c.viewMatrix)
	return c.viewMatrix
}

// ViewMatrix returns the world-to-screen affine matrix [a, b, c, d, tx, ty].
func (c *Camera) ViewMatrix() [6]float64 {
	return c.computeViewMatrix()
}

// WorldToScreen converts world coordinates to screen coordinates.
func (c *Camera) WorldToScreen(wx, wy float64) (sx, sy float64) {
	c.computeViewMatrix()
	sx, sy = transformPoint(c.viewMatrix, wx, wy)
	return
}

// ScreenToWorld converts screen coordinates to world coordinates.
func (c *Camera) ScreenToWorld(sx, sy float64) (wx, wy float64) {
	c.computeViewMatrix()
	wx, wy = transformPoint(c.invViewMatrix, sx, sy)
	return
}

// VisibleBounds returns the axis-aligned bounding rect of the camera's visible
// area in world space.
func (c *Camera) VisibleBounds() Rect {
	c.computeViewMatrix()
	inv := c.invViewMatrix

	vx := c.Viewport.X
	vy := c.Viewport.Y
	vr := vx + c.Viewport.Width
	vb := vy + c.Viewport.Height

	x0, y0 := transformPoint(inv, vx, vy)
	x1, y1 := transformPoint(inv, vr, vy)
	x2, y2 := transformPoint(inv, vr, vb)
	x3, y3 := transformPoint(inv, vx, vb)

	minX := math.Min(math.Min(x0, x1), math.Min(x2, x3))
	minY := math.Min(math.Min(y0, y1), math.Min(y2, y3))
	maxX := math.Max(math.Max(x0, x1), math.Max(x2, x3))
	maxY := math.Max(math.Max(y0, y1), math.Max(y2, y3))

	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// MarkDirty forces a recomputation of the view matrix.
func (c *Camera) MarkDirty() {
	c.dirty = true
}

// Package viewport implements the pan/zoom engine of the seat-map
// editor. The engine owns the viewport state (scale, offset, drag
// tracking) and exposes pure state transitions the hosting UI wires to
// its pointer, wheel, touch and keyboard events.
//
// Every operation that needs the container dimensions short-circuits
// safely while they are unset (e.g. before the host has measured its
// element): geometry methods are no-ops, never errors.
package viewport

import (
	"sync"

	"github.com/iliyamo/venue-seatmap-editor/internal/geometry"
)

// Button identifies which pointer button started an interaction.
type Button int

const (
	ButtonPrimary Button = iota
	ButtonSecondary
	ButtonMiddle
)

// Options parameterize an Engine. Zero values are replaced with the
// defaults from DefaultOptions by New.
type Options struct {
	MinScale           float64 // lower scale clamp
	MaxScale           float64 // upper scale clamp
	ScaleStep          float64 // additive step for ZoomIn/ZoomOut
	BoundaryPadding    float64 // extra pan slack beyond the centered content at scale <= 1
	WheelDamping       float64 // fraction of ScaleStep applied per wheel tick
	PinchSensitivity   float64 // touch distance delta that doubles the scale factor term
	WheelZoomEnabled   bool
	PinchZoomEnabled   bool
	ZoomTowardsPointer bool
}

// DefaultOptions returns the tuning used by the editor unless the host
// overrides it.
func DefaultOptions() Options {
	return Options{
		MinScale:           0.25,
		MaxScale:           4,
		ScaleStep:          0.25,
		BoundaryPadding:    80,
		WheelDamping:       0.4,
		PinchSensitivity:   200,
		WheelZoomEnabled:   true,
		PinchZoomEnabled:   true,
		ZoomTowardsPointer: true,
	}
}

// State is a snapshot of the viewport. DragStart is nil while no drag
// is in progress; otherwise it records (pointer position - offset) at
// the moment the drag began.
type State struct {
	Scale      float64
	Offset     geometry.Point
	IsDragging bool
	DragStart  *geometry.Point
}

// Engine holds viewport state for one editor session. It is never
// persisted; the session owns it exclusively, but the mutex keeps
// snapshots consistent when the host reads from another goroutine.
type Engine struct {
	mu           sync.Mutex
	opts         Options
	container    geometry.Size
	hasContainer bool
	state        State
	initial      State
	pinchDist    float64 // last two-finger distance, 0 when not pinching
	animating    bool
}

// New builds an Engine with sanitized options and an initial state of
// scale 1 at the origin.
func New(opts Options) *Engine {
	def := DefaultOptions()
	if opts.MinScale <= 0 {
		opts.MinScale = def.MinScale
	}
	if opts.MaxScale < opts.MinScale {
		opts.MaxScale = def.MaxScale
	}
	if opts.ScaleStep <= 0 {
		opts.ScaleStep = def.ScaleStep
	}
	if opts.WheelDamping <= 0 {
		opts.WheelDamping = def.WheelDamping
	}
	if opts.PinchSensitivity <= 0 {
		opts.PinchSensitivity = def.PinchSensitivity
	}
	st := State{Scale: geometry.Clamp(1, opts.MinScale, opts.MaxScale)}
	return &Engine{opts: opts, state: st, initial: st}
}

// SetContainer records the measured container dimensions and re-clamps
// the offset against the new bounds.
func (e *Engine) SetContainer(size geometry.Size) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if size.Width <= 0 || size.Height <= 0 {
		return
	}
	e.container = size
	e.hasContainer = true
	e.clampOffsetLocked()
}

// State returns a copy of the current viewport state.
func (e *Engine) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	st := e.state
	if e.state.DragStart != nil {
		ds := *e.state.DragStart
		st.DragStart = &ds
	}
	return st
}

// Scale returns the current scale.
func (e *Engine) Scale() float64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state.Scale
}

// Zoom sets the scale, clamped to [MinScale, MaxScale]. Without a
// pointer anchor the offset is left untouched apart from re-clamping.
func (e *Engine) Zoom(newScale float64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.zoomLocked(newScale, nil)
}

// SetScale is an alias for Zoom kept for hosts that bind a slider.
func (e *Engine) SetScale(s float64) { e.Zoom(s) }

// ZoomAt sets the scale while keeping the content point under the
// given container-relative pointer position stationary, when
// ZoomTowardsPointer is enabled. The resulting offset is re-clamped.
func (e *Engine) ZoomAt(newScale float64, pointer geometry.Point) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.opts.ZoomTowardsPointer {
		e.zoomLocked(newScale, &pointer)
		return
	}
	e.zoomLocked(newScale, nil)
}

// ZoomIn raises the scale by one step with no pointer anchor.
func (e *Engine) ZoomIn() { e.Zoom(e.Scale() + e.opts.ScaleStep) }

// ZoomOut lowers the scale by one step with no pointer anchor.
func (e *Engine) ZoomOut() { e.Zoom(e.Scale() - e.opts.ScaleStep) }

// ResetView restores the initial scale and offset and clears any drag.
func (e *Engine) ResetView() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.state = e.initial
	e.pinchDist = 0
}

// ZoomToFit computes the scale that makes the given content dimensions
// fill the container inside the padding, capped at MaxScale, and
// resets the offset to the origin. No-op while the container is unset
// or the content is degenerate.
func (e *Engine) ZoomToFit(contentWidth, contentHeight, padding float64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.hasContainer || contentWidth <= 0 || contentHeight <= 0 {
		return
	}
	sx := (e.container.Width - 2*padding) / contentWidth
	sy := (e.container.Height - 2*padding) / contentHeight
	scale := sx
	if sy < scale {
		scale = sy
	}
	if scale > e.opts.MaxScale {
		scale = e.opts.MaxScale
	}
	e.state.Scale = geometry.Clamp(scale, e.opts.MinScale, e.opts.MaxScale)
	e.state.Offset = geometry.Point{}
	e.state.IsDragging = false
	e.state.DragStart = nil
	e.clampOffsetLocked()
}

// EnsureVisible recenters the viewport on the given content-space
// point when it currently maps outside the visible container
// rectangle. With animated set, a transient animation flag is raised
// for the host to translate into a CSS transition; it is cleared by
// ConsumeAnimation.
func (e *Engine) EnsureVisible(content geometry.Point, animated bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.hasContainer {
		return
	}
	screen := geometry.Point{
		X: content.X*e.state.Scale + e.state.Offset.X,
		Y: content.Y*e.state.Scale + e.state.Offset.Y,
	}
	visible := geometry.Rect{Width: e.container.Width, Height: e.container.Height}
	if visible.Contains(screen) {
		return
	}
	e.state.Offset = geometry.Point{
		X: e.container.Width/2 - content.X*e.state.Scale,
		Y: e.container.Height/2 - content.Y*e.state.Scale,
	}
	e.clampOffsetLocked()
	if animated {
		e.animating = true
	}
}

// ConsumeAnimation reports whether an animated recenter is pending and
// clears the flag.
func (e *Engine) ConsumeAnimation() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	was := e.animating
	e.animating = false
	return was
}

// PointerDown begins a drag for the primary or middle button,
// recording the anchor as (pointer - offset).
func (e *Engine) PointerDown(pos geometry.Point, btn Button) {
	if btn != ButtonPrimary && btn != ButtonMiddle {
		return
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	anchor := geometry.Point{X: pos.X - e.state.Offset.X, Y: pos.Y - e.state.Offset.Y}
	e.state.IsDragging = true
	e.state.DragStart = &anchor
}

// PointerMove pans while a drag is active: the new offset is
// (pointer - dragStart), bounds-clamped.
func (e *Engine) PointerMove(pos geometry.Point) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.state.IsDragging || e.state.DragStart == nil {
		return
	}
	e.state.Offset = geometry.Point{X: pos.X - e.state.DragStart.X, Y: pos.Y - e.state.DragStart.Y}
	e.clampOffsetLocked()
}

// PointerUp ends the active drag.
func (e *Engine) PointerUp() { e.endDrag() }

// PointerLeave ends the drag when the pointer leaves the container.
func (e *Engine) PointerLeave() { e.endDrag() }

// WindowPointerUp ends the drag on a window-level mouseup. Hosts keep
// this registered for the lifetime of the editor so a release outside
// the container never leaves a drag stuck on.
func (e *Engine) WindowPointerUp() { e.endDrag() }

// Wheel applies one damped zoom tick towards the cursor. The step is
// -sign(deltaY) * ScaleStep * WheelDamping, smaller than the keyboard
// step for smoother continuous input.
func (e *Engine) Wheel(deltaY float64, cursor geometry.Point) {
	if !e.opts.WheelZoomEnabled || deltaY == 0 {
		return
	}
	delta := e.opts.ScaleStep * e.opts.WheelDamping
	if deltaY > 0 {
		delta = -delta
	}
	e.ZoomAt(e.Scale()+delta, cursor)
}

// TouchStart begins touch tracking: a single touch starts a pan drag,
// two touches initialize pinch distance tracking.
func (e *Engine) TouchStart(touches []geometry.Point) {
	e.mu.Lock()
	defer e.mu.Unlock()
	switch len(touches) {
	case 1:
		anchor := geometry.Point{X: touches[0].X - e.state.Offset.X, Y: touches[0].Y - e.state.Offset.Y}
		e.state.IsDragging = true
		e.state.DragStart = &anchor
		e.pinchDist = 0
	case 2:
		e.state.IsDragging = false
		e.state.DragStart = nil
		e.pinchDist = geometry.Distance(touches[0], touches[1])
	}
}

// TouchMove pans with one touch and pinch-zooms with two. The pinch
// converts the distance delta into a scale multiplier of
// 1 + delta/PinchSensitivity applied towards the touch midpoint.
func (e *Engine) TouchMove(touches []geometry.Point) {
	switch len(touches) {
	case 1:
		e.PointerMove(touches[0])
	case 2:
		if !e.opts.PinchZoomEnabled {
			return
		}
		e.mu.Lock()
		dist := geometry.Distance(touches[0], touches[1])
		mid := geometry.Midpoint(touches[0], touches[1])
		prev := e.pinchDist
		e.pinchDist = dist
		if prev <= 0 {
			e.mu.Unlock()
			return
		}
		factor := 1 + (dist-prev)/e.opts.PinchSensitivity
		target := e.state.Scale * factor
		if e.opts.ZoomTowardsPointer {
			e.zoomLocked(target, &mid)
		} else {
			e.zoomLocked(target, nil)
		}
		e.mu.Unlock()
	}
}

// TouchEnd receives the touches still on the surface. Lifting to zero
// ends the drag and resets pinch tracking; lifting to exactly one
// re-anchors the drag from the remaining touch.
func (e *Engine) TouchEnd(remaining []geometry.Point) {
	e.mu.Lock()
	defer e.mu.Unlock()
	switch len(remaining) {
	case 0:
		e.state.IsDragging = false
		e.state.DragStart = nil
		e.pinchDist = 0
	case 1:
		e.pinchDist = 0
		anchor := geometry.Point{X: remaining[0].X - e.state.Offset.X, Y: remaining[0].Y - e.state.Offset.Y}
		e.state.IsDragging = true
		e.state.DragStart = &anchor
	}
}

func (e *Engine) endDrag() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.state.IsDragging = false
	e.state.DragStart = nil
	e.pinchDist = 0
}

// zoomLocked clamps the scale and, when a pointer anchor is given,
// recomputes the offset so the content point under the pointer stays
// put: offset' = p - (p - offset) * (new/old). The offset is always
// re-clamped afterwards.
func (e *Engine) zoomLocked(newScale float64, pointer *geometry.Point) {
	old := e.state.Scale
	s := geometry.Clamp(newScale, e.opts.MinScale, e.opts.MaxScale)
	if pointer != nil && old > 0 {
		ratio := s / old
		e.state.Offset = geometry.Point{
			X: pointer.X - (pointer.X-e.state.Offset.X)*ratio,
			Y: pointer.Y - (pointer.Y-e.state.Offset.Y)*ratio,
		}
	}
	e.state.Scale = s
	e.clampOffsetLocked()
}

// clampOffsetLocked bounds the offset when scale <= 1 so the content
// cannot be panned entirely out of the container, padded by
// BoundaryPadding. Above scale 1 the user may pan freely.
func (e *Engine) clampOffsetLocked() {
	if !e.hasContainer || e.state.Scale > 1 {
		return
	}
	limX := e.container.Width*(1-e.state.Scale)/2 + e.opts.BoundaryPadding
	limY := e.container.Height*(1-e.state.Scale)/2 + e.opts.BoundaryPadding
	e.state.Offset.X = geometry.Clamp(e.state.Offset.X, -limX, limX)
	e.state.Offset.Y = geometry.Clamp(e.state.Offset.Y, -limY, limY)
}

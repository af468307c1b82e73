package viewport

import (
	"math"
	"testing"

	"github.com/iliyamo/venue-seatmap-editor/internal/geometry"
)

func newTestEngine() *Engine {
	e := New(DefaultOptions())
	e.SetContainer(geometry.Size{Width: 800, Height: 600})
	return e
}

func TestEngine_ScaleClamp(t *testing.T) {
	t.Parallel()

	e := newTestEngine()
	calls := []func(){
		func() { e.Zoom(100) },
		func() { e.Zoom(-3) },
		func() { e.ZoomAt(9.5, geometry.Point{X: 10, Y: 10}) },
		func() { e.ZoomIn() },
		func() { e.ZoomOut() },
		func() { e.Wheel(-120, geometry.Point{X: 400, Y: 300}) },
		func() { e.Wheel(120, geometry.Point{X: 400, Y: 300}) },
		func() { e.Zoom(0) },
	}
	opts := DefaultOptions()
	for i, call := range calls {
		call()
		if s := e.Scale(); s < opts.MinScale || s > opts.MaxScale {
			t.Fatalf("call %d: scale %v outside [%v, %v]", i, s, opts.MinScale, opts.MaxScale)
		}
	}
}

func TestEngine_PointerAnchoredZoom(t *testing.T) {
	t.Parallel()

	e := newTestEngine()
	e.Zoom(1.5)
	pointer := geometry.Point{X: 250, Y: 175}

	// Content point currently under the pointer.
	before := e.State()
	content := geometry.Point{
		X: (pointer.X - before.Offset.X) / before.Scale,
		Y: (pointer.Y - before.Offset.Y) / before.Scale,
	}

	e.ZoomAt(2.25, pointer)

	after := e.State()
	gotX := content.X*after.Scale + after.Offset.X
	gotY := content.Y*after.Scale + after.Offset.Y
	if math.Abs(gotX-pointer.X) > 1e-9 || math.Abs(gotY-pointer.Y) > 1e-9 {
		t.Fatalf("content point moved: got (%v, %v), want (%v, %v)", gotX, gotY, pointer.X, pointer.Y)
	}
}

func TestEngine_BoundaryClampAtLowScale(t *testing.T) {
	t.Parallel()

	e := newTestEngine()
	e.Zoom(0.5)

	e.PointerDown(geometry.Point{X: 0, Y: 0}, ButtonPrimary)
	e.PointerMove(geometry.Point{X: 5000, Y: -5000})
	e.PointerUp()

	st := e.State()
	opts := DefaultOptions()
	limX := 800*(1-st.Scale)/2 + opts.BoundaryPadding
	limY := 600*(1-st.Scale)/2 + opts.BoundaryPadding
	if math.Abs(st.Offset.X) > limX+1e-9 {
		t.Fatalf("offset.X %v exceeds limit %v", st.Offset.X, limX)
	}
	if math.Abs(st.Offset.Y) > limY+1e-9 {
		t.Fatalf("offset.Y %v exceeds limit %v", st.Offset.Y, limY)
	}
}

func TestEngine_PanUnconstrainedWhenZoomedIn(t *testing.T) {
	t.Parallel()

	e := newTestEngine()
	e.Zoom(2)

	e.PointerDown(geometry.Point{X: 0, Y: 0}, ButtonPrimary)
	e.PointerMove(geometry.Point{X: 3000, Y: 3000})

	if got := e.State().Offset.X; got != 3000 {
		t.Fatalf("expected free pan at scale > 1, offset.X = %v", got)
	}
}

func TestEngine_DragLifecycle(t *testing.T) {
	t.Parallel()

	t.Run("secondary button does not start a drag", func(t *testing.T) {
		e := newTestEngine()
		e.PointerDown(geometry.Point{X: 10, Y: 10}, ButtonSecondary)
		if e.State().IsDragging {
			t.Fatal("drag started on secondary button")
		}
	})

	t.Run("middle button pans", func(t *testing.T) {
		e := newTestEngine()
		e.Zoom(2)
		e.PointerDown(geometry.Point{X: 10, Y: 10}, ButtonMiddle)
		e.PointerMove(geometry.Point{X: 60, Y: 40})
		st := e.State()
		if st.Offset.X != 50 || st.Offset.Y != 30 {
			t.Fatalf("offset = %+v, want (50, 30)", st.Offset)
		}
	})

	t.Run("window mouseup ends a drag missed by the element", func(t *testing.T) {
		e := newTestEngine()
		e.PointerDown(geometry.Point{X: 10, Y: 10}, ButtonPrimary)
		e.WindowPointerUp()
		st := e.State()
		if st.IsDragging || st.DragStart != nil {
			t.Fatal("drag still active after window mouseup")
		}
	})

	t.Run("pointer leave ends the drag", func(t *testing.T) {
		e := newTestEngine()
		e.PointerDown(geometry.Point{X: 10, Y: 10}, ButtonPrimary)
		e.PointerLeave()
		if e.State().IsDragging {
			t.Fatal("drag still active after pointer leave")
		}
	})
}

func TestEngine_PinchZoom(t *testing.T) {
	t.Parallel()

	e := newTestEngine()
	start := []geometry.Point{{X: 300, Y: 300}, {X: 500, Y: 300}}
	e.TouchStart(start)

	before := e.Scale()
	// Spread the fingers by 100px.
	e.TouchMove([]geometry.Point{{X: 250, Y: 300}, {X: 550, Y: 300}})
	after := e.Scale()

	opts := DefaultOptions()
	want := before * (1 + 100/opts.PinchSensitivity)
	if math.Abs(after-want) > 1e-9 {
		t.Fatalf("pinch scale = %v, want %v", after, want)
	}

	t.Run("lifting to one touch re-anchors the pan", func(t *testing.T) {
		e.TouchEnd([]geometry.Point{{X: 550, Y: 300}})
		st := e.State()
		if !st.IsDragging || st.DragStart == nil {
			t.Fatal("expected drag re-anchored from remaining touch")
		}
		wantAnchor := geometry.Point{X: 550 - st.Offset.X, Y: 300 - st.Offset.Y}
		if *st.DragStart != wantAnchor {
			t.Fatalf("drag anchor = %+v, want %+v", *st.DragStart, wantAnchor)
		}
	})

	t.Run("lifting to zero touches resets tracking", func(t *testing.T) {
		e.TouchEnd(nil)
		st := e.State()
		if st.IsDragging || st.DragStart != nil {
			t.Fatal("expected drag ended after all touches lifted")
		}
	})
}

func TestEngine_PinchDisabled(t *testing.T) {
	t.Parallel()

	opts := DefaultOptions()
	opts.PinchZoomEnabled = false
	e := New(opts)
	e.SetContainer(geometry.Size{Width: 800, Height: 600})

	e.TouchStart([]geometry.Point{{X: 300, Y: 300}, {X: 500, Y: 300}})
	e.TouchMove([]geometry.Point{{X: 200, Y: 300}, {X: 600, Y: 300}})
	if got := e.Scale(); got != 1 {
		t.Fatalf("scale changed with pinch disabled: %v", got)
	}
}

func TestEngine_WheelStepIsDamped(t *testing.T) {
	t.Parallel()

	e := newTestEngine()
	before := e.Scale()
	e.Wheel(-120, geometry.Point{X: 400, Y: 300})
	opts := DefaultOptions()
	want := before + opts.ScaleStep*opts.WheelDamping
	if math.Abs(e.Scale()-want) > 1e-9 {
		t.Fatalf("wheel zoom = %v, want %v", e.Scale(), want)
	}
}

func TestEngine_ZoomToFit(t *testing.T) {
	t.Parallel()

	t.Run("fits the larger dimension", func(t *testing.T) {
		e := newTestEngine()
		e.ZoomToFit(2000, 500, 40)
		// (800-80)/2000 = 0.36 < (600-80)/500 = 1.04
		if got := e.Scale(); math.Abs(got-0.36) > 1e-9 {
			t.Fatalf("scale = %v, want 0.36", got)
		}
		if off := e.State().Offset; off != (geometry.Point{}) {
			t.Fatalf("offset = %+v, want origin", off)
		}
	})

	t.Run("caps at max scale for small content", func(t *testing.T) {
		e := newTestEngine()
		e.ZoomToFit(10, 10, 0)
		if got := e.Scale(); got != DefaultOptions().MaxScale {
			t.Fatalf("scale = %v, want max %v", got, DefaultOptions().MaxScale)
		}
	})

	t.Run("no-op without a container", func(t *testing.T) {
		e := New(DefaultOptions())
		e.ZoomToFit(2000, 500, 40)
		if got := e.Scale(); got != 1 {
			t.Fatalf("scale = %v, want untouched 1", got)
		}
	})
}

func TestEngine_EnsureVisible(t *testing.T) {
	t.Parallel()

	t.Run("recenters on an off-screen point", func(t *testing.T) {
		e := newTestEngine()
		e.Zoom(2)
		e.EnsureVisible(geometry.Point{X: 5000, Y: 5000}, true)
		st := e.State()
		wantX := 800.0/2 - 5000*st.Scale
		wantY := 600.0/2 - 5000*st.Scale
		if st.Offset.X != wantX || st.Offset.Y != wantY {
			t.Fatalf("offset = %+v, want (%v, %v)", st.Offset, wantX, wantY)
		}
		if !e.ConsumeAnimation() {
			t.Fatal("expected animation flag raised")
		}
		if e.ConsumeAnimation() {
			t.Fatal("animation flag should clear after consumption")
		}
	})

	t.Run("leaves a visible point alone", func(t *testing.T) {
		e := newTestEngine()
		before := e.State().Offset
		e.EnsureVisible(geometry.Point{X: 100, Y: 100}, false)
		if got := e.State().Offset; got != before {
			t.Fatalf("offset changed for visible point: %+v", got)
		}
	})
}

func TestEngine_ResetView(t *testing.T) {
	t.Parallel()

	e := newTestEngine()
	e.Zoom(3)
	e.PointerDown(geometry.Point{X: 0, Y: 0}, ButtonPrimary)
	e.PointerMove(geometry.Point{X: 100, Y: 100})
	e.ResetView()

	st := e.State()
	if st.Scale != 1 || st.Offset != (geometry.Point{}) || st.IsDragging || st.DragStart != nil {
		t.Fatalf("reset state = %+v", st)
	}
}

package editor

import (
	"reflect"
	"testing"

	"github.com/iliyamo/venue-seatmap-editor/internal/geometry"
	"github.com/iliyamo/venue-seatmap-editor/internal/viewport"
)

func newTestSession(t *testing.T) (*Session, *struct {
	deletedSeats   []string
	deletedSection string
	calls          int
}) {
	t.Helper()
	rec := &struct {
		deletedSeats   []string
		deletedSection string
		calls          int
	}{}
	s := NewSession(SessionConfig{
		SeatIDs: func() []string { return []string{"s1", "s2", "s3"} },
		Delete: func(ids []string, section string) {
			rec.deletedSeats = ids
			rec.deletedSection = section
			rec.calls++
		},
	})
	t.Cleanup(s.Close)
	return s, rec
}

func TestSession_ModeAndToolTransitions(t *testing.T) {
	t.Parallel()

	s, _ := newTestSession(t)
	if got := s.Snapshot(); got.Mode != ModeView || got.Tool != ToolNone {
		t.Fatalf("initial state = %+v", got)
	}

	t.Run("entering draw activates the seat tool", func(t *testing.T) {
		s.SwitchMode(ModeDraw)
		if got := s.Snapshot(); got.Mode != ModeDraw || got.Tool != ToolSeat {
			t.Fatalf("after draw: %+v", got)
		}
	})

	t.Run("tool switch works in draw mode", func(t *testing.T) {
		s.SwitchTool(ToolArcSection)
		if got := s.Snapshot().Tool; got != ToolArcSection {
			t.Fatalf("tool = %q", got)
		}
	})

	t.Run("leaving draw clears the tool", func(t *testing.T) {
		s.SwitchMode(ModeEdit)
		if got := s.Snapshot(); got.Mode != ModeEdit || got.Tool != ToolNone {
			t.Fatalf("after edit: %+v", got)
		}
	})

	t.Run("tool switch ignored outside draw", func(t *testing.T) {
		s.SwitchTool(ToolSection)
		if got := s.Snapshot().Tool; got != ToolNone {
			t.Fatalf("tool = %q, want none", got)
		}
	})
}

func TestSession_EscapeClearsSelection(t *testing.T) {
	t.Parallel()

	for _, mode := range []Mode{ModeView, ModeDraw, ModeEdit} {
		t.Run(string(mode), func(t *testing.T) {
			s, _ := newTestSession(t)
			s.SwitchMode(mode)
			s.SelectSeats("s1", "s2")
			s.SelectSection("sec-1")

			s.Escape()

			got := s.Snapshot()
			if len(got.SeatIDs) != 0 || got.SectionID != "" {
				t.Fatalf("selection not cleared: %+v", got)
			}
			if mode == ModeDraw && got.Tool != ToolNone {
				t.Fatalf("draw-mode escape kept tool %q", got.Tool)
			}
		})
	}
}

func TestSession_DeleteSelected(t *testing.T) {
	t.Parallel()

	s, rec := newTestSession(t)
	s.SelectSeats("s2", "s1")
	s.SelectSection("sec-9")

	s.DeleteSelected()

	if !reflect.DeepEqual(rec.deletedSeats, []string{"s1", "s2"}) {
		t.Fatalf("deleted seats = %v", rec.deletedSeats)
	}
	if rec.deletedSection != "sec-9" {
		t.Fatalf("deleted section = %q", rec.deletedSection)
	}
	got := s.Snapshot()
	if len(got.SeatIDs) != 0 || got.SectionID != "" {
		t.Fatalf("selection survived delete: %+v", got)
	}

	t.Run("empty selection does not invoke the callback", func(t *testing.T) {
		before := rec.calls
		s.DeleteSelected()
		if rec.calls != before {
			t.Fatal("delete callback fired with nothing selected")
		}
	})
}

func TestSession_SelectAll(t *testing.T) {
	t.Parallel()

	t.Run("selects every known seat outside draw", func(t *testing.T) {
		s, _ := newTestSession(t)
		s.SelectAll()
		if got := s.Snapshot().SeatIDs; !reflect.DeepEqual(got, []string{"s1", "s2", "s3"}) {
			t.Fatalf("selection = %v", got)
		}
	})

	t.Run("disabled in draw mode", func(t *testing.T) {
		s, _ := newTestSession(t)
		s.SwitchMode(ModeDraw)
		s.SelectAll()
		if got := s.Snapshot().SeatIDs; len(got) != 0 {
			t.Fatalf("selection = %v, want empty", got)
		}
	})
}

func TestSession_ToggleSeat(t *testing.T) {
	t.Parallel()

	s, _ := newTestSession(t)
	s.ToggleSeat("s1")
	if got := s.Snapshot().SeatIDs; !reflect.DeepEqual(got, []string{"s1"}) {
		t.Fatalf("selection = %v", got)
	}
	s.ToggleSeat("s1")
	if got := s.Snapshot().SeatIDs; len(got) != 0 {
		t.Fatalf("selection = %v, want empty", got)
	}
}

func TestKeymap_Bindings(t *testing.T) {
	t.Parallel()

	s, rec := newTestSession(t)
	km := &Keymap{Session: s}

	if !km.Handle(KeyEvent{Key: "d"}) {
		t.Fatal("d not consumed")
	}
	if got := s.Snapshot(); got.Mode != ModeDraw || got.Tool != ToolSeat {
		t.Fatalf("after d: %+v", got)
	}
	if !km.Handle(KeyEvent{Key: "3"}) {
		t.Fatal("3 not consumed in draw mode")
	}
	if got := s.Snapshot().Tool; got != ToolArcSection {
		t.Fatalf("tool = %q", got)
	}

	km.Handle(KeyEvent{Key: "v"})
	if km.Handle(KeyEvent{Key: "2"}) {
		t.Fatal("tool key consumed outside draw mode")
	}

	s.SelectSeats("s1")
	if !km.Handle(KeyEvent{Key: "Backspace"}) {
		t.Fatal("Backspace not consumed")
	}
	if rec.calls != 1 {
		t.Fatalf("delete callback calls = %d", rec.calls)
	}
}

func TestKeymap_InputGuard(t *testing.T) {
	t.Parallel()

	t.Run("Delete from a text input is ignored", func(t *testing.T) {
		s, rec := newTestSession(t)
		km := &Keymap{Session: s}
		s.SelectSeats("s1")

		if km.Handle(KeyEvent{Key: "Delete", FromInput: true}) {
			t.Fatal("event consumed despite input focus")
		}
		if rec.calls != 0 {
			t.Fatal("delete fired from a text input")
		}
	})

	t.Run("EnabledInInputs opts back in", func(t *testing.T) {
		s, rec := newTestSession(t)
		km := &Keymap{Session: s, EnabledInInputs: true}
		s.SelectSeats("s1")

		if !km.Handle(KeyEvent{Key: "Delete", FromInput: true}) {
			t.Fatal("event not consumed with opt-in")
		}
		if rec.calls != 1 {
			t.Fatal("delete did not fire with opt-in")
		}
	})

	t.Run("DisabledWhen suspends everything", func(t *testing.T) {
		s, _ := newTestSession(t)
		km := &Keymap{Session: s, DisabledWhen: func() bool { return true }}
		if km.Handle(KeyEvent{Key: "d"}) {
			t.Fatal("event consumed while disabled")
		}
		if got := s.Snapshot().Mode; got != ModeView {
			t.Fatalf("mode changed while disabled: %q", got)
		}
	})
}

func TestKeymap_SelectAllBinding(t *testing.T) {
	t.Parallel()

	s, _ := newTestSession(t)
	km := &Keymap{Session: s}

	if km.Handle(KeyEvent{Key: "a"}) {
		t.Fatal("unmodified a should not select all")
	}
	if !km.Handle(KeyEvent{Key: "a", Ctrl: true}) {
		t.Fatal("ctrl+a not consumed")
	}
	if got := len(s.Snapshot().SeatIDs); got != 3 {
		t.Fatalf("selected %d seats, want 3", got)
	}

	t.Run("suppressed in draw mode", func(t *testing.T) {
		s, _ := newTestSession(t)
		km := &Keymap{Session: s}
		km.Handle(KeyEvent{Key: "d"})
		if km.Handle(KeyEvent{Key: "a", Meta: true}) {
			t.Fatal("cmd+a consumed in draw mode")
		}
		if got := len(s.Snapshot().SeatIDs); got != 0 {
			t.Fatalf("selected %d seats in draw mode", got)
		}
	})
}

func TestKeymap_ZoomSignals(t *testing.T) {
	t.Parallel()

	t.Run("signals reach a plain subscriber", func(t *testing.T) {
		s, _ := newTestSession(t)
		km := &Keymap{Session: s}
		var got []ZoomSignal
		cancel := s.Bus().Subscribe(func(sig ZoomSignal) { got = append(got, sig) })
		defer cancel()

		km.Handle(KeyEvent{Key: "=", Ctrl: true})
		km.Handle(KeyEvent{Key: "-", Meta: true})
		km.Handle(KeyEvent{Key: "0", Ctrl: true})

		want := []ZoomSignal{ZoomInSignal, ZoomOutSignal, ZoomResetSignal}
		if !reflect.DeepEqual(got, want) {
			t.Fatalf("signals = %v, want %v", got, want)
		}
	})

	t.Run("a wired viewport engine reacts without the keymap knowing it", func(t *testing.T) {
		eng := viewport.New(viewport.DefaultOptions())
		eng.SetContainer(geometry.Size{Width: 800, Height: 600})
		s := NewSession(SessionConfig{Viewport: eng})
		defer s.Close()
		km := &Keymap{Session: s}

		km.Handle(KeyEvent{Key: "+", Ctrl: true})
		if got := eng.Scale(); got != 1.25 {
			t.Fatalf("scale = %v, want 1.25", got)
		}
		km.Handle(KeyEvent{Key: "0", Ctrl: true})
		if got := eng.Scale(); got != 1 {
			t.Fatalf("scale after reset = %v, want 1", got)
		}

		t.Run("unsubscribed after close", func(t *testing.T) {
			s.Close()
			km.Handle(KeyEvent{Key: "+", Ctrl: true})
			if got := eng.Scale(); got != 1 {
				t.Fatalf("closed session still zooms: %v", got)
			}
		})
	})
}

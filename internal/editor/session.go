// Package editor holds the seat-map editor's mode/tool/selection state
// machine and its keyboard dispatch. All state is owned by one Session
// created at editor mount and discarded at unmount; there is no
// process-wide store. Mutations go through explicit commands and reads
// return immutable snapshots, keeping single-writer discipline.
package editor

import (
	"sort"
	"sync"

	"github.com/iliyamo/venue-seatmap-editor/internal/viewport"
)

// Mode is the top-level editor mode.
type Mode string

const (
	ModeView Mode = "view"
	ModeDraw Mode = "draw"
	ModeEdit Mode = "edit"
)

// Tool is the drawing primitive active while in draw mode.
type Tool string

const (
	ToolNone       Tool = ""
	ToolSeat       Tool = "seat"
	ToolSection    Tool = "section"
	ToolArcSection Tool = "arc-section"
)

// Selection is an immutable snapshot of the editor's selection state.
type Selection struct {
	Mode      Mode
	Tool      Tool
	SeatIDs   []string // sorted
	SectionID string
}

// SessionConfig wires a Session to its collaborators. Viewport may be
// nil when the host drives zoom itself; SeatIDs supplies the known
// seat ids for select-all; Delete performs the actual removal when the
// delete command fires.
type SessionConfig struct {
	Viewport *viewport.Engine
	SeatIDs  func() []string
	Delete   func(seatIDs []string, sectionID string)
}

// Session is the editor-session state container. Created with
// ModeView and an empty selection.
type Session struct {
	mu        sync.Mutex
	mode      Mode
	tool      Tool
	seats     map[string]struct{}
	sectionID string

	bus         *SignalBus
	unsubscribe func()
	cfg         SessionConfig
}

// NewSession builds a Session and, when a viewport engine is supplied,
// subscribes it to the session's zoom signal bus.
func NewSession(cfg SessionConfig) *Session {
	s := &Session{
		mode:  ModeView,
		seats: make(map[string]struct{}),
		bus:   NewSignalBus(),
		cfg:   cfg,
	}
	if cfg.Viewport != nil {
		s.unsubscribe = s.bus.Subscribe(func(sig ZoomSignal) {
			switch sig {
			case ZoomInSignal:
				cfg.Viewport.ZoomIn()
			case ZoomOutSignal:
				cfg.Viewport.ZoomOut()
			case ZoomResetSignal:
				cfg.Viewport.ResetView()
			}
		})
	}
	return s
}

// Bus exposes the session's signal bus for additional subscribers.
func (s *Session) Bus() *SignalBus { return s.bus }

// Close detaches the viewport subscription. The session must not be
// used afterwards.
func (s *Session) Close() {
	if s.unsubscribe != nil {
		s.unsubscribe()
		s.unsubscribe = nil
	}
}

// Snapshot returns a copy of the current selection state with seat ids
// sorted for stable iteration.
func (s *Session) Snapshot() Selection {
	s.mu.Lock()
	defer s.mu.Unlock()
	ids := make([]string, 0, len(s.seats))
	for id := range s.seats {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return Selection{Mode: s.mode, Tool: s.tool, SeatIDs: ids, SectionID: s.sectionID}
}

// SwitchMode changes the editor mode. Entering draw activates the
// default seat tool; leaving it clears the active tool.
func (s *Session) SwitchMode(m Mode) {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch m {
	case ModeView, ModeDraw, ModeEdit:
	default:
		return
	}
	s.mode = m
	if m == ModeDraw {
		s.tool = ToolSeat
	} else {
		s.tool = ToolNone
	}
}

// SwitchTool activates a drawing tool. Ignored outside draw mode.
func (s *Session) SwitchTool(t Tool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.mode != ModeDraw {
		return
	}
	switch t {
	case ToolSeat, ToolSection, ToolArcSection, ToolNone:
		s.tool = t
	}
}

// SelectSeats adds the given seat ids to the selection.
func (s *Session) SelectSeats(ids ...string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, id := range ids {
		if id != "" {
			s.seats[id] = struct{}{}
		}
	}
}

// ToggleSeat flips a single seat in and out of the selection.
func (s *Session) ToggleSeat(id string) {
	if id == "" {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.seats[id]; ok {
		delete(s.seats, id)
		return
	}
	s.seats[id] = struct{}{}
}

// SelectSection marks a section as selected.
func (s *Session) SelectSection(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sectionID = id
}

// SelectAll selects every known seat id. Disabled while drawing, where
// keyboard input belongs to the active tool.
func (s *Session) SelectAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.mode == ModeDraw || s.cfg.SeatIDs == nil {
		return
	}
	for _, id := range s.cfg.SeatIDs() {
		if id != "" {
			s.seats[id] = struct{}{}
		}
	}
}

// ClearSelection empties the seat selection and the selected section.
func (s *Session) ClearSelection() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clearLocked()
}

// Escape clears the selection and, in draw mode, also drops the active
// tool.
func (s *Session) Escape() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clearLocked()
	if s.mode == ModeDraw {
		s.tool = ToolNone
	}
}

// DeleteSelected removes everything selected: all seat ids plus the
// selected section when set. The configured delete callback performs
// the actual removal; the selection is cleared afterwards.
func (s *Session) DeleteSelected() {
	s.mu.Lock()
	ids := make([]string, 0, len(s.seats))
	for id := range s.seats {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	section := s.sectionID
	del := s.cfg.Delete
	s.clearLocked()
	s.mu.Unlock()

	if del != nil && (len(ids) > 0 || section != "") {
		del(ids, section)
	}
}

func (s *Session) clearLocked() {
	s.seats = make(map[string]struct{})
	s.sectionID = ""
}

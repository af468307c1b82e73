package editor

// KeyEvent is the normalized form of a host keyboard event. Key uses
// the DOM KeyboardEvent.Key names ("v", "Delete", "Escape", "+", ...).
// FromInput marks events whose focus target is a text input, textarea
// or select element.
type KeyEvent struct {
	Key       string
	Ctrl      bool
	Meta      bool
	FromInput bool
}

func (e KeyEvent) modified() bool { return e.Ctrl || e.Meta }

// Keymap routes keyboard events to session commands and zoom signals.
// It never talks to a viewport engine directly: zoom shortcuts go out
// on the session bus so the dispatcher stays testable in isolation.
//
// Bindings (no modifier unless noted):
//
//	v / d / e            switch to view / draw / edit mode
//	1 / 2 / 3            seat / section / arc-section tool (draw mode)
//	Delete, Backspace    delete selection
//	Escape               clear selection (+ tool in draw mode)
//	Ctrl/Cmd+a           select all (outside draw mode)
//	Ctrl/Cmd + = or +    zoom in
//	Ctrl/Cmd + -         zoom out
//	Ctrl/Cmd + 0         reset zoom
type Keymap struct {
	Session *Session
	// EnabledInInputs lets shortcuts fire while a text field has
	// focus. Off by default so typing never deletes seats.
	EnabledInInputs bool
	// DisabledWhen suspends all shortcuts while it returns true,
	// e.g. while a modal dialog is open.
	DisabledWhen func() bool
}

// Handle dispatches one keyboard event. It reports whether the event
// was consumed so the host knows to suppress the browser default.
func (k *Keymap) Handle(ev KeyEvent) bool {
	if k.Session == nil {
		return false
	}
	if k.DisabledWhen != nil && k.DisabledWhen() {
		return false
	}
	if ev.FromInput && !k.EnabledInInputs {
		return false
	}

	if ev.modified() {
		switch ev.Key {
		case "a", "A":
			if k.Session.Snapshot().Mode == ModeDraw {
				return false
			}
			k.Session.SelectAll()
			return true
		case "=", "+":
			k.Session.Bus().Publish(ZoomInSignal)
			return true
		case "-":
			k.Session.Bus().Publish(ZoomOutSignal)
			return true
		case "0":
			k.Session.Bus().Publish(ZoomResetSignal)
			return true
		}
		return false
	}

	switch ev.Key {
	case "v", "V":
		k.Session.SwitchMode(ModeView)
	case "d", "D":
		k.Session.SwitchMode(ModeDraw)
	case "e", "E":
		k.Session.SwitchMode(ModeEdit)
	case "1", "2", "3":
		if k.Session.Snapshot().Mode != ModeDraw {
			return false
		}
		tools := map[string]Tool{"1": ToolSeat, "2": ToolSection, "3": ToolArcSection}
		k.Session.SwitchTool(tools[ev.Key])
	case "Delete", "Backspace":
		k.Session.DeleteSelected()
	case "Escape":
		k.Session.Escape()
	default:
		return false
	}
	return true
}

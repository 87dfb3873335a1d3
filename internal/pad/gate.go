package pad

import (
	"log"

	"MySketchPad/internal/state"
)

// Intent is what the confirmation dialog will do when confirmed.
type Intent int

const (
	IntentNone Intent = iota
	IntentConfirmClear
	IntentConfirmClose
)

func (i Intent) String() string {
	switch i {
	case IntentConfirmClear:
		return "clear"
	case IntentConfirmClose:
		return "close"
	default:
		return "none"
	}
}

// Prompt is what the dialog collaborator renders.
type Prompt struct {
	ID      string
	Width   int
	Height  int
	Title   string
	Message string
}

const (
	dialogID     = "clear-dialog"
	dialogWidth  = 300
	dialogHeight = 120
)

// PromptFor returns the dialog copy for intent.
func PromptFor(intent Intent) Prompt {
	p := Prompt{ID: dialogID, Width: dialogWidth, Height: dialogHeight}
	switch intent {
	case IntentConfirmClose:
		p.Title, p.Message = "Close and exit?", "You will lose your drawings."
	default:
		p.Title, p.Message = "Clear drawings?", "This action cannot be undone."
	}
	return p
}

// Dialog is a modal with Cancel and Confirm buttons. The pad supplies the
// copy and callbacks; rendering belongs to the host.
type Dialog interface {
	Open(p Prompt, onConfirm, onCancel func())
	Close()
}

// Gate routes clear and close requests through one shared confirmation
// dialog. Only one intent can be pending at a time.
type Gate struct {
	mount   *mount
	history *History
	dialog  Dialog
	host    state.Closer

	intent Intent
	open   bool

	// onReset runs after a confirmed clear, before the host is told to close.
	onReset func()
}

func newGate(m *mount, h *History, d Dialog, host state.Closer, onReset func()) *Gate {
	return &Gate{mount: m, history: h, dialog: d, host: host, onReset: onReset}
}

func (g *Gate) Intent() Intent { return g.intent }

func (g *Gate) DialogOpen() bool { return g.open }

// RequestClear asks to wipe the surface. Nothing happens on an empty history.
func (g *Gate) RequestClear() {
	if g.history.Empty() || g.open {
		return
	}
	g.show(IntentConfirmClear)
}

// RequestClose is called by the host when the user closes the window. An
// empty pad closes at once; otherwise the user must confirm losing work.
func (g *Gate) RequestClose() {
	if g.history.Empty() {
		g.signalClosed()
		return
	}
	if g.open {
		return
	}
	g.show(IntentConfirmClose)
}

// Confirm performs the pending intent.
func (g *Gate) Confirm() {
	if !g.open {
		return
	}
	intent := g.intent
	if s, ok := g.mount.get(); ok {
		s.Clear()
	}
	g.history.Reset()
	if g.onReset != nil {
		g.onReset()
	}
	g.hide()
	log.Printf("[GATE] Confirmed %s", intent)
	if intent == IntentConfirmClose {
		g.signalClosed()
	}
}

// Cancel dismisses the dialog and leaves surface and history alone.
func (g *Gate) Cancel() {
	if !g.open {
		return
	}
	log.Printf("[GATE] Cancelled %s", g.intent)
	g.hide()
}

func (g *Gate) show(intent Intent) {
	g.intent = intent
	g.open = true
	log.Printf("[GATE] Asking to confirm %s", intent)
	if g.dialog != nil {
		g.dialog.Open(PromptFor(intent), g.Confirm, g.Cancel)
	}
}

func (g *Gate) hide() {
	g.intent = IntentNone
	g.open = false
	if g.dialog != nil {
		g.dialog.Close()
	}
}

func (g *Gate) signalClosed() {
	if g.host != nil {
		g.host.SetClosed()
	}
}

package pad

import (
	"fmt"
	"image/color"
	"log"
	"time"

	"MySketchPad/internal/export"
	"MySketchPad/internal/state"
)

// Downloader persists a generated file, e.g. through a save dialog.
type Downloader interface {
	Download(f export.File)
}

// Options configures a new Session.
type Options struct {
	// Tools is the toolbar state a fresh or cleared pad starts with.
	Tools         state.ToolState
	LegacyHistory bool
	ExportFormat  export.Format
}

// DefaultOptions is a black pen of width 5 exporting PNG.
func DefaultOptions() Options {
	return Options{Tools: state.DefaultTools(), ExportFormat: export.FormatPNG}
}

// Session is one mounted drawing pad. The host creates it when the pad
// window opens and drops it once the gate reports the window closed.
type Session struct {
	ID string

	mount    mount
	tools    state.ToolState
	defaults state.ToolState
	format   export.Format

	tracker *Tracker
	history *History
	gate    *Gate

	downloader Downloader

	// OnToolsChanged fires whenever the tool state changes, including the
	// reset that follows a confirmed clear.
	OnToolsChanged func(state.ToolState)
	// OnHistoryChanged reports undo/redo availability.
	OnHistoryChanged func(canUndo, canRedo bool)
}

// NewSession wires a pad to its dialog, host and downloader. Any of the
// collaborators may be nil.
func NewSession(opts Options, dialog Dialog, host state.Closer, downloader Downloader) *Session {
	if opts.Tools.LineWidth == 0 {
		opts.Tools = state.DefaultTools()
	}
	opts.Tools.LineWidth = state.ClampLineWidth(opts.Tools.LineWidth)
	if opts.ExportFormat == "" {
		opts.ExportFormat = export.FormatPNG
	}

	s := &Session{
		ID:         state.NewSessionID(),
		tools:      opts.Tools,
		defaults:   opts.Tools,
		format:     opts.ExportFormat,
		downloader: downloader,
	}
	s.history = newHistory(&s.mount)
	s.history.Legacy = opts.LegacyHistory
	s.history.OnChange = func(u, r bool) {
		if s.OnHistoryChanged != nil {
			s.OnHistoryChanged(u, r)
		}
	}
	s.tracker = newTracker(&s.mount, &s.tools, s.history.Commit)
	s.gate = newGate(&s.mount, s.history, dialog, host, s.resetTools)
	log.Printf("[PAD] Session %s created", s.ID)
	return s
}

// Attach mounts the surface the pad draws on.
func (s *Session) Attach(surface Surface) { s.mount.surface = surface }

// Detach unmounts the surface. Operations that need it become no-ops.
func (s *Session) Detach() {
	s.tracker.Reset()
	s.mount.surface = nil
}

func (s *Session) History() *History { return s.history }

func (s *Session) Gate() *Gate { return s.gate }

func (s *Session) Tracker() *Tracker { return s.tracker }

// Pointer input.

func (s *Session) PointerDown(p state.Point) { s.tracker.PointerDown(p) }
func (s *Session) PointerMove(p state.Point) { s.tracker.PointerMove(p) }
func (s *Session) PointerUp()                { s.tracker.PointerUp() }
func (s *Session) PointerLeave()             { s.tracker.PointerLeave() }

// Toolbar.

func (s *Session) Tools() state.ToolState { return s.tools }

func (s *Session) SelectPen() { s.setTool(state.ToolPen) }

func (s *Session) SelectEraser() { s.setTool(state.ToolEraser) }

func (s *Session) SetColor(c color.Color) {
	s.tools.StrokeColor = state.ToNRGBA(c)
	log.Printf("[PAD] Stroke color %s", state.ColorName(s.tools.StrokeColor))
	s.toolsChanged()
}

func (s *Session) SetLineWidth(w int) {
	s.tools.LineWidth = state.ClampLineWidth(w)
	s.toolsChanged()
}

func (s *Session) setTool(t state.Tool) {
	if s.tools.Tool == t {
		return
	}
	s.tools.Tool = t
	s.toolsChanged()
}

func (s *Session) resetTools() {
	s.tracker.Reset()
	s.tools = s.defaults
	s.toolsChanged()
}

func (s *Session) toolsChanged() {
	if s.OnToolsChanged != nil {
		s.OnToolsChanged(s.tools)
	}
}

// History.

func (s *Session) Undo()         { s.history.Undo() }
func (s *Session) Redo()         { s.history.Redo() }
func (s *Session) CanUndo() bool { return s.history.CanUndo() }
func (s *Session) CanRedo() bool { return s.history.CanRedo() }

// Destructive actions.

// RequestClear opens the clear confirmation when there is something to clear.
func (s *Session) RequestClear() { s.gate.RequestClear() }

// RequestClose is the host's entry point for the window close control. A
// stroke still in progress is committed first.
func (s *Session) RequestClose() {
	s.tracker.Finish()
	s.gate.RequestClose()
}

func (s *Session) ConfirmDialog() { s.gate.Confirm() }
func (s *Session) CancelDialog()  { s.gate.Cancel() }

// Export.

// Export flattens the surface onto white and encodes it in the session's format.
func (s *Session) Export(now time.Time) (export.File, error) {
	surface, ok := s.mount.get()
	if !ok {
		return export.File{}, ErrNoSurface
	}
	snap, err := surface.Snapshot()
	if err != nil {
		return export.File{}, fmt.Errorf("export: %w", err)
	}
	return export.Encode(snap, s.format, now)
}

// Download exports the surface and hands it to the downloader.
func (s *Session) Download(now time.Time) error {
	f, err := s.Export(now)
	if err != nil {
		return err
	}
	log.Printf("[EXPORT] %s (%d bytes)", f.FullName(), len(f.Data))
	if s.downloader != nil {
		s.downloader.Download(f)
	}
	return nil
}

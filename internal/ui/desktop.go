package ui

import (
	"fmt"
	"log"

	"MySketchPad/internal/config"
	"MySketchPad/internal/pad"
	"MySketchPad/internal/state"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// Desktop is the host: a dock window that launches the drawing pad and owns
// its lifecycle state.
type Desktop struct {
	app     fyne.App
	cfg     config.Config
	loop    pad.Loop
	Drawing *state.Lifecycle

	dock    fyne.Window
	drawing *drawingWindow
}

// drawingWindow is one mounted pad session.
type drawingWindow struct {
	win     fyne.Window
	session *pad.Session
	raster  *pad.Raster
	board   *PadWidget
	toolbar *Toolbar
	dialog  *confirmDialog
}

// hostCloser is the only handle a session gets on the desktop.
type hostCloser struct{ d *Desktop }

func (h hostCloser) SetClosed() { h.d.closeDrawing() }

func NewDesktop(a fyne.App, cfg config.Config) *Desktop {
	d := &Desktop{
		app:     a,
		cfg:     cfg,
		loop:    mainLoop,
		Drawing: &state.Lifecycle{Name: "Drawing"},
	}
	d.dock = a.NewWindow("Desktop")
	launch := widget.NewButtonWithIcon("Drawing", theme.DocumentCreateIcon(), func() {
		if err := d.LaunchDrawing(); err != nil {
			log.Printf("[HOST] Could not launch drawing pad: %v", err)
		}
	})
	d.dock.SetContent(container.NewCenter(launch))
	d.dock.Resize(fyne.NewSize(320, 120))

	a.Lifecycle().SetOnEnteredForeground(func() {
		if d.Drawing.Running() {
			d.Drawing.Set(state.RunningForeground)
		}
	})
	a.Lifecycle().SetOnExitedForeground(func() {
		if d.Drawing.Running() {
			d.Drawing.Set(state.RunningBackground)
		}
	})
	return d
}

func (d *Desktop) Dock() fyne.Window { return d.dock }

// LaunchDrawing opens the pad, or brings an open one to the front.
func (d *Desktop) LaunchDrawing() error {
	if d.drawing != nil {
		d.drawing.win.RequestFocus()
		d.Drawing.Set(state.RunningForeground)
		return nil
	}
	opts, err := d.cfg.PadOptions()
	if err != nil {
		return fmt.Errorf("pad options: %w", err)
	}

	w := &drawingWindow{win: d.app.NewWindow("Drawing")}
	w.dialog = newConfirmDialog(w.win)
	saver := &fileSaver{win: w.win}
	w.session = pad.NewSession(opts, w.dialog, hostCloser{d}, saver)
	w.raster = pad.NewRaster(d.cfg.Width, d.cfg.Height, d.loop)
	w.session.Attach(w.raster)
	w.board = NewPadWidget(w.session, w.raster)
	w.toolbar = NewToolbar(w.session, w.win)
	saver.status = w.toolbar.SetStatus

	w.win.SetContent(container.NewBorder(w.toolbar.Content(), nil, nil, nil, w.board))
	w.win.SetCloseIntercept(w.session.RequestClose)
	w.win.Resize(fyne.NewSize(float32(d.cfg.Width), float32(d.cfg.Height)+60))
	d.drawing = w
	d.Drawing.Set(state.RunningForeground)
	w.win.Show()
	return nil
}

// Session returns the mounted pad session, if any.
func (d *Desktop) Session() (*pad.Session, bool) {
	if d.drawing == nil {
		return nil, false
	}
	return d.drawing.session, true
}

func (d *Desktop) closeDrawing() {
	w := d.drawing
	if w == nil {
		return
	}
	d.drawing = nil
	w.session.Detach()
	d.Drawing.SetClosed()
	w.win.Close()
}

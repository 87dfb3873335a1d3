package ui

import (
	"errors"
	"image/color"
	"log"
	"time"

	"MySketchPad/internal/pad"
	"MySketchPad/internal/state"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// eraserSwatch is the width-slider color while the eraser is active.
var eraserSwatch = color.NRGBA{R: 0xeb, G: 0xef, B: 0xf4, A: 0xff}

// --- Custom Widget for Color Swatches ---
type colorSwatch struct {
	widget.BaseWidget
	Color    color.Color
	OnTapped func(color.Color)

	active bool
	border *canvas.Rectangle
}

func newColorSwatch(c color.Color, tapped func(color.Color)) *colorSwatch {
	s := &colorSwatch{Color: c, OnTapped: tapped}
	s.border = canvas.NewRectangle(color.Transparent)
	s.border.StrokeColor = color.Gray{Y: 150}
	s.border.StrokeWidth = 1
	s.ExtendBaseWidget(s)
	return s
}

func (s *colorSwatch) CreateRenderer() fyne.WidgetRenderer {
	rect := canvas.NewRectangle(s.Color)
	rect.SetMinSize(fyne.NewSize(32, 32))
	return widget.NewSimpleRenderer(container.NewStack(rect, s.border))
}

func (s *colorSwatch) Tapped(_ *fyne.PointEvent) {
	if s.OnTapped != nil {
		s.OnTapped(s.Color)
	}
}

func (s *colorSwatch) SetActive(active bool) {
	if s.active == active {
		return
	}
	s.active = active
	if active {
		s.border.StrokeColor = theme.Color(theme.ColorNamePrimary)
		s.border.StrokeWidth = 3
	} else {
		s.border.StrokeColor = color.Gray{Y: 150}
		s.border.StrokeWidth = 1
	}
	s.border.Refresh()
}

// Toolbar is the pad's toolbox: options, tools, width and palette.
type Toolbar struct {
	session *pad.Session
	win     fyne.Window

	save, clear, undo, redo *widget.Button
	pen, eraser             *widget.Button
	custom                  *widget.Button
	toggle                  *widget.Button
	width                   *widget.Slider
	widthSwatch             *canvas.Rectangle
	swatches                []*colorSwatch
	status                  *widget.Label

	box     *fyne.Container
	content *fyne.Container

	now func() time.Time
}

// NewToolbar builds the toolbox for s and subscribes it to the session's
// tool and history changes.
func NewToolbar(s *pad.Session, win fyne.Window) *Toolbar {
	t := &Toolbar{session: s, win: win, now: time.Now}

	t.save = widget.NewButtonWithIcon("", theme.DocumentSaveIcon(), t.onSave)
	t.clear = widget.NewButtonWithIcon("", theme.ContentClearIcon(), s.RequestClear)
	t.undo = widget.NewButtonWithIcon("", theme.ContentUndoIcon(), s.Undo)
	t.redo = widget.NewButtonWithIcon("", theme.ContentRedoIcon(), s.Redo)

	t.pen = widget.NewButtonWithIcon("", theme.DocumentCreateIcon(), s.SelectPen)
	t.eraser = widget.NewButtonWithIcon("", theme.DeleteIcon(), s.SelectEraser)

	// --- Color Palette ---
	onColorTapped := func(c color.Color) { s.SetColor(c) }
	palette := container.NewHBox()
	for _, sw := range state.Palette {
		cs := newColorSwatch(sw.Color, onColorTapped)
		t.swatches = append(t.swatches, cs)
		palette.Add(cs)
	}
	t.custom = widget.NewButtonWithIcon("", theme.ColorPaletteIcon(), t.pickColor)
	palette.Add(t.custom)

	// --- Stroke Width Slider ---
	t.width = widget.NewSlider(state.MinLineWidth, state.MaxLineWidth)
	t.width.Step = 1
	t.width.SetValue(float64(s.Tools().LineWidth))
	t.width.OnChanged = func(v float64) {
		if int(v) != s.Tools().LineWidth {
			s.SetLineWidth(int(v))
		}
	}
	t.widthSwatch = canvas.NewRectangle(s.Tools().StrokeColor)
	t.widthSwatch.SetMinSize(fyne.NewSize(12, 12))
	sliderContainer := container.New(layout.NewGridWrapLayout(fyne.NewSize(150, 35)), t.width)

	t.status = widget.NewLabel("Ready")

	t.box = container.NewHBox(
		widget.NewLabel("Options:"),
		t.save, t.clear, t.undo, t.redo,
		widget.NewSeparator(),
		widget.NewLabel("Tool:"),
		t.pen, t.eraser,
		widget.NewSeparator(),
		widget.NewLabel("Size:"),
		t.widthSwatch,
		sliderContainer,
		widget.NewSeparator(),
		widget.NewLabel("Color:"),
		palette,
	)
	t.toggle = widget.NewButtonWithIcon("", theme.MenuDropUpIcon(), t.ToggleToolbox)
	t.content = container.NewHBox(t.toggle, t.box, layout.NewSpacer(), t.status)

	s.OnToolsChanged = t.syncTools
	s.OnHistoryChanged = t.syncHistory
	t.syncTools(s.Tools())
	t.syncHistory(s.CanUndo(), s.CanRedo())
	return t
}

func (t *Toolbar) Content() fyne.CanvasObject { return t.content }

// ToggleToolbox collapses or expands everything but the toggle and status.
func (t *Toolbar) ToggleToolbox() {
	if t.box.Visible() {
		t.box.Hide()
		t.toggle.SetIcon(theme.MenuDropDownIcon())
	} else {
		t.box.Show()
		t.toggle.SetIcon(theme.MenuDropUpIcon())
	}
}

func (t *Toolbar) SetStatus(text string) {
	t.status.SetText(text)
}

func (t *Toolbar) syncTools(ts state.ToolState) {
	if ts.EraserEnabled() {
		t.pen.Importance = widget.MediumImportance
		t.eraser.Importance = widget.HighImportance
		t.widthSwatch.FillColor = eraserSwatch
	} else {
		t.pen.Importance = widget.HighImportance
		t.eraser.Importance = widget.MediumImportance
		t.widthSwatch.FillColor = ts.StrokeColor
	}
	t.pen.Refresh()
	t.eraser.Refresh()
	t.widthSwatch.Refresh()

	if int(t.width.Value) != ts.LineWidth {
		t.width.SetValue(float64(ts.LineWidth))
	}
	for _, cs := range t.swatches {
		cs.SetActive(state.ToNRGBA(cs.Color) == ts.StrokeColor)
	}
}

func (t *Toolbar) syncHistory(canUndo, canRedo bool) {
	setEnabled(t.undo, canUndo)
	setEnabled(t.redo, canRedo)
}

func setEnabled(b *widget.Button, enabled bool) {
	if enabled {
		b.Enable()
	} else {
		b.Disable()
	}
}

func (t *Toolbar) pickColor() {
	picker := dialog.NewColorPicker("Stroke color", "Pick any color", func(c color.Color) {
		t.session.SetColor(c)
	}, t.win)
	picker.Advanced = true
	picker.SetColor(t.session.Tools().StrokeColor)
	picker.Show()
}

func (t *Toolbar) onSave() {
	err := t.session.Download(t.now())
	if errors.Is(err, pad.ErrNoSurface) {
		return
	}
	if err != nil {
		log.Printf("[UI] Export failed: %v", err)
		t.SetStatus("Export failed")
	}
}

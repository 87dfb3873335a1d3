package ui

import (
	"image/color"

	"MySketchPad/internal/pad"
	"MySketchPad/internal/state"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
)

// PadWidget shows a Raster and feeds pointer events to its Session.
type PadWidget struct {
	widget.BaseWidget
	session *pad.Session
	raster  *pad.Raster
	image   *canvas.Image
}

var _ fyne.Widget = (*PadWidget)(nil)
var _ fyne.Draggable = (*PadWidget)(nil)
var _ desktop.Mouseable = (*PadWidget)(nil)
var _ desktop.Hoverable = (*PadWidget)(nil)

func NewPadWidget(s *pad.Session, r *pad.Raster) *PadWidget {
	p := &PadWidget{session: s, raster: r}
	p.image = canvas.NewImageFromImage(r.Image())
	p.image.FillMode = canvas.ImageFillStretch
	p.image.ScaleMode = canvas.ImageScalePixels
	r.OnChange = p.image.Refresh
	p.ExtendBaseWidget(p)
	return p
}

// toSurface maps a widget position onto raster pixels.
func (p *PadWidget) toSurface(pos fyne.Position) state.Point {
	size := p.Size()
	b := p.raster.Bounds()
	if size.Width <= 0 || size.Height <= 0 {
		return state.Pt(float64(pos.X), float64(pos.Y))
	}
	return state.Pt(
		float64(pos.X)*float64(b.Dx())/float64(size.Width),
		float64(pos.Y)*float64(b.Dy())/float64(size.Height),
	)
}

func (p *PadWidget) MouseDown(e *desktop.MouseEvent) {
	if e.Button == desktop.MouseButtonPrimary {
		p.session.PointerDown(p.toSurface(e.Position))
	}
}

func (p *PadWidget) MouseUp(e *desktop.MouseEvent) {
	if e.Button == desktop.MouseButtonPrimary {
		p.session.PointerUp()
	}
}

func (p *PadWidget) MouseIn(*desktop.MouseEvent) {}

func (p *PadWidget) MouseMoved(e *desktop.MouseEvent) {
	p.session.PointerMove(p.toSurface(e.Position))
}

func (p *PadWidget) MouseOut() { p.session.PointerLeave() }

func (p *PadWidget) Dragged(e *fyne.DragEvent) {
	p.session.PointerMove(p.toSurface(e.Position))
}

func (p *PadWidget) DragEnd() { p.session.PointerUp() }

func (p *PadWidget) CreateRenderer() fyne.WidgetRenderer {
	r := &padWidgetRenderer{pad: p}
	r.background = canvas.NewRectangle(color.White)
	return r
}

type padWidgetRenderer struct {
	pad        *PadWidget
	background *canvas.Rectangle
}

func (r *padWidgetRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.background, r.pad.image}
}

func (r *padWidgetRenderer) Layout(size fyne.Size) {
	r.background.Resize(size)
	r.pad.image.Resize(size)
}

func (r *padWidgetRenderer) MinSize() fyne.Size {
	b := r.pad.raster.Bounds()
	return fyne.NewSize(float32(b.Dx()), float32(b.Dy()))
}

func (r *padWidgetRenderer) Refresh() {
	r.pad.image.Refresh()
}

func (r *padWidgetRenderer) Destroy() {}

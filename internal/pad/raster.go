package pad

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"log"
	"math"

	"MySketchPad/internal/state"

	"github.com/srwiley/rasterx"
	"golang.org/x/image/draw"
	"golang.org/x/image/math/fixed"
)

// Raster is the software Surface. Pixels are kept non-premultiplied so a
// PNG snapshot round-trips byte for byte.
type Raster struct {
	img    *image.NRGBA
	dasher *rasterx.Dasher
	loop   Loop

	// clock stamps every mutation; a restore only lands if its stamp is
	// still the newest when its decode completes.
	clock state.Clock
	// pending is the restore whose decode has not landed yet. Drawing,
	// erasing or snapshotting applies it first.
	pending *pendingRestore

	// OnChange is called after any visible pixel change.
	OnChange func()

	decode func(io.Reader) (image.Image, error)
	spawn  func(func())
}

var _ Surface = (*Raster)(nil)

// NewRaster returns a transparent width x height surface whose restores
// complete on loop.
func NewRaster(width, height int, loop Loop) *Raster {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	scanner := rasterx.NewScannerGV(width, height, img, img.Bounds())
	return &Raster{
		img:    img,
		dasher: rasterx.NewDasher(width, height, scanner),
		loop:   loop,
		decode: png.Decode,
		spawn:  func(fn func()) { go fn() },
	}
}

// Image exposes the live pixel buffer for display. Callers must not write to it.
func (r *Raster) Image() *image.NRGBA { return r.img }

// Bounds is the surface rectangle, always anchored at the origin.
func (r *Raster) Bounds() image.Rectangle { return r.img.Rect }

func (r *Raster) DrawSegment(from, to state.Point, c color.Color, width int) {
	r.settle()
	r.supersede()
	w := fixed.I(state.ClampLineWidth(width))
	r.dasher.Clear()
	r.dasher.SetStroke(w, w, rasterx.RoundCap, nil, rasterx.RoundGap, rasterx.Round, nil, 0)
	r.dasher.Start(rasterx.ToFixedP(from.X, from.Y))
	r.dasher.Line(rasterx.ToFixedP(to.X, to.Y))
	r.dasher.Stop(false)
	r.dasher.SetColor(c)
	r.dasher.Draw()
	r.dasher.Clear()
	r.changed()
}

func (r *Raster) EraseAt(center state.Point, size int) {
	r.settle()
	r.supersede()
	half := float64(size) / 2
	x0 := int(math.Round(center.X - half))
	y0 := int(math.Round(center.Y - half))
	rect := image.Rect(x0, y0, x0+size, y0+size).Intersect(r.img.Rect)
	if rect.Empty() {
		return
	}
	draw.Draw(r.img, rect, image.Transparent, image.Point{}, draw.Src)
	r.changed()
}

func (r *Raster) Clear() {
	r.pending = nil
	r.supersede()
	clear(r.img.Pix)
	r.changed()
}

func (r *Raster) Snapshot() (state.Snapshot, error) {
	r.settle()
	var buf bytes.Buffer
	if err := png.Encode(&buf, r.img); err != nil {
		return state.Snapshot{}, fmt.Errorf("encode snapshot: %w", err)
	}
	return state.NewSnapshot(buf.Bytes()), nil
}

type pendingRestore struct {
	gen  uint64
	snap state.Snapshot
	done func(error)
	// finished is set once done has been called.
	finished bool
}

// Restore decodes s off the event loop. A later Clear or Restore wins over
// this one; a draw, erase or snapshot applies it synchronously first.
func (r *Raster) Restore(s state.Snapshot, done func(error)) {
	p := &pendingRestore{gen: r.supersede(), snap: s, done: done}
	r.pending = p
	r.spawn(func() {
		var (
			img image.Image
			err error
		)
		if latest := r.clock.Current(); p.gen == latest {
			img, err = r.decode(s.Reader())
		}
		r.loop.Post(func() { r.land(p, img, err) })
	})
}

// land runs on the loop once p's decode has finished or been skipped.
func (r *Raster) land(p *pendingRestore, img image.Image, err error) {
	if r.pending != p {
		if !p.finished {
			log.Printf("[PAD] Dropping stale restore of %s (gen %d, latest %d)", p.snap.ID, p.gen, r.clock.Current())
			p.finish(ErrStaleRestore)
		}
		return
	}
	r.pending = nil
	r.apply(p, img, err)
}

// settle applies a pending restore now instead of waiting for its decode.
func (r *Raster) settle() {
	p := r.pending
	if p == nil {
		return
	}
	r.pending = nil
	img, err := r.decode(p.snap.Reader())
	r.apply(p, img, err)
}

func (r *Raster) apply(p *pendingRestore, img image.Image, err error) {
	if err != nil {
		log.Printf("[PAD] Restore of %s failed, keeping current pixels: %v", p.snap.ID, err)
		p.finish(fmt.Errorf("decode snapshot %s: %w", p.snap.ID, err))
		return
	}
	r.replace(img)
	r.changed()
	p.finish(nil)
}

func (p *pendingRestore) finish(err error) {
	p.finished = true
	finish(p.done, err)
}

func (r *Raster) replace(img image.Image) {
	if n, ok := img.(*image.NRGBA); ok && n.Rect == r.img.Rect && n.Stride == r.img.Stride {
		copy(r.img.Pix, n.Pix)
		return
	}
	clear(r.img.Pix)
	draw.Draw(r.img, r.img.Rect, img, img.Bounds().Min, draw.Src)
}

func (r *Raster) supersede() uint64 { return r.clock.Next() }

func (r *Raster) changed() {
	if r.OnChange != nil {
		r.OnChange()
	}
}

func finish(done func(error), err error) {
	if done != nil {
		done(err)
	}
}

// Package pad implements the drawing pad's stroke engine: a raster surface,
// the pointer gesture tracker, snapshot history with undo/redo, and the
// confirmation gate guarding clear and close.
//
// Everything in this package runs on the host's event loop and is not safe
// for concurrent use. The only asynchronous step is snapshot decoding during
// Restore, which hands its result back through a Loop.
package pad

import (
	"errors"
	"image/color"

	"MySketchPad/internal/state"
)

var (
	// ErrNoSurface is returned by operations that need a mounted surface.
	ErrNoSurface = errors.New("pad: no surface attached")
	// ErrStaleRestore is passed to a Restore callback when a newer
	// mutation superseded it before decoding finished.
	ErrStaleRestore = errors.New("pad: restore superseded")
)

// Surface is the pixel buffer the pad draws on.
type Surface interface {
	// DrawSegment strokes a line from a to b with round caps and joins.
	DrawSegment(from, to state.Point, c color.Color, width int)
	// EraseAt makes an axis-aligned size x size square centered on center
	// transparent.
	EraseAt(center state.Point, size int)
	// Clear makes every pixel transparent.
	Clear()
	// Snapshot encodes exactly what is visible now.
	Snapshot() (state.Snapshot, error)
	// Restore replaces all pixels with the decoded contents of s. The
	// replacement is not visible until done is called with a nil error.
	Restore(s state.Snapshot, done func(error))
}

// Loop runs functions on the host's event loop, in order.
type Loop interface {
	Post(fn func())
}

// LoopFunc adapts a function to the Loop interface.
type LoopFunc func(fn func())

func (f LoopFunc) Post(fn func()) { f(fn) }

// mount holds the surface shared by the tracker, history and gate.
// It is empty before the pad is attached and after it is torn down.
type mount struct {
	surface Surface
}

func (m *mount) get() (Surface, bool) {
	return m.surface, m.surface != nil
}

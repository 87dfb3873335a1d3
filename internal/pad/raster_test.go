package pad

import (
	"bytes"
	"image"
	"io"
	"testing"

	"MySketchPad/internal/state"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pixels(r *Raster) []byte {
	return bytes.Clone(r.Image().Pix)
}

func blank(r *Raster) bool {
	for _, b := range r.Image().Pix {
		if b != 0 {
			return false
		}
	}
	return true
}

func TestRasterDrawSegment(t *testing.T) {
	r := NewRaster(50, 50, newManualLoop())
	changes := 0
	r.OnChange = func() { changes++ }

	r.DrawSegment(state.Pt(10, 25), state.Pt(40, 25), state.Red, 5)

	on := r.Image().NRGBAAt(25, 25)
	assert.Greater(t, on.A, uint8(250))
	assert.Greater(t, on.R, uint8(250))
	assert.Less(t, on.G, uint8(5))
	assert.Zero(t, r.Image().NRGBAAt(0, 0).A)
	assert.Zero(t, r.Image().NRGBAAt(25, 10).A)
	assert.Equal(t, 1, changes)
}

func TestRasterRoundCaps(t *testing.T) {
	r := NewRaster(50, 50, newManualLoop())
	r.DrawSegment(state.Pt(20, 25), state.Pt(30, 25), state.Black, 10)

	// The cap extends half the width past the end point.
	assert.Greater(t, r.Image().NRGBAAt(33, 25).A, uint8(200))
	assert.Zero(t, r.Image().NRGBAAt(40, 25).A)
}

func TestRasterEraseAt(t *testing.T) {
	r := NewRaster(50, 50, newManualLoop())
	r.DrawSegment(state.Pt(5, 25), state.Pt(45, 25), state.Black, 10)
	require.NotZero(t, r.Image().NRGBAAt(25, 25).A)

	r.EraseAt(state.Pt(25, 25), 6)

	assert.Zero(t, r.Image().NRGBAAt(25, 25).A)
	assert.Zero(t, r.Image().NRGBAAt(22, 22).A)
	assert.NotZero(t, r.Image().NRGBAAt(15, 25).A)
	assert.NotZero(t, r.Image().NRGBAAt(35, 25).A)
}

func TestRasterEraseOutsideBounds(t *testing.T) {
	r := NewRaster(20, 20, newManualLoop())
	r.DrawSegment(state.Pt(0, 10), state.Pt(20, 10), state.Black, 4)
	before := pixels(r)

	r.EraseAt(state.Pt(-50, -50), 5)

	assert.Equal(t, before, pixels(r))
}

func TestRasterClear(t *testing.T) {
	r := NewRaster(20, 20, newManualLoop())
	r.DrawSegment(state.Pt(0, 0), state.Pt(20, 20), state.Blue, 3)
	require.False(t, blank(r))

	r.Clear()

	assert.True(t, blank(r))
}

func TestRasterRestoreRoundTrip(t *testing.T) {
	loop := newManualLoop()
	r := NewRaster(40, 30, loop)
	r.DrawSegment(state.Pt(3, 3), state.Pt(37, 27), state.Red, 4)
	want := pixels(r)
	snap, err := r.Snapshot()
	require.NoError(t, err)

	r.Clear()
	var got error = ErrNoSurface
	r.Restore(snap, func(err error) { got = err })
	assert.True(t, blank(r), "restore must not be visible before completion")

	loop.run(t, 1)
	assert.NoError(t, got)
	assert.Equal(t, want, pixels(r))
}

func TestRasterLatestRestoreWins(t *testing.T) {
	loop := newManualLoop()
	r := NewRaster(30, 30, loop)
	r.DrawSegment(state.Pt(5, 5), state.Pt(25, 5), state.Black, 3)
	first, err := r.Snapshot()
	require.NoError(t, err)
	r.DrawSegment(state.Pt(5, 20), state.Pt(25, 20), state.Green, 3)
	second, err := r.Snapshot()
	require.NoError(t, err)
	want := pixels(r)
	r.Clear()

	var errFirst, errSecond error
	r.Restore(first, func(err error) { errFirst = err })
	r.Restore(second, func(err error) { errSecond = err })
	loop.run(t, 2)

	assert.ErrorIs(t, errFirst, ErrStaleRestore)
	assert.NoError(t, errSecond)
	assert.Equal(t, want, pixels(r))
}

func TestRasterClearSupersedesRestore(t *testing.T) {
	loop := newManualLoop()
	r := NewRaster(20, 20, loop)
	r.DrawSegment(state.Pt(2, 10), state.Pt(18, 10), state.Black, 3)
	snap, err := r.Snapshot()
	require.NoError(t, err)

	var got error
	r.Restore(snap, func(err error) { got = err })
	r.Clear()
	loop.run(t, 1)

	assert.ErrorIs(t, got, ErrStaleRestore)
	assert.True(t, blank(r))
}

func TestRasterRestoreDecodeFailureKeepsPixels(t *testing.T) {
	loop := newManualLoop()
	r := NewRaster(20, 20, loop)
	r.DrawSegment(state.Pt(2, 10), state.Pt(18, 10), state.Black, 3)
	before := pixels(r)

	var got error
	r.Restore(state.NewSnapshot([]byte("not a png")), func(err error) { got = err })
	loop.run(t, 1)

	require.Error(t, got)
	assert.NotErrorIs(t, got, ErrStaleRestore)
	assert.Equal(t, before, pixels(r))
}

func TestRasterDrawAppliesPendingRestoreFirst(t *testing.T) {
	loop := newManualLoop()
	r := NewRaster(30, 30, loop)
	r.DrawSegment(state.Pt(2, 5), state.Pt(28, 5), state.Black, 3)
	snap, err := r.Snapshot()
	require.NoError(t, err)
	r.DrawSegment(state.Pt(2, 15), state.Pt(28, 15), state.Black, 3)

	calls := 0
	var got error = ErrNoSurface
	r.Restore(snap, func(err error) {
		calls++
		got = err
	})
	r.DrawSegment(state.Pt(2, 25), state.Pt(28, 25), state.Black, 3)

	assert.Equal(t, 1, calls)
	assert.NoError(t, got)
	assert.NotZero(t, r.Image().NRGBAAt(15, 5).A)
	assert.Zero(t, r.Image().NRGBAAt(15, 15).A)
	assert.NotZero(t, r.Image().NRGBAAt(15, 25).A)

	// The decode that was already in flight lands as a no-op.
	before := pixels(r)
	loop.run(t, 1)
	assert.Equal(t, 1, calls)
	assert.Equal(t, before, pixels(r))
}

func TestRasterSnapshotAppliesPendingRestore(t *testing.T) {
	loop := newManualLoop()
	r := NewRaster(20, 20, loop)
	r.DrawSegment(state.Pt(2, 10), state.Pt(18, 10), state.Black, 3)
	want := pixels(r)
	snap, err := r.Snapshot()
	require.NoError(t, err)
	r.Clear()

	r.Restore(snap, nil)
	_, err = r.Snapshot()
	require.NoError(t, err)

	assert.Equal(t, want, pixels(r))
}

func TestRasterSkipsDecodeForStaleRestore(t *testing.T) {
	loop := newManualLoop()
	r := NewRaster(20, 20, loop)
	var spawned []func()
	r.spawn = func(fn func()) { spawned = append(spawned, fn) }
	decodes := 0
	decode := r.decode
	r.decode = func(rd io.Reader) (image.Image, error) {
		decodes++
		return decode(rd)
	}
	r.DrawSegment(state.Pt(2, 10), state.Pt(18, 10), state.Black, 3)
	snap, err := r.Snapshot()
	require.NoError(t, err)
	want := pixels(r)
	r.Clear()

	var errFirst, errSecond error
	r.Restore(snap, func(err error) { errFirst = err })
	r.Restore(snap, func(err error) { errSecond = err })
	for _, fn := range spawned {
		fn()
	}
	loop.run(t, 2)

	assert.Equal(t, 1, decodes)
	assert.ErrorIs(t, errFirst, ErrStaleRestore)
	assert.NoError(t, errSecond)
	assert.Equal(t, want, pixels(r))
}

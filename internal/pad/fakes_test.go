package pad

import (
	"image/color"
	"testing"
	"time"

	"MySketchPad/internal/export"
	"MySketchPad/internal/state"
)

// manualLoop queues posted work until the test runs it.
type manualLoop struct {
	posted chan func()
}

func newManualLoop() *manualLoop {
	return &manualLoop{posted: make(chan func(), 64)}
}

func (l *manualLoop) Post(fn func()) { l.posted <- fn }

// run executes the next n posted functions, waiting for decodes to finish.
func (l *manualLoop) run(t *testing.T, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		select {
		case fn := <-l.posted:
			fn()
		case <-time.After(5 * time.Second):
			t.Fatalf("timed out waiting for posted work %d/%d", i+1, n)
		}
	}
}

type call struct {
	op       string
	from, to state.Point
	color    color.Color
	width    int
	snap     state.Snapshot
}

// fakeSurface records calls and restores synchronously.
type fakeSurface struct {
	calls       []call
	taken       int
	snapshotErr error

	// holdRestores queues restore callbacks in held instead of completing them.
	holdRestores bool
	held         []func(error)
}

func (f *fakeSurface) DrawSegment(from, to state.Point, c color.Color, width int) {
	f.calls = append(f.calls, call{op: "draw", from: from, to: to, color: c, width: width})
}

func (f *fakeSurface) EraseAt(center state.Point, size int) {
	f.calls = append(f.calls, call{op: "erase", to: center, width: size})
}

func (f *fakeSurface) Clear() {
	f.calls = append(f.calls, call{op: "clear"})
}

func (f *fakeSurface) Snapshot() (state.Snapshot, error) {
	if f.snapshotErr != nil {
		return state.Snapshot{}, f.snapshotErr
	}
	f.taken++
	return state.NewSnapshot([]byte{byte(f.taken)}), nil
}

func (f *fakeSurface) Restore(s state.Snapshot, done func(error)) {
	f.calls = append(f.calls, call{op: "restore", snap: s})
	if f.holdRestores {
		f.held = append(f.held, done)
		return
	}
	finish(done, nil)
}

func (f *fakeSurface) last() call {
	if len(f.calls) == 0 {
		return call{}
	}
	return f.calls[len(f.calls)-1]
}

func (f *fakeSurface) count(op string) int {
	n := 0
	for _, c := range f.calls {
		if c.op == op {
			n++
		}
	}
	return n
}

type fakeDialog struct {
	prompts   []Prompt
	closes    int
	onConfirm func()
	onCancel  func()
}

func (d *fakeDialog) Open(p Prompt, onConfirm, onCancel func()) {
	d.prompts = append(d.prompts, p)
	d.onConfirm, d.onCancel = onConfirm, onCancel
}

func (d *fakeDialog) Close() { d.closes++ }

type fakeHost struct{ closed int }

func (h *fakeHost) SetClosed() { h.closed++ }

type fakeDownloader struct{ files []export.File }

func (d *fakeDownloader) Download(f export.File) { d.files = append(d.files, f) }

package pad

import "MySketchPad/internal/state"

// GestureState is the tracker's per-gesture memory.
type GestureState struct {
	Active bool
	Last   state.Point
}

// Tracker turns pointer events into surface mutations. It owns a single
// gesture at a time: Idle -> Active on pointer-down, back to Idle on
// pointer-up or pointer-leave, which also commits history.
type Tracker struct {
	mount   *mount
	tools   *state.ToolState
	gesture GestureState

	onCommit func()
}

func newTracker(m *mount, tools *state.ToolState, onCommit func()) *Tracker {
	return &Tracker{mount: m, tools: tools, onCommit: onCommit}
}

// Gesture returns a copy of the current gesture state.
func (t *Tracker) Gesture() GestureState { return t.gesture }

// Active reports whether a gesture is in progress.
func (t *Tracker) Active() bool { return t.gesture.Active }

// PointerDown starts a gesture at p. It is ignored while another gesture
// is active or no surface is attached.
func (t *Tracker) PointerDown(p state.Point) {
	if t.gesture.Active {
		return
	}
	if _, ok := t.mount.get(); !ok {
		return
	}
	t.gesture = GestureState{Active: true, Last: p}
}

// PointerMove extends the active gesture to p.
func (t *Tracker) PointerMove(p state.Point) {
	if !t.gesture.Active {
		return
	}
	s, ok := t.mount.get()
	if !ok {
		return
	}
	tools := *t.tools
	if tools.EraserEnabled() {
		s.EraseAt(p, tools.LineWidth)
	} else {
		s.DrawSegment(t.gesture.Last, p, tools.StrokeColor, tools.LineWidth)
	}
	t.gesture.Last = p
}

// PointerUp ends the active gesture and commits it.
func (t *Tracker) PointerUp() { t.end() }

// PointerLeave ends the active gesture the same way PointerUp does, so a
// stroke that runs off the edge is kept.
func (t *Tracker) PointerLeave() { t.end() }

// Finish commits an in-progress gesture, if any.
func (t *Tracker) Finish() { t.end() }

// Reset drops the gesture without committing.
func (t *Tracker) Reset() { t.gesture = GestureState{} }

func (t *Tracker) end() {
	if !t.gesture.Active {
		return
	}
	t.gesture = GestureState{}
	if t.onCommit != nil {
		t.onCommit()
	}
}

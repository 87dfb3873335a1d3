package pad

import (
	"testing"

	"MySketchPad/internal/state"

	"github.com/stretchr/testify/assert"
)

func newTestTracker(s Surface) (*Tracker, *state.ToolState, *int) {
	tools := state.DefaultTools()
	commits := 0
	tr := newTracker(&mount{surface: s}, &tools, func() { commits++ })
	return tr, &tools, &commits
}

func TestTrackerIdleEventsAreNoOps(t *testing.T) {
	fs := &fakeSurface{}
	tr, _, commits := newTestTracker(fs)

	tr.PointerMove(state.Pt(1, 1))
	tr.PointerUp()
	tr.PointerLeave()

	assert.Empty(t, fs.calls)
	assert.Zero(t, *commits)
	assert.False(t, tr.Active())
}

func TestTrackerPenGesture(t *testing.T) {
	fs := &fakeSurface{}
	tr, tools, commits := newTestTracker(fs)
	tools.StrokeColor = state.Red
	tools.LineWidth = 7

	tr.PointerDown(state.Pt(1, 1))
	assert.Equal(t, GestureState{Active: true, Last: state.Pt(1, 1)}, tr.Gesture())
	tr.PointerMove(state.Pt(5, 5))
	tr.PointerMove(state.Pt(9, 2))
	tr.PointerUp()

	if assert.Len(t, fs.calls, 2) {
		assert.Equal(t, call{op: "draw", from: state.Pt(1, 1), to: state.Pt(5, 5), color: state.Red, width: 7}, fs.calls[0])
		assert.Equal(t, call{op: "draw", from: state.Pt(5, 5), to: state.Pt(9, 2), color: state.Red, width: 7}, fs.calls[1])
	}
	assert.Equal(t, 1, *commits)
	assert.Equal(t, GestureState{}, tr.Gesture())
}

func TestTrackerEraserGesture(t *testing.T) {
	fs := &fakeSurface{}
	tr, tools, _ := newTestTracker(fs)
	tools.Tool = state.ToolEraser
	tools.LineWidth = 12

	tr.PointerDown(state.Pt(0, 0))
	tr.PointerMove(state.Pt(3, 4))

	assert.Equal(t, call{op: "erase", to: state.Pt(3, 4), width: 12}, fs.last())
	assert.Zero(t, fs.count("draw"))
	assert.Equal(t, state.Pt(3, 4), tr.Gesture().Last)
}

func TestTrackerLeaveCommits(t *testing.T) {
	fs := &fakeSurface{}
	tr, _, commits := newTestTracker(fs)

	tr.PointerDown(state.Pt(0, 0))
	tr.PointerMove(state.Pt(10, 0))
	tr.PointerLeave()
	tr.PointerUp()

	assert.Equal(t, 1, *commits)
	assert.False(t, tr.Active())
}

func TestTrackerIgnoresSecondPointerDown(t *testing.T) {
	fs := &fakeSurface{}
	tr, _, _ := newTestTracker(fs)

	tr.PointerDown(state.Pt(1, 1))
	tr.PointerDown(state.Pt(50, 50))

	assert.Equal(t, state.Pt(1, 1), tr.Gesture().Last)
}

func TestTrackerWithoutSurface(t *testing.T) {
	tools := state.DefaultTools()
	commits := 0
	tr := newTracker(&mount{}, &tools, func() { commits++ })

	tr.PointerDown(state.Pt(1, 1))
	tr.PointerMove(state.Pt(2, 2))
	tr.PointerUp()

	assert.False(t, tr.Active())
	assert.Zero(t, commits)
}

func TestTrackerResetDropsGesture(t *testing.T) {
	fs := &fakeSurface{}
	tr, _, commits := newTestTracker(fs)

	tr.PointerDown(state.Pt(1, 1))
	tr.Reset()
	tr.PointerUp()

	assert.Zero(t, *commits)
}

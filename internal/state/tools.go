package state

import "image/color"

// Stroke width bounds, in pixels.
const (
	MinLineWidth     = 1
	MaxLineWidth     = 20
	DefaultLineWidth = 5
)

// Tool is the active drawing tool. Pen and eraser are mutually exclusive.
type Tool int

const (
	ToolPen Tool = iota
	ToolEraser
)

func (t Tool) String() string {
	if t == ToolEraser {
		return "eraser"
	}
	return "pen"
}

// ToolState is the toolbar's current selection.
type ToolState struct {
	StrokeColor color.NRGBA
	LineWidth   int
	Tool        Tool
}

// DefaultTools is a black pen of width DefaultLineWidth.
func DefaultTools() ToolState {
	return ToolState{
		StrokeColor: Black,
		LineWidth:   DefaultLineWidth,
		Tool:        ToolPen,
	}
}

// EraserEnabled reports whether pointer moves erase instead of draw.
func (t ToolState) EraserEnabled() bool { return t.Tool == ToolEraser }

// ClampLineWidth forces w into [MinLineWidth, MaxLineWidth].
func ClampLineWidth(w int) int {
	if w < MinLineWidth {
		return MinLineWidth
	}
	if w > MaxLineWidth {
		return MaxLineWidth
	}
	return w
}

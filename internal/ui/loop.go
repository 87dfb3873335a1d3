package ui

import (
	"MySketchPad/internal/pad"

	"fyne.io/fyne/v2"
)

// mainLoop posts work to the fyne event loop.
var mainLoop pad.Loop = pad.LoopFunc(fyne.Do)

package ui

import (
	"MySketchPad/internal/config"

	"fyne.io/fyne/v2/app"
)

// RunApp shows the desktop dock and blocks until the app quits.
func RunApp(cfg config.Config) {
	myApp := app.New()
	desk := NewDesktop(myApp, cfg)
	desk.Dock().ShowAndRun()
}

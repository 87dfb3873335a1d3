package ui

import (
	"MySketchPad/internal/pad"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// confirmDialog renders pad prompts as fyne confirm dialogs.
type confirmDialog struct {
	win     fyne.Window
	icon    fyne.Resource
	current *dialog.ConfirmDialog
}

var _ pad.Dialog = (*confirmDialog)(nil)

func newConfirmDialog(win fyne.Window) *confirmDialog {
	return &confirmDialog{win: win, icon: theme.DocumentCreateIcon()}
}

func (d *confirmDialog) Open(p pad.Prompt, onConfirm, onCancel func()) {
	content := container.NewBorder(nil, nil, widget.NewIcon(d.icon), nil, widget.NewLabel(p.Message))
	var cd *dialog.ConfirmDialog
	cd = dialog.NewCustomConfirm(p.Title, "Confirm", "Cancel", content, func(ok bool) {
		// fyne also calls back on Hide; only the first answer counts.
		if d.current != cd {
			return
		}
		d.current = nil
		if ok {
			onConfirm()
		} else {
			onCancel()
		}
	}, d.win)
	cd.Resize(fyne.NewSize(float32(p.Width), float32(p.Height)))
	d.current = cd
	cd.Show()
}

func (d *confirmDialog) Close() {
	cd := d.current
	if cd == nil {
		return
	}
	d.current = nil
	cd.Hide()
}

// IsOpen reports whether a prompt is on screen.
func (d *confirmDialog) IsOpen() bool { return d.current != nil }

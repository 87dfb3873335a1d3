package ui

import (
	"fmt"
	"log"

	"MySketchPad/internal/export"
	"MySketchPad/internal/pad"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
)

// fileSaver delivers exports through the platform save dialog.
type fileSaver struct {
	win    fyne.Window
	status func(string)
}

var _ pad.Downloader = (*fileSaver)(nil)

func (s *fileSaver) Download(f export.File) {
	d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			log.Printf("[UI] Save dialog failed: %v", err)
			s.setStatus("Error saving file")
			return
		}
		if writer == nil {
			return
		}
		if err := writeFile(writer, f); err != nil {
			log.Printf("[UI] %v", err)
			s.setStatus("Error writing file")
			return
		}
		s.setStatus("Saved " + f.FullName())
	}, s.win)
	d.SetFileName(f.FullName())
	d.Show()
}

func (s *fileSaver) setStatus(text string) {
	if s.status != nil {
		s.status(text)
	}
}

func writeFile(writer fyne.URIWriteCloser, f export.File) (err error) {
	defer func() {
		if cerr := writer.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", writer.URI(), cerr)
		}
	}()
	if _, err := writer.Write(f.Data); err != nil {
		return fmt.Errorf("write %s: %w", writer.URI(), err)
	}
	log.Printf("[UI] Wrote %d bytes to %s", len(f.Data), writer.URI())
	return nil
}

// Package export flattens a drawing onto white and encodes it for download.
package export

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"strings"
	"time"

	"MySketchPad/internal/state"

	"golang.org/x/image/draw"
)

// ErrUnknownFormat is returned for an export format other than png or pdf.
var ErrUnknownFormat = errors.New("unknown export format")

// Format is an output encoding.
type Format string

const (
	FormatPNG Format = "png"
	FormatPDF Format = "pdf"
)

// ParseFormat maps a config value to a Format. Empty means PNG.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "png":
		return FormatPNG, nil
	case "pdf":
		return FormatPDF, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// TimestampLayout renders like "Aug 16, 2018 8:02 PM" in every locale.
const TimestampLayout = "Jan 2, 2006 3:04 PM"

// FileName is the suggested download name, without extension.
func FileName(now time.Time) string {
	return "Saved Drawings " + now.Format(TimestampLayout)
}

// File is a generated download.
type File struct {
	Name   string
	Format Format
	Data   []byte
}

// FullName is Name with the format's extension.
func (f File) FullName() string { return f.Name + "." + string(f.Format) }

// Flatten paints an opaque white background behind src. Existing pixels are
// composited over the white, so no stroke is covered.
func Flatten(src image.Image) *image.RGBA {
	b := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Rect, image.NewUniform(color.White), image.Point{}, draw.Src)
	draw.Draw(dst, dst.Rect, src, b.Min, draw.Over)
	return dst
}

// EncodePNG writes img as PNG.
func EncodePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("write png: %w", err)
	}
	return nil
}

// Encode decodes snap, flattens it and encodes it as f.
func Encode(snap state.Snapshot, f Format, now time.Time) (File, error) {
	src, err := png.Decode(snap.Reader())
	if err != nil {
		return File{}, fmt.Errorf("decode snapshot %s: %w", snap.ID, err)
	}
	flat := Flatten(src)

	var buf bytes.Buffer
	switch f {
	case FormatPNG:
		err = EncodePNG(&buf, flat)
	case FormatPDF:
		err = EncodePDF(&buf, flat)
	default:
		err = fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}
	if err != nil {
		return File{}, err
	}
	return File{Name: FileName(now), Format: f, Data: buf.Bytes()}, nil
}

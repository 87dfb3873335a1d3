package export

import (
	"bytes"
	"fmt"
	"image"
	"io"

	"github.com/jung-kurt/gofpdf"
)

// EncodePDF writes img as a single-page PDF sized to the image, in points.
func EncodePDF(w io.Writer, img image.Image) error {
	var png bytes.Buffer
	if err := EncodePNG(&png, img); err != nil {
		return err
	}
	b := img.Bounds()
	wd, ht := float64(b.Dx()), float64(b.Dy())

	// Portrait keeps Wd/Ht as given; gofpdf swaps them for landscape.
	p := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: wd, Ht: ht},
	})
	p.SetMargins(0, 0, 0)
	p.SetAutoPageBreak(false, 0)
	p.AddPage()

	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	p.RegisterImageOptionsReader("drawing", opts, &png)
	p.ImageOptions("drawing", 0, 0, wd, ht, false, opts, 0, "")
	if err := p.Output(w); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	return nil
}

// Package imagefs decodes, generates and transforms sprite images without
// touching the GPU, so it works in tests and before the game window opens.
package imagefs

import (
	"fmt"
	"image"
	"image/color"
	"io/fs"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
)

// Load decodes a PNG or JPEG image from fsys.
func Load(fsys fs.FS, path string) (image.Image, error) {
	f, err := fsys.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image %s: %w", path, err)
	}
	defer f.Close()

	img, err := imaging.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", path, err)
	}
	return img, nil
}

// Placeholder draws a labelled card of the given size. It stands in for
// sprites that are missing on disk.
func Placeholder(w, h int, fill color.Color, label string) image.Image {
	dc := gg.NewContext(w, h)

	inset := 2.0
	radius := float64(min(w, h)) / 8
	dc.DrawRoundedRectangle(inset, inset, float64(w)-2*inset, float64(h)-2*inset, radius)
	dc.SetColor(fill)
	dc.FillPreserve()
	dc.SetColor(color.Black)
	dc.SetLineWidth(2)
	dc.Stroke()

	if label != "" {
		dc.SetColor(color.White)
		dc.DrawStringAnchored(label, float64(w)/2, float64(h)/2, 0.5, 0.5)
	}
	return dc.Image()
}

// Disc draws a filled circle with a cross, used for missing shuriken art.
func Disc(size int, fill color.Color) image.Image {
	dc := gg.NewContext(size, size)
	c := float64(size) / 2

	dc.DrawCircle(c, c, c-1)
	dc.SetColor(fill)
	dc.Fill()

	dc.SetColor(color.Black)
	dc.SetLineWidth(2)
	dc.DrawLine(c, 1, c, float64(size)-1)
	dc.DrawLine(1, c, float64(size)-1, c)
	dc.Stroke()
	return dc.Image()
}

// Mirror flips an image horizontally.
func Mirror(img image.Image) *image.NRGBA {
	return imaging.FlipH(img)
}

// Fit scales an image to exactly w x h.
func Fit(img image.Image, w, h int) *image.NRGBA {
	return imaging.Resize(img, w, h, imaging.Lanczos)
}

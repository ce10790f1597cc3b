package render

import (
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"io"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/jmylchreest/blend/internal/colour"
	"github.com/jmylchreest/blend/internal/gradient"
)

// PNG layout in pixels.
const (
	pngColumnWidth  = 96
	pngColumnGap    = 8
	pngHeaderHeight = 24
	pngRowHeight    = 20
	pngMargin       = 8
)

var (
	pngBackground = colour.Quantise(colour.TextLight)
	pngHeading    = colour.Quantise(colour.TextDark)
)

// pngSize returns the image bounds needed for results.
func pngSize(results []gradient.Result) image.Rectangle {
	rows := 0
	for _, r := range results {
		rows = max(rows, len(r.Swatches))
	}
	cols := len(results)

	width := 2*pngMargin + cols*pngColumnWidth + max(cols-1, 0)*pngColumnGap
	height := 2*pngMargin + pngHeaderHeight + rows*pngRowHeight
	return image.Rect(0, 0, width, height)
}

// drawLabel draws text horizontally centred in cell, vertically centred on the
// font's ascent.
func drawLabel(img draw.Image, cell image.Rectangle, c colour.RGB, text string) {
	face := basicfont.Face7x13
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(c.RGBA()),
		Face: face,
	}

	advance := d.MeasureString(text).Ceil()
	x := cell.Min.X + max((cell.Dx()-advance)/2, 0)
	y := cell.Min.Y + (cell.Dy()+face.Ascent-face.Descent)/2
	d.Dot = fixed.P(x, y)
	d.DrawString(text)
}

// renderImage draws one column per model, each swatch labelled with its hex.
func renderImage(results []gradient.Result) *image.RGBA {
	img := image.NewRGBA(pngSize(results))
	draw.Draw(img, img.Bounds(), image.NewUniform(pngBackground.RGBA()), image.Point{}, draw.Src)

	for col, r := range results {
		x := pngMargin + col*(pngColumnWidth+pngColumnGap)
		header := image.Rect(x, pngMargin, x+pngColumnWidth, pngMargin+pngHeaderHeight)
		drawLabel(img, header, pngHeading, r.Model)

		for row, s := range r.Swatches {
			y := header.Max.Y + row*pngRowHeight
			cell := image.Rect(x, y, x+pngColumnWidth, y+pngRowHeight)
			draw.Draw(img, cell, image.NewUniform(s.Background.RGBA()), image.Point{}, draw.Src)
			drawLabel(img, cell, s.Text, s.Background.Hex())
		}
	}
	return img
}

func writePNG(w io.Writer, results []gradient.Result) error {
	if err := png.Encode(w, renderImage(results)); err != nil {
		return fmt.Errorf("failed to encode PNG: %w", err)
	}
	return nil
}

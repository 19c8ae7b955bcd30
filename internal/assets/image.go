// © 2025 The Osmo Authors. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package assets

import (
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"io"
	"os"

	"github.com/nfnt/resize"
	"golang.org/x/image/draw"

	// Additional source formats.
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// Load decodes the image at path and converts it to NRGBA with bounds
// starting at (0, 0).
func Load(path string) (*image.NRGBA, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return toNRGBA(img), nil
}

func toNRGBA(img image.Image) *image.NRGBA {
	b := img.Bounds()
	if n, ok := img.(*image.NRGBA); ok && b.Min == (image.Point{}) {
		return n
	}
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
	return dst
}

// Resize scales img to exactly w×h using Lanczos resampling.
func Resize(img image.Image, w, h int) *image.NRGBA {
	return toNRGBA(resize.Resize(uint(w), uint(h), img, resize.Lanczos3))
}

// Thumbnail scales img down to fit into size×size, preserving its aspect
// ratio. Images that already fit are returned as is.
func Thumbnail(img image.Image, size int) *image.NRGBA {
	return toNRGBA(resize.Thumbnail(uint(size), uint(size), img, resize.Lanczos3))
}

// Offset returns the position that centers an inner×inner box on an outer
// axis. Odd remainders leave the extra pixel on the far edge.
func Offset(outer, inner int) int {
	return (outer - inner) / 2
}

// Compose draws logo centered on an opaque w×h canvas filled with bg. The
// logo's alpha channel masks it against the canvas.
func Compose(logo image.Image, w, h int, bg color.Color) *image.RGBA {
	canvas := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(canvas, canvas.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)

	lb := logo.Bounds()
	at := image.Pt(Offset(w, lb.Dx()), Offset(h, lb.Dy()))
	draw.DrawMask(canvas, image.Rectangle{Min: at, Max: at.Add(lb.Size())}, opaque{logo}, lb.Min, logo, lb.Min, draw.Over)
	return canvas
}

// opaque presents an image with its alpha dropped, so the mask passed to
// DrawMask alone decides how much of each pixel covers the canvas.
type opaque struct{ image.Image }

func (o opaque) ColorModel() color.Model { return color.NRGBAModel }

func (o opaque) At(x, y int) color.Color {
	c := color.NRGBAModel.Convert(o.Image.At(x, y)).(color.NRGBA)
	c.A = 0xff
	return c
}

// EncodePNG writes img as a maximally compressed PNG.
func EncodePNG(w io.Writer, img image.Image) error {
	enc := &png.Encoder{CompressionLevel: png.BestCompression}
	return enc.Encode(w, img)
}

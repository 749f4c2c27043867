// Package raster loads and saves the lossless raster images the HIDE
// container is embedded in, normalizing any decoded format to a flat,
// interleaved 8-bit RGBA channel buffer.
package raster

import (
	"errors"
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
)

// ErrLossyFormat is returned by Load when the file extension is neither
// .png nor .bmp (e.g. .jpg). The check is made on the extension alone,
// before any decoding; lossy formats destroy the LSBs the container
// relies on, so they are rejected outright rather than silently producing
// a cover image that cannot carry a payload.
var ErrLossyFormat = errors.New("raster: lossy image formats cannot carry steganographic data")

// Image wraps a decoded *image.NRGBA and exposes the flat channel buffer
// internal/stego operates on directly, plus the load/save/w/h collaborator
// surface the CLI and encoder expect.
type Image struct {
	img *image.NRGBA
}

// New wraps an existing *image.NRGBA as is, for callers that build an
// image in memory.
func New(img *image.NRGBA) *Image {
	return &Image{img: img}
}

// Pix returns the flat channel buffer of length W()*H()*4, in row-major
// R,G,B,A order. Mutating it mutates the image in place.
func (i *Image) Pix() []byte { return i.img.Pix }

// W returns the image width in pixels.
func (i *Image) W() int { return i.img.Bounds().Dx() }

// H returns the image height in pixels.
func (i *Image) H() int { return i.img.Bounds().Dy() }

// NRGBA exposes the underlying image for callers (e.g. Save) that need
// the concrete type.
func (i *Image) NRGBA() *image.NRGBA { return i.img }

// Load decodes path as PNG or BMP, chosen by its extension, and normalizes
// the result to NRGBA. Any other extension (JPEG, GIF, WEBP, ...) is
// rejected with ErrLossyFormat without decoding: lossless is mandatory,
// since a lossy re-encode of the output would destroy the embedded bits.
func Load(path string) (*Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("raster: open %s: %w", path, err)
	}
	defer f.Close()

	ext := strings.ToLower(filepath.Ext(path))
	var src image.Image
	switch ext {
	case ".png":
		src, err = png.Decode(f)
	case ".bmp":
		src, err = bmp.Decode(f)
	default:
		return nil, fmt.Errorf("raster: %w: unsupported extension %q", ErrLossyFormat, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("raster: decode %s: %w", path, err)
	}

	return &Image{img: toNRGBA(src)}, nil
}

// toNRGBA returns src as *image.NRGBA, converting (by drawing into a
// freshly allocated buffer) if it is not already one — e.g. paletted PNGs.
func toNRGBA(src image.Image) *image.NRGBA {
	if nrgba, ok := src.(*image.NRGBA); ok {
		return nrgba
	}
	b := src.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Src)
	return dst
}

// Save writes the image to path as PNG, the only lossless format this
// codec supports as output.
func (i *Image) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("raster: create %s: %w", path, err)
	}
	defer f.Close()
	if err := png.Encode(f, i.img); err != nil {
		return fmt.Errorf("raster: encode %s: %w", path, err)
	}
	return nil
}

// Package texture synthesises, encodes and inspects flat-colour block
// textures.
package texture

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"

	"github.com/disintegration/imaging"
)

// ErrNotUniform is returned by CheckUniform when an image does not match the
// expected size or fill colour.
var ErrNotUniform = errors.New("texture is not the expected uniform fill")

// Fill returns a size×size image with every pixel set to c.
func Fill(size int, c color.NRGBA) *image.NRGBA {
	return imaging.New(size, size, c)
}

// Encode writes img to w as a PNG.
func Encode(w io.Writer, img image.Image) error {
	if err := imaging.Encode(w, img, imaging.PNG, imaging.PNGCompressionLevel(png.BestCompression)); err != nil {
		return fmt.Errorf("encoding png: %w", err)
	}
	return nil
}

// Decode reads an image from r. Only the formats registered with the image
// package (PNG, JPEG, GIF, BMP, TIFF via imaging) are understood.
func Decode(r io.Reader) (image.Image, error) {
	img, err := imaging.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decoding image: %w", err)
	}
	return img, nil
}

// CheckUniform reports whether img is size×size with every pixel equal to
// want. Pixels are compared in straight-alpha form, so a decoder returning a
// premultiplied image still compares equal for fully opaque colours.
func CheckUniform(img image.Image, size int, want color.NRGBA) error {
	b := img.Bounds()
	if b.Dx() != size || b.Dy() != size {
		return fmt.Errorf("%w: size %dx%d, want %dx%d", ErrNotUniform, b.Dx(), b.Dy(), size, size)
	}
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			got := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			if got != want {
				return fmt.Errorf("%w: pixel (%d,%d) is %v, want %v",
					ErrNotUniform, x-b.Min.X, y-b.Min.Y, got, want)
			}
		}
	}
	return nil
}

// Hash computes the SHA-256 hex digest of everything read from r.
func Hash(r io.Reader) (string, error) {
	h := sha256.New()
	if _, err := io.Copy(h, r); err != nil {
		return "", err
	}
	return fmt.Sprintf("%x", h.Sum(nil)), nil
}

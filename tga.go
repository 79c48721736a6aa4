// Package tga decodes uncompressed true-color and grayscale Truevision TGA images.
//
// Supported are image types 2 (true-color) and 3 (grayscale) without a color map,
// at 8, 24 or 32 bits per pixel. RLE-compressed and color-mapped variants are rejected.
package tga

import (
	"image"
	"image/color"
	"io"
	"sync"
)

// Options specifies decoding parameters.
type Options struct {
	// Name identifies the source (for example a file name) in error messages.
	Name string
	// ToRGBA makes Decode return *image.RGBA for grayscale images instead of *image.Gray.
	ToRGBA bool
}

// decoderPool is a pool of decoder structs to reduce allocation overhead.
// Pixel buffers are never pooled, they belong to the caller.
var decoderPool = sync.Pool{
	New: func() interface{} {
		return new(decoder)
	},
}

func newPooledDecoder(r io.Reader, opts []*Options) *decoder {
	d := decoderPool.Get().(*decoder)
	d.src = newSource(r)

	if len(opts) > 0 && opts[0] != nil {
		d.name = opts[0].Name
	}

	return d
}

func releaseDecoder(d *decoder) {
	d.reset()
	decoderPool.Put(d)
}

// DecodeImage reads a TGA image from r and returns its pixels with channels in
// canonical order and orientation normalized, see Image.
// Offsets in the stream are taken relative to the current position of r.
// On error no image is returned.
func DecodeImage(r io.Reader, opts ...*Options) (*Image, error) {
	d := newPooledDecoder(r, opts)
	defer releaseDecoder(d)

	return d.decode()
}

// Decode reads a TGA image from r and returns it as an [image.Image].
// Grayscale images are returned as *image.Gray, true-color images as *image.RGBA
// (24-bit) or *image.NRGBA (32-bit).
func Decode(r io.Reader, opts ...*Options) (image.Image, error) {
	m, err := DecodeImage(r, opts...)
	if err != nil {
		return nil, err
	}

	toRGBA := len(opts) > 0 && opts[0] != nil && opts[0].ToRGBA

	return m.ToImage(toRGBA), nil
}

// DecodeConfig returns the color model and dimensions of a TGA image without decoding the pixel data.
func DecodeConfig(r io.Reader) (image.Config, error) {
	d := newPooledDecoder(r, nil)
	defer releaseDecoder(d)

	if err := d.decodeHeader(); err != nil {
		return image.Config{}, err
	}

	var cm color.Model
	switch d.head.channels() {
	case 1:
		cm = color.GrayModel
	case 3:
		cm = color.RGBAModel
	default:
		cm = color.NRGBAModel
	}

	return image.Config{
		ColorModel: cm,
		Width:      d.head.width,
		Height:     d.head.height,
	}, nil
}

// init registers the TGA format with the standard library's image package.
// TGA has no magic bytes, so the patterns match the color map type and image type
// bytes of the supported variants. Byte 0 (image ID length) may be anything.
func init() {
	decodeWrapper := func(r io.Reader) (image.Image, error) {
		return Decode(r)
	}

	image.RegisterFormat("tga", "?\x00\x02", decodeWrapper, DecodeConfig)
	image.RegisterFormat("tga", "?\x00\x03", decodeWrapper, DecodeConfig)
}

package tga

import (
	"image"
)

// Format identifies the pixel layout of a decoded image.
type Format int

const (
	// Luminance is one byte of gray per pixel.
	Luminance Format = iota
	// RGB is three bytes per pixel in R, G, B order.
	RGB
	// RGBA is four bytes per pixel in R, G, B, A order, alpha not premultiplied.
	RGBA
)

func (f Format) String() string {
	switch f {
	case Luminance:
		return "luminance"
	case RGB:
		return "rgb"
	case RGBA:
		return "rgba"
	default:
		return "unknown"
	}
}

// Image is a decoded TGA image.
//
// Pix holds Width*Height*Channels bytes with channels in canonical order.
// Rows run bottom-to-top (row 0 is the bottom scan line, as OpenGL expects for
// texture uploads) and pixels run left-to-right. Use ToImage for a top-down image.Image.
type Image struct {
	Width    int
	Height   int
	Channels int // 1, 3 or 4.
	Pix      []byte
}

// Format returns the pixel format tag derived from the channel count.
func (m *Image) Format() Format {
	switch m.Channels {
	case 1:
		return Luminance
	case 3:
		return RGB
	case 4:
		return RGBA
	default:
		return Format(-1)
	}
}

// Stride returns the distance in bytes between vertically adjacent pixels.
func (m *Image) Stride() int {
	return m.Width * m.Channels
}

// PixOffset returns the index of the first byte of the pixel at (x, y),
// where y counts rows from the bottom.
func (m *Image) PixOffset(x, y int) int {
	return y*m.Stride() + x*m.Channels
}

// ToImage copies m into a standard top-down image.
// Luminance becomes *image.Gray (or *image.RGBA if toRGBA is set), RGB becomes
// *image.RGBA with opaque alpha and RGBA becomes *image.NRGBA.
func (m *Image) ToImage(toRGBA bool) image.Image {
	rect := image.Rect(0, 0, m.Width, m.Height)
	stride := m.Stride()

	switch m.Channels {
	case 1:
		if !toRGBA {
			dst := image.NewGray(rect)
			for y := 0; y < m.Height; y++ {
				src := m.Pix[(m.Height-1-y)*stride:]
				copy(dst.Pix[y*dst.Stride:y*dst.Stride+m.Width], src[:m.Width])
			}

			return dst
		}

		dst := image.NewRGBA(rect)
		for y := 0; y < m.Height; y++ {
			src := m.Pix[(m.Height-1-y)*stride:]
			row := dst.Pix[y*dst.Stride:]
			for x := 0; x < m.Width; x++ {
				lum := src[x]
				row[x*4] = lum
				row[x*4+1] = lum
				row[x*4+2] = lum
				row[x*4+3] = 255
			}
		}

		return dst
	case 3:
		dst := image.NewRGBA(rect)
		for y := 0; y < m.Height; y++ {
			src := m.Pix[(m.Height-1-y)*stride:]
			row := dst.Pix[y*dst.Stride:]
			for x := 0; x < m.Width; x++ {
				row[x*4] = src[x*3]
				row[x*4+1] = src[x*3+1]
				row[x*4+2] = src[x*3+2]
				row[x*4+3] = 255
			}
		}

		return dst
	case 4:
		dst := image.NewNRGBA(rect)
		for y := 0; y < m.Height; y++ {
			src := m.Pix[(m.Height-1-y)*stride:]
			copy(dst.Pix[y*dst.Stride:y*dst.Stride+stride], src[:stride])
		}

		return dst
	default:
		return nil
	}
}

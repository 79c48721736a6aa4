package tga

import (
	"fmt"
)

// Header layout. Bytes 3-11 (color map specification and origin) are not used.
const (
	headerSize       = 18
	imageSpecOffset  = 12
	descFlipH        = 1 << 4 // Pixels stored right-to-left.
	descFlipV        = 1 << 5 // Rows stored top-to-bottom.
	typeTrueColor    = 2
	typeGrayscale    = 3
	colorMapTypeNone = 0
)

// header holds the fields of the 18-byte TGA header that the decoder needs.
type header struct {
	idLength     uint8 // Bytes of image identification data following the header.
	colorMapType uint8
	imageType    uint8
	width        int
	height       int
	depth        int // Bits per pixel.
	descriptor   uint8
}

// readHeader reads the image type bytes at offset 0 and the image specification at offset 12.
func readHeader(s *source) (header, error) {
	var h header
	var buf [6]byte

	if err := s.readFull(buf[:3]); err != nil {
		return h, fmt.Errorf("%w: reading image type: %w", ErrMalformedHeader, err)
	}

	h.idLength = buf[0]
	h.colorMapType = buf[1]
	h.imageType = buf[2]

	if err := s.seek(imageSpecOffset); err != nil {
		return h, err
	}

	if err := s.readFull(buf[:6]); err != nil {
		return h, fmt.Errorf("%w: reading image specification: %w", ErrMalformedHeader, err)
	}

	h.width = int(buf[0]) + int(buf[1])<<8
	h.height = int(buf[2]) + int(buf[3])<<8
	h.depth = int(buf[4])
	h.descriptor = buf[5]

	return h, nil
}

func (h *header) flipHorizontal() bool { return h.descriptor&descFlipH != 0 }

func (h *header) flipVertical() bool { return h.descriptor&descFlipV != 0 }

// channels returns the number of bytes per pixel.
func (h *header) channels() int { return h.depth / 8 }

// payloadSize returns the size of the pixel data in bytes.
func (h *header) payloadSize() int64 {
	return int64(h.width) * int64(h.height) * int64(h.channels())
}

// validateType accepts only uncompressed true-color and grayscale images without a color map.
// RLE-compressed (9-11) and color-mapped (1) variants are rejected.
func (h *header) validateType() error {
	if h.colorMapType != colorMapTypeNone {
		return fmt.Errorf("%w: color map type %d", ErrUnsupportedFormat, h.colorMapType)
	}

	if h.imageType != typeTrueColor && h.imageType != typeGrayscale {
		return fmt.Errorf("%w: image type %d", ErrUnsupportedFormat, h.imageType)
	}

	return nil
}

func (h *header) validateDepth() error {
	switch h.depth {
	case 8, 24, 32:
		return nil
	default:
		return ErrUnsupportedColorDepth
	}
}

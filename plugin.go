package tga

import (
	"io"
	"strings"
)

// Plugin is a decoder that can be looked up by file extension.
// Keeping a table of plugins is up to the caller.
type Plugin interface {
	// Accepts reports whether the plugin decodes files with extension ext.
	Accepts(ext string) bool
	// Decode reads an image from r.
	Decode(r io.Reader) (*Image, error)
}

// Codec is the TGA Plugin. Its Options are used for every Decode call.
type Codec struct {
	Options Options
}

var _ Plugin = (*Codec)(nil)

// Accepts reports whether ext is "tga", ignoring case and a leading dot.
func (c *Codec) Accepts(ext string) bool {
	return strings.EqualFold(strings.TrimPrefix(ext, "."), "tga")
}

func (c *Codec) Decode(r io.Reader) (*Image, error) {
	opts := c.Options

	return DecodeImage(r, &opts)
}

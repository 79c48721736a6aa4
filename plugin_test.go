package tga

import (
	"bytes"
	"errors"
	"testing"
)

func TestCodecAccepts(t *testing.T) {
	c := &Codec{}

	for ext, want := range map[string]bool{
		"tga":  true,
		".tga": true,
		"TGA":  true,
		".Tga": true,
		"png":  false,
		"":     false,
		"tgaa": false,
	} {
		if got := c.Accepts(ext); got != want {
			t.Errorf("Accepts(%q) = %v, want %v", ext, got, want)
		}
	}
}

func TestCodecDecode(t *testing.T) {
	var p Plugin = &Codec{Options: Options{Name: "ui/button.tga"}}

	img, err := p.Decode(bytes.NewReader(bgr2x1.bytes()))
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}

	if img.Format() != RGB || len(img.Pix) != 6 {
		t.Errorf("got %v with %d bytes", img.Format(), len(img.Pix))
	}

	_, err = p.Decode(bytes.NewReader([]byte{0, 1, 2}))

	var de *DecodeError
	if !errors.As(err, &de) || de.Name != "ui/button.tga" {
		t.Errorf("got error %v, want a *DecodeError naming the file", err)
	}
}

package tga

import (
	"bytes"
	"image"
	"testing"

	"github.com/disintegration/gift"
)

// TestOrient checks each flag combination on a 3x2 single-channel grid.
//
//	row 0: 1 2 3
//	row 1: 4 5 6
func TestOrient(t *testing.T) {
	testCases := []struct {
		name         string
		flipH, flipV bool
		want         []byte
	}{
		{"None", false, false, []byte{1, 2, 3, 4, 5, 6}},
		{"Vertical", false, true, []byte{4, 5, 6, 1, 2, 3}},
		{"Horizontal", true, false, []byte{3, 2, 1, 6, 5, 4}},
		{"Both", true, true, []byte{6, 5, 4, 3, 2, 1}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			pix := []byte{1, 2, 3, 4, 5, 6}
			orient(pix, 3, 2, 1, tc.flipH, tc.flipV)

			if !bytes.Equal(pix, tc.want) {
				t.Errorf("got %v, want %v", pix, tc.want)
			}
		})
	}
}

// TestOrientWholePixels verifies that multi-byte pixels are moved as units.
func TestOrientWholePixels(t *testing.T) {
	// 3x1, three channels.
	pix := []byte{1, 2, 3, 4, 5, 6, 7, 8, 9}
	orient(pix, 3, 1, 3, true, false)

	want := []byte{7, 8, 9, 4, 5, 6, 1, 2, 3}
	if !bytes.Equal(pix, want) {
		t.Errorf("got %v, want %v", pix, want)
	}
}

// TestOrientInvolution checks that applying the same flags twice restores the buffer.
func TestOrientInvolution(t *testing.T) {
	sizes := [][2]int{{1, 1}, {2, 3}, {5, 4}, {8, 1}, {1, 7}, {0, 3}, {3, 0}}

	for _, channels := range []int{1, 3, 4} {
		for _, size := range sizes {
			for _, flags := range [][2]bool{{false, false}, {true, false}, {false, true}, {true, true}} {
				w, h := size[0], size[1]
				orig := makePix(w * h * channels)
				pix := append([]byte(nil), orig...)

				orient(pix, w, h, channels, flags[0], flags[1])
				orient(pix, w, h, channels, flags[0], flags[1])

				if !bytes.Equal(pix, orig) {
					t.Errorf("channels %d, %dx%d, flags %v: not an involution", channels, w, h, flags)
				}
			}
		}
	}
}

// TestOrientMatchesGift compares the reversals against gift's flip filters.
// Any row order works as a reference because row and column reversal are symmetric.
func TestOrientMatchesGift(t *testing.T) {
	const w, h = 7, 5

	testCases := []struct {
		name         string
		flipH, flipV bool
		filter       gift.Filter
	}{
		{"Horizontal", true, false, gift.FlipHorizontal()},
		{"Vertical", false, true, gift.FlipVertical()},
		{"Both", true, true, gift.Rotate180()},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			src := image.NewNRGBA(image.Rect(0, 0, w, h))
			copy(src.Pix, makePix(w*h*4))
			for i := 3; i < len(src.Pix); i += 4 {
				src.Pix[i] = 0xFF
			}

			g := gift.New(tc.filter)
			dst := image.NewNRGBA(g.Bounds(src.Bounds()))
			g.Draw(dst, src)

			pix := append([]byte(nil), src.Pix...)
			orient(pix, w, h, 4, tc.flipH, tc.flipV)

			if !bytes.Equal(pix, dst.Pix) {
				t.Errorf("orient disagrees with gift")
			}
		})
	}
}

// BenchmarkOrient measures a 180 degree rotation of a 1024x1024 RGBA buffer.
func BenchmarkOrient(b *testing.B) {
	pix := makePix(1024 * 1024 * 4)

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		orient(pix, 1024, 1024, 4, true, true)
	}
}

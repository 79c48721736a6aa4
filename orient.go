package tga

// orient normalizes the storage order described by the descriptor flags.
// All reversals work on whole pixels and are their own inverse.
func orient(pix []byte, width, height, channels int, flipH, flipV bool) {
	switch {
	case flipH && flipV:
		rotate180(pix, channels)
	case flipV:
		flipRows(pix, width, height, channels)
	case flipH:
		flipColumns(pix, width, height, channels)
	}
}

// flipRows swaps row y with row height-1-y.
func flipRows(pix []byte, width, height, channels int) {
	stride := width * channels

	for top, bottom := 0, height-1; top < bottom; top, bottom = top+1, bottom-1 {
		a := pix[top*stride : (top+1)*stride]
		b := pix[bottom*stride : (bottom+1)*stride]

		for i := range a {
			a[i], b[i] = b[i], a[i]
		}
	}
}

// flipColumns reverses the pixel order of every row.
func flipColumns(pix []byte, width, height, channels int) {
	stride := width * channels

	for y := 0; y < height; y++ {
		reversePixels(pix[y*stride:(y+1)*stride], channels)
	}
}

// rotate180 reverses the pixel order of the whole buffer, which flips rows and columns at once.
func rotate180(pix []byte, channels int) {
	reversePixels(pix, channels)
}

// reversePixels reverses the order of the channels-byte units in pix.
func reversePixels(pix []byte, channels int) {
	for l, r := 0, len(pix)-channels; l < r; l, r = l+channels, r-channels {
		for c := 0; c < channels; c++ {
			pix[l+c], pix[r+c] = pix[r+c], pix[l+c]
		}
	}
}

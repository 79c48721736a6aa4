package tga

// swapRB converts BGR(A) pixels to RGB(A) in place by exchanging the first and third
// byte of every pixel. Green and alpha stay where they are. Luminance (one channel) is left untouched.
func swapRB(pix []byte, channels int) {
	if channels < 3 {
		return
	}

	for i := 0; i+2 < len(pix); i += channels {
		pix[i], pix[i+2] = pix[i+2], pix[i]
	}
}

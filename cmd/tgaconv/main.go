// Command tgaconv converts TGA images to PNG.
//
// Inputs may be gzip (.gz) or zstd (.zst) compressed.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/disintegration/gift"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"

	"github.com/gen2brain/tga"
)

func main() {
	out := flag.String("o", "", "output PNG path (default: input name with .png)")
	size := flag.String("resize", "", "resize to WxH, 0 for either side keeps the aspect ratio")
	rgba := flag.Bool("rgba", false, "write grayscale images as RGBA")
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, "Usage: tgaconv [-o out.png] [-resize WxH] [-rgba] <input.tga[.gz|.zst]>\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(1)
	}

	inputPath := flag.Arg(0)
	outPath := *out
	if outPath == "" {
		outPath = outputName(inputPath)
	}

	width, height, err := parseSize(*size)
	if err != nil {
		fmt.Fprintln(os.Stderr, "invalid -resize:", err)
		os.Exit(1)
	}

	if err := convert(inputPath, outPath, width, height, *rgba); err != nil {
		fmt.Fprintln(os.Stderr, "convert error:", err)
		os.Exit(1)
	}

	fmt.Printf("Converted %s → %s\n", inputPath, outPath)
}

func convert(inPath, outPath string, width, height int, toRGBA bool) error {
	r, closeInput, err := openInput(inPath)
	if err != nil {
		return err
	}
	defer closeInput()

	img, err := tga.Decode(r, &tga.Options{Name: inPath, ToRGBA: toRGBA})
	if err != nil {
		return err
	}

	if width > 0 || height > 0 {
		img = resize(img, width, height)
	}

	out, err := os.Create(outPath)
	if err != nil {
		return err
	}
	defer out.Close()

	if err := png.Encode(out, img); err != nil {
		return err
	}

	return out.Close()
}

// openInput opens path and wraps it in a decompressor based on its extension.
// Plain files are returned as is, so the decoder can seek in them.
func openInput(path string) (io.Reader, func(), error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".gz":
		zr, err := gzip.NewReader(f)
		if err != nil {
			f.Close()
			return nil, nil, err
		}

		return zr, func() { zr.Close(); f.Close() }, nil
	case ".zst":
		zr, err := zstd.NewReader(f)
		if err != nil {
			f.Close()
			return nil, nil, err
		}

		return zr, func() { zr.Close(); f.Close() }, nil
	default:
		return f, func() { f.Close() }, nil
	}
}

func resize(img image.Image, width, height int) image.Image {
	g := gift.New(gift.Resize(width, height, gift.LanczosResampling))
	dst := image.NewNRGBA(g.Bounds(img.Bounds()))
	g.Draw(dst, img)

	return dst
}

// outputName strips compression and .tga extensions from path and appends .png.
func outputName(path string) string {
	base := path
	switch strings.ToLower(filepath.Ext(base)) {
	case ".gz", ".zst":
		base = strings.TrimSuffix(base, filepath.Ext(base))
	}

	if strings.EqualFold(filepath.Ext(base), ".tga") {
		base = strings.TrimSuffix(base, filepath.Ext(base))
	}

	return base + ".png"
}

// parseSize parses "WxH". An empty string means no resize.
func parseSize(s string) (int, int, error) {
	if s == "" {
		return 0, 0, nil
	}

	ws, hs, ok := strings.Cut(strings.ToLower(s), "x")
	if !ok {
		return 0, 0, fmt.Errorf("%q is not WxH", s)
	}

	w, err := strconv.Atoi(ws)
	if err != nil {
		return 0, 0, err
	}

	h, err := strconv.Atoi(hs)
	if err != nil {
		return 0, 0, err
	}

	if w < 0 || h < 0 || (w == 0 && h == 0) {
		return 0, 0, fmt.Errorf("%q: sizes must be non-negative and not both zero", s)
	}

	return w, h, nil
}

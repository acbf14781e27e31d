// Package pixelsource is the layout pass's image-decoding collaborator: it
// opens an image file referenced by a "#image" directive and returns its
// pixels as a flat RGB8 byte vector, matching the reference's
// ImageReader::open(...).decode().as_rgb8() pipeline.
package pixelsource

import (
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/jsummers/gobmp"
	"golang.org/x/image/tiff"
	"golang.org/x/image/webp"
)

// Decode opens path and returns its pixels as RGB8, row-major, 3 bytes per
// pixel, with the alpha channel dropped. BMP is decoded with gobmp; PNG and
// JPEG fall back to the standard library's decoders; TIFF and WEBP are
// decoded via golang.org/x/image, mirroring the multi-format dispatch a real
// asset pipeline needs even though the reference only ever exercised one
// format.
func Decode(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("couldn't open %s: %w", path, err)
	}
	defer f.Close()

	img, err := decodeByExtension(f, path)
	if err != nil {
		return nil, fmt.Errorf("couldn't decode %s: %w", path, err)
	}

	return toRGB8(img), nil
}

func decodeByExtension(f *os.File, path string) (image.Image, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".bmp":
		return gobmp.Decode(f)
	case ".png":
		return png.Decode(f)
	case ".jpg", ".jpeg":
		return jpeg.Decode(f)
	case ".tif", ".tiff":
		return tiff.Decode(f)
	case ".webp":
		return webp.Decode(f)
	default:
		img, _, err := image.Decode(f)
		return img, err
	}
}

// toRGB8 flattens an image.Image into row-major RGB8 bytes, the Go
// equivalent of the reference's DynamicImage::as_rgb8().into_raw().
func toRGB8(img image.Image) []byte {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	out := make([]byte, 0, width*height*3)

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			out = append(out, byte(r>>8), byte(g>>8), byte(b>>8))
		}
	}
	return out
}

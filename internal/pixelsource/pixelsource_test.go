package pixelsource

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToRGB8_FlattensRowMajorDroppingAlpha(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 1))
	img.Set(0, 0, color.RGBA{R: 10, G: 20, B: 30, A: 128})
	img.Set(1, 0, color.RGBA{R: 40, G: 50, B: 60, A: 255})

	out := toRGB8(img)

	assert.Equal(t, []byte{10, 20, 30, 40, 50, 60}, out)
}

func TestDecode_MissingFileReturnsError(t *testing.T) {
	_, err := Decode("/nonexistent/sprite.bmp")
	assert.Error(t, err)
}

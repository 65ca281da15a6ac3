package resample

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daids/gif2esp/src/image"
)

func solid(w, h int, r, g, b byte) image.Bitmap {
	bm := image.NewBitmap(w, h)
	for i := 0; i < w*h; i++ {
		bm.Pix[i*4] = r
		bm.Pix[i*4+1] = g
		bm.Pix[i*4+2] = b
		bm.Pix[i*4+3] = 0xFF
	}
	return bm
}

func pixelAt(bm image.Bitmap, x, y int) [4]byte {
	off := (y*bm.Width + x) * 4
	return [4]byte{bm.Pix[off], bm.Pix[off+1], bm.Pix[off+2], bm.Pix[off+3]}
}

func TestOutputDimensionsAlwaysExact(t *testing.T) {
	for _, fit := range []Fit{Stretch, Cover, Contain} {
		for _, size := range [][2]int{{1, 1}, {64, 1}, {3, 7}, {128, 64}} {
			out := Resample(solid(size[0], size[1], 255, 0, 0), 16, 16, fit)
			assert.Equal(t, 16, out.Width, fit.String())
			assert.Equal(t, 16, out.Height, fit.String())
			require.Len(t, out.Pix, 16*16*4)
		}
	}
}

func TestStretchIgnoresAspect(t *testing.T) {
	// 2x1 source: left pixel red, right pixel green.
	src := image.NewBitmap(2, 1)
	copy(src.Pix[0:4], []byte{255, 0, 0, 255})
	copy(src.Pix[4:8], []byte{0, 255, 0, 255})

	out := Resample(src, 4, 4, Stretch)
	for y := 0; y < 4; y++ {
		assert.Equal(t, [4]byte{255, 0, 0, 255}, pixelAt(out, 0, y))
		assert.Equal(t, [4]byte{255, 0, 0, 255}, pixelAt(out, 1, y))
		assert.Equal(t, [4]byte{0, 255, 0, 255}, pixelAt(out, 2, y))
		assert.Equal(t, [4]byte{0, 255, 0, 255}, pixelAt(out, 3, y))
	}
}

func TestContainCentersAndPadsBlack(t *testing.T) {
	// 2x1 red into 4x4: uniform scale 2, image occupies rows 1..2.
	out := Resample(solid(2, 1, 255, 0, 0), 4, 4, Contain)

	for x := 0; x < 4; x++ {
		assert.Equal(t, [4]byte{0, 0, 0, 255}, pixelAt(out, x, 0), "top padding")
		assert.Equal(t, [4]byte{255, 0, 0, 255}, pixelAt(out, x, 1))
		assert.Equal(t, [4]byte{255, 0, 0, 255}, pixelAt(out, x, 2))
		assert.Equal(t, [4]byte{0, 0, 0, 255}, pixelAt(out, x, 3), "bottom padding")
	}
}

func TestCoverFillsTarget(t *testing.T) {
	// 2x1 red into 4x4: uniform scale 4, horizontally cropped, no
	// padding anywhere.
	out := Resample(solid(2, 1, 255, 0, 0), 4, 4, Cover)

	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			assert.Equal(t, [4]byte{255, 0, 0, 255}, pixelAt(out, x, y))
		}
	}
}

func TestCoverCropsCentered(t *testing.T) {
	// 4x2 source, left half red, right half green. Cover into 2x2
	// picks the vertical scale (1), so the horizontal overflow is
	// cropped one pixel per side.
	src := image.NewBitmap(4, 2)
	for y := 0; y < 2; y++ {
		for x := 0; x < 4; x++ {
			off := (y*4 + x) * 4
			if x < 2 {
				src.Pix[off] = 255
			} else {
				src.Pix[off+1] = 255
			}
			src.Pix[off+3] = 0xFF
		}
	}

	out := Resample(src, 2, 2, Cover)
	assert.Equal(t, [4]byte{255, 0, 0, 255}, pixelAt(out, 0, 0))
	assert.Equal(t, [4]byte{0, 255, 0, 255}, pixelAt(out, 1, 0))
}

func TestParseFit(t *testing.T) {
	assert.Equal(t, Cover, ParseFit("cover"))
	assert.Equal(t, Contain, ParseFit("contain"))
	assert.Equal(t, Stretch, ParseFit("stretch"))
	assert.Equal(t, Stretch, ParseFit(""))
	assert.Equal(t, Stretch, ParseFit("bogus"))
}

package containers

import (
	"bytes"
	stdimage "image"
	"image/color"
	nGif "image/gif"
	nPng "image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daids/gif2esp/src/image"
)

func encodeTestGIF(t *testing.T) []byte {
	t.Helper()

	palette := color.Palette{
		color.RGBA{0, 0, 0, 255},
		color.RGBA{255, 0, 0, 255},
	}

	frame0 := stdimage.NewPaletted(stdimage.Rect(0, 0, 8, 8), palette)
	for i := range frame0.Pix {
		frame0.Pix[i] = 1
	}

	frame1 := stdimage.NewPaletted(stdimage.Rect(2, 2, 6, 6), palette)

	var buf bytes.Buffer
	err := nGif.EncodeAll(&buf, &nGif.GIF{
		Image:    []*stdimage.Paletted{frame0, frame1},
		Delay:    []int{10, 20},
		Disposal: []byte{nGif.DisposalNone, nGif.DisposalBackground},
		Config: stdimage.Config{
			Width:  8,
			Height: 8,
		},
	})
	require.NoError(t, err)
	return buf.Bytes()
}

func encodeTestPNG(t *testing.T) []byte {
	t.Helper()

	img := stdimage.NewRGBA(stdimage.Rect(0, 0, 4, 2))
	for i := 0; i < 4*2; i++ {
		img.Pix[i*4] = 200
		img.Pix[i*4+3] = 255
	}

	var buf bytes.Buffer
	require.NoError(t, nPng.Encode(&buf, img))
	return buf.Bytes()
}

func TestToType(t *testing.T) {
	gifType, err := ToType(encodeTestGIF(t))
	require.NoError(t, err)
	assert.Equal(t, image.GIF, gifType)

	pngType, err := ToType(encodeTestPNG(t))
	require.NoError(t, err)
	assert.Equal(t, image.PNG, pngType)

	_, err = ToType([]byte("definitely not an image"))
	assert.ErrorIs(t, err, ErrUnknownFormat)

	_, err = ToType(nil)
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestDecodeGIF(t *testing.T) {
	anim, err := Decode(encodeTestGIF(t), 0)
	require.NoError(t, err)

	assert.Equal(t, 8, anim.Width)
	assert.Equal(t, 8, anim.Height)
	require.Len(t, anim.Frames, 2)

	first := anim.Frames[0]
	assert.Equal(t, 0, first.Left)
	assert.Equal(t, 0, first.Top)
	assert.Equal(t, 8, first.Width)
	assert.Equal(t, 8, first.Height)
	assert.Equal(t, image.DisposalNone, first.Disposal)
	assert.Equal(t, 10, first.DelayCS)
	assert.Len(t, first.Pix, 8*8*4)
	assert.Equal(t, byte(255), first.Pix[0], "red frame")

	second := anim.Frames[1]
	assert.Equal(t, 2, second.Left)
	assert.Equal(t, 2, second.Top)
	assert.Equal(t, 4, second.Width)
	assert.Equal(t, 4, second.Height)
	assert.Equal(t, image.DisposalBackground, second.Disposal)
	assert.Equal(t, 20, second.DelayCS)

	assert.Equal(t, 10, anim.FPS())
	assert.Equal(t, []int{10, 20}, anim.Delays())
}

func TestDecodeGIFFrameCap(t *testing.T) {
	anim, err := Decode(encodeTestGIF(t), 1)
	require.NoError(t, err)
	assert.Len(t, anim.Frames, 1)
}

func TestDecodeStaticPNG(t *testing.T) {
	anim, err := Decode(encodeTestPNG(t), 0)
	require.NoError(t, err)

	assert.Equal(t, 4, anim.Width)
	assert.Equal(t, 2, anim.Height)
	require.Len(t, anim.Frames, 1)

	frame := anim.Frames[0]
	assert.Equal(t, image.DisposalNone, frame.Disposal)
	assert.Zero(t, frame.DelayCS)
	assert.Equal(t, byte(200), frame.Pix[0])
	assert.Equal(t, 0, anim.FPS())
}

func TestDecodeUnknown(t *testing.T) {
	_, err := Decode([]byte{0x00, 0x01, 0x02, 0x03}, 0)
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

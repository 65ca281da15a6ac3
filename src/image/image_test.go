package image

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPackedLen(t *testing.T) {
	assert.Equal(t, 0, PackedLen(0, 0))
	assert.Equal(t, 1, PackedLen(1, 1))
	assert.Equal(t, 1, PackedLen(8, 1))
	assert.Equal(t, 2, PackedLen(3, 3))
	assert.Equal(t, 1024, PackedLen(128, 64))
	assert.Equal(t, 32, PackedLen(16, 16))
}

func TestBitmapClone(t *testing.T) {
	bm := NewBitmap(2, 2)
	bm.Pix[0] = 42

	clone := bm.Clone()
	clone.Pix[0] = 7

	assert.Equal(t, byte(42), bm.Pix[0])
	assert.Equal(t, byte(7), clone.Pix[0])
	assert.Equal(t, bm.Width, clone.Width)
	assert.Equal(t, bm.Height, clone.Height)
}

func TestAnimationFPS(t *testing.T) {
	assert.Equal(t, 0, Animation{}.FPS())
	assert.Equal(t, 0, Animation{Frames: []PatchFrame{{DelayCS: 0}}}.FPS())
	assert.Equal(t, 10, Animation{Frames: []PatchFrame{{DelayCS: 10}}}.FPS())
	assert.Equal(t, 50, Animation{Frames: []PatchFrame{{DelayCS: 2}}}.FPS())
}

func TestAnimationDelays(t *testing.T) {
	anim := Animation{Frames: []PatchFrame{{DelayCS: 3}, {DelayCS: 8}}}
	assert.Equal(t, []int{3, 8}, anim.Delays())
}

package webp

import (
	"bytes"
	stdimage "image"

	"golang.org/x/image/webp"
)

func Decode(data []byte) (stdimage.Image, error) {
	return webp.Decode(bytes.NewReader(data))
}

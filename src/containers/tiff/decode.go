package tiff

import (
	"bytes"
	stdimage "image"

	"golang.org/x/image/tiff"
)

func Decode(data []byte) (stdimage.Image, error) {
	return tiff.Decode(bytes.NewReader(data))
}

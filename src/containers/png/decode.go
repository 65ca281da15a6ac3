package png

import (
	"bytes"
	stdimage "image"
	nPng "image/png"
)

func Decode(data []byte) (stdimage.Image, error) {
	return nPng.Decode(bytes.NewReader(data))
}

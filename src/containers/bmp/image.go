package bmp

import (
	"bytes"
	stdimage "image"

	"golang.org/x/image/bmp"
)

func Test(data []byte) bool {
	if len(data) < 2 {
		return false
	}

	// BMP Magic Numbers
	// https://www.garykessler.net/library/file_sigs.html
	return data[0] == 'B' &&
		data[1] == 'M'
}

func Decode(data []byte) (stdimage.Image, error) {
	return bmp.Decode(bytes.NewReader(data))
}

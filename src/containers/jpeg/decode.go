package jpeg

import (
	"bytes"
	stdimage "image"
	nJpeg "image/jpeg"
)

func Decode(data []byte) (stdimage.Image, error) {
	return nJpeg.Decode(bytes.NewReader(data))
}

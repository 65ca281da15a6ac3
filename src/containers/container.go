package containers

import (
	"fmt"
	stdimage "image"
	"image/draw"

	"github.com/daids/gif2esp/src/containers/bmp"
	"github.com/daids/gif2esp/src/containers/gif"
	"github.com/daids/gif2esp/src/containers/jpeg"
	"github.com/daids/gif2esp/src/containers/png"
	"github.com/daids/gif2esp/src/containers/tiff"
	"github.com/daids/gif2esp/src/containers/webp"
	"github.com/daids/gif2esp/src/image"
)

var ErrUnknownFormat = fmt.Errorf("unknown image format")

// ToType sniffs the container format from the raw bytes.
func ToType(data []byte) (image.ImageType, error) {
	if gif.Test(data) {
		return image.GIF, nil
	} else if jpeg.Test(data) {
		return image.JPEG, nil
	} else if png.Test(data) {
		return image.PNG, nil
	} else if bmp.Test(data) {
		return image.BMP, nil
	} else if tiff.Test(data) {
		return image.TIFF, nil
	} else if webp.Test(data) {
		return image.WEBP, nil
	}

	return "", ErrUnknownFormat
}

// Decode sniffs and decodes raw bytes into the patch-frame model the
// pipeline consumes. Animated GIFs yield one patch per frame, capped at
// maxFrames to bound work on malformed or very long inputs; static
// formats yield a single zero-delay full-canvas patch.
func Decode(data []byte, maxFrames int) (image.Animation, error) {
	imgType, err := ToType(data)
	if err != nil {
		return image.Animation{}, err
	}

	switch imgType {
	case image.GIF:
		return gif.Decode(data, maxFrames)
	case image.JPEG:
		return static(jpeg.Decode(data))
	case image.PNG:
		return static(png.Decode(data))
	case image.BMP:
		return static(bmp.Decode(data))
	case image.TIFF:
		return static(tiff.Decode(data))
	case image.WEBP:
		return static(webp.Decode(data))
	}

	return image.Animation{}, ErrUnknownFormat
}

// static wraps a decoded still image as a one-frame animation.
func static(img stdimage.Image, err error) (image.Animation, error) {
	if err != nil {
		return image.Animation{}, err
	}

	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	rgba := stdimage.NewRGBA(stdimage.Rect(0, 0, w, h))
	draw.Draw(rgba, rgba.Bounds(), img, bounds.Min, draw.Src)

	return image.Animation{
		Width:  w,
		Height: h,
		Frames: []image.PatchFrame{{
			Width:    w,
			Height:   h,
			Pix:      rgba.Pix,
			Disposal: image.DisposalNone,
		}},
	}, nil
}

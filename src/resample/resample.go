package resample

import (
	"math"

	"github.com/daids/gif2esp/src/image"
)

// Fit selects how a source image's aspect ratio relates to the target
// resolution.
type Fit uint8

const (
	// Stretch scales both axes independently, ignoring aspect ratio.
	Stretch Fit = iota
	// Cover scales uniformly so the image fills the target, cropping
	// the overflow, centered.
	Cover
	// Contain scales uniformly so the image fits inside the target,
	// padding the remainder, centered.
	Contain
)

func (f Fit) String() string {
	switch f {
	case Cover:
		return "cover"
	case Contain:
		return "contain"
	default:
		return "stretch"
	}
}

// ParseFit maps a config string onto a Fit, defaulting to Stretch.
func ParseFit(s string) Fit {
	switch s {
	case "cover":
		return Cover
	case "contain":
		return Contain
	default:
		return Stretch
	}
}

// Resample maps the source bitmap onto an exactly targetW by targetH
// bitmap using nearest-neighbor sampling. Target pixels that fall
// outside the source are padded with opaque black.
func Resample(src image.Bitmap, targetW, targetH int, fit Fit) image.Bitmap {
	scaleX, scaleY, offsetX, offsetY := transform(src.Width, src.Height, targetW, targetH, fit)

	dst := image.NewBitmap(targetW, targetH)
	for y := 0; y < targetH; y++ {
		srcY := int(math.Floor((float64(y) - offsetY) / scaleY))
		for x := 0; x < targetW; x++ {
			srcX := int(math.Floor((float64(x) - offsetX) / scaleX))
			dstOff := (y*targetW + x) * 4
			if srcX >= 0 && srcX < src.Width && srcY >= 0 && srcY < src.Height {
				srcOff := (srcY*src.Width + srcX) * 4
				copy(dst.Pix[dstOff:dstOff+4], src.Pix[srcOff:srcOff+4])
			} else {
				dst.Pix[dstOff+3] = 0xFF
			}
		}
	}
	return dst
}

// transform dispatches the fit policy once into per-axis scale and
// centering offsets; the sampling loop is policy-independent.
func transform(srcW, srcH, targetW, targetH int, fit Fit) (scaleX, scaleY, offsetX, offsetY float64) {
	scaleX = float64(targetW) / float64(srcW)
	scaleY = float64(targetH) / float64(srcH)

	switch fit {
	case Cover:
		scale := math.Max(scaleX, scaleY)
		scaleX, scaleY = scale, scale
	case Contain:
		scale := math.Min(scaleX, scaleY)
		scaleX, scaleY = scale, scale
	default:
		return scaleX, scaleY, 0, 0
	}

	offsetX = (float64(targetW) - float64(srcW)*scaleX) / 2
	offsetY = (float64(targetH) - float64(srcH)*scaleY) / 2
	return
}

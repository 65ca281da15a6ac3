package quantize

import (
	"github.com/daids/gif2esp/src/image"
	"github.com/daids/gif2esp/src/resample"
)

// Config carries the full monochrome conversion settings for one
// target display. Validation is the caller's concern; values are used
// as given.
type Config struct {
	Width     int
	Height    int
	Threshold int
	Invert    bool
	Dither    bool
	Fit       resample.Fit
}

// Quantize reduces an RGBA bitmap to 1-bit monochrome and packs it into
// the display's page-addressed vertical-byte layout. It also returns an
// RGBA preview of the quantized result for display use; the preview is
// a derived artifact and is never part of the persisted output.
//
// The bitmap must already be cfg.Width by cfg.Height.
func Quantize(bm image.Bitmap, cfg Config) (image.PackedFrame, image.Bitmap) {
	w, h := cfg.Width, cfg.Height

	// ITU-R BT.601 luminance, kept as float so dithering error can
	// accumulate without premature clamping.
	gray := make([]float64, w*h)
	for i := 0; i < w*h; i++ {
		r := float64(bm.Pix[i*4])
		g := float64(bm.Pix[i*4+1])
		b := float64(bm.Pix[i*4+2])
		gray[i] = 0.299*r + 0.587*g + 0.114*b
	}

	// When dithering, inversion happens before quantization so the
	// diffused error tracks the inverted target. Without dithering it
	// is applied to the quantized bit instead. The asymmetry is
	// intentional and matches the shipped behavior.
	if cfg.Invert && cfg.Dither {
		for i := range gray {
			gray[i] = 255 - gray[i]
		}
	}

	threshold := float64(cfg.Threshold)

	if cfg.Dither {
		floydSteinberg(gray, w, h, threshold)
	} else {
		for i := range gray {
			v := 0.0
			if gray[i] >= threshold {
				v = 255
			}
			if cfg.Invert {
				v = 255 - v
			}
			gray[i] = v
		}
	}

	packed := pack(gray, w, h)
	return packed, preview(gray, w, h)
}

// floydSteinberg quantizes in place in raster order, distributing each
// pixel's quantization error to the not-yet-visited neighbors:
// east 7/16, southwest 3/16, south 5/16, southeast 1/16. Neighbors
// outside the bounds are skipped and their share of the error dropped.
func floydSteinberg(gray []float64, w, h int, threshold float64) {
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			i := y*w + x
			v := gray[i]
			newVal := 0.0
			if v >= threshold {
				newVal = 255
			}
			gray[i] = newVal

			err := v - newVal
			if x+1 < w {
				gray[i+1] += err * 7 / 16
			}
			if y+1 < h {
				if x > 0 {
					gray[i+w-1] += err * 3 / 16
				}
				gray[i+w] += err * 5 / 16
				if x+1 < w {
					gray[i+w+1] += err * 1 / 16
				}
			}
		}
	}
}

// pack lays the quantized pixels out page-addressed: the frame is split
// into pages of 8 rows, byte page*w+x holds column x of that page and
// the row within the page selects the bit, LSB topmost. Lit pixels set
// their bit, everything else stays zero, including trailing bits of a
// final partial page.
func pack(gray []float64, w, h int) image.PackedFrame {
	bits := make([]byte, image.PackedLen(w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if gray[y*w+x] <= 128 {
				continue
			}
			idx := (y/8)*w + x
			if idx >= len(bits) {
				// Cannot happen for fixed w/h; guards the layout
				// invariant rather than any expected input.
				continue
			}
			bits[idx] |= 1 << uint(y&7)
		}
	}
	return image.PackedFrame{Bits: bits}
}

func preview(gray []float64, w, h int) image.Bitmap {
	out := image.NewBitmap(w, h)
	for i := range gray {
		v := byte(0)
		if gray[i] > 128 {
			v = 255
		}
		out.Pix[i*4] = v
		out.Pix[i*4+1] = v
		out.Pix[i*4+2] = v
		out.Pix[i*4+3] = 0xFF
	}
	return out
}

package compositor

import (
	"github.com/daids/gif2esp/src/image"
)

// Compose folds an ordered patch sequence into full-canvas bitmaps, one
// per logical frame. The running canvas starts fully transparent and is
// owned by this call; every emitted bitmap is an independent copy of the
// canvas as a viewer would see it at that frame.
//
// Disposal is applied strictly after the visible bitmap for a frame has
// been emitted:
//
//	DisposalNone        keep the drawn patch
//	DisposalBackground  clear the patch rectangle (only) to transparent
//	DisposalPrevious    restore the canvas captured before the draw
//
// DisposalPrevious on the very first frame has nothing to restore and
// degrades to DisposalNone.
func Compose(patches []image.PatchFrame, width, height int) []image.Bitmap {
	canvas := image.NewBitmap(width, height)
	out := make([]image.Bitmap, 0, len(patches))

	for i, patch := range patches {
		var snapshot image.Bitmap
		if patch.Disposal == image.DisposalPrevious && i > 0 {
			snapshot = canvas.Clone()
		}

		blit(canvas, patch)
		out = append(out, canvas.Clone())

		switch patch.Disposal {
		case image.DisposalBackground:
			clearRect(canvas, patch)
		case image.DisposalPrevious:
			if i > 0 {
				canvas = snapshot
			}
		}
	}

	return out
}

// blit copies the patch rectangle onto the canvas. GIF patches are
// opaque replacements within their rectangle, so destination pixels are
// overwritten without blending. Rectangles are clipped to the canvas.
func blit(dst image.Bitmap, patch image.PatchFrame) {
	x0, y0, x1, y1 := clip(dst, patch)
	for y := y0; y < y1; y++ {
		srcOff := ((y-patch.Top)*patch.Width + (x0 - patch.Left)) * 4
		dstOff := (y*dst.Width + x0) * 4
		copy(dst.Pix[dstOff:dstOff+(x1-x0)*4], patch.Pix[srcOff:srcOff+(x1-x0)*4])
	}
}

// clearRect zeroes the patch rectangle on the canvas, restoring it to
// the transparent background.
func clearRect(dst image.Bitmap, patch image.PatchFrame) {
	x0, y0, x1, y1 := clip(dst, patch)
	for y := y0; y < y1; y++ {
		dstOff := (y*dst.Width + x0) * 4
		row := dst.Pix[dstOff : dstOff+(x1-x0)*4]
		for i := range row {
			row[i] = 0
		}
	}
}

func clip(dst image.Bitmap, patch image.PatchFrame) (x0, y0, x1, y1 int) {
	x0 = max(patch.Left, 0)
	y0 = max(patch.Top, 0)
	x1 = min(patch.Left+patch.Width, dst.Width)
	y1 = min(patch.Top+patch.Height, dst.Height)
	if x1 < x0 {
		x1 = x0
	}
	if y1 < y0 {
		y1 = y0
	}
	return
}

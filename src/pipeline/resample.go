package pipeline

import (
	"github.com/daids/gif2esp/src/image"
	"github.com/daids/gif2esp/src/quantize"
	"github.com/daids/gif2esp/src/resample"
)

// resampleFor skips the sampling pass when the source already matches
// the target geometry.
func resampleFor(bm image.Bitmap, cfg quantize.Config) image.Bitmap {
	if bm.Width == cfg.Width && bm.Height == cfg.Height {
		return bm
	}
	return resample.Resample(bm, cfg.Width, cfg.Height, cfg.Fit)
}

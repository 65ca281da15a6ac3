package pipeline

import (
	"context"
	"runtime"
	"sync"

	"github.com/daids/gif2esp/src/compositor"
	"github.com/daids/gif2esp/src/image"
	"github.com/daids/gif2esp/src/quantize"
	"github.com/daids/gif2esp/src/rle"
)

// Frame is one fully processed animation frame. Encoded is nil unless
// compression was requested.
type Frame struct {
	Packed  image.PackedFrame
	Preview image.Bitmap
	Encoded []byte
	DelayCS int
}

// Payload returns the bytes destined for the emitted artifact: the
// encoded stream when compression is on, the packed bits otherwise.
func (f Frame) Payload() []byte {
	if f.Encoded != nil {
		return f.Encoded
	}
	return f.Packed.Bits
}

// Process runs the full conversion: compose the patch sequence into
// full bitmaps, then resample, quantize and optionally compress every
// frame. Composition is inherently sequential (the running canvas);
// everything after depends only on its own frame, so frames are fanned
// out over a GOMAXPROCS-sized worker pool and reassembled by index.
//
// On cancellation all in-flight results are discarded; a partial
// conversion is never returned.
func Process(ctx context.Context, anim image.Animation, cfg quantize.Config, compress bool) ([]Frame, error) {
	bitmaps := compositor.Compose(anim.Frames, anim.Width, anim.Height)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	out := make([]Frame, len(bitmaps))

	workers := make(chan struct{}, runtime.GOMAXPROCS(0))
	wg := sync.WaitGroup{}

	for i := range bitmaps {
		select {
		case <-ctx.Done():
			wg.Wait()
			return nil, ctx.Err()
		case workers <- struct{}{}:
		}

		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			defer func() { <-workers }()
			out[i] = processFrame(bitmaps[i], anim.Frames[i].DelayCS, cfg, compress)
		}(i)
	}

	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return out, nil
}

func processFrame(bm image.Bitmap, delayCS int, cfg quantize.Config, compress bool) Frame {
	resampled := resampleFor(bm, cfg)
	packed, preview := quantize.Quantize(resampled, cfg)

	frame := Frame{
		Packed:  packed,
		Preview: preview,
		DelayCS: delayCS,
	}
	if compress {
		frame.Encoded = rle.Encode(packed.Bits)
	}
	return frame
}

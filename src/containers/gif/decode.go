package gif

import (
	"bytes"
	stdimage "image"
	"image/draw"
	nGif "image/gif"

	"github.com/daids/gif2esp/src/image"
)

// Decode parses an animated GIF into ordered patch frames. The stdlib
// decoder hands back each frame as an incremental paletted patch with
// its own bounds; those are translated verbatim into the strict patch
// model here, once, at this boundary. Frames beyond maxFrames are
// dropped to bound worst-case work.
func Decode(data []byte, maxFrames int) (image.Animation, error) {
	decoded, err := nGif.DecodeAll(bytes.NewReader(data))
	if err != nil {
		return image.Animation{}, err
	}

	count := len(decoded.Image)
	if maxFrames > 0 && count > maxFrames {
		count = maxFrames
	}

	frames := make([]image.PatchFrame, 0, count)
	for i := 0; i < count; i++ {
		patch := decoded.Image[i]
		bounds := patch.Bounds()
		w, h := bounds.Dx(), bounds.Dy()

		rgba := stdimage.NewRGBA(stdimage.Rect(0, 0, w, h))
		draw.Draw(rgba, rgba.Bounds(), patch, bounds.Min, draw.Src)

		frame := image.PatchFrame{
			Left:     bounds.Min.X,
			Top:      bounds.Min.Y,
			Width:    w,
			Height:   h,
			Pix:      rgba.Pix,
			Disposal: disposal(decoded.Disposal, i),
		}
		if i < len(decoded.Delay) {
			frame.DelayCS = decoded.Delay[i]
		}
		frames = append(frames, frame)
	}

	return image.Animation{
		Width:  decoded.Config.Width,
		Height: decoded.Config.Height,
		Frames: frames,
	}, nil
}

func disposal(modes []byte, i int) image.Disposal {
	if i >= len(modes) {
		return image.DisposalNone
	}
	switch modes[i] {
	case nGif.DisposalBackground:
		return image.DisposalBackground
	case nGif.DisposalPrevious:
		return image.DisposalPrevious
	default:
		return image.DisposalNone
	}
}

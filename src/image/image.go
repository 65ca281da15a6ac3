package image

// ImageType is the sniffed container format of a raw input.
type ImageType string

const (
	GIF  ImageType = "gif"
	JPEG ImageType = "jpeg"
	PNG  ImageType = "png"
	BMP  ImageType = "bmp"
	TIFF ImageType = "tiff"
	WEBP ImageType = "webp"
)

// Disposal says what happens to a patch's rectangle once its frame has
// been shown.
type Disposal int

const (
	// DisposalNone leaves the drawn patch on the canvas.
	DisposalNone Disposal = iota + 1
	// DisposalBackground clears the patch rectangle to the background.
	DisposalBackground
	// DisposalPrevious restores the canvas state from before the draw.
	DisposalPrevious
)

// PatchFrame is one incremental frame of an animation: an RGBA
// rectangle positioned on the logical canvas, plus its disposal mode
// and display delay. Pix is 4 bytes per pixel, Width*Height*4 long.
type PatchFrame struct {
	Left     int
	Top      int
	Width    int
	Height   int
	Pix      []byte
	Disposal Disposal
	DelayCS  int
}

// Animation is a decoded input: the logical canvas size and the ordered
// patch frames drawn onto it.
type Animation struct {
	Width  int
	Height int
	Frames []PatchFrame
}

// FPS derives a nominal frame rate from the first frame's delay.
// Returns 0 when there are no frames or the delay is unset.
func (a Animation) FPS() int {
	if len(a.Frames) == 0 || a.Frames[0].DelayCS <= 0 {
		return 0
	}
	return 100 / a.Frames[0].DelayCS
}

// Delays returns the per-frame delays in centiseconds.
func (a Animation) Delays() []int {
	delays := make([]int, len(a.Frames))
	for i, f := range a.Frames {
		delays[i] = f.DelayCS
	}
	return delays
}

// Bitmap is a full-canvas RGBA image, 4 bytes per pixel.
type Bitmap struct {
	Width  int
	Height int
	Pix    []byte
}

// NewBitmap allocates a zeroed (fully transparent) bitmap.
func NewBitmap(w, h int) Bitmap {
	return Bitmap{
		Width:  w,
		Height: h,
		Pix:    make([]byte, w*h*4),
	}
}

// Clone returns an independent copy of the bitmap.
func (b Bitmap) Clone() Bitmap {
	pix := make([]byte, len(b.Pix))
	copy(pix, b.Pix)
	return Bitmap{Width: b.Width, Height: b.Height, Pix: pix}
}

// PackedFrame is one frame packed into the display's page-addressed
// vertical-byte layout.
type PackedFrame struct {
	Bits []byte
}

// PackedLen is the packed buffer size for a w by h frame: one bit per
// pixel, rounded up to whole bytes.
func PackedLen(w, h int) int {
	return (w*h + 7) / 8
}

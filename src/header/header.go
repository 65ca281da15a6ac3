// Package header serializes packed (or RLE-encoded) frames into a C
// source text ready to compile into display firmware.
package header

import (
	"fmt"
	"io"
	"strings"
)

// Options describes the animation being emitted. Name parameterizes
// every generated identifier and is sanitized to a C identifier first.
type Options struct {
	Name       string
	Width      int
	Height     int
	FPS        int
	Compressed bool

	// FrameLen is the decoded length of every frame,
	// ceil(Width*Height/8). With compression on, encoded frames vary
	// in length, so firmware needs this plus the per-frame length
	// array to size its decode buffer.
	FrameLen int

	// DelaysCS holds per-frame delays in centiseconds; emitted so
	// firmware can honor variable timing. May be nil.
	DelaysCS []int
}

const bytesPerLine = 16

// Emit writes the full artifact: a comment summary, geometry defines,
// one hex byte array per frame, the pointer table, per-frame encoded
// lengths and the C decoder routine when compression is enabled, and
// the delay table when known.
func Emit(w io.Writer, opt Options, frames [][]byte) error {
	name := sanitize(opt.Name)
	upper := strings.ToUpper(name)

	total := 0
	for _, f := range frames {
		total += len(f)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "/* %s: %dx%d, %d frame(s)", name, opt.Width, opt.Height, len(frames))
	if opt.FPS > 0 {
		fmt.Fprintf(&b, ", %d fps", opt.FPS)
	}
	if opt.Compressed {
		fmt.Fprintf(&b, ", RLE compressed (%d -> %d bytes)", opt.FrameLen*len(frames), total)
	} else {
		fmt.Fprintf(&b, ", %d bytes", total)
	}
	b.WriteString(" */\n\n")

	fmt.Fprintf(&b, "#define %s_WIDTH %d\n", upper, opt.Width)
	fmt.Fprintf(&b, "#define %s_HEIGHT %d\n", upper, opt.Height)
	fmt.Fprintf(&b, "#define %s_FRAME_COUNT %d\n", upper, len(frames))
	fmt.Fprintf(&b, "#define %s_FRAME_SIZE %d\n", upper, opt.FrameLen)
	if opt.FPS > 0 {
		fmt.Fprintf(&b, "#define %s_FPS %d\n", upper, opt.FPS)
	}
	b.WriteString("\n")

	for i, frame := range frames {
		fmt.Fprintf(&b, "const unsigned char %s_frame_%d[%d] = {", name, i, len(frame))
		for j, v := range frame {
			if j%bytesPerLine == 0 {
				b.WriteString("\n\t")
			}
			fmt.Fprintf(&b, "0x%02X,", v)
		}
		b.WriteString("\n};\n\n")
	}

	fmt.Fprintf(&b, "const unsigned char *const %s_frames[%d] = {", name, len(frames))
	for i := range frames {
		if i%4 == 0 {
			b.WriteString("\n\t")
		}
		fmt.Fprintf(&b, "%s_frame_%d, ", name, i)
	}
	b.WriteString("\n};\n")

	if opt.Compressed {
		fmt.Fprintf(&b, "\nconst unsigned int %s_frame_len[%d] = {", name, len(frames))
		for i, frame := range frames {
			if i%bytesPerLine == 0 {
				b.WriteString("\n\t")
			}
			fmt.Fprintf(&b, "%d, ", len(frame))
		}
		b.WriteString("\n};\n")
	}

	if len(opt.DelaysCS) > 0 {
		fmt.Fprintf(&b, "\nconst unsigned int %s_delay_cs[%d] = {", name, len(opt.DelaysCS))
		for i, d := range opt.DelaysCS {
			if i%bytesPerLine == 0 {
				b.WriteString("\n\t")
			}
			fmt.Fprintf(&b, "%d, ", d)
		}
		b.WriteString("\n};\n")
	}

	if opt.Compressed {
		b.WriteString("\n")
		b.WriteString(decoderSource(name, upper))
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// decoderSource is the firmware-side mirror of rle.Decode. The two must
// stay in lockstep with the stream format in src/rle.
func decoderSource(name, upper string) string {
	return fmt.Sprintf(`/* Decompress one frame into out, which must hold %s_FRAME_SIZE bytes. */
void %s_decode(const unsigned char *in, unsigned int in_len, unsigned char *out)
{
	unsigned int i = 0, o = 0;
	while (o < %s_FRAME_SIZE && i < in_len) {
		unsigned char header = in[i++];
		if (header < 0x80) {
			unsigned int n = header + 1;
			while (n-- && o < %s_FRAME_SIZE && i < in_len)
				out[o++] = in[i++];
		} else {
			unsigned int n = (header - 0x80) + 3;
			unsigned char v = in[i++];
			while (n-- && o < %s_FRAME_SIZE)
				out[o++] = v;
		}
	}
}
`, upper, name, upper, upper, upper)
}

// sanitize coerces an arbitrary caller-supplied base name into a C
// identifier.
func sanitize(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r == '_':
			b.WriteRune(r)
		case r >= '0' && r <= '9':
			if b.Len() == 0 {
				b.WriteRune('_')
			}
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	if b.Len() == 0 {
		return "anim"
	}
	return b.String()
}

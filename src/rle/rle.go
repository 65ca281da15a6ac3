// Package rle implements the PackBits-style byte codec used to shrink
// packed display frames. The decoder is deliberately simple enough to
// re-implement on a microcontroller; Emit in src/header produces the C
// translation that firmware ships.
//
// Stream format, record by record:
//
//	header 0x00..0x7F   header+1 literal bytes follow verbatim
//	header 0x80..0xFF   one value byte follows, repeated (header-128)+3 times
//
// A repeat run shorter than 3 saves nothing over literals, so 3 is the
// minimum repeat length and 130 the maximum a header can express.
package rle

import "fmt"

const (
	minRun     = 3
	maxRun     = minRun + 0x7F // 130
	maxLiteral = 0x80          // 128
)

var ErrShortInput = fmt.Errorf("rle: truncated input stream")

// Encode compresses data in a single left-to-right scan. Output is not
// guaranteed to be smaller than the input; alternating bytes expand by
// one header per 128 literals.
func Encode(data []byte) []byte {
	out := make([]byte, 0, len(data))

	for pos := 0; pos < len(data); {
		run := runLength(data, pos)
		if run >= minRun {
			out = append(out, byte(0x80+(run-minRun)), data[pos])
			pos += run
			continue
		}

		// Literal run: extend until the header cap or until a forward
		// repeat run appears, which becomes its own record next pass.
		lit := 1
		for pos+lit < len(data) && lit < maxLiteral {
			if runLength(data, pos+lit) >= minRun {
				break
			}
			lit++
		}
		out = append(out, byte(lit-1))
		out = append(out, data[pos:pos+lit]...)
		pos += lit
	}

	return out
}

// runLength measures the run of equal bytes starting at pos, capped at
// the longest run a repeat header can express.
func runLength(data []byte, pos int) int {
	n := 1
	for pos+n < len(data) && n < maxRun && data[pos+n] == data[pos] {
		n++
	}
	return n
}

// Decode expands src into a buffer of exactly size bytes, the original
// packed-frame length, which the caller must know out-of-band. Writing
// stops once the output is full even if src has trailing bytes. A
// stream that ends mid-record returns ErrShortInput; deeper corruption
// is the caller's problem to rule out before calling.
func Decode(src []byte, size int) ([]byte, error) {
	out := make([]byte, 0, size)

	for i := 0; len(out) < size; {
		if i >= len(src) {
			return nil, ErrShortInput
		}
		header := src[i]
		i++

		if header < 0x80 {
			n := int(header) + 1
			if i+n > len(src) {
				return nil, ErrShortInput
			}
			if room := size - len(out); n > room {
				n = room
			}
			out = append(out, src[i:i+n]...)
			i += int(header) + 1
			continue
		}

		if i >= len(src) {
			return nil, ErrShortInput
		}
		n := int(header-0x80) + minRun
		if room := size - len(out); n > room {
			n = room
		}
		for j := 0; j < n; j++ {
			out = append(out, src[i])
		}
		i++
	}

	return out, nil
}

package rle

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func roundTrip(t *testing.T, data []byte) {
	t.Helper()
	enc := Encode(data)
	dec, err := Decode(enc, len(data))
	require.NoError(t, err)
	assert.Equal(t, data, dec)
}

func TestEncodeConcreteCase(t *testing.T) {
	// Five 5s form a repeat record (header 128+(5-3)=130); the two 9s
	// never reach the minimum repeat length and stay literal along
	// with 1,2,3.
	data := []byte{5, 5, 5, 5, 5, 9, 9, 1, 2, 3}
	enc := Encode(data)

	assert.Equal(t, []byte{130, 5, 4, 9, 9, 1, 2, 3}, enc)
	roundTrip(t, data)
}

func TestEncodeEmpty(t *testing.T) {
	assert.Empty(t, Encode(nil))

	dec, err := Decode(nil, 0)
	require.NoError(t, err)
	assert.Empty(t, dec)
}

func TestRepeatRunCap(t *testing.T) {
	// 130 is the longest run one repeat header expresses; 200 zeros
	// split into 130 + 70.
	data := bytes.Repeat([]byte{0}, 200)
	enc := Encode(data)

	assert.Equal(t, []byte{0xFF, 0, 128 + (70 - 3), 0}, enc)
	roundTrip(t, data)
}

func TestLiteralRunCap(t *testing.T) {
	// Alternating bytes never form a repeat run; literals are capped
	// at 128 per record and the stream expands by one header byte per
	// record.
	data := make([]byte, 200)
	for i := range data {
		data[i] = byte(i & 1)
	}
	enc := Encode(data)

	require.Greater(t, len(enc), len(data))
	assert.Equal(t, byte(127), enc[0])
	assert.Equal(t, byte(200-128-1), enc[129])
	roundTrip(t, data)
}

func TestLiteralBreaksOnForwardRun(t *testing.T) {
	data := []byte{1, 2, 7, 7, 7, 3, 4}
	enc := Encode(data)

	assert.Equal(t, []byte{1, 1, 2, 130, 7, 1, 3, 4}, enc)
	roundTrip(t, data)
}

func TestRoundTripExhaustiveSmall(t *testing.T) {
	// All short ternary sequences; small alphabets maximize run/
	// literal boundary cases.
	var seq func(prefix []byte, n int)
	seq = func(prefix []byte, n int) {
		if n == 0 {
			roundTrip(t, append([]byte{}, prefix...))
			return
		}
		for _, v := range []byte{0, 7, 255} {
			seq(append(prefix, v), n-1)
		}
	}
	for n := 0; n <= 6; n++ {
		seq(nil, n)
	}
}

func TestRoundTripRandom(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 200; i++ {
		n := rng.Intn(512)
		data := make([]byte, n)
		for j := range data {
			// Byte range 0..3 keeps runs frequent.
			data[j] = byte(rng.Intn(4))
		}
		roundTrip(t, data)
	}
}

func TestDecodeStopsAtDeclaredLength(t *testing.T) {
	// Repeat of four 1s, but only two wanted; trailing input bytes
	// must be ignored.
	dec, err := Decode([]byte{0x81, 1, 0xAA, 0xBB}, 2)
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 1}, dec)
}

func TestDecodeTruncatedStream(t *testing.T) {
	// Literal header promising 6 bytes with none following.
	_, err := Decode([]byte{5}, 3)
	assert.ErrorIs(t, err, ErrShortInput)

	// Repeat header with no value byte.
	_, err = Decode([]byte{0x82}, 3)
	assert.ErrorIs(t, err, ErrShortInput)

	// Empty input with output still owed.
	_, err = Decode(nil, 1)
	assert.ErrorIs(t, err, ErrShortInput)
}

func TestEncodePackedFramePattern(t *testing.T) {
	// Typical packed frame: long zero spans with sparse set bytes.
	data := make([]byte, 1024)
	for i := 100; i < 110; i++ {
		data[i] = 0x3C
	}
	enc := Encode(data)

	require.Less(t, len(enc), len(data)/10)
	roundTrip(t, data)
}

// Package codec converts text to its 8-bit binary representation and back.
//
// Every character is treated as a single byte: its code point is written as
// eight zero-padded base-2 digits and the groups are concatenated without
// separators.
//
//	bin, _ := codec.Encode("hi")    // "0110100001101001"
//	text, _ := codec.Decode(bin)    // "hi"
package codec

import (
	"strings"

	"github.com/yyyoichi/bitstream-go"
)

const (
	// GroupSize is the number of binary digits per character.
	GroupSize = 8

	maxCodePoint = 0xFF
)

// Encode returns the concatenated 8-digit binary groups for each rune of
// text. Runes above U+00FF cannot be represented in one group and fail with
// ErrCodePointOutOfRange.
func Encode(text string) (string, error) {
	if text == "" {
		return "", nil
	}

	w := bitstream.NewBitWriter[uint64](0, 0)
	for i, r := range text {
		if r < 0 || r > maxCodePoint {
			return "", &Error{Op: "encode", Kind: ErrCodePointOutOfRange, Offset: i, Input: text}
		}
		w.Write8(0, GroupSize, uint8(r))
	}

	return bitsToDigits(w.Data(), w.Bits()), nil
}

// Decode parses a binary string produced by Encode. Whitespace anywhere in
// the input is ignored. The input is split into groups of eight digits; a
// short trailing group is parsed as-is unless WithStrictLength is given.
func Decode(binary string, opts ...Option) (string, error) {
	o := newOptions(opts)

	digits := strings.Join(strings.Fields(binary), "")
	if digits == "" {
		return "", nil
	}

	w := bitstream.NewBitWriter[uint64](0, 0)
	for i := 0; i < len(digits); i++ {
		switch digits[i] {
		case '0':
			w.WriteBool(false)
		case '1':
			w.WriteBool(true)
		default:
			return "", &Error{Op: "decode", Kind: ErrInvalidDigit, Offset: i, Input: digits}
		}
	}

	n := w.Bits()
	if o.strictLength && n%GroupSize != 0 {
		return "", &Error{Op: "decode", Kind: ErrInvalidGroupLength, Offset: n - n%GroupSize, Input: digits}
	}

	reader := bitstream.NewBitReader(w.Data(), 0, 0)
	reader.SetBits(n)

	var b strings.Builder
	b.Grow(n / GroupSize)
	for start := 0; start < n; start += GroupSize {
		end := min(start+GroupSize, n)
		var cp rune
		for i := start; i < end; i++ {
			bit, _ := reader.ReadBitAt(i)
			cp <<= 1
			if bit {
				cp |= 1
			}
		}
		b.WriteRune(cp)
	}
	return b.String(), nil
}

func bitsToDigits(data []uint64, n int) string {
	reader := bitstream.NewBitReader(data, 0, 0)
	reader.SetBits(n)

	out := make([]byte, n)
	for i := range out {
		bit, _ := reader.ReadBitAt(i)
		if bit {
			out[i] = '1'
		} else {
			out[i] = '0'
		}
	}
	return string(out)
}

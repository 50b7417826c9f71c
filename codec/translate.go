package codec

import (
	"fmt"
	"strings"
)

// Mode selects how Translate picks a direction.
type Mode int

const (
	// ModeAuto decodes input containing the digit '1' and encodes anything
	// else. Plain text such as "1st" is therefore treated as binary.
	ModeAuto Mode = iota
	ModeEncode
	ModeDecode
)

func (m Mode) String() string {
	switch m {
	case ModeAuto:
		return "auto"
	case ModeEncode:
		return "encode"
	case ModeDecode:
		return "decode"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode parses "auto", "encode" or "decode". The empty string is auto.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return ModeAuto, nil
	case "encode", "text":
		return ModeEncode, nil
	case "decode", "binary":
		return ModeDecode, nil
	default:
		return ModeAuto, fmt.Errorf("%w: %q", ErrUnknownMode, s)
	}
}

// Direction reports which way a translation went.
type Direction int

const (
	Encoded Direction = iota // text to binary
	Decoded                  // binary to text
)

func (d Direction) String() string {
	if d == Decoded {
		return "decoded"
	}
	return "encoded"
}

// Translation is the outcome of Translate.
type Translation struct {
	Input     string
	Output    string
	Direction Direction
}

// Classify applies the auto-detection rule: any '1' in the input marks it as
// binary.
func Classify(input string) Direction {
	if strings.ContainsRune(input, '1') {
		return Decoded
	}
	return Encoded
}

// Translate encodes or decodes input according to mode.
func Translate(input string, mode Mode, opts ...Option) (Translation, error) {
	var dir Direction
	switch mode {
	case ModeAuto:
		dir = Classify(input)
	case ModeEncode:
		dir = Encoded
	case ModeDecode:
		dir = Decoded
	default:
		return Translation{}, fmt.Errorf("%w: %v", ErrUnknownMode, mode)
	}

	t := Translation{Input: input, Direction: dir}
	var err error
	if dir == Decoded {
		t.Output, err = Decode(input, opts...)
	} else {
		t.Output, err = Encode(input)
	}
	if err != nil {
		return Translation{}, err
	}
	return t, nil
}

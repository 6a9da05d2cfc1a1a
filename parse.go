// Copyright 2020 Aleksandr Demakin. All rights reserved.

package ieee754

import (
	"errors"
	"fmt"
	"strings"
)

type posError struct {
	pos int
	err string
}

func newPosError(err string, pos int) *posError {
	return &posError{err: err, pos: pos}
}

func (pe posError) Error() string {
	return pe.err + fmt.Sprintf(" at pos %d", pe.pos)
}

// ParseBinary parses a string of '0' and '1' into a decoded number.
// It is the reverse of Decoded.Binary. Spaces and underscores are ignored,
// so that fields can be separated, like `0 10000001 01110000000000000000000`.
// The string must contain exactly p.TotalBits bits.
func ParseBinary(s string, p Precision) (Decoded, error) {
	if err := p.Validate(); err != nil {
		return Decoded{}, fmt.Errorf("bad precision: %w", err)
	}
	s, offset := prepareString(s)
	if len(s) == 0 {
		return Decoded{}, fmt.Errorf("empty input")
	}
	bits, err := parseBits(s, p.TotalBits)
	if err != nil {
		var pe *posError
		if errors.As(err, &pe) {
			pe.pos += offset + 1 // +1 to start indices from 1.
			err = pe
		}
		return Decoded{}, fmt.Errorf("parsing failed: %w", err)
	}
	return Extract(bits, p), nil
}

// MustParseBinary is like ParseBinary, but panics on error.
func MustParseBinary(s string, p Precision) Decoded {
	d, err := ParseBinary(s, p)
	if err != nil {
		panic(err)
	}
	return d
}

// prepareString removes quotes and surrounding spaces.
func prepareString(s string) (prepared string, offset int) {
	if len(s) > 0 && s[0] == '"' {
		s = s[1:]
		offset++
	}
	if len(s) > 0 && s[len(s)-1] == '"' {
		s = s[:len(s)-1]
	}
	if trimmed := strings.TrimLeft(s, " \t"); len(trimmed) != len(s) {
		offset += len(s) - len(trimmed)
		s = trimmed
	}
	return strings.TrimRight(s, " \t"), offset
}

func parseBits(s string, width uint) (uint64, error) {
	var bits uint64
	var n uint
	for i, r := range s {
		switch r {
		case '0', '1':
			if n == width {
				return 0, newPosError(fmt.Sprintf("more than %d bits", width), i)
			}
			bits = bits<<1 | uint64(r-'0')
			n++
		case ' ', '_':
		default:
			return 0, newPosError(fmt.Sprintf("unexpected symbol %q", r), i)
		}
	}
	if n != width {
		return 0, fmt.Errorf("got %d bits, want %d", n, width)
	}
	return bits, nil
}

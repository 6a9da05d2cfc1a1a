package bitutil

import (
	"math"
	"math/big"
	"math/bits"
	"strings"
)

var (
	pow5Table = [...]uint64{ // up to 5^27
		1, 5, 25, 125, 625,
		3125, 15625, 78125, 390625, 1953125,
		9765625, 48828125, 244140625, 1220703125, 6103515625,
		30517578125, 152587890625, 762939453125, 3814697265625, 19073486328125,
		95367431640625, 476837158203125, 2384185791015625, 11920928955078125, 59604644775390625,
		298023223876953125, 1490116119384765625, 7450580596923828125,
	}
)

// Mask returns a value with the lowest n bits set.
func Mask(n uint) uint64 {
	if n >= 64 {
		return math.MaxUint64
	}
	return 1<<n - 1
}

// Field returns width bits of v, starting at bit shift.
func Field(v uint64, shift, width uint) uint64 {
	if shift >= 64 {
		return 0
	}
	return v >> shift & Mask(width)
}

func BinaryDigits(value uint64) int {
	return 64 - bits.LeadingZeros64(value)
}

// TrailingZeros returns the number of trailing zero bits among the lowest
// width bits of v. An all-zero field has width trailing zeros.
func TrailingZeros(v uint64, width uint) int {
	v &= Mask(width)
	if v == 0 {
		return int(width)
	}
	return bits.TrailingZeros64(v)
}

// WriteBinary writes the lowest width bits of v to builder, most significant bit first.
func WriteBinary(builder *strings.Builder, v uint64, width uint) {
	for i := int(width) - 1; i >= 0; i-- {
		builder.WriteByte('0' + byte(Field(v, uint(i), 1)))
	}
}

// FormatBinary returns the lowest width bits of v as a string of '0' and '1'.
func FormatBinary(v uint64, width uint) string {
	var builder strings.Builder
	builder.Grow(int(width))
	WriteBinary(&builder, v, width)
	return builder.String()
}

// Pow5 returns 5^n. 5^n * 10^-n is the exact decimal value of 2^-n.
func Pow5(n int) *big.Int {
	if n < 0 {
		return new(big.Int)
	}
	if n < len(pow5Table) {
		return new(big.Int).SetUint64(pow5Table[n])
	}
	return new(big.Int).Exp(big.NewInt(5), big.NewInt(int64(n)), nil)
}

// Copyright 2020 Aleksandr Demakin. All rights reserved.

package ieee754

import (
	"fmt"
	"math"
	"strings"
	"unsafe"

	"golang.org/x/exp/constraints"

	bu "github.com/lawjacob/float-double-binary-breakdown/internal/bitutil"
)

// Decoded is a floating-point bit pattern split into sign, exponent and mantissa.
// For a double precision number the layout is
//   63 62        52 51                                                  0
//   _|___________|____________________________________________________
//   seeeeeeeeeeeemmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmm
//
// Decoded is an immutable value, all derived quantities are computed on demand.
type Decoded struct {
	prec Precision
	bits uint64
}

func sign(d Decoded) uint64 {
	return bu.Field(d.bits, d.prec.signShift(), 1)
}

func exp(d Decoded) uint64 {
	return bu.Field(d.bits, d.prec.MantissaBits, d.prec.ExponentBits)
}

func mant(d Decoded) uint64 {
	return d.bits & bu.Mask(d.prec.MantissaBits)
}

func split(d Decoded) (s, e, m uint64) {
	return sign(d), exp(d), mant(d)
}

// Extract splits the lowest p.TotalBits bits of a raw pattern into fields.
// Every pattern is accepted, including zeros, subnormals, infinities and NaNs.
func Extract(bits uint64, p Precision) Decoded {
	return Decoded{prec: p, bits: bits & bu.Mask(p.TotalBits)}
}

// FromFloat64 decodes a double precision number.
func FromFloat64(v float64) Decoded {
	return Extract(math.Float64bits(v), Double)
}

// FromFloat32 decodes a single precision number.
func FromFloat32(v float32) Decoded {
	return Extract(uint64(math.Float32bits(v)), Single)
}

// Decode decodes v using Single for 32-bit types and Double otherwise.
func Decode[F constraints.Float](v F) Decoded {
	if unsafe.Sizeof(v) == 4 {
		return FromFloat32(float32(v))
	}
	return FromFloat64(float64(v))
}

// Precision returns the layout d was decoded with.
func (d Decoded) Precision() Precision {
	return d.prec
}

// Bits returns the raw bit pattern.
func (d Decoded) Bits() uint64 {
	return d.bits
}

// Sign returns the sign bit: 0 for positive numbers, 1 for negative ones.
func (d Decoded) Sign() int {
	return int(sign(d))
}

// Exponent returns the biased exponent field.
func (d Decoded) Exponent() uint64 {
	return exp(d)
}

// Mantissa returns the mantissa field without the implicit leading bit.
func (d Decoded) Mantissa() uint64 {
	return mant(d)
}

// Binary returns all bits of the number, most significant first.
func (d Decoded) Binary() string {
	return bu.FormatBinary(d.bits, d.prec.TotalBits)
}

// ExponentBinary returns the bits of the exponent field.
func (d Decoded) ExponentBinary() string {
	return bu.FormatBinary(exp(d), d.prec.ExponentBits)
}

// MantissaBinary returns the bits of the mantissa field.
func (d Decoded) MantissaBinary() string {
	return bu.FormatBinary(mant(d), d.prec.MantissaBits)
}

// GoString returns debug string representation.
func (d Decoded) GoString() string {
	s, e, m := split(d)
	var builder strings.Builder
	builder.WriteString(d.prec.String())
	builder.WriteRune('(')
	bu.WriteBinary(&builder, s, 1)
	builder.WriteRune(' ')
	bu.WriteBinary(&builder, e, d.prec.ExponentBits)
	builder.WriteRune(' ')
	bu.WriteBinary(&builder, m, d.prec.MantissaBits)
	builder.WriteRune(')')
	builder.WriteString(fmt.Sprintf(" {%v, %v, %v}", s, e, m))
	return builder.String()
}

// String returns the same text as Report.
func (d Decoded) String() string {
	return d.Report()
}

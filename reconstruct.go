// Copyright 2020 Aleksandr Demakin. All rights reserved.

package ieee754

import (
	"fmt"
	"math"
	"math/big"

	"github.com/shopspring/decimal"

	bu "github.com/lawjacob/float-double-binary-breakdown/internal/bitutil"
)

// Class is the IEEE-754 category of a bit pattern.
type Class int

const (
	// ClassZero is a zero exponent field with a zero mantissa.
	ClassZero Class = iota
	// ClassSubnormal is a zero exponent field with a non-zero mantissa.
	ClassSubnormal
	// ClassNormal is any exponent field other than all zeros or all ones.
	ClassNormal
	// ClassInfinite is an all-ones exponent field with a zero mantissa.
	ClassInfinite
	// ClassNaN is an all-ones exponent field with a non-zero mantissa.
	ClassNaN
)

var classNames = [...]string{"zero", "subnormal", "normal", "infinite", "nan"}

func (c Class) String() string {
	if c < 0 || int(c) >= len(classNames) {
		return fmt.Sprintf("Class(%d)", int(c))
	}
	return classNames[c]
}

// Term is one mantissa bit with its weight 2^-(Position+1).
type Term struct {
	Bit      uint8
	Position int
}

// Weight returns the term's contribution to the mantissa.
func (t Term) Weight() float64 {
	if t.Bit == 0 {
		return 0
	}
	return math.Ldexp(1, -(t.Position + 1))
}

// String returns a term like `1*2^-3`.
func (t Term) String() string {
	return fmt.Sprintf("%d*2^%d", t.Bit, -(t.Position + 1))
}

// Class returns the category of d.
func (d Decoded) Class() Class {
	_, e, m := split(d)
	switch {
	case e == bu.Mask(d.prec.ExponentBits):
		if m != 0 {
			return ClassNaN
		}
		return ClassInfinite
	case e != 0:
		return ClassNormal
	case m != 0:
		return ClassSubnormal
	default:
		return ClassZero
	}
}

// ActualExponent returns the exponent field minus the bias.
// The result is not adjusted for zeros and subnormals.
func (d Decoded) ActualExponent() int {
	return int(exp(d)) - d.prec.Bias
}

// MantissaFraction returns 1 plus the weighted sum of the mantissa bits.
func (d Decoded) MantissaFraction() float64 {
	return 1 + d.fraction()
}

// fraction sums m_i * 2^-(i+1), starting from the most significant mantissa bit.
func (d Decoded) fraction() float64 {
	m, n := mant(d), d.prec.MantissaBits
	var f float64
	for i := uint(0); i < n; i++ {
		if bu.Field(m, n-1-i, 1) != 0 {
			f += math.Ldexp(1, -int(i+1))
		}
	}
	return f
}

// significand returns the significand and the power of two it is scaled by.
// Zero exponent fields have no implicit leading bit and use the minimum exponent.
func (d Decoded) significand() (sig float64, e int) {
	if exp(d) == 0 {
		return d.fraction(), 1 - d.prec.Bias
	}
	return d.MantissaFraction(), d.ActualExponent()
}

// Value rebuilds the number as (-1)^sign * significand * 2^exponent.
// All-ones exponent fields produce infinities and NaNs.
func (d Decoded) Value() float64 {
	var v float64
	switch d.Class() {
	case ClassNaN:
		return math.NaN()
	case ClassInfinite:
		v = math.Inf(1)
	default:
		sig, e := d.significand()
		v = math.Ldexp(sig, e)
	}
	if sign(d) == 1 {
		return -v
	}
	return v
}

// Float32 returns Value narrowed to a float32.
func (d Decoded) Float32() float32 {
	return float32(d.Value())
}

// TrailingZeros returns the number of trailing zero bits of the mantissa.
func (d Decoded) TrailingZeros() int {
	return bu.TrailingZeros(mant(d), d.prec.MantissaBits)
}

// MantissaTerms returns the mantissa bits up to the last set one.
// The result is empty for a zero mantissa.
func (d Decoded) MantissaTerms() []Term {
	m, n := mant(d), int(d.prec.MantissaBits)
	terms := make([]Term, n-d.TrailingZeros())
	for i := range terms {
		terms[i] = Term{Bit: uint8(bu.Field(m, uint(n-1-i), 1)), Position: i}
	}
	return terms
}

// ExactMantissa returns MantissaFraction as an exact decimal.
func (d Decoded) ExactMantissa() decimal.Decimal {
	n := d.prec.MantissaBits
	sig := new(big.Int).SetUint64(mant(d))
	sig.SetBit(sig, int(n), 1)
	return decimal.NewFromBigInt(sig.Mul(sig, bu.Pow5(int(n))), -int32(n))
}

// ExactValue returns Value as an exact decimal.
// Every finite binary number has a finite decimal expansion.
// Returns false for infinities and NaNs.
func (d Decoded) ExactValue() (decimal.Decimal, bool) {
	switch d.Class() {
	case ClassInfinite, ClassNaN:
		return decimal.Zero, false
	}
	s, e, m := split(d)
	n := int(d.prec.MantissaBits)
	sig := new(big.Int).SetUint64(m)
	e2 := 1 - d.prec.Bias - n
	if e != 0 {
		sig.SetBit(sig, n, 1)
		e2 = int(e) - d.prec.Bias - n
	}
	if s == 1 {
		sig.Neg(sig)
	}
	if e2 >= 0 {
		return decimal.NewFromBigInt(sig.Lsh(sig, uint(e2)), 0), true
	}
	return decimal.NewFromBigInt(sig.Mul(sig, bu.Pow5(-e2)), int32(e2)), true
}

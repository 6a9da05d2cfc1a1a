// Copyright 2020 Aleksandr Demakin. All rights reserved.

package ieee754

import (
	"fmt"
	"math"
	"math/big"
	"math/rand"
	"testing"
	"time"

	of "github.com/robaho/fixed"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestReconstruct(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		d        Decoded
		actual   int
		fraction float64
		value    float64
		class    Class
	}{
		{FromFloat64(5.75), 2, 1.4375, 5.75, ClassNormal},
		{FromFloat32(5.75), 2, 1.4375, 5.75, ClassNormal},
		{FromFloat64(0), -1023, 1, 0, ClassZero},
		{FromFloat32(0), -127, 1, 0, ClassZero},
		{FromFloat64(1), 0, 1, 1, ClassNormal},
		{FromFloat64(-2.5), 1, 1.25, -2.5, ClassNormal},
		{FromFloat32(-0.15625), -3, 1.25, -0.15625, ClassNormal},
		{FromFloat64(math.SmallestNonzeroFloat64), -1023, 1 + math.Ldexp(1, -52), math.SmallestNonzeroFloat64, ClassSubnormal},
		{FromFloat32(math.SmallestNonzeroFloat32), -127, 1 + math.Ldexp(1, -23), math.SmallestNonzeroFloat32, ClassSubnormal},
		{FromFloat64(math.MaxFloat64), 1023, 2 - math.Ldexp(1, -52), math.MaxFloat64, ClassNormal},
		{FromFloat64(math.Inf(1)), 1024, 1, math.Inf(1), ClassInfinite},
		{FromFloat64(math.Inf(-1)), 1024, 1, math.Inf(-1), ClassInfinite},
		{FromFloat32(float32(math.Inf(-1))), 128, 1, math.Inf(-1), ClassInfinite},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			d := test.d
			a.Equal(test.actual, d.ActualExponent())
			a.Equal(test.fraction, d.MantissaFraction())
			a.Equal(test.value, d.Value())
			a.Equal(test.class, d.Class())
		})
	}
}

func TestReconstructSpecial(t *testing.T) {
	a := assert.New(t)
	nan := FromFloat64(math.NaN())
	a.Equal(ClassNaN, nan.Class())
	a.True(math.IsNaN(nan.Value()))
	a.True(math.IsNaN(float64(FromFloat32(float32(math.NaN())).Float32())))

	negZero := FromFloat64(math.Copysign(0, -1))
	a.Equal(ClassZero, negZero.Class())
	a.True(math.Signbit(negZero.Value()))
	a.Equal(float64(0), negZero.Value())
	a.True(math.Signbit(float64(FromFloat32(float32(negZero.Value())).Float32())))
}

func TestRoundTrip(t *testing.T) {
	a := assert.New(t)
	values := []float64{
		0, 1, -1, 5.75, 0.1, 1.0 / 3, math.Pi, -math.E, 1e300, -1e-300, 1e-310,
		math.MaxFloat64, math.SmallestNonzeroFloat64, math.Nextafter(1, 2), math.Copysign(0, -1),
	}
	for _, v := range values {
		a.Equal(math.Float64bits(v), math.Float64bits(FromFloat64(v).Value()), "%v", v)
		f := float32(v)
		a.Equal(math.Float32bits(f), math.Float32bits(FromFloat32(f).Float32()), "%v", f)
	}
	rnd := rand.New(rand.NewSource(time.Now().Unix()))
	for i := 0; i < 10000; i++ {
		d := Extract(rnd.Uint64(), Double)
		if c := d.Class(); c == ClassNaN || c == ClassInfinite {
			continue
		}
		a.Equal(d.Bits(), math.Float64bits(d.Value()))

		s := Extract(uint64(rnd.Uint32()), Single)
		if c := s.Class(); c == ClassNaN || c == ClassInfinite {
			continue
		}
		a.Equal(s.Bits(), uint64(math.Float32bits(s.Float32())))
	}
}

func TestHalfPrecision(t *testing.T) {
	a := assert.New(t)
	half := Precision{Name: "half", TotalBits: 16, ExponentBits: 5, MantissaBits: 10, Bias: 15}
	checks := map[string]float64{
		"0 00000 0000000000": 0.0,
		"0 00000 0000000001": 5.960464477539063e-08,
		"0 00000 1111111111": 6.097555160522461e-05,
		"0 00001 0000000000": 6.103515625e-05,
		"0 01101 0101010101": 0.333251953125,
		"0 01111 0000000000": 1.0,
		"0 10001 0100000000": 5.0,
		"0 11110 1111111111": 65504,
		"0 11111 0000000000": math.Inf(+1),
		"1 10000 1000000000": -3.0,
		"1 11111 0000000000": math.Inf(-1),
	}
	for bits, expected := range checks {
		d, err := ParseBinary(bits, half)
		if a.NoError(err) {
			a.Equal(expected, d.Value(), bits)
		}
	}
}

func TestMantissaTerms(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		d     Decoded
		tz    int
		terms []Term
	}{
		{FromFloat64(5.75), 48, []Term{{0, 0}, {1, 1}, {1, 2}, {1, 3}}},
		{FromFloat32(5.75), 19, []Term{{0, 0}, {1, 1}, {1, 2}, {1, 3}}},
		{FromFloat64(1), 52, []Term{}},
		{FromFloat32(0), 23, []Term{}},
		{FromFloat64(1.5), 51, []Term{{1, 0}}},
		{FromFloat64(0.1), 1, nil},
		{FromFloat64(math.Nextafter(1, 2)), 0, nil},
		{FromFloat32(0.1), 0, nil},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			d := test.d
			mantBits := int(d.Precision().MantissaBits)
			terms := d.MantissaTerms()
			a.Equal(test.tz, d.TrailingZeros())
			a.Len(terms, mantBits-test.tz)
			if test.terms != nil {
				a.Equal(test.terms, terms)
			}
			sum := 1.0
			for j, term := range terms {
				a.Equal(j, term.Position)
				sum += term.Weight()
			}
			a.Equal(d.MantissaFraction(), sum)
			if len(terms) > 0 {
				a.Equal(uint8(1), terms[len(terms)-1].Bit)
			}
		})
	}
}

func TestTerm(t *testing.T) {
	a := assert.New(t)
	a.Equal("1*2^-1", Term{Bit: 1}.String())
	a.Equal("0*2^-3", Term{Bit: 0, Position: 2}.String())
	a.Equal(0.125, Term{Bit: 1, Position: 2}.Weight())
	a.Equal(float64(0), Term{Bit: 0, Position: 2}.Weight())
}

func TestClassString(t *testing.T) {
	a := assert.New(t)
	a.Equal("zero", ClassZero.String())
	a.Equal("subnormal", ClassSubnormal.String())
	a.Equal("normal", ClassNormal.String())
	a.Equal("infinite", ClassInfinite.String())
	a.Equal("nan", ClassNaN.String())
	a.Equal("Class(7)", Class(7).String())
}

func mustDecimal(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func pow2(n int) decimal.Decimal {
	return decimal.NewFromBigInt(new(big.Int).Lsh(big.NewInt(1), uint(n)), 0)
}

func TestExact(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		d        Decoded
		value    string
		mantissa string
	}{
		{FromFloat64(5.75), "5.75", "1.4375"},
		{FromFloat32(5.75), "5.75", "1.4375"},
		{FromFloat64(-2.5), "-2.5", "1.25"},
		{FromFloat64(0), "0", "1"},
		{FromFloat64(math.Copysign(0, -1)), "0", "1"},
		{FromFloat64(1e20), "100000000000000000000", ""},
		{FromFloat64(0.1), "0.1000000000000000055511151231257827021181583404541015625", "1.600000000000000088817841970012523233890533447265625"},
		{FromFloat32(0.1), "0.100000001490116119384765625", "1.60000002384185791015625"},
		{FromFloat32(math.SmallestNonzeroFloat32), "", "1.00000011920928955078125"},
		{FromFloat64(math.SmallestNonzeroFloat64), "", "1.0000000000000002220446049250313080847263336181640625"},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			value, ok := test.d.ExactValue()
			a.True(ok)
			if test.value != "" {
				a.True(value.Equal(mustDecimal(test.value)), "%s != %s", value, test.value)
			}
			if test.mantissa != "" {
				a.True(test.d.ExactMantissa().Equal(mustDecimal(test.mantissa)), "%s", test.d.ExactMantissa())
			}
		})
	}

	// 2^-149 and 2^-1074 times their inverse powers of two give exactly 1.
	v, _ := FromFloat32(math.SmallestNonzeroFloat32).ExactValue()
	a.True(v.Mul(pow2(149)).Equal(decimal.New(1, 0)), "%s", v)
	v, _ = FromFloat64(math.SmallestNonzeroFloat64).ExactValue()
	a.True(v.Mul(pow2(1074)).Equal(decimal.New(1, 0)))

	// a normal value is its mantissa scaled by 2^actual exponent.
	d := FromFloat64(1e20)
	v, _ = d.ExactValue()
	a.True(d.ExactMantissa().Mul(pow2(d.ActualExponent())).Equal(v))

	_, ok := FromFloat64(math.Inf(1)).ExactValue()
	a.False(ok)
	_, ok = FromFloat64(math.NaN()).ExactValue()
	a.False(ok)
}

func BenchmarkMantissaFraction(b *testing.B) {
	d := FromFloat64(math.Pi)
	var dummy float64
	for i := 0; i < b.N; i++ {
		dummy += d.MantissaFraction()
	}
	// this metric is just to prevent unwanted optimisations in calculations of `dummy.`
	b.ReportMetric(dummy, "dummy_metric")
}

func BenchmarkMantissaDecimal(b *testing.B) {
	d := FromFloat64(math.Pi)
	terms := d.MantissaTerms()
	for i := 0; i < b.N; i++ {
		sum := decimal.New(1, 0)
		for _, term := range terms {
			sum = sum.Add(decimal.NewFromFloat(term.Weight()))
		}
	}
}

func BenchmarkMantissaOtherFixed(b *testing.B) {
	d := FromFloat64(math.Pi)
	terms := d.MantissaTerms()
	for i := 0; i < b.N; i++ {
		sum := of.NewI(1, 0)
		for _, term := range terms {
			sum = sum.Add(of.NewF(term.Weight()))
		}
	}
}

func BenchmarkExactMantissa(b *testing.B) {
	d := FromFloat64(math.Pi)
	for i := 0; i < b.N; i++ {
		d.ExactMantissa()
	}
}

// Copyright 2020 Aleksandr Demakin. All rights reserved.

package ieee754

import (
	"io"
	"strconv"
	"strings"

	bu "github.com/lawjacob/float-double-binary-breakdown/internal/bitutil"
)

const (
	termDelim      = " + "
	trailingZeros  = " + trailing 0s"
	reportLines    = 9
	avgLineLength  = 48
	signPositive   = "+"
	signNegative   = "-"
	factorPositive = "+1"
	factorNegative = "-1"
)

// Report returns a multi-line explanation of how the bits of d make up its value:
//   Binary representation of 01000000000101110000...
//   Sign: +
//   Exponent: 10000000001 = 2
//   Mantissa: 01110000...
//   Mantissa deconstructed to be: 0*2^-1 + 1*2^-2 + 1*2^-3 + 1*2^-4 + trailing 0s = 0.4375
//   Plus the implicit 1: 1.4375
//   Final value: +1*2^2*1.4375 = 5.75
//   Exact value: 5.75
// Zeros and subnormals have no implicit 1 and use the minimum exponent,
// which is noted in an additional Class line, as are infinities and NaNs.
func (d Decoded) Report() string {
	var builder strings.Builder
	d.WriteToStringsBuilder(&builder)
	return builder.String()
}

// WriteReport writes Report to w.
func (d Decoded) WriteReport(w io.Writer) error {
	_, err := io.WriteString(w, d.Report())
	return err
}

// WriteToStringsBuilder writes Report to builder.
func (d Decoded) WriteToStringsBuilder(builder *strings.Builder) {
	builder.Grow(int(d.prec.TotalBits)*2 + reportLines*avgLineLength)
	s, e, m := split(d)
	class := d.Class()

	builder.WriteString("Binary representation of ")
	bu.WriteBinary(builder, d.bits, d.prec.TotalBits)

	builder.WriteString("\nSign: ")
	builder.WriteString([...]string{signPositive, signNegative}[s])

	builder.WriteString("\nExponent: ")
	bu.WriteBinary(builder, e, d.prec.ExponentBits)
	builder.WriteString(" = ")
	builder.WriteString(strconv.Itoa(d.ActualExponent()))

	builder.WriteString("\nMantissa: ")
	bu.WriteBinary(builder, m, d.prec.MantissaBits)

	builder.WriteString("\nMantissa deconstructed to be: ")
	terms := d.MantissaTerms()
	if len(terms) == 0 {
		builder.WriteRune('0')
	}
	for i, term := range terms {
		if i > 0 {
			builder.WriteString(termDelim)
		}
		builder.WriteString(term.String())
	}
	if d.TrailingZeros() > 0 {
		builder.WriteString(trailingZeros)
	}
	builder.WriteString(" = ")
	builder.WriteString(formatFloat(d.fraction(), 64))

	sig, pow := d.significand()
	if e == 0 {
		builder.WriteString("\nPlus the implicit 0: ")
	} else {
		builder.WriteString("\nPlus the implicit 1: ")
	}
	builder.WriteString(formatFloat(sig, 64))

	if class != ClassNormal {
		builder.WriteString("\nClass: ")
		builder.WriteString(class.String())
		if e == 0 {
			builder.WriteString(", exponent fixed at ")
			builder.WriteString(strconv.Itoa(pow))
		}
	}

	builder.WriteString("\nFinal value: ")
	builder.WriteString([...]string{factorPositive, factorNegative}[s])
	builder.WriteString("*2^")
	builder.WriteString(strconv.Itoa(pow))
	builder.WriteRune('*')
	builder.WriteString(formatFloat(sig, 64))
	builder.WriteString(" = ")
	builder.WriteString(formatFloat(d.Value(), d.valueBits()))

	if exact, ok := d.ExactValue(); ok {
		builder.WriteString("\nExact value: ")
		builder.WriteString(exact.String())
	}
}

// valueBits returns the bit size used to print the shortest representation of Value.
func (d Decoded) valueBits() int {
	if d.prec.TotalBits <= 32 {
		return 32
	}
	return 64
}

func formatFloat(f float64, bitSize int) string {
	return strconv.FormatFloat(f, 'g', -1, bitSize)
}

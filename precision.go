// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package ieee754 splits IEEE-754 binary floating-point numbers into their
// sign, exponent and mantissa fields, rebuilds the value from those fields,
// and explains the decomposition in a human-readable report.
package ieee754

import (
	"fmt"
	"strings"

	"github.com/hashicorp/go-multierror"
)

// Precision describes the layout of a binary floating-point format.
//   TotalBits-1  MantissaBits               0
//   s            eee...e       mmm...m
type Precision struct {
	Name         string
	TotalBits    uint
	ExponentBits uint
	MantissaBits uint
	Bias         int
}

var (
	// Single is the IEEE-754 binary32 format.
	Single = Precision{Name: "single", TotalBits: 32, ExponentBits: 8, MantissaBits: 23, Bias: 127}
	// Double is the IEEE-754 binary64 format.
	Double = Precision{Name: "double", TotalBits: 64, ExponentBits: 11, MantissaBits: 52, Bias: 1023}

	precisionNames = map[string]Precision{
		"single":  Single,
		"float32": Single,
		"32":      Single,
		"double":  Double,
		"float64": Double,
		"64":      Double,
	}
)

// PrecisionByName returns a known precision by its name.
// Accepted names are single, float32, 32, double, float64 and 64.
func PrecisionByName(name string) (Precision, error) {
	p, found := precisionNames[strings.ToLower(strings.TrimSpace(name))]
	if !found {
		return Precision{}, fmt.Errorf("unknown precision %q", name)
	}
	return p, nil
}

// Validate checks that the layout is consistent. All violations are returned at once.
func (p Precision) Validate() error {
	var result *multierror.Error
	if p.ExponentBits == 0 {
		result = multierror.Append(result, fmt.Errorf("exponent bits must be positive"))
	}
	if p.MantissaBits == 0 {
		result = multierror.Append(result, fmt.Errorf("mantissa bits must be positive"))
	}
	if p.TotalBits != 1+p.ExponentBits+p.MantissaBits {
		result = multierror.Append(result, fmt.Errorf("total bits %d != 1 + %d + %d",
			p.TotalBits, p.ExponentBits, p.MantissaBits))
	}
	if p.TotalBits > 64 {
		result = multierror.Append(result, fmt.Errorf("total bits %d exceed 64", p.TotalBits))
	}
	if p.ExponentBits > 0 && p.ExponentBits < 32 {
		if want := 1<<(p.ExponentBits-1) - 1; p.Bias != want {
			result = multierror.Append(result, fmt.Errorf("bias %d, want %d for %d exponent bits",
				p.Bias, want, p.ExponentBits))
		}
	}
	return result.ErrorOrNil()
}

// String returns the precision's name.
func (p Precision) String() string {
	if p.Name != "" {
		return p.Name
	}
	return fmt.Sprintf("binary%d", p.TotalBits)
}

func (p Precision) signShift() uint {
	return p.ExponentBits + p.MantissaBits
}

package config

import (
	"strconv"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"

	ieee754 "github.com/lawjacob/float-double-binary-breakdown"
)

type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"

	// PrecisionBoth decodes each value in single and in double precision.
	PrecisionBoth = "both"
)

// Config holds the command line settings.
type Config struct {
	// Values is a comma-separated list of numbers.
	Values string
	// Bits is a bit string, which is used instead of Values if set.
	Bits      string
	Precision string
	Format    Format

	LogLevel  string
	LogFormat string
}

// Default returns the settings used without any flags: 5.75 in double precision.
func Default() Config {
	return Config{
		Values:    "5.75",
		Precision: "double",
		Format:    FormatText,
		LogLevel:  "info",
		LogFormat: "console",
	}
}

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	var result *multierror.Error
	if _, err := c.Precisions(); err != nil {
		result = multierror.Append(result, err)
	}
	switch c.Format {
	case FormatText, FormatJSON:
	default:
		result = multierror.Append(result, errors.Errorf("invalid format %q (must be text or json)", c.Format))
	}
	if c.Bits != "" {
		if strings.EqualFold(c.Precision, PrecisionBoth) {
			result = multierror.Append(result, errors.New("a bit string has exactly one precision"))
		}
	} else if _, err := c.Numbers(64); err != nil {
		result = multierror.Append(result, err)
	}
	return result.ErrorOrNil()
}

// Precisions returns the precisions to decode with.
func (c *Config) Precisions() ([]ieee754.Precision, error) {
	if strings.EqualFold(strings.TrimSpace(c.Precision), PrecisionBoth) {
		return []ieee754.Precision{ieee754.Single, ieee754.Double}, nil
	}
	p, err := ieee754.PrecisionByName(c.Precision)
	if err != nil {
		return nil, errors.Wrap(err, "invalid precision")
	}
	return []ieee754.Precision{p}, nil
}

// Numbers parses Values rounded to bitSize bits (32 or 64).
// Special values like NaN, Inf and -0 are accepted.
func (c *Config) Numbers(bitSize int) ([]float64, error) {
	if strings.TrimSpace(c.Values) == "" {
		return nil, errors.New("no values given")
	}
	parts := strings.Split(c.Values, ",")
	result := make([]float64, 0, len(parts))
	for i, part := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(part), bitSize)
		if err != nil {
			return nil, errors.Wrapf(err, "value #%d", i+1)
		}
		result = append(result, f)
	}
	return result, nil
}

package main

import (
	"context"
	"encoding/json"
	"flag"
	"io"
	"os"

	"github.com/pkg/errors"

	ieee754 "github.com/lawjacob/float-double-binary-breakdown"
	"github.com/lawjacob/float-double-binary-breakdown/internal/config"
	"github.com/lawjacob/float-double-binary-breakdown/internal/logger"
)

var (
	defaults = config.Default()

	values    = flag.String("values", defaults.Values, "Comma-separated list of numbers to break down.")
	bits      = flag.String("bits", "", "Bit string to break down instead of -values, like \"0 10000001 0111...\".")
	precision = flag.String("precision", defaults.Precision, "Precision: single, double or both.")
	format    = flag.String("format", string(defaults.Format), "Output format: text or json.")
	logLevel  = flag.String("log-level", defaults.LogLevel, "Log level: debug, info, warn or error.")
	logFormat = flag.String("log-format", defaults.LogFormat, "Log format: console or json.")
)

func main() {
	flag.Parse()
	cfg := config.Config{
		Values:    *values,
		Bits:      *bits,
		Precision: *precision,
		Format:    config.Format(*format),
		LogLevel:  *logLevel,
		LogFormat: *logFormat,
	}
	logger.Setup(cfg.LogLevel, cfg.LogFormat)
	if err := run(context.Background(), cfg, os.Stdout); err != nil {
		logger.Log.Error("breakdown failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Config, w io.Writer) error {
	if err := cfg.Validate(); err != nil {
		return errors.Wrap(err, "invalid configuration")
	}
	decoded, err := decode(ctx, cfg)
	if err != nil {
		return err
	}
	for _, d := range decoded {
		logger.Log.Debug("decoded", "precision", d.Precision().String(), "bits", d.Binary(), "class", d.Class().String())
	}
	return write(w, cfg.Format, decoded)
}

func decode(ctx context.Context, cfg config.Config) ([]ieee754.Decoded, error) {
	precisions, err := cfg.Precisions()
	if err != nil {
		return nil, err
	}
	if cfg.Bits != "" {
		d, err := ieee754.ParseBinary(cfg.Bits, precisions[0])
		if err != nil {
			return nil, errors.Wrapf(err, "bad bit string for %s precision", precisions[0])
		}
		return []ieee754.Decoded{d}, nil
	}
	var result []ieee754.Decoded
	for _, p := range precisions {
		decoded, err := decodeValues(ctx, cfg, p)
		if err != nil {
			return nil, err
		}
		result = append(result, decoded...)
	}
	return result, nil
}

func decodeValues(ctx context.Context, cfg config.Config, p ieee754.Precision) ([]ieee754.Decoded, error) {
	if p == ieee754.Single {
		numbers, err := cfg.Numbers(32)
		if err != nil {
			return nil, errors.Wrap(err, "values do not fit single precision")
		}
		singles := make([]float32, len(numbers))
		for i, n := range numbers {
			singles[i] = float32(n)
		}
		return ieee754.DecodeAll(ctx, singles)
	}
	numbers, err := cfg.Numbers(64)
	if err != nil {
		return nil, err
	}
	return ieee754.DecodeAll(ctx, numbers)
}

func write(w io.Writer, format config.Format, decoded []ieee754.Decoded) error {
	if format == config.FormatJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return errors.Wrap(enc.Encode(decoded), "error writing json")
	}
	for i, d := range decoded {
		if i > 0 {
			if _, err := io.WriteString(w, "\n"); err != nil {
				return err
			}
		}
		if err := d.WriteReport(w); err != nil {
			return errors.Wrap(err, "error writing report")
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}
	return nil
}

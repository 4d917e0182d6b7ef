// Command hexreverse decodes a record holding hex-encoded buffers, reverses both buffers
// and writes it back in the same format.
//
//	echo '{"buffer":"c0ffee","array_buffer":"deadbeef","other_data":"x"}' | hexreverse --format json
package main

import (
	"io"
	"os"

	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/oy3o/hexcodec/internal/demo"
)

func main() {
	var (
		format = pflag.StringP("format", "f", string(demo.JSON), "input and output format: json, yaml, toml, cbor or binary")
		in     = pflag.StringP("in", "i", "-", "input file, - for stdin")
		out    = pflag.StringP("out", "o", "-", "output file, - for stdout")
		debug  = pflag.Bool("debug", false, "human-readable debug logging")
	)
	pflag.Parse()

	logger := newLogger(*debug)
	defer logger.Sync() //nolint:errcheck

	if err := run(logger, *format, *in, *out); err != nil {
		logger.Error("hexreverse failed", zap.Error(err))
		_ = logger.Sync()
		os.Exit(1)
	}
}

func newLogger(debug bool) *zap.Logger {
	var (
		logger *zap.Logger
		err    error
	)
	if debug {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

func run(logger *zap.Logger, formatName, in, out string) error {
	format, err := demo.ParseFormat(formatName)
	if err != nil {
		return err
	}

	data, err := readInput(in)
	if err != nil {
		return err
	}
	logger.Debug("read input", zap.String("path", in), zap.Int("bytes", len(data)))

	reversed, err := demo.Reverse(data, format)
	if err != nil {
		return err
	}

	if err := writeOutput(out, reversed); err != nil {
		return err
	}
	logger.Info("reversed record",
		zap.String("format", string(format)),
		zap.Int("in_bytes", len(data)),
		zap.Int("out_bytes", len(reversed)),
	)
	return nil
}

func readInput(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

func writeOutput(path string, data []byte) error {
	if path == "-" {
		_, err := os.Stdout.Write(data)
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

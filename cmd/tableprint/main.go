package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/gompdf/tableprint/internal/config"
	"github.com/gompdf/tableprint/internal/logger"
	"github.com/gompdf/tableprint/pkg/api"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		os.Exit(1)
	}
}

// run parses args, prints the requested table and reports failures through
// the configured logger. Output "-" writes the PDF to stdout.
func run(args []string, stdout io.Writer) error {
	flags := pflag.NewFlagSet("tableprint", pflag.ContinueOnError)
	var (
		inputFile  = flags.StringP("input", "i", "", "Input HTML file path or URL")
		outputFile = flags.StringP("output", "o", "", "Output PDF file path, - for stdout")
		tableIndex = flags.Int("table", 0, "Index of the table in the input document")
		stretch    = flags.String("stretch", "", "Comma separated column stretch weights, e.g. 1,1,2")
		configFile = flags.String("config", "", "Configuration file (default ./tableprint.toml)")
		margins    = flags.String("margins", "", "Page margins in points: all, vertical,horizontal or top,right,bottom,left")
		verbose    = flags.BoolP("verbose", "v", false, "Enable verbose logging")
	)
	flags.String("page-size", "", "Page size: a3, a4, a5, letter, legal")
	flags.String("orientation", "", "Page orientation: portrait or landscape")
	flags.String("caption", "", "Caption printed at the top of every page")
	flags.String("title", "", "Page title template, %d is the page number")

	if err := flags.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}

	cfg, err := config.Load(*configFile, flags)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	if *verbose {
		cfg.Log.Level = "debug"
	}

	log, err := logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	defer func() { _ = log.Sync() }()

	if err := printTable(cfg, log, options{
		input:     *inputFile,
		output:    *outputFile,
		table:     *tableIndex,
		stretch:   *stretch,
		margins:   *margins,
		usage:     flags.FlagUsages(),
		useStdout: *outputFile == "-",
	}, stdout); err != nil {
		log.Error("printing failed", zap.Error(err))
		return err
	}
	return nil
}

type options struct {
	input     string
	output    string
	table     int
	stretch   string
	margins   string
	usage     string
	useStdout bool
}

func printTable(cfg *config.Config, log *zap.Logger, o options, stdout io.Writer) error {
	if o.input == "" {
		return fmt.Errorf("input file is required\n%s", o.usage)
	}

	opts, err := cfg.PrinterOptions()
	if err != nil {
		return err
	}
	if o.margins != "" {
		top, right, bottom, left, err := parseMargins(o.margins)
		if err != nil {
			return err
		}
		opts = append(opts, api.WithMargins(top, right, bottom, left))
	}
	stretches, err := parseStretches(o.stretch)
	if err != nil {
		return err
	}
	opts = append(opts, api.WithLogger(log), api.WithTitle(filepath.Base(o.input)))

	printer := api.New(opts...)

	var buf bytes.Buffer
	if err := printer.PrintHTMLFile(o.input, o.table, stretches, &buf); err != nil {
		return err
	}

	if o.useStdout {
		_, err := io.Copy(stdout, &buf)
		return err
	}

	output := o.output
	if output == "" {
		output = outputPath(o.input)
	}
	if err := os.WriteFile(output, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write PDF file: %w", err)
	}
	log.Info("document written", zap.String("input", o.input), zap.String("output", output))
	return nil
}

// outputPath derives the PDF path from the input reference
func outputPath(input string) string {
	if i := strings.Index(input, "://"); i >= 0 {
		input = strings.TrimRight(input[i+3:], "/")
		input = filepath.Base(filepath.FromSlash(input))
	}
	ext := filepath.Ext(input)
	return input[:len(input)-len(ext)] + ".pdf"
}

// parseStretches parses a comma separated weight list. An empty list means
// uniform weights.
func parseStretches(s string) ([]float64, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	out := make([]float64, len(parts))
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid stretch %q: %w", p, err)
		}
		out[i] = v
	}
	return out, nil
}

// parseMargins accepts one, two or four comma separated values in CSS order
func parseMargins(s string) (top, right, bottom, left float64, err error) {
	parts := strings.Split(s, ",")
	vals := make([]float64, len(parts))
	for i, p := range parts {
		vals[i], err = strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return 0, 0, 0, 0, fmt.Errorf("invalid margin %q: %w", p, err)
		}
	}
	switch len(vals) {
	case 1:
		return vals[0], vals[0], vals[0], vals[0], nil
	case 2:
		return vals[0], vals[1], vals[0], vals[1], nil
	case 4:
		return vals[0], vals[1], vals[2], vals[3], nil
	default:
		return 0, 0, 0, 0, fmt.Errorf("invalid margins %q: expected 1, 2 or 4 values", s)
	}
}

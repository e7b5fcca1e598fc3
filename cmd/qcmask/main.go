// Command qcmask masks bad samples in one or more series.
//
// Usage:
//
//	qcmask [flags] file ...
//
// Each file holds one series as whitespace-separated numbers; blank lines
// and lines starting with # are skipped. Masked segments are printed per
// file. With -apply the fixed and tapered series are written next to each
// input with a .qc suffix.
//
// Examples:
//
//	qcmask trace.txt
//	qcmask -mode both -config qc.yaml z.txt n.txt e.txt
//	qcmask -format json -apply -zero-phase trace.txt
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/cwbudde/algo-qc/qc"
	"github.com/cwbudde/algo-qc/qc/mask"
	"github.com/cwbudde/algo-qc/stats/summary"
)

const modeBasic = "basic"

type options struct {
	config    string
	mode      string
	format    string
	apply     bool
	zeroPhase bool
	grow      bool
	debug     bool
	files     []string
}

func main() {
	opts, err := parseFlags(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		os.Exit(2)
	}

	var logger *zap.Logger
	if opts.debug {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "can't initialize zap logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	if err := run(opts, logger, os.Stdout); err != nil {
		logger.Error("qcmask failed", zap.Error(err))
		_ = logger.Sync()
		os.Exit(1)
	}
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var opts options

	fs := flag.NewFlagSet("qcmask", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.config, "config", "", "YAML QC definition (defaults apply when empty)")
	fs.StringVar(&opts.mode, "mode", "", "basic, single, cross or both (overrides the config mode)")
	fs.StringVar(&opts.format, "format", "table", "output format: table or json")
	fs.BoolVar(&opts.apply, "apply", false, "write fixed and tapered series to <file>.qc")
	fs.BoolVar(&opts.zeroPhase, "zero-phase", false, "with -apply, also taper before each segment")
	fs.BoolVar(&opts.grow, "grow", false, "with -apply, add tapered ranges to the reported masks")
	fs.BoolVar(&opts.debug, "debug", false, "turn on debugging output")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: qcmask [flags] file ...\n\n")
		fmt.Fprintf(stderr, "Masks zero gaps, spikes and dropouts in sample series.\n\n")
		fmt.Fprintf(stderr, "Flags:\n")
		fs.PrintDefaults()
		fmt.Fprintf(stderr, "\nExamples:\n")
		fmt.Fprintf(stderr, "  qcmask trace.txt\n")
		fmt.Fprintf(stderr, "  qcmask -mode both -config qc.yaml z.txt n.txt e.txt\n")
		fmt.Fprintf(stderr, "  qcmask -format json -apply trace.txt\n")
	}

	if err := fs.Parse(args); err != nil {
		return opts, err
	}

	opts.files = fs.Args()
	if len(opts.files) == 0 {
		fs.Usage()
		return opts, errors.New("no input files")
	}

	switch opts.format {
	case "table", "json":
	default:
		fmt.Fprintf(stderr, "error: unknown format %q\n", opts.format)
		return opts, fmt.Errorf("unknown format %q", opts.format)
	}

	return opts, nil
}

func run(opts options, logger *zap.Logger, stdout io.Writer) error {
	cfg, err := qc.LoadConfig(opts.config)
	if err != nil {
		return err
	}

	basicOnly := strings.EqualFold(strings.TrimSpace(opts.mode), modeBasic)
	if opts.mode != "" && !basicOnly {
		if cfg.Mode, err = qc.ParseMode(opts.mode); err != nil {
			return err
		}
	}

	series := make([][]float64, len(opts.files))
	for i, path := range opts.files {
		if series[i], err = readSeries(path); err != nil {
			return err
		}
		logger.Debug("series loaded", zap.String("file", path), zap.Int("samples", len(series[i])))
	}

	p := qc.New(qc.WithLogger(logger))

	var masks []*mask.Mask
	if basicOnly {
		masks, err = p.Basic(series, []mask.Def{cfg.Def})
	} else {
		masks, err = p.Extended(series, cfg.Def, cfg.Mode)
	}
	if err != nil {
		return err
	}

	clean := make([]summary.Summary, len(series))
	for i, m := range masks {
		clean[i] = summary.Runs(series[i], m.Unmasked(len(series[i])))
	}

	if opts.apply {
		if err := p.Apply(series, masks, opts.zeroPhase, opts.grow); err != nil {
			return err
		}

		for i, path := range opts.files {
			out := path + ".qc"
			if err := writeSeries(out, series[i]); err != nil {
				return err
			}
			logger.Info("corrected series written", zap.String("file", out))
		}
	}

	reports := buildReports(opts.files, series, masks, clean)
	if opts.format == "json" {
		return writeJSON(stdout, reports)
	}

	return writeTable(stdout, reports)
}

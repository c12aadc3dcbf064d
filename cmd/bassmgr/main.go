// Command bassmgr applies 5.1 bass management to a six-channel WAV file.
//
// Usage:
//
//	bassmgr [flags] -in input.wav -out output.wav
//	bassmgr [flags] -response
//
// The input must be PCM with channels in WAV 5.1 order (L, R, C, LFE, LS,
// RS). The output keeps the sample rate and bit depth of the input.
//
// Examples:
//
//	bassmgr -in movie.wav -out managed.wav
//	bassmgr -crossover 80 -lfe 120 -boost=false -in a.wav -out b.wav
//	bassmgr -preset living-room.yaml -in a.wav -out b.wav
//	bassmgr -crossover 100 -response
//	bassmgr -crossover 90 -boost=false -dump-preset > living-room.yaml
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/sirupsen/logrus"

	"github.com/cwbudde/algo-bassmgr/dsp/bass"
	"github.com/cwbudde/algo-bassmgr/dsp/core"
)

type options struct {
	in       string
	out      string
	preset   string
	block    int
	rate     float64
	response bool
	dump     bool
	verbose  bool

	params bass.Parameters
}

func main() {
	opts, err := parseFlags(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	logrus.SetOutput(os.Stderr)
	if opts.verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, opts); err != nil {
		logrus.WithError(err).Error("bassmgr failed")
		os.Exit(1)
	}
}

func run(ctx context.Context, opts options) error {
	if opts.dump {
		data, err := marshalPreset(opts.params)
		if err != nil {
			return err
		}
		_, err = os.Stdout.Write(data)
		return err
	}

	e, err := bass.New(bass.WithParameters(opts.params))
	if err != nil {
		return err
	}

	if opts.response {
		if err := e.Prepare(opts.rate, opts.block); err != nil {
			return err
		}
		return printResponse(os.Stdout, e)
	}

	return processFile(ctx, e, opts)
}

// parseFlags parses args. Parameter precedence is defaults, then the preset
// file, then flags given explicitly on the command line.
func parseFlags(args []string, output io.Writer) (options, error) {
	fs := flag.NewFlagSet("bassmgr", flag.ContinueOnError)
	fs.SetOutput(output)

	def := bass.DefaultParameters()
	format := core.DefaultProcessorConfig()
	var opts options
	fs.StringVar(&opts.in, "in", "", "input 5.1 WAV file")
	fs.StringVar(&opts.out, "out", "", "output WAV file")
	fs.StringVar(&opts.preset, "preset", "", "YAML preset with crossover_hz, lfe_cutoff_hz and lfe_boost")
	fs.IntVar(&opts.block, "block", format.BlockSize, "processing block size in frames")
	fs.Float64Var(&opts.rate, "rate", format.SampleRate, "sample rate for -response")
	fs.BoolVar(&opts.response, "response", false, "print the analytic response table and exit")
	fs.BoolVar(&opts.dump, "dump-preset", false, "print the effective parameters as a YAML preset and exit")
	fs.BoolVar(&opts.verbose, "v", false, "verbose logging")
	crossover := fs.Float64("crossover", def.CrossoverHz, "crossover frequency in Hz [20, 250]")
	lfe := fs.Float64("lfe", def.LFECutoffHz, "LFE low-pass cutoff in Hz [20, 250]")
	boost := fs.Bool("boost", def.LFEBoost, "apply the +10 dB LFE boost")
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: bassmgr [flags] -in input.wav -out output.wav\n")
		fmt.Fprintf(fs.Output(), "       bassmgr [flags] -response\n\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	if fs.NArg() > 0 {
		return options{}, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	opts.params = def
	if opts.preset != "" {
		p, err := loadPreset(opts.preset, opts.params)
		if err != nil {
			return options{}, err
		}
		opts.params = p
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "crossover":
			opts.params.CrossoverHz = *crossover
		case "lfe":
			opts.params.LFECutoffHz = *lfe
		case "boost":
			opts.params.LFEBoost = *boost
		}
	})

	if err := opts.params.Validate(); err != nil {
		return options{}, err
	}
	format = core.ProcessorConfig{SampleRate: opts.rate, BlockSize: opts.block}
	if err := format.Validate(); err != nil {
		return options{}, err
	}
	if !opts.response && !opts.dump && (opts.in == "" || opts.out == "") {
		return options{}, errors.New("both -in and -out are required")
	}

	return opts, nil
}

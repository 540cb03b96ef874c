package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/rs/zerolog"

	goprior "github.com/reoring/goprior"
	"github.com/reoring/goprior/i18n"
	"github.com/reoring/goprior/internal/config"
	"github.com/reoring/goprior/model"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

const usageText = `goprior CLI

Usage:
  goprior describe [-f model.yaml] [-format auto|yaml|json] [-lang en|ja] [-v]
  goprior to [-credibility 90] [-lclip x] [-rclip y] [-lang en|ja] [-v] LOW HIGH

Environment:
  GOPRIOR_LANG, GOPRIOR_FORMAT, GOPRIOR_VERBOSE, GOPRIOR_CREDIBILITY`

// run executes a subcommand and returns the process exit code: 0 on
// success, 1 when descriptors fail validation, 2 on usage errors.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}
	if len(args) < 1 {
		fmt.Fprintln(stderr, usageText)
		return 2
	}
	switch args[0] {
	case "describe":
		return describeCmd(cfg, args[1:], stdin, stdout, stderr)
	case "to":
		return toCmd(cfg, args[1:], stdout, stderr)
	case "help", "-h", "--help":
		fmt.Fprintln(stdout, usageText)
		return 0
	default:
		fmt.Fprintln(stderr, usageText)
		return 2
	}
}

func newLogger(w io.Writer, verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: w, NoColor: true}).Level(level).With().Timestamp().Logger()
}

func describeCmd(cfg config.Config, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("describe", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		file    string
		format  string
		lang    string
		verbose bool
	)
	fs.StringVar(&file, "f", "-", "model document (- for stdin)")
	fs.StringVar(&format, "format", cfg.Format, "document format: auto, yaml or json")
	fs.StringVar(&lang, "lang", cfg.Lang, "message language: en or ja")
	fs.BoolVar(&verbose, "v", cfg.Verbose, "enable verbose logs")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	log := newLogger(stderr, verbose)
	f, err := model.ParseFormat(format)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}
	i18n.SetLanguage(lang)

	var m *model.Model
	if file == "-" {
		data, rerr := io.ReadAll(stdin)
		if rerr != nil {
			fmt.Fprintf(stderr, "reading stdin: %v\n", rerr)
			return 2
		}
		log.Debug().Int("bytes", len(data)).Str("format", string(f)).Msg("loading model from stdin")
		m, err = model.Load(data, f)
	} else {
		log.Debug().Str("file", file).Str("format", string(f)).Msg("loading model")
		m, err = model.LoadFile(file, f)
	}
	if err != nil {
		return report(log, stderr, err)
	}
	log.Debug().Int("dists", m.Len()).Msg("model loaded")
	for _, name := range m.Names() {
		d, _ := m.Get(name)
		fmt.Fprintf(stdout, "%s: %s\n", name, d)
	}
	return 0
}

func toCmd(cfg config.Config, args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("to", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		credibility float64
		lang        string
		verbose     bool
		opts        []goprior.Option
	)
	fs.Float64Var(&credibility, "credibility", cfg.Credibility, "credible-interval percentage")
	fs.StringVar(&lang, "lang", cfg.Lang, "message language: en or ja")
	fs.BoolVar(&verbose, "v", cfg.Verbose, "enable verbose logs")
	fs.Func("lclip", "lower clip bound", clipFlag(&opts, goprior.LClip))
	fs.Func("rclip", "upper clip bound", clipFlag(&opts, goprior.RClip))
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 2 {
		fmt.Fprintln(stderr, "to: expected LOW and HIGH")
		return 2
	}
	low, err := strconv.ParseFloat(fs.Arg(0), 64)
	if err != nil {
		fmt.Fprintf(stderr, "to: LOW: %v\n", err)
		return 2
	}
	high, err := strconv.ParseFloat(fs.Arg(1), 64)
	if err != nil {
		fmt.Fprintf(stderr, "to: HIGH: %v\n", err)
		return 2
	}
	log := newLogger(stderr, verbose)
	i18n.SetLanguage(lang)

	log.Debug().Float64("low", low).Float64("high", high).Float64("credibility", credibility).Msg("inferring descriptor")
	d, err := goprior.To(low, high, append(opts, goprior.Credibility(credibility))...)
	if err != nil {
		return report(log, stderr, err)
	}
	log.Debug().Str("kind", string(d.Kind())).Msg("inferred")
	fmt.Fprintln(stdout, d)
	return 0
}

func clipFlag(opts *[]goprior.Option, mk func(float64) goprior.Option) func(string) error {
	return func(s string) error {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return err
		}
		*opts = append(*opts, mk(v))
		return nil
	}
}

// report prints validation issues one per line and returns the exit code.
func report(log zerolog.Logger, stderr io.Writer, err error) int {
	iss, ok := goprior.AsIssues(err)
	if !ok {
		fmt.Fprintln(stderr, err)
		return 2
	}
	for _, it := range iss {
		log.Debug().Str("path", it.Path).Str("code", it.Code).Interface("params", it.Params).Msg("issue")
		fmt.Fprintf(stderr, "%s: %s\n", it.Path, it.Message)
	}
	return 1
}

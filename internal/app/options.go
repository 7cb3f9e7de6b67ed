package app

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/biggeezerdevelopment/digitfreq"
)

// Version is reported by -version.
const Version = "0.3.0"

// Options holds the parsed command line.
type Options struct {
	Width    int
	Alphabet digitfreq.Alphabet
	Backend  digitfreq.Backend
	Strategy digitfreq.Strategy

	Unmapped  bool
	BufferKiB int
	NoSkip    bool

	OutDir string
	Chart  int
	Jobs   int
	Total  string

	Quiet   bool
	Version bool

	Files []string
}

// EngineOptions translates o into engine construction options.
func (o *Options) EngineOptions() []digitfreq.Option {
	return []digitfreq.Option{
		digitfreq.WithAlphabet(o.Alphabet),
		digitfreq.WithBackend(o.Backend),
		digitfreq.WithStrategy(o.Strategy),
	}
}

type flagValues struct {
	alphabet string
	backend  string
	strategy string
}

// NewFlagSet registers every flag of the tool on a fresh FlagSet.
func NewFlagSet(name string, o *Options) (*flag.FlagSet, *flagValues) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fv := &flagValues{}

	fs.IntVar(&o.Width, "w", 0, "maximum substring width D (1..16)")
	fs.StringVar(&fv.alphabet, "alphabet", "hex", "digit alphabet: hex | decimal")
	fs.StringVar(&fv.backend, "backend", "sparse", "count storage: sparse | dense")
	fs.StringVar(&fv.strategy, "strategy", "deferred", "counting strategy: deferred | eager")

	fs.BoolVar(&o.Unmapped, "unmapped", false, "use buffered reads instead of memory mapping")
	fs.IntVar(&o.BufferKiB, "buffer", 8, "buffered read capacity in KiB")
	fs.BoolVar(&o.NoSkip, "no-skip", false, "count from the first byte instead of after the first '.'")

	fs.StringVar(&o.OutDir, "out", "", "directory for result files (default: next to each input)")
	fs.IntVar(&o.Chart, "chart", 0, "also render an SVG chart of this width (0=off)")
	fs.IntVar(&o.Jobs, "j", 1, "input files processed concurrently")
	fs.StringVar(&o.Total, "total", "", "write the merged counts of all inputs to this file")

	fs.BoolVar(&o.Quiet, "quiet", false, "suppress progress output")
	fs.BoolVar(&o.Version, "version", false, "print version and exit")

	fs.Usage = func() {
		out := fs.Output()
		fmt.Fprintf(out, "%s - digit n-gram frequency counter\n\n", name)
		fmt.Fprintf(out, "Usage: %s -w <width> [flags] <file>...\n\n", name)
		fmt.Fprintln(out, "Counts every numeric substring of width 1..w inside runs of digits,")
		fmt.Fprintln(out, "starting after the first '.' of each file. Files may be gzip or zstd")
		fmt.Fprintln(out, "compressed; '-' reads standard input.")
		fmt.Fprintln(out, "\nFlags:")
		fs.PrintDefaults()
	}

	return fs, fv
}

// ParseArgs parses argv into o and validates the combination.
func ParseArgs(argv []string, usage io.Writer) (*Options, *flag.FlagSet, error) {
	o := &Options{}
	fs, fv := NewFlagSet("digitfreq", o)
	fs.SetOutput(usage)

	if err := fs.Parse(argv); err != nil {
		return nil, fs, err
	}
	if o.Version {
		return o, fs, nil
	}

	var err error
	if o.Alphabet, err = digitfreq.ParseAlphabet(fv.alphabet); err != nil {
		return nil, fs, err
	}
	if o.Backend, err = digitfreq.ParseBackend(fv.backend); err != nil {
		return nil, fs, err
	}
	if o.Strategy, err = digitfreq.ParseStrategy(fv.strategy); err != nil {
		return nil, fs, err
	}

	o.Files = fs.Args()
	switch {
	case len(o.Files) == 0:
		return nil, fs, errors.New("no input files")
	case o.Width < 1 || o.Width > digitfreq.MaxWidth:
		return nil, fs, fmt.Errorf("-w must be between 1 and %d, got %d", digitfreq.MaxWidth, o.Width)
	case o.Chart < 0 || o.Chart > o.Width:
		return nil, fs, fmt.Errorf("-chart must be between 0 and -w (%d), got %d", o.Width, o.Chart)
	case o.BufferKiB < 1:
		return nil, fs, fmt.Errorf("-buffer must be positive, got %d", o.BufferKiB)
	case o.Jobs < 1:
		return nil, fs, fmt.Errorf("-j must be positive, got %d", o.Jobs)
	}

	return o, fs, nil
}

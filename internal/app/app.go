package app

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"sync"

	"github.com/biggeezerdevelopment/digitfreq"
	"github.com/biggeezerdevelopment/digitfreq/internal/scanner"
)

// Exit codes.
const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 2

	ExitInterrupted = 130
)

// syncWriter serializes progress lines of concurrent files.
type syncWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (s *syncWriter) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.w.Write(p)
}

// RunContext is the whole command: parse argv, count every input, write
// the reports. It returns the process exit code.
func RunContext(ctx context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	o, fs, err := ParseArgs(argv, io.Discard)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(outw)
			fs.Usage()
			return flushCode(outw, stderr, ExitOK)
		}
		_, _ = fmt.Fprintln(stderr, "error:", err)
		fs.SetOutput(stderr)
		fs.Usage()
		return ExitUsage
	}

	if o.Version {
		_, _ = fmt.Fprintf(outw, "digitfreq version %s\n", Version)
		return flushCode(outw, stderr, ExitOK)
	}

	var progressW io.Writer
	if !o.Quiet {
		progressW = &syncWriter{w: stderr}
		_, _ = fmt.Fprintf(progressW, "width=%d alphabet=%s backend=%s strategy=%s cpu=%s\n",
			o.Width, o.Alphabet, o.Backend, o.Strategy, scanner.Features())
	}

	// Surface construction errors (e.g. dense too large) before any I/O.
	if err := digitfreq.Validate(o.Width, o.EngineOptions()...); err != nil {
		_, _ = fmt.Fprintln(stderr, "error:", err)
		return ExitUsage
	}
	if err := checkOutputs(o); err != nil {
		_, _ = fmt.Fprintln(stderr, "error:", err)
		return ExitUsage
	}

	results := make([]fileResult, len(o.Files))
	for i := range results {
		results[i].skipped = true
	}
	sem := make(chan struct{}, o.Jobs)
	var wg sync.WaitGroup
launch:
	for i, path := range o.Files {
		prefix := ""
		if len(o.Files) > 1 {
			prefix = path + ": "
		}
		if ctx.Err() != nil {
			break
		}
		select {
		case sem <- struct{}{}:
		case <-ctx.Done():
			break launch
		}
		wg.Add(1)
		go func() {
			defer func() { <-sem; wg.Done() }()
			results[i] = processFile(ctx, path, o, progressW, prefix)
		}()
	}
	wg.Wait()

	code := ExitOK
	var total *digitfreq.Counts
	for i := range results {
		res := &results[i]
		if res.skipped {
			continue
		}
		if res.err != nil {
			_, _ = fmt.Fprintln(stderr, "error:", res.err)
			code = ExitError
			continue
		}
		if res.warn != nil && !o.Quiet {
			_, _ = fmt.Fprintln(stderr, "warning:", res.warn)
		}
		_, _ = fmt.Fprintf(outw, "%s (%s)\n", res.path, res.mode)
		_, _ = fmt.Fprintf(outw, "Output path: %s\n", res.out)
		_, _ = fmt.Fprintf(outw, "Output hash: %s\n", res.hash[:8])
		if res.chart != "" {
			_, _ = fmt.Fprintf(outw, "Chart path: %s\n", res.chart)
		}

		if o.Total == "" {
			continue
		}
		if total == nil {
			total = res.counts
			continue
		}
		if err := total.Merge(res.counts); err != nil {
			_, _ = fmt.Fprintln(stderr, "error:", err)
			code = ExitError
		}
	}

	if o.Total != "" && total != nil && code == ExitOK {
		hash, err := WriteResult(o.Total, total)
		if err != nil {
			_, _ = fmt.Fprintln(stderr, "error:", err)
			return ExitError
		}
		_, _ = fmt.Fprintf(outw, "Total path: %s\n", o.Total)
		_, _ = fmt.Fprintf(outw, "Total hash: %s\n", hash[:8])
	}

	if ctx.Err() != nil {
		code = ExitInterrupted
	}
	return flushCode(outw, stderr, code)
}

func flushCode(outw *bufio.Writer, stderr io.Writer, code int) int {
	if err := outw.Flush(); IsBrokenPipe(err) {
		return code
	} else if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return ExitError
	}
	return code
}

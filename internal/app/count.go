package app

import (
	"bufio"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/biggeezerdevelopment/digitfreq"
	"github.com/biggeezerdevelopment/digitfreq/internal/plot"
	"github.com/biggeezerdevelopment/digitfreq/internal/source"
)

// fileResult is what one input produced.
type fileResult struct {
	path   string
	mode   string
	counts *digitfreq.Counts
	out    string
	hash   string
	chart  string
	warn   error
	err    error

	// skipped is set for inputs never started because of cancellation.
	skipped bool
}

// CountFile streams path through a new engine configured by o.
// Progress lines go to progressW when it is non-nil.
func CountFile(ctx context.Context, path string, o *Options, progressW io.Writer, prefix string) (*digitfreq.Counts, string, error) {
	e, err := digitfreq.New(o.Width, o.EngineOptions()...)
	if err != nil {
		return nil, "", err
	}

	src, err := source.Open(path, source.Options{Unmapped: o.Unmapped, BufferSize: o.BufferKiB * 1024})
	if err != nil {
		return nil, "", err
	}
	defer func() { _ = src.Close() }()
	mode := src.Mode()

	if !o.NoSkip {
		src = source.SkipThrough(src, source.Marker)
	}

	prog := newProgress(progressW, prefix)
	err = src.Each(ctx, func(chunk []byte) error {
		_, _ = e.Write(chunk)
		prog.add(len(chunk))
		return nil
	})
	if err != nil {
		return nil, mode, fmt.Errorf("%s: %w", path, err)
	}
	prog.eof()

	counts, err := e.Finalize()
	if err != nil {
		return nil, mode, err
	}
	prog.final()

	return counts, mode, nil
}

// ResultPath is "<dir>/<stem>_result.txt", dir defaulting to the input's.
func ResultPath(input, outDir string) string {
	return derivedPath(input, outDir, "_result.txt")
}

func derivedPath(input, outDir, suffix string) string {
	base := filepath.Base(input)
	if input == "-" {
		base = "stdin"
	}
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	dir := outDir
	if dir == "" {
		dir = filepath.Dir(input)
		if input == "-" {
			dir = "."
		}
	}
	return filepath.Join(dir, stem+suffix)
}

// WriteResult writes the report for c to path and returns the SHA-256 of
// the bytes written.
func WriteResult(path string, c *digitfreq.Counts) (string, error) {
	fh, err := os.Create(path)
	if err != nil {
		return "", err
	}
	h := sha256.New()
	bw := bufio.NewWriterSize(io.MultiWriter(fh, h), 64*1024)
	werr := digitfreq.WriteReport(bw, c)
	if werr == nil {
		werr = bw.Flush()
	}
	if cerr := fh.Close(); werr == nil {
		werr = cerr
	}
	if werr != nil {
		return "", werr
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

// checkOutputs fails when two outputs of one run would share a path.
func checkOutputs(o *Options) error {
	seen := make(map[string]string)
	claim := func(path, owner string) error {
		key := filepath.Clean(path)
		if abs, err := filepath.Abs(key); err == nil {
			key = abs
		}
		if prev, ok := seen[key]; ok {
			return fmt.Errorf("%s and %s both write %s", prev, owner, path)
		}
		seen[key] = owner
		return nil
	}

	for _, in := range o.Files {
		if err := claim(ResultPath(in, o.OutDir), in); err != nil {
			return err
		}
		if o.Chart > 0 {
			if err := claim(chartPath(in, o), in); err != nil {
				return err
			}
		}
	}
	if o.Total != "" {
		return claim(o.Total, "-total")
	}
	return nil
}

func chartPath(input string, o *Options) string {
	return derivedPath(input, o.OutDir, fmt.Sprintf("_w%d.svg", o.Chart))
}

func processFile(ctx context.Context, path string, o *Options, progressW io.Writer, prefix string) fileResult {
	res := fileResult{path: path}

	res.counts, res.mode, res.err = CountFile(ctx, path, o, progressW, prefix)
	if res.err != nil {
		return res
	}

	res.out = ResultPath(path, o.OutDir)
	res.hash, res.err = WriteResult(res.out, res.counts)
	if res.err != nil {
		return res
	}

	if o.Chart > 0 {
		res.chart = chartPath(path, o)
		title := fmt.Sprintf("%s: width %d", filepath.Base(path), o.Chart)
		if err := plot.RenderFile(res.chart, res.counts.Width(o.Chart), title); err != nil {
			res.chart = ""
			if errors.Is(err, plot.ErrEmpty) {
				res.warn = fmt.Errorf("no chart for %s: %w", path, err)
			} else {
				res.err = err
			}
		}
	}

	return res
}

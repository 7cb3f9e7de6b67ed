// Package source supplies the bytes of an input file, in order, to a
// consumer. Files are memory mapped when possible and read through a
// pooled buffer otherwise; gzip and zstd inputs are decompressed.
package source

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

const (
	// DefaultBufferSize is the read buffer used when none is given.
	DefaultBufferSize = 8 * 1024

	// MapChunk is the slice size handed out from a mapped file.
	MapChunk = 1 << 20
)

var (
	gzipMagic = []byte{0x1f, 0x8b}
	zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}
)

// Source yields its bytes to fn in consecutive chunks. A chunk is only
// valid during the call.
type Source interface {
	Each(ctx context.Context, fn func([]byte) error) error
	Close() error
	// Mode is "mmap", "buffered", "gzip" or "zstd".
	Mode() string
}

// Options control how Open reads a file.
type Options struct {
	// Unmapped forces buffered reads.
	Unmapped bool
	// BufferSize is the read buffer for buffered sources.
	BufferSize int
}

// Open opens path ("-" for stdin) and picks the cheapest way to read it.
func Open(path string, opts Options) (Source, error) {
	if opts.BufferSize <= 0 {
		opts.BufferSize = DefaultBufferSize
	}

	if path == "-" {
		return newStream(io.NopCloser(os.Stdin), opts.BufferSize)
	}

	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	if !opts.Unmapped && canMap {
		src, err := tryMap(fh)
		if err != nil {
			_ = fh.Close()
			return nil, fmt.Errorf("mmap %s: %w", path, err)
		}
		if src != nil {
			return src, nil
		}
	}

	return newStream(fh, opts.BufferSize)
}

// tryMap maps fh when it is a plain regular file. It returns nil, nil
// when the file has to be streamed instead.
func tryMap(fh *os.File) (Source, error) {
	fi, err := fh.Stat()
	if err != nil {
		return nil, err
	}
	if !fi.Mode().IsRegular() {
		return nil, nil
	}

	var sig [4]byte
	n, _ := fh.ReadAt(sig[:], 0)
	if isCompressed(sig[:n]) {
		return nil, nil
	}

	data, err := mapFile(fh, fi.Size())
	if err != nil {
		return nil, err
	}
	return &mapped{fh: fh, data: data}, nil
}

func isCompressed(sig []byte) bool {
	return bytes.HasPrefix(sig, gzipMagic) || bytes.HasPrefix(sig, zstdMagic)
}

// multiCloser closes multiple io.Closers in order.
type multiCloser []io.Closer

func (m multiCloser) Close() error {
	var err error
	for _, c := range m {
		if cerr := c.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}

type stream struct {
	r       io.Reader
	closers multiCloser
	size    int
	mode    string
}

// newStream sniffs rc for a compression magic number and wraps it in the
// matching decoder.
func newStream(rc io.ReadCloser, size int) (Source, error) {
	br := bufio.NewReaderSize(rc, size)
	sig, _ := br.Peek(len(zstdMagic))

	s := &stream{r: br, closers: multiCloser{rc}, size: size, mode: "buffered"}

	switch {
	case bytes.HasPrefix(sig, gzipMagic):
		gr, err := gzip.NewReader(br)
		if err != nil {
			_ = rc.Close()
			return nil, fmt.Errorf("gzip: %w", err)
		}
		s.r = gr
		s.closers = multiCloser{gr, rc}
		s.mode = "gzip"
	case bytes.HasPrefix(sig, zstdMagic):
		zr, err := zstd.NewReader(br)
		if err != nil {
			_ = rc.Close()
			return nil, fmt.Errorf("zstd: %w", err)
		}
		s.r = zr
		s.closers = multiCloser{zstdCloser{zr}, rc}
		s.mode = "zstd"
	}

	return s, nil
}

// zstdCloser adapts zstd.Decoder, whose Close returns nothing.
type zstdCloser struct{ d *zstd.Decoder }

func (z zstdCloser) Close() error {
	z.d.Close()
	return nil
}

func (s *stream) Mode() string { return s.mode }

func (s *stream) Close() error { return s.closers.Close() }

func (s *stream) Each(ctx context.Context, fn func([]byte) error) error {
	buf := getBuffer(s.size)
	defer putBuffer(buf)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		n, err := s.r.Read(buf)
		if n > 0 {
			if ferr := fn(buf[:n]); ferr != nil {
				return ferr
			}
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
	}
}

type mapped struct {
	fh   *os.File
	data []byte
}

func (m *mapped) Mode() string { return "mmap" }

func (m *mapped) Each(ctx context.Context, fn func([]byte) error) error {
	data := m.data
	for len(data) > 0 {
		if err := ctx.Err(); err != nil {
			return err
		}
		n := min(len(data), MapChunk)
		if err := fn(data[:n]); err != nil {
			return err
		}
		data = data[n:]
	}
	return nil
}

func (m *mapped) Close() error {
	err := unmap(m.data)
	m.data = nil
	if cerr := m.fh.Close(); cerr != nil && err == nil {
		err = cerr
	}
	return err
}

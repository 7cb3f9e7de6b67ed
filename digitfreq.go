// Package digitfreq counts digit n-grams in a byte stream.
//
// A run is a maximal span of bytes that are digits of the selected alphabet.
// For every width w from 1 to a maximum D, the engine counts how often each
// w-digit value occurs as a contiguous substring of some run. Bytes outside
// the alphabet end the current run; digits on either side never combine.
//
//	e, _ := digitfreq.New(6, digitfreq.WithAlphabet(digitfreq.Decimal))
//	io.Copy(e, r)
//	counts, _ := e.Finalize()
//	digitfreq.WriteReport(w, counts)
package digitfreq

import (
	"errors"
	"io"

	"github.com/biggeezerdevelopment/digitfreq/internal/scanner"
	"github.com/biggeezerdevelopment/digitfreq/internal/store"
)

var (
	// ErrInvalidWidth is returned when the maximum width is outside 1..16.
	ErrInvalidWidth = errors.New("width must be between 1 and 16")

	// ErrBackendInfeasible is returned when dense tables for the requested
	// width exceed the dense limit. Use the sparse backend instead.
	ErrBackendInfeasible = errors.New("dense backend infeasible for width")

	ErrUnknownAlphabet = errors.New("unknown alphabet")
	ErrUnknownBackend  = errors.New("unknown backend")
	ErrUnknownStrategy = errors.New("unknown strategy")

	// ErrFinalized is returned by a second call to Finalize.
	ErrFinalized = errors.New("engine already finalized")

	// ErrWidthMismatch is returned when merging counts of different shape.
	ErrWidthMismatch = errors.New("counts have different width or alphabet")
)

// MaxWidth is the register capacity in digits.
const MaxWidth = scanner.MaxNibbles

type Alphabet = scanner.Alphabet

const (
	Decimal = scanner.Decimal
	Hex     = scanner.Hex
)

type Backend = store.Kind

const (
	Sparse = store.Sparse
	Dense  = store.Dense
)

// Table is the read-only view of one width's counts.
type Table = store.Table

// Count runs a fresh engine over everything r yields and returns the
// finalized counts. No marker skipping is applied.
func Count(r io.Reader, maxWidth int, opts ...Option) (*Counts, error) {
	e, err := New(maxWidth, opts...)
	if err != nil {
		return nil, err
	}
	if _, err := io.Copy(e, r); err != nil {
		return nil, err
	}
	return e.Finalize()
}

// CountBytes is Count over an in-memory slice.
func CountBytes(data []byte, maxWidth int, opts ...Option) (*Counts, error) {
	e, err := New(maxWidth, opts...)
	if err != nil {
		return nil, err
	}
	e.feed(data)
	return e.Finalize()
}

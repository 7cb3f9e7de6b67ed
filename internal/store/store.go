// Package store holds the per-width occurrence tables.
package store

import (
	"errors"
	"fmt"
	"iter"

	"github.com/biggeezerdevelopment/digitfreq/internal/scanner"
)

var (
	ErrUnknownKind = errors.New("unknown store kind")
	ErrTooLarge    = errors.New("dense tables exceed limit")
)

// Kind selects a Table implementation.
type Kind uint8

const (
	Sparse Kind = iota
	Dense
)

func (k Kind) String() string {
	switch k {
	case Sparse:
		return "sparse"
	case Dense:
		return "dense"
	}
	return "unknown"
}

// MaxDenseWidth bounds dense tables regardless of the byte limit:
// 16^8 counters are already 32 GiB.
const MaxDenseWidth = 8

// DefaultDenseLimit is the default allocation ceiling for a dense Set.
const DefaultDenseLimit = 1 << 30

// Table maps width-masked values to occurrence counts.
type Table interface {
	Width() int
	Add(value, delta uint64)
	Get(value uint64) uint64
	// Len is the number of distinct values with a non-zero count.
	Len() int
	Total() uint64
	// All yields every (value, count) pair with count > 0, in no
	// particular order. It may be ranged over repeatedly.
	All() iter.Seq2[uint64, uint64]
	// Ascending is All ordered by ascending value.
	Ascending() iter.Seq2[uint64, uint64]
}

// Set is one Table per width 1..MaxWidth.
type Set struct {
	kind   Kind
	tables []Table // index 0 unused
}

// DenseBytes is the memory a dense Set of the given width needs.
func DenseBytes(maxWidth int) uint64 {
	var total uint64
	for w := 1; w <= maxWidth; w++ {
		total += 8 << (4 * uint(w))
	}
	return total
}

// Check reports whether NewSet would accept kind, maxWidth and limit,
// without allocating anything.
func Check(kind Kind, maxWidth int, limit uint64) error {
	switch kind {
	case Sparse:
		return nil
	case Dense:
		if maxWidth > MaxDenseWidth {
			return fmt.Errorf("%w: width %d above %d", ErrTooLarge, maxWidth, MaxDenseWidth)
		}
		if need := DenseBytes(maxWidth); need > limit {
			return fmt.Errorf("%w: width %d needs %d bytes, limit %d", ErrTooLarge, maxWidth, need, limit)
		}
		return nil
	}
	return fmt.Errorf("%w: %d", ErrUnknownKind, kind)
}

// NewSet allocates tables for widths 1..maxWidth. limit caps the total
// dense allocation in bytes; it is ignored for sparse sets.
func NewSet(kind Kind, maxWidth int, limit uint64) (*Set, error) {
	if err := Check(kind, maxWidth, limit); err != nil {
		return nil, err
	}

	s := &Set{kind: kind, tables: make([]Table, maxWidth+1)}
	for w := 1; w <= maxWidth; w++ {
		if kind == Dense {
			s.tables[w] = newDense(w)
		} else {
			s.tables[w] = newSparse(w)
		}
	}
	return s, nil
}

func (s *Set) Kind() Kind    { return s.kind }
func (s *Set) MaxWidth() int { return len(s.tables) - 1 }
func (s *Set) Width(w int) Table {
	return s.tables[w]
}

// Add counts one occurrence of value at width w; value must already be
// masked to w nibbles.
func (s *Set) Add(w int, value uint64) {
	s.tables[w].Add(value, 1)
}

// FoldPrefixes adds the count of every value at width w into the value
// formed by its first w-1 digits at width w-1, for w from MaxWidth down
// to 2. Each width is complete before it becomes a source.
func (s *Set) FoldPrefixes() {
	for w := s.MaxWidth(); w >= 2; w-- {
		prev := s.tables[w-1]
		for v, c := range s.tables[w].All() {
			prev.Add(v>>4, c)
		}
	}
}

// Merge adds every count of o into s. Both sets must have the same width;
// the backends may differ.
func (s *Set) Merge(o *Set) error {
	if s.MaxWidth() != o.MaxWidth() {
		return fmt.Errorf("store: merge width %d into %d", o.MaxWidth(), s.MaxWidth())
	}
	for w := 1; w <= s.MaxWidth(); w++ {
		dst := s.tables[w]
		for v, c := range o.tables[w].All() {
			dst.Add(v, c)
		}
	}
	return nil
}

// Equal reports whether both sets hold identical counts at every width.
func (s *Set) Equal(o *Set) bool {
	if s.MaxWidth() != o.MaxWidth() {
		return false
	}
	for w := 1; w <= s.MaxWidth(); w++ {
		a, b := s.tables[w], o.tables[w]
		if a.Len() != b.Len() {
			return false
		}
		for v, c := range a.All() {
			if b.Get(v) != c {
				return false
			}
		}
	}
	return true
}

// Key renders value as the width-digit string it was counted from.
func Key(value uint64, width int) string {
	return scanner.FormatNibbles(value, width)
}
